package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/model"
)

const (
	paymentRefExistsSQL = `SELECT EXISTS (SELECT 1 FROM transactions WHERE user_id = ? AND external_payment_ref = ?)`
	relatedIDExistsSQL  = `SELECT EXISTS (SELECT 1 FROM transactions WHERE user_id = ? AND kind = ? AND related_id = ?)`
)

// TransactionRepository implements the append-only TransactionRepository port using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:                 transaction.ID,
		UserID:             transaction.UserID,
		Amount:             transaction.Amount,
		Kind:               string(transaction.Kind),
		Description:        transaction.Description,
		RelatedID:          optional(transaction.RelatedID),
		ExternalPaymentRef: optional(transaction.ExternalPaymentRef),
		CreatedAt:          transaction.CreatedAt,
	}
}

// modelToEntity converts a database model to a transaction entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                 m.ID,
		UserID:             m.UserID,
		Amount:             m.Amount,
		Kind:               entity.TransactionKind(m.Kind),
		Description:        m.Description,
		RelatedID:          deref(m.RelatedID),
		ExternalPaymentRef: deref(m.ExternalPaymentRef),
		CreatedAt:          m.CreatedAt,
	}
}

// Create appends a transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	if err := r.db.WithContext(ctx).Create(&transactionModel).Error; err != nil {
		if r.errorClassifier.IsPaymentRefConflict(err) {
			r.logger.Warn("Duplicate payment reference rejected by the store", map[string]any{
				"user_id":     transaction.UserID,
				"payment_ref": transaction.ExternalPaymentRef,
			})
			return errs.NewDuplicatePaymentError(transaction.UserID, transaction.ExternalPaymentRef)
		}

		r.logger.Error("Failed to create transaction", map[string]any{
			"transaction_id": transaction.ID,
			"user_id":        transaction.UserID,
			"error":          err.Error(),
			"error_type":     r.errorClassifier.Classify(err),
		})
		return r.errorClassifier.ToDomain(err)
	}

	r.logger.Debug("Transaction recorded", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"amount":         transaction.Amount,
		"kind":           transaction.Kind,
	})
	return nil
}

// ListByUser returns the user's most recent transactions, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&transactionModels)

	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, r.errorClassifier.ToDomain(result.Error)
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = r.modelToEntity(&transactionModels[i])
	}
	return transactions, nil
}

// ExistsByPaymentRef checks whether a payment reference was already applied to the user
func (r *TransactionRepository) ExistsByPaymentRef(ctx context.Context, userID, paymentRef string) (bool, error) {
	return r.exists(ctx, paymentRefExistsSQL, userID, paymentRef)
}

// ExistsByRelatedID checks whether an entry of the given kind already references relatedID
func (r *TransactionRepository) ExistsByRelatedID(ctx context.Context, userID string, kind entity.TransactionKind, relatedID string) (bool, error) {
	return r.exists(ctx, relatedIDExistsSQL, userID, string(kind), relatedID)
}

func (r *TransactionRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found bool
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&found).Error; err != nil {
		r.logger.Error("Failed to check transaction existence", map[string]any{
			"error": err.Error(),
		})
		return false, r.errorClassifier.ToDomain(err)
	}
	return found, nil
}
