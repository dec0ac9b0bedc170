package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/model"
)

const (
	debitIfSufficientSQL = `UPDATE accounts SET balance = balance - ?, updated_at = ? ` +
		`WHERE user_id = ? AND balance >= ? RETURNING balance`
	creditSQL = `UPDATE accounts SET balance = balance + ?, updated_at = ? ` +
		`WHERE user_id = ? RETURNING balance`
	currentBalanceSQL = `SELECT balance FROM accounts WHERE user_id = ?`
	discrepanciesSQL  = `SELECT a.user_id, a.balance, COALESCE(SUM(t.amount), 0) AS ledger_sum, COUNT(t.id) AS transactions ` +
		`FROM accounts a LEFT JOIN transactions t ON t.user_id = a.user_id ` +
		`GROUP BY a.user_id, a.balance ` +
		`HAVING a.balance <> COALESCE(SUM(t.amount), 0) ` +
		`ORDER BY a.user_id`
)

// AccountRepository implements the AccountRepository port using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

type balanceRow struct {
	Balance int64
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Debug("Account already exists", map[string]any{
			"user_id": userID,
		})
		return errs.ErrDuplicateAccount
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id":    userID,
		"error":      err.Error(),
		"error_type": r.errorClassifier.Classify(err),
	})
	return r.errorClassifier.ToDomain(err)
}

// GetByUserID retrieves an account by its owner
func (r *AccountRepository) GetByUserID(ctx context.Context, userID string) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&accountModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, userID)
	}

	return entity.RestoreAccount(
		accountModel.UserID,
		accountModel.Balance,
		accountModel.CreatedAt,
		accountModel.UpdatedAt,
	), nil
}

// Create inserts a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.Account{
		UserID:    account.UserID,
		Balance:   account.Balance(),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&accountModel).Error; err != nil {
		return r.handleDatabaseError("creating account", err, account.UserID)
	}

	r.logger.Info("Account created", map[string]any{
		"user_id": account.UserID,
		"balance": account.Balance(),
	})
	return nil
}

// DebitIfSufficient subtracts amount in a single conditional UPDATE. When no row matches,
// the current balance is read to tell a missing account from an insufficient one.
func (r *AccountRepository) DebitIfSufficient(ctx context.Context, userID string, amount int64) (int64, bool, error) {
	db := r.db.WithContext(ctx)

	var updated balanceRow
	result := db.Raw(debitIfSufficientSQL, amount, r.timeProvider.Now(), userID, amount).Scan(&updated)
	if result.Error != nil {
		return 0, false, r.handleDatabaseError("debiting account", result.Error, userID)
	}
	if result.RowsAffected > 0 {
		return updated.Balance, true, nil
	}

	var current balanceRow
	result = db.Raw(currentBalanceSQL, userID).Scan(&current)
	if result.Error != nil {
		return 0, false, r.handleDatabaseError("reading balance", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return 0, false, errs.ErrAccountNotFound
	}

	r.logger.Debug("Conditional debit not applied", map[string]any{
		"user_id": userID,
		"amount":  amount,
		"balance": current.Balance,
	})
	return current.Balance, false, nil
}

// Credit adds amount to the balance and returns the new balance
func (r *AccountRepository) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	var updated balanceRow
	result := r.db.WithContext(ctx).Raw(creditSQL, amount, r.timeProvider.Now(), userID).Scan(&updated)
	if result.Error != nil {
		return 0, r.handleDatabaseError("crediting account", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return 0, errs.ErrAccountNotFound
	}
	return updated.Balance, nil
}

type discrepancyRow struct {
	UserID       string
	Balance      int64
	LedgerSum    int64
	Transactions int64
}

// FindDiscrepancies returns every account whose balance differs from the sum of its transactions
func (r *AccountRepository) FindDiscrepancies(ctx context.Context) ([]entity.BalanceDiscrepancy, error) {
	var rows []discrepancyRow
	if err := r.db.WithContext(ctx).Raw(discrepanciesSQL).Scan(&rows).Error; err != nil {
		r.logger.Error("Failed to compute ledger discrepancies", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorClassifier.ToDomain(err)
	}

	out := make([]entity.BalanceDiscrepancy, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.BalanceDiscrepancy{
			UserID:       row.UserID,
			Balance:      row.Balance,
			LedgerSum:    row.LedgerSum,
			Transactions: row.Transactions,
		})
	}
	return out, nil
}
