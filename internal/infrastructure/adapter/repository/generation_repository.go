package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/model"
)

// GenerationRepository implements the GenerationRepository port using GORM
type GenerationRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewGenerationRepository creates a new GenerationRepository instance
func NewGenerationRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *GenerationRepository {
	return &GenerationRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *GenerationRepository) entityToModel(g *entity.Generation) model.Generation {
	return model.Generation{
		ID:                 g.ID,
		UserID:             g.UserID,
		UserEmail:          g.UserEmail,
		Breed:              g.Breed,
		Style:              string(g.Style),
		PreviewURLs:        model.StringList(g.PreviewURLs),
		HDURLs:             model.StringList(g.HDURLs),
		Paid:               g.Paid,
		PaymentID:          g.PaymentID,
		AmountCents:        g.AmountCents,
		RequestFingerprint: g.RequestFingerprint,
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

func (r *GenerationRepository) modelToEntity(m *model.Generation) *entity.Generation {
	return &entity.Generation{
		ID:                 m.ID,
		UserID:             m.UserID,
		UserEmail:          m.UserEmail,
		Breed:              m.Breed,
		Style:              entity.Style(m.Style),
		PreviewURLs:        []string(m.PreviewURLs),
		HDURLs:             []string(m.HDURLs),
		Paid:               m.Paid,
		PaymentID:          m.PaymentID,
		AmountCents:        m.AmountCents,
		RequestFingerprint: m.RequestFingerprint,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func (r *GenerationRepository) handleDatabaseError(operation string, err error, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrGenerationNotFound
	}
	r.logger.Error("Database error when "+operation, map[string]any{
		"generation_id": id,
		"error":         err.Error(),
	})
	return r.errorClassifier.ToDomain(err)
}

// Create inserts a new generation record
func (r *GenerationRepository) Create(ctx context.Context, generation *entity.Generation) error {
	generationModel := r.entityToModel(generation)
	if err := r.db.WithContext(ctx).Create(&generationModel).Error; err != nil {
		return r.handleDatabaseError("creating generation", err, generation.ID)
	}
	return nil
}

// GetByID retrieves a generation record
func (r *GenerationRepository) GetByID(ctx context.Context, id string) (*entity.Generation, error) {
	var generationModel model.Generation
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&generationModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting generation", err, id)
	}
	return r.modelToEntity(&generationModel), nil
}

// ListByUser returns the user's records, newest first
func (r *GenerationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Generation, error) {
	var generationModels []model.Generation
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&generationModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing generations", result.Error, "")
	}

	generations := make([]*entity.Generation, len(generationModels))
	for i := range generationModels {
		generations[i] = r.modelToEntity(&generationModels[i])
	}
	return generations, nil
}

// Update applies a partial update and returns the stored record
func (r *GenerationRepository) Update(ctx context.Context, id string, update entity.GenerationUpdate) (*entity.Generation, error) {
	changes := map[string]any{
		"updated_at": r.timeProvider.Now(),
	}
	if update.HDURLs != nil {
		changes["hd_urls"] = model.StringList(update.HDURLs)
	}
	if update.Paid != nil {
		changes["paid"] = *update.Paid
	}
	if update.PaymentID != nil {
		changes["payment_id"] = *update.PaymentID
	}
	if update.AmountCents != nil {
		changes["amount_cents"] = *update.AmountCents
	}

	result := r.db.WithContext(ctx).Model(&model.Generation{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return nil, r.handleDatabaseError("updating generation", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrGenerationNotFound
	}

	return r.GetByID(ctx, id)
}
