package persistence

import (
	"context"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
)

// GenerationRepository stores generation records
type GenerationRepository interface {
	// Create inserts a new generation record
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, generation *entity.Generation) error

	// GetByID retrieves a generation record
	//
	// Possible errors:
	// - ErrGenerationNotFound: If the record doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Generation, error)

	// ListByUser returns the user's records, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID string) ([]*entity.Generation, error)

	// Update applies a partial update and returns the stored record
	//
	// Possible errors:
	// - ErrGenerationNotFound: If the record doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, id string, update entity.GenerationUpdate) (*entity.Generation, error)
}
