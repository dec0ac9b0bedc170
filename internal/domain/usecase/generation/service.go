package generation

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/external"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
)

// Config holds generation tunables
type Config struct {
	MaxAttempts   int               // per image, including the first call
	RetryBackoff  coreport.Duration // multiplied by the attempt number
	Concurrency   int               // images generated in parallel
	ImageWidth    int
	ImageHeight   int
	GuardTTL      time.Duration
	PreviewImages int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxAttempts:   3,
		RetryBackoff:  coreport.Second,
		Concurrency:   4,
		ImageWidth:    1024,
		ImageHeight:   1024,
		GuardTTL:      2 * time.Minute,
		PreviewImages: 4,
	}
}

// Service implements preview generation, HD unlocking and the generation record store
type Service struct {
	ledger       usecase.LedgerUseCase
	generations  persistence.GenerationRepository
	guard        persistence.RequestGuard
	images       external.ImageGenerator
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
	seed         func() int64
}

// NewGenerationService creates a new generation service
func NewGenerationService(
	ledger usecase.LedgerUseCase,
	generations persistence.GenerationRepository,
	guard persistence.RequestGuard,
	images external.ImageGenerator,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	defaults := DefaultConfig()
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaults.MaxAttempts
	}
	if config.Concurrency <= 0 {
		config.Concurrency = defaults.Concurrency
	}
	if config.PreviewImages <= 0 {
		config.PreviewImages = defaults.PreviewImages
	}
	if config.ImageWidth <= 0 || config.ImageHeight <= 0 {
		config.ImageWidth, config.ImageHeight = defaults.ImageWidth, defaults.ImageHeight
	}
	if config.GuardTTL <= 0 {
		config.GuardTTL = defaults.GuardTTL
	}

	return &Service{
		ledger:       ledger,
		generations:  generations,
		guard:        guard,
		images:       images,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
		seed:         func() int64 { return rand.Int63n(1 << 31) },
	}
}

var _ usecase.GenerationUseCase = (*Service)(nil)

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.ErrInvalidUserID
	}
	return nil
}

// claim takes the request guard for fingerprint and returns its release function.
// A guard store failure is logged and the request proceeds unguarded.
func (s *Service) claim(ctx context.Context, userID, fingerprint string) (func(), error) {
	owner := s.idGenerator.NewID()
	err := s.guard.Acquire(ctx, userID, fingerprint, owner, s.config.GuardTTL)
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrRequestInProgress):
		s.logger.Info("Identical request already in progress", map[string]any{
			"userId":      userID,
			"fingerprint": fingerprint,
		})
		return nil, err
	default:
		s.logger.Warn("Request guard unavailable, proceeding without it", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return func() {}, nil
	}

	return func() {
		if err := s.guard.Release(context.WithoutCancel(ctx), userID, fingerprint, owner); err != nil {
			s.logger.Warn("Failed to release request guard", map[string]any{
				"userId":      userID,
				"fingerprint": fingerprint,
				"error":       err.Error(),
			})
		}
	}, nil
}
