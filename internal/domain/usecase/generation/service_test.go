package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/external"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
	mcore "github.com/amirhossein-jamali/petavatar-credits/mocks/port/core"
	mext "github.com/amirhossein-jamali/petavatar-credits/mocks/port/external"
	mpers "github.com/amirhossein-jamali/petavatar-credits/mocks/port/persistence"
	muse "github.com/amirhossein-jamali/petavatar-credits/mocks/port/usecase"
)

var fixedTime = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

type generationMocks struct {
	ledger       *muse.MockLedgerUseCase
	generations  *mpers.MockGenerationRepository
	guard        *mpers.MockRequestGuard
	images       *mext.MockImageGenerator
	idGenerator  *mcore.MockIDGenerator
	timeProvider *mcore.MockTimeProvider
	logger       *mcore.MockLogger
}

func newGenerationMocks(t *testing.T) *generationMocks {
	m := &generationMocks{
		ledger:       muse.NewMockLedgerUseCase(t),
		generations:  mpers.NewMockGenerationRepository(t),
		guard:        mpers.NewMockRequestGuard(t),
		images:       mext.NewMockImageGenerator(t),
		idGenerator:  mcore.NewMockIDGenerator(t),
		timeProvider: mcore.NewMockTimeProvider(t),
		logger:       mcore.NewMockLogger(t),
	}
	m.timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Return().Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Return().Maybe()
	return m
}

func (m *generationMocks) service(config Config) *Service {
	svc := NewGenerationService(m.ledger, m.generations, m.guard, m.images, m.idGenerator, m.timeProvider, m.logger, config)
	svc.seed = func() int64 { return 42 }
	return svc
}

func (m *generationMocks) expectGuard(userID string) {
	m.idGenerator.EXPECT().NewID().Return("owner-1").Once()
	m.guard.EXPECT().Acquire(mock.Anything, userID, mock.Anything, "owner-1", mock.Anything).Return(nil).Once()
	m.guard.EXPECT().Release(mock.Anything, userID, mock.Anything, "owner-1").Return(nil).Once()
}

func singleImageConfig() Config {
	config := DefaultConfig()
	config.PreviewImages = 1
	return config
}

func TestService_GeneratePreviews(t *testing.T) {
	ctx := context.Background()

	t.Run("generates four previews and stores a record", func(t *testing.T) {
		m := newGenerationMocks(t)

		// Setup mocks
		m.expectGuard("user_1")
		m.images.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(p external.ImagePrompt) bool {
			return p.Width == 1024 && p.Height == 1024 && p.Seed == 42 &&
				p.Prompt == entity.BuildPrompt("corgi", "chibi")
		})).Return([]string{"https://img/x.png"}, nil).Times(4)
		m.idGenerator.EXPECT().NewID().Return("gen_1").Once()
		m.generations.EXPECT().Create(ctx, mock.MatchedBy(func(g *entity.Generation) bool {
			return g.ID == "gen_1" && g.UserEmail == "a@b.c" && len(g.PreviewURLs) == 4 &&
				g.RequestFingerprint == entity.RequestFingerprint("corgi", "chibi")
		})).Return(nil)

		// Execute
		result, err := m.service(DefaultConfig()).GeneratePreviews(ctx, usecase.PreviewRequest{
			UserID: "user_1", UserEmail: "a@b.c", Breed: "corgi", Style: "chibi",
		})

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, "gen_1", result.GenerationID)
		assert.Len(t, result.Images, 4)
		assert.Equal(t, entity.StyleChibi, result.Style)
		assert.Equal(t, 4, result.Attempts)
		m.ledger.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("retries a failing image with growing backoff", func(t *testing.T) {
		m := newGenerationMocks(t)
		providerErr := errors.New("provider 503")

		m.expectGuard("user_1")
		m.images.EXPECT().Generate(mock.Anything, mock.Anything).Return(nil, providerErr).Twice()
		m.images.EXPECT().Generate(mock.Anything, mock.Anything).Return([]string{"https://img/ok.png"}, nil).Once()
		m.timeProvider.EXPECT().After(mock.Anything, coreport.Second).Return(nil).Once()
		m.timeProvider.EXPECT().After(mock.Anything, 2*coreport.Second).Return(nil).Once()
		m.idGenerator.EXPECT().NewID().Return("gen_2").Once()
		m.generations.EXPECT().Create(ctx, mock.Anything).Return(nil)

		result, err := m.service(singleImageConfig()).GeneratePreviews(ctx, usecase.PreviewRequest{
			UserID: "user_1", Breed: "corgi", Style: "cute",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"https://img/ok.png"}, result.Images)
		assert.Equal(t, 3, result.Attempts)
	})

	t.Run("fails once every image exhausts its attempts", func(t *testing.T) {
		m := newGenerationMocks(t)
		providerErr := errors.New("provider 503")

		m.expectGuard("user_1")
		m.images.EXPECT().Generate(mock.Anything, mock.Anything).Return(nil, providerErr).Times(3)
		m.timeProvider.EXPECT().After(mock.Anything, mock.Anything).Return(nil).Twice()
		m.logger.EXPECT().Error("Preview generation exhausted all attempts", mock.Anything).Return()

		result, err := m.service(singleImageConfig()).GeneratePreviews(ctx, usecase.PreviewRequest{
			UserID: "user_1", Breed: "corgi", Style: "cute",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrGenerationFailed)
		assert.ErrorIs(t, err, providerErr)
		var genErr *errs.GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, 3, genErr.Attempts)
	})

	t.Run("stops retrying when the context is cancelled", func(t *testing.T) {
		m := newGenerationMocks(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		m.expectGuard("user_1")
		m.images.EXPECT().Generate(mock.Anything, mock.Anything).Return(nil, context.Canceled).Once()
		m.timeProvider.EXPECT().After(mock.Anything, mock.Anything).Return(context.Canceled).Once()
		m.logger.EXPECT().Error("Preview generation exhausted all attempts", mock.Anything).Return()

		_, err := m.service(singleImageConfig()).GeneratePreviews(cctx, usecase.PreviewRequest{
			UserID: "user_1", Breed: "corgi", Style: "cute",
		})

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("rejects an identical request in flight", func(t *testing.T) {
		m := newGenerationMocks(t)

		m.idGenerator.EXPECT().NewID().Return("owner-2")
		m.guard.EXPECT().Acquire(mock.Anything, "user_1", entity.RequestFingerprint("corgi", "cute"), "owner-2", mock.Anything).
			Return(errs.ErrRequestInProgress)

		_, err := m.service(DefaultConfig()).GeneratePreviews(ctx, usecase.PreviewRequest{
			UserID: "user_1", Breed: "Corgi", Style: "",
		})

		assert.ErrorIs(t, err, errs.ErrRequestInProgress)
		m.images.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("proceeds without guard when guard store is down", func(t *testing.T) {
		m := newGenerationMocks(t)

		m.idGenerator.EXPECT().NewID().Return("owner-3").Once()
		m.guard.EXPECT().Acquire(mock.Anything, "user_1", mock.Anything, "owner-3", mock.Anything).
			Return(errs.ErrDatabaseConnection)
		m.images.EXPECT().Generate(mock.Anything, mock.Anything).Return([]string{"https://img/1.png"}, nil)
		m.idGenerator.EXPECT().NewID().Return("gen_3").Once()
		m.generations.EXPECT().Create(ctx, mock.Anything).Return(nil)

		result, err := m.service(singleImageConfig()).GeneratePreviews(ctx, usecase.PreviewRequest{
			UserID: "user_1", Breed: "corgi", Style: "cute",
		})

		require.NoError(t, err)
		assert.Equal(t, "gen_3", result.GenerationID)
		m.guard.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("returns images even when the record cannot be stored", func(t *testing.T) {
		m := newGenerationMocks(t)

		m.expectGuard("user_1")
		m.images.EXPECT().Generate(mock.Anything, mock.Anything).Return([]string{"https://img/1.png"}, nil)
		m.idGenerator.EXPECT().NewID().Return("gen_4").Once()
		m.generations.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDatabaseConnection)

		result, err := m.service(singleImageConfig()).GeneratePreviews(ctx, usecase.PreviewRequest{
			UserID: "user_1", Breed: "corgi", Style: "cute",
		})

		require.NoError(t, err)
		assert.Empty(t, result.GenerationID)
		assert.Len(t, result.Images, 1)
	})

	t.Run("rejects missing breed", func(t *testing.T) {
		m := newGenerationMocks(t)

		_, err := m.service(DefaultConfig()).GeneratePreviews(ctx, usecase.PreviewRequest{UserID: "user_1", Breed: " "})

		assert.ErrorIs(t, err, errs.ErrInvalidGenerationRequest)
	})
}

func TestService_UnlockHD(t *testing.T) {
	ctx := context.Background()
	images := []string{"https://img/1.png", "https://img/2.png"}

	ownRecord := func() *entity.Generation {
		return &entity.Generation{ID: "gen_1", UserID: "user_1", Style: entity.StyleKawaii, PreviewURLs: images}
	}

	t.Run("debits after output and marks the record paid", func(t *testing.T) {
		m := newGenerationMocks(t)

		// Setup mocks
		m.generations.EXPECT().GetByID(ctx, "gen_1").Return(ownRecord(), nil)
		m.expectGuard("user_1")
		m.ledger.EXPECT().HasDebitFor(ctx, "user_1", "gen_1").Return(false, nil)
		m.ledger.EXPECT().Debit(ctx, "user_1", int64(3), "gen_1").
			Return(&entity.DebitResult{Success: true, RemainingBalance: 7}, nil)
		m.generations.EXPECT().Update(ctx, "gen_1", mock.MatchedBy(func(u entity.GenerationUpdate) bool {
			return u.Paid != nil && *u.Paid && len(u.HDURLs) == 2 &&
				u.PaymentID != nil && *u.PaymentID == entity.CreditsPaymentID(fixedTime) &&
				u.AmountCents != nil && *u.AmountCents == 0
		})).Return(ownRecord(), nil)

		// Execute
		result, err := m.service(DefaultConfig()).UnlockHD(ctx, usecase.HDRequest{
			UserID: "user_1", GenerationID: "gen_1", Images: images,
		})

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.CreditsUsed)
		assert.Equal(t, int64(7), result.RemainingBalance)
		assert.Equal(t, images, result.Images)
		assert.True(t, result.RecordUpdated)
	})

	t.Run("charges the stored style whatever style the request names", func(t *testing.T) {
		m := newGenerationMocks(t)

		// Setup mocks
		m.generations.EXPECT().GetByID(ctx, "gen_1").Return(ownRecord(), nil)
		m.expectGuard("user_1")
		m.ledger.EXPECT().HasDebitFor(ctx, "user_1", "gen_1").Return(false, nil)
		m.ledger.EXPECT().Debit(ctx, "user_1", int64(3), "gen_1").
			Return(&entity.DebitResult{Success: true, RemainingBalance: 2}, nil)
		m.generations.EXPECT().Update(ctx, "gen_1", mock.Anything).Return(ownRecord(), nil)

		// Execute
		result, err := m.service(DefaultConfig()).UnlockHD(ctx, usecase.HDRequest{
			UserID: "user_1", GenerationID: "gen_1", Style: "cute",
		})

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.CreditsUsed)
		assert.Equal(t, images, result.Images)
		m.ledger.AssertNotCalled(t, "Debit", ctx, "user_1", int64(1), "gen_1")
	})

	t.Run("reports required and current on insufficient balance", func(t *testing.T) {
		m := newGenerationMocks(t)

		m.generations.EXPECT().GetByID(ctx, "gen_1").Return(nil, errs.ErrGenerationNotFound)
		m.expectGuard("user_1")
		m.ledger.EXPECT().HasDebitFor(ctx, "user_1", "gen_1").Return(false, nil)
		m.ledger.EXPECT().Debit(ctx, "user_1", int64(2), "gen_1").
			Return(&entity.DebitResult{Success: false, RemainingBalance: 1}, nil)

		result, err := m.service(DefaultConfig()).UnlockHD(ctx, usecase.HDRequest{
			UserID: "user_1", GenerationID: "gen_1", Style: "chibi", Images: images,
		})

		assert.Nil(t, result)
		var insufficient *errs.InsufficientCreditsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int64(2), insufficient.Required)
		assert.Equal(t, int64(1), insufficient.Current)
		m.generations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("logs reconcile entry when the record update fails", func(t *testing.T) {
		m := newGenerationMocks(t)

		m.generations.EXPECT().GetByID(ctx, "gen_1").Return(ownRecord(), nil)
		m.expectGuard("user_1")
		m.ledger.EXPECT().HasDebitFor(ctx, "user_1", "gen_1").Return(false, nil)
		m.ledger.EXPECT().Debit(ctx, "user_1", int64(3), "gen_1").
			Return(&entity.DebitResult{Success: true, RemainingBalance: 0}, nil)
		m.generations.EXPECT().Update(ctx, "gen_1", mock.Anything).Return(nil, errs.ErrDatabaseConnection)
		m.logger.EXPECT().Error("Failed to update generation record after debit", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["reconcile"] == true && fields["generationId"] == "gen_1"
		})).Return()

		result, err := m.service(DefaultConfig()).UnlockHD(ctx, usecase.HDRequest{
			UserID: "user_1", GenerationID: "gen_1", Images: images,
		})

		require.NoError(t, err)
		assert.False(t, result.RecordUpdated)
		assert.Equal(t, int64(3), result.CreditsUsed)
	})

	t.Run("does not charge a paid generation twice", func(t *testing.T) {
		m := newGenerationMocks(t)
		paid := ownRecord()
		paid.Paid = true
		paid.HDURLs = []string{"https://img/hd.png"}

		m.generations.EXPECT().GetByID(ctx, "gen_1").Return(paid, nil)
		m.expectGuard("user_1")
		m.ledger.EXPECT().GetBalance(ctx, "user_1").Return(int64(5), nil)

		result, err := m.service(DefaultConfig()).UnlockHD(ctx, usecase.HDRequest{
			UserID: "user_1", GenerationID: "gen_1", Images: images,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(0), result.CreditsUsed)
		assert.Equal(t, int64(5), result.RemainingBalance)
		assert.Equal(t, []string{"https://img/hd.png"}, result.Images)
		m.ledger.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("does not charge when a debit is already recorded", func(t *testing.T) {
		m := newGenerationMocks(t)

		m.generations.EXPECT().GetByID(ctx, "gen_1").Return(nil, errs.ErrGenerationNotFound)
		m.expectGuard("user_1")
		m.ledger.EXPECT().HasDebitFor(ctx, "user_1", "gen_1").Return(true, nil)
		m.ledger.EXPECT().GetBalance(ctx, "user_1").Return(int64(4), nil)

		result, err := m.service(DefaultConfig()).UnlockHD(ctx, usecase.HDRequest{
			UserID: "user_1", GenerationID: "gen_1", Images: images,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(0), result.CreditsUsed)
		m.ledger.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("refuses another user's generation", func(t *testing.T) {
		m := newGenerationMocks(t)
		foreign := ownRecord()
		foreign.UserID = "user_2"

		m.generations.EXPECT().GetByID(ctx, "gen_1").Return(foreign, nil)

		_, err := m.service(DefaultConfig()).UnlockHD(ctx, usecase.HDRequest{
			UserID: "user_1", GenerationID: "gen_1", Images: images,
		})

		assert.ErrorIs(t, err, errs.ErrGenerationNotOwned)
	})

	t.Run("never debits without usable output", func(t *testing.T) {
		m := newGenerationMocks(t)

		m.expectGuard("user_1")

		_, err := m.service(DefaultConfig()).UnlockHD(ctx, usecase.HDRequest{
			UserID: "user_1", Images: []string{"", "  "},
		})

		assert.ErrorIs(t, err, errs.ErrInvalidGenerationRequest)
		m.ledger.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Records(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a client supplied record", func(t *testing.T) {
		m := newGenerationMocks(t)

		m.idGenerator.EXPECT().NewID().Return("gen_9")
		m.generations.EXPECT().Create(ctx, mock.MatchedBy(func(g *entity.Generation) bool {
			return g.ID == "gen_9" && g.Paid && g.PaymentID == "pi_1" && g.AmountCents == 499
		})).Return(nil)

		record, err := m.service(DefaultConfig()).CreateRecord(ctx, usecase.CreateGenerationRequest{
			UserID: "user_1", Breed: "pug", Style: "kawaii", PreviewURLs: []string{"p"},
			Paid: true, PaymentID: "pi_1", AmountCents: 499,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StyleKawaii, record.Style)
		assert.Empty(t, record.HDURLs)
	})

	t.Run("rejects record without previews", func(t *testing.T) {
		m := newGenerationMocks(t)
		m.idGenerator.EXPECT().NewID().Return("gen_10")

		_, err := m.service(DefaultConfig()).CreateRecord(ctx, usecase.CreateGenerationRequest{
			UserID: "user_1", Breed: "pug", Style: "cute",
		})

		assert.ErrorIs(t, err, errs.ErrInvalidGenerationRequest)
	})

	t.Run("lists records for the user", func(t *testing.T) {
		m := newGenerationMocks(t)
		m.generations.EXPECT().ListByUser(ctx, "user_1").Return([]*entity.Generation{{ID: "gen_1"}}, nil)

		records, err := m.service(DefaultConfig()).ListRecords(ctx, "user_1")

		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}
