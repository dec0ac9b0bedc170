package maintenance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	mcore "github.com/amirhossein-jamali/petavatar-credits/mocks/port/core"
	mpers "github.com/amirhossein-jamali/petavatar-credits/mocks/port/persistence"
)

func TestService_ReconcileBalances(t *testing.T) {
	ctx := context.Background()

	t.Run("logs every mismatch", func(t *testing.T) {
		// Setup mocks
		uow := new(mpers.MockUnitOfWork)
		accountRepo := new(mpers.MockAccountRepository)
		logger := new(mcore.MockLogger)

		uow.On("GetAccountRepository", ctx).Return(accountRepo)
		accountRepo.On("FindDiscrepancies", ctx).Return([]entity.BalanceDiscrepancy{
			{UserID: "user_1", Balance: 10, LedgerSum: 7, Transactions: 3},
		}, nil)
		logger.On("Error", "Ledger balance mismatch", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["delta"] == int64(3) && fields["reconcile"] == true
		})).Return()
		logger.On("Info", "Ledger reconciliation finished", mock.Anything).Return()

		// Execute
		found, err := NewMaintenanceService(uow, nil, logger).ReconcileBalances(ctx)

		// Assertions
		require.NoError(t, err)
		assert.Len(t, found, 1)
		uow.AssertExpectations(t)
		accountRepo.AssertExpectations(t)
		logger.AssertExpectations(t)
	})

	t.Run("returns store errors", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		accountRepo := new(mpers.MockAccountRepository)
		logger := new(mcore.MockLogger)

		uow.On("GetAccountRepository", ctx).Return(accountRepo)
		accountRepo.On("FindDiscrepancies", ctx).Return(nil, errs.ErrDatabaseConnection)
		logger.On("Error", "Ledger reconciliation failed", mock.Anything).Return()

		_, err := NewMaintenanceService(uow, nil, logger).ReconcileBalances(ctx)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		logger.AssertExpectations(t)
	})
}

func TestService_PurgeExpiredGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("purges through the guard", func(t *testing.T) {
		guard := mpers.NewMockRequestGuard(t)
		logger := mcore.NewMockLogger(t)
		guard.EXPECT().PurgeExpired(ctx).Return(int64(4), nil)
		logger.EXPECT().Debug("Expired request guards purged", mock.Anything).Return()

		purged, err := NewMaintenanceService(nil, guard, logger).PurgeExpiredGuards(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(4), purged)
	})

	t.Run("is a no-op without a purgeable guard", func(t *testing.T) {
		purged, err := NewMaintenanceService(nil, nil, mcore.NewMockLogger(t)).PurgeExpiredGuards(ctx)

		require.NoError(t, err)
		assert.Zero(t, purged)
	})
}
