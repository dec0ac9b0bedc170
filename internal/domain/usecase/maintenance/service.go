package maintenance

import (
	"context"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
)

// Service runs the periodic ledger housekeeping jobs
type Service struct {
	uow    persistence.UnitOfWork
	guard  persistence.RequestGuard
	logger coreport.Logger
}

// NewMaintenanceService creates a new maintenance service. guard may be nil when the
// configured request guard expires entries by itself.
func NewMaintenanceService(uow persistence.UnitOfWork, guard persistence.RequestGuard, logger coreport.Logger) *Service {
	return &Service{uow: uow, guard: guard, logger: logger}
}

var _ usecase.MaintenanceUseCase = (*Service)(nil)

// ReconcileBalances compares every account balance with the sum of its transactions
// and logs each mismatch. Nothing is corrected automatically.
func (s *Service) ReconcileBalances(ctx context.Context) ([]entity.BalanceDiscrepancy, error) {
	discrepancies, err := s.uow.GetAccountRepository(ctx).FindDiscrepancies(ctx)
	if err != nil {
		s.logger.Error("Ledger reconciliation failed", map[string]any{"error": err.Error()})
		return nil, err
	}

	for _, d := range discrepancies {
		s.logger.Error("Ledger balance mismatch", map[string]any{
			"userId":       d.UserID,
			"balance":      d.Balance,
			"ledgerSum":    d.LedgerSum,
			"delta":        d.Delta(),
			"transactions": d.Transactions,
			"reconcile":    true,
		})
	}

	s.logger.Info("Ledger reconciliation finished", map[string]any{
		"mismatches": len(discrepancies),
	})
	return discrepancies, nil
}

// PurgeExpiredGuards deletes request guards whose lease has run out
func (s *Service) PurgeExpiredGuards(ctx context.Context) (int64, error) {
	if s.guard == nil {
		return 0, nil
	}

	purged, err := s.guard.PurgeExpired(ctx)
	if err != nil {
		s.logger.Warn("Failed to purge expired request guards", map[string]any{"error": err.Error()})
		return 0, err
	}
	if purged > 0 {
		s.logger.Debug("Expired request guards purged", map[string]any{"count": purged})
	}
	return purged, nil
}
