package ledger

import (
	"context"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
)

// ListTransactions returns the user's most recent transactions, newest first
func (s *Service) ListTransactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	if err := s.validator.ValidateUserID(userID); err != nil {
		return nil, err
	}

	limit = s.normalizeLimit(limit)
	transactions, err := s.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID, limit)
	if err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{
			"userId": userID,
			"limit":  limit,
			"error":  err.Error(),
		})
		return nil, err
	}

	return transactions, nil
}

func (s *Service) normalizeLimit(limit int) int {
	if limit <= 0 {
		return s.config.DefaultHistoryLimit
	}
	if limit > s.config.MaxHistoryLimit {
		return s.config.MaxHistoryLimit
	}
	return limit
}
