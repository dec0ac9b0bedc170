package ledger

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
)

// GetBalance returns the user's balance, lazily creating the account on first use
func (s *Service) GetBalance(ctx context.Context, userID string) (int64, error) {
	if err := s.validator.ValidateUserID(userID); err != nil {
		return 0, err
	}

	account, err := s.ensureAccount(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to resolve account", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return 0, err
	}

	return account.Balance(), nil
}

// ensureAccount returns the existing account or creates it with the initial grant
func (s *Service) ensureAccount(ctx context.Context, userID string) (*entity.Account, error) {
	account, err := s.uow.GetAccountRepository(ctx).GetByUserID(ctx, userID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, errs.ErrAccountNotFound) {
		return nil, err
	}

	// The creation is shared by every coalesced caller, so it must outlive the first caller's ctx
	initCtx := context.WithoutCancel(ctx)
	result, err, _ := s.initGroup.Do(userID, func() (any, error) {
		return s.initializeAccount(initCtx, userID)
	})
	if err != nil {
		return nil, err
	}
	return result.(*entity.Account), nil
}

// initializeAccount creates the account and its reward transaction atomically.
// Losing a creation race to another process is not an error: the winner's row is returned.
func (s *Service) initializeAccount(ctx context.Context, userID string) (*entity.Account, error) {
	account, err := entity.NewAccount(userID, s.config.InitialCredits, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetAccountRepository(txCtx).Create(txCtx, account); err != nil {
		s.rollback(txCtx, userID, "initialize")
		if errors.Is(err, errs.ErrDuplicateAccount) {
			s.logger.Info("Account created concurrently, reading existing row", map[string]any{
				"userId": userID,
			})
			return s.uow.GetAccountRepository(ctx).GetByUserID(ctx, userID)
		}
		return nil, err
	}

	if s.config.InitialCredits > 0 {
		grant, err := entity.NewTransaction(
			s.idGenerator.NewID(),
			userID,
			s.config.InitialCredits,
			entity.KindReward,
			entity.NewAccountGrantDescription,
			s.timeProvider,
		)
		if err != nil {
			s.rollback(txCtx, userID, "initialize")
			return nil, err
		}
		if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, grant); err != nil {
			s.rollback(txCtx, userID, "initialize")
			return nil, err
		}
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.rollback(txCtx, userID, "initialize")
		return nil, err
	}

	s.logger.Info("Account created", map[string]any{
		"userId":  userID,
		"balance": account.Balance(),
	})

	return account, nil
}
