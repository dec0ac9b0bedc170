package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/persistence"
)

// memStore is an in-memory ledger store with rollback support, used to exercise
// the service end to end without a database.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]int64
	entries  []*entity.Transaction
	creates  atomic.Int32
	// createDelay widens the window between the missing-row read and the insert
	createDelay time.Duration
}

type memTxKey struct{}

type memTx struct {
	undo []func()
}

func newMemStore() *memStore {
	return &memStore{accounts: make(map[string]int64)}
}

func (s *memStore) Begin(ctx context.Context) (context.Context, error) {
	return context.WithValue(ctx, memTxKey{}, &memTx{}), nil
}

func (s *memStore) Commit(ctx context.Context) error {
	if tx, ok := ctx.Value(memTxKey{}).(*memTx); ok {
		tx.undo = nil
	}
	return nil
}

func (s *memStore) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(memTxKey{}).(*memTx)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
	return nil
}

func (s *memStore) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return &memAccounts{store: s, ctx: ctx}
}

func (s *memStore) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return &memEntries{store: s, ctx: ctx}
}

func (s *memStore) record(ctx context.Context, undo func()) {
	if tx, ok := ctx.Value(memTxKey{}).(*memTx); ok {
		tx.undo = append(tx.undo, undo)
	}
}

func (s *memStore) ledgerSum(userID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum int64
	for _, e := range s.entries {
		if e.UserID == userID {
			sum += e.Amount
		}
	}
	return sum
}

type memAccounts struct {
	store *memStore
	ctx   context.Context
}

func (r *memAccounts) GetByUserID(_ context.Context, userID string) (*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	balance, ok := r.store.accounts[userID]
	if !ok {
		return nil, errs.ErrAccountNotFound
	}
	return entity.RestoreAccount(userID, balance, time.Time{}, time.Time{}), nil
}

func (r *memAccounts) Create(_ context.Context, account *entity.Account) error {
	if r.store.createDelay > 0 {
		time.Sleep(r.store.createDelay)
	}
	r.store.creates.Add(1)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.accounts[account.UserID]; ok {
		return errs.ErrDuplicateAccount
	}
	r.store.accounts[account.UserID] = account.Balance()
	r.store.record(r.ctx, func() { delete(r.store.accounts, account.UserID) })
	return nil
}

func (r *memAccounts) DebitIfSufficient(_ context.Context, userID string, amount int64) (int64, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	balance, ok := r.store.accounts[userID]
	if !ok {
		return 0, false, errs.ErrAccountNotFound
	}
	if balance < amount {
		return balance, false, nil
	}
	r.store.accounts[userID] = balance - amount
	r.store.record(r.ctx, func() { r.store.accounts[userID] += amount })
	return balance - amount, true, nil
}

func (r *memAccounts) Credit(_ context.Context, userID string, amount int64) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	balance, ok := r.store.accounts[userID]
	if !ok {
		return 0, errs.ErrAccountNotFound
	}
	next, err := entity.AddCredits(balance, amount)
	if err != nil {
		return 0, err
	}
	r.store.accounts[userID] = next
	r.store.record(r.ctx, func() { r.store.accounts[userID] -= amount })
	return next, nil
}

func (r *memAccounts) FindDiscrepancies(_ context.Context) ([]entity.BalanceDiscrepancy, error) {
	return nil, nil
}

type memEntries struct {
	store *memStore
	ctx   context.Context
}

func (r *memEntries) Create(_ context.Context, transaction *entity.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if transaction.ExternalPaymentRef != "" {
		for _, e := range r.store.entries {
			if e.UserID == transaction.UserID && e.ExternalPaymentRef == transaction.ExternalPaymentRef {
				return errs.ErrDuplicatePayment
			}
		}
	}
	r.store.entries = append(r.store.entries, transaction)
	n := len(r.store.entries)
	r.store.record(r.ctx, func() { r.store.entries = r.store.entries[:n-1] })
	return nil
}

func (r *memEntries) ListByUser(_ context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Transaction
	for _, e := range r.store.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memEntries) ExistsByPaymentRef(_ context.Context, userID, paymentRef string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.entries {
		if e.UserID == userID && e.ExternalPaymentRef == paymentRef {
			return true, nil
		}
	}
	return false, nil
}

func (r *memEntries) ExistsByRelatedID(_ context.Context, userID string, kind entity.TransactionKind, relatedID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.entries {
		if e.UserID == userID && e.Kind == kind && e.RelatedID == relatedID {
			return true, nil
		}
	}
	return false, nil
}

// sequenceIDs hands out predictable ids
type sequenceIDs struct {
	n atomic.Int64
}

func (g *sequenceIDs) NewID() string {
	return fmt.Sprintf("tx-%d", g.n.Add(1))
}

// tickingClock advances one second on every read so entries have distinct timestamps
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *tickingClock) Since(t time.Time) coreport.Duration {
	return coreport.Duration(c.Now().Sub(t))
}

func (c *tickingClock) After(ctx context.Context, _ coreport.Duration) error {
	return ctx.Err()
}

func (c *tickingClock) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// discardLogger drops every entry
type discardLogger struct{}

func (discardLogger) SetLevel(coreport.LogLevel) {}
func (discardLogger) GetLevel() coreport.LogLevel { return coreport.LogLevelDebug }
func (l discardLogger) Named(string) coreport.Logger { return l }
func (discardLogger) Debug(string, map[string]any) {}
func (discardLogger) Info(string, map[string]any) {}
func (discardLogger) Warn(string, map[string]any) {}
func (discardLogger) Error(string, map[string]any) {}
func (discardLogger) Flush() error { return nil }

func newMemService(store *memStore) *Service {
	return NewLedgerService(
		store,
		&sequenceIDs{},
		&tickingClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		discardLogger{},
		DefaultConfig(),
	)
}
