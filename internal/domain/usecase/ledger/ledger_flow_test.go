package ledger

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
)

func TestLedger_NewUserLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newMemService(store)
	userID := "user_new"

	// First read creates the account with the grant
	balance, err := svc.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), balance)

	// Debit the whole grant
	debit, err := svc.Debit(ctx, userID, 3, "gen_1")
	require.NoError(t, err)
	assert.True(t, debit.Success)
	assert.Equal(t, int64(0), debit.RemainingBalance)

	// Nothing left to spend
	debit, err = svc.Debit(ctx, userID, 1, "gen_2")
	require.NoError(t, err)
	assert.False(t, debit.Success)
	assert.Equal(t, int64(0), debit.RemainingBalance)

	// Purchase
	credit, err := svc.Credit(ctx, entity.CreditRequest{UserID: userID, Amount: 10, ExternalPaymentRef: "pi_A"})
	require.NoError(t, err)
	assert.True(t, credit.Success)
	assert.False(t, credit.Duplicate)
	assert.Equal(t, int64(10), credit.NewBalance)

	// Replay of the same payment is absorbed
	credit, err = svc.Credit(ctx, entity.CreditRequest{UserID: userID, Amount: 10, ExternalPaymentRef: "pi_A"})
	require.NoError(t, err)
	assert.True(t, credit.Success)
	assert.True(t, credit.Duplicate)
	assert.Equal(t, int64(10), credit.NewBalance)

	balance, err = svc.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance)

	history, err := svc.ListTransactions(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, entity.KindPurchase, history[0].Kind)
	assert.Equal(t, "pi_A", history[0].ExternalPaymentRef)
	assert.Equal(t, entity.KindGeneration, history[1].Kind)
	assert.Equal(t, int64(-3), history[1].Amount)
	assert.Equal(t, "gen_1", history[1].RelatedID)
	assert.Equal(t, entity.KindReward, history[2].Kind)
	assert.Equal(t, entity.NewAccountGrantDescription, history[2].Description)

	// Balance always equals the sum of the log
	assert.Equal(t, balance, store.ledgerSum(userID))
}

func TestLedger_ConcurrentFirstReadsCreateOneAccount(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.createDelay = 5 * time.Millisecond
	svc := newMemService(store)

	const readers = 20
	balances := make([]int64, readers)
	errors := make([]error, readers)

	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			balances[i], errors[i] = svc.GetBalance(ctx, "user_race")
		}(i)
	}
	wg.Wait()

	for i := 0; i < readers; i++ {
		require.NoError(t, errors[i])
		assert.Equal(t, int64(3), balances[i])
	}
	assert.Equal(t, int64(3), store.ledgerSum("user_race"))

	history, err := svc.ListTransactions(ctx, "user_race", 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestLedger_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newMemService(store)
	userID := "user_spender"

	_, err := svc.Credit(ctx, entity.CreditRequest{UserID: userID, Amount: 7, ExternalPaymentRef: "pi_seed"})
	require.NoError(t, err)

	// 10 credits available, 20 attempts of 1
	const attempts = 20
	results := make(chan bool, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Debit(ctx, userID, 1, fmt.Sprintf("gen_%d", i))
			if assert.NoError(t, err) {
				results <- res.Success
			}
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for ok := range results {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 10, succeeded)

	balance, err := svc.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
	assert.Equal(t, int64(0), store.ledgerSum(userID))
}

func TestLedger_ConcurrentDuplicateCreditsApplyOnce(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newMemService(store)
	userID := "user_webhook"

	_, err := svc.GetBalance(ctx, userID)
	require.NoError(t, err)

	const deliveries = 8
	var wg sync.WaitGroup
	duplicates := make(chan bool, deliveries)
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Credit(ctx, entity.CreditRequest{UserID: userID, Amount: 30, ExternalPaymentRef: "pi_dup"})
			if assert.NoError(t, err) {
				assert.True(t, res.Success)
				duplicates <- res.Duplicate
			}
		}()
	}
	wg.Wait()
	close(duplicates)

	fresh := 0
	for dup := range duplicates {
		if !dup {
			fresh++
		}
	}
	assert.Equal(t, 1, fresh)

	balance, err := svc.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(33), balance)
	assert.Equal(t, balance, store.ledgerSum(userID))
}

func TestLedger_HasDebitFor(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newMemService(store)

	found, err := svc.HasDebitFor(ctx, "user_hd", "gen_9")
	require.NoError(t, err)
	assert.False(t, found)

	res, err := svc.Debit(ctx, "user_hd", 2, "gen_9")
	require.NoError(t, err)
	require.True(t, res.Success)

	found, err = svc.HasDebitFor(ctx, "user_hd", "gen_9")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = svc.HasDebitFor(ctx, "user_hd", "")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLedger_ReplayedDebitChargesOnce(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newMemService(store)
	userID := "user_replay"

	first, err := svc.Debit(ctx, userID, 1, "gen_1")
	require.NoError(t, err)
	require.True(t, first.Success)
	assert.Equal(t, int64(2), first.RemainingBalance)

	// Same related id again: reported as success, nothing charged
	replay, err := svc.Debit(ctx, userID, 1, "gen_1")
	require.NoError(t, err)
	assert.True(t, replay.Success)
	assert.Equal(t, int64(2), replay.RemainingBalance)

	// Replays succeed even once the balance could not cover the amount
	_, err = svc.Debit(ctx, userID, 2, "gen_2")
	require.NoError(t, err)
	replay, err = svc.Debit(ctx, userID, 2, "gen_2")
	require.NoError(t, err)
	assert.True(t, replay.Success)
	assert.Equal(t, int64(0), replay.RemainingBalance)

	// An empty related id is never a replay
	_, err = svc.Credit(ctx, entity.CreditRequest{UserID: userID, Amount: 2, ExternalPaymentRef: "pi_top_up"})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		res, err := svc.Debit(ctx, userID, 1, "")
		require.NoError(t, err)
		assert.True(t, res.Success)
	}

	balance, err := svc.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
	assert.Equal(t, balance, store.ledgerSum(userID))

	history, err := svc.ListTransactions(ctx, userID, 0)
	require.NoError(t, err)
	generationDebits := 0
	for _, tx := range history {
		if tx.Kind == entity.KindGeneration && tx.RelatedID == "gen_1" {
			generationDebits++
		}
	}
	assert.Equal(t, 1, generationDebits)
}
