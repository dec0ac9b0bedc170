package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/petavatar-credits/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	testCases := []struct {
		name        string
		userID      string
		amount      int64
		kind        TransactionKind
		expectedErr error
	}{
		{"Purchase credit", "user_1", 10, KindPurchase, nil},
		{"Reward credit", "user_1", 3, KindReward, nil},
		{"Refund credit", "user_1", 2, KindRefund, nil},
		{"Generation debit", "user_1", -2, KindGeneration, nil},
		{"Positive generation", "user_1", 2, KindGeneration, errs.ErrInvalidAmount},
		{"Negative purchase", "user_1", -10, KindPurchase, errs.ErrInvalidAmount},
		{"Zero amount", "user_1", 0, KindReward, errs.ErrInvalidAmount},
		{"Unknown kind", "user_1", 1, TransactionKind("bonus"), errs.ErrInvalidTransactionKind},
		{"Empty user", "", 1, KindPurchase, errs.ErrInvalidUserID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx, err := NewTransaction("tx-1", tc.userID, tc.amount, tc.kind, "note", mockTime)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, tx)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, fixedTime, tx.CreatedAt)
			assert.Equal(t, tc.amount > 0, tx.IsCredit())
			assert.Equal(t, tc.amount < 0, tx.IsDebit())
		})
	}
}

func TestTransaction_Builders(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Once()

	tx, err := NewTransaction("tx-1", "user_1", 30, KindPurchase, CreditDescription(KindPurchase, 30), mockTime)
	require.NoError(t, err)

	tx.WithPaymentRef("pi_1").WithRelatedID("cs_1")

	assert.Equal(t, "pi_1", tx.ExternalPaymentRef)
	assert.Equal(t, "cs_1", tx.RelatedID)
	assert.Equal(t, "purchased 30 credits", tx.Description)
	assert.Equal(t, "refund of 2 credits", CreditDescription(KindRefund, 2))
	assert.Equal(t, "HD generation used 3 credits", GenerationDescription(3))
}

func TestTransactionKind_IsCreditKind(t *testing.T) {
	assert.True(t, KindPurchase.IsCreditKind())
	assert.True(t, KindRefund.IsCreditKind())
	assert.False(t, KindReward.IsCreditKind())
	assert.False(t, KindGeneration.IsCreditKind())
}
