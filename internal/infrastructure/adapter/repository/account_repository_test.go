package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
)

func TestAccountRepository_GetByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db, fixedClock{}, noopLogger())

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "balance", "created_at", "updated_at"}).
			AddRow("user_1", 7, fixedNow, fixedNow))

	account, err := repo.GetByUserID(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Equal(t, "user_1", account.UserID)
	assert.Equal(t, int64(7), account.Balance())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetByUserID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db, fixedClock{}, noopLogger())

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "balance", "created_at", "updated_at"}))

	_, err := repo.GetByUserID(context.Background(), "ghost")
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "inserted"},
		{
			name:    "lost creation race",
			execErr: &pgconn.PgError{Code: "23505", TableName: "accounts", ConstraintName: "accounts_pkey"},
			wantErr: errs.ErrDuplicateAccount,
		},
		{
			name:    "connection lost",
			execErr: errors.New("read tcp: connection reset by peer"),
			wantErr: errs.ErrDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewAccountRepository(db, fixedClock{}, noopLogger())
			account := entity.RestoreAccount("user_1", entity.InitialCredits, fixedNow, fixedNow)

			exec := mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
				WithArgs("user_1", entity.InitialCredits, fixedNow, fixedNow)
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.Create(context.Background(), account)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_DebitIfSufficient(t *testing.T) {
	debitQuery := regexp.QuoteMeta(`UPDATE accounts SET balance = balance - $1, updated_at = $2 WHERE user_id = $3 AND balance >= $4 RETURNING balance`)
	balanceQuery := regexp.QuoteMeta(`SELECT balance FROM accounts WHERE user_id = $1`)

	t.Run("applied", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, fixedClock{}, noopLogger())

		mock.ExpectQuery(debitQuery).
			WithArgs(int64(3), fixedNow, "user_1", int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(2))

		balance, applied, err := repo.DebitIfSufficient(context.Background(), "user_1", 3)
		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, int64(2), balance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient leaves balance untouched", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, fixedClock{}, noopLogger())

		mock.ExpectQuery(debitQuery).
			WithArgs(int64(5), fixedNow, "user_1", int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}))
		mock.ExpectQuery(balanceQuery).
			WithArgs("user_1").
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(1))

		balance, applied, err := repo.DebitIfSufficient(context.Background(), "user_1", 5)
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, int64(1), balance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing account", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, fixedClock{}, noopLogger())

		mock.ExpectQuery(debitQuery).WillReturnRows(sqlmock.NewRows([]string{"balance"}))
		mock.ExpectQuery(balanceQuery).WillReturnRows(sqlmock.NewRows([]string{"balance"}))

		_, applied, err := repo.DebitIfSufficient(context.Background(), "ghost", 1)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
		assert.False(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("serialization failure surfaces as store error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, fixedClock{}, noopLogger())

		mock.ExpectQuery(debitQuery).WillReturnError(&pgconn.PgError{Code: "40001", Message: "could not serialize access"})

		_, _, err := repo.DebitIfSufficient(context.Background(), "user_1", 1)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountRepository_Credit(t *testing.T) {
	creditQuery := regexp.QuoteMeta(`UPDATE accounts SET balance = balance + $1, updated_at = $2 WHERE user_id = $3 RETURNING balance`)

	t.Run("applied", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, fixedClock{}, noopLogger())

		mock.ExpectQuery(creditQuery).
			WithArgs(int64(30), fixedNow, "user_1").
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(33))

		balance, err := repo.Credit(context.Background(), "user_1", 30)
		require.NoError(t, err)
		assert.Equal(t, int64(33), balance)
	})

	t.Run("missing account", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, fixedClock{}, noopLogger())

		mock.ExpectQuery(creditQuery).WillReturnRows(sqlmock.NewRows([]string{"balance"}))

		_, err := repo.Credit(context.Background(), "ghost", 10)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("overflow", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, fixedClock{}, noopLogger())

		mock.ExpectQuery(creditQuery).WillReturnError(&pgconn.PgError{Code: "22003", Message: "bigint out of range"})

		_, err := repo.Credit(context.Background(), "user_1", 10)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}

func TestAccountRepository_FindDiscrepancies(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db, fixedClock{}, noopLogger())

	mock.ExpectQuery(`SELECT a.user_id, a.balance, COALESCE\(SUM\(t.amount\), 0\) AS ledger_sum`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "balance", "ledger_sum", "transactions"}).
			AddRow("user_1", 10, 7, 3))

	found, err := repo.FindDiscrepancies(context.Background())
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "user_1", found[0].UserID)
	assert.Equal(t, int64(3), found[0].Delta())
	assert.Equal(t, int64(3), found[0].Transactions)
	assert.NoError(t, mock.ExpectationsWereMet())
}
