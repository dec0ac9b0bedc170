package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/time"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDb, DriverName: "postgres"}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestUnitOfWork_CommitRunsInOneTransaction(t *testing.T) {
	db, mock := newMockGorm(t)
	uow := NewUnitOfWork(db, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider(), "SET TRANSACTION ISOLATION LEVEL READ COMMITTED")

	// Setup mocks
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET TRANSACTION ISOLATION LEVEL READ COMMITTED")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE accounts SET balance = balance + $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(8))
	mock.ExpectExec(`INSERT INTO "transactions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Execute
	ctx, err := uow.Begin(context.Background())
	require.NoError(t, err)

	balance, err := uow.GetAccountRepository(ctx).Credit(ctx, "user_1", 5)
	require.NoError(t, err)

	err = uow.GetTransactionRepository(ctx).Create(ctx, refundEntry())
	require.NoError(t, err)

	// Assertions
	require.NoError(t, uow.Commit(ctx))
	assert.Equal(t, int64(8), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_RollbackAfterFailure(t *testing.T) {
	db, mock := newMockGorm(t)
	uow := NewUnitOfWork(db, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider(), "")

	// Setup mocks
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transactions"`).WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	// Execute
	ctx, err := uow.Begin(context.Background())
	require.NoError(t, err)
	createErr := uow.GetTransactionRepository(ctx).Create(ctx, refundEntry())

	// Assertions
	assert.Error(t, createErr)
	assert.NoError(t, uow.Rollback(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_IsolationFailureAbortsBegin(t *testing.T) {
	db, mock := newMockGorm(t)
	uow := NewUnitOfWork(db, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider(), "SET TRANSACTION ISOLATION LEVEL SERIALIZABLE")

	mock.ExpectBegin()
	mock.ExpectExec("SET TRANSACTION").WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	_, err := uow.Begin(context.Background())
	assert.ErrorContains(t, err, "failed to set transaction isolation level")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_CommitWithoutTransaction(t *testing.T) {
	db, _ := newMockGorm(t)
	uow := NewUnitOfWork(db, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider(), "")

	assert.Error(t, uow.Commit(context.Background()))
	assert.Error(t, uow.Rollback(context.Background()))
}

func refundEntry() *entity.Transaction {
	return &entity.Transaction{
		ID:          "tx-refund",
		UserID:      "user_1",
		Amount:      5,
		Kind:        entity.KindRefund,
		Description: "refund of 5 credits",
		CreatedAt:   time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}
