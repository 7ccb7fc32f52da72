package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/walletkeys/internal/errors"
	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
	"github.com/allisson/walletkeys/internal/wallet/usecase"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func TestNewKeyRecordRepositories(t *testing.T) {
	db, _ := newMockDB(t)

	assert.IsType(t, &PostgreSQLKeyRecordRepository{}, NewPostgreSQLKeyRecordRepository(db))
	assert.IsType(t, &MySQLKeyRecordRepository{}, NewMySQLKeyRecordRepository(db))
	assert.IsType(t, &SQLiteKeyRecordRepository{}, NewSQLiteKeyRecordRepository(db))
}

func TestPostgreSQLKeyRecordRepository_Create_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("UniqueViolation", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO wallet_key_records").
			WillReturnError(&pq.Error{Code: pqUniqueViolation})

		err := NewPostgreSQLKeyRecordRepository(db).Create(ctx, newTestRecord(t, "wallet-1", "v1"))
		assert.ErrorIs(t, err, walletDomain.ErrKeyRecordAlreadyExists)
	})

	t.Run("OtherError", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO wallet_key_records").
			WillReturnError(&pq.Error{Code: "08006"})

		err := NewPostgreSQLKeyRecordRepository(db).Create(ctx, newTestRecord(t, "wallet-1", "v1"))
		assert.ErrorIs(t, err, apperrors.ErrStorage)
		assert.NotErrorIs(t, err, walletDomain.ErrKeyRecordAlreadyExists)
	})
}

func TestMySQLKeyRecordRepository_Create_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("DuplicateEntry", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO wallet_key_records").
			WillReturnError(&mysql.MySQLError{Number: mysqlDuplicateEntry, Message: "Duplicate entry"})

		err := NewMySQLKeyRecordRepository(db).Create(ctx, newTestRecord(t, "wallet-1", "v1"))
		assert.ErrorIs(t, err, walletDomain.ErrKeyRecordAlreadyExists)
	})

	t.Run("OtherError", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO wallet_key_records").
			WillReturnError(&mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"})

		err := NewMySQLKeyRecordRepository(db).Create(ctx, newTestRecord(t, "wallet-1", "v1"))
		assert.ErrorIs(t, err, apperrors.ErrStorage)
	})
}

func TestKeyRecordRepository_StorageErrors(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	constructors := map[string]func(*sql.DB) usecase.KeyRecordRepository{
		"postgresql": func(db *sql.DB) usecase.KeyRecordRepository { return NewPostgreSQLKeyRecordRepository(db) },
		"mysql":      func(db *sql.DB) usecase.KeyRecordRepository { return NewMySQLKeyRecordRepository(db) },
		"sqlite":     func(db *sql.DB) usecase.KeyRecordRepository { return NewSQLiteKeyRecordRepository(db) },
	}

	for name, newRepo := range constructors {
		t.Run(name+"/GetByWalletID", func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectQuery("SELECT .+ FROM wallet_key_records").WillReturnError(dbErr)

			record, err := newRepo(db).GetByWalletID(ctx, "wallet-1")
			assert.Nil(t, record)
			assert.ErrorIs(t, err, apperrors.ErrStorage)
			assert.ErrorIs(t, err, dbErr)
		})

		t.Run(name+"/ListByMasterKeyID", func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectQuery("SELECT .+ FROM wallet_key_records").WillReturnError(dbErr)

			records, err := newRepo(db).ListByMasterKeyID(ctx, "v1")
			assert.Nil(t, records)
			assert.ErrorIs(t, err, apperrors.ErrStorage)
		})

		t.Run(name+"/Update", func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec("UPDATE wallet_key_records").WillReturnError(dbErr)

			err := newRepo(db).Update(ctx, newTestRecord(t, "wallet-1", "v2"), "old")
			assert.ErrorIs(t, err, apperrors.ErrStorage)
		})

		t.Run(name+"/Update_NoRowsAffected", func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec("UPDATE wallet_key_records").WillReturnResult(sqlmock.NewResult(0, 0))

			err := newRepo(db).Update(ctx, newTestRecord(t, "wallet-1", "v2"), "old")
			assert.ErrorIs(t, err, walletDomain.ErrKeyRecordConflict)
		})

		t.Run(name+"/Update_RowsAffectedError", func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec("UPDATE wallet_key_records").WillReturnResult(sqlmock.NewErrorResult(dbErr))

			err := newRepo(db).Update(ctx, newTestRecord(t, "wallet-1", "v2"), "old")
			assert.ErrorIs(t, err, apperrors.ErrStorage)
		})

		t.Run(name+"/Delete", func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec("DELETE FROM wallet_key_records").WillReturnError(dbErr)

			err := newRepo(db).Delete(ctx, "wallet-1")
			assert.ErrorIs(t, err, apperrors.ErrStorage)
		})
	}
}

func TestPostgreSQLKeyRecordRepository_ListByMasterKeyID_MalformedRow(t *testing.T) {
	db, mock := newMockDB(t)
	record := newTestRecord(t, "wallet-1", "v1")
	row := toRow(record)

	rows := sqlmock.NewRows([]string{
		"wallet_id", "user_id", "ciphertext_key", "wrapped_data_key", "master_key_id", "data_key_id",
		"algorithm", "kdf", "pin_salt", "pin_nonce", "data_key_nonce", "master_nonce", "created_at", "updated_at",
	}).AddRow(
		row.WalletID, row.UserID.String, "%%%", row.WrappedDataKey, row.MasterKeyID, row.DataKeyID,
		row.Algorithm, row.KDF, row.PinSalt, row.PinNonce, row.DataKeyNonce, row.MasterNonce,
		row.CreatedAt, row.UpdatedAt,
	)
	mock.ExpectQuery("SELECT .+ FROM wallet_key_records").WithArgs("v1").WillReturnRows(rows)

	records, err := NewPostgreSQLKeyRecordRepository(db).ListByMasterKeyID(context.Background(), "v1")
	assert.Nil(t, records)
	assert.ErrorIs(t, err, walletDomain.ErrMalformedRecord)
	assert.NotErrorIs(t, err, apperrors.ErrStorage)
	assert.Contains(t, err.Error(), "ciphertext_key")
}
