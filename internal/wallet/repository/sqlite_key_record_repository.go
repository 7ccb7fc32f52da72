package repository

import (
	"context"
	"database/sql"
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/allisson/walletkeys/internal/database"
	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
)

// SQLiteKeyRecordRepository implements KeyRecordRepository for SQLite databases.
// It is meant for single-node deployments and tests; database.Connect limits SQLite to
// one open connection.
type SQLiteKeyRecordRepository struct {
	db *sql.DB
}

// NewSQLiteKeyRecordRepository creates a new SQLite key record repository.
func NewSQLiteKeyRecordRepository(db *sql.DB) *SQLiteKeyRecordRepository {
	return &SQLiteKeyRecordRepository{db: db}
}

// Create inserts a new record. A duplicate wallet id is ErrKeyRecordAlreadyExists.
func (s *SQLiteKeyRecordRepository) Create(ctx context.Context, record *walletDomain.EncryptedKeyRecord) error {
	querier := database.GetTx(ctx, s.db)

	query := `INSERT INTO wallet_key_records (` + keyRecordColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	row := toRow(record)
	_, err := querier.ExecContext(
		ctx,
		query,
		row.WalletID,
		row.UserID,
		row.CiphertextKey,
		row.WrappedDataKey,
		row.MasterKeyID,
		row.DataKeyID,
		row.Algorithm,
		row.KDF,
		row.PinSalt,
		row.PinNonce,
		row.DataKeyNonce,
		row.MasterNonce,
		row.CreatedAt,
		row.UpdatedAt,
	)
	if err != nil {
		if isSQLiteConstraintViolation(err) {
			return walletDomain.ErrKeyRecordAlreadyExists
		}
		return storageError(err, "failed to create key record")
	}
	return nil
}

// GetByWalletID returns the wallet's record or ErrKeyRecordNotFound.
func (s *SQLiteKeyRecordRepository) GetByWalletID(
	ctx context.Context,
	walletID string,
) (*walletDomain.EncryptedKeyRecord, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT ` + keyRecordColumns + `
			  FROM wallet_key_records
			  WHERE wallet_id = ?`

	row, err := scanRow(querier.QueryRowContext(ctx, query, walletID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, walletDomain.ErrKeyRecordNotFound
		}
		return nil, storageError(err, "failed to get key record by wallet id")
	}
	return row.toRecord()
}

// ListByMasterKeyID returns every record wrapped under masterKeyID, ordered by wallet id.
func (s *SQLiteKeyRecordRepository) ListByMasterKeyID(
	ctx context.Context,
	masterKeyID string,
) ([]*walletDomain.EncryptedKeyRecord, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT ` + keyRecordColumns + `
			  FROM wallet_key_records
			  WHERE master_key_id = ?
			  ORDER BY wallet_id`

	rows, err := querier.QueryContext(ctx, query, masterKeyID)
	if err != nil {
		return nil, storageError(err, "failed to list key records by master key id")
	}

	records, err := collectRows(rows)
	if err != nil {
		return nil, storageError(err, "failed to scan key records")
	}
	return records, nil
}

// Update replaces every ciphertext field of the record in one statement, only while the
// stored data_key_id still equals expectedDataKeyID.
func (s *SQLiteKeyRecordRepository) Update(
	ctx context.Context,
	record *walletDomain.EncryptedKeyRecord,
	expectedDataKeyID string,
) error {
	querier := database.GetTx(ctx, s.db)

	query := `UPDATE wallet_key_records
			  SET ciphertext_key = ?, wrapped_data_key = ?, master_key_id = ?, data_key_id = ?,
			      algorithm = ?, kdf = ?, pin_salt = ?, pin_nonce = ?, data_key_nonce = ?,
			      master_nonce = ?, updated_at = ?
			  WHERE wallet_id = ? AND data_key_id = ?`

	row := toRow(record)
	result, err := querier.ExecContext(
		ctx,
		query,
		row.CiphertextKey,
		row.WrappedDataKey,
		row.MasterKeyID,
		row.DataKeyID,
		row.Algorithm,
		row.KDF,
		row.PinSalt,
		row.PinNonce,
		row.DataKeyNonce,
		row.MasterNonce,
		row.UpdatedAt,
		row.WalletID,
		expectedDataKeyID,
	)
	if err != nil {
		return storageError(err, "failed to update key record")
	}
	return expectAffected(result, walletDomain.ErrKeyRecordConflict)
}

// Delete removes the wallet's record.
func (s *SQLiteKeyRecordRepository) Delete(ctx context.Context, walletID string) error {
	querier := database.GetTx(ctx, s.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM wallet_key_records WHERE wallet_id = ?`, walletID)
	if err != nil {
		return storageError(err, "failed to delete key record")
	}
	return expectAffected(result, walletDomain.ErrKeyRecordNotFound)
}

func isSQLiteConstraintViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
