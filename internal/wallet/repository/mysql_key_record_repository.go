package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/allisson/walletkeys/internal/database"
	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
)

// mysqlDuplicateEntry is the MySQL error number for ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// MySQLKeyRecordRepository implements KeyRecordRepository for MySQL databases.
//
// MySQL reports zero affected rows for an UPDATE that changes nothing. Every successful
// conditional update writes a new data_key_id, so zero rows still means no match.
type MySQLKeyRecordRepository struct {
	db *sql.DB
}

// NewMySQLKeyRecordRepository creates a new MySQL key record repository.
func NewMySQLKeyRecordRepository(db *sql.DB) *MySQLKeyRecordRepository {
	return &MySQLKeyRecordRepository{db: db}
}

// Create inserts a new record. A duplicate wallet id is ErrKeyRecordAlreadyExists.
func (m *MySQLKeyRecordRepository) Create(ctx context.Context, record *walletDomain.EncryptedKeyRecord) error {
	querier := database.GetTx(ctx, m.db)

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
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return walletDomain.ErrKeyRecordAlreadyExists
		}
		return storageError(err, "failed to create key record")
	}
	return nil
}

// GetByWalletID returns the wallet's record or ErrKeyRecordNotFound.
func (m *MySQLKeyRecordRepository) GetByWalletID(
	ctx context.Context,
	walletID string,
) (*walletDomain.EncryptedKeyRecord, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLKeyRecordRepository) ListByMasterKeyID(
	ctx context.Context,
	masterKeyID string,
) ([]*walletDomain.EncryptedKeyRecord, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLKeyRecordRepository) Update(
	ctx context.Context,
	record *walletDomain.EncryptedKeyRecord,
	expectedDataKeyID string,
) error {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLKeyRecordRepository) Delete(ctx context.Context, walletID string) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM wallet_key_records WHERE wallet_id = ?`, walletID)
	if err != nil {
		return storageError(err, "failed to delete key record")
	}
	return expectAffected(result, walletDomain.ErrKeyRecordNotFound)
}
