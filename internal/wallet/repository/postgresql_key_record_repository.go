package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/allisson/walletkeys/internal/database"
	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
)

// pqUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pqUniqueViolation = "23505"

// PostgreSQLKeyRecordRepository implements KeyRecordRepository for PostgreSQL databases.
type PostgreSQLKeyRecordRepository struct {
	db *sql.DB
}

// NewPostgreSQLKeyRecordRepository creates a new PostgreSQL key record repository.
func NewPostgreSQLKeyRecordRepository(db *sql.DB) *PostgreSQLKeyRecordRepository {
	return &PostgreSQLKeyRecordRepository{db: db}
}

// Create inserts a new record. A duplicate wallet id is ErrKeyRecordAlreadyExists.
func (p *PostgreSQLKeyRecordRepository) Create(ctx context.Context, record *walletDomain.EncryptedKeyRecord) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO wallet_key_records (` + keyRecordColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

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
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return walletDomain.ErrKeyRecordAlreadyExists
		}
		return storageError(err, "failed to create key record")
	}
	return nil
}

// GetByWalletID returns the wallet's record or ErrKeyRecordNotFound.
func (p *PostgreSQLKeyRecordRepository) GetByWalletID(
	ctx context.Context,
	walletID string,
) (*walletDomain.EncryptedKeyRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + keyRecordColumns + `
			  FROM wallet_key_records
			  WHERE wallet_id = $1`

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
func (p *PostgreSQLKeyRecordRepository) ListByMasterKeyID(
	ctx context.Context,
	masterKeyID string,
) ([]*walletDomain.EncryptedKeyRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + keyRecordColumns + `
			  FROM wallet_key_records
			  WHERE master_key_id = $1
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
func (p *PostgreSQLKeyRecordRepository) Update(
	ctx context.Context,
	record *walletDomain.EncryptedKeyRecord,
	expectedDataKeyID string,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE wallet_key_records
			  SET ciphertext_key = $1, wrapped_data_key = $2, master_key_id = $3, data_key_id = $4,
			      algorithm = $5, kdf = $6, pin_salt = $7, pin_nonce = $8, data_key_nonce = $9,
			      master_nonce = $10, updated_at = $11
			  WHERE wallet_id = $12 AND data_key_id = $13`

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
func (p *PostgreSQLKeyRecordRepository) Delete(ctx context.Context, walletID string) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM wallet_key_records WHERE wallet_id = $1`, walletID)
	if err != nil {
		return storageError(err, "failed to delete key record")
	}
	return expectAffected(result, walletDomain.ErrKeyRecordNotFound)
}
