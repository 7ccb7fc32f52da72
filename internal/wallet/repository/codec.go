// Package repository implements the Key Record Store for PostgreSQL, MySQL and SQLite.
// Binary fields are stored as standard base64 TEXT so the same schema works on every
// backend and survives text-only tooling.
package repository

import (
	"database/sql"
	"encoding/base64"
	"fmt"
	"time"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
	apperrors "github.com/allisson/walletkeys/internal/errors"
	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
)

const keyRecordColumns = `wallet_id, user_id, ciphertext_key, wrapped_data_key, master_key_id, data_key_id,
	algorithm, kdf, pin_salt, pin_nonce, data_key_nonce, master_nonce, created_at, updated_at`

// keyRecordRow is the storage form of an EncryptedKeyRecord.
type keyRecordRow struct {
	WalletID       string
	UserID         sql.NullString
	CiphertextKey  string
	WrappedDataKey string
	MasterKeyID    string
	DataKeyID      string
	Algorithm      string
	KDF            string
	PinSalt        string
	PinNonce       string
	DataKeyNonce   string
	MasterNonce    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func toRow(r *walletDomain.EncryptedKeyRecord) keyRecordRow {
	return keyRecordRow{
		WalletID:       r.WalletID,
		UserID:         sql.NullString{String: r.UserID, Valid: r.UserID != ""},
		CiphertextKey:  encode(r.CiphertextKey),
		WrappedDataKey: encode(r.WrappedDataKey),
		MasterKeyID:    r.MasterKeyID,
		DataKeyID:      r.DataKeyID,
		Algorithm:      string(r.Algorithm),
		KDF:            string(r.KDF),
		PinSalt:        encode(r.PinSalt),
		PinNonce:       encode(r.PinNonce),
		DataKeyNonce:   encode(r.DataKeyNonce),
		MasterNonce:    encode(r.MasterNonce),
		CreatedAt:      r.CreatedAt.UTC(),
		UpdatedAt:      r.UpdatedAt.UTC(),
	}
}

// toRecord decodes the row. Undecodable base64 is ErrMalformedRecord.
func (row *keyRecordRow) toRecord() (*walletDomain.EncryptedKeyRecord, error) {
	record := &walletDomain.EncryptedKeyRecord{
		WalletID:    row.WalletID,
		UserID:      row.UserID.String,
		MasterKeyID: row.MasterKeyID,
		DataKeyID:   row.DataKeyID,
		Algorithm:   cryptoDomain.Algorithm(row.Algorithm),
		KDF:         cryptoDomain.KDFAlgorithm(row.KDF),
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}

	fields := []struct {
		name  string
		value string
		dst   *[]byte
	}{
		{"ciphertext_key", row.CiphertextKey, &record.CiphertextKey},
		{"wrapped_data_key", row.WrappedDataKey, &record.WrappedDataKey},
		{"pin_salt", row.PinSalt, &record.PinSalt},
		{"pin_nonce", row.PinNonce, &record.PinNonce},
		{"data_key_nonce", row.DataKeyNonce, &record.DataKeyNonce},
		{"master_nonce", row.MasterNonce, &record.MasterNonce},
	}
	for _, f := range fields {
		b, err := base64.StdEncoding.DecodeString(f.value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not valid base64", walletDomain.ErrMalformedRecord, f.name)
		}
		*f.dst = b
	}

	return record, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRow(s scanner) (*keyRecordRow, error) {
	var row keyRecordRow
	err := s.Scan(
		&row.WalletID,
		&row.UserID,
		&row.CiphertextKey,
		&row.WrappedDataKey,
		&row.MasterKeyID,
		&row.DataKeyID,
		&row.Algorithm,
		&row.KDF,
		&row.PinSalt,
		&row.PinNonce,
		&row.DataKeyNonce,
		&row.MasterNonce,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// collectRows decodes every row and closes rows.
func collectRows(rows *sql.Rows) ([]*walletDomain.EncryptedKeyRecord, error) {
	defer func() {
		_ = rows.Close()
	}()

	records := make([]*walletDomain.EncryptedKeyRecord, 0)
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		record, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// storageError marks err as a storage failure unless it already is a domain error.
func storageError(err error, message string) error {
	if apperrors.Is(err, walletDomain.ErrMalformedRecord) {
		return err
	}
	return apperrors.Storage(err, message)
}

// expectAffected returns none when the statement matched no row.
func expectAffected(result sql.Result, none error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage(err, "failed to read affected rows")
	}
	if n == 0 {
		return none
	}
	return nil
}
