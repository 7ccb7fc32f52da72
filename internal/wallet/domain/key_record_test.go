package domain

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
	apperrors "github.com/allisson/walletkeys/internal/errors"
)

func validRecord() *EncryptedKeyRecord {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &EncryptedKeyRecord{
		WalletID:       "wallet-1",
		UserID:         "user-1",
		CiphertextKey:  []byte{1, 2, 3},
		WrappedDataKey: []byte{4, 5, 6},
		MasterKeyID:    "v1",
		DataKeyID:      "0190a0b0-0000-7000-8000-000000000001",
		Algorithm:      cryptoDomain.AESGCM,
		KDF:            cryptoDomain.Argon2id,
		PinSalt:        []byte{7, 8},
		PinNonce:       []byte{9},
		DataKeyNonce:   []byte{10},
		MasterNonce:    []byte{11},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestEncryptedKeyRecord_Clone(t *testing.T) {
	r := validRecord()
	c := r.Clone()
	require.Equal(t, r, c)

	c.CiphertextKey[0] = 0xff
	c.PinSalt[0] = 0xff
	c.MasterKeyID = "v2"

	assert.Equal(t, byte(1), r.CiphertextKey[0])
	assert.Equal(t, byte(7), r.PinSalt[0])
	assert.Equal(t, "v1", r.MasterKeyID)

	var nilRecord *EncryptedKeyRecord
	assert.Nil(t, nilRecord.Clone())
}

func TestEncryptedKeyRecord_ReplaceCiphertext(t *testing.T) {
	r := validRecord()
	next := validRecord()
	next.WalletID = "ignored"
	next.UserID = "ignored"
	next.MasterKeyID = "v2"
	next.DataKeyID = "new-id"
	next.Algorithm = cryptoDomain.ChaCha20
	next.CiphertextKey = []byte{42}
	next.CreatedAt = time.Time{}

	r.ReplaceCiphertext(next)

	assert.Equal(t, "wallet-1", r.WalletID)
	assert.Equal(t, "user-1", r.UserID)
	assert.False(t, r.CreatedAt.IsZero())
	assert.Equal(t, "v2", r.MasterKeyID)
	assert.Equal(t, "new-id", r.DataKeyID)
	assert.Equal(t, cryptoDomain.ChaCha20, r.Algorithm)
	assert.Equal(t, []byte{42}, r.CiphertextKey)
}

func TestEncryptedKeyRecord_Validate(t *testing.T) {
	require.NoError(t, validRecord().Validate())

	tests := []struct {
		name   string
		mutate func(r *EncryptedKeyRecord)
	}{
		{"missing wallet id", func(r *EncryptedKeyRecord) { r.WalletID = "" }},
		{"missing master key id", func(r *EncryptedKeyRecord) { r.MasterKeyID = "" }},
		{"missing data key id", func(r *EncryptedKeyRecord) { r.DataKeyID = "" }},
		{"missing ciphertext", func(r *EncryptedKeyRecord) { r.CiphertextKey = nil }},
		{"missing wrapped data key", func(r *EncryptedKeyRecord) { r.WrappedDataKey = nil }},
		{"missing salt", func(r *EncryptedKeyRecord) { r.PinSalt = nil }},
		{"missing pin nonce", func(r *EncryptedKeyRecord) { r.PinNonce = nil }},
		{"missing data key nonce", func(r *EncryptedKeyRecord) { r.DataKeyNonce = nil }},
		{"missing master nonce", func(r *EncryptedKeyRecord) { r.MasterNonce = nil }},
		{"unknown algorithm", func(r *EncryptedKeyRecord) { r.Algorithm = "AES-256-GCM" }},
		{"unknown kdf", func(r *EncryptedKeyRecord) { r.KDF = "md5" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(r)
			err := r.Validate()
			assert.ErrorIs(t, err, ErrMalformedRecord)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestEncryptedKeyRecord_JSON(t *testing.T) {
	data, err := json.Marshal(validRecord())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), raw["ciphertext_key"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{7, 8}), raw["pin_salt"])
	assert.Equal(t, "aes-gcm", raw["algorithm"])
	assert.Equal(t, "argon2id", raw["kdf"])
	assert.Equal(t, "v1", raw["master_key_id"])
}

func TestErrorTaxonomy(t *testing.T) {
	assert.ErrorIs(t, ErrKeyRecordNotFound, apperrors.ErrNotFound)
	assert.ErrorIs(t, ErrKeyRecordAlreadyExists, apperrors.ErrConflict)
	assert.ErrorIs(t, ErrKeyRecordConflict, apperrors.ErrConflict)
	assert.ErrorIs(t, ErrMasterKeyMismatch, apperrors.ErrInvalidInput)
	assert.ErrorIs(t, ErrAuthenticationFailed, apperrors.ErrUnauthorized)
	assert.Equal(t, "invalid PIN or wallet: unauthorized", ErrAuthenticationFailed.Error())
}
