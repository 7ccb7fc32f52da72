// Package domain defines the wallet key domain: the persisted encrypted key record,
// the operator rotation report and the errors surfaced by wallet key operations.
package domain

import (
	"bytes"
	"fmt"
	"time"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
)

// EncryptedKeyRecord is the persisted, fully wrapped form of one wallet's private key.
//
// Layers, innermost first:
//
//	PinNonce      private key sealed under the PIN-derived key (salt PinSalt)
//	DataKeyNonce  that ciphertext sealed under the data key, stored as CiphertextKey
//	MasterNonce   the data key sealed under the master key, stored as WrappedDataKey
//
// Every binary field marshals to standard base64 in JSON.
type EncryptedKeyRecord struct {
	WalletID       string                    `json:"wallet_id"`
	UserID         string                    `json:"user_id,omitempty"`
	CiphertextKey  []byte                    `json:"ciphertext_key"`
	WrappedDataKey []byte                    `json:"wrapped_data_key"`
	MasterKeyID    string                    `json:"master_key_id"`
	DataKeyID      string                    `json:"data_key_id"`
	Algorithm      cryptoDomain.Algorithm    `json:"algorithm"`
	KDF            cryptoDomain.KDFAlgorithm `json:"kdf"`
	PinSalt        []byte                    `json:"pin_salt"`
	PinNonce       []byte                    `json:"pin_nonce"`
	DataKeyNonce   []byte                    `json:"data_key_nonce"`
	MasterNonce    []byte                    `json:"master_nonce"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// Clone returns a deep copy of the record.
func (r *EncryptedKeyRecord) Clone() *EncryptedKeyRecord {
	if r == nil {
		return nil
	}
	c := *r
	c.CiphertextKey = bytes.Clone(r.CiphertextKey)
	c.WrappedDataKey = bytes.Clone(r.WrappedDataKey)
	c.PinSalt = bytes.Clone(r.PinSalt)
	c.PinNonce = bytes.Clone(r.PinNonce)
	c.DataKeyNonce = bytes.Clone(r.DataKeyNonce)
	c.MasterNonce = bytes.Clone(r.MasterNonce)
	return &c
}

// ReplaceCiphertext copies the cryptographic fields of next into r, leaving identity
// (WalletID, UserID, CreatedAt) untouched. PIN changes and rotations use it.
func (r *EncryptedKeyRecord) ReplaceCiphertext(next *EncryptedKeyRecord) {
	r.CiphertextKey = next.CiphertextKey
	r.WrappedDataKey = next.WrappedDataKey
	r.MasterKeyID = next.MasterKeyID
	r.DataKeyID = next.DataKeyID
	r.Algorithm = next.Algorithm
	r.KDF = next.KDF
	r.PinSalt = next.PinSalt
	r.PinNonce = next.PinNonce
	r.DataKeyNonce = next.DataKeyNonce
	r.MasterNonce = next.MasterNonce
}

// Validate reports ErrMalformedRecord when a required field is missing or the
// algorithm names are unknown. It does not authenticate anything.
func (r *EncryptedKeyRecord) Validate() error {
	missing := func(field string) error {
		return fmt.Errorf("%w: %s is empty", ErrMalformedRecord, field)
	}

	switch {
	case r.WalletID == "":
		return missing("wallet_id")
	case r.MasterKeyID == "":
		return missing("master_key_id")
	case r.DataKeyID == "":
		return missing("data_key_id")
	case len(r.CiphertextKey) == 0:
		return missing("ciphertext_key")
	case len(r.WrappedDataKey) == 0:
		return missing("wrapped_data_key")
	case len(r.PinSalt) == 0:
		return missing("pin_salt")
	case len(r.PinNonce) == 0:
		return missing("pin_nonce")
	case len(r.DataKeyNonce) == 0:
		return missing("data_key_nonce")
	case len(r.MasterNonce) == 0:
		return missing("master_nonce")
	}

	if _, err := cryptoDomain.ParseAlgorithm(string(r.Algorithm)); err != nil {
		return fmt.Errorf("%w: algorithm %q", ErrMalformedRecord, r.Algorithm)
	}
	if _, err := cryptoDomain.ParseKDFAlgorithm(string(r.KDF)); err != nil {
		return fmt.Errorf("%w: kdf %q", ErrMalformedRecord, r.KDF)
	}
	return nil
}
