package dto

import (
	"time"

	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
)

// WalletKeyResponse is the record metadata returned on creation. Ciphertext, nonces
// and salts are never returned.
type WalletKeyResponse struct {
	WalletID    string    `json:"wallet_id"`
	UserID      string    `json:"user_id,omitempty"`
	MasterKeyID string    `json:"master_key_id"`
	DataKeyID   string    `json:"data_key_id"`
	Algorithm   string    `json:"algorithm"`
	KDF         string    `json:"kdf"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MapRecordToResponse converts a domain record to its API metadata.
func MapRecordToResponse(record *walletDomain.EncryptedKeyRecord) WalletKeyResponse {
	return WalletKeyResponse{
		WalletID:    record.WalletID,
		UserID:      record.UserID,
		MasterKeyID: record.MasterKeyID,
		DataKeyID:   record.DataKeyID,
		Algorithm:   string(record.Algorithm),
		KDF:         string(record.KDF),
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// PrivateKeyResponse carries the decrypted private key.
// SECURITY: PrivateKey is plaintext key material. Must be transmitted over HTTPS.
type PrivateKeyResponse struct {
	PrivateKey []byte `json:"private_key"`
}

// VerifyPinResponse reports whether the PIN unlocks the wallet.
type VerifyPinResponse struct {
	Valid bool `json:"valid"`
}
