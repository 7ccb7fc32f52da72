// Package usecase implements wallet key operations: creating and unlocking PIN-protected
// private keys, changing PINs and rotating the master key that wraps them.
package usecase

import (
	"context"

	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
)

// KeyRecordRepository persists one EncryptedKeyRecord per wallet.
type KeyRecordRepository interface {
	// Create inserts a record. Returns ErrKeyRecordAlreadyExists for a duplicate wallet id.
	Create(ctx context.Context, record *walletDomain.EncryptedKeyRecord) error

	// GetByWalletID returns the wallet's record or ErrKeyRecordNotFound.
	GetByWalletID(ctx context.Context, walletID string) (*walletDomain.EncryptedKeyRecord, error)

	// ListByMasterKeyID returns every record wrapped under masterKeyID, ordered by wallet id.
	ListByMasterKeyID(ctx context.Context, masterKeyID string) ([]*walletDomain.EncryptedKeyRecord, error)

	// Update replaces every ciphertext field in a single statement, only if the stored
	// data_key_id still equals expectedDataKeyID. Returns ErrKeyRecordConflict otherwise.
	Update(ctx context.Context, record *walletDomain.EncryptedKeyRecord, expectedDataKeyID string) error

	// Delete removes the wallet's record or returns ErrKeyRecordNotFound.
	Delete(ctx context.Context, walletID string) error
}

// EncryptionService wraps and unwraps private keys under a single master key.
// *service.WalletEncryptionService implements it.
type EncryptionService interface {
	MasterKeyID() string
	EncryptPrivateKey(ctx context.Context, privateKey []byte, pin string) (*walletDomain.EncryptedKeyRecord, error)
	DecryptPrivateKey(ctx context.Context, record *walletDomain.EncryptedKeyRecord, pin string) ([]byte, error)
	VerifyPin(ctx context.Context, record *walletDomain.EncryptedKeyRecord, pin string) (bool, error)
}

// PinProvider supplies the PIN for a wallet during batch rotation.
type PinProvider interface {
	PinFor(ctx context.Context, walletID string) (string, error)
}

// PinProviderFunc adapts a function to PinProvider.
type PinProviderFunc func(ctx context.Context, walletID string) (string, error)

// PinFor calls f(ctx, walletID).
func (f PinProviderFunc) PinFor(ctx context.Context, walletID string) (string, error) {
	return f(ctx, walletID)
}

// PrivateKeySource produces fresh plaintext private keys at wallet creation time.
type PrivateKeySource interface {
	NewPrivateKey(ctx context.Context) ([]byte, error)
}

// WalletKeyUseCase defines the wallet key operations exposed to transports and the CLI.
type WalletKeyUseCase interface {
	// CreateWalletKey encrypts privateKey under pin and persists the record.
	// The caller keeps ownership of privateKey.
	CreateWalletKey(
		ctx context.Context,
		walletID, userID string,
		privateKey []byte,
		pin string,
	) (*walletDomain.EncryptedKeyRecord, error)

	// GenerateWalletKey draws a new private key from the configured source and stores it
	// like CreateWalletKey. The plaintext never leaves the use case.
	GenerateWalletKey(ctx context.Context, walletID, userID, pin string) (*walletDomain.EncryptedKeyRecord, error)

	// SignOrDecrypt returns the wallet's plaintext private key.
	//
	// Security Note: callers MUST zero the returned slice with cryptoDomain.Zero after use.
	SignOrDecrypt(ctx context.Context, walletID, pin string) ([]byte, error)

	// VerifyPin reports whether pin unlocks the wallet. A wrong PIN is (false, nil).
	VerifyPin(ctx context.Context, walletID, pin string) (bool, error)

	// ChangePin re-encrypts the wallet key under newPin.
	ChangePin(ctx context.Context, walletID, oldPin, newPin string) error

	// DeleteWalletKey removes the wallet's key record.
	DeleteWalletKey(ctx context.Context, walletID string) error

	// RotateMasterKeyBatch moves every record under oldMasterKeyID to the active master key.
	RotateMasterKeyBatch(
		ctx context.Context,
		oldMasterKeyID string,
		pinProvider PinProvider,
	) (*walletDomain.RotationReport, error)
}
