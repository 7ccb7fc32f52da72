package domain

import (
	"github.com/allisson/walletkeys/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cryptographic failures.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	//
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305).
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrUnsupportedKDF indicates the requested key derivation function is not supported.
	//
	// Supported functions: Argon2id, PBKDF2SHA512.
	ErrUnsupportedKDF = errors.Wrap(errors.ErrInvalidInput, "unsupported key derivation function")

	// ErrInvalidKeySize indicates the cryptographic key size is invalid.
	//
	// All keys (master keys, data keys and PIN keys) must be exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This error can occur due to:
	//   - Wrong decryption key used
	//   - Ciphertext has been tampered with (authentication failure)
	//   - Invalid nonce provided
	//   - Corrupted encrypted data
	//
	// For security reasons, the specific cause is not disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrUnauthorized, "decryption failed")

	// ErrMasterKeyNotFound indicates the master key ID is not present in the keychain.
	ErrMasterKeyNotFound = errors.Wrap(errors.ErrConfiguration, "master key not found")

	// ErrMasterKeysNotSet indicates the MASTER_KEYS environment variable is empty.
	ErrMasterKeysNotSet = errors.Wrap(errors.ErrConfiguration, "MASTER_KEYS not set")

	// ErrActiveMasterKeyIDNotSet indicates the ACTIVE_MASTER_KEY_ID environment variable is empty.
	ErrActiveMasterKeyIDNotSet = errors.Wrap(errors.ErrConfiguration, "ACTIVE_MASTER_KEY_ID not set")

	// ErrInvalidMasterKeysFormat indicates a MASTER_KEYS entry is not in "id:base64key" form.
	ErrInvalidMasterKeysFormat = errors.Wrap(errors.ErrConfiguration, "invalid MASTER_KEYS format")

	// ErrInvalidMasterKeyBase64 indicates a master key value is not valid base64.
	ErrInvalidMasterKeyBase64 = errors.Wrap(errors.ErrConfiguration, "invalid master key base64")

	// ErrActiveMasterKeyNotFound indicates ACTIVE_MASTER_KEY_ID is not one of the loaded keys.
	ErrActiveMasterKeyNotFound = errors.Wrap(errors.ErrConfiguration, "active master key not found")

	// ErrKMSDecryptionFailed indicates a KMS-encrypted master key could not be decrypted.
	ErrKMSDecryptionFailed = errors.Wrap(errors.ErrConfiguration, "failed to decrypt master key with KMS")
)
