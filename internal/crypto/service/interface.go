// Package service provides the cryptographic primitives behind wallet key envelope encryption:
// AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305), PIN key derivation and KMS access.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
//
// Implementations draw a fresh random nonce inside every Encrypt call. Callers never
// supply a nonce for encryption, so a (key, nonce) pair cannot be reused by mistake.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD. Any authentication
	// failure returns cryptoDomain.ErrDecryptionFailed and no plaintext.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KDFManager turns a PIN and salt into a 32-byte symmetric key.
//
// Derivations are CPU and memory heavy. Implementations run them on a bounded pool;
// waiting for a slot honours ctx, a derivation already running is not interrupted.
type KDFManager interface {
	DeriveKey(ctx context.Context, alg cryptoDomain.KDFAlgorithm, pin, salt []byte) ([]byte, error)
}
