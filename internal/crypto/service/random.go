package service

import (
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
)

// RandomBytes returns n bytes from crypto/rand.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}

// GenerateKey returns a fresh random 32-byte symmetric key.
func GenerateKey() ([]byte, error) {
	return RandomBytes(cryptoDomain.KeySize)
}

// GenerateSalt returns a fresh random KDF salt.
func GenerateSalt() ([]byte, error) {
	return RandomBytes(cryptoDomain.SaltSize)
}
