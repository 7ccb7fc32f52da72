package usecase

import (
	"context"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
)

// Secp256k1KeySource generates secp256k1 private keys.
type Secp256k1KeySource struct{}

// NewSecp256k1KeySource returns the default PrivateKeySource.
func NewSecp256k1KeySource() *Secp256k1KeySource {
	return &Secp256k1KeySource{}
}

// NewPrivateKey returns a fresh 32-byte secp256k1 scalar.
func (s *Secp256k1KeySource) NewPrivateKey(_ context.Context) ([]byte, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	defer key.Zero()
	return key.Serialize(), nil
}

// ValidatePrivateKey checks that b is a 32-byte scalar in [1, n-1] for the secp256k1
// group order n.
func ValidatePrivateKey(b []byte) error {
	if len(b) != secp256k1.PrivKeyBytesLen {
		return fmt.Errorf("%w: must be %d bytes", walletDomain.ErrInvalidPrivateKey, secp256k1.PrivKeyBytesLen)
	}
	var scalar secp256k1.ModNScalar
	defer scalar.Zero()
	if overflow := scalar.SetByteSlice(b); overflow || scalar.IsZero() {
		return fmt.Errorf("%w: out of range for secp256k1", walletDomain.ErrInvalidPrivateKey)
	}
	return nil
}
