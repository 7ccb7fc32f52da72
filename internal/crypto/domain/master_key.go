// Package domain defines the core cryptographic domain models for wallet key envelope encryption.
//
// The key hierarchy is: master key → per-wallet data key → PIN-derived key → private key.
// Master keys are operator secrets loaded at startup; data keys are random per wallet and
// stored wrapped under a master key; PIN keys are derived on demand and never stored.
package domain

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/allisson/walletkeys/internal/errors"
)

// MasterKey represents a cryptographic master key used to wrap per-wallet data keys.
//
// Master keys are the root of the envelope encryption hierarchy and should be stored
// securely in a Key Management Service (KMS) or loaded from environment variables in
// development/test environments. Only the ID is ever persisted next to wrapped data.
type MasterKey struct {
	ID  string
	Key []byte
}

// KMSKeeper is the subset of a KMS keeper needed to unwrap master keys at startup.
// *gocloud.dev/secrets.Keeper satisfies it.
type KMSKeeper interface {
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Close() error
}

// MasterKeyChain manages a collection of master keys with one designated as active.
//
// Keeping several keys loaded at once lets records wrapped under an older master key
// stay readable while they are rotated to the active key.
//
// Thread safety: the keychain uses sync.Map internally for concurrent access.
type MasterKeyChain struct {
	activeID string
	keys     sync.Map
}

// NewMasterKeyChain builds a chain from already-decoded keys. Key bytes are copied.
func NewMasterKeyChain(activeID string, keys ...*MasterKey) (*MasterKeyChain, error) {
	mkc := &MasterKeyChain{activeID: activeID}
	for _, k := range keys {
		if len(k.Key) != KeySize {
			mkc.Close()
			return nil, fmt.Errorf(
				"%w: %w: master key %s must be %d bytes, got %d",
				apperrors.ErrConfiguration, ErrInvalidKeySize, k.ID, KeySize, len(k.Key),
			)
		}
		key := make([]byte, KeySize)
		copy(key, k.Key)
		mkc.keys.Store(k.ID, &MasterKey{ID: k.ID, Key: key})
	}
	if _, ok := mkc.Get(activeID); !ok {
		mkc.Close()
		return nil, fmt.Errorf("%w: ACTIVE_MASTER_KEY_ID=%s", ErrActiveMasterKeyNotFound, activeID)
	}
	return mkc, nil
}

// ActiveMasterKeyID returns the ID of the master key used to wrap new data keys.
func (m *MasterKeyChain) ActiveMasterKeyID() string {
	return m.activeID
}

// Get retrieves a master key from the keychain by its ID.
func (m *MasterKeyChain) Get(id string) (*MasterKey, bool) {
	if masterKey, ok := m.keys.Load(id); ok {
		return masterKey.(*MasterKey), ok
	}

	return nil, false
}

// IDs returns every loaded master key ID in lexical order.
func (m *MasterKeyChain) IDs() []string {
	var ids []string
	m.keys.Range(func(key, _ any) bool {
		ids = append(ids, key.(string))
		return true
	})
	sort.Strings(ids)
	return ids
}

// Close zeroes every master key and empties the keychain.
func (m *MasterKeyChain) Close() {
	m.keys.Range(func(_, value any) bool {
		if mk, ok := value.(*MasterKey); ok {
			Zero(mk.Key)
		}
		return true
	})
	m.activeID = ""
	m.keys.Clear()
}

// LoadMasterKeyChain parses master keys from their environment representation.
//
// Format:
//
//	MASTER_KEYS="v1:<base64>,v2:<base64>"
//	ACTIVE_MASTER_KEY_ID="v2"
//
// When keeper is non-nil every value is a KMS ciphertext and is decrypted through it;
// otherwise values are the raw 32-byte keys in standard base64. Any failure is a
// configuration error and the partially built chain is zeroed.
func LoadMasterKeyChain(
	ctx context.Context,
	rawMasterKeys string,
	activeID string,
	keeper KMSKeeper,
	logger *slog.Logger,
) (*MasterKeyChain, error) {
	if rawMasterKeys == "" {
		return nil, ErrMasterKeysNotSet
	}
	if activeID == "" {
		return nil, ErrActiveMasterKeyIDNotSet
	}

	var keys []*MasterKey
	defer func() {
		for _, k := range keys {
			Zero(k.Key)
		}
	}()

	for part := range strings.SplitSeq(rawMasterKeys, ",") {
		p := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(p) != 2 || p[0] == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMasterKeysFormat, part)
		}
		id := p[0]
		decoded, err := base64.StdEncoding.DecodeString(p[1])
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %v", ErrInvalidMasterKeyBase64, id, err)
		}

		key := decoded
		if keeper != nil {
			key, err = keeper.Decrypt(ctx, decoded)
			if err != nil {
				return nil, fmt.Errorf("%w %s: %v", ErrKMSDecryptionFailed, id, err)
			}
		}
		keys = append(keys, &MasterKey{ID: id, Key: key})
	}

	mkc, err := NewMasterKeyChain(activeID, keys...)
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Info("master key chain loaded",
			slog.Int("key_count", len(keys)),
			slog.String("active_master_key_id", activeID),
			slog.Bool("kms", keeper != nil),
		)
	}

	return mkc, nil
}
