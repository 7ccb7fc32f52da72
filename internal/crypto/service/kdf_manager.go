package service

import (
	"context"
	"crypto/sha512"
	"runtime"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/sync/semaphore"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
	"github.com/allisson/walletkeys/internal/errors"
)

// ErrEmptySalt is returned when DeriveKey receives no salt.
var ErrEmptySalt = errors.Wrap(errors.ErrInvalidInput, "salt must not be empty")

// KDFManagerService implements KDFManager on top of Argon2id and PBKDF2-HMAC-SHA512.
//
// At most `workers` derivations run at once. Extra callers wait on a weighted semaphore,
// which keeps a burst of logins from pinning every CPU and exhausting memory (each
// Argon2id derivation allocates DefaultArgon2Params.Memory KiB).
type KDFManagerService struct {
	pool             *semaphore.Weighted
	workers          int
	argon2           cryptoDomain.Argon2Params
	pbkdf2Iterations int
}

// KDFOption customises a KDFManagerService.
type KDFOption func(*KDFManagerService)

// WithArgon2Params overrides the Argon2id work factor. Intended for tests.
func WithArgon2Params(p cryptoDomain.Argon2Params) KDFOption {
	return func(k *KDFManagerService) {
		k.argon2 = p
	}
}

// WithPBKDF2Iterations overrides the PBKDF2 iteration count. Intended for tests.
func WithPBKDF2Iterations(n int) KDFOption {
	return func(k *KDFManagerService) {
		k.pbkdf2Iterations = n
	}
}

// NewKDFManager creates a KDF manager with a pool of the given size.
// A non-positive size falls back to runtime.NumCPU().
func NewKDFManager(workers int, opts ...KDFOption) *KDFManagerService {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	k := &KDFManagerService{
		pool:             semaphore.NewWeighted(int64(workers)),
		workers:          workers,
		argon2:           cryptoDomain.DefaultArgon2Params,
		pbkdf2Iterations: cryptoDomain.DefaultPBKDF2Iterations,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Workers returns the pool size.
func (k *KDFManagerService) Workers() int {
	return k.workers
}

// DeriveKey derives a 32-byte key from pin and salt.
//
// Returns ErrUnsupportedKDF for unknown algorithms, ErrEmptySalt for an empty salt,
// or ctx.Err() if the context ends while waiting for a pool slot.
func (k *KDFManagerService) DeriveKey(
	ctx context.Context,
	alg cryptoDomain.KDFAlgorithm,
	pin, salt []byte,
) ([]byte, error) {
	if alg != cryptoDomain.Argon2id && alg != cryptoDomain.PBKDF2SHA512 {
		return nil, cryptoDomain.ErrUnsupportedKDF
	}
	if len(salt) == 0 {
		return nil, ErrEmptySalt
	}

	if err := k.pool.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer k.pool.Release(1)

	if alg == cryptoDomain.Argon2id {
		return argon2.IDKey(
			pin,
			salt,
			k.argon2.Time,
			k.argon2.Memory,
			k.argon2.Threads,
			cryptoDomain.KeySize,
		), nil
	}
	return pbkdf2.Key(pin, salt, k.pbkdf2Iterations, cryptoDomain.KeySize, sha512.New), nil
}
