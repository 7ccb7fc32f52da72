// Package service implements the wallet key envelope: the three-layer wrap/unwrap protocol
// and the in-memory cache of unwrapped data keys.
package service

import (
	"bytes"
	"crypto/sha256"
	"crypto/subtle"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/allisson/walletkeys/internal/errors"
)

var (
	errInvalidCacheEntry = errors.New("cache entry requires a data key id and a non-empty key")
	errSealDataKey       = errors.New("failed to seal data key")
)

// Fingerprint identifies the exact wrapped data key a cache entry was unwrapped from.
type Fingerprint [sha256.Size]byte

// FingerprintOf hashes the master layer of a record (nonce and wrapped data key).
func FingerprintOf(wrappedDataKey, masterNonce []byte) Fingerprint {
	h := sha256.New()
	h.Write(masterNonce)
	h.Write(wrappedDataKey)
	var fp Fingerprint
	copy(fp[:], h.Sum(nil))
	return fp
}

type cacheEntry struct {
	enclave     *memguard.Enclave
	fingerprint Fingerprint
}

// DataKeyCache maps data_key_id to an unwrapped data key.
//
// Entries are sealed in memguard enclaves so raw data keys are only in the clear while a
// caller holds the copy returned by Get. A lookup only hits when the caller's fingerprint
// matches the one recorded at Put, so a record whose master layer differs from the one
// the key came from always falls through to the master key.
//
// Thread safety: backed by sync.Map; readers never block each other and writes are
// atomic per data_key_id.
type DataKeyCache struct {
	entries sync.Map
}

// NewDataKeyCache returns an empty cache.
func NewDataKeyCache() *DataKeyCache {
	return &DataKeyCache{}
}

// Get returns a copy of the data key cached under dataKeyID, if its fingerprint matches.
// The caller owns the returned slice and should zero it after use.
func (c *DataKeyCache) Get(dataKeyID string, fp Fingerprint) ([]byte, bool) {
	v, ok := c.entries.Load(dataKeyID)
	if !ok {
		return nil, false
	}
	entry := v.(*cacheEntry)
	if subtle.ConstantTimeCompare(entry.fingerprint[:], fp[:]) != 1 {
		return nil, false
	}

	buf, err := entry.enclave.Open()
	if err != nil {
		c.entries.CompareAndDelete(dataKeyID, entry)
		return nil, false
	}
	defer buf.Destroy()

	return bytes.Clone(buf.Bytes()), true
}

// Put seals a copy of dataKey under dataKeyID. The caller keeps ownership of dataKey.
func (c *DataKeyCache) Put(dataKeyID string, fp Fingerprint, dataKey []byte) error {
	if dataKeyID == "" || len(dataKey) == 0 {
		return errInvalidCacheEntry
	}

	// NewEnclave wipes its argument.
	enclave := memguard.NewEnclave(bytes.Clone(dataKey))
	if enclave == nil {
		return errSealDataKey
	}

	c.entries.Store(dataKeyID, &cacheEntry{enclave: enclave, fingerprint: fp})
	return nil
}

// Delete drops the entry for dataKeyID, if any.
func (c *DataKeyCache) Delete(dataKeyID string) {
	c.entries.Delete(dataKeyID)
}

// Len returns the number of cached data keys.
func (c *DataKeyCache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Close drops every entry.
func (c *DataKeyCache) Close() {
	c.entries.Clear()
}
