package domain

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets/localsecrets"

	apperrors "github.com/allisson/walletkeys/internal/errors"
)

func randomKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestNewMasterKeyChain(t *testing.T) {
	t.Run("copies key material", func(t *testing.T) {
		raw := randomKey(t)
		mkc, err := NewMasterKeyChain("v1", &MasterKey{ID: "v1", Key: raw})
		require.NoError(t, err)
		defer mkc.Close()

		mk, ok := mkc.Get("v1")
		require.True(t, ok)
		assert.Equal(t, raw, mk.Key)

		raw[0] ^= 0xff
		assert.NotEqual(t, raw, mk.Key)
	})

	t.Run("rejects short key", func(t *testing.T) {
		_, err := NewMasterKeyChain("v1", &MasterKey{ID: "v1", Key: []byte("short")})
		assert.ErrorIs(t, err, ErrInvalidKeySize)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("active key must be loaded", func(t *testing.T) {
		_, err := NewMasterKeyChain("v2", &MasterKey{ID: "v1", Key: randomKey(t)})
		assert.ErrorIs(t, err, ErrActiveMasterKeyNotFound)
	})
}

func TestMasterKeyChain_Get(t *testing.T) {
	mkc, err := NewMasterKeyChain("v1", &MasterKey{ID: "v1", Key: randomKey(t)})
	require.NoError(t, err)
	defer mkc.Close()

	mk, ok := mkc.Get("v1")
	assert.True(t, ok)
	assert.Equal(t, "v1", mk.ID)

	mk, ok = mkc.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, mk)
}

func TestMasterKeyChain_IDs(t *testing.T) {
	mkc, err := NewMasterKeyChain(
		"v2",
		&MasterKey{ID: "v2", Key: randomKey(t)},
		&MasterKey{ID: "v1", Key: randomKey(t)},
	)
	require.NoError(t, err)
	defer mkc.Close()

	assert.Equal(t, []string{"v1", "v2"}, mkc.IDs())
	assert.Equal(t, "v2", mkc.ActiveMasterKeyID())
}

func TestMasterKeyChain_Close(t *testing.T) {
	mkc, err := NewMasterKeyChain("v1", &MasterKey{ID: "v1", Key: randomKey(t)})
	require.NoError(t, err)

	mk, _ := mkc.Get("v1")
	key := mk.Key

	mkc.Close()

	assert.Equal(t, make([]byte, KeySize), key)
	assert.Empty(t, mkc.ActiveMasterKeyID())
	_, ok := mkc.Get("v1")
	assert.False(t, ok)
}

func TestLoadMasterKeyChain(t *testing.T) {
	ctx := context.Background()
	k1 := randomKey(t)
	k2 := randomKey(t)
	raw := "v1:" + base64.StdEncoding.EncodeToString(k1) + ", v2:" + base64.StdEncoding.EncodeToString(k2)

	t.Run("plain keys", func(t *testing.T) {
		mkc, err := LoadMasterKeyChain(ctx, raw, "v2", nil, nil)
		require.NoError(t, err)
		defer mkc.Close()

		mk1, ok := mkc.Get("v1")
		require.True(t, ok)
		assert.Equal(t, k1, mk1.Key)

		mk2, ok := mkc.Get("v2")
		require.True(t, ok)
		assert.Equal(t, k2, mk2.Key)
		assert.Equal(t, "v2", mkc.ActiveMasterKeyID())
	})

	t.Run("kms encrypted keys", func(t *testing.T) {
		var secret [32]byte
		copy(secret[:], randomKey(t))
		keeper := localsecrets.NewKeeper(secret)
		defer func() { _ = keeper.Close() }()

		c1, err := keeper.Encrypt(ctx, k1)
		require.NoError(t, err)

		mkc, err := LoadMasterKeyChain(ctx, "v1:"+base64.StdEncoding.EncodeToString(c1), "v1", keeper, nil)
		require.NoError(t, err)
		defer mkc.Close()

		mk, ok := mkc.Get("v1")
		require.True(t, ok)
		assert.True(t, bytes.Equal(k1, mk.Key))
	})

	t.Run("kms decryption failure", func(t *testing.T) {
		var secret [32]byte
		keeper := localsecrets.NewKeeper(secret)
		defer func() { _ = keeper.Close() }()

		_, err := LoadMasterKeyChain(ctx, raw, "v1", keeper, nil)
		assert.ErrorIs(t, err, ErrKMSDecryptionFailed)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	tests := []struct {
		name     string
		raw      string
		activeID string
		wantErr  error
	}{
		{name: "empty keys", raw: "", activeID: "v1", wantErr: ErrMasterKeysNotSet},
		{name: "empty active id", raw: raw, activeID: "", wantErr: ErrActiveMasterKeyIDNotSet},
		{name: "missing separator", raw: "v1", activeID: "v1", wantErr: ErrInvalidMasterKeysFormat},
		{name: "empty id", raw: ":abcd", activeID: "v1", wantErr: ErrInvalidMasterKeysFormat},
		{name: "bad base64", raw: "v1:@@@", activeID: "v1", wantErr: ErrInvalidMasterKeyBase64},
		{name: "unknown active id", raw: raw, activeID: "v9", wantErr: ErrActiveMasterKeyNotFound},
		{
			name:     "wrong key length",
			raw:      "v1:" + base64.StdEncoding.EncodeToString([]byte("too-short")),
			activeID: "v1",
			wantErr:  ErrInvalidKeySize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mkc, err := LoadMasterKeyChain(ctx, tt.raw, tt.activeID, nil, nil)
			assert.Nil(t, mkc)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrConfiguration)
		})
	}
}
