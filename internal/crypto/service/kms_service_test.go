package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
	apperrors "github.com/allisson/walletkeys/internal/errors"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func TestKMSService_OpenKeeper(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()

	t.Run("Success_LocalSecrets", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, keeper.Close())
		}()

		_, ok := keeper.(*secrets.Keeper)
		assert.True(t, ok, "keeper should be *secrets.Keeper")
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "invalid://uri")
		assert.Error(t, err)
		assert.Nil(t, keeper)
		assert.Contains(t, err.Error(), "failed to open KMS keeper")
	})

	t.Run("Error_EmptyURI", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "")
		assert.Error(t, err)
		assert.Nil(t, keeper)
	})
}

func TestLoadMasterKeyChain(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()

	masterKey, err := GenerateKey()
	require.NoError(t, err)

	t.Run("Success_PlainKeys", func(t *testing.T) {
		src := MasterKeySource{
			MasterKeys:        "v1:" + base64.StdEncoding.EncodeToString(masterKey),
			ActiveMasterKeyID: "v1",
		}
		assert.False(t, src.UsesKMS())

		mkc, err := LoadMasterKeyChain(ctx, kmsService, src, nil)
		require.NoError(t, err)
		defer mkc.Close()

		mk, ok := mkc.Get("v1")
		require.True(t, ok)
		assert.Equal(t, masterKey, mk.Key)
	})

	t.Run("Success_KMSKeys", func(t *testing.T) {
		keyURI := generateLocalSecretsURI(t)
		keeper, err := kmsService.OpenKeeper(ctx, keyURI)
		require.NoError(t, err)
		ciphertext, err := keeper.Encrypt(ctx, masterKey)
		require.NoError(t, err)
		require.NoError(t, keeper.Close())

		src := MasterKeySource{
			MasterKeys:        "v1:" + base64.StdEncoding.EncodeToString(ciphertext),
			ActiveMasterKeyID: "v1",
			KMSProvider:       "localsecrets",
			KMSKeyURI:         keyURI,
		}
		assert.True(t, src.UsesKMS())

		mkc, err := LoadMasterKeyChain(ctx, kmsService, src, nil)
		require.NoError(t, err)
		defer mkc.Close()

		mk, ok := mkc.Get("v1")
		require.True(t, ok)
		assert.Equal(t, masterKey, mk.Key)
	})

	t.Run("Error_KeeperCannotOpen", func(t *testing.T) {
		src := MasterKeySource{
			MasterKeys:        "v1:" + base64.StdEncoding.EncodeToString(masterKey),
			ActiveMasterKeyID: "v1",
			KMSProvider:       "bogus",
			KMSKeyURI:         "invalid://uri",
		}

		mkc, err := LoadMasterKeyChain(ctx, kmsService, src, nil)
		assert.Nil(t, mkc)
		assert.ErrorIs(t, err, cryptoDomain.ErrKMSDecryptionFailed)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("Error_PlainKeyTreatedAsCiphertext", func(t *testing.T) {
		src := MasterKeySource{
			MasterKeys:        "v1:" + base64.StdEncoding.EncodeToString(masterKey),
			ActiveMasterKeyID: "v1",
			KMSProvider:       "localsecrets",
			KMSKeyURI:         generateLocalSecretsURI(t),
		}

		_, err := LoadMasterKeyChain(ctx, kmsService, src, nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrKMSDecryptionFailed)
	})
}
