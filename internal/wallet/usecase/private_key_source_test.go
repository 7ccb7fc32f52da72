package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
	"github.com/allisson/walletkeys/internal/wallet/usecase"
)

func TestSecp256k1KeySource_NewPrivateKey(t *testing.T) {
	source := usecase.NewSecp256k1KeySource()

	k1, err := source.NewPrivateKey(context.Background())
	require.NoError(t, err)
	k2, err := source.NewPrivateKey(context.Background())
	require.NoError(t, err)

	assert.Len(t, k1, 32)
	assert.NoError(t, usecase.ValidatePrivateKey(k1))
	assert.NotEqual(t, k1, k2)
}

func TestValidatePrivateKey(t *testing.T) {
	one := make([]byte, 32)
	one[31] = 1

	orderMinusOne := []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
		0xba, 0xae, 0xdc, 0xe6, 0xaf, 0x48, 0xa0, 0x3b,
		0xbf, 0xd2, 0x5e, 0x8c, 0xd0, 0x36, 0x41, 0x40,
	}
	allOnes := make([]byte, 32)
	for i := range allOnes {
		allOnes[i] = 0xff
	}

	tests := []struct {
		name    string
		key     []byte
		wantErr bool
	}{
		{name: "one", key: one},
		{name: "order minus one", key: orderMinusOne},
		{name: "nil", key: nil, wantErr: true},
		{name: "33 bytes", key: make([]byte, 33), wantErr: true},
		{name: "zero", key: make([]byte, 32), wantErr: true},
		{name: "above order", key: allOnes, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := usecase.ValidatePrivateKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, walletDomain.ErrInvalidPrivateKey)
				return
			}
			assert.NoError(t, err)
		})
	}
}
