package service

import (
	"context"
	"fmt"
	"log/slog"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"

	// KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMSService opens keepers for the KMS that protects master keys at rest.
type KMSService interface {
	// OpenKeeper opens a keeper for keyURI (gcpkms://, awskms://, azurekeyvault://,
	// hashivault://, base64key://).
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}

type kmsService struct{}

// NewKMSService creates a KMSService backed by gocloud.dev/secrets.
func NewKMSService() KMSService {
	return &kmsService{}
}

func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// MasterKeySource describes where master keys come from.
type MasterKeySource struct {
	MasterKeys        string
	ActiveMasterKeyID string
	KMSProvider       string
	KMSKeyURI         string
}

// UsesKMS reports whether master keys are stored as KMS ciphertexts.
func (s MasterKeySource) UsesKMS() bool {
	return s.KMSProvider != "" && s.KMSKeyURI != ""
}

// LoadMasterKeyChain loads the master key chain, unwrapping each key through the KMS
// when one is configured. The keeper is closed before returning.
func LoadMasterKeyChain(
	ctx context.Context,
	kms KMSService,
	src MasterKeySource,
	logger *slog.Logger,
) (*cryptoDomain.MasterKeyChain, error) {
	if !src.UsesKMS() {
		return cryptoDomain.LoadMasterKeyChain(ctx, src.MasterKeys, src.ActiveMasterKeyID, nil, logger)
	}

	keeper, err := kms.OpenKeeper(ctx, src.KMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrKMSDecryptionFailed, err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil && logger != nil {
			logger.Warn("failed to close KMS keeper",
				slog.String("kms_provider", src.KMSProvider),
				slog.Any("error", closeErr),
			)
		}
	}()

	return cryptoDomain.LoadMasterKeyChain(ctx, src.MasterKeys, src.ActiveMasterKeyID, keeper, logger)
}
