package commands

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
	cryptoService "github.com/allisson/walletkeys/internal/crypto/service"
)

var errKMSParamsIncomplete = errors.New(
	"--kms-provider and --kms-key-uri must be given together\n\nFor local development, use:\n  --kms-provider=localsecrets --kms-key-uri=\"base64key://<32-byte-base64-key>\"\n\nFor production, use cloud KMS providers:\n  --kms-provider=gcpkms --kms-key-uri=\"gcpkms://projects/.../cryptoKeys/...\"\n  --kms-provider=awskms --kms-key-uri=\"awskms:///alias/...\"\n  --kms-provider=azurekeyvault --kms-key-uri=\"azurekeyvault://...\"",
)

// defaultMasterKeyID names a master key after the current date.
func defaultMasterKeyID() string {
	return fmt.Sprintf("master-key-%s", time.Now().Format("2006-01-02"))
}

// newEncodedMasterKey generates a 32-byte master key and returns its MASTER_KEYS value:
// the KMS ciphertext when kmsKeyURI is set, the raw key otherwise, both base64 encoded.
// The plaintext key is zeroed before returning.
func newEncodedMasterKey(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	kmsProvider, kmsKeyURI string,
) (string, error) {
	masterKey, err := cryptoService.GenerateKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate master key: %w", err)
	}
	defer cryptoDomain.Zero(masterKey)

	if kmsKeyURI == "" {
		return base64.StdEncoding.EncodeToString(masterKey), nil
	}

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return "", fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close KMS keeper",
				slog.String("kms_provider", kmsProvider),
				slog.Any("error", closeErr),
			)
		}
	}()

	ciphertext, err := keeper.Encrypt(ctx, masterKey)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt master key with KMS: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// RunCreateMasterKey generates a master key and prints the environment variables that
// configure it. With a KMS provider the key is printed as KMS ciphertext; without one it
// is printed raw, which is only suitable for local development.
func RunCreateMasterKey(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	keyID, kmsProvider, kmsKeyURI string,
) error {
	if (kmsProvider == "") != (kmsKeyURI == "") {
		return errKMSParamsIncomplete
	}
	if keyID == "" {
		keyID = defaultMasterKeyID()
	}

	encodedKey, err := newEncodedMasterKey(ctx, kmsService, logger, kmsProvider, kmsKeyURI)
	if err != nil {
		return err
	}

	logger.Info("master key created",
		slog.String("master_key_id", keyID),
		slog.Bool("kms", kmsKeyURI != ""),
	)

	if kmsKeyURI != "" {
		_, _ = fmt.Fprintln(writer, "# Master Key Configuration (KMS Mode)")
		_, _ = fmt.Fprintf(writer, "# KMS Provider: %s\n", kmsProvider)
	} else {
		_, _ = fmt.Fprintln(writer, "# Master Key Configuration (Plaintext Mode)")
		_, _ = fmt.Fprintln(writer, "# WARNING: plaintext master keys are for local development only")
	}
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	if kmsKeyURI != "" {
		_, _ = fmt.Fprintf(writer, "KMS_PROVIDER=\"%s\"\n", kmsProvider)
		_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	}
	_, _ = fmt.Fprintf(writer, "MASTER_KEYS=\"%s:%s\"\n", keyID, encodedKey)
	_, _ = fmt.Fprintf(writer, "ACTIVE_MASTER_KEY_ID=\"%s\"\n", keyID)

	return nil
}
