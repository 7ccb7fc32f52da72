package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	cryptoService "github.com/allisson/walletkeys/internal/crypto/service"
)

// RunRotateMasterKey generates a new master key, appends it to the existing MASTER_KEYS
// and prints the configuration that makes it active. Wallet keys wrapped by the old
// master key keep working until they are moved with rotate-wallet-keys (or lazily on
// their next unlock).
func RunRotateMasterKey(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	keyID, kmsProvider, kmsKeyURI, existingMasterKeys, existingActiveKeyID string,
) error {
	if (kmsProvider == "") != (kmsKeyURI == "") {
		return errors.New(
			"KMS_PROVIDER and KMS_KEY_URI are required together for master key rotation\n\nFor local development, use:\n  KMS_PROVIDER=localsecrets\n  KMS_KEY_URI=\"base64key://<32-byte-base64-key>\"",
		)
	}
	if existingMasterKeys == "" {
		return errors.New("MASTER_KEYS is not set - cannot rotate without existing keys")
	}
	if existingActiveKeyID == "" {
		return errors.New("ACTIVE_MASTER_KEY_ID is not set")
	}
	if keyID == "" {
		keyID = defaultMasterKeyID()
	}
	if keyID == existingActiveKeyID {
		return fmt.Errorf("new master key id %q is already the active master key", keyID)
	}

	encodedKey, err := newEncodedMasterKey(ctx, kmsService, logger, kmsProvider, kmsKeyURI)
	if err != nil {
		return err
	}

	// New key last, set as active.
	newMasterKeys := fmt.Sprintf("%s,%s:%s", existingMasterKeys, keyID, encodedKey)

	logger.Info("master key rotated",
		slog.String("old_master_key_id", existingActiveKeyID),
		slog.String("new_master_key_id", keyID),
	)

	_, _ = fmt.Fprintln(writer, "# Master Key Rotation")
	_, _ = fmt.Fprintln(writer, "# Update these environment variables in your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	if kmsKeyURI != "" {
		_, _ = fmt.Fprintf(writer, "KMS_PROVIDER=\"%s\"\n", kmsProvider)
		_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	}
	_, _ = fmt.Fprintf(writer, "MASTER_KEYS=\"%s\"\n", newMasterKeys)
	_, _ = fmt.Fprintf(writer, "ACTIVE_MASTER_KEY_ID=\"%s\"\n", keyID)
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintln(writer, "# Rotation Workflow:")
	_, _ = fmt.Fprintln(writer, "# 1. Update the above environment variables")
	_, _ = fmt.Fprintln(writer, "# 2. Restart the application")
	_, _ = fmt.Fprintf(writer,
		"# 3. Move wallet keys: app rotate-wallet-keys --old-master-key-id %s --pins-file pins.csv\n",
		existingActiveKeyID,
	)
	_, _ = fmt.Fprintf(writer,
		"# 4. After every wallet is rotated, remove the old master key: MASTER_KEYS=\"%s:%s\"\n",
		keyID,
		encodedKey,
	)

	return nil
}
