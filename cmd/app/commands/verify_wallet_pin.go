package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	walletUseCase "github.com/allisson/walletkeys/internal/wallet/usecase"
)

// ErrPinMismatch is returned when the PIN does not unlock the wallet.
var ErrPinMismatch = errors.New("PIN does not unlock the wallet")

// readPin reads the first line of reader as a PIN.
func readPin(reader io.Reader) (string, error) {
	line, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read PIN: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// RunVerifyWalletPin checks whether a PIN unlocks a wallet key without printing the key.
// When pin is empty it is read from the first line of the reader, which keeps it out of
// shell history. Returns ErrPinMismatch for a wrong PIN.
func RunVerifyWalletPin(
	ctx context.Context,
	walletKeyUseCase walletUseCase.WalletKeyUseCase,
	logger *slog.Logger,
	streams IOTuple,
	walletID, pin, format string,
) error {
	if walletID == "" {
		return errors.New("--wallet-id is required")
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	if pin == "" {
		var err error
		if pin, err = readPin(streams.Reader); err != nil {
			return err
		}
	}

	valid, err := walletKeyUseCase.VerifyPin(ctx, walletID, pin)
	if err != nil {
		return fmt.Errorf("failed to verify PIN: %w", err)
	}

	logger.Info("wallet PIN verified",
		slog.String("wallet_id", walletID),
		slog.Bool("valid", valid),
	)

	if format == "json" {
		if err := writeJSON(streams.Writer, map[string]any{"wallet_id": walletID, "valid": valid}); err != nil {
			return err
		}
	} else if valid {
		_, _ = fmt.Fprintf(streams.Writer, "PIN is valid for wallet %s\n", walletID)
	} else {
		_, _ = fmt.Fprintf(streams.Writer, "PIN is NOT valid for wallet %s\n", walletID)
	}

	if !valid {
		return ErrPinMismatch
	}
	return nil
}
