package commands

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
	walletUseCase "github.com/allisson/walletkeys/internal/wallet/usecase"
)

// ErrRotationIncomplete is returned when a batch rotation left wallets on the old master key.
var ErrRotationIncomplete = errors.New("rotation incomplete")

// csvPinProvider serves PINs read from a "wallet_id,pin" CSV file.
type csvPinProvider struct {
	pins map[string]string
}

// NewCSVPinProvider reads "wallet_id,pin" rows from r. A leading "wallet_id,pin" header
// row is skipped. Duplicate wallet ids and empty fields are rejected.
func NewCSVPinProvider(r io.Reader) (walletUseCase.PinProvider, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read pins file: %w", err)
	}

	pins := make(map[string]string, len(rows))
	for i, row := range rows {
		walletID, pin := strings.TrimSpace(row[0]), row[1]
		if i == 0 && walletID == "wallet_id" && pin == "pin" {
			continue
		}
		if walletID == "" || pin == "" {
			return nil, fmt.Errorf("pins file row %d: wallet_id and pin are required", i+1)
		}
		if _, exists := pins[walletID]; exists {
			return nil, fmt.Errorf("pins file row %d: duplicate wallet_id %s", i+1, walletID)
		}
		pins[walletID] = pin
	}

	return &csvPinProvider{pins: pins}, nil
}

func (p *csvPinProvider) PinFor(_ context.Context, walletID string) (string, error) {
	pin, ok := p.pins[walletID]
	if !ok {
		return "", fmt.Errorf("no PIN provided for wallet %s", walletID)
	}
	return pin, nil
}

// RunRotateWalletKeys moves every wallet key wrapped by oldMasterKeyID to the active master
// key, using pins to unlock each wallet, and prints the rotation report.
//
// Per-wallet failures never stop the batch. The report is always printed; the command
// returns ErrRotationIncomplete when any wallet failed or was skipped so operators can
// re-run it for the remainder.
func RunRotateWalletKeys(
	ctx context.Context,
	walletKeyUseCase walletUseCase.WalletKeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	pins walletUseCase.PinProvider,
	oldMasterKeyID string,
	format string,
) error {
	if oldMasterKeyID == "" {
		return errors.New("--old-master-key-id is required")
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("rotating wallet keys", slog.String("old_master_key_id", oldMasterKeyID))

	report, rotateErr := walletKeyUseCase.RotateMasterKeyBatch(ctx, oldMasterKeyID, pins)
	if report == nil {
		if rotateErr == nil {
			rotateErr = errors.New("rotation returned no report")
		}
		return fmt.Errorf("failed to rotate wallet keys: %w", rotateErr)
	}

	if format == "json" {
		if err := writeJSON(writer, report); err != nil {
			return err
		}
	} else {
		outputRotationText(writer, report)
	}

	logger.Info("wallet key rotation finished",
		slog.String("old_master_key_id", report.OldMasterKeyID),
		slog.String("new_master_key_id", report.NewMasterKeyID),
		slog.Int("total", report.Total),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", len(report.Failed)),
		slog.Int("skipped", len(report.Skipped)),
		slog.Duration("duration", report.Duration()),
	)

	if rotateErr != nil {
		return fmt.Errorf("failed to rotate wallet keys: %w", rotateErr)
	}
	if !report.Complete() {
		return fmt.Errorf("%w: %d failed, %d skipped", ErrRotationIncomplete, len(report.Failed), len(report.Skipped))
	}
	return nil
}

// outputRotationText prints the report in human-readable form.
func outputRotationText(writer io.Writer, report *walletDomain.RotationReport) {
	_, _ = fmt.Fprintf(writer, "Rotated wallet keys from %s to %s\n", report.OldMasterKeyID, report.NewMasterKeyID)
	_, _ = fmt.Fprintf(writer, "Total: %d, Succeeded: %d, Failed: %d, Skipped: %d\n",
		report.Total, report.Succeeded, len(report.Failed), len(report.Skipped))
	_, _ = fmt.Fprintf(writer, "Duration: %s\n", report.Duration())

	if len(report.Failed) > 0 {
		_, _ = fmt.Fprintln(writer, "Failed:")
		for _, f := range report.Failed {
			_, _ = fmt.Fprintf(writer, "  %s: %s\n", f.WalletID, f.Reason)
		}
	}
	if len(report.Skipped) > 0 {
		_, _ = fmt.Fprintln(writer, "Skipped:")
		for _, id := range report.Skipped {
			_, _ = fmt.Fprintf(writer, "  %s\n", id)
		}
	}
}
