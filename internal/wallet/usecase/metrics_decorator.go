package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/allisson/walletkeys/internal/metrics"
	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
)

const metricsDomain = "wallet"

// walletKeyUseCaseWithMetrics decorates WalletKeyUseCase with metrics instrumentation.
type walletKeyUseCaseWithMetrics struct {
	next    WalletKeyUseCase
	metrics metrics.BusinessMetrics
}

// NewWalletKeyUseCaseWithMetrics wraps a WalletKeyUseCase with metrics recording.
func NewWalletKeyUseCaseWithMetrics(useCase WalletKeyUseCase, m metrics.BusinessMetrics) WalletKeyUseCase {
	return &walletKeyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (w *walletKeyUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	w.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	w.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

func (w *walletKeyUseCaseWithMetrics) CreateWalletKey(
	ctx context.Context,
	walletID, userID string,
	privateKey []byte,
	pin string,
) (*walletDomain.EncryptedKeyRecord, error) {
	start := time.Now()
	record, err := w.next.CreateWalletKey(ctx, walletID, userID, privateKey, pin)
	w.record(ctx, "wallet_key_create", start, err)
	return record, err
}

func (w *walletKeyUseCaseWithMetrics) GenerateWalletKey(
	ctx context.Context,
	walletID, userID, pin string,
) (*walletDomain.EncryptedKeyRecord, error) {
	start := time.Now()
	record, err := w.next.GenerateWalletKey(ctx, walletID, userID, pin)
	w.record(ctx, "wallet_key_generate", start, err)
	return record, err
}

func (w *walletKeyUseCaseWithMetrics) SignOrDecrypt(ctx context.Context, walletID, pin string) ([]byte, error) {
	start := time.Now()
	privateKey, err := w.next.SignOrDecrypt(ctx, walletID, pin)
	w.record(ctx, "wallet_key_decrypt", start, err)
	if errors.Is(err, walletDomain.ErrAuthenticationFailed) {
		w.metrics.RecordPinFailure(ctx, "wallet_key_decrypt")
	}
	return privateKey, err
}

// VerifyPin counts a wrong PIN as "error" even though it is not returned as one.
func (w *walletKeyUseCaseWithMetrics) VerifyPin(ctx context.Context, walletID, pin string) (bool, error) {
	start := time.Now()
	valid, err := w.next.VerifyPin(ctx, walletID, pin)

	status := "success"
	if err != nil || !valid {
		status = "error"
	}
	w.metrics.RecordOperation(ctx, metricsDomain, "wallet_key_verify_pin", status)
	w.metrics.RecordDuration(ctx, metricsDomain, "wallet_key_verify_pin", time.Since(start), status)
	if err == nil && !valid {
		w.metrics.RecordPinFailure(ctx, "wallet_key_verify_pin")
	}

	return valid, err
}

func (w *walletKeyUseCaseWithMetrics) ChangePin(ctx context.Context, walletID, oldPin, newPin string) error {
	start := time.Now()
	err := w.next.ChangePin(ctx, walletID, oldPin, newPin)
	w.record(ctx, "wallet_key_change_pin", start, err)
	if errors.Is(err, walletDomain.ErrAuthenticationFailed) {
		w.metrics.RecordPinFailure(ctx, "wallet_key_change_pin")
	}
	return err
}

func (w *walletKeyUseCaseWithMetrics) DeleteWalletKey(ctx context.Context, walletID string) error {
	start := time.Now()
	err := w.next.DeleteWalletKey(ctx, walletID)
	w.record(ctx, "wallet_key_delete", start, err)
	return err
}

func (w *walletKeyUseCaseWithMetrics) RotateMasterKeyBatch(
	ctx context.Context,
	oldMasterKeyID string,
	pinProvider PinProvider,
) (*walletDomain.RotationReport, error) {
	start := time.Now()
	report, err := w.next.RotateMasterKeyBatch(ctx, oldMasterKeyID, pinProvider)
	w.record(ctx, "master_key_rotate_batch", start, err)

	if report != nil {
		w.metrics.RecordRotation(ctx, oldMasterKeyID, metrics.RotationSucceeded, report.Succeeded)
		w.metrics.RecordRotation(ctx, oldMasterKeyID, metrics.RotationFailed, len(report.Failed))
		w.metrics.RecordRotation(ctx, oldMasterKeyID, metrics.RotationSkipped, len(report.Skipped))
	}

	return report, err
}
