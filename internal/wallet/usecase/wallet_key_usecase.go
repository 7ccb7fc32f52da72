package usecase

import (
	"context"
	"log/slog"
	"time"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
	"github.com/allisson/walletkeys/internal/database"
	apperrors "github.com/allisson/walletkeys/internal/errors"
	"github.com/allisson/walletkeys/internal/validation"
	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
)

// WalletKeyConfig carries the behavioural switches of the wallet key use case.
type WalletKeyConfig struct {
	// LazyRotation re-wraps a record under the active master key after a successful
	// unlock when it is still on an older one.
	LazyRotation bool
	Rotation     RotationOptions
}

// walletKeyUseCase implements the WalletKeyUseCase interface.
type walletKeyUseCase struct {
	txManager database.TxManager
	repo      KeyRecordRepository
	registry  *ServiceRegistry
	keySource PrivateKeySource
	locks     *WalletLocker
	cfg       WalletKeyConfig
	logger    *slog.Logger
}

// NewWalletKeyUseCase creates a WalletKeyUseCase. The registry's active service
// encrypts every new or re-encrypted record.
func NewWalletKeyUseCase(
	txManager database.TxManager,
	repo KeyRecordRepository,
	registry *ServiceRegistry,
	keySource PrivateKeySource,
	locks *WalletLocker,
	cfg WalletKeyConfig,
	logger *slog.Logger,
) WalletKeyUseCase {
	if locks == nil {
		locks = NewWalletLocker()
	}
	if keySource == nil {
		keySource = NewSecp256k1KeySource()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &walletKeyUseCase{
		txManager: txManager,
		repo:      repo,
		registry:  registry,
		keySource: keySource,
		locks:     locks,
		cfg:       cfg,
		logger:    logger,
	}
}

func (w *walletKeyUseCase) CreateWalletKey(
	ctx context.Context,
	walletID, userID string,
	privateKey []byte,
	pin string,
) (*walletDomain.EncryptedKeyRecord, error) {
	if err := validation.ValidateWalletID(walletID); err != nil {
		return nil, err
	}
	if err := validation.ValidatePin(pin); err != nil {
		return nil, err
	}
	if err := ValidatePrivateKey(privateKey); err != nil {
		return nil, err
	}

	record, err := w.registry.Active().EncryptPrivateKey(ctx, privateKey, pin)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record.WalletID = walletID
	record.UserID = userID
	record.CreatedAt = now
	record.UpdatedAt = now

	err = w.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return w.repo.Create(txCtx, record)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (w *walletKeyUseCase) GenerateWalletKey(
	ctx context.Context,
	walletID, userID, pin string,
) (*walletDomain.EncryptedKeyRecord, error) {
	// Validate before drawing key material.
	if err := validation.ValidateWalletID(walletID); err != nil {
		return nil, err
	}
	if err := validation.ValidatePin(pin); err != nil {
		return nil, err
	}

	privateKey, err := w.keySource.NewPrivateKey(ctx)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(privateKey)

	return w.CreateWalletKey(ctx, walletID, userID, privateKey, pin)
}

func (w *walletKeyUseCase) SignOrDecrypt(ctx context.Context, walletID, pin string) ([]byte, error) {
	if err := validation.ValidatePin(pin); err != nil {
		return nil, err
	}

	record, err := w.repo.GetByWalletID(ctx, walletID)
	if err != nil {
		return nil, err
	}

	svc, err := w.registry.ForRecord(record)
	if err != nil {
		return nil, err
	}

	privateKey, err := svc.DecryptPrivateKey(ctx, record, pin)
	if err != nil {
		return nil, err
	}

	if w.cfg.LazyRotation && record.MasterKeyID != w.registry.ActiveMasterKeyID() {
		w.lazyRotate(ctx, svc, record, privateKey, pin)
	}

	return privateKey, nil
}

// lazyRotate moves record to the active master key after the user proved the PIN.
// Failures are logged only; the next successful unlock tries again.
func (w *walletKeyUseCase) lazyRotate(
	ctx context.Context,
	source EncryptionService,
	record *walletDomain.EncryptedKeyRecord,
	privateKey []byte,
	pin string,
) {
	unlock := w.locks.Lock(record.WalletID)
	defer unlock()

	err := rewrap(ctx, w.txManager, w.repo, source, record, privateKey, pin, w.registry.Active())
	switch {
	case err == nil:
		w.logger.Info("wallet key re-wrapped under active master key",
			slog.String("wallet_id", record.WalletID),
			slog.String("old_master_key_id", record.MasterKeyID),
			slog.String("master_key_id", w.registry.ActiveMasterKeyID()),
		)
	case apperrors.Is(err, walletDomain.ErrKeyRecordConflict):
		w.logger.Debug("lazy rotation skipped, record changed concurrently",
			slog.String("wallet_id", record.WalletID),
		)
	default:
		w.logger.Warn("lazy rotation failed",
			slog.String("wallet_id", record.WalletID),
			slog.Any("error", err),
		)
	}
}

func (w *walletKeyUseCase) VerifyPin(ctx context.Context, walletID, pin string) (bool, error) {
	if err := validation.ValidatePin(pin); err != nil {
		return false, err
	}

	record, err := w.repo.GetByWalletID(ctx, walletID)
	if err != nil {
		return false, err
	}

	svc, err := w.registry.ForRecord(record)
	if err != nil {
		return false, err
	}

	return svc.VerifyPin(ctx, record, pin)
}

func (w *walletKeyUseCase) ChangePin(ctx context.Context, walletID, oldPin, newPin string) error {
	if err := validation.ValidatePin(oldPin); err != nil {
		return err
	}
	if err := validation.ValidatePin(newPin); err != nil {
		return err
	}
	if oldPin == newPin {
		return walletDomain.ErrPinUnchanged
	}

	unlock := w.locks.Lock(walletID)
	defer unlock()

	record, err := w.repo.GetByWalletID(ctx, walletID)
	if err != nil {
		return err
	}

	svc, err := w.registry.ForRecord(record)
	if err != nil {
		return err
	}

	privateKey, err := svc.DecryptPrivateKey(ctx, record, oldPin)
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(privateKey)

	return rewrap(ctx, w.txManager, w.repo, svc, record, privateKey, newPin, w.registry.Active())
}

func (w *walletKeyUseCase) DeleteWalletKey(ctx context.Context, walletID string) error {
	unlock := w.locks.Lock(walletID)
	defer unlock()

	return w.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return w.repo.Delete(txCtx, walletID)
	})
}

func (w *walletKeyUseCase) RotateMasterKeyBatch(
	ctx context.Context,
	oldMasterKeyID string,
	pinProvider PinProvider,
) (*walletDomain.RotationReport, error) {
	if oldMasterKeyID == w.registry.ActiveMasterKeyID() {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "old master key is already the active master key")
	}

	current, ok := w.registry.Get(oldMasterKeyID)
	if !ok {
		return nil, cryptoDomain.ErrMasterKeyNotFound
	}

	coordinator := NewKeyRotationCoordinator(
		current,
		w.txManager,
		w.repo,
		w.locks,
		w.cfg.Rotation,
		w.logger,
	)
	return coordinator.RotateAllMasterKeys(ctx, w.registry.Active(), pinProvider)
}
