package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
	"github.com/allisson/walletkeys/internal/database"
	apperrors "github.com/allisson/walletkeys/internal/errors"
	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
)

// RotationOptions tunes batch rotation.
type RotationOptions struct {
	// Concurrency bounds how many wallets are rotated at once. Values below 1 mean 1.
	Concurrency int
	// RatePerSecond paces wallet starts. Zero or negative disables pacing.
	RatePerSecond float64
}

// KeyRotationCoordinator moves records from the current master key to another one.
//
// Every wallet is handled under its own lock with a read, decrypt, re-encrypt and a
// single conditional write. The old record stays in place until the new one is fully
// built, so a failed or cancelled rotation never leaves a wallet half migrated.
type KeyRotationCoordinator struct {
	current   EncryptionService
	txManager database.TxManager
	repo      KeyRecordRepository
	locks     *WalletLocker
	opts      RotationOptions
	logger    *slog.Logger
}

// NewKeyRotationCoordinator creates a coordinator bound to the current service.
func NewKeyRotationCoordinator(
	current EncryptionService,
	txManager database.TxManager,
	repo KeyRecordRepository,
	locks *WalletLocker,
	opts RotationOptions,
	logger *slog.Logger,
) *KeyRotationCoordinator {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if locks == nil {
		locks = NewWalletLocker()
	}
	return &KeyRotationCoordinator{
		current:   current,
		txManager: txManager,
		repo:      repo,
		locks:     locks,
		opts:      opts,
		logger:    logger,
	}
}

// RotateMasterKey re-wraps one wallet under next.
//
// A record already on next's master key is left alone and reported as success, so
// retries are safe. A record on any key other than the current one is
// ErrMasterKeyMismatch.
func (c *KeyRotationCoordinator) RotateMasterKey(
	ctx context.Context,
	walletID, pin string,
	next EncryptionService,
) error {
	unlock := c.locks.Lock(walletID)
	defer unlock()

	record, err := c.repo.GetByWalletID(ctx, walletID)
	if err != nil {
		return err
	}

	if record.MasterKeyID == next.MasterKeyID() {
		return nil
	}
	if record.MasterKeyID != c.current.MasterKeyID() {
		return fmt.Errorf(
			"%w: wallet is on %q, rotation source is %q",
			walletDomain.ErrMasterKeyMismatch, record.MasterKeyID, c.current.MasterKeyID(),
		)
	}

	privateKey, err := c.current.DecryptPrivateKey(ctx, record, pin)
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(privateKey)

	return rewrap(ctx, c.txManager, c.repo, c.current, record, privateKey, pin, next)
}

// RotateAllMasterKeys rotates every record on the current master key to next.
//
// Per-wallet failures are collected in the report and never stop the batch. Cancellation
// is checked before each wallet starts; wallets not started are reported as skipped and
// ctx.Err() is returned with the partial report.
func (c *KeyRotationCoordinator) RotateAllMasterKeys(
	ctx context.Context,
	next EncryptionService,
	pinProvider PinProvider,
) (*walletDomain.RotationReport, error) {
	report := &walletDomain.RotationReport{
		OldMasterKeyID: c.current.MasterKeyID(),
		NewMasterKeyID: next.MasterKeyID(),
		Failed:         []walletDomain.RotationFailure{},
		Skipped:        []string{},
		StartedAt:      time.Now().UTC(),
	}

	records, err := c.repo.ListByMasterKeyID(ctx, report.OldMasterKeyID)
	if err != nil {
		return nil, err
	}
	report.Total = len(records)

	var limiter *rate.Limiter
	if c.opts.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(c.opts.RatePerSecond), 1)
	}

	var (
		mu      sync.Mutex
		g       errgroup.Group
		stopErr error
	)
	g.SetLimit(c.opts.Concurrency)

	track := func(walletID string, err error) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case err == nil:
			report.Succeeded++
		case ctx.Err() != nil && apperrors.Is(err, ctx.Err()):
			report.Skipped = append(report.Skipped, walletID)
		default:
			report.Failed = append(report.Failed, walletDomain.RotationFailure{
				WalletID: walletID,
				Reason:   err.Error(),
			})
			if c.logger != nil {
				c.logger.Warn("wallet key rotation failed",
					slog.String("wallet_id", walletID),
					slog.String("old_master_key_id", report.OldMasterKeyID),
					slog.String("new_master_key_id", report.NewMasterKeyID),
					slog.Any("error", err),
				)
			}
		}
	}

	for i, r := range records {
		if err := c.waitTurn(ctx, limiter); err != nil {
			stopErr = err
			mu.Lock()
			for _, rest := range records[i:] {
				report.Skipped = append(report.Skipped, rest.WalletID)
			}
			mu.Unlock()
			break
		}

		walletID := r.WalletID
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				track(walletID, err)
				return nil
			}
			track(walletID, c.rotateWithProvider(ctx, walletID, pinProvider, next))
			return nil
		})
	}
	_ = g.Wait()

	sort.Strings(report.Skipped)
	sort.Slice(report.Failed, func(i, j int) bool {
		return report.Failed[i].WalletID < report.Failed[j].WalletID
	})
	report.FinishedAt = time.Now().UTC()

	if c.logger != nil {
		c.logger.Info("master key rotation finished",
			slog.String("old_master_key_id", report.OldMasterKeyID),
			slog.String("new_master_key_id", report.NewMasterKeyID),
			slog.Int("total", report.Total),
			slog.Int("succeeded", report.Succeeded),
			slog.Int("failed", len(report.Failed)),
			slog.Int("skipped", len(report.Skipped)),
			slog.Duration("duration", report.Duration()),
		)
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, stopErr
}

// waitTurn blocks until the next wallet may start.
func (c *KeyRotationCoordinator) waitTurn(ctx context.Context, limiter *rate.Limiter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if limiter == nil {
		return nil
	}
	return limiter.Wait(ctx)
}

func (c *KeyRotationCoordinator) rotateWithProvider(
	ctx context.Context,
	walletID string,
	pinProvider PinProvider,
	next EncryptionService,
) error {
	pin, err := pinProvider.PinFor(ctx, walletID)
	if err != nil {
		return fmt.Errorf("pin provider: %w", err)
	}
	return c.RotateMasterKey(ctx, walletID, pin, next)
}

// rewrap encrypts privateKey under target and replaces the stored ciphertext of record
// with one conditional update keyed on record's current data_key_id. Once the update
// commits, the old data key is dropped from source's cache.
func rewrap(
	ctx context.Context,
	txManager database.TxManager,
	repo KeyRecordRepository,
	source EncryptionService,
	record *walletDomain.EncryptedKeyRecord,
	privateKey []byte,
	pin string,
	target EncryptionService,
) error {
	next, err := target.EncryptPrivateKey(ctx, privateKey, pin)
	if err != nil {
		return err
	}

	updated := record.Clone()
	updated.ReplaceCiphertext(next)
	updated.UpdatedAt = time.Now().UTC()

	err = txManager.WithTx(ctx, func(txCtx context.Context) error {
		return repo.Update(txCtx, updated, record.DataKeyID)
	})
	if err != nil {
		return err
	}

	evictDataKey(source, record.DataKeyID)
	return nil
}
