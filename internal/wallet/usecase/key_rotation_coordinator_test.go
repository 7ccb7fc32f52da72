package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/walletkeys/internal/errors"
	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
	"github.com/allisson/walletkeys/internal/wallet/usecase"
	usecaseMocks "github.com/allisson/walletkeys/internal/wallet/usecase/mocks"
)

type rotationFixture struct {
	v1, v2      usecase.EncryptionService
	repo        *memoryRepository
	coordinator *usecase.KeyRotationCoordinator
	keys        map[string][]byte
}

func newRotationFixture(t *testing.T, wallets int, opts usecase.RotationOptions) *rotationFixture {
	t.Helper()
	f := &rotationFixture{
		v1:   newTestService(t, "v1"),
		v2:   newTestService(t, "v2"),
		repo: newMemoryRepository(),
		keys: make(map[string][]byte),
	}
	for i := range wallets {
		walletID := fmt.Sprintf("wallet-%02d", i)
		f.keys[walletID] = seedWallet(t, f.repo, f.v1, walletID, testPin)
	}
	f.coordinator = usecase.NewKeyRotationCoordinator(
		f.v1,
		newPassThroughTxManager(t),
		f.repo,
		usecase.NewWalletLocker(),
		opts,
		nil,
	)
	return f
}

func TestKeyRotationCoordinator_RotateMasterKey(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_MovesRecordToNextKey", func(t *testing.T) {
		f := newRotationFixture(t, 1, usecase.RotationOptions{})
		before := f.repo.get(t, "wallet-00")

		require.NoError(t, f.coordinator.RotateMasterKey(ctx, "wallet-00", testPin, f.v2))

		after := f.repo.get(t, "wallet-00")
		assert.Equal(t, "v2", after.MasterKeyID)
		assert.NotEqual(t, before.DataKeyID, after.DataKeyID)
		assert.Equal(t, before.CreatedAt, after.CreatedAt)

		plaintext, err := f.v2.DecryptPrivateKey(ctx, after, testPin)
		require.NoError(t, err)
		assert.Equal(t, f.keys["wallet-00"], plaintext)

		_, err = f.v2.DecryptPrivateKey(ctx, after, wrongPin)
		assert.ErrorIs(t, err, walletDomain.ErrAuthenticationFailed)

		_, err = f.v1.DecryptPrivateKey(ctx, after, testPin)
		assert.ErrorIs(t, err, walletDomain.ErrMasterKeyMismatch)
	})

	t.Run("Success_EvictsOldDataKey", func(t *testing.T) {
		f := newRotationFixture(t, 1, usecase.RotationOptions{})
		before := f.repo.get(t, "wallet-00")
		require.True(t, isCached(t, f.v1, before))

		require.NoError(t, f.coordinator.RotateMasterKey(ctx, "wallet-00", testPin, f.v2))

		assert.False(t, isCached(t, f.v1, before))
		assert.Equal(t, 0, cacheLen(t, f.v1))
		assert.True(t, isCached(t, f.v2, f.repo.get(t, "wallet-00")))
	})

	t.Run("Success_IdempotentWhenAlreadyRotated", func(t *testing.T) {
		f := newRotationFixture(t, 1, usecase.RotationOptions{})

		require.NoError(t, f.coordinator.RotateMasterKey(ctx, "wallet-00", testPin, f.v2))
		rotated := f.repo.get(t, "wallet-00")

		require.NoError(t, f.coordinator.RotateMasterKey(ctx, "wallet-00", testPin, f.v2))
		again := f.repo.get(t, "wallet-00")

		assert.Equal(t, rotated, again)
		assert.Equal(t, 1, f.repo.updates)
	})

	t.Run("Error_WrongPinLeavesRecordUntouched", func(t *testing.T) {
		f := newRotationFixture(t, 1, usecase.RotationOptions{})
		before := f.repo.get(t, "wallet-00")

		err := f.coordinator.RotateMasterKey(ctx, "wallet-00", wrongPin, f.v2)
		assert.ErrorIs(t, err, walletDomain.ErrAuthenticationFailed)
		assert.Equal(t, before, f.repo.get(t, "wallet-00"))
	})

	t.Run("Error_RecordOnUnexpectedMasterKey", func(t *testing.T) {
		f := newRotationFixture(t, 0, usecase.RotationOptions{})
		v3 := newTestService(t, "v3")
		seedWallet(t, f.repo, v3, "wallet-x", testPin)

		err := f.coordinator.RotateMasterKey(ctx, "wallet-x", testPin, f.v2)
		assert.ErrorIs(t, err, walletDomain.ErrMasterKeyMismatch)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		f := newRotationFixture(t, 0, usecase.RotationOptions{})

		err := f.coordinator.RotateMasterKey(ctx, "missing", testPin, f.v2)
		assert.ErrorIs(t, err, walletDomain.ErrKeyRecordNotFound)
	})

	t.Run("Error_ConcurrentModification", func(t *testing.T) {
		v1 := newTestService(t, "v1")
		v2 := newTestService(t, "v2")
		record, err := v1.EncryptPrivateKey(ctx, newTestPrivateKey(t), testPin)
		require.NoError(t, err)
		record.WalletID = "wallet-00"

		repo := usecaseMocks.NewMockKeyRecordRepository(t)
		repo.EXPECT().
			GetByWalletID(mock.Anything, "wallet-00").
			Return(record, nil).
			Once()
		repo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(r *walletDomain.EncryptedKeyRecord) bool {
				return r.MasterKeyID == "v2" && r.WalletID == "wallet-00"
			}), record.DataKeyID).
			Return(walletDomain.ErrKeyRecordConflict).
			Once()

		coordinator := usecase.NewKeyRotationCoordinator(
			v1,
			newPassThroughTxManager(t),
			repo,
			nil,
			usecase.RotationOptions{},
			nil,
		)

		err = coordinator.RotateMasterKey(ctx, "wallet-00", testPin, v2)
		assert.ErrorIs(t, err, walletDomain.ErrKeyRecordConflict)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.True(t, isCached(t, v1, record), "data key stays cached when the update loses")
	})
}

func TestKeyRotationCoordinator_RotateAllMasterKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RotatesEveryWallet", func(t *testing.T) {
		f := newRotationFixture(t, 12, usecase.RotationOptions{Concurrency: 4})
		require.Equal(t, 12, cacheLen(t, f.v1))

		report, err := f.coordinator.RotateAllMasterKeys(ctx, f.v2, staticPins(testPin))
		require.NoError(t, err)

		assert.Equal(t, "v1", report.OldMasterKeyID)
		assert.Equal(t, "v2", report.NewMasterKeyID)
		assert.Equal(t, 12, report.Total)
		assert.Equal(t, 12, report.Succeeded)
		assert.Empty(t, report.Failed)
		assert.Empty(t, report.Skipped)
		assert.True(t, report.Complete())
		assert.False(t, report.FinishedAt.Before(report.StartedAt))
		assert.Equal(t, 0, cacheLen(t, f.v1), "migrated wallets leave no data keys behind")

		for walletID, key := range f.keys {
			record := f.repo.get(t, walletID)
			assert.Equal(t, "v2", record.MasterKeyID)
			plaintext, err := f.v2.DecryptPrivateKey(ctx, record, testPin)
			require.NoError(t, err)
			assert.Equal(t, key, plaintext)
		}
	})

	t.Run("Success_FailuresAreIsolated", func(t *testing.T) {
		f := newRotationFixture(t, 10, usecase.RotationOptions{Concurrency: 3})
		providerErr := errors.New("pin vault unavailable")

		pins := usecase.PinProviderFunc(func(_ context.Context, walletID string) (string, error) {
			switch walletID {
			case "wallet-03":
				return "", providerErr
			case "wallet-07":
				return wrongPin, nil
			}
			return testPin, nil
		})

		report, err := f.coordinator.RotateAllMasterKeys(ctx, f.v2, pins)
		require.NoError(t, err)

		assert.Equal(t, 10, report.Total)
		assert.Equal(t, 8, report.Succeeded)
		assert.Equal(t, []string{"wallet-03", "wallet-07"}, report.FailedWalletIDs())
		assert.Contains(t, report.Failed[0].Reason, "pin vault unavailable")
		assert.Contains(t, report.Failed[1].Reason, "invalid PIN or wallet")
		assert.False(t, report.Complete())

		for _, walletID := range []string{"wallet-03", "wallet-07"} {
			record := f.repo.get(t, walletID)
			assert.Equal(t, "v1", record.MasterKeyID)
			plaintext, err := f.v1.DecryptPrivateKey(ctx, record, testPin)
			require.NoError(t, err)
			assert.Equal(t, f.keys[walletID], plaintext)
		}
		assert.Equal(t, "v2", f.repo.get(t, "wallet-00").MasterKeyID)
	})

	t.Run("Success_SecondRunFindsNothing", func(t *testing.T) {
		f := newRotationFixture(t, 3, usecase.RotationOptions{Concurrency: 2})

		_, err := f.coordinator.RotateAllMasterKeys(ctx, f.v2, staticPins(testPin))
		require.NoError(t, err)

		report, err := f.coordinator.RotateAllMasterKeys(ctx, f.v2, staticPins(testPin))
		require.NoError(t, err)
		assert.Equal(t, 0, report.Total)
		assert.True(t, report.Complete())
	})

	t.Run("Cancelled_RemainingWalletsSkipped", func(t *testing.T) {
		f := newRotationFixture(t, 5, usecase.RotationOptions{Concurrency: 1})
		cancelCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		pins := usecase.PinProviderFunc(func(_ context.Context, walletID string) (string, error) {
			if walletID == "wallet-02" {
				cancel()
			}
			return testPin, nil
		})

		report, err := f.coordinator.RotateAllMasterKeys(cancelCtx, f.v2, pins)
		assert.ErrorIs(t, err, context.Canceled)
		require.NotNil(t, report)

		assert.Equal(t, 5, report.Total)
		assert.Equal(t, 2, report.Succeeded)
		assert.Empty(t, report.Failed)
		assert.Equal(t, []string{"wallet-02", "wallet-03", "wallet-04"}, report.Skipped)

		for _, walletID := range report.Skipped {
			assert.Equal(t, "v1", f.repo.get(t, walletID).MasterKeyID)
		}
		assert.Equal(t, "v2", f.repo.get(t, "wallet-00").MasterKeyID)
		assert.Equal(t, "v2", f.repo.get(t, "wallet-01").MasterKeyID)
	})

	t.Run("Paced_DeadlineSkipsRest", func(t *testing.T) {
		f := newRotationFixture(t, 4, usecase.RotationOptions{Concurrency: 1, RatePerSecond: 0.5})
		deadlineCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()

		report, err := f.coordinator.RotateAllMasterKeys(deadlineCtx, f.v2, staticPins(testPin))
		require.Error(t, err)
		require.NotNil(t, report)

		assert.Equal(t, 1, report.Succeeded)
		assert.Equal(t, []string{"wallet-01", "wallet-02", "wallet-03"}, report.Skipped)
	})

	t.Run("Error_ListFails", func(t *testing.T) {
		v1 := newTestService(t, "v1")
		repo := usecaseMocks.NewMockKeyRecordRepository(t)
		storageErr := apperrors.Storage(errors.New("connection reset"), "failed to list key records")
		repo.EXPECT().
			ListByMasterKeyID(mock.Anything, "v1").
			Return(nil, storageErr).
			Once()

		coordinator := usecase.NewKeyRotationCoordinator(
			v1,
			newPassThroughTxManager(t),
			repo,
			nil,
			usecase.RotationOptions{},
			nil,
		)

		report, err := coordinator.RotateAllMasterKeys(ctx, newTestService(t, "v2"), staticPins(testPin))
		assert.Nil(t, report)
		assert.ErrorIs(t, err, apperrors.ErrStorage)
	})
}
