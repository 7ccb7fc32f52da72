package usecase_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
	cryptoService "github.com/allisson/walletkeys/internal/crypto/service"
	databaseMocks "github.com/allisson/walletkeys/internal/database/mocks"
	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
	walletService "github.com/allisson/walletkeys/internal/wallet/service"
	"github.com/allisson/walletkeys/internal/wallet/usecase"
)

const (
	testPin  = "123456"
	wrongPin = "000000"
)

// memoryRepository is an in-memory KeyRecordRepository with the same conditional
// update semantics as the SQL backends.
type memoryRepository struct {
	mu      sync.Mutex
	records map[string]*walletDomain.EncryptedKeyRecord
	updates int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{records: make(map[string]*walletDomain.EncryptedKeyRecord)}
}

func (m *memoryRepository) Create(_ context.Context, record *walletDomain.EncryptedKeyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[record.WalletID]; ok {
		return walletDomain.ErrKeyRecordAlreadyExists
	}
	m.records[record.WalletID] = record.Clone()
	return nil
}

func (m *memoryRepository) GetByWalletID(_ context.Context, walletID string) (*walletDomain.EncryptedKeyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[walletID]
	if !ok {
		return nil, walletDomain.ErrKeyRecordNotFound
	}
	return r.Clone(), nil
}

func (m *memoryRepository) ListByMasterKeyID(
	_ context.Context,
	masterKeyID string,
) ([]*walletDomain.EncryptedKeyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*walletDomain.EncryptedKeyRecord
	for _, r := range m.records {
		if r.MasterKeyID == masterKeyID {
			out = append(out, r.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WalletID < out[j].WalletID })
	return out, nil
}

func (m *memoryRepository) Update(
	_ context.Context,
	record *walletDomain.EncryptedKeyRecord,
	expectedDataKeyID string,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.records[record.WalletID]
	if !ok || stored.DataKeyID != expectedDataKeyID {
		return walletDomain.ErrKeyRecordConflict
	}
	m.records[record.WalletID] = record.Clone()
	m.updates++
	return nil
}

func (m *memoryRepository) Delete(_ context.Context, walletID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[walletID]; !ok {
		return walletDomain.ErrKeyRecordNotFound
	}
	delete(m.records, walletID)
	return nil
}

func (m *memoryRepository) get(t *testing.T, walletID string) *walletDomain.EncryptedKeyRecord {
	t.Helper()
	r, err := m.GetByWalletID(context.Background(), walletID)
	require.NoError(t, err)
	return r
}

var _ usecase.KeyRecordRepository = (*memoryRepository)(nil)

// newPassThroughTxManager returns a TxManager mock that simply runs fn.
func newPassThroughTxManager(t *testing.T) *databaseMocks.MockTxManager {
	txManager := databaseMocks.NewMockTxManager(t)
	txManager.EXPECT().
		WithTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Maybe()
	return txManager
}

func newTestKDFManager() *cryptoService.KDFManagerService {
	return cryptoService.NewKDFManager(
		4,
		cryptoService.WithArgon2Params(cryptoDomain.Argon2Params{Time: 1, Memory: 64, Threads: 1}),
		cryptoService.WithPBKDF2Iterations(10),
	)
}

func newTestMasterKey(t *testing.T, id string) *cryptoDomain.MasterKey {
	t.Helper()
	key, err := cryptoService.GenerateKey()
	require.NoError(t, err)
	return &cryptoDomain.MasterKey{ID: id, Key: key}
}

func newTestService(t *testing.T, id string) *walletService.WalletEncryptionService {
	t.Helper()
	svc, err := walletService.NewWalletEncryptionService(
		newTestMasterKey(t, id),
		cryptoDomain.AESGCM,
		cryptoDomain.Argon2id,
		cryptoService.NewAEADManager(),
		newTestKDFManager(),
		walletService.NewDataKeyCache(),
	)
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

func newTestPrivateKey(t *testing.T) []byte {
	t.Helper()
	key, err := usecase.NewSecp256k1KeySource().NewPrivateKey(context.Background())
	require.NoError(t, err)
	return key
}

// seedWallet stores a record for walletID wrapped by svc and returns its private key.
func seedWallet(
	t *testing.T,
	repo *memoryRepository,
	svc usecase.EncryptionService,
	walletID, pin string,
) []byte {
	t.Helper()
	privateKey := newTestPrivateKey(t)
	record, err := svc.EncryptPrivateKey(context.Background(), privateKey, pin)
	require.NoError(t, err)
	record.WalletID = walletID
	require.NoError(t, repo.Create(context.Background(), record))
	return privateKey
}

// isCached reports whether svc still holds the data key record was wrapped with.
func isCached(t *testing.T, svc usecase.EncryptionService, record *walletDomain.EncryptedKeyRecord) bool {
	t.Helper()
	ws, ok := svc.(*walletService.WalletEncryptionService)
	require.True(t, ok)
	_, hit := ws.Cache().Get(record.DataKeyID, walletService.FingerprintOf(record.WrappedDataKey, record.MasterNonce))
	return hit
}

// cacheLen returns the number of data keys svc has cached.
func cacheLen(t *testing.T, svc usecase.EncryptionService) int {
	t.Helper()
	ws, ok := svc.(*walletService.WalletEncryptionService)
	require.True(t, ok)
	return ws.Cache().Len()
}

// staticPins answers every wallet with the same PIN.
func staticPins(pin string) usecase.PinProvider {
	return usecase.PinProviderFunc(func(context.Context, string) (string, error) {
		return pin, nil
	})
}
