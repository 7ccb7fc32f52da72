package app

import (
	"context"
	"fmt"
	"sync"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
	cryptoService "github.com/allisson/walletkeys/internal/crypto/service"
	"github.com/allisson/walletkeys/internal/database"
	walletHTTP "github.com/allisson/walletkeys/internal/wallet/http"
	walletRepository "github.com/allisson/walletkeys/internal/wallet/repository"
	walletUseCase "github.com/allisson/walletkeys/internal/wallet/usecase"
)

// walletComponents groups the wallet key dependencies held by the Container.
type walletComponents struct {
	kmsService       cryptoService.KMSService
	masterKeyChain   *cryptoDomain.MasterKeyChain
	aeadManager      cryptoService.AEADManager
	kdfManager       cryptoService.KDFManager
	serviceRegistry  *walletUseCase.ServiceRegistry
	keyRecordRepo    walletUseCase.KeyRecordRepository
	walletLocker     *walletUseCase.WalletLocker
	walletKeyUseCase walletUseCase.WalletKeyUseCase
	walletKeyHandler *walletHTTP.WalletKeyHandler

	kmsServiceInit       sync.Once
	masterKeyChainInit   sync.Once
	aeadManagerInit      sync.Once
	kdfManagerInit       sync.Once
	serviceRegistryInit  sync.Once
	keyRecordRepoInit    sync.Once
	walletLockerInit     sync.Once
	walletKeyUseCaseInit sync.Once
	walletKeyHandlerInit sync.Once
}

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// KDFManager returns the PIN key derivation pool.
func (c *Container) KDFManager() cryptoService.KDFManager {
	c.kdfManagerInit.Do(func() {
		c.kdfManager = cryptoService.NewKDFManager(c.config.KDFWorkers)
	})
	return c.kdfManager
}

// WalletLocker returns the per-wallet lock table shared by every wallet key operation.
func (c *Container) WalletLocker() *walletUseCase.WalletLocker {
	c.walletLockerInit.Do(func() {
		c.walletLocker = walletUseCase.NewWalletLocker()
	})
	return c.walletLocker
}

// MasterKeyChain returns the master key chain loaded from configuration.
func (c *Container) MasterKeyChain() (*cryptoDomain.MasterKeyChain, error) {
	var err error
	c.masterKeyChainInit.Do(func() {
		c.masterKeyChain, err = c.initMasterKeyChain()
		if err != nil {
			c.initErrors["masterKeyChain"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["masterKeyChain"]; exists {
		return nil, storedErr
	}
	return c.masterKeyChain, nil
}

// ServiceRegistry returns one encryption service per master key, keyed by master key id.
func (c *Container) ServiceRegistry() (*walletUseCase.ServiceRegistry, error) {
	var err error
	c.serviceRegistryInit.Do(func() {
		c.serviceRegistry, err = c.initServiceRegistry()
		if err != nil {
			c.initErrors["serviceRegistry"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["serviceRegistry"]; exists {
		return nil, storedErr
	}
	return c.serviceRegistry, nil
}

// KeyRecordRepository returns the key record repository for the configured database driver.
func (c *Container) KeyRecordRepository() (walletUseCase.KeyRecordRepository, error) {
	var err error
	c.keyRecordRepoInit.Do(func() {
		c.keyRecordRepo, err = c.initKeyRecordRepository()
		if err != nil {
			c.initErrors["keyRecordRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyRecordRepo"]; exists {
		return nil, storedErr
	}
	return c.keyRecordRepo, nil
}

// WalletKeyUseCase returns the wallet key use case.
func (c *Container) WalletKeyUseCase() (walletUseCase.WalletKeyUseCase, error) {
	var err error
	c.walletKeyUseCaseInit.Do(func() {
		c.walletKeyUseCase, err = c.initWalletKeyUseCase()
		if err != nil {
			c.initErrors["walletKeyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["walletKeyUseCase"]; exists {
		return nil, storedErr
	}
	return c.walletKeyUseCase, nil
}

// WalletKeyHandler returns the wallet key HTTP handler.
func (c *Container) WalletKeyHandler() (*walletHTTP.WalletKeyHandler, error) {
	var err error
	c.walletKeyHandlerInit.Do(func() {
		c.walletKeyHandler, err = c.initWalletKeyHandler()
		if err != nil {
			c.initErrors["walletKeyHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["walletKeyHandler"]; exists {
		return nil, storedErr
	}
	return c.walletKeyHandler, nil
}

// initMasterKeyChain loads the master key chain, unwrapping it through the KMS when configured.
func (c *Container) initMasterKeyChain() (*cryptoDomain.MasterKeyChain, error) {
	chain, err := cryptoService.LoadMasterKeyChain(
		context.Background(),
		c.KMSService(),
		cryptoService.MasterKeySource{
			MasterKeys:        c.config.MasterKeys,
			ActiveMasterKeyID: c.config.ActiveMasterKeyID,
			KMSProvider:       c.config.KMSProvider,
			KMSKeyURI:         c.config.KMSKeyURI,
		},
		c.Logger(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load master key chain: %w", err)
	}
	return chain, nil
}

// initServiceRegistry creates an encryption service for every loaded master key.
func (c *Container) initServiceRegistry() (*walletUseCase.ServiceRegistry, error) {
	chain, err := c.MasterKeyChain()
	if err != nil {
		return nil, fmt.Errorf("failed to get master key chain for service registry: %w", err)
	}

	registry, err := walletUseCase.NewServiceRegistryFromChain(
		chain,
		cryptoDomain.Algorithm(c.config.WalletKeyAlgorithm),
		cryptoDomain.KDFAlgorithm(c.config.WalletKDFAlgorithm),
		c.AEADManager(),
		c.KDFManager(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create service registry: %w", err)
	}
	return registry, nil
}

// initKeyRecordRepository selects the repository implementation for the database driver.
func (c *Container) initKeyRecordRepository() (walletUseCase.KeyRecordRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for key record repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return walletRepository.NewPostgreSQLKeyRecordRepository(db), nil
	case database.DriverMySQL:
		return walletRepository.NewMySQLKeyRecordRepository(db), nil
	case database.DriverSQLite:
		return walletRepository.NewSQLiteKeyRecordRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initWalletKeyUseCase creates the wallet key use case with all its dependencies.
func (c *Container) initWalletKeyUseCase() (walletUseCase.WalletKeyUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for wallet key use case: %w", err)
	}

	repo, err := c.KeyRecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get key record repository for wallet key use case: %w", err)
	}

	registry, err := c.ServiceRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to get service registry for wallet key use case: %w", err)
	}

	baseUseCase := walletUseCase.NewWalletKeyUseCase(
		txManager,
		repo,
		registry,
		walletUseCase.NewSecp256k1KeySource(),
		c.WalletLocker(),
		walletUseCase.WalletKeyConfig{
			LazyRotation: c.config.LazyRotationEnabled,
			Rotation: walletUseCase.RotationOptions{
				Concurrency:   c.config.RotationConcurrency,
				RatePerSecond: c.config.RotationRatePerSec,
			},
		},
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for wallet key use case: %w", err)
		}
		if err := c.registerWalletGauges(registry); err != nil {
			return nil, err
		}
		return walletUseCase.NewWalletKeyUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initWalletKeyHandler creates the wallet key HTTP handler.
func (c *Container) initWalletKeyHandler() (*walletHTTP.WalletKeyHandler, error) {
	useCase, err := c.WalletKeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet key use case for handler: %w", err)
	}
	return walletHTTP.NewWalletKeyHandler(useCase, c.Logger()), nil
}

// closeWalletComponents wipes cached data keys and master keys. Caller holds c.mu.
func (c *Container) closeWalletComponents() {
	if c.serviceRegistry != nil {
		c.serviceRegistry.Close()
	}
	if c.masterKeyChain != nil {
		c.masterKeyChain.Close()
	}
}

// registerWalletGauges exports the data key cache size and the number of wallets
// currently locked.
func (c *Container) registerWalletGauges(registry *walletUseCase.ServiceRegistry) error {
	provider, err := c.MetricsProvider()
	if err != nil {
		return fmt.Errorf("failed to get metrics provider for wallet gauges: %w", err)
	}

	if err := provider.ObserveGauge(
		"cached_data_keys",
		"Number of unwrapped data keys held in memory",
		func() int64 { return int64(registry.CachedDataKeys()) },
	); err != nil {
		return err
	}

	locker := c.WalletLocker()
	return provider.ObserveGauge(
		"wallet_locks_held",
		"Number of wallets with an operation in progress",
		func() int64 { return int64(locker.Len()) },
	)
}
