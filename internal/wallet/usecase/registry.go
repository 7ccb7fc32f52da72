package usecase

import (
	"fmt"
	"sort"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
	cryptoService "github.com/allisson/walletkeys/internal/crypto/service"
	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
	walletService "github.com/allisson/walletkeys/internal/wallet/service"
)

// ServiceRegistry holds one EncryptionService per loaded master key. New records are
// always written by the active one; existing records are read by the service matching
// their master_key_id.
type ServiceRegistry struct {
	activeID string
	services map[string]EncryptionService
}

// NewServiceRegistry builds a registry from ready-made services.
func NewServiceRegistry(activeID string, services ...EncryptionService) (*ServiceRegistry, error) {
	r := &ServiceRegistry{activeID: activeID, services: make(map[string]EncryptionService, len(services))}
	for _, s := range services {
		r.services[s.MasterKeyID()] = s
	}
	if _, ok := r.services[activeID]; !ok {
		return nil, fmt.Errorf("%w: %s", cryptoDomain.ErrActiveMasterKeyNotFound, activeID)
	}
	return r, nil
}

// NewServiceRegistryFromChain creates a WalletEncryptionService with its own DataKeyCache
// for every master key in chain.
func NewServiceRegistryFromChain(
	chain *cryptoDomain.MasterKeyChain,
	algorithm cryptoDomain.Algorithm,
	kdf cryptoDomain.KDFAlgorithm,
	aeadManager cryptoService.AEADManager,
	kdfManager cryptoService.KDFManager,
) (*ServiceRegistry, error) {
	var services []EncryptionService
	for _, id := range chain.IDs() {
		mk, _ := chain.Get(id)
		svc, err := walletService.NewWalletEncryptionService(
			mk,
			algorithm,
			kdf,
			aeadManager,
			kdfManager,
			walletService.NewDataKeyCache(),
		)
		if err != nil {
			for _, s := range services {
				closeService(s)
			}
			return nil, err
		}
		services = append(services, svc)
	}
	return NewServiceRegistry(chain.ActiveMasterKeyID(), services...)
}

// Active returns the service for the active master key.
func (r *ServiceRegistry) Active() EncryptionService {
	return r.services[r.activeID]
}

// ActiveMasterKeyID returns the active master key id.
func (r *ServiceRegistry) ActiveMasterKeyID() string {
	return r.activeID
}

// Get returns the service for masterKeyID.
func (r *ServiceRegistry) Get(masterKeyID string) (EncryptionService, bool) {
	s, ok := r.services[masterKeyID]
	return s, ok
}

// ForRecord returns the service able to unwrap record, or ErrMasterKeyMismatch when its
// master key is not loaded.
func (r *ServiceRegistry) ForRecord(record *walletDomain.EncryptedKeyRecord) (EncryptionService, error) {
	s, ok := r.services[record.MasterKeyID]
	if !ok {
		return nil, fmt.Errorf("%w: master key %q is not loaded", walletDomain.ErrMasterKeyMismatch, record.MasterKeyID)
	}
	return s, nil
}

// MasterKeyIDs lists the loaded master key ids in lexical order.
func (r *ServiceRegistry) MasterKeyIDs() []string {
	ids := make([]string, 0, len(r.services))
	for id := range r.services {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Close releases every service that holds key material.
func (r *ServiceRegistry) Close() {
	for _, s := range r.services {
		closeService(s)
	}
}

func closeService(s EncryptionService) {
	if c, ok := s.(interface{ Close() }); ok {
		c.Close()
	}
}

func evictDataKey(s EncryptionService, dataKeyID string) {
	if e, ok := s.(interface{ EvictDataKey(string) }); ok {
		e.EvictDataKey(dataKeyID)
	}
}

// CachedDataKeys returns the number of unwrapped data keys held across every service.
func (r *ServiceRegistry) CachedDataKeys() int {
	n := 0
	for _, s := range r.services {
		if c, ok := s.(interface{ Cache() *walletService.DataKeyCache }); ok && c.Cache() != nil {
			n += c.Cache().Len()
		}
	}
	return n
}
