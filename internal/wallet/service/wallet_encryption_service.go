package service

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/walletkeys/internal/crypto/domain"
	cryptoService "github.com/allisson/walletkeys/internal/crypto/service"
	walletDomain "github.com/allisson/walletkeys/internal/wallet/domain"
)

// WalletEncryptionService wraps and unwraps wallet private keys under one master key.
//
// Wrap:
//
//	pin key     = KDF(pin, salt)
//	pin layer   = AEAD(pin key, private key)
//	ciphertext  = AEAD(data key, pin layer, aad=data_key_id)
//	wrapped key = AEAD(master key, data key, aad=master_key_id+data_key_id)
//
// Each service owns its DataKeyCache; services for different master keys never share one.
type WalletEncryptionService struct {
	masterKeyID string
	masterKey   []byte
	algorithm   cryptoDomain.Algorithm
	kdf         cryptoDomain.KDFAlgorithm
	aeadManager cryptoService.AEADManager
	kdfManager  cryptoService.KDFManager
	cache       *DataKeyCache
}

// NewWalletEncryptionService creates a service bound to masterKey. The key bytes are copied.
func NewWalletEncryptionService(
	masterKey *cryptoDomain.MasterKey,
	algorithm cryptoDomain.Algorithm,
	kdf cryptoDomain.KDFAlgorithm,
	aeadManager cryptoService.AEADManager,
	kdfManager cryptoService.KDFManager,
	cache *DataKeyCache,
) (*WalletEncryptionService, error) {
	if masterKey == nil || masterKey.ID == "" {
		return nil, cryptoDomain.ErrMasterKeyNotFound
	}
	if len(masterKey.Key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}
	if _, err := cryptoDomain.ParseAlgorithm(string(algorithm)); err != nil {
		return nil, err
	}
	if _, err := cryptoDomain.ParseKDFAlgorithm(string(kdf)); err != nil {
		return nil, err
	}
	if cache == nil {
		cache = NewDataKeyCache()
	}

	key := make([]byte, cryptoDomain.KeySize)
	copy(key, masterKey.Key)

	return &WalletEncryptionService{
		masterKeyID: masterKey.ID,
		masterKey:   key,
		algorithm:   algorithm,
		kdf:         kdf,
		aeadManager: aeadManager,
		kdfManager:  kdfManager,
		cache:       cache,
	}, nil
}

// MasterKeyID returns the id of the master key this service wraps data keys with.
func (s *WalletEncryptionService) MasterKeyID() string {
	return s.masterKeyID
}

// Algorithm returns the AEAD algorithm used for new records.
func (s *WalletEncryptionService) Algorithm() cryptoDomain.Algorithm {
	return s.algorithm
}

// Cache exposes the service's data key cache.
func (s *WalletEncryptionService) Cache() *DataKeyCache {
	return s.cache
}

// EncryptPrivateKey wraps privateKey under pin and returns a fully populated record
// without WalletID or UserID. The data key is written through to the cache.
func (s *WalletEncryptionService) EncryptPrivateKey(
	ctx context.Context,
	privateKey []byte,
	pin string,
) (*walletDomain.EncryptedKeyRecord, error) {
	salt, err := cryptoService.GenerateSalt()
	if err != nil {
		return nil, err
	}

	pinKey, err := s.kdfManager.DeriveKey(ctx, s.kdf, []byte(pin), salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive PIN key: %w", err)
	}
	defer cryptoDomain.Zero(pinKey)

	pinCipher, err := s.aeadManager.CreateCipher(pinKey, s.algorithm)
	if err != nil {
		return nil, err
	}
	pinLayer, pinNonce, err := pinCipher.Encrypt(privateKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt PIN layer: %w", err)
	}

	dataKey, err := cryptoService.GenerateKey()
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(dataKey)

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate data key id: %w", err)
	}
	dataKeyID := id.String()

	dataCipher, err := s.aeadManager.CreateCipher(dataKey, s.algorithm)
	if err != nil {
		return nil, err
	}
	ciphertextKey, dataKeyNonce, err := dataCipher.Encrypt(pinLayer, []byte(dataKeyID))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data key layer: %w", err)
	}

	masterCipher, err := s.aeadManager.CreateCipher(s.masterKey, s.algorithm)
	if err != nil {
		return nil, err
	}
	wrappedDataKey, masterNonce, err := masterCipher.Encrypt(dataKey, masterAAD(s.masterKeyID, dataKeyID))
	if err != nil {
		return nil, fmt.Errorf("failed to wrap data key: %w", err)
	}

	if err := s.cache.Put(dataKeyID, FingerprintOf(wrappedDataKey, masterNonce), dataKey); err != nil {
		return nil, err
	}

	return &walletDomain.EncryptedKeyRecord{
		CiphertextKey:  ciphertextKey,
		WrappedDataKey: wrappedDataKey,
		MasterKeyID:    s.masterKeyID,
		DataKeyID:      dataKeyID,
		Algorithm:      s.algorithm,
		KDF:            s.kdf,
		PinSalt:        salt,
		PinNonce:       pinNonce,
		DataKeyNonce:   dataKeyNonce,
		MasterNonce:    masterNonce,
	}, nil
}

// DecryptPrivateKey unwraps record with pin.
//
// Returns ErrMasterKeyMismatch when the record belongs to another master key and
// ErrMalformedRecord for structurally invalid records, both before any cryptographic
// work. Every authentication failure, whichever layer it happens in, is
// ErrAuthenticationFailed. The PIN key is always derived first so the KDF cost is paid
// on every path. The caller must zero the returned key.
func (s *WalletEncryptionService) DecryptPrivateKey(
	ctx context.Context,
	record *walletDomain.EncryptedKeyRecord,
	pin string,
) ([]byte, error) {
	if record.MasterKeyID != s.masterKeyID {
		return nil, fmt.Errorf(
			"%w: record uses %q, service uses %q",
			walletDomain.ErrMasterKeyMismatch, record.MasterKeyID, s.masterKeyID,
		)
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	pinKey, err := s.kdfManager.DeriveKey(ctx, record.KDF, []byte(pin), record.PinSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive PIN key: %w", err)
	}
	defer cryptoDomain.Zero(pinKey)

	dataKey, err := s.unwrapDataKey(record)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(dataKey)

	dataCipher, err := s.aeadManager.CreateCipher(dataKey, record.Algorithm)
	if err != nil {
		return nil, walletDomain.ErrAuthenticationFailed
	}
	pinLayer, err := dataCipher.Decrypt(record.CiphertextKey, record.DataKeyNonce, []byte(record.DataKeyID))
	if err != nil {
		return nil, walletDomain.ErrAuthenticationFailed
	}
	defer cryptoDomain.Zero(pinLayer)

	pinCipher, err := s.aeadManager.CreateCipher(pinKey, record.Algorithm)
	if err != nil {
		return nil, walletDomain.ErrAuthenticationFailed
	}
	privateKey, err := pinCipher.Decrypt(pinLayer, record.PinNonce, nil)
	if err != nil {
		return nil, walletDomain.ErrAuthenticationFailed
	}

	return privateKey, nil
}

// VerifyPin reports whether pin unlocks record. The plaintext is zeroed immediately.
// A failed authentication is (false, nil); any other error, including a context ending
// while waiting for the KDF pool, is returned.
func (s *WalletEncryptionService) VerifyPin(
	ctx context.Context,
	record *walletDomain.EncryptedKeyRecord,
	pin string,
) (bool, error) {
	privateKey, err := s.DecryptPrivateKey(ctx, record, pin)
	if errors.Is(err, walletDomain.ErrAuthenticationFailed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	cryptoDomain.Zero(privateKey)
	return true, nil
}

// EvictDataKey drops the cached data key once no stored record references dataKeyID.
func (s *WalletEncryptionService) EvictDataKey(dataKeyID string) {
	s.cache.Delete(dataKeyID)
}

// Close zeroes the master key and drops the cache.
func (s *WalletEncryptionService) Close() {
	cryptoDomain.Zero(s.masterKey)
	s.cache.Close()
}

// unwrapDataKey returns a copy of the record's data key, from the cache when the
// fingerprint matches and from the master layer otherwise.
func (s *WalletEncryptionService) unwrapDataKey(record *walletDomain.EncryptedKeyRecord) ([]byte, error) {
	fp := FingerprintOf(record.WrappedDataKey, record.MasterNonce)
	if dataKey, ok := s.cache.Get(record.DataKeyID, fp); ok {
		return dataKey, nil
	}

	masterCipher, err := s.aeadManager.CreateCipher(s.masterKey, record.Algorithm)
	if err != nil {
		return nil, walletDomain.ErrAuthenticationFailed
	}
	dataKey, err := masterCipher.Decrypt(
		record.WrappedDataKey,
		record.MasterNonce,
		masterAAD(record.MasterKeyID, record.DataKeyID),
	)
	if err != nil || len(dataKey) != cryptoDomain.KeySize {
		cryptoDomain.Zero(dataKey)
		return nil, walletDomain.ErrAuthenticationFailed
	}

	if err := s.cache.Put(record.DataKeyID, fp, dataKey); err != nil {
		cryptoDomain.Zero(dataKey)
		return nil, err
	}
	return dataKey, nil
}

// masterAAD binds the wrapped data key to both identifiers, length-prefixed.
func masterAAD(masterKeyID, dataKeyID string) []byte {
	aad := make([]byte, 0, 2*binary.MaxVarintLen64+len(masterKeyID)+len(dataKeyID))
	aad = binary.AppendUvarint(aad, uint64(len(masterKeyID)))
	aad = append(aad, masterKeyID...)
	aad = binary.AppendUvarint(aad, uint64(len(dataKeyID)))
	aad = append(aad, dataKeyID...)
	return aad
}
