package domain

import (
	"github.com/allisson/walletkeys/internal/errors"
)

// Wallet key error definitions.
var (
	// ErrKeyRecordNotFound indicates no encrypted key record exists for the wallet.
	ErrKeyRecordNotFound = errors.Wrap(errors.ErrNotFound, "wallet key not found")

	// ErrKeyRecordAlreadyExists indicates the wallet already has an encrypted key record.
	ErrKeyRecordAlreadyExists = errors.Wrap(errors.ErrConflict, "wallet key already exists")

	// ErrKeyRecordConflict indicates the stored record changed between read and write,
	// detected by a conditional update on data_key_id.
	ErrKeyRecordConflict = errors.Wrap(errors.ErrConflict, "wallet key was modified concurrently")

	// ErrMalformedRecord indicates a stored record is missing fields or holds undecodable data.
	ErrMalformedRecord = errors.Wrap(errors.ErrInvalidInput, "malformed wallet key record")

	// ErrMasterKeyMismatch indicates the record is wrapped under a master key other than
	// the one the service was configured with.
	ErrMasterKeyMismatch = errors.Wrap(errors.ErrInvalidInput, "master key id mismatch")

	// ErrAuthenticationFailed is the single failure returned for a wrong PIN or a tampered
	// record. The two causes are intentionally indistinguishable.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrUnauthorized, "invalid PIN or wallet")

	// ErrInvalidPrivateKey indicates the plaintext private key is not a valid secp256k1 scalar.
	ErrInvalidPrivateKey = errors.Wrap(errors.ErrInvalidInput, "invalid private key")

	// ErrPinUnchanged indicates a PIN change request reused the current PIN.
	ErrPinUnchanged = errors.Wrap(errors.ErrInvalidInput, "new PIN must differ from the current PIN")
)
