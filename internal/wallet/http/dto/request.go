// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/walletkeys/internal/validation"
)

// CreateWalletKeyRequest contains the parameters for storing a wallet key.
// The wallet id is extracted from the URL parameter, not the request body.
// When PrivateKey is empty the server generates a new key.
type CreateWalletKeyRequest struct {
	UserID     string `json:"user_id"`
	PrivateKey string `json:"private_key"` // base64, 32 bytes
	Pin        string `json:"pin"`
}

// Validate checks if the create wallet key request is valid.
func (r *CreateWalletKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID,
			validation.Length(0, customValidation.MaxWalletIDLength),
			customValidation.NoWhitespace,
		),
		validation.Field(&r.PrivateKey,
			customValidation.Base64,
			customValidation.Base64Length(32),
		),
		validation.Field(&r.Pin,
			validation.Required,
			customValidation.Pin,
		),
	)
}

// PinRequest carries the PIN for decrypt and verify calls.
type PinRequest struct {
	Pin string `json:"pin"`
}

// Validate checks if the PIN request is valid.
func (r *PinRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Pin,
			validation.Required,
			customValidation.Pin,
		),
	)
}

// ChangePinRequest contains the current and replacement PIN.
type ChangePinRequest struct {
	OldPin string `json:"old_pin"`
	NewPin string `json:"new_pin"`
}

// Validate checks if the change PIN request is valid.
func (r *ChangePinRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.OldPin,
			validation.Required,
			customValidation.Pin,
		),
		validation.Field(&r.NewPin,
			validation.Required,
			customValidation.Pin,
			validation.NotIn(r.OldPin).Error("must differ from old_pin"),
		),
	)
}
