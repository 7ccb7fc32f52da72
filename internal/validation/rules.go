// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/walletkeys/internal/errors"
)

// PIN length bounds, in digits.
const (
	MinPinLength = 4
	MaxPinLength = 12
)

// MaxWalletIDLength bounds wallet identifiers to what every storage backend indexes.
const MaxWalletIDLength = 255

var (
	pinRegex      = regexp.MustCompile(`^[0-9]{4,12}$`)
	walletIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:\-]*$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Pin validates a numeric PIN of MinPinLength to MaxPinLength ASCII digits.
var Pin = validation.NewStringRuleWithError(
	pinRegex.MatchString,
	validation.NewError("validation_pin_format", "must be 4 to 12 digits"),
)

// WalletID validates the external wallet identifier: an alphanumeric first character
// followed by letters, digits, '.', '_', ':' or '-'.
var WalletID = validation.NewStringRuleWithError(
	func(s string) bool {
		return len(s) <= MaxWalletIDLength && walletIDRegex.MatchString(s)
	},
	validation.NewError("validation_wallet_id", "must be a valid wallet identifier"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// ValidatePin checks pin against the Pin rule and returns an ErrInvalidInput on failure.
func ValidatePin(pin string) error {
	return WrapValidationError(validation.Validate(pin, validation.Required, Pin))
}

// ValidateWalletID checks id against the WalletID rule and returns an ErrInvalidInput on failure.
func ValidateWalletID(id string) error {
	return WrapValidationError(validation.Validate(id, validation.Required, WalletID))
}
