package validation

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"
)

// Base64 validates that a string is valid standard base64-encoded data.
var Base64 = validation.By(func(value any) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_base64_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		return validation.NewError("validation_base64", "must be valid base64-encoded data")
	}
	return nil
})

// Base64Length validates that a base64 string decodes to exactly n bytes.
func Base64Length(n int) validation.Rule {
	return validation.By(func(value any) error {
		s, ok := value.(string)
		if !ok || s == "" {
			return nil
		}
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil || len(decoded) != n {
			return validation.NewError("validation_base64_length", "must decode to the expected length")
		}
		return nil
	})
}
