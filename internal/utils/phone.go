package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// phonePattern matches Ghanaian mobile numbers in local or international
// form: a leading +233, 233 or 0 followed by a valid operator prefix and
// seven digits.
var phonePattern = regexp.MustCompile(`^((\+?233)|0)((2[03467]|5[045679]))\d{7}$`)

// NormalizePhoneNumber validates a phone number and canonicalizes it to the
// local ten-digit form (leading 0). Spaces and dashes are tolerated in the
// input. Normalization is idempotent.
func NormalizePhoneNumber(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")

	if !phonePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format")
	}

	stripped = strings.TrimPrefix(stripped, "+")
	if strings.HasPrefix(stripped, "233") {
		stripped = "0" + stripped[3:]
	}

	return stripped, nil
}

// pinPattern matches exactly four ASCII digits.
var pinPattern = regexp.MustCompile(`^\d{4}$`)

// ValidatePIN reports whether pin is exactly four ASCII digits.
func ValidatePIN(pin string) bool {
	return pinPattern.MatchString(pin)
}
