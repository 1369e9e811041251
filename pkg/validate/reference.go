package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

const maxReferenceLen = 32

// IsReference reports whether s is a usable order reference: digits only,
// at most maxReferenceLen of them, with a valid Luhn check digit.
func IsReference(s string) bool {
	if len(s) < 2 || len(s) > maxReferenceLen {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return goluhn.Validate(s) == nil
}
