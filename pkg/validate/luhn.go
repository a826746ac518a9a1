package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s passes the Luhn check. Payout card numbers are
// validated with it before a release is accepted.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
