// Package validate holds input checks shared by the HTTP handlers and the admin CLI.
package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

const maxOrderNumberLen = 19

// IsOrderNumber reports whether s looks like an order number issued at
// checkout: digits only, at most 19 of them, ending in a Luhn check digit.
func IsOrderNumber(s string) bool {
	if s == "" || len(s) > maxOrderNumberLen {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return goluhn.Validate(s) == nil
}
