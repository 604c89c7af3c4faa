// Package validate holds the input validation primitives shared by the
// guest roster, the session facade, and the service layer.
package validate

import "regexp"

// emailPattern accepts anything shaped local@domain.tld with no whitespace.
// Deliberately loose — it filters typos, it does not prove deliverability.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s is a syntactically plausible email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}
