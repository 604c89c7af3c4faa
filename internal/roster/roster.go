// Package roster implements the guest list of a trip being created: a
// deduplicated set of invitee emails that preserves insertion order for
// deterministic display.
package roster

import (
	"strings"

	"github.com/rmaia/planner/internal/domain"
)

// Roster is an ordered, duplicate-free collection of normalized guest
// emails. The zero value is not usable; construct with New.
type Roster struct {
	validEmail func(string) bool
	emails     []string
}

// New constructs an empty Roster. Syntax checking is delegated to
// validEmail (e.g. validate.Email) so the roster owns only the set
// semantics, not the email grammar.
func New(validEmail func(string) bool) *Roster {
	return &Roster{validEmail: validEmail}
}

// Normalize lower-cases and trims an email address. All roster operations
// work on normalized values, so "A@B.com" and "a@b.com" are the same guest.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Add appends a guest email to the roster.
// Returns domain.ErrValidation when the address is syntactically invalid
// and domain.ErrDuplicate when the normalized address is already present.
// On failure the roster is unchanged.
func (r *Roster) Add(email string) error {
	normalized := Normalize(email)
	if !r.validEmail(normalized) {
		return domain.Errorf(domain.ErrValidation, "invalid email address")
	}
	if r.Contains(normalized) {
		return domain.Errorf(domain.ErrDuplicate, "guest already invited")
	}
	r.emails = append(r.emails, normalized)
	return nil
}

// Remove deletes the guest matching the normalized email.
// Removing an absent email is a no-op.
func (r *Roster) Remove(email string) {
	normalized := Normalize(email)
	for i, e := range r.emails {
		if e == normalized {
			r.emails = append(r.emails[:i], r.emails[i+1:]...)
			return
		}
	}
}

// Contains reports whether the normalized email is already on the roster.
func (r *Roster) Contains(email string) bool {
	normalized := Normalize(email)
	for _, e := range r.emails {
		if e == normalized {
			return true
		}
	}
	return false
}

// Emails returns the guests in insertion order.
// The returned slice is a copy — mutating it does not affect the roster.
func (r *Roster) Emails() []string {
	out := make([]string, len(r.emails))
	copy(out, r.emails)
	return out
}

// Len returns the number of invited guests.
func (r *Roster) Len() int { return len(r.emails) }
