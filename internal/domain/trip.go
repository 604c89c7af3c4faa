// Package domain contains the core data types for the trip planner.
// This package has zero external dependencies beyond uuid and is imported
// by every other internal package (repo, service, handler, session).
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinDestinationLen is the minimum number of characters a trip destination
// must have after trimming surrounding whitespace.
const MinDestinationLen = 4

// Trip represents a planned trip: a destination and an inclusive day span.
// A trip is the top-level aggregate; participants and activities belong to it.
// StartsAt and EndsAt carry day granularity only — the time-of-day portion
// is always midnight and must not be interpreted.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidateDestination enforces the destination rule shared by the creation
// wizard and the service layer: non-empty and at least MinDestinationLen
// characters after trimming.
func ValidateDestination(destination string) error {
	trimmed := strings.TrimSpace(destination)
	if trimmed == "" {
		return Errorf(ErrValidation, "destination is required")
	}
	if len([]rune(trimmed)) < MinDestinationLen {
		return Errorf(ErrValidation, "destination must have at least %d characters", MinDestinationLen)
	}
	return nil
}
