// Package wizard holds the finite-state controllers for the trip screens:
// the two-step creation flow (details → guests → submit) and the
// modal-exclusivity overlays of the home and trip-detail screens.
package wizard

import (
	"fmt"

	"github.com/rmaia/planner/internal/daterange"
	"github.com/rmaia/planner/internal/domain"
)

// Step is the current position in the trip-creation flow.
type Step int

const (
	// StepDetails collects the destination and the date range.
	StepDetails Step = iota
	// StepGuests collects the invitee list; submission happens from here.
	StepGuests
)

// Flow is the trip-creation step machine.
// Moving forward is guarded; moving back is always allowed and discards
// nothing — destination, dates, and guests survive the toggle.
type Flow struct {
	step Step
}

// NewFlow starts a creation flow at StepDetails.
func NewFlow() *Flow {
	return &Flow{step: StepDetails}
}

// Step returns the current step.
func (f *Flow) Step() Step { return f.step }

// Next advances from StepDetails to StepGuests.
// The transition fails with domain.ErrValidation — and the flow stays at
// StepDetails — unless the destination passes the length rule and both
// range endpoints are selected. Calling Next at StepGuests is a no-op;
// submission from there is owned by the session facade, which gates it
// behind a yes/no confirmation.
func (f *Flow) Next(destination string, dates daterange.Range) error {
	if f.step != StepDetails {
		return nil
	}
	if !dates.Complete() {
		return fmt.Errorf("%w: trip dates are required", domain.ErrValidation)
	}
	if err := domain.ValidateDestination(destination); err != nil {
		return err
	}
	f.step = StepGuests
	return nil
}

// Back returns to StepDetails.
func (f *Flow) Back() { f.step = StepDetails }
