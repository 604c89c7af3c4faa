package session

import (
	"errors"
	"fmt"
)

// ErrInFlight is returned when an action is started while a previous
// invocation of the same action has not completed. It enforces the
// single-submission discipline the busy flags provided in the UI:
// per-action, so unrelated actions remain available.
var ErrInFlight = errors.New("action already in flight")

// Action identifies one of the session's asynchronous use cases.
type Action int

const (
	ActionCreateTrip Action = iota
	ActionUpdateTrip
	ActionConfirmAttendance
	ActionRemoveTrip
	ActionCreateActivity
)

// Phase is the lifecycle position of one action.
type Phase int

const (
	// PhaseIdle means the action may be started.
	PhaseIdle Phase = iota
	// PhaseInFlight means a remote call is pending; starting the same
	// action again is rejected.
	PhaseInFlight
	// PhaseFailed means the last invocation failed; Reason carries the
	// user-facing retry-suggesting message. The action may be retried.
	PhaseFailed
)

// Status is the observable state of one action token.
type Status struct {
	Phase  Phase
	Reason string
}

// ActionStatus returns the current token for the given action.
// Unknown actions report PhaseIdle.
func (s *Session) ActionStatus(a Action) Status {
	return s.actions[a]
}

// begin transitions an action to PhaseInFlight, rejecting re-entry.
func (s *Session) begin(a Action) error {
	if s.actions[a].Phase == PhaseInFlight {
		return ErrInFlight
	}
	if s.actions == nil {
		s.actions = make(map[Action]Status)
	}
	s.actions[a] = Status{Phase: PhaseInFlight}
	return nil
}

// finish returns an action to PhaseIdle after success.
func (s *Session) finish(a Action) {
	s.actions[a] = Status{Phase: PhaseIdle}
}

// fail records a failed invocation with its retry-suggesting message and
// returns the wrapped error for the caller to surface.
func (s *Session) fail(a Action, reason string, err error) error {
	s.actions[a] = Status{Phase: PhaseFailed, Reason: reason}
	return fmt.Errorf("%s: %w", reason, err)
}
