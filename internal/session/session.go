// Package session implements the trip session facade: the aggregate that
// orchestrates the calendar-range selector, creation wizard, guest roster,
// and itinerary aggregator against the remote stores and local persistence.
//
// One Session is live per screen instance. All state transitions are
// synchronous and run to completion; the store calls are the only
// suspension points, guarded by per-action in-flight tokens (action.go).
// The Session is not safe for concurrent use — it models a single-threaded,
// event-driven screen.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmaia/planner/internal/daterange"
	"github.com/rmaia/planner/internal/domain"
	"github.com/rmaia/planner/internal/itinerary"
	"github.com/rmaia/planner/internal/roster"
	"github.com/rmaia/planner/internal/wizard"
)

// maxHeaderDestination is the number of runes of the destination shown in
// the trip header before truncation.
const maxHeaderDestination = 14

// CreateTripParams is the payload for the remote trip creation call.
type CreateTripParams struct {
	Destination    string
	StartsAt       daterange.Day
	EndsAt         daterange.Day
	EmailsToInvite []string
}

// UpdateTripParams is the payload for the remote trip update call.
// The update is atomic from the caller's perspective: the store either
// applies every field or none.
type UpdateTripParams struct {
	ID          uuid.UUID
	Destination string
	StartsAt    daterange.Day
	EndsAt      daterange.Day
}

// TripStore is the remote trip collaborator.
type TripStore interface {
	Create(ctx context.Context, p CreateTripParams) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Update(ctx context.Context, p UpdateTripParams) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityStore is the remote activity collaborator.
type ActivityStore interface {
	Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]itinerary.DayGroup, error)
}

// ParticipantStore is the remote participant collaborator.
type ParticipantStore interface {
	Confirm(ctx context.Context, participantID uuid.UUID, name, email string) error
}

// KnownTrips is the local "trips I'm part of" persistence. Save and
// Remove are keyed by trip ID and idempotent.
type KnownTrips interface {
	Save(id uuid.UUID) error
	Remove(id uuid.UUID) error
}

// Confirmer asks the user a yes/no question before a destructive or
// committing action. Answering "no" is a normal negative branch, not an
// error: no message is shown and no state changes.
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) (bool, error)
}

// Deps bundles the collaborators a Session needs.
type Deps struct {
	Trips        TripStore
	Activities   ActivityStore
	Participants ParticipantStore
	Known        KnownTrips
	Confirm      Confirmer
	ValidEmail   func(string) bool

	// Now supplies the clock; defaults to time.Now. Each itinerary build
	// takes a single snapshot from it.
	Now func() time.Time
}

// Session is the aggregate root for one trip screen: trip metadata, the
// date range and roster while editing, the wizard step, the active
// overlay, the live itinerary, and the per-action state tokens.
type Session struct {
	deps Deps

	destination string
	dates       daterange.Range
	guests      *roster.Roster
	flow        *wizard.Flow
	home        wizard.HomeOverlays
	detail      wizard.DetailOverlays

	trip        domain.Trip
	loaded      bool
	when        string
	itinerary   itinerary.Itinerary
	participant *uuid.UUID // pending attendance confirmation, from an invitation link

	actions map[Action]Status
}

// New constructs a Session scoped to one screen instance.
func New(deps Deps) *Session {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Session{
		deps:    deps,
		guests:  roster.New(deps.ValidEmail),
		flow:    wizard.NewFlow(),
		actions: make(map[Action]Status),
	}
}

// ---- editing state ---------------------------------------------------------

// SetDestination records the destination being typed.
func (s *Session) SetDestination(destination string) { s.destination = destination }

// Destination returns the destination currently being edited.
func (s *Session) Destination() string { return s.destination }

// TapDay folds one calendar tap into the date range.
func (s *Session) TapDay(d daterange.Day) { s.dates = daterange.Select(s.dates, d) }

// Dates returns the range currently being edited.
func (s *Session) Dates() daterange.Range { return s.dates }

// DatesLabel returns the display text for the current range.
func (s *Session) DatesLabel() string { return s.dates.Label() }

// MarkedDays returns the calendar highlighting for the current range.
func (s *Session) MarkedDays() map[daterange.Day]daterange.Mark { return s.dates.MarkedDays() }

// AddGuest invites an email; see roster.Roster.Add for the error contract.
func (s *Session) AddGuest(email string) error { return s.guests.Add(email) }

// RemoveGuest uninvites an email; absent emails are a no-op.
func (s *Session) RemoveGuest(email string) { s.guests.Remove(email) }

// Guests returns the invitees in insertion order.
func (s *Session) Guests() []string { return s.guests.Emails() }

// ---- wizard and overlays ---------------------------------------------------

// Step returns the current creation step.
func (s *Session) Step() wizard.Step { return s.flow.Step() }

// NextStep advances the creation wizard; guarded, see wizard.Flow.Next.
func (s *Session) NextStep() error { return s.flow.Next(s.destination, s.dates) }

// BackStep returns to the details step, discarding nothing.
func (s *Session) BackStep() { s.flow.Back() }

// HomeOverlays exposes the home screen overlay controller.
func (s *Session) HomeOverlays() *wizard.HomeOverlays { return &s.home }

// DetailOverlays exposes the trip-detail overlay controller.
func (s *Session) DetailOverlays() *wizard.DetailOverlays { return &s.detail }

// ---- use cases -------------------------------------------------------------

// CreateTrip submits the creation wizard. It requires the flow to be at
// the guests step, asks the confirmer, and on "yes" creates the trip
// remotely and saves it to the local known-trips store.
//
// Returns ok=false with a nil error when the user declines — a normal
// negative branch. On remote failure every piece of local state (step,
// destination, dates, guests) is left exactly as it was.
func (s *Session) CreateTrip(ctx context.Context) (uuid.UUID, bool, error) {
	if s.flow.Step() != wizard.StepGuests {
		return uuid.Nil, false, fmt.Errorf("%w: trip details are not complete", domain.ErrValidation)
	}
	// The details were valid when the wizard advanced, but TapDay stays
	// callable and one tap on a completed range resets it to start-only.
	// Re-check here so a stale selection fails instead of crashing.
	if !s.dates.Complete() {
		return uuid.Nil, false, fmt.Errorf("%w: trip dates are required", domain.ErrValidation)
	}

	ok, err := s.deps.Confirm.Confirm(ctx, "Nova viagem", "Confirmar viagem?")
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("session.CreateTrip: confirm: %w", err)
	}
	if !ok {
		return uuid.Nil, false, nil
	}

	if err := s.begin(ActionCreateTrip); err != nil {
		return uuid.Nil, false, err
	}

	id, err := s.deps.Trips.Create(ctx, CreateTripParams{
		Destination:    s.destination,
		StartsAt:       *s.dates.Start,
		EndsAt:         *s.dates.End,
		EmailsToInvite: s.guests.Emails(),
	})
	if err != nil {
		return uuid.Nil, false, s.fail(ActionCreateTrip, "Erro ao criar viagem. Por favor, tente novamente.", err)
	}
	s.finish(ActionCreateTrip)

	if err := s.deps.Known.Save(id); err != nil {
		// The trip exists remotely; only the local bookmark failed.
		return id, true, fmt.Errorf("session.CreateTrip: save known trip: %w", err)
	}
	return id, true, nil
}

// LoadTrip fetches the trip and its activity groups and builds the
// itinerary with a single now snapshot. When the visit comes from an
// invitation link (participantID set), the mandatory confirm-attendance
// gate is opened.
func (s *Session) LoadTrip(ctx context.Context, tripID uuid.UUID, participantID *uuid.UUID) error {
	if participantID != nil {
		p := *participantID
		s.participant = &p
		s.detail.Open(wizard.DetailOverlayConfirmAttendance)
	}

	trip, err := s.deps.Trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("session.LoadTrip: %w", err)
	}

	groups, err := s.deps.Activities.ListByTrip(ctx, tripID)
	if err != nil {
		return fmt.Errorf("session.LoadTrip: list activities: %w", err)
	}

	s.trip = trip
	s.loaded = true
	s.when = whenLabel(trip)
	s.destination = trip.Destination
	s.itinerary = itinerary.Build(groups, s.deps.Now())
	return nil
}

// Trip returns the loaded trip metadata.
func (s *Session) Trip() domain.Trip { return s.trip }

// When returns the header label for the loaded trip, e.g.
// "Florianópolis de 05 a 10 de março.".
func (s *Session) When() string { return s.when }

// Itinerary returns the live day sections.
func (s *Session) Itinerary() itinerary.Itinerary { return s.itinerary }

// CreateActivity creates an activity remotely and merges it into the
// live itinerary. merged=false means the activity's day has no section
// in the current view; it will only appear after a full reload.
func (s *Session) CreateActivity(ctx context.Context, title string, occursAt time.Time) (domain.Activity, bool, error) {
	if err := s.begin(ActionCreateActivity); err != nil {
		return domain.Activity{}, false, err
	}

	created, err := s.deps.Activities.Create(ctx, s.trip.ID, title, occursAt)
	if err != nil {
		return domain.Activity{}, false, s.fail(ActionCreateActivity, "Erro ao cadastrar atividade. Por favor, tente novamente.", err)
	}
	s.finish(ActionCreateActivity)

	var merged bool
	s.itinerary, merged = itinerary.Insert(s.itinerary, created, s.deps.Now())
	return created, merged, nil
}

// UpdateTrip pushes the edited destination and dates to the remote store
// and, on success, replaces the cached metadata in place and closes the
// update overlay. The update never partially applies.
func (s *Session) UpdateTrip(ctx context.Context) error {
	if err := domain.ValidateDestination(s.destination); err != nil {
		return err
	}
	if !s.dates.Complete() {
		return fmt.Errorf("%w: trip dates are required", domain.ErrValidation)
	}

	if err := s.begin(ActionUpdateTrip); err != nil {
		return err
	}

	updated, err := s.deps.Trips.Update(ctx, UpdateTripParams{
		ID:          s.trip.ID,
		Destination: s.destination,
		StartsAt:    *s.dates.Start,
		EndsAt:      *s.dates.End,
	})
	if err != nil {
		return s.fail(ActionUpdateTrip, "Erro ao atualizar viagem. Por favor, tente novamente.", err)
	}
	s.finish(ActionUpdateTrip)

	s.trip = updated
	s.when = whenLabel(updated)
	s.detail.Close()
	return nil
}

// ConfirmAttendance confirms the pending invitation with the guest's
// name and email, marks the trip locally known so future visits skip the
// gate, and dismisses the mandatory overlay.
func (s *Session) ConfirmAttendance(ctx context.Context, name, email string) error {
	if s.participant == nil {
		return fmt.Errorf("%w: no pending invitation", domain.ErrValidation)
	}
	trimmedEmail := roster.Normalize(email)
	if name == "" || trimmedEmail == "" {
		return fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}
	if !s.deps.ValidEmail(trimmedEmail) {
		return fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}

	if err := s.begin(ActionConfirmAttendance); err != nil {
		return err
	}

	if err := s.deps.Participants.Confirm(ctx, *s.participant, name, trimmedEmail); err != nil {
		return s.fail(ActionConfirmAttendance, "Não foi possível confirmar. Por favor, tente novamente.", err)
	}
	s.finish(ActionConfirmAttendance)

	if err := s.deps.Known.Save(s.trip.ID); err != nil {
		return fmt.Errorf("session.ConfirmAttendance: save known trip: %w", err)
	}
	s.participant = nil
	s.detail.CompleteConfirmation()
	return nil
}

// RemoveTrip deletes the loaded trip after explicit user confirmation.
// Returns removed=false with a nil error when the user declines.
func (s *Session) RemoveTrip(ctx context.Context) (bool, error) {
	ok, err := s.deps.Confirm.Confirm(ctx, "Remover viagem", "Tem certeza que deseja remover a viagem?")
	if err != nil {
		return false, fmt.Errorf("session.RemoveTrip: confirm: %w", err)
	}
	if !ok {
		return false, nil
	}

	if err := s.begin(ActionRemoveTrip); err != nil {
		return false, err
	}

	if err := s.deps.Trips.Delete(ctx, s.trip.ID); err != nil {
		return false, s.fail(ActionRemoveTrip, "Erro ao remover viagem. Por favor, tente novamente.", err)
	}
	s.finish(ActionRemoveTrip)

	if err := s.deps.Known.Remove(s.trip.ID); err != nil {
		return true, fmt.Errorf("session.RemoveTrip: forget known trip: %w", err)
	}
	return true, nil
}

// whenLabel derives the trip header text from the trip metadata: the
// destination truncated at maxHeaderDestination runes plus the day span.
// Pure derivation — recomputed on load and after every update.
func whenLabel(t domain.Trip) string {
	dest := t.Destination
	if runes := []rune(dest); len(runes) > maxHeaderDestination {
		dest = string(runes[:maxHeaderDestination]) + "..."
	}
	start := daterange.DayOf(t.StartsAt)
	end := daterange.DayOf(t.EndsAt)
	return fmt.Sprintf("%s de %02d a %02d de %s.", dest, start.DayOfMonth(), end.DayOfMonth(), start.MonthName())
}
