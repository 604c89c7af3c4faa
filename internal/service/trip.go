// Package service contains the business logic for the planner API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmaia/planner/internal/domain"
	"github.com/rmaia/planner/internal/repo"
	"github.com/rmaia/planner/internal/roster"
	"github.com/rmaia/planner/internal/validate"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(trips repo.TripRepo) *TripService {
	return &TripService{trips: trips}
}

// Create validates and persists a new trip with its invited guests.
// Invite emails are normalized and deduplicated; a syntactically invalid
// email fails the whole request with domain.ErrValidation.
func (s *TripService) Create(ctx context.Context, destination string, startsAt, endsAt time.Time, inviteEmails []string) (domain.Trip, error) {
	if err := validateTrip(destination, startsAt, endsAt); err != nil {
		return domain.Trip{}, err
	}

	emails, err := normalizeInvites(inviteEmails)
	if err != nil {
		return domain.Trip{}, err
	}

	trip := domain.Trip{Destination: destination, StartsAt: startsAt, EndsAt: endsAt}
	result, err := s.trips.Create(ctx, trip, emails)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// Update validates and updates an existing trip. The update is atomic:
// either every field is applied or none.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, destination string, startsAt, endsAt time.Time) (domain.Trip, error) {
	if err := validateTrip(destination, startsAt, endsAt); err != nil {
		return domain.Trip{}, err
	}

	trip := domain.Trip{ID: id, Destination: destination, StartsAt: startsAt, EndsAt: endsAt}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID; participants and activities go with it.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces the rules common to Create and Update.
//   - Destination must be present and at least domain.MinDestinationLen long.
//   - Both dates must be set, with ends_at not before starts_at.
func validateTrip(destination string, startsAt, endsAt time.Time) error {
	if err := domain.ValidateDestination(destination); err != nil {
		return err
	}
	if startsAt.IsZero() || endsAt.IsZero() {
		return domain.Errorf(domain.ErrValidation, "starts_at and ends_at are required")
	}
	if endsAt.Before(startsAt) {
		return domain.Errorf(domain.ErrValidation, "ends_at must not be before starts_at")
	}
	return nil
}

// normalizeInvites lower-cases, trims, and deduplicates invite emails,
// preserving first-seen order. Re-inviting the same address is treated as
// a single invite rather than an error.
func normalizeInvites(emails []string) ([]string, error) {
	r := roster.New(validate.Email)
	for _, email := range emails {
		if err := r.Add(email); err != nil {
			if r.Contains(email) {
				continue
			}
			return nil, domain.Errorf(domain.ErrValidation, "invalid invite email %q", email)
		}
	}
	return r.Emails(), nil
}
