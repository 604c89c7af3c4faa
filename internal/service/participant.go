package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rmaia/planner/internal/domain"
	"github.com/rmaia/planner/internal/repo"
	"github.com/rmaia/planner/internal/roster"
	"github.com/rmaia/planner/internal/validate"
)

// ParticipantService implements business logic for Participant operations.
type ParticipantService struct {
	participants repo.ParticipantRepo
}

// NewParticipantService constructs a ParticipantService backed by the
// provided ParticipantRepo.
func NewParticipantService(participants repo.ParticipantRepo) *ParticipantService {
	return &ParticipantService{participants: participants}
}

// ListByTrip returns all participants of a trip in invitation order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ParticipantService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	participants, err := s.participants.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}
	if participants == nil {
		return []domain.Participant{}, nil
	}
	return participants, nil
}

// Confirm records the guest's name and confirmation email.
// Confirming an already confirmed participant succeeds without change.
// Returns domain.ErrValidation for a missing name or malformed email and
// domain.ErrNotFound for an unknown participant.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Participant{}, domain.Errorf(domain.ErrValidation, "name is required")
	}
	normalized := roster.Normalize(email)
	if !validate.Email(normalized) {
		return domain.Participant{}, domain.Errorf(domain.ErrValidation, "invalid email address")
	}

	result, err := s.participants.Confirm(ctx, id, strings.TrimSpace(name), normalized)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	return result, nil
}
