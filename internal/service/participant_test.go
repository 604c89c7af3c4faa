package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/planner/internal/domain"
	"github.com/rmaia/planner/internal/repo"
	"github.com/rmaia/planner/internal/service"
)

type mockParticipantRepo struct {
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	confirm    func(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error)
}

func (m *mockParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockParticipantRepo) Confirm(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error) {
	return m.confirm(ctx, id, name, email)
}

var _ repo.ParticipantRepo = (*mockParticipantRepo)(nil)

func TestParticipantService_ListByTrip_NeverNil(t *testing.T) {
	r := &mockParticipantRepo{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Participant, error) {
			return nil, nil
		},
	}
	svc := service.NewParticipantService(r)

	got, err := svc.ListByTrip(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParticipantService_Confirm_NormalizesInput(t *testing.T) {
	var gotName, gotEmail string
	r := &mockParticipantRepo{
		confirm: func(_ context.Context, _ uuid.UUID, name, email string) (domain.Participant, error) {
			gotName, gotEmail = name, email
			return domain.Participant{Name: name, Email: email, IsConfirmed: true}, nil
		},
	}
	svc := service.NewParticipantService(r)

	got, err := svc.Confirm(context.Background(), uuid.New(), "  Alice  ", "Alice@Example.COM")

	require.NoError(t, err)
	assert.Equal(t, "Alice", gotName)
	assert.Equal(t, "alice@example.com", gotEmail)
	assert.True(t, got.IsConfirmed)
}

func TestParticipantService_Confirm_MissingName(t *testing.T) {
	svc := service.NewParticipantService(&mockParticipantRepo{})

	_, err := svc.Confirm(context.Background(), uuid.New(), "   ", "alice@example.com")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParticipantService_Confirm_InvalidEmail(t *testing.T) {
	svc := service.NewParticipantService(&mockParticipantRepo{})

	_, err := svc.Confirm(context.Background(), uuid.New(), "Alice", "alice#example")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParticipantService_Confirm_NotFound(t *testing.T) {
	r := &mockParticipantRepo{
		confirm: func(_ context.Context, _ uuid.UUID, _, _ string) (domain.Participant, error) {
			return domain.Participant{}, domain.ErrNotFound
		},
	}
	svc := service.NewParticipantService(r)

	_, err := svc.Confirm(context.Background(), uuid.New(), "Alice", "alice@example.com")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
