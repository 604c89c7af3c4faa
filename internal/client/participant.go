package client

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/rmaia/planner/internal/domain"
	"github.com/rmaia/planner/internal/session"
)

// ParticipantClient implements session.ParticipantStore over HTTP.
type ParticipantClient struct {
	http *resty.Client
}

var _ session.ParticipantStore = (*ParticipantClient)(nil)

// Confirm records the participant's attendance.
func (c *ParticipantClient) Confirm(ctx context.Context, participantID uuid.UUID, name, email string) error {
	body := map[string]any{"name": name, "email": email}
	resp, err := c.http.R().SetContext(ctx).SetBody(body).
		Patch("/participants/" + participantID.String() + "/confirm")
	if err != nil {
		return fmt.Errorf("client.ParticipantClient.Confirm: %w", err)
	}
	if resp.IsError() {
		return apiError("client.ParticipantClient.Confirm", resp)
	}
	return nil
}

// ListByTrip fetches a trip's guest list in invitation order.
func (c *ParticipantClient) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	var out struct {
		Participants []participantWire `json:"participants"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).
		Get("/trips/" + tripID.String() + "/participants")
	if err != nil {
		return nil, fmt.Errorf("client.ParticipantClient.ListByTrip: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("client.ParticipantClient.ListByTrip", resp)
	}

	participants := make([]domain.Participant, len(out.Participants))
	for i, p := range out.Participants {
		participants[i] = participantFromWire(p)
	}
	return participants, nil
}
