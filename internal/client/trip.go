package client

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/rmaia/planner/internal/domain"
	"github.com/rmaia/planner/internal/session"
)

// TripClient implements session.TripStore over HTTP.
type TripClient struct {
	http *resty.Client
}

var _ session.TripStore = (*TripClient)(nil)

// Create registers a new trip and returns its ID.
func (c *TripClient) Create(ctx context.Context, p session.CreateTripParams) (uuid.UUID, error) {
	body := map[string]any{
		"destination":      p.Destination,
		"starts_at":        p.StartsAt.Time(),
		"ends_at":          p.EndsAt.Time(),
		"emails_to_invite": p.EmailsToInvite,
	}
	var out struct {
		TripID uuid.UUID `json:"trip_id"`
	}
	resp, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(&out).Post("/trips")
	if err != nil {
		return uuid.Nil, fmt.Errorf("client.TripClient.Create: %w", err)
	}
	if resp.IsError() {
		return uuid.Nil, apiError("client.TripClient.Create", resp)
	}
	return out.TripID, nil
}

// GetByID fetches a single trip.
func (c *TripClient) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	var out struct {
		Trip tripWire `json:"trip"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/trips/" + id.String())
	if err != nil {
		return domain.Trip{}, fmt.Errorf("client.TripClient.GetByID: %w", err)
	}
	if resp.IsError() {
		return domain.Trip{}, apiError("client.TripClient.GetByID", resp)
	}
	return tripFromWire(out.Trip), nil
}

// Update replaces a trip's destination and dates.
func (c *TripClient) Update(ctx context.Context, p session.UpdateTripParams) (domain.Trip, error) {
	body := map[string]any{
		"destination": p.Destination,
		"starts_at":   p.StartsAt.Time(),
		"ends_at":     p.EndsAt.Time(),
	}
	var out struct {
		Trip tripWire `json:"trip"`
	}
	resp, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(&out).Put("/trips/" + p.ID.String())
	if err != nil {
		return domain.Trip{}, fmt.Errorf("client.TripClient.Update: %w", err)
	}
	if resp.IsError() {
		return domain.Trip{}, apiError("client.TripClient.Update", resp)
	}
	return tripFromWire(out.Trip), nil
}

// Delete removes a trip.
func (c *TripClient) Delete(ctx context.Context, id uuid.UUID) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/trips/" + id.String())
	if err != nil {
		return fmt.Errorf("client.TripClient.Delete: %w", err)
	}
	if resp.IsError() {
		return apiError("client.TripClient.Delete", resp)
	}
	return nil
}
