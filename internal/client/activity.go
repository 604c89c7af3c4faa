package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/rmaia/planner/internal/daterange"
	"github.com/rmaia/planner/internal/domain"
	"github.com/rmaia/planner/internal/itinerary"
	"github.com/rmaia/planner/internal/session"
)

// ActivityClient implements session.ActivityStore over HTTP.
type ActivityClient struct {
	http *resty.Client
}

var _ session.ActivityStore = (*ActivityClient)(nil)

// Create schedules an activity on a trip.
func (c *ActivityClient) Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error) {
	body := map[string]any{"title": title, "occurs_at": occursAt}
	var out struct {
		Activity activityWire `json:"activity"`
	}
	resp, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(&out).
		Post("/trips/" + tripID.String() + "/activities")
	if err != nil {
		return domain.Activity{}, fmt.Errorf("client.ActivityClient.Create: %w", err)
	}
	if resp.IsError() {
		return domain.Activity{}, apiError("client.ActivityClient.Create", resp)
	}
	return activityFromWire(out.Activity), nil
}

// ListByTrip fetches the trip's activities grouped by day, one group per
// trip day including empty ones.
func (c *ActivityClient) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]itinerary.DayGroup, error) {
	var out struct {
		Activities []activityGroupWire `json:"activities"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).
		Get("/trips/" + tripID.String() + "/activities")
	if err != nil {
		return nil, fmt.Errorf("client.ActivityClient.ListByTrip: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("client.ActivityClient.ListByTrip", resp)
	}

	groups := make([]itinerary.DayGroup, len(out.Activities))
	for i, g := range out.Activities {
		day, err := daterange.ParseDay(g.Date)
		if err != nil {
			return nil, fmt.Errorf("client.ActivityClient.ListByTrip: %w", err)
		}
		activities := make([]domain.Activity, len(g.Activities))
		for j, a := range g.Activities {
			activities[j] = activityFromWire(a)
		}
		groups[i] = itinerary.DayGroup{Date: day, Activities: activities}
	}
	return groups, nil
}
