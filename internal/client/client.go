// Package client is the HTTP client for the planner API. Its per-resource
// sub-clients implement the session package's remote store interfaces, so
// a Session can run against a live server. Wire shapes mirror the handler
// package exactly.
package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/rmaia/planner/internal/domain"
)

// Client talks to one planner API server. Safe for concurrent use.
type Client struct {
	http *resty.Client
}

// New constructs a Client for the API at baseURL (scheme + host, no
// trailing slash).
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	return &Client{http: c}
}

// Trips returns the trip sub-client.
func (c *Client) Trips() *TripClient { return &TripClient{http: c.http} }

// Activities returns the activity sub-client.
func (c *Client) Activities() *ActivityClient { return &ActivityClient{http: c.http} }

// Participants returns the participant sub-client.
func (c *Client) Participants() *ParticipantClient { return &ParticipantClient{http: c.http} }

// ---- wire types ------------------------------------------------------------

type tripWire struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type activityWire struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"trip_id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

type activityGroupWire struct {
	Date       string         `json:"date"`
	Activities []activityWire `json:"activities"`
}

type participantWire struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ---- helpers ---------------------------------------------------------------

// apiError translates an HTTP error response into the domain sentinel the
// rest of the code expects, with the server's message attached.
func apiError(op string, resp *resty.Response) error {
	var envelope errorEnvelope
	message := resp.Status()
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
	}

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		sentinel = domain.ErrValidation
	case http.StatusConflict:
		sentinel = domain.ErrDuplicate
	default:
		return fmt.Errorf("%s: unexpected status %d: %s", op, resp.StatusCode(), message)
	}
	return fmt.Errorf("%s: %w: %s", op, sentinel, message)
}

func tripFromWire(t tripWire) domain.Trip {
	return domain.Trip{
		ID:          t.ID,
		Destination: t.Destination,
		StartsAt:    t.StartsAt,
		EndsAt:      t.EndsAt,
		IsConfirmed: t.IsConfirmed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func activityFromWire(a activityWire) domain.Activity {
	return domain.Activity{ID: a.ID, TripID: a.TripID, Title: a.Title, OccursAt: a.OccursAt}
}

func participantFromWire(p participantWire) domain.Participant {
	return domain.Participant{
		ID:          p.ID,
		TripID:      p.TripID,
		Name:        p.Name,
		Email:       p.Email,
		IsConfirmed: p.IsConfirmed,
	}
}
