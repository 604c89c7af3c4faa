// Package handler implements the HTTP handlers for the planner API.
// All handlers are methods on Server. Methods are split into
// resource-specific files (health.go, trip.go, etc.) but all share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rmaia/planner/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, destination string, startsAt, endsAt time.Time, inviteEmails []string) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Update(ctx context.Context, id uuid.UUID, destination string, startsAt, endsAt time.Time) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityServicer defines the business operations the activity handlers
// depend on.
type ActivityServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityGroup, error)
}

// ParticipantServicer defines the business operations the participant
// handlers depend on.
type ParticipantServicer interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	Confirm(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error)
}

// Server holds the handlers' dependencies. Wire it in main.go via Routes().
type Server struct {
	trips        TripServicer
	activities   ActivityServicer
	participants ParticipantServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, activities ActivityServicer, participants ParticipantServicer) *Server {
	return &Server{trips: trips, activities: activities, participants: participants}
}

// Routes returns the chi router with every API endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Post("/activities", s.CreateActivity)
			r.Get("/activities", s.ListActivities)
			r.Get("/participants", s.ListParticipants)
		})
	})

	r.Patch("/participants/{participantID}/confirm", s.ConfirmParticipant)

	return r
}
