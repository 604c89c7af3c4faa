package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rmaia/planner/internal/daterange"
	"github.com/rmaia/planner/internal/domain"
	"github.com/rmaia/planner/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// It holds the trips repo as well because creating an activity requires
// verifying the parent trip exists and that the activity falls inside
// the trip's day span.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates the activity against its parent trip, then persists it.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrValidation if the title is missing or the occurrence falls
// outside the trip's inclusive day span.
func (s *ActivityService) Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	if strings.TrimSpace(title) == "" {
		return domain.Activity{}, domain.Errorf(domain.ErrValidation, "title is required")
	}
	day := daterange.DayOf(occursAt)
	if day.Before(daterange.DayOf(trip.StartsAt)) || day.After(daterange.DayOf(trip.EndsAt)) {
		return domain.Activity{}, domain.Errorf(domain.ErrValidation, "occurs_at is outside the trip dates")
	}

	result, err := s.activities.Create(ctx, domain.Activity{TripID: tripID, Title: title, OccursAt: occursAt})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// ListByTrip returns the trip's activities grouped by calendar day: one
// group per day of the trip's inclusive span, day-ascending, activities
// time-ascending within each group. Days without activities yield a group
// with an empty (non-nil) slice — an empty day is displayable state.
func (s *ActivityService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.ActivityGroup, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}

	activities, err := s.activities.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}

	byDay := make(map[daterange.Day][]domain.Activity)
	for _, a := range activities {
		day := daterange.DayOf(a.OccursAt)
		byDay[day] = append(byDay[day], a)
	}

	var groups []domain.ActivityGroup
	start := daterange.DayOf(trip.StartsAt)
	end := daterange.DayOf(trip.EndsAt)
	for d := start; !d.After(end); d = d.Next() {
		group := domain.ActivityGroup{Date: d.Time(), Activities: byDay[d]}
		if group.Activities == nil {
			group.Activities = []domain.Activity{}
		}
		groups = append(groups, group)
	}
	return groups, nil
}
