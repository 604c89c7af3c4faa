package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a single scheduled item on a trip's itinerary.
// OccursAt is a full instant, unlike trip dates which are day-granular.
type Activity struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Title     string    `json:"title"`
	OccursAt  time.Time `json:"occurs_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityGroup is one calendar day of a trip with the activities that
// occur on it, ordered by occurrence time ascending.
// The activity listing returns one group per day of the trip, including
// days with no activities — an empty day is a displayable state.
type ActivityGroup struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}
