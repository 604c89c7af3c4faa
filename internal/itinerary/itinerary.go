// Package itinerary implements the day-by-day activity aggregation shown
// on the trip-detail screen: building ordered calendar-day sections from
// the store's grouped listing, and incrementally merging newly created
// activities without a full reload.
package itinerary

import (
	"time"

	"github.com/google/uuid"

	"github.com/rmaia/planner/internal/daterange"
	"github.com/rmaia/planner/internal/domain"
)

// displayHourFormat renders an occurrence time as "09:30h".
const displayHourFormat = "15:04h"

// DayGroup is one calendar day of activities as supplied by the activity
// store: day-ascending across groups, time-ascending within one.
type DayGroup struct {
	Date       daterange.Day
	Activities []domain.Activity
}

// ActivityView is the read-optimized projection of one activity.
// IsPast is computed against a single "now" snapshot taken when the
// section was built; it does not update as real time advances.
type ActivityView struct {
	ID          uuid.UUID
	Title       string
	DisplayHour string
	IsPast      bool
}

// Section is one calendar day of the itinerary. A section with no
// activities is a valid, displayable state (rendered as "no activity"),
// not an error, so empty sections are retained.
type Section struct {
	Day        daterange.Day
	DayNumber  int
	DayName    string
	Activities []ActivityView
}

// Itinerary is the ordered sequence of day sections for one trip-detail
// screen. It is created on load, mutated only by Insert, and discarded
// when the screen unmounts.
type Itinerary []Section

// Build constructs sections from the store's grouped listing, preserving
// the supplied group and activity order. Every activity's IsPast flag in
// one build is computed against the same now snapshot, so a single render
// pass never shows an inconsistent past/future partition.
func Build(groups []DayGroup, now time.Time) Itinerary {
	it := make(Itinerary, 0, len(groups))
	for _, g := range groups {
		section := Section{
			Day:        g.Date,
			DayNumber:  g.Date.DayOfMonth(),
			DayName:    g.Date.WeekdayName(),
			Activities: make([]ActivityView, 0, len(g.Activities)),
		}
		for _, a := range g.Activities {
			section.Activities = append(section.Activities, project(a, now))
		}
		it = append(it, section)
	}
	return it
}

// Insert merges a newly created activity into the section matching its
// calendar day, appending after any existing same-day entries without
// re-sorting. It reports whether a section matched.
//
// When no section matches, the itinerary is returned unchanged and the
// activity is absent from the in-memory view until a full reload —
// Insert never creates sections. This is the accepted cost of skipping
// a remote round-trip after every creation.
func Insert(it Itinerary, activity domain.Activity, now time.Time) (Itinerary, bool) {
	day := daterange.DayOf(activity.OccursAt)
	for i := range it {
		if it[i].Day.Equal(day) {
			it[i].Activities = append(it[i].Activities, project(activity, now))
			return it, true
		}
	}
	return it, false
}

// Activities flattens the itinerary back into a single view sequence,
// preserving section order.
func (it Itinerary) Activities() []ActivityView {
	var out []ActivityView
	for _, s := range it {
		out = append(out, s.Activities...)
	}
	return out
}

func project(a domain.Activity, now time.Time) ActivityView {
	return ActivityView{
		ID:          a.ID,
		Title:       a.Title,
		DisplayHour: a.OccursAt.Format(displayHourFormat),
		IsPast:      a.OccursAt.Before(now),
	}
}
