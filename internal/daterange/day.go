// Package daterange implements the calendar-range selection core: a
// day-granular date value, the tap-based interval construction algorithm,
// and the derived display state (range label, marked-day set) the calendar
// widget renders from.
package daterange

import (
	"fmt"
	"time"
)

// dayFormat is the wire and display encoding for a calendar day.
const dayFormat = "2006-01-02"

// Day is a calendar day with day-level granularity and a total order.
// The zero value is the zero date; Days are comparable and usable as map
// keys because every constructor normalizes to midnight UTC.
type Day struct {
	t time.Time
}

// NewDay builds a Day from calendar components.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDay parses an ISO "2006-01-02" date string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("daterange.ParseDay: %w", err)
	}
	return Day{t: t}, nil
}

// DayOf truncates an instant to its calendar day.
// The instant's own location decides which day it falls on.
func DayOf(t time.Time) Day {
	return NewDay(t.Year(), t.Month(), t.Day())
}

// String returns the ISO "2006-01-02" encoding.
func (d Day) String() string { return d.t.Format(dayFormat) }

// Time returns the day as a midnight-UTC instant.
func (d Day) Time() time.Time { return d.t }

// Before reports whether d falls before other.
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }

// After reports whether d falls after other.
func (d Day) After(other Day) bool { return d.t.After(other.t) }

// Equal reports whether d and other are the same calendar day.
func (d Day) Equal(other Day) bool { return d.t.Equal(other.t) }

// Next returns the following calendar day.
func (d Day) Next() Day { return Day{t: d.t.AddDate(0, 0, 1)} }

// DayOfMonth returns the day-of-month component (1–31).
func (d Day) DayOfMonth() int { return d.t.Day() }

// Weekday returns the day of the week.
func (d Day) Weekday() time.Weekday { return d.t.Weekday() }

// WeekdayName returns the Portuguese weekday name, as displayed in the
// itinerary day headers.
func (d Day) WeekdayName() string { return weekdayNames[d.t.Weekday()] }

// MonthName returns the Portuguese month name, as displayed in the trip
// header label.
func (d Day) MonthName() string { return monthNames[d.t.Month()] }

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

var monthNames = map[time.Month]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}
