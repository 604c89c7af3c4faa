package daterange

import "fmt"

// Range is an inclusive interval of calendar days under construction.
// Both endpoints are optional until selected; once both are present the
// invariant Start <= End holds. A single-day range has Start == End.
// A Range is owned by one screen session and is never persisted directly.
type Range struct {
	Start *Day
	End   *Day
}

// Empty reports whether no endpoint has been selected yet.
func (r Range) Empty() bool { return r.Start == nil && r.End == nil }

// Complete reports whether both endpoints have been selected.
func (r Range) Complete() bool { return r.Start != nil && r.End != nil }

// Select folds one calendar tap into the range.
//
// A tap on an empty or already completed range starts a new selection at
// the tapped day. A tap while only the start is set closes the interval:
// tapping before the start swaps the endpoints, so the result always
// satisfies Start <= End. Out-of-order taps are normalized, never rejected.
func Select(r Range, tapped Day) Range {
	if r.Start == nil || r.Complete() {
		d := tapped
		return Range{Start: &d}
	}

	start := *r.Start
	d := tapped
	if tapped.Before(start) {
		prev := start
		return Range{Start: &d, End: &prev}
	}
	return Range{Start: r.Start, End: &d}
}

// Label returns the human-readable range text: "{start} até {end}", a
// single date while the selection is open, or "" when nothing is selected.
// It is a pure derivation — recompute it whenever the range changes.
func (r Range) Label() string {
	switch {
	case r.Complete() && r.Start.Equal(*r.End):
		return r.Start.String()
	case r.Complete():
		return fmt.Sprintf("%s até %s", r.Start, r.End)
	case r.Start != nil:
		return r.Start.String()
	default:
		return ""
	}
}

// Mark carries the rendering flags for one day of a selected range.
type Mark struct {
	IsStart   bool
	IsEnd     bool
	IsBetween bool
}

// MarkedDays derives the calendar highlighting state for the range: one
// entry per day in [Start, End] inclusive. A start-only selection marks
// just the start day. The result is recomputed from scratch on every
// range change and never stored independently.
func (r Range) MarkedDays() map[Day]Mark {
	marks := make(map[Day]Mark)
	if r.Start == nil {
		return marks
	}
	if r.End == nil {
		marks[*r.Start] = Mark{IsStart: true, IsEnd: true}
		return marks
	}

	for d := *r.Start; !d.After(*r.End); d = d.Next() {
		marks[d] = Mark{
			IsStart:   d.Equal(*r.Start),
			IsEnd:     d.Equal(*r.End),
			IsBetween: d.After(*r.Start) && d.Before(*r.End),
		}
	}
	return marks
}
