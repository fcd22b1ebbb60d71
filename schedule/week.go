/*
week.go - Calendar dates and the Monday-anchored week window

PURPOSE:
  Date is a civil calendar date in the business's local wall-clock world
  (no time zone, no time of day). Week is the fixed Monday-to-Sunday
  7-day range that cost calculation and compliance evaluation run over.
*/
package schedule

import "time"

// =============================================================================
// DATE - Civil calendar date
// =============================================================================

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component.
type Date struct {
	t time.Time
}

// NewDate constructs a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, &InvalidDateError{Value: s}
	}
	return Date{t: t}, nil
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string       { return d.t.Format(dateLayout) }
func (d Date) IsZero() bool         { return d.t.IsZero() }
func (d Date) Before(o Date) bool   { return d.t.Before(o.t) }
func (d Date) After(o Date) bool    { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool    { return d.t.Equal(o.t) }
func (d Date) AddDays(n int) Date   { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Weekday() Weekday     { return weekdayOf(d.t.Weekday()) }
func (d Date) IsSunday() bool       { return d.t.Weekday() == time.Sunday }
func (d Date) Month() time.Month    { return d.t.Month() }
func (d Date) Day() int             { return d.t.Day() }
func (d Date) Year() int            { return d.t.Year() }

// At combines the date with a minutes-since-midnight clock offset into a
// single instant. No overnight correction is applied here: an overnight
// shift's end instant lands on its own calendar date, which is exactly how
// the rest-period rule wants it (see rules.go).
func (d Date) At(clockMinutes int) time.Time {
	return d.t.Add(time.Duration(clockMinutes) * time.Minute)
}

// =============================================================================
// WEEK - Monday-to-Sunday window
// =============================================================================

// Week is the 7-day aggregation window starting on a Monday.
type Week struct {
	Start Date
}

// WeekOf returns the week containing the reference date, normalized to its
// Monday: weekStart = date - ((weekday + 6) % 7) days, with Sunday = 0.
// Monday maps to offset 0 and Sunday to offset 6.
func WeekOf(ref Date) Week {
	offset := (int(ref.t.Weekday()) + 6) % 7
	return Week{Start: ref.AddDays(-offset)}
}

// End returns the Sunday closing the window (inclusive).
func (w Week) End() Date { return w.Start.AddDays(6) }

// Contains reports whether the date falls within [Start, End].
func (w Week) Contains(d Date) bool {
	return !d.Before(w.Start) && !d.After(w.End())
}

// Next and Prev step the window a full week at a time.
func (w Week) Next() Week { return Week{Start: w.Start.AddDays(7)} }
func (w Week) Prev() Week { return Week{Start: w.Start.AddDays(-7)} }

// Days lists the seven dates of the window, Monday first.
func (w Week) Days() []Date {
	days := make([]Date, 7)
	for i := range days {
		days[i] = w.Start.AddDays(i)
	}
	return days
}

func (w Week) String() string {
	return "[" + w.Start.String() + ", " + w.End().String() + "]"
}

// ShiftsFor filters the shifts belonging to one employee inside the window.
// Order is preserved.
func (w Week) ShiftsFor(id EmployeeID, shifts []Shift) []Shift {
	var out []Shift
	for _, s := range shifts {
		if s.EmployeeID == id && w.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out
}
