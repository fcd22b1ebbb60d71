/*
rules.go - Labor-law compliance evaluation

PURPOSE:
  Evaluates a fixed, ordered set of labor rules over one employee's week
  of shifts and emits typed alerts. The order is display order only; no
  rule depends on another's outcome.

RULES (in order):
  1. Weekly cap      critical  total hours > contracted MaxHours
  2. EU hard cap     critical  total hours > 48 (fires independently of 1)
  3. Minimum rest    warning   < 11h between consecutive shifts
  4. Long shift      warning   a single shift > 10h
  5. Sunday premium  info      any shift dated on a Sunday

REST-RULE TIMESTAMPS:
  Rule 3 combines each shift's calendar date with its raw start/end clock
  time. An overnight shift's end instant therefore lands on the shift's
  own date, earlier than its start. This mirrors the duration calculator's
  wraparound NOT being applied at the weekly scale, and is kept for
  behavioral compatibility with the system this replaces. The upside is
  that a shift ending 23:00 and another starting 02:00 the next date yield
  the expected 3h rest.
*/
package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Rule thresholds. Hours are compared strictly: exactly at the limit is fine.
const (
	EUWeeklyCapHours     = 48 // EU Working Time Directive weekly maximum
	MinRestHours         = 11 // minimum rest between consecutive shifts
	LongShiftHours       = 10 // recommended single-shift maximum
	SundayPremiumPercent = 75 // mandated Sunday pay premium (advisory only)
)

// AlertType grades how urgent an alert is.
type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertInfo     AlertType = "info"
)

// Alert is one compliance finding about one employee.
type Alert struct {
	Type       AlertType
	EmployeeID EmployeeID
	Title      string
	Message    string

	// Message-relevant data for callers that render their own text.
	Hours float64 // quantity the rule measured, 0 when not applicable
	Date  Date    // shift date for per-shift rules, zero otherwise
}

// EvaluateCompliance runs all rules over one employee's shifts for the
// evaluation week. The caller supplies shifts already scoped to the window.
// Returned alerts follow the fixed rule order above.
func EvaluateCompliance(emp Employee, shifts []Shift) ([]Alert, error) {
	var alerts []Alert

	total := 0.0
	for _, s := range shifts {
		hours, err := s.Hours()
		if err != nil {
			return nil, err
		}
		total += hours
	}

	// Rule 1: contracted weekly cap.
	if total > float64(emp.MaxHours) {
		alerts = append(alerts, Alert{
			Type:       AlertCritical,
			EmployeeID: emp.ID,
			Title:      "Hours exceeded: " + emp.FullName(),
			Message: fmt.Sprintf("%.1f hours (limit: %d). Overtime approval required.",
				total, emp.MaxHours),
			Hours: total,
		})
	}

	// Rule 2: EU hard cap, independent of and in addition to rule 1.
	if total > EUWeeklyCapHours {
		alerts = append(alerts, Alert{
			Type:       AlertCritical,
			EmployeeID: emp.ID,
			Title:      "Legal limit exceeded: " + emp.FullName(),
			Message: fmt.Sprintf("%.1f hours exceed the %dh/week maximum (EU directive).",
				total, EUWeeklyCapHours),
			Hours: total,
		})
	}

	// Rule 3: minimum rest between consecutive shifts.
	restAlerts, err := evaluateRest(emp, shifts)
	if err != nil {
		return nil, err
	}
	alerts = append(alerts, restAlerts...)

	// Rule 4: long single shifts.
	for _, s := range shifts {
		hours, err := s.Hours()
		if err != nil {
			return nil, err
		}
		if hours > LongShiftHours {
			alerts = append(alerts, Alert{
				Type:       AlertWarning,
				EmployeeID: emp.ID,
				Title:      "Long shift: " + emp.FullName(),
				Message: fmt.Sprintf("%.1f hours on %s. Recommended maximum: %d hours.",
					hours, s.Date, LongShiftHours),
				Hours: hours,
				Date:  s.Date,
			})
		}
	}

	// Rule 5: Sunday premium notice. Advisory: the premium is NOT fed into
	// the cost calculator.
	for _, s := range shifts {
		if s.Date.IsSunday() {
			alerts = append(alerts, Alert{
				Type:       AlertInfo,
				EmployeeID: emp.ID,
				Title:      "Sunday work: " + emp.FullName(),
				Message: fmt.Sprintf("%d%% pay premium applies for Sunday work (%s).",
					SundayPremiumPercent, s.Date),
				Date: s.Date,
			})
		}
	}

	return alerts, nil
}

func evaluateRest(emp Employee, shifts []Shift) ([]Alert, error) {
	type stamped struct {
		startAt time.Time
		endAt   time.Time
	}

	stamps := make([]stamped, 0, len(shifts))
	for _, s := range shifts {
		startMin, err := ParseClock(s.Start)
		if err != nil {
			return nil, err
		}
		endMin, err := ParseClock(s.End)
		if err != nil {
			return nil, err
		}
		stamps = append(stamps, stamped{
			startAt: s.Date.At(startMin),
			endAt:   s.Date.At(endMin),
		})
	}

	sort.SliceStable(stamps, func(i, j int) bool {
		return stamps[i].endAt.Before(stamps[j].endAt)
	})

	var alerts []Alert
	for i := 1; i < len(stamps); i++ {
		rest := stamps[i].startAt.Sub(stamps[i-1].endAt).Hours()
		if rest > 0 && rest < MinRestHours {
			alerts = append(alerts, Alert{
				Type:       AlertWarning,
				EmployeeID: emp.ID,
				Title:      "Insufficient rest: " + emp.FullName(),
				Message: fmt.Sprintf("Only %.1f hours between shifts. Minimum: %d hours.",
					rest, MinRestHours),
				Hours: rest,
			})
		}
	}
	return alerts, nil
}
