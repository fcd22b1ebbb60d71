/*
validate.go - Shift conflict detection

PURPOSE:
  Checks a candidate shift against the employee's other shifts on the same
  date, flagging hard overlaps and sub-minimum split-shift breaks. The
  validator only reports: errors are meant to block saving, warnings never
  do, and either way the decision belongs to the caller.
*/
package schedule

import "fmt"

// MinBreakHours is the minimum recommended break between split shifts
// (30 minutes, per Greek labor practice).
const MinBreakHours = 0.5

// ValidationResult is the outcome of checking one candidate shift.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// IsValid reports whether the candidate may be saved. Warnings alone never
// invalidate.
func (r ValidationResult) IsValid() bool { return len(r.Errors) == 0 }

// ValidateShift checks a candidate (start, end) interval against the
// employee's existing shifts on the same date. When editing, the caller
// must exclude the shift being edited from existing.
//
// Overlapping intervals produce errors; breaks shorter than MinBreakHours
// on either side produce warnings. Malformed time strings fail fast with
// ErrInvalidTimeFormat before any comparison runs.
func ValidateShift(start, end string, existing []Shift) (ValidationResult, error) {
	var result ValidationResult

	// Reject malformed candidate input up front.
	if _, err := ParseClock(start); err != nil {
		return result, err
	}
	if _, err := ParseClock(end); err != nil {
		return result, err
	}

	for _, other := range existing {
		overlap, err := Overlaps(start, end, other.Start, other.End)
		if err != nil {
			return result, err
		}
		if overlap {
			result.Errors = append(result.Errors,
				fmt.Sprintf("overlaps existing shift %s-%s", other.Start, other.End))
			continue
		}

		// Candidate follows the existing shift.
		gap, err := GapHours(other.End, start)
		if err != nil {
			return result, err
		}
		if gap > 0 && gap < MinBreakHours {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("only %d min break after shift %s-%s; at least 30 min recommended",
					roundMinutes(gap), other.Start, other.End))
		}

		// Candidate precedes the existing shift.
		gap, err = GapHours(end, other.Start)
		if err != nil {
			return result, err
		}
		if gap > 0 && gap < MinBreakHours {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("only %d min break before shift %s-%s; at least 30 min recommended",
					roundMinutes(gap), other.Start, other.End))
		}
	}

	return result, nil
}

func roundMinutes(hours float64) int {
	return int(hours*60 + 0.5)
}
