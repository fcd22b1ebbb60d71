/*
errors.go - Centralized error types for the scheduling engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Collaborators (stores, HTTP handlers) should wrap these errors with
  additional context and match them with errors.Is/As.

ERROR CATEGORIES:
  1. Input errors  - malformed time/date strings rejected at the boundary
  2. Lookup errors - missing employees/shifts, dangling references
*/
package schedule

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidTimeFormat is returned when a time-of-day string is not a
	// valid 24-hour "HH:MM" value. The engine fails fast on malformed input
	// rather than silently coercing it.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidDateFormat is returned when a date string is not a valid
	// ISO "YYYY-MM-DD" calendar date.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrEmployeeNotFound is returned when a referenced employee doesn't exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrShiftNotFound is returned when a referenced shift doesn't exist.
	ErrShiftNotFound = errors.New("shift not found")

	// ErrUnknownEmployee is returned when a shift is created or updated with
	// an employee reference that does not resolve. Existing dangling shifts
	// are skipped by aggregation instead (see Summarize).
	ErrUnknownEmployee = errors.New("shift references unknown employee")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidTimeError reports the offending time-of-day string.
type InvalidTimeError struct {
	Value string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time format %q: want 24-hour HH:MM", e.Value)
}

func (e *InvalidTimeError) Unwrap() error { return ErrInvalidTimeFormat }

// InvalidDateError reports the offending date string.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date format %q: want YYYY-MM-DD", e.Value)
}

func (e *InvalidDateError) Unwrap() error { return ErrInvalidDateFormat }

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidTimeFormat) ||
		errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrUnknownEmployee)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrShiftNotFound)
}
