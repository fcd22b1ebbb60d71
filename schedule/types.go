/*
Package schedule provides the core staff-scheduling engine.

PURPOSE:
  This package contains the pure domain types and algorithms for weekly
  shift planning in small shift-based businesses: shift duration and
  overlap arithmetic, conflict validation, labor-cost calculation with
  overtime, and labor-law compliance evaluation.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee: A staff member with an hourly rate and weekly hour cap
  - Shift: A single scheduled work interval on one calendar date
  - Contract/Role/Weekday: Closed enums replacing the free-form strings
    the data originates from

DESIGN PRINCIPLES:
  1. Purity: Every function computes over an immutable snapshot passed in
     by the caller; nothing here reaches into storage or ambient state
  2. Precision: Uses decimal.Decimal for money to avoid floating-point
     drift in payroll figures (hours stay float64)
  3. Type Safety: Strong typing for IDs prevents mixing employee/shift IDs

SEE ALSO:
  - clock.go: HH:MM time-of-day arithmetic
  - validate.go: Shift conflict detection
  - cost.go: Weekly cost calculation
  - rules.go: Labor-law compliance rules
  - aggregate.go: Roster-wide weekly aggregation
*/
package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string
type ShiftID string

// =============================================================================
// CLOSED ENUMS
// =============================================================================

// Contract classifies the employment relationship. Informational only:
// rule evaluation does not branch on it.
type Contract string

const (
	ContractFull     Contract = "full"
	ContractPart     Contract = "part"
	ContractSeasonal Contract = "seasonal"
)

func (c Contract) Valid() bool {
	switch c {
	case ContractFull, ContractPart, ContractSeasonal:
		return true
	}
	return false
}

// Role categorizes what an employee does during a shift. Display only.
type Role string

const (
	RoleWaiter  Role = "waiter"
	RoleBarista Role = "barista"
	RoleKitchen Role = "kitchen"
	RoleCashier Role = "cashier"
	RoleManager Role = "manager"
)

func (r Role) Valid() bool {
	switch r {
	case RoleWaiter, RoleBarista, RoleKitchen, RoleCashier, RoleManager:
		return true
	}
	return false
}

// Weekday is a scheduling day key. The week runs Monday through Sunday.
type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

func weekdayOf(wd time.Weekday) Weekday {
	// time.Weekday counts Sunday=0
	keys := [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
	return keys[wd]
}

// =============================================================================
// EMPLOYEE
// =============================================================================

// Employee is a staff member on the roster.
//
// MaxHours is the contracted weekly hour cap: hours beyond it are paid at
// the overtime rate (cost.go) and trip the weekly-cap alert (rules.go).
//
// Availability is advisory metadata for the presentation layer; no engine
// rule enforces it.
type Employee struct {
	ID           EmployeeID
	FirstName    string
	LastName     string
	Phone        string
	Email        string
	Contract     Contract
	Rate         decimal.Decimal // currency per hour, non-negative
	MaxHours     int             // weekly regular-hours cap, positive
	Availability []Weekday
	CreatedAt    time.Time
}

// FullName returns the display name used in alert messages.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// AvailableOn reports whether the employee may be scheduled on the given day.
func (e Employee) AvailableOn(day Weekday) bool {
	for _, d := range e.Availability {
		if d == day {
			return true
		}
	}
	return false
}

// =============================================================================
// SHIFT
// =============================================================================

// Shift is one scheduled work interval for one employee on one calendar date.
//
// Start and End are 24-hour wall-clock "HH:MM" strings. End <= Start marks
// an overnight shift spanning into the next calendar date; its duration is
// (End - Start) mod 24h. Multiple shifts per employee per date (split
// shifts) are allowed; the validator flags overlaps, it does not prevent
// them.
type Shift struct {
	ID         ShiftID
	EmployeeID EmployeeID
	Date       Date
	Start      string
	End        string
	Role       Role
	Notes      string
	CreatedAt  time.Time
}

// Hours returns the shift duration, handling overnight wraparound.
func (s Shift) Hours() (float64, error) {
	return DurationHours(s.Start, s.End)
}
