/*
store.go - Persistence port

PURPOSE:
  The interface the engine's collaborators implement to persist the
  roster. The engine itself never calls it; handlers load a snapshot
  through it and pass plain slices into the pure functions. Two
  implementations exist: store/sqlite (durable) and store/memory
  (tests/dev).

CONTRACT:
  - Create* assigns a fresh id never issued before and returns the record
  - Update* applies an explicit field-by-field patch, nil meaning "leave"
  - DeleteEmployee cascades to every shift referencing the employee
  - CreateShift/UpdateShift must reject employee references that do not
    resolve (ErrUnknownEmployee)
*/
package schedule

import (
	"context"

	"github.com/shopspring/decimal"
)

// Store is the persistence port for employees and shifts.
type Store interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, id EmployeeID) (*Employee, error)
	CreateEmployee(ctx context.Context, emp Employee) (Employee, error)
	UpdateEmployee(ctx context.Context, id EmployeeID, patch EmployeePatch) (*Employee, error)
	DeleteEmployee(ctx context.Context, id EmployeeID) error

	ListShifts(ctx context.Context) ([]Shift, error)
	ListShiftsInRange(ctx context.Context, from, to Date) ([]Shift, error)
	GetShift(ctx context.Context, id ShiftID) (*Shift, error)
	CreateShift(ctx context.Context, shift Shift) (Shift, error)
	UpdateShift(ctx context.Context, id ShiftID, patch ShiftPatch) (*Shift, error)
	DeleteShift(ctx context.Context, id ShiftID) error
}

// EmployeePatch lists the employee fields an update may change. A nil
// field leaves the stored value untouched. Only these fields are
// patchable; ids and creation timestamps never move.
type EmployeePatch struct {
	FirstName    *string
	LastName     *string
	Phone        *string
	Email        *string
	Contract     *Contract
	Rate         *decimal.Decimal
	MaxHours     *int
	Availability *[]Weekday
}

// ShiftPatch lists the shift fields an update may change.
type ShiftPatch struct {
	EmployeeID *EmployeeID
	Date       *Date
	Start      *string
	End        *string
	Role       *Role
	Notes      *string
}
