// Package memory provides an in-memory schedule.Store (for testing/dev).
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taverna/shift-engine/schedule"
)

// =============================================================================
// MEMORY STORE - In-memory implementation of the persistence port
// =============================================================================

type Store struct {
	mu        sync.RWMutex
	employees map[schedule.EmployeeID]schedule.Employee
	shifts    map[schedule.ShiftID]schedule.Shift
	order     []schedule.EmployeeID // insertion order for stable listings
}

func New() *Store {
	return &Store{
		employees: make(map[schedule.EmployeeID]schedule.Employee),
		shifts:    make(map[schedule.ShiftID]schedule.Shift),
	}
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (m *Store) ListEmployees(_ context.Context) ([]schedule.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]schedule.Employee, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.employees[id])
	}
	return out, nil
}

func (m *Store) GetEmployee(_ context.Context, id schedule.EmployeeID) (*schedule.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	emp, ok := m.employees[id]
	if !ok {
		return nil, schedule.ErrEmployeeNotFound
	}
	return &emp, nil
}

func (m *Store) CreateEmployee(_ context.Context, emp schedule.Employee) (schedule.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if emp.ID == "" {
		emp.ID = schedule.EmployeeID(uuid.NewString())
	}
	emp.CreatedAt = time.Now().UTC()
	m.employees[emp.ID] = emp
	m.order = append(m.order, emp.ID)
	return emp, nil
}

func (m *Store) UpdateEmployee(_ context.Context, id schedule.EmployeeID, patch schedule.EmployeePatch) (*schedule.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	emp, ok := m.employees[id]
	if !ok {
		return nil, schedule.ErrEmployeeNotFound
	}
	if patch.FirstName != nil {
		emp.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		emp.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		emp.Phone = *patch.Phone
	}
	if patch.Email != nil {
		emp.Email = *patch.Email
	}
	if patch.Contract != nil {
		emp.Contract = *patch.Contract
	}
	if patch.Rate != nil {
		emp.Rate = *patch.Rate
	}
	if patch.MaxHours != nil {
		emp.MaxHours = *patch.MaxHours
	}
	if patch.Availability != nil {
		emp.Availability = append([]schedule.Weekday(nil), (*patch.Availability)...)
	}
	m.employees[id] = emp
	return &emp, nil
}

// DeleteEmployee removes the employee and cascades to all their shifts.
func (m *Store) DeleteEmployee(_ context.Context, id schedule.EmployeeID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.employees[id]; !ok {
		return schedule.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	for sid, s := range m.shifts {
		if s.EmployeeID == id {
			delete(m.shifts, sid)
		}
	}
	return nil
}

// =============================================================================
// SHIFTS
// =============================================================================

func (m *Store) ListShifts(_ context.Context) ([]schedule.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedShiftsLocked(func(schedule.Shift) bool { return true }), nil
}

func (m *Store) ListShiftsInRange(_ context.Context, from, to schedule.Date) ([]schedule.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedShiftsLocked(func(s schedule.Shift) bool {
		return !s.Date.Before(from) && !s.Date.After(to)
	}), nil
}

func (m *Store) sortedShiftsLocked(keep func(schedule.Shift) bool) []schedule.Shift {
	var out []schedule.Shift
	for _, s := range m.shifts {
		if keep(s) {
			out = append(out, s)
		}
	}
	// Deterministic order: date, then start, then id.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *Store) GetShift(_ context.Context, id schedule.ShiftID) (*schedule.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.shifts[id]
	if !ok {
		return nil, schedule.ErrShiftNotFound
	}
	return &s, nil
}

func (m *Store) CreateShift(_ context.Context, shift schedule.Shift) (schedule.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.employees[shift.EmployeeID]; !ok {
		return schedule.Shift{}, schedule.ErrUnknownEmployee
	}
	if shift.ID == "" {
		shift.ID = schedule.ShiftID(uuid.NewString())
	}
	shift.CreatedAt = time.Now().UTC()
	m.shifts[shift.ID] = shift
	return shift, nil
}

func (m *Store) UpdateShift(_ context.Context, id schedule.ShiftID, patch schedule.ShiftPatch) (*schedule.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.shifts[id]
	if !ok {
		return nil, schedule.ErrShiftNotFound
	}
	if patch.EmployeeID != nil {
		if _, ok := m.employees[*patch.EmployeeID]; !ok {
			return nil, schedule.ErrUnknownEmployee
		}
		s.EmployeeID = *patch.EmployeeID
	}
	if patch.Date != nil {
		s.Date = *patch.Date
	}
	if patch.Start != nil {
		s.Start = *patch.Start
	}
	if patch.End != nil {
		s.End = *patch.End
	}
	if patch.Role != nil {
		s.Role = *patch.Role
	}
	if patch.Notes != nil {
		s.Notes = *patch.Notes
	}
	m.shifts[id] = s
	return &s, nil
}

func (m *Store) DeleteShift(_ context.Context, id schedule.ShiftID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.shifts[id]; !ok {
		return schedule.ErrShiftNotFound
	}
	delete(m.shifts, id)
	return nil
}
