/*
Package sqlite provides a SQLite-backed implementation of the persistence port.

PURPOSE:
  Durable storage for the roster: employee records and their shifts. In
  production the same patterns apply to PostgreSQL - only minor SQL
  dialect differences.

SCHEMA:
  employees: id, firstName, lastName, phone, email, contract, rate,
             maxHours, availability_json, createdAt
  shifts:    id, employeeId -> employees ON DELETE CASCADE, date,
             start, end, role, notes, createdAt

CASCADE:
  Deleting an employee deletes every shift referencing it, enforced by
  the foreign key. The connection is opened with _foreign_keys=on; the
  cascade is atomic from the caller's perspective.

IDS:
  The store assigns UUIDs on create and never reissues them.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. Writers fully replace one record
  at a time (last write wins); readers see a consistent snapshot.

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - schedule/store.go: Port definition
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/taverna/shift-engine/schedule"
)

// Store implements schedule.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		firstName TEXT NOT NULL,
		lastName TEXT NOT NULL,
		phone TEXT DEFAULT '',
		email TEXT DEFAULT '',
		contract TEXT NOT NULL DEFAULT 'full',
		rate TEXT NOT NULL DEFAULT '0',
		maxHours INTEGER NOT NULL DEFAULT 40,
		availability_json TEXT NOT NULL DEFAULT '[]',
		createdAt TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS shifts (
		id TEXT PRIMARY KEY,
		employeeId TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		start TEXT NOT NULL,
		"end" TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'waiter',
		notes TEXT DEFAULT '',
		createdAt TEXT NOT NULL
	);

	-- Hot path: one employee's shifts inside a week window
	CREATE INDEX IF NOT EXISTS idx_shifts_employee_date
		ON shifts(employeeId, date);
	CREATE INDEX IF NOT EXISTS idx_shifts_date
		ON shifts(date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

const employeeColumns = "id, firstName, lastName, phone, email, contract, rate, maxHours, availability_json, createdAt"

func (s *Store) ListEmployees(ctx context.Context) ([]schedule.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+employeeColumns+" FROM employees ORDER BY createdAt ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []schedule.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id schedule.EmployeeID) (*schedule.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getEmployeeLocked(ctx, id)
}

func (s *Store) getEmployeeLocked(ctx context.Context, id schedule.EmployeeID) (*schedule.Employee, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+employeeColumns+" FROM employees WHERE id = ?", id)

	emp, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, schedule.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) CreateEmployee(ctx context.Context, emp schedule.Employee) (schedule.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if emp.ID == "" {
		emp.ID = schedule.EmployeeID(uuid.NewString())
	}
	emp.CreatedAt = time.Now().UTC()

	availability, _ := json.Marshal(weekdayStrings(emp.Availability))
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO employees (`+employeeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		emp.ID, emp.FirstName, emp.LastName, emp.Phone, emp.Email,
		emp.Contract, emp.Rate.String(), emp.MaxHours, string(availability),
		emp.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return schedule.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return emp, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, id schedule.EmployeeID, patch schedule.EmployeePatch) (*schedule.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sets := []string{}
	args := []any{}
	addSet := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if patch.FirstName != nil {
		addSet("firstName", *patch.FirstName)
	}
	if patch.LastName != nil {
		addSet("lastName", *patch.LastName)
	}
	if patch.Phone != nil {
		addSet("phone", *patch.Phone)
	}
	if patch.Email != nil {
		addSet("email", *patch.Email)
	}
	if patch.Contract != nil {
		addSet("contract", string(*patch.Contract))
	}
	if patch.Rate != nil {
		addSet("rate", patch.Rate.String())
	}
	if patch.MaxHours != nil {
		addSet("maxHours", *patch.MaxHours)
	}
	if patch.Availability != nil {
		availability, _ := json.Marshal(weekdayStrings(*patch.Availability))
		addSet("availability_json", string(availability))
	}

	if len(sets) > 0 {
		args = append(args, id)
		res, err := s.db.ExecContext(ctx,
			"UPDATE employees SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return nil, fmt.Errorf("failed to update employee: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, schedule.ErrEmployeeNotFound
		}
	}

	return s.getEmployeeLocked(ctx, id)
}

// DeleteEmployee removes the employee; the foreign key cascades the delete
// to every shift referencing them.
func (s *Store) DeleteEmployee(ctx context.Context, id schedule.EmployeeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return schedule.ErrEmployeeNotFound
	}
	return nil
}

// =============================================================================
// SHIFTS
// =============================================================================

const shiftColumns = `id, employeeId, date, start, "end", role, notes, createdAt`

func (s *Store) ListShifts(ctx context.Context) ([]schedule.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryShifts(ctx,
		"SELECT "+shiftColumns+" FROM shifts ORDER BY date ASC, start ASC, id ASC")
}

func (s *Store) ListShiftsInRange(ctx context.Context, from, to schedule.Date) ([]schedule.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryShifts(ctx, `
		SELECT `+shiftColumns+` FROM shifts
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, start ASC, id ASC`,
		from.String(), to.String())
}

func (s *Store) GetShift(ctx context.Context, id schedule.ShiftID) (*schedule.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getShiftLocked(ctx, id)
}

func (s *Store) getShiftLocked(ctx context.Context, id schedule.ShiftID) (*schedule.Shift, error) {
	shifts, err := s.queryShifts(ctx,
		"SELECT "+shiftColumns+" FROM shifts WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, schedule.ErrShiftNotFound
	}
	return &shifts[0], nil
}

func (s *Store) CreateShift(ctx context.Context, shift schedule.Shift) (schedule.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getEmployeeLocked(ctx, shift.EmployeeID); err != nil {
		return schedule.Shift{}, schedule.ErrUnknownEmployee
	}

	if shift.ID == "" {
		shift.ID = schedule.ShiftID(uuid.NewString())
	}
	shift.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shifts (`+shiftColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		shift.ID, shift.EmployeeID, shift.Date.String(), shift.Start, shift.End,
		shift.Role, shift.Notes, shift.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return schedule.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return shift, nil
}

func (s *Store) UpdateShift(ctx context.Context, id schedule.ShiftID, patch schedule.ShiftPatch) (*schedule.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sets := []string{}
	args := []any{}
	addSet := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if patch.EmployeeID != nil {
		if _, err := s.getEmployeeLocked(ctx, *patch.EmployeeID); err != nil {
			return nil, schedule.ErrUnknownEmployee
		}
		addSet("employeeId", string(*patch.EmployeeID))
	}
	if patch.Date != nil {
		addSet("date", patch.Date.String())
	}
	if patch.Start != nil {
		addSet("start", *patch.Start)
	}
	if patch.End != nil {
		addSet(`"end"`, *patch.End)
	}
	if patch.Role != nil {
		addSet("role", string(*patch.Role))
	}
	if patch.Notes != nil {
		addSet("notes", *patch.Notes)
	}

	if len(sets) > 0 {
		args = append(args, id)
		res, err := s.db.ExecContext(ctx,
			"UPDATE shifts SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return nil, fmt.Errorf("failed to update shift: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, schedule.ErrShiftNotFound
		}
	}

	return s.getShiftLocked(ctx, id)
}

func (s *Store) DeleteShift(ctx context.Context, id schedule.ShiftID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM shifts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return schedule.ErrShiftNotFound
	}
	return nil
}

// =============================================================================
// UTILITIES
// =============================================================================

// CountEmployees reports roster size; used to decide whether to seed demo data.
func (s *Store) CountEmployees(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&n)
	return n, err
}

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"shifts", "employees"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) queryShifts(ctx context.Context, query string, args ...any) ([]schedule.Shift, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		var (
			shift     schedule.Shift
			date      string
			createdAt string
		)
		if err := rows.Scan(&shift.ID, &shift.EmployeeID, &date, &shift.Start,
			&shift.End, &shift.Role, &shift.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shift.Date, err = schedule.ParseDate(date)
		if err != nil {
			return nil, err
		}
		shift.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		shifts = append(shifts, shift)
	}
	return shifts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (schedule.Employee, error) {
	var (
		emp          schedule.Employee
		rate         string
		availability string
		createdAt    string
	)
	err := row.Scan(&emp.ID, &emp.FirstName, &emp.LastName, &emp.Phone, &emp.Email,
		&emp.Contract, &rate, &emp.MaxHours, &availability, &createdAt)
	if err != nil {
		return emp, err
	}

	emp.Rate, err = decimal.NewFromString(rate)
	if err != nil {
		return emp, fmt.Errorf("failed to parse stored rate %q: %w", rate, err)
	}

	var days []string
	if err := json.Unmarshal([]byte(availability), &days); err == nil {
		for _, d := range days {
			emp.Availability = append(emp.Availability, schedule.Weekday(d))
		}
	}

	emp.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return emp, nil
}

func weekdayStrings(days []schedule.Weekday) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = string(d)
	}
	return out
}
