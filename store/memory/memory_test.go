package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taverna/shift-engine/schedule"
)

func addEmployee(t *testing.T, store *Store, first string) schedule.Employee {
	t.Helper()
	emp, err := store.CreateEmployee(context.Background(), schedule.Employee{
		FirstName: first,
		LastName:  "Test",
		Contract:  schedule.ContractFull,
		Rate:      decimal.NewFromInt(8),
		MaxHours:  40,
	})
	require.NoError(t, err)
	return emp
}

func TestListEmployees_KeepsInsertionOrder(t *testing.T) {
	store := New()
	addEmployee(t, store, "Maria")
	addEmployee(t, store, "Giorgos")
	addEmployee(t, store, "Eleni")

	employees, err := store.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 3)
	assert.Equal(t, "Maria", employees[0].FirstName)
	assert.Equal(t, "Giorgos", employees[1].FirstName)
	assert.Equal(t, "Eleni", employees[2].FirstName)
}

func TestListShifts_SortedByDateThenStart(t *testing.T) {
	store := New()
	ctx := context.Background()
	emp := addEmployee(t, store, "Maria")

	// Inserted out of order on purpose.
	for _, s := range []struct{ date, start string }{
		{"2026-03-03", "14:00"},
		{"2026-03-02", "09:00"},
		{"2026-03-03", "08:00"},
	} {
		date, err := schedule.ParseDate(s.date)
		require.NoError(t, err)
		_, err = store.CreateShift(ctx, schedule.Shift{
			EmployeeID: emp.ID,
			Date:       date,
			Start:      s.start,
			End:        "23:00",
			Role:       schedule.RoleWaiter,
		})
		require.NoError(t, err)
	}

	shifts, err := store.ListShifts(ctx)
	require.NoError(t, err)
	require.Len(t, shifts, 3)
	assert.Equal(t, "2026-03-02", shifts[0].Date.String())
	assert.Equal(t, "08:00", shifts[1].Start)
	assert.Equal(t, "14:00", shifts[2].Start)
}

func TestDeleteEmployee_Cascades(t *testing.T) {
	store := New()
	ctx := context.Background()
	emp := addEmployee(t, store, "Maria")

	_, err := store.CreateShift(ctx, schedule.Shift{
		EmployeeID: emp.ID,
		Date:       schedule.NewDate(2026, time.March, 2),
		Start:      "09:00",
		End:        "17:00",
		Role:       schedule.RoleWaiter,
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteEmployee(ctx, emp.ID))
	shifts, err := store.ListShifts(ctx)
	require.NoError(t, err)
	assert.Empty(t, shifts)
}
