package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taverna/shift-engine/schedule"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func createTestEmployee(t *testing.T, store *Store) schedule.Employee {
	t.Helper()
	emp, err := store.CreateEmployee(context.Background(), schedule.Employee{
		FirstName:    "Maria",
		LastName:     "Papadopoulou",
		Phone:        "6971234567",
		Email:        "maria@example.com",
		Contract:     schedule.ContractFull,
		Rate:         decimal.RequireFromString("7.50"),
		MaxHours:     40,
		Availability: []schedule.Weekday{schedule.Monday, schedule.Tuesday, schedule.Friday},
	})
	require.NoError(t, err)
	return emp
}

func TestCreateEmployee_AssignsFreshID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := createTestEmployee(t, store)
	b := createTestEmployee(t, store)

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID, "ids must never repeat")

	got, err := store.GetEmployee(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", got.FirstName)
	assert.True(t, got.Rate.Equal(decimal.RequireFromString("7.50")))
	assert.Equal(t, []schedule.Weekday{schedule.Monday, schedule.Tuesday, schedule.Friday}, got.Availability)
}

func TestGetEmployee_NotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetEmployee(context.Background(), "nope")
	assert.ErrorIs(t, err, schedule.ErrEmployeeNotFound)
}

func TestUpdateEmployee_PartialPatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	emp := createTestEmployee(t, store)

	// GIVEN: A patch touching only the rate and max hours
	rate := decimal.RequireFromString("9.00")
	maxHours := 30
	got, err := store.UpdateEmployee(ctx, emp.ID, schedule.EmployeePatch{
		Rate:     &rate,
		MaxHours: &maxHours,
	})
	require.NoError(t, err)

	// THEN: Patched fields change, everything else is untouched
	assert.True(t, got.Rate.Equal(rate))
	assert.Equal(t, 30, got.MaxHours)
	assert.Equal(t, "Maria", got.FirstName)
	assert.Equal(t, schedule.ContractFull, got.Contract)
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	store := newTestStore(t)
	name := "Ghost"
	_, err := store.UpdateEmployee(context.Background(), "nope", schedule.EmployeePatch{FirstName: &name})
	assert.ErrorIs(t, err, schedule.ErrEmployeeNotFound)
}

func TestCreateShift_RequiresResolvableEmployee(t *testing.T) {
	store := newTestStore(t)
	_, err := store.CreateShift(context.Background(), schedule.Shift{
		EmployeeID: "nope",
		Date:       schedule.NewDate(2026, time.March, 2),
		Start:      "09:00",
		End:        "17:00",
		Role:       schedule.RoleWaiter,
	})
	assert.ErrorIs(t, err, schedule.ErrUnknownEmployee)
}

func TestShiftRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	emp := createTestEmployee(t, store)

	created, err := store.CreateShift(ctx, schedule.Shift{
		EmployeeID: emp.ID,
		Date:       schedule.NewDate(2026, time.March, 2),
		Start:      "18:00",
		End:        "02:00",
		Role:       schedule.RoleKitchen,
		Notes:      "overnight",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := store.GetShift(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, got.EmployeeID)
	assert.Equal(t, "2026-03-02", got.Date.String())
	assert.Equal(t, "18:00", got.Start)
	assert.Equal(t, "02:00", got.End)
	assert.Equal(t, schedule.RoleKitchen, got.Role)
	assert.Equal(t, "overnight", got.Notes)
}

func TestListShiftsInRange(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	emp := createTestEmployee(t, store)

	for _, day := range []int{1, 3, 9} {
		_, err := store.CreateShift(ctx, schedule.Shift{
			EmployeeID: emp.ID,
			Date:       schedule.NewDate(2026, time.March, day),
			Start:      "09:00",
			End:        "17:00",
			Role:       schedule.RoleWaiter,
		})
		require.NoError(t, err)
	}

	week := schedule.WeekOf(schedule.NewDate(2026, time.March, 2))
	shifts, err := store.ListShiftsInRange(ctx, week.Start, week.End())
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, "2026-03-03", shifts[0].Date.String())
}

func TestUpdateShift_PatchAndBadEmployee(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	emp := createTestEmployee(t, store)

	created, err := store.CreateShift(ctx, schedule.Shift{
		EmployeeID: emp.ID,
		Date:       schedule.NewDate(2026, time.March, 2),
		Start:      "09:00",
		End:        "17:00",
		Role:       schedule.RoleWaiter,
	})
	require.NoError(t, err)

	end := "18:30"
	role := schedule.RoleManager
	got, err := store.UpdateShift(ctx, created.ID, schedule.ShiftPatch{End: &end, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "18:30", got.End)
	assert.Equal(t, schedule.RoleManager, got.Role)
	assert.Equal(t, "09:00", got.Start)

	ghost := schedule.EmployeeID("nope")
	_, err = store.UpdateShift(ctx, created.ID, schedule.ShiftPatch{EmployeeID: &ghost})
	assert.ErrorIs(t, err, schedule.ErrUnknownEmployee)
}

func TestDeleteEmployee_CascadesShifts(t *testing.T) {
	// GIVEN: Two employees with shifts
	store := newTestStore(t)
	ctx := context.Background()
	victim := createTestEmployee(t, store)
	survivor := createTestEmployee(t, store)

	for _, emp := range []schedule.Employee{victim, survivor} {
		_, err := store.CreateShift(ctx, schedule.Shift{
			EmployeeID: emp.ID,
			Date:       schedule.NewDate(2026, time.March, 2),
			Start:      "09:00",
			End:        "17:00",
			Role:       schedule.RoleWaiter,
		})
		require.NoError(t, err)
	}

	// WHEN: Deleting one employee
	require.NoError(t, store.DeleteEmployee(ctx, victim.ID))

	// THEN: Only the survivor's shift remains
	shifts, err := store.ListShifts(ctx)
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, survivor.ID, shifts[0].EmployeeID)

	_, err = store.GetEmployee(ctx, victim.ID)
	assert.ErrorIs(t, err, schedule.ErrEmployeeNotFound)
}

func TestReset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	createTestEmployee(t, store)

	require.NoError(t, store.Reset(ctx))
	n, err := store.CountEmployees(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
