package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", d.String())
	assert.Equal(t, Monday, d.Weekday())

	_, err = ParseDate("02/03/2026")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestWeekOf_NormalizesToMonday(t *testing.T) {
	monday := NewDate(2026, time.March, 2)

	// Every day of the week maps back to the same Monday, including the
	// closing Sunday (Sunday belongs to the week it ends, not the next one).
	for i := 0; i < 7; i++ {
		week := WeekOf(monday.AddDays(i))
		assert.True(t, week.Start.Equal(monday), "day offset %d -> %s", i, week.Start)
	}

	next := WeekOf(monday.AddDays(7))
	assert.True(t, next.Start.Equal(monday.AddDays(7)))
}

func TestWeek_Window(t *testing.T) {
	week := WeekOf(NewDate(2026, time.March, 4))
	assert.Equal(t, "2026-03-02", week.Start.String())
	assert.Equal(t, "2026-03-08", week.End().String())

	assert.True(t, week.Contains(week.Start))
	assert.True(t, week.Contains(week.End()))
	assert.False(t, week.Contains(week.Start.AddDays(-1)))
	assert.False(t, week.Contains(week.End().AddDays(1)))

	assert.Len(t, week.Days(), 7)
	assert.Equal(t, Sunday, week.Days()[6].Weekday())
}

func TestWeek_Navigation(t *testing.T) {
	week := WeekOf(NewDate(2026, time.March, 2))
	assert.Equal(t, "2026-03-09", week.Next().Start.String())
	assert.Equal(t, "2026-02-23", week.Prev().Start.String())
}

func TestWeek_ShiftsFor(t *testing.T) {
	week := WeekOf(NewDate(2026, time.March, 2))
	shifts := []Shift{
		{ID: "in", EmployeeID: "emp-1", Date: NewDate(2026, time.March, 3)},
		{ID: "other-emp", EmployeeID: "emp-2", Date: NewDate(2026, time.March, 3)},
		{ID: "out", EmployeeID: "emp-1", Date: NewDate(2026, time.March, 10)},
		{ID: "edge", EmployeeID: "emp-1", Date: NewDate(2026, time.March, 8)},
	}
	got := week.ShiftsFor("emp-1", shifts)
	require.Len(t, got, 2)
	assert.Equal(t, ShiftID("in"), got[0].ID)
	assert.Equal(t, ShiftID("edge"), got[1].ID, "closing Sunday is inside the window")
}
