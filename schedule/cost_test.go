package schedule

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee(rate string, maxHours int) Employee {
	return Employee{
		ID:        "emp-1",
		FirstName: "Maria",
		LastName:  "Papadopoulou",
		Contract:  ContractFull,
		Rate:      decimal.RequireFromString(rate),
		MaxHours:  maxHours,
	}
}

func weekShifts(emp EmployeeID, ranges ...[2]string) []Shift {
	// One shift per day starting Monday, so rest rules stay quiet.
	shifts := make([]Shift, len(ranges))
	for i, r := range ranges {
		shifts[i] = Shift{
			ID:         ShiftID("s" + r[0]),
			EmployeeID: emp,
			Date:       NewDate(2026, 3, 2).AddDays(i),
			Start:      r[0],
			End:        r[1],
			Role:       RoleWaiter,
		}
	}
	return shifts
}

func TestWeeklyCost_NoShifts(t *testing.T) {
	cost, err := WeeklyCost(testEmployee("10", 40), nil)
	require.NoError(t, err)
	assert.Zero(t, cost.Hours)
	assert.True(t, cost.TotalCost.IsZero())
	assert.True(t, cost.OvertimeCost.IsZero())
}

func TestWeeklyCost_UnderCapHasNoOvertime(t *testing.T) {
	// 3 x 8h = 24h against a 40h cap
	shifts := weekShifts("emp-1",
		[2]string{"09:00", "17:00"},
		[2]string{"09:00", "17:00"},
		[2]string{"09:00", "17:00"},
	)
	cost, err := WeeklyCost(testEmployee("10", 40), shifts)
	require.NoError(t, err)
	assert.Equal(t, 24.0, cost.Hours)
	assert.True(t, cost.OvertimeCost.IsZero())
	assert.True(t, cost.TotalCost.Equal(decimal.NewFromInt(240)))
}

func TestWeeklyCost_OvertimeSplit(t *testing.T) {
	// GIVEN: maxHours=40, rate=10, 45 hours scheduled
	// THEN: regular 400, overtime 5 * 10 * 1.5 = 75, total 475
	shifts := weekShifts("emp-1",
		[2]string{"08:00", "17:00"}, // 9h
		[2]string{"08:00", "17:00"},
		[2]string{"08:00", "17:00"},
		[2]string{"08:00", "17:00"},
		[2]string{"08:00", "17:00"},
	)
	cost, err := WeeklyCost(testEmployee("10", 40), shifts)
	require.NoError(t, err)
	assert.Equal(t, 45.0, cost.Hours)
	assert.Equal(t, 40.0, cost.RegularHours)
	assert.Equal(t, 5.0, cost.OvertimeHours)
	assert.True(t, cost.RegularCost.Equal(decimal.NewFromInt(400)), "regular cost %s", cost.RegularCost)
	assert.True(t, cost.OvertimeCost.Equal(decimal.NewFromInt(75)), "overtime cost %s", cost.OvertimeCost)
	assert.True(t, cost.TotalCost.Equal(decimal.NewFromInt(475)), "total cost %s", cost.TotalCost)
}

func TestWeeklyCost_SplitInvariants(t *testing.T) {
	// The split must add back up for caps below, at and above the total.
	shifts := weekShifts("emp-1",
		[2]string{"08:00", "18:30"},
		[2]string{"22:00", "06:00"}, // overnight, 8h
		[2]string{"09:00", "17:15"},
	)
	for _, maxHours := range []int{10, 26, 40} {
		emp := testEmployee("7.50", maxHours)
		cost, err := WeeklyCost(emp, shifts)
		require.NoError(t, err)
		assert.InDelta(t, cost.Hours, cost.RegularHours+cost.OvertimeHours, 1e-9)
		assert.True(t, cost.TotalCost.Equal(cost.RegularCost.Add(cost.OvertimeCost)))
	}
}

func TestWeeklyCost_MalformedShiftFailsFast(t *testing.T) {
	shifts := []Shift{{Start: "nine", End: "17:00"}}
	_, err := WeeklyCost(testEmployee("10", 40), shifts)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
