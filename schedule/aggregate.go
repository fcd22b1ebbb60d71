/*
aggregate.go - Roster-wide weekly aggregation

PURPOSE:
  Composes the cost calculator and the compliance rule engine across the
  full roster for one Monday-anchored week: per-employee breakdowns,
  roster totals, the average effective hourly cost, and the concatenated
  alerts list for the alerts view.

ORDERING:
  The breakdown is sorted by total cost descending, ties keeping original
  roster order. Alerts keep roster order, each employee's block in the
  rule engine's fixed rule order.

ORPHANED SHIFTS:
  Shifts whose employee reference does not resolve are skipped, not fatal.
  They are reported back so the caller can log them.
*/
package schedule

import (
	"sort"

	"github.com/shopspring/decimal"
)

// EmployeeWeek is one employee's slice of the weekly summary.
type EmployeeWeek struct {
	Employee Employee
	Cost     CostBreakdown
	Alerts   []Alert
}

// WeekSummary is the aggregated view of one week across the whole roster.
type WeekSummary struct {
	Week          Week
	TotalHours    float64
	TotalCost     decimal.Decimal
	OvertimeCost  decimal.Decimal
	AverageHourly decimal.Decimal // TotalCost / TotalHours, zero when no hours
	Breakdown     []EmployeeWeek  // sorted by total cost descending
	Alerts        []Alert         // all employees, roster order
	AlertBadge    int             // critical + warning count

	// Orphaned lists shifts in the window that reference no known employee.
	// They contribute nothing to totals; callers should log them.
	Orphaned []ShiftID
}

// Summarize runs cost and compliance evaluation for every employee over the
// week containing weekStart (normalized to its Monday) and rolls the results
// up. Inputs are treated as immutable snapshots.
func Summarize(employees []Employee, shifts []Shift, weekStart Date) (WeekSummary, error) {
	week := WeekOf(weekStart)
	summary := WeekSummary{
		Week:          week,
		TotalCost:     decimal.Zero,
		OvertimeCost:  decimal.Zero,
		AverageHourly: decimal.Zero,
	}

	known := make(map[EmployeeID]bool, len(employees))
	for _, emp := range employees {
		known[emp.ID] = true
	}
	for _, s := range shifts {
		if week.Contains(s.Date) && !known[s.EmployeeID] {
			summary.Orphaned = append(summary.Orphaned, s.ID)
		}
	}

	for _, emp := range employees {
		empShifts := week.ShiftsFor(emp.ID, shifts)

		cost, err := WeeklyCost(emp, empShifts)
		if err != nil {
			return WeekSummary{}, err
		}
		alerts, err := EvaluateCompliance(emp, empShifts)
		if err != nil {
			return WeekSummary{}, err
		}

		summary.Breakdown = append(summary.Breakdown, EmployeeWeek{
			Employee: emp,
			Cost:     cost,
			Alerts:   alerts,
		})
		summary.TotalHours += cost.Hours
		summary.TotalCost = summary.TotalCost.Add(cost.TotalCost)
		summary.OvertimeCost = summary.OvertimeCost.Add(cost.OvertimeCost)

		summary.Alerts = append(summary.Alerts, alerts...)
		for _, a := range alerts {
			if a.Type == AlertCritical || a.Type == AlertWarning {
				summary.AlertBadge++
			}
		}
	}

	// Guard the average: zero scheduled hours must yield zero, never a
	// division error.
	if summary.TotalHours > 0 {
		summary.AverageHourly = summary.TotalCost.Div(decimal.NewFromFloat(summary.TotalHours))
	}

	sort.SliceStable(summary.Breakdown, func(i, j int) bool {
		return summary.Breakdown[i].Cost.TotalCost.GreaterThan(summary.Breakdown[j].Cost.TotalCost)
	})

	return summary, nil
}
