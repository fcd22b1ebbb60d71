/*
cost.go - Weekly labor-cost calculation

PURPOSE:
  Splits an employee's weekly hours into regular and overtime portions and
  prices them. Hours up to the employee's contracted MaxHours are paid at
  the base rate; hours beyond it at 1.5x. Money is decimal throughout;
  hours are float64.

INVARIANTS:
  RegularHours + OvertimeHours == Hours
  RegularCost + OvertimeCost  == TotalCost
  OvertimeCost == 0 whenever Hours <= MaxHours
*/
package schedule

import "github.com/shopspring/decimal"

// OvertimeMultiplier prices hours beyond the weekly cap.
var OvertimeMultiplier = decimal.NewFromFloat(1.5)

// CostBreakdown is the priced summary of one employee's week.
type CostBreakdown struct {
	Hours         float64
	RegularHours  float64
	OvertimeHours float64
	RegularCost   decimal.Decimal
	OvertimeCost  decimal.Decimal
	TotalCost     decimal.Decimal
}

// WeeklyCost prices the given shifts against the employee's rate and weekly
// cap. The caller supplies the shifts already scoped to one week window;
// zero shifts yield an all-zero breakdown.
func WeeklyCost(emp Employee, shifts []Shift) (CostBreakdown, error) {
	var total float64
	for _, s := range shifts {
		hours, err := s.Hours()
		if err != nil {
			return CostBreakdown{}, err
		}
		total += hours
	}

	regular := total
	overtime := 0.0
	if max := float64(emp.MaxHours); total > max {
		regular = max
		overtime = total - max
	}

	regularCost := decimal.NewFromFloat(regular).Mul(emp.Rate)
	overtimeCost := decimal.NewFromFloat(overtime).Mul(emp.Rate).Mul(OvertimeMultiplier)

	return CostBreakdown{
		Hours:         total,
		RegularHours:  regular,
		OvertimeHours: overtime,
		RegularCost:   regularCost,
		OvertimeCost:  overtimeCost,
		TotalCost:     regularCost.Add(overtimeCost),
	}, nil
}
