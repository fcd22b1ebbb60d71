/*
seed.go - Demo roster and schedule loader

PURPOSE:
  Populates an empty database with a six-person taverna roster and a
  realistic week of shifts so the dashboard has something to show on
  first run. The seed is a fixed cast; shifts land on the week
  containing the given reference date.

SEE ALSO:
  - cmd/server/main.go: Runs the seed behind the SEED_DEMO flag
*/
package api

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taverna/shift-engine/schedule"
)

type seedEmployee struct {
	emp schedule.Employee
	// pattern maps weekdays to a start/end/role triple.
	pattern map[schedule.Weekday]seedShift
}

type seedShift struct {
	start, end string
	role       schedule.Role
	notes      string
}

func repeat(days []schedule.Weekday, s seedShift) map[schedule.Weekday]seedShift {
	out := make(map[schedule.Weekday]seedShift, len(days))
	for _, d := range days {
		out[d] = s
	}
	return out
}

func merge(maps ...map[schedule.Weekday]seedShift) map[schedule.Weekday]seedShift {
	out := make(map[schedule.Weekday]seedShift)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

var (
	weekdays = []schedule.Weekday{schedule.Monday, schedule.Tuesday, schedule.Wednesday, schedule.Thursday, schedule.Friday}
	allDays  = []schedule.Weekday{schedule.Monday, schedule.Tuesday, schedule.Wednesday, schedule.Thursday, schedule.Friday, schedule.Saturday, schedule.Sunday}
)

func demoRoster() []seedEmployee {
	return []seedEmployee{
		{
			emp: schedule.Employee{
				FirstName: "Μαρία", LastName: "Παπαδοπούλου",
				Phone: "6971234567", Email: "maria@example.com",
				Contract: schedule.ContractFull, Rate: decimal.RequireFromString("7.50"), MaxHours: 40,
				Availability: weekdays,
			},
			pattern: repeat(weekdays, seedShift{start: "08:00", end: "16:00", role: schedule.RoleCashier}),
		},
		{
			emp: schedule.Employee{
				FirstName: "Γιώργος", LastName: "Αντωνίου",
				Phone: "6987654321", Email: "giorgos@example.com",
				Contract: schedule.ContractPart, Rate: decimal.RequireFromString("6.50"), MaxHours: 25,
				Availability: []schedule.Weekday{schedule.Thursday, schedule.Friday, schedule.Saturday, schedule.Sunday},
			},
			pattern: repeat(
				[]schedule.Weekday{schedule.Thursday, schedule.Friday, schedule.Saturday, schedule.Sunday},
				seedShift{start: "17:00", end: "23:00", role: schedule.RoleWaiter},
			),
		},
		{
			emp: schedule.Employee{
				FirstName: "Ελένη", LastName: "Κωστοπούλου",
				Phone: "6945678901", Email: "eleni@example.com",
				Contract: schedule.ContractSeasonal, Rate: decimal.RequireFromString("7.00"), MaxHours: 40,
				Availability: allDays,
			},
			pattern: merge(
				repeat([]schedule.Weekday{schedule.Monday, schedule.Wednesday, schedule.Friday},
					seedShift{start: "10:00", end: "18:00", role: schedule.RoleBarista}),
				repeat([]schedule.Weekday{schedule.Tuesday, schedule.Thursday, schedule.Saturday},
					seedShift{start: "14:00", end: "22:00", role: schedule.RoleBarista}),
			),
		},
		{
			emp: schedule.Employee{
				FirstName: "Νίκος", LastName: "Δημητρίου",
				Phone: "6932145678", Email: "nikos@example.com",
				Contract: schedule.ContractFull, Rate: decimal.RequireFromString("8.00"), MaxHours: 40,
				Availability: append(append([]schedule.Weekday{}, weekdays...), schedule.Saturday),
			},
			pattern: repeat(
				append(append([]schedule.Weekday{}, weekdays...), schedule.Saturday),
				seedShift{start: "09:00", end: "17:00", role: schedule.RoleManager},
			),
		},
		{
			emp: schedule.Employee{
				FirstName: "Σοφία", LastName: "Γεωργίου",
				Phone: "6958741236", Email: "sofia@example.com",
				Contract: schedule.ContractPart, Rate: decimal.RequireFromString("6.00"), MaxHours: 20,
				Availability: []schedule.Weekday{schedule.Friday, schedule.Saturday, schedule.Sunday},
			},
			pattern: repeat(
				[]schedule.Weekday{schedule.Friday, schedule.Saturday, schedule.Sunday},
				seedShift{start: "18:00", end: "02:00", role: schedule.RoleWaiter},
			),
		},
		{
			emp: schedule.Employee{
				FirstName: "Κώστας", LastName: "Μαρκόπουλος",
				Phone: "6912378456", Email: "kostas@example.com",
				Contract: schedule.ContractFull, Rate: decimal.RequireFromString("9.50"), MaxHours: 40,
				Availability: allDays,
			},
			pattern: merge(
				repeat(weekdays, seedShift{start: "11:00", end: "19:00", role: schedule.RoleKitchen}),
				repeat([]schedule.Weekday{schedule.Saturday, schedule.Sunday},
					seedShift{start: "10:00", end: "20:00", role: schedule.RoleKitchen, notes: "Σαββατοκύριακο - πολλή δουλειά"}),
			),
		},
	}
}

// SeedDemo loads the demo roster and a week of shifts around ref.
// It is meant for an empty store; callers should check first.
func SeedDemo(ctx context.Context, store schedule.Store, ref schedule.Date) error {
	week := schedule.WeekOf(ref)

	for _, seed := range demoRoster() {
		emp, err := store.CreateEmployee(ctx, seed.emp)
		if err != nil {
			return fmt.Errorf("seed employee %s: %w", seed.emp.FullName(), err)
		}
		for _, day := range week.Days() {
			s, ok := seed.pattern[day.Weekday()]
			if !ok {
				continue
			}
			_, err := store.CreateShift(ctx, schedule.Shift{
				EmployeeID: emp.ID,
				Date:       day,
				Start:      s.start,
				End:        s.end,
				Role:       s.role,
				Notes:      s.notes,
			})
			if err != nil {
				return fmt.Errorf("seed shift for %s on %s: %w", emp.FullName(), day, err)
			}
		}
	}
	return nil
}
