/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

WIRE FORMAT:
  Field names are camelCase to match the existing frontend. Money is
  serialized as a decimal string with two places ("7.50"), never a
  float. Dates are "YYYY-MM-DD", clock times "HH:MM".

VALIDATION:
  Request types carry go-playground/validator struct tags; handlers run
  them through Handler.validate before touching the store. Date and
  clock strings get a second, stricter pass in the schedule package.

SEE ALSO:
  - handlers.go: Uses these types
  - schedule/types.go: The domain model these mirror
*/
package api

import (
	"time"

	"github.com/taverna/shift-engine/schedule"
)

// =============================================================================
// EMPLOYEES
// =============================================================================

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	Contract     string   `json:"contract"`
	Rate         string   `json:"rate"`
	MaxHours     int      `json:"maxHours"`
	Availability []string `json:"availability"`
	CreatedAt    string   `json:"createdAt,omitempty"`
}

// CreateEmployeeRequest is the request to create an employee.
type CreateEmployeeRequest struct {
	FirstName    string   `json:"firstName" validate:"required,max=100"`
	LastName     string   `json:"lastName" validate:"required,max=100"`
	Phone        string   `json:"phone" validate:"omitempty,max=20"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Contract     string   `json:"contract" validate:"required,oneof=full part seasonal"`
	Rate         string   `json:"rate" validate:"required"`
	MaxHours     int      `json:"maxHours" validate:"required,gt=0,lte=168"`
	Availability []string `json:"availability" validate:"dive,oneof=mon tue wed thu fri sat sun"`
}

// UpdateEmployeeRequest is a partial update; nil fields are left alone.
type UpdateEmployeeRequest struct {
	FirstName    *string   `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName     *string   `json:"lastName" validate:"omitempty,min=1,max=100"`
	Phone        *string   `json:"phone" validate:"omitempty,max=20"`
	Email        *string   `json:"email" validate:"omitempty,email"`
	Contract     *string   `json:"contract" validate:"omitempty,oneof=full part seasonal"`
	Rate         *string   `json:"rate"`
	MaxHours     *int      `json:"maxHours" validate:"omitempty,gt=0,lte=168"`
	Availability *[]string `json:"availability" validate:"omitempty,dive,oneof=mon tue wed thu fri sat sun"`
}

// =============================================================================
// SHIFTS
// =============================================================================

// ShiftDTO represents a shift in API responses.
type ShiftDTO struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Role       string  `json:"role"`
	Notes      string  `json:"notes,omitempty"`
	Hours      float64 `json:"hours"`
	CreatedAt  string  `json:"createdAt,omitempty"`
}

// CreateShiftRequest is the request to schedule a shift.
type CreateShiftRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Start      string `json:"start" validate:"required"`
	End        string `json:"end" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=waiter barista kitchen cashier manager"`
	Notes      string `json:"notes" validate:"omitempty,max=500"`
}

// UpdateShiftRequest is a partial shift update.
type UpdateShiftRequest struct {
	EmployeeID *string `json:"employeeId"`
	Date       *string `json:"date"`
	Start      *string `json:"start"`
	End        *string `json:"end"`
	Role       *string `json:"role" validate:"omitempty,oneof=waiter barista kitchen cashier manager"`
	Notes      *string `json:"notes" validate:"omitempty,max=500"`
}

// ShiftResponse wraps a saved shift together with any scheduling
// warnings (short breaks) that did not block the save.
type ShiftResponse struct {
	Shift    ShiftDTO `json:"shift"`
	Warnings []string `json:"warnings,omitempty"`
}

// ConflictResponse is returned with 422 when a shift cannot be saved.
type ConflictResponse struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// =============================================================================
// WEEK SUMMARY
// =============================================================================

// WeekDTO is the window of a summary.
type WeekDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CostBreakdownDTO mirrors schedule.CostBreakdown on the wire.
type CostBreakdownDTO struct {
	Hours         float64 `json:"hours"`
	RegularHours  float64 `json:"regularHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	RegularCost   string  `json:"regularCost"`
	OvertimeCost  string  `json:"overtimeCost"`
	TotalCost     string  `json:"totalCost"`
}

// EmployeeWeekDTO is one row of the per-employee breakdown.
type EmployeeWeekDTO struct {
	Employee EmployeeDTO      `json:"employee"`
	Cost     CostBreakdownDTO `json:"cost"`
	Alerts   []AlertDTO       `json:"alerts,omitempty"`
}

// AlertDTO represents a compliance finding.
type AlertDTO struct {
	Type       string  `json:"type"`
	EmployeeID string  `json:"employeeId"`
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	Hours      float64 `json:"hours,omitempty"`
	Date       string  `json:"date,omitempty"`
}

// WeekSummaryDTO is the full weekly dashboard payload.
type WeekSummaryDTO struct {
	Week          WeekDTO           `json:"week"`
	TotalHours    float64           `json:"totalHours"`
	TotalCost     string            `json:"totalCost"`
	OvertimeCost  string            `json:"overtimeCost"`
	AverageHourly string            `json:"averageHourly"`
	Breakdown     []EmployeeWeekDTO `json:"breakdown"`
	Alerts        []AlertDTO        `json:"alerts"`
	AlertBadge    int               `json:"alertBadge"`
	Orphaned      []string          `json:"orphaned,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// DOMAIN -> DTO MAPPING
// =============================================================================

func toEmployeeDTO(e schedule.Employee) EmployeeDTO {
	avail := make([]string, len(e.Availability))
	for i, d := range e.Availability {
		avail[i] = string(d)
	}
	return EmployeeDTO{
		ID:           string(e.ID),
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Phone:        e.Phone,
		Email:        e.Email,
		Contract:     string(e.Contract),
		Rate:         e.Rate.StringFixed(2),
		MaxHours:     e.MaxHours,
		Availability: avail,
		CreatedAt:    formatCreatedAt(e.CreatedAt),
	}
}

func toShiftDTO(s schedule.Shift) ShiftDTO {
	dto := ShiftDTO{
		ID:         string(s.ID),
		EmployeeID: string(s.EmployeeID),
		Date:       s.Date.String(),
		Start:      s.Start,
		End:        s.End,
		Role:       string(s.Role),
		Notes:      s.Notes,
		CreatedAt:  formatCreatedAt(s.CreatedAt),
	}
	if h, err := s.Hours(); err == nil {
		dto.Hours = h
	}
	return dto
}

func toCostBreakdownDTO(c schedule.CostBreakdown) CostBreakdownDTO {
	return CostBreakdownDTO{
		Hours:         c.Hours,
		RegularHours:  c.RegularHours,
		OvertimeHours: c.OvertimeHours,
		RegularCost:   c.RegularCost.StringFixed(2),
		OvertimeCost:  c.OvertimeCost.StringFixed(2),
		TotalCost:     c.TotalCost.StringFixed(2),
	}
}

func toAlertDTO(a schedule.Alert) AlertDTO {
	dto := AlertDTO{
		Type:       string(a.Type),
		EmployeeID: string(a.EmployeeID),
		Title:      a.Title,
		Message:    a.Message,
		Hours:      a.Hours,
	}
	if !a.Date.IsZero() {
		dto.Date = a.Date.String()
	}
	return dto
}

func toWeekSummaryDTO(s schedule.WeekSummary) WeekSummaryDTO {
	breakdown := make([]EmployeeWeekDTO, len(s.Breakdown))
	for i, row := range s.Breakdown {
		breakdown[i] = EmployeeWeekDTO{
			Employee: toEmployeeDTO(row.Employee),
			Cost:     toCostBreakdownDTO(row.Cost),
			Alerts:   toAlertDTOs(row.Alerts),
		}
	}
	orphaned := make([]string, len(s.Orphaned))
	for i, id := range s.Orphaned {
		orphaned[i] = string(id)
	}
	return WeekSummaryDTO{
		Week:          WeekDTO{Start: s.Week.Start.String(), End: s.Week.End().String()},
		TotalHours:    s.TotalHours,
		TotalCost:     s.TotalCost.StringFixed(2),
		OvertimeCost:  s.OvertimeCost.StringFixed(2),
		AverageHourly: s.AverageHourly.StringFixed(2),
		Breakdown:     breakdown,
		Alerts:        toAlertDTOs(s.Alerts),
		AlertBadge:    s.AlertBadge,
		Orphaned:      orphaned,
	}
}

func toAlertDTOs(alerts []schedule.Alert) []AlertDTO {
	if len(alerts) == 0 {
		return nil
	}
	out := make([]AlertDTO, len(alerts))
	for i, a := range alerts {
		out[i] = toAlertDTO(a)
	}
	return out
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
