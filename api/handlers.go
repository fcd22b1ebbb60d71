/*
handlers.go - HTTP API handlers for the shift scheduling engine

PURPOSE:
  Exposes the scheduling engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Employees:
    GET    /api/employees              List all employees
    POST   /api/employees              Create employee
    GET    /api/employees/{id}         Get employee details
    PUT    /api/employees/{id}         Update employee
    DELETE /api/employees/{id}         Delete employee (cascades shifts)

  Shifts:
    GET    /api/shifts                 List shifts (?week=YYYY-MM-DD)
    POST   /api/shifts                 Schedule a shift
    GET    /api/shifts/{id}            Get shift details
    PUT    /api/shifts/{id}            Update shift
    DELETE /api/shifts/{id}            Delete shift

  Weeks:
    GET    /api/weeks/{date}/summary   Cost and compliance summary
    GET    /api/weeks/{date}/alerts    Compliance alerts only

  Export:
    GET    /api/export/ergani?week=    ERGANI CSV download

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input (validator tags, then schedule parsing)
  3. Call domain logic (schedule package)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed input, unknown employee reference
  - 404: Resource not found
  - 422: Shift conflicts (overlaps) with the conflict detail
  - 500: Internal errors

SECURITY NOTE:
  No authentication. The server is meant to sit behind the venue's
  private network, the same trust model as the spreadsheet it replaces.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - seed.go: Demo roster loader
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/taverna/shift-engine/export"
	"github.com/taverna/shift-engine/schedule"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store schedule.Store

	validate *validator.Validate
	log      zerolog.Logger
}

// NewHandler creates a new handler with the given store.
func NewHandler(store schedule.Store, log zerolog.Logger) *Handler {
	return &Handler{
		Store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := schedule.EmployeeID(chi.URLParam(r, "id"))
	emp, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		writeStoreError(w, "Failed to get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// CreateEmployee creates a new employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}
	rate, err := decimal.NewFromString(req.Rate)
	if err != nil || rate.IsNegative() {
		writeError(w, http.StatusBadRequest, "Rate must be a non-negative decimal", err)
		return
	}

	emp := schedule.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Email:        req.Email,
		Contract:     schedule.Contract(req.Contract),
		Rate:         rate,
		MaxHours:     req.MaxHours,
		Availability: toWeekdays(req.Availability),
	}
	created, err := h.Store.CreateEmployee(r.Context(), emp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create employee", err)
		return
	}

	h.log.Info().Str("employee", string(created.ID)).Str("name", created.FullName()).Msg("employee created")
	writeJSON(w, http.StatusCreated, toEmployeeDTO(created))
}

// UpdateEmployee applies a partial update.
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := schedule.EmployeeID(chi.URLParam(r, "id"))

	var req UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	patch := schedule.EmployeePatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		MaxHours:  req.MaxHours,
	}
	if req.Contract != nil {
		c := schedule.Contract(*req.Contract)
		patch.Contract = &c
	}
	if req.Rate != nil {
		rate, err := decimal.NewFromString(*req.Rate)
		if err != nil || rate.IsNegative() {
			writeError(w, http.StatusBadRequest, "Rate must be a non-negative decimal", err)
			return
		}
		patch.Rate = &rate
	}
	if req.Availability != nil {
		days := toWeekdays(*req.Availability)
		patch.Availability = &days
	}

	emp, err := h.Store.UpdateEmployee(r.Context(), id, patch)
	if err != nil {
		writeStoreError(w, "Failed to update employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// DeleteEmployee removes an employee and all their shifts.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := schedule.EmployeeID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteEmployee(r.Context(), id); err != nil {
		writeStoreError(w, "Failed to delete employee", err)
		return
	}
	h.log.Info().Str("employee", string(id)).Msg("employee deleted with shifts")
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SHIFT HANDLERS
// =============================================================================

// ListShifts returns shifts, optionally narrowed to the week that
// contains ?week=YYYY-MM-DD.
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	var (
		shifts []schedule.Shift
		err    error
	)
	if ref := r.URL.Query().Get("week"); ref != "" {
		date, perr := schedule.ParseDate(ref)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "Invalid week parameter", perr)
			return
		}
		week := schedule.WeekOf(date)
		shifts, err = h.Store.ListShiftsInRange(r.Context(), week.Start, week.End())
	} else {
		shifts, err = h.Store.ListShifts(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shifts", err)
		return
	}

	dtos := make([]ShiftDTO, len(shifts))
	for i, s := range shifts {
		dtos[i] = toShiftDTO(s)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetShift returns a single shift.
func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	id := schedule.ShiftID(chi.URLParam(r, "id"))
	shift, err := h.Store.GetShift(r.Context(), id)
	if err != nil {
		writeStoreError(w, "Failed to get shift", err)
		return
	}
	writeJSON(w, http.StatusOK, toShiftDTO(*shift))
}

// CreateShift schedules a shift after checking it against the
// employee's other shifts on the same date. Overlaps reject the save
// with 422; short breaks save anyway and come back as warnings.
func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}
	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	shift := schedule.Shift{
		EmployeeID: schedule.EmployeeID(req.EmployeeID),
		Date:       date,
		Start:      req.Start,
		End:        req.End,
		Role:       schedule.Role(req.Role),
		Notes:      req.Notes,
	}

	result, err := h.checkConflicts(r, shift, "")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid shift times", err)
		return
	}
	if !result.IsValid() {
		writeJSON(w, http.StatusUnprocessableEntity, ConflictResponse{
			Errors:   result.Errors,
			Warnings: result.Warnings,
		})
		return
	}

	created, err := h.Store.CreateShift(r.Context(), shift)
	if err != nil {
		writeStoreError(w, "Failed to create shift", err)
		return
	}

	h.log.Info().
		Str("shift", string(created.ID)).
		Str("employee", string(created.EmployeeID)).
		Str("date", created.Date.String()).
		Msg("shift scheduled")
	writeJSON(w, http.StatusCreated, ShiftResponse{
		Shift:    toShiftDTO(created),
		Warnings: result.Warnings,
	})
}

// UpdateShift applies a partial update, re-running the conflict check
// with the merged values.
func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	id := schedule.ShiftID(chi.URLParam(r, "id"))

	var req UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	current, err := h.Store.GetShift(r.Context(), id)
	if err != nil {
		writeStoreError(w, "Failed to update shift", err)
		return
	}

	// Merge for conflict checking before writing anything.
	merged := *current
	patch := schedule.ShiftPatch{
		Start: req.Start,
		End:   req.End,
		Notes: req.Notes,
	}
	if req.EmployeeID != nil {
		eid := schedule.EmployeeID(*req.EmployeeID)
		patch.EmployeeID = &eid
		merged.EmployeeID = eid
	}
	if req.Date != nil {
		date, perr := schedule.ParseDate(*req.Date)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "Invalid date", perr)
			return
		}
		patch.Date = &date
		merged.Date = date
	}
	if req.Start != nil {
		merged.Start = *req.Start
	}
	if req.End != nil {
		merged.End = *req.End
	}
	if req.Role != nil {
		role := schedule.Role(*req.Role)
		patch.Role = &role
		merged.Role = role
	}

	result, err := h.checkConflicts(r, merged, id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid shift times", err)
		return
	}
	if !result.IsValid() {
		writeJSON(w, http.StatusUnprocessableEntity, ConflictResponse{
			Errors:   result.Errors,
			Warnings: result.Warnings,
		})
		return
	}

	updated, err := h.Store.UpdateShift(r.Context(), id, patch)
	if err != nil {
		writeStoreError(w, "Failed to update shift", err)
		return
	}
	writeJSON(w, http.StatusOK, ShiftResponse{
		Shift:    toShiftDTO(*updated),
		Warnings: result.Warnings,
	})
}

// DeleteShift removes a shift.
func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := schedule.ShiftID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteShift(r.Context(), id); err != nil {
		writeStoreError(w, "Failed to delete shift", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// checkConflicts validates a candidate shift against the employee's
// other shifts on the same date. exclude skips the shift being updated
// so it does not conflict with itself.
func (h *Handler) checkConflicts(r *http.Request, candidate schedule.Shift, exclude schedule.ShiftID) (schedule.ValidationResult, error) {
	sameDay, err := h.Store.ListShiftsInRange(r.Context(), candidate.Date, candidate.Date)
	if err != nil {
		return schedule.ValidationResult{}, err
	}
	var existing []schedule.Shift
	for _, s := range sameDay {
		if s.EmployeeID == candidate.EmployeeID && s.ID != exclude {
			existing = append(existing, s)
		}
	}
	return schedule.ValidateShift(candidate.Start, candidate.End, existing)
}

// =============================================================================
// WEEK HANDLERS
// =============================================================================

// WeekSummary returns the cost and compliance dashboard for the week
// containing {date}.
func (h *Handler) WeekSummary(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.summarizeWeek(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toWeekSummaryDTO(summary))
}

// WeekAlerts returns just the compliance alerts for the week.
func (h *Handler) WeekAlerts(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.summarizeWeek(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"alerts":     toAlertDTOs(summary.Alerts),
		"alertBadge": summary.AlertBadge,
	})
}

func (h *Handler) summarizeWeek(w http.ResponseWriter, r *http.Request) (schedule.WeekSummary, bool) {
	date, err := schedule.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return schedule.WeekSummary{}, false
	}
	week := schedule.WeekOf(date)

	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return schedule.WeekSummary{}, false
	}
	shifts, err := h.Store.ListShiftsInRange(r.Context(), week.Start, week.End())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shifts", err)
		return schedule.WeekSummary{}, false
	}

	summary, err := schedule.Summarize(employees, shifts, week.Start)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to summarize week", err)
		return schedule.WeekSummary{}, false
	}
	if len(summary.Orphaned) > 0 {
		h.log.Warn().
			Int("count", len(summary.Orphaned)).
			Str("week", week.Start.String()).
			Msg("orphaned shifts excluded from summary")
	}
	return summary, true
}

// =============================================================================
// EXPORT HANDLERS
// =============================================================================

// ExportErgani streams the week's ERGANI CSV.
func (h *Handler) ExportErgani(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("week")
	if ref == "" {
		writeError(w, http.StatusBadRequest, "Missing week parameter", nil)
		return
	}
	date, err := schedule.ParseDate(ref)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid week parameter", err)
		return
	}
	week := schedule.WeekOf(date)

	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}
	shifts, err := h.Store.ListShiftsInRange(r.Context(), week.Start, week.End())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shifts", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(week)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(export.Ergani(employees, shifts, week))
}

// Labels returns the Greek display labels.
func (h *Handler) Labels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, labels())
}

// =============================================================================
// HELPERS
// =============================================================================

func toWeekdays(days []string) []schedule.Weekday {
	out := make([]schedule.Weekday, len(days))
	for i, d := range days {
		out[i] = schedule.Weekday(d)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeStoreError maps domain errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, message string, err error) {
	switch {
	case schedule.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case errors.Is(err, schedule.ErrUnknownEmployee):
		writeError(w, http.StatusBadRequest, message, err)
	case schedule.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
