/*
 * ergani.go - ERGANI CSV EXPORT
 *
 * PURPOSE: Renders a week of shifts as a CSV file in the layout the
 * Greek ERGANI labour-registry upload expects. The file is UTF-8 with
 * a BOM so spreadsheet tools detect the Greek column headers, and
 * every field is quoted regardless of content.
 *
 * The tax-number column (ΑΦΜ) is emitted empty; the roster does not
 * hold tax ids and the registry accepts the column blank for drafts.
 *
 * SEE ALSO: schedule/week.go (week window), api/handlers.go (the
 * /api/export/ergani endpoint that serves this).
 */

package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/taverna/shift-engine/schedule"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// erganiHeader is the fixed column row: tax id, last name, first
	// name, date, start time, end time, shift type.
	erganiHeader = "ΑΦΜ,Επώνυμο,Όνομα,Ημερομηνία,Ώρα Έναρξης,Ώρα Λήξης,Τύπος"

	// shiftTypeRegular marks a plain scheduled shift. Other ERGANI
	// types (overtime declarations, on-call) are out of scope here.
	shiftTypeRegular = "Κανονική"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// =============================================================================
// EXPORT
// =============================================================================

// Filename returns the download name for a week's export,
// e.g. "ergani_2026-03-02.csv".
func Filename(week schedule.Week) string {
	return fmt.Sprintf("ergani_%s.csv", week.Start)
}

// Ergani renders the CSV body for every shift inside the week that
// belongs to a known employee. Shifts referencing a missing employee
// are silently skipped; rows keep the order of the shifts slice.
func Ergani(employees []schedule.Employee, shifts []schedule.Shift, week schedule.Week) []byte {
	byID := make(map[schedule.EmployeeID]schedule.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	buf.WriteString(erganiHeader)
	buf.WriteByte('\n')

	for _, shift := range shifts {
		if !week.Contains(shift.Date) {
			continue
		}
		emp, ok := byID[shift.EmployeeID]
		if !ok {
			continue
		}
		writeRow(&buf, "", emp.LastName, emp.FirstName, shift.Date.String(), shift.Start, shift.End, shiftTypeRegular)
	}
	return buf.Bytes()
}

// writeRow quotes every field unconditionally. The registry's import
// tooling expects quoted cells, so we do not reach for encoding/csv,
// which only quotes when it has to.
func writeRow(buf *bytes.Buffer, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}
