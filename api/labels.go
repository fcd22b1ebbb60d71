/*
labels.go - Greek display labels for enum values

PURPOSE:
  The frontend renders roles, contract types and weekdays in Greek.
  Serving the label maps from the API keeps the wording in one place
  instead of duplicating it in every client.

SEE ALSO:
  - server.go: Mounts GET /api/labels
*/
package api

import "github.com/taverna/shift-engine/schedule"

var roleLabels = map[schedule.Role]string{
	schedule.RoleWaiter:  "Σερβιτόρος",
	schedule.RoleBarista: "Barista",
	schedule.RoleKitchen: "Κουζίνα",
	schedule.RoleCashier: "Ταμείο",
	schedule.RoleManager: "Υπεύθυνος",
}

var contractLabels = map[schedule.Contract]string{
	schedule.ContractFull:     "Πλήρης",
	schedule.ContractPart:     "Μερική",
	schedule.ContractSeasonal: "Εποχιακή",
}

var weekdayLabels = map[schedule.Weekday]string{
	schedule.Monday:    "Δευ",
	schedule.Tuesday:   "Τρι",
	schedule.Wednesday: "Τετ",
	schedule.Thursday:  "Πεμ",
	schedule.Friday:    "Παρ",
	schedule.Saturday:  "Σαβ",
	schedule.Sunday:    "Κυρ",
}

// LabelsDTO is the payload of GET /api/labels.
type LabelsDTO struct {
	Roles     map[string]string `json:"roles"`
	Contracts map[string]string `json:"contracts"`
	Weekdays  map[string]string `json:"weekdays"`
}

func labels() LabelsDTO {
	out := LabelsDTO{
		Roles:     make(map[string]string, len(roleLabels)),
		Contracts: make(map[string]string, len(contractLabels)),
		Weekdays:  make(map[string]string, len(weekdayLabels)),
	}
	for k, v := range roleLabels {
		out.Roles[string(k)] = v
	}
	for k, v := range contractLabels {
		out.Contracts[string(k)] = v
	}
	for k, v := range weekdayLabels {
		out.Weekdays[string(k)] = v
	}
	return out
}
