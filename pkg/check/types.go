// Package check reads and writes lintkit-check documents, a small JSON format
// for lint results: an overall status, summary metrics and one item per
// finding.
package check

// Report represents a lintkit-check document.
type Report struct {
	Schema  string   `json:"$schema"`
	Tool    string   `json:"tool"`
	Status  string   `json:"status"` // "pass", "fail"
	Summary string   `json:"summary"`
	Metrics []Metric `json:"metrics,omitempty"`
	Items   []Item   `json:"items,omitempty"`
}

// Metric represents a single metric measurement.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// Item represents a single finding.
type Item struct {
	Severity string `json:"severity"` // "error"
	Label    string `json:"label"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Message  string `json:"message,omitempty"`
}

// StatusPass indicates the check passed with no issues.
const StatusPass = "pass"

// StatusFail indicates the check failed.
const StatusFail = "fail"

// SeverityError indicates an error-level item.
const SeverityError = "error"
