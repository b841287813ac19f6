package check

import (
	"encoding/json"
	"fmt"
	"io"
)

// NewReport returns an empty passing report for tool.
func NewReport(tool string) *Report {
	return &Report{Schema: SchemaID, Tool: tool, Status: StatusPass}
}

// AddItem appends an error-level item and marks the report failed.
func (r *Report) AddItem(label, file string, line, col int, message string) {
	r.Items = append(r.Items, Item{
		Severity: SeverityError,
		Label:    label,
		File:     file,
		Line:     line,
		Column:   col,
		Message:  message,
	})
	r.Status = StatusFail
}

// AddMetric appends a metric.
func (r *Report) AddMetric(name string, value float64, unit string) {
	r.Metrics = append(r.Metrics, Metric{Name: name, Value: value, Unit: unit})
}

// Write encodes the report as indented JSON.
func Write(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode check report: %w", err)
	}
	return nil
}
