package check

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// SchemaID is the identifier for lintkit-check format.
const SchemaID = "lintkit-check"

// Read parses a lintkit-check report from an io.Reader.
func Read(r io.Reader) (*Report, error) {
	var report Report
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("decode check report: %w", err)
	}
	return validateReport(&report)
}

// ReadBytes parses a lintkit-check report from a byte slice.
func ReadBytes(data []byte) (*Report, error) {
	return Read(bytes.NewReader(data))
}

func validateReport(report *Report) (*Report, error) {
	if report.Schema != SchemaID {
		return nil, fmt.Errorf("invalid schema: expected %q, got %q", SchemaID, report.Schema)
	}
	return report, nil
}

// Stats counts a report's items.
type Stats struct {
	TotalItems int
	ByLabel    map[string]int
}

// ComputeStats counts the items of report in total and per label.
func ComputeStats(report *Report) Stats {
	stats := Stats{ByLabel: make(map[string]int)}
	for _, item := range report.Items {
		stats.TotalItems++
		stats.ByLabel[item.Label]++
	}
	return stats
}
