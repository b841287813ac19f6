package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/dkoosis/jscheck/internal/filter"
	"github.com/dkoosis/jscheck/internal/runner"
	"github.com/dkoosis/jscheck/pkg/check"
	"github.com/dkoosis/jscheck/pkg/lint"
)

// JSON collects every result into one lintkit-check document written by Finish.
type JSON struct {
	w      io.Writer
	report *check.Report
}

// NewJSON creates a JSON renderer.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w, report: check.NewReport(ToolName)}
}

// File adds an item per surviving diagnostic.
func (j *JSON) File(res filter.FileResult) error {
	for _, d := range res.Diagnostics {
		switch d := d.(type) {
		case lint.Finding:
			j.report.AddItem(string(d.Kind), res.RelPath, d.Line, d.Column, d.Reason)
		case lint.GaveUp:
			j.report.AddItem(GiveUpRule, res.RelPath, 0, 0, "JSLint giving up")
		}
	}
	return nil
}

// Finish sets the summary and metrics and writes the document. Besides the
// file counts there is one "rule:<label>" metric per label, in label order.
func (j *JSON) Finish(out runner.Outcome) error {
	total := len(out.Results)
	if out.Passed() {
		j.report.Status = check.StatusPass
		j.report.Summary = plural(total, "file") + " passed"
	} else {
		j.report.Status = check.StatusFail
		j.report.Summary = fmt.Sprintf("%d of %s failed", out.Failed, plural(total, "file"))
	}
	j.report.AddMetric("files", float64(total), "")
	j.report.AddMetric("failed", float64(out.Failed), "")
	stats := check.ComputeStats(j.report)
	j.report.AddMetric("messages", float64(stats.TotalItems), "")
	labels := make([]string, 0, len(stats.ByLabel))
	for label := range stats.ByLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		j.report.AddMetric("rule:"+label, float64(stats.ByLabel[label]), "")
	}
	return check.Write(j.w, j.report)
}
