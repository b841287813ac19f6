package render

import (
	"io"
	"strconv"

	"github.com/dkoosis/jscheck/internal/filter"
	"github.com/dkoosis/jscheck/internal/runner"
	"github.com/dkoosis/jscheck/pkg/lint"
	"github.com/dkoosis/jscheck/pkg/sarif"
)

const levelError = "error"

// SARIF collects every result into one SARIF 2.1.0 run written by Finish.
type SARIF struct {
	w io.Writer
	b *sarif.Builder
}

// NewSARIF creates a SARIF renderer.
func NewSARIF(w io.Writer, version string) *SARIF {
	return &SARIF{w: w, b: sarif.NewBuilder(ToolName, version)}
}

// File records the artifact with its environment and a result per
// surviving diagnostic.
func (s *SARIF) File(res filter.FileResult) error {
	s.b.AddArtifact(res.RelPath, sarif.Properties{"environment": res.Profile.Kind.String()})
	for _, d := range res.Diagnostics {
		switch d := d.(type) {
		case lint.Finding:
			s.b.AddRule(string(d.Kind), d.Kind.Template())
			s.b.AddResult(string(d.Kind), levelError, d.Reason, res.RelPath, d.Line, d.Column)
		case lint.GaveUp:
			s.b.AddRule(GiveUpRule, "Too many problems; checking stopped.")
			s.b.AddResult(GiveUpRule, levelError, "JSLint giving up", res.RelPath, 0, 0)
		}
	}
	return nil
}

// Finish writes the document.
func (s *SARIF) Finish(out runner.Outcome) error {
	s.b.SetProperty("filesChecked", strconv.Itoa(len(out.Results)))
	s.b.SetProperty("filesFailed", strconv.Itoa(out.Failed))
	_, err := s.b.WriteTo(s.w)
	return err
}
