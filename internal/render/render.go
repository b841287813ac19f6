// Package render writes per-file results and the final outcome in one of
// jscheck's output formats.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dkoosis/jscheck/internal/filter"
	"github.com/dkoosis/jscheck/internal/runner"
)

// Output formats.
const (
	FormatText     = "text"
	FormatTerminal = "terminal"
	FormatJSON     = "json"
	FormatSARIF    = "sarif"
)

// ToolName identifies jscheck in machine-readable output.
const ToolName = "jscheck"

// GiveUpRule labels the giving-up marker in machine-readable output.
const GiveUpRule = "giving-up"

// Renderer receives results in input order, then the outcome once.
type Renderer interface {
	File(res filter.FileResult) error
	Finish(out runner.Outcome) error
}

// Options configures New.
type Options struct {
	Theme   string
	Color   bool
	Version string
}

// ValidFormat reports whether name is a known output format.
func ValidFormat(name string) bool {
	switch name {
	case FormatText, FormatTerminal, FormatJSON, FormatSARIF:
		return true
	}
	return false
}

// New returns the renderer for format writing to w.
func New(format string, w io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatText:
		return NewText(w), nil
	case FormatTerminal:
		r := lipgloss.NewRenderer(w)
		if !opts.Color {
			r.SetColorProfile(termenv.Ascii)
		}
		return NewTerminal(w, ThemeByName(opts.Theme, r)), nil
	case FormatJSON:
		return NewJSON(w), nil
	case FormatSARIF:
		return NewSARIF(w, opts.Version), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
