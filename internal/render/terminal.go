package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/jscheck/internal/filter"
	"github.com/dkoosis/jscheck/internal/runner"
	"github.com/dkoosis/jscheck/pkg/lint"
)

// Terminal renders the text layout with theme styling and a closing summary.
type Terminal struct {
	w     io.Writer
	theme Theme
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(w io.Writer, theme Theme) *Terminal {
	return &Terminal{w: w, theme: theme}
}

// File writes res if it failed.
func (t *Terminal) File(res filter.FileResult) error {
	if res.Passed {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(t.theme.Path.Render(res.RelPath))
	sb.WriteString("\n")
	for i, d := range res.Diagnostics {
		switch d := d.(type) {
		case lint.Finding:
			sb.WriteString("    ")
			sb.WriteString(t.theme.LineNo.Render(runewidth.FillLeft(strconv.Itoa(d.Line), 4)))
			sb.WriteString("  ")
			sb.WriteString(t.theme.Reason.Render(d.Reason))
		case lint.GaveUp:
			sb.WriteString(t.theme.GiveUp.Render(res.Messages[i]))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	_, err := io.WriteString(t.w, sb.String())
	return err
}

// Finish writes a one-line summary.
func (t *Terminal) Finish(out runner.Outcome) error {
	total := len(out.Results)
	var line string
	if out.Passed() {
		line = t.theme.Success.Render(fmt.Sprintf("%s %s passed", t.theme.Icons.Pass, plural(total, "file")))
	} else {
		line = t.theme.Error.Render(fmt.Sprintf("%s %d of %s failed", t.theme.Icons.Fail, out.Failed, plural(total, "file")))
	}
	_, err := fmt.Fprintln(t.w, line)
	return err
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
