package render

import (
	"bufio"
	"io"

	"github.com/dkoosis/jscheck/internal/filter"
	"github.com/dkoosis/jscheck/internal/runner"
)

// Text prints each failing file as its relative path, one line per message
// and a blank line. Passing files print nothing.
type Text struct {
	w *bufio.Writer
}

// NewText creates a text renderer.
func NewText(w io.Writer) *Text {
	return &Text{w: bufio.NewWriter(w)}
}

// File writes res if it failed.
func (t *Text) File(res filter.FileResult) error {
	if res.Passed {
		return nil
	}
	t.w.WriteString(res.RelPath)
	t.w.WriteByte('\n')
	for _, msg := range res.Messages {
		t.w.WriteString(msg)
		t.w.WriteByte('\n')
	}
	t.w.WriteByte('\n')
	return t.w.Flush()
}

// Finish writes nothing; the exit code carries the outcome.
func (t *Text) Finish(runner.Outcome) error {
	return t.w.Flush()
}
