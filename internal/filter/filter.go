// Package filter runs the checker on one file, drops known false positives
// and formats what is left.
package filter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/dkoosis/jscheck/internal/env"
	"github.com/dkoosis/jscheck/pkg/lint"
)

// GiveUpLine is printed in place of the checker's giving-up marker.
const GiveUpLine = "          (JSLint giving up)"

// lineWidth is the minimum width of the line-number column. Line numbers of
// 10000 and above overflow it and push the reason one column right.
const lineWidth = 4

// FormatLine formats a surviving finding for text output.
func FormatLine(line int, reason string) string {
	return "    " + runewidth.FillLeft(strconv.Itoa(line), lineWidth) + "  " + reason
}

// ReadError is returned when an input file cannot be read. It ends the run.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// FileResult is the outcome of checking one file.
type FileResult struct {
	Path     string
	RelPath  string
	Profile  env.Profile
	Messages []string
	// Diagnostics holds what survived suppression, in checker order.
	Diagnostics []lint.Diagnostic
	Passed      bool
}

// Filter checks files and applies the exception table.
type Filter struct {
	checker    lint.Checker
	base       lint.Options
	exceptions Exceptions
	workDir    string
	readFile   func(string) ([]byte, error)
	logger     *zap.Logger
}

// Option configures a Filter.
type Option func(*Filter)

// WithExceptions replaces the default exception table.
func WithExceptions(e Exceptions) Option {
	return func(f *Filter) { f.exceptions = e }
}

// WithBaseOptions replaces lint.DefaultOptions as the fixed rule set.
func WithBaseOptions(o lint.Options) Option {
	return func(f *Filter) { f.base = o }
}

// WithWorkDir sets the directory reported paths are made relative to.
func WithWorkDir(dir string) Option {
	return func(f *Filter) { f.workDir = dir }
}

// WithLogger sets the debug logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Filter) { f.logger = l }
}

// WithReadFile replaces os.ReadFile.
func WithReadFile(read func(string) ([]byte, error)) Option {
	return func(f *Filter) { f.readFile = read }
}

// New returns a Filter using checker. The working directory defaults to the
// process's current directory.
func New(checker lint.Checker, opts ...Option) *Filter {
	f := &Filter{
		checker:    checker,
		base:       lint.DefaultOptions(),
		exceptions: DefaultExceptions(),
		readFile:   os.ReadFile,
		logger:     zap.NewNop(),
	}
	if wd, err := os.Getwd(); err == nil {
		f.workDir = wd
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// RunFile checks the file at path under profile.
func (f *Filter) RunFile(ctx context.Context, path string, profile env.Profile) (FileResult, error) {
	res := FileResult{
		Path:    path,
		RelPath: f.relative(path),
		Profile: profile,
	}

	src, err := f.readFile(path)
	if err != nil {
		return res, &ReadError{Path: path, Err: err}
	}

	checked, err := f.checker.Check(ctx, src, profile.Options(f.base))
	if err != nil {
		return res, fmt.Errorf("check %s: %w", path, err)
	}

	if !checked.OK {
		for _, d := range checked.Diagnostics {
			switch d := d.(type) {
			case lint.GaveUp:
				res.Messages = append(res.Messages, GiveUpLine)
				res.Diagnostics = append(res.Diagnostics, d)
			case lint.Finding:
				if f.exceptions.Suppress(d) {
					f.logger.Debug("suppressed",
						zap.String("file", res.RelPath),
						zap.Int("line", d.Line),
						zap.String("kind", string(d.Kind)))
					continue
				}
				res.Messages = append(res.Messages, FormatLine(d.Line, d.Reason))
				res.Diagnostics = append(res.Diagnostics, d)
			}
		}
	}

	res.Passed = len(res.Messages) == 0
	f.logger.Debug("checked",
		zap.String("file", res.RelPath),
		zap.Stringer("env", profile.Kind),
		zap.Int("messages", len(res.Messages)))
	return res, nil
}

func (f *Filter) relative(path string) string {
	if f.workDir == "" {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(f.workDir, abs)
	if err != nil {
		return path
	}
	return rel
}
