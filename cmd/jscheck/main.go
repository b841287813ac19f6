// jscheck lints JavaScript files and prints the problems that are not known
// false positives.
//
// Usage:
//
//	jscheck static/js/*.js zerver/tests/frontend/*.js
//	jscheck --format sarif --jobs 8 . > jscheck.sarif
//	jscheck --modified --exclude static/third
//
// A directory argument expands to the git-tracked JavaScript files under it:
// .js files and extensionless scripts with a node shebang. --modified checks
// only tracked JavaScript files with unstaged changes, in the arguments or in
// the whole repository when none are given.
//
// Each file is checked with globals chosen from its path: browser globals
// under static/js/, browser plus test-harness helpers under
// zerver/tests/frontend/, server globals elsewhere.
//
// Exit codes: 0 when every file passes, 1 when any file has problems, 2 on
// usage, configuration or read errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dkoosis/jscheck/internal/config"
	"github.com/dkoosis/jscheck/internal/filter"
	"github.com/dkoosis/jscheck/internal/lister"
	"github.com/dkoosis/jscheck/internal/logging"
	"github.com/dkoosis/jscheck/internal/render"
	"github.com/dkoosis/jscheck/internal/runner"
	"github.com/dkoosis/jscheck/internal/version"
	"github.com/dkoosis/jscheck/pkg/jslint"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("jscheck", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: jscheck [flags] <file|dir> [<file|dir> ...]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	var cli config.CliFlags
	fs.StringVarP(&cli.Format, "format", "f", config.DefaultFormat, "Output format: text, terminal, json, sarif")
	fs.IntVarP(&cli.Jobs, "jobs", "j", config.DefaultJobs, "Number of files to check at once")
	fs.StringVar(&cli.Theme, "theme", config.DefaultTheme, "Terminal theme: default, orca, mono")
	fs.BoolVar(&cli.NoColor, "no-color", false, "Disable colors in terminal output")
	fs.StringVar(&cli.ConfigPath, "config", "", "Path to config file (default .jscheck.yaml)")
	fs.BoolVarP(&cli.Debug, "debug", "v", false, "Log debug output to stderr")
	fs.StringSliceVar(&cli.Exclude, "exclude", nil, "Paths relative to the repository root to leave out of directory expansion (repeatable)")
	modified := fs.BoolP("modified", "m", false, "Check only tracked JavaScript files with unstaged changes")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return runner.ExitOK
		}
		return runner.ExitError
	}
	if *showVersion {
		fmt.Fprintln(stdout, version.String("jscheck"))
		return runner.ExitOK
	}

	cli.FormatSet = fs.Changed("format")
	cli.JobsSet = fs.Changed("jobs")
	cli.ThemeSet = fs.Changed("theme")
	cli.NoColorSet = fs.Changed("no-color")
	cli.DebugSet = fs.Changed("debug")
	cli.ExcludeSet = fs.Changed("exclude")

	cfg, err := config.Resolve(cli)
	if err != nil {
		fmt.Fprintf(stderr, "jscheck: %v\n", err)
		return runner.ExitError
	}

	logger := logging.New(cfg.Debug, stderr)
	defer func() { _ = logger.Sync() }()
	logger.Debug("config resolved",
		zap.String("file", cfg.ConfigFile),
		zap.String("format", cfg.Format),
		zap.String("format_source", cfg.FormatSource),
		zap.Int("jobs", cfg.Jobs),
		zap.String("jobs_source", cfg.JobsSource),
		zap.String("theme", cfg.Theme),
		zap.Bool("no_color", cfg.NoColor),
		zap.Strings("exclude", cfg.Exclude))

	paths, err := lister.New(lister.WithLogger(logger)).Expand(ctx, fs.Args(), lister.Query{
		Modified: *modified,
		Exclude:  cfg.Exclude,
	})
	if err != nil {
		fmt.Fprintf(stderr, "jscheck: %v\n", err)
		return runner.ExitError
	}

	r, err := render.New(cfg.Format, stdout, render.Options{
		Theme:   cfg.Theme,
		Color:   !cfg.NoColor && isTTYWriter(stdout),
		Version: version.Version,
	})
	if err != nil {
		fmt.Fprintf(stderr, "jscheck: %v\n", err)
		return runner.ExitError
	}

	f := filter.New(jslint.New(), filter.WithLogger(logger))
	out, err := runner.Run(ctx, paths, f, runner.Config{
		Jobs:   cfg.Jobs,
		Emit:   r.File,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "jscheck: %v\n", err)
		return runner.ExitError
	}
	if err := r.Finish(out); err != nil {
		fmt.Fprintf(stderr, "jscheck: %v\n", err)
		return runner.ExitError
	}

	logger.Debug("done", zap.Int("files", len(out.Results)), zap.Int("failed", out.Failed))
	return out.ExitCode()
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
