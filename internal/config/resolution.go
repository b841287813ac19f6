package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dkoosis/jscheck/internal/render"
)

// Sources recorded in ResolvedConfig.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// Defaults.
const (
	DefaultFormat = render.FormatText
	DefaultJobs   = 1
	DefaultTheme  = render.ThemeDefault
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigPath string
	Format     string
	Jobs       int
	Theme      string
	NoColor    bool
	Debug      bool
	Exclude    []string

	// Flags to track if they were explicitly set by the user
	FormatSet  bool
	JobsSet    bool
	ThemeSet   bool
	NoColorSet bool
	DebugSet   bool
	ExcludeSet bool
}

// ResolvedConfig holds the final resolved configuration after applying all priority rules.
type ResolvedConfig struct {
	Format  string
	Jobs    int
	Theme   string
	NoColor bool
	Debug   bool
	Exclude []string

	// Resolution metadata (for debugging)
	ConfigFile    string
	FormatSource  string
	JobsSource    string
	ThemeSource   string
	NoColorSource string
	DebugSource   string
	ExcludeSource string
}

// Resolve resolves configuration from all sources with explicit priority order.
func Resolve(cli CliFlags) (*ResolvedConfig, error) {
	path := cli.ConfigPath
	if path == "" {
		path = os.Getenv("JSCHECK_CONFIG")
	}
	file, used, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{ConfigFile: used}

	resolved.Format, resolved.FormatSource = resolveString(
		cli.Format, cli.FormatSet, os.Getenv("JSCHECK_FORMAT"), file.Format, DefaultFormat)
	resolved.Theme, resolved.ThemeSource = resolveString(
		cli.Theme, cli.ThemeSet, os.Getenv("JSCHECK_THEME"), file.Theme, DefaultTheme)

	// Jobs: CLI > ENV > file > default
	switch {
	case cli.JobsSet:
		resolved.Jobs, resolved.JobsSource = cli.Jobs, SourceCLI
	case os.Getenv("JSCHECK_JOBS") != "":
		n, err := strconv.Atoi(os.Getenv("JSCHECK_JOBS"))
		if err != nil {
			return nil, fmt.Errorf("invalid JSCHECK_JOBS %q: %w", os.Getenv("JSCHECK_JOBS"), err)
		}
		resolved.Jobs, resolved.JobsSource = n, SourceEnv
	case file.Jobs != nil:
		resolved.Jobs, resolved.JobsSource = *file.Jobs, SourceFile
	default:
		resolved.Jobs, resolved.JobsSource = DefaultJobs, SourceDefault
	}

	// NoColor: CLI > ENV > file > default
	resolved.NoColorSource = SourceDefault
	if cli.NoColorSet {
		resolved.NoColor, resolved.NoColorSource = cli.NoColor, SourceCLI
	} else if env := getEnvBool("JSCHECK_NO_COLOR", "NO_COLOR"); env != nil {
		resolved.NoColor, resolved.NoColorSource = *env, SourceEnv
	} else if file.NoColor != nil {
		resolved.NoColor, resolved.NoColorSource = *file.NoColor, SourceFile
	}

	// Debug: CLI > ENV > file > default
	resolved.DebugSource = SourceDefault
	if cli.DebugSet {
		resolved.Debug, resolved.DebugSource = cli.Debug, SourceCLI
	} else if env := getEnvBool("JSCHECK_DEBUG"); env != nil {
		resolved.Debug, resolved.DebugSource = *env, SourceEnv
	} else if file.Debug != nil {
		resolved.Debug, resolved.DebugSource = *file.Debug, SourceFile
	}

	// Exclude: CLI > ENV > file > default. Lists replace, they do not merge.
	switch {
	case cli.ExcludeSet:
		resolved.Exclude, resolved.ExcludeSource = cli.Exclude, SourceCLI
	case os.Getenv("JSCHECK_EXCLUDE") != "":
		resolved.Exclude, resolved.ExcludeSource = splitList(os.Getenv("JSCHECK_EXCLUDE")), SourceEnv
	case file.Exclude != nil:
		resolved.Exclude, resolved.ExcludeSource = file.Exclude, SourceFile
	default:
		resolved.ExcludeSource = SourceDefault
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

func resolveString(cli string, cliSet bool, env string, file *string, def string) (string, string) {
	switch {
	case cliSet:
		return cli, SourceCLI
	case env != "":
		return env, SourceEnv
	case file != nil:
		return *file, SourceFile
	default:
		return def, SourceDefault
	}
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

func splitList(val string) []string {
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// validateResolvedConfig validates the resolved configuration and returns errors for invalid states.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	if !render.ValidFormat(cfg.Format) {
		return fmt.Errorf("invalid format %q from %s (must be: text, terminal, json, sarif)", cfg.Format, cfg.FormatSource)
	}
	if !render.ValidTheme(cfg.Theme) {
		return fmt.Errorf("invalid theme %q from %s (must be: default, orca, mono)", cfg.Theme, cfg.ThemeSource)
	}
	if cfg.Jobs < 1 {
		return fmt.Errorf("jobs must be positive, got %d from %s", cfg.Jobs, cfg.JobsSource)
	}
	return nil
}
