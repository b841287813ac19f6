// Package config handles configuration loading and merging for jscheck.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--format, --jobs, --theme, --no-color, --debug, --exclude)
//  2. Environment variables (JSCHECK_FORMAT, JSCHECK_JOBS, JSCHECK_THEME,
//     JSCHECK_NO_COLOR, NO_COLOR, JSCHECK_DEBUG, JSCHECK_EXCLUDE)
//  3. YAML config file (.jscheck.yaml in local directory or ~/.config/jscheck/.jscheck.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
// The exclude list is replaced as a whole, never merged across sources.
//
// The config file is located with --config, then JSCHECK_CONFIG, then the two
// default locations. A file named explicitly must exist; the default locations
// are optional.
//
// # Environment Variables
//
//   - JSCHECK_FORMAT: output format (text, terminal, json, sarif)
//   - JSCHECK_JOBS: number of files checked at once
//   - JSCHECK_THEME: terminal theme (default, orca, mono)
//   - JSCHECK_NO_COLOR or NO_COLOR: set to "true" or "1" to disable colors
//   - JSCHECK_DEBUG: set to "true" or "1" to enable debug logging, "false" or
//     "0" to disable it over the config file
//   - JSCHECK_EXCLUDE: comma-separated paths, relative to the repository root,
//     left out when directories or --modified are expanded
//
// Boolean variables are parsed with strconv.ParseBool; unparseable values are
// ignored as if unset.
//
// Lint rule options are fixed and cannot be configured.
package config
