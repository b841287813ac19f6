// Package lister turns command-line targets into the git-tracked JavaScript
// files to check.
package lister

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// GitFunc runs git with args in dir and returns its standard output.
type GitFunc func(ctx context.Context, dir string, args ...string) ([]byte, error)

// Query selects files.
type Query struct {
	// Targets are files and directories passed to git ls-files. Empty means
	// the whole working directory.
	Targets []string
	// Modified keeps only files with unstaged changes (git ls-files -m).
	Modified bool
	// Exclude lists files or directories, relative to the repository root,
	// that are dropped from listings.
	Exclude []string
}

// Lister lists tracked JavaScript files.
type Lister struct {
	dir    string
	git    GitFunc
	logger *zap.Logger
}

// Option configures a Lister.
type Option func(*Lister)

// WithDir sets the directory git runs in and listed paths are relative to.
// The default is the process's working directory.
func WithDir(dir string) Option {
	return func(l *Lister) { l.dir = dir }
}

// WithGit replaces the git command runner.
func WithGit(git GitFunc) Option {
	return func(l *Lister) { l.git = git }
}

// WithLogger sets the debug logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Lister) { l.logger = logger }
}

// New returns a Lister.
func New(opts ...Option) *Lister {
	l := &Lister{git: runGit, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func runGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("git %s: %w: %s", args[0], err, bytes.TrimSpace(exitErr.Stderr))
		}
		return nil, fmt.Errorf("git %s: %w", args[0], err)
	}
	return out, nil
}

// Expand returns args with every directory replaced by the tracked
// JavaScript files under it. Other arguments are kept as given, so a missing
// file still reaches the checker and fails there. With q.Modified set, all
// args are handed to git and only modified JavaScript files are returned.
func (l *Lister) Expand(ctx context.Context, args []string, q Query) ([]string, error) {
	if q.Modified {
		q.Targets = args
		return l.List(ctx, q)
	}

	var out []string
	for _, arg := range args {
		info, err := os.Stat(l.path(arg))
		if err != nil || !info.IsDir() {
			out = append(out, arg)
			continue
		}
		q.Targets = []string{arg}
		files, err := l.List(ctx, q)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("expanded directory", zap.String("dir", arg), zap.Int("files", len(files)))
		out = append(out, files...)
	}
	return out, nil
}

// List returns the tracked JavaScript files selected by q, in git's order.
func (l *Lister) List(ctx context.Context, q Query) ([]string, error) {
	args := []string{"ls-files", "-z"}
	if q.Modified {
		args = append(args, "-m")
	}
	args = append(args, "--")
	args = append(args, q.Targets...)

	raw, err := l.git(ctx, l.dir, args...)
	if err != nil {
		return nil, err
	}

	excluded, err := l.excludedPaths(ctx, q.Exclude)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, f := range strings.Split(string(raw), "\x00") {
		if f == "" {
			continue
		}
		// Symlinks and deleted files are not checked.
		info, err := os.Lstat(l.path(f))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if isExcluded(l.abs(f), excluded) {
			l.logger.Debug("excluded", zap.String("file", f))
			continue
		}
		if !l.isJavaScript(f) {
			continue
		}
		files = append(files, f)
	}
	return files, nil
}

func (l *Lister) excludedPaths(ctx context.Context, exclude []string) ([]string, error) {
	if len(exclude) == 0 {
		return nil, nil
	}
	top, err := l.git(ctx, l.dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, err
	}
	root := strings.TrimSpace(string(top))
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	paths := make([]string, 0, len(exclude))
	for _, e := range exclude {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(e)))
	}
	return paths, nil
}

func isExcluded(abs string, excluded []string) bool {
	for _, e := range excluded {
		if abs == e || strings.HasPrefix(abs, e+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

var nodeShebang = regexp.MustCompile(`^#!.*\bnode`)

// isJavaScript reports whether f is a .js file or an extensionless script
// whose shebang runs node.
func (l *Lister) isJavaScript(f string) bool {
	if ext := filepath.Ext(f); ext != "" {
		return ext == ".js"
	}
	file, err := os.Open(l.path(f))
	if err != nil {
		l.logger.Debug("cannot read shebang", zap.String("file", f), zap.Error(err))
		return false
	}
	defer file.Close()
	line, _ := bufio.NewReader(file).ReadString('\n')
	return nodeShebang.MatchString(line)
}

func (l *Lister) path(f string) string {
	return filepath.Join(l.dir, filepath.FromSlash(f))
}

// abs resolves symlinked parent directories so paths compare equal to the
// repository root git reports.
func (l *Lister) abs(f string) string {
	abs, err := filepath.Abs(l.path(f))
	if err != nil {
		return l.path(f)
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return filepath.Join(dir, filepath.Base(abs))
	}
	return abs
}
