// Package env decides which runtime a JavaScript file targets and which
// globals it may use without declaring them.
package env

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/dkoosis/jscheck/pkg/lint"
)

// Kind is the execution environment a file belongs to.
type Kind int

const (
	// KindBackendServer is Node.js code with no extra globals.
	KindBackendServer Kind = iota
	// KindFrontendBrowser is code loaded by the web app in a browser.
	KindFrontendBrowser
	// KindBrowserTestHarness is Node.js code driving a browser through casper.
	KindBrowserTestHarness
)

func (k Kind) String() string {
	switch k {
	case KindFrontendBrowser:
		return "frontend-browser"
	case KindBrowserTestHarness:
		return "backend-browser-test-harness"
	default:
		return "backend-server"
	}
}

// Path fragments that select an environment.
const (
	FrontendDir    = "static/js/"
	TestHarnessDir = "zerver/tests/frontend/"
)

// harnessGlobals are injected by casper; $ and the DOM names are used inside
// casper.evaluate callbacks.
var harnessGlobals = []string{"casper", "$", "document", "window", "set_global", "add_dependencies"}

// Profile is the per-file environment. It is never modified after Classify
// returns it.
type Profile struct {
	Kind    Kind
	Browser bool
	Node    bool
	globals []string
}

// Globals returns the predeclared global names for the profile.
func (p Profile) Globals() []string {
	return slices.Clone(p.globals)
}

// Options returns base with the environment fields set for this profile.
func (p Profile) Options(base lint.Options) lint.Options {
	return base.WithEnvironment(p.Browser, p.Node, p.globals)
}

// Classify returns the profile for the file at path.
func Classify(path string) Profile {
	p := filepath.ToSlash(path)
	switch {
	case strings.Contains(p, FrontendDir):
		return Profile{Kind: KindFrontendBrowser, Browser: true, globals: FrontendGlobals()}
	case strings.Contains(p, TestHarnessDir):
		return Profile{Kind: KindBrowserTestHarness, Node: true, globals: slices.Clone(harnessGlobals)}
	default:
		return Profile{Kind: KindBackendServer, Node: true, globals: []string{}}
	}
}

// HarnessGlobals returns the globals predeclared for browser test harness files.
func HarnessGlobals() []string {
	return slices.Clone(harnessGlobals)
}
