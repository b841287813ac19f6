package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/jscheck/pkg/lint"
)

func TestClassify_Frontend(t *testing.T) {
	paths := []string{
		"static/js/compose.js",
		"./static/js/sub/dir/util.js",
		"/home/zulip/deployments/current/static/js/zulip.js",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			p := Classify(path)
			assert.Equal(t, KindFrontendBrowser, p.Kind)
			assert.True(t, p.Browser)
			assert.False(t, p.Node)
			assert.ElementsMatch(t, FrontendGlobals(), p.Globals())
			assert.Len(t, p.Globals(), frontendGlobalCount)
			for _, helper := range []string{"casper", "set_global", "add_dependencies"} {
				assert.NotContains(t, p.Globals(), helper)
			}
		})
	}
}

func TestClassify_TestHarness(t *testing.T) {
	for _, path := range []string{
		"zerver/tests/frontend/casper_tests/00-realm-creation.js",
		"/srv/zulip/zerver/tests/frontend/common.js",
	} {
		t.Run(path, func(t *testing.T) {
			p := Classify(path)
			assert.Equal(t, KindBrowserTestHarness, p.Kind)
			assert.False(t, p.Browser)
			assert.True(t, p.Node)
			assert.Equal(t, []string{"casper", "$", "document", "window", "set_global", "add_dependencies"}, p.Globals())
		})
	}
}

func TestClassify_BackendServerDefault(t *testing.T) {
	for _, path := range []string{
		"tools/jslint/check-all.js",
		"zerver/tests/frontend.js",
		"static/jsx/foo.js",
		"",
	} {
		t.Run(path, func(t *testing.T) {
			p := Classify(path)
			assert.Equal(t, KindBackendServer, p.Kind)
			assert.True(t, p.Node)
			assert.False(t, p.Browser)
			assert.Empty(t, p.Globals())
		})
	}
}

func TestClassify_FrontendWinsOverHarness(t *testing.T) {
	p := Classify("zerver/tests/frontend/static/js/x.js")
	assert.Equal(t, KindFrontendBrowser, p.Kind)
}

func TestProfile_GlobalsAreCopies(t *testing.T) {
	p := Classify("zerver/tests/frontend/a.js")
	g := p.Globals()
	g[0] = "mutated"
	assert.Equal(t, "casper", p.Globals()[0])
	assert.Equal(t, "casper", Classify("zerver/tests/frontend/b.js").Globals()[0])
}

func TestProfile_Options(t *testing.T) {
	base := lint.DefaultOptions()

	front := Classify("static/js/a.js").Options(base)
	assert.True(t, front.Browser)
	assert.False(t, front.Node)
	assert.True(t, front.IsPredefined("jQuery"))
	assert.True(t, front.IsPredefined("process_message_for_recent_subjects"))

	server := Classify("puppet/app.js").Options(base)
	assert.False(t, server.Browser)
	assert.True(t, server.Node)
	assert.Empty(t, server.Predef())

	// base is a value; the per-file overrides never leak back into it.
	assert.False(t, base.Browser)
	assert.False(t, base.Node)
	assert.Empty(t, base.Predef())
}

// frontendGlobalCount is the size of the curated browser global list.
const frontendGlobalCount = 124

func TestFrontendGlobals(t *testing.T) {
	names := FrontendGlobals()
	require.Len(t, names, frontendGlobalCount)

	seen := map[string]bool{}
	for _, n := range names {
		assert.NotEmpty(t, n)
		assert.False(t, seen[n], "duplicate global %q", n)
		seen[n] = true
	}

	// First and last of each source group.
	for _, name := range []string{
		"$", "marked", "module", "bridge", "page_params",
		"status_classes", "password_quality", "csrf_token",
		"compose", "channel", "colorspace", "tutorial", "templates",
		"alert_words", "fenced_code", "echo", "localstorage",
		"all_msg_list", "viewport", "insert_new_messages",
		"process_message_for_recent_subjects",
	} {
		assert.True(t, seen[name], "missing global %q", name)
	}
	for _, name := range HarnessGlobals() {
		if name == "$" {
			continue
		}
		assert.False(t, seen[name], "harness global %q leaked into frontend set", name)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "frontend-browser", KindFrontendBrowser.String())
	assert.Equal(t, "backend-server", KindBackendServer.String())
	assert.Equal(t, "backend-browser-test-harness", KindBrowserTestHarness.String())
}
