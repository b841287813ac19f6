package jslint

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/jscheck/pkg/lint"
)

func nodeOpts() lint.Options {
	return lint.DefaultOptions().WithEnvironment(false, true, nil)
}

func check(t *testing.T, src string, opts lint.Options) lint.Result {
	t.Helper()
	res, err := New().Check(context.Background(), []byte(src), opts)
	require.NoError(t, err)
	return res
}

func findings(res lint.Result) []lint.Finding {
	var out []lint.Finding
	for _, d := range res.Diagnostics {
		if f, ok := d.(lint.Finding); ok {
			out = append(out, f)
		}
	}
	return out
}

func kinds(res lint.Result) []lint.Kind {
	var out []lint.Kind
	for _, f := range findings(res) {
		out = append(out, f.Kind)
	}
	return out
}

func TestCheck_CleanSource(t *testing.T) {
	src := `var fs = require('fs');
var total = 0;

function add(a, b) {
    return a + b;
}

total = add(1, 2);
module.exports = { total: total };
`
	res := check(t, src, nodeOpts())
	assert.True(t, res.OK)
	assert.Empty(t, res.Diagnostics)
}

func TestCheck_MissingSemicolon(t *testing.T) {
	res := check(t, "var a = 1\nvar b = 2;\n", nodeOpts())
	require.False(t, res.OK)
	fs := findings(res)
	require.Len(t, fs, 1)
	assert.Equal(t, lint.KindMissingSemicolon, fs[0].Kind)
	assert.Equal(t, 1, fs[0].Line)
	assert.Equal(t, "Missing semicolon.", fs[0].Reason)
	assert.Equal(t, "Missing semicolon.", fs[0].Raw())
}

func TestCheck_ElseAfterReturn(t *testing.T) {
	src := `function pick(a) {
    if (a) {
        return 1;
    } else {
        return 2;
    }
}
`
	res := check(t, src, nodeOpts())
	fs := findings(res)
	require.Len(t, fs, 1)
	assert.Equal(t, lint.KindElseAfterReturn, fs[0].Kind)
	assert.Equal(t, 4, fs[0].Line)
	assert.Equal(t, "Unexpected 'else' after 'return'.", fs[0].Reason)
}

func TestCheck_ElseWithoutReturnIsFine(t *testing.T) {
	src := `function pick(a) {
    var r;
    if (a) {
        r = 1;
    } else {
        r = 2;
    }
    return r;
}
`
	assert.True(t, check(t, src, nodeOpts()).OK)
}

func TestCheck_TypeofCompare(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		wantA string
	}{
		{"string undefined", "var t = typeof x === 'undefined';\n", "undefined"},
		{"reversed operands", "var t = 'undefined' !== typeof x;\n", "undefined"},
		{"null literal", "var t = typeof x === null;\n", "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := findings(check(t, tt.src, nodeOpts()))
			require.Len(t, fs, 1, "typeof operand must not be reported as undefined")
			assert.Equal(t, lint.KindTypeofCompare, fs[0].Kind)
			assert.Equal(t, tt.wantA, fs[0].A)
			assert.Equal(t, "Unexpected 'typeof'. Use '===' to compare directly with "+tt.wantA+".", fs[0].Reason)
		})
	}
}

func TestCheck_TypeofStringCompareIsFine(t *testing.T) {
	res := check(t, "var t = typeof require === 'function';\n", nodeOpts())
	assert.True(t, res.OK)
}

func TestCheck_FunctionInLoop(t *testing.T) {
	src := `var i;
for (i = 0; i < 3; i += 1) {
    setTimeout(function () { return i; }, 0);
}
`
	fs := findings(check(t, src, nodeOpts()))
	require.Len(t, fs, 1)
	assert.Equal(t, lint.KindFunctionInLoop, fs[0].Kind)
	assert.Equal(t, 3, fs[0].Line)
}

func TestCheck_FunctionInsideFunctionInLoopIsReportedOnce(t *testing.T) {
	src := `var i;
for (i = 0; i < 3; i += 1) {
    setTimeout(function () {
        return [1].map(function (x) { return x; });
    }, 0);
}
`
	assert.Equal(t, []lint.Kind{lint.KindFunctionInLoop}, kinds(check(t, src, nodeOpts())))
}

func TestCheck_UndefinedIdentifiers(t *testing.T) {
	t.Run("reported", func(t *testing.T) {
		fs := findings(check(t, "foo(1);\n", nodeOpts()))
		require.Len(t, fs, 1)
		assert.Equal(t, lint.KindUndefined, fs[0].Kind)
		assert.Equal(t, "foo", fs[0].A)
		assert.Equal(t, "'foo' was used before it was defined.", fs[0].Reason)
	})

	t.Run("predefined", func(t *testing.T) {
		opts := lint.DefaultOptions().WithEnvironment(false, true, []string{"foo"})
		assert.True(t, check(t, "foo(1);\n", opts).OK)
	})

	t.Run("browser globals need browser", func(t *testing.T) {
		src := "document.title = 'x';\n"
		assert.Equal(t, []lint.Kind{lint.KindUndefined}, kinds(check(t, src, nodeOpts())))
		browser := lint.DefaultOptions().WithEnvironment(true, false, nil)
		assert.True(t, check(t, src, browser).OK)
	})

	t.Run("node globals need node", func(t *testing.T) {
		src := "var path = require('path');\n"
		assert.True(t, check(t, src, nodeOpts()).OK)
		browser := lint.DefaultOptions().WithEnvironment(true, false, nil)
		assert.Equal(t, []lint.Kind{lint.KindUndefined}, kinds(check(t, src, browser)))
	})

	t.Run("parameters and catch bindings", func(t *testing.T) {
		src := `var f = (a, b) => a + b;
var g = x => x;
try {
    JSON.parse('x');
} catch (e) {
    console.log(e, f, g);
}
`
		assert.True(t, check(t, src, nodeOpts()).OK)
	})
}

func TestCheck_SyntaxErrorGivesUp(t *testing.T) {
	res := check(t, "var = ;\n", nodeOpts())
	require.False(t, res.OK)
	require.GreaterOrEqual(t, len(res.Diagnostics), 2)
	assert.Equal(t, lint.GaveUp{}, res.Diagnostics[len(res.Diagnostics)-1])

	first, ok := res.Diagnostics[0].(lint.Finding)
	require.True(t, ok)
	assert.Contains(t, []lint.Kind{lint.KindUnexpected, lint.KindExpected}, first.Kind)
	assert.Equal(t, 1, first.Line)
}

func TestCheck_MaxErr(t *testing.T) {
	opts := nodeOpts()
	opts.MaxErr = 2
	res := check(t, "a;\nb;\nc;\n", opts)
	require.Len(t, res.Diagnostics, 3)
	assert.Equal(t, lint.GaveUp{}, res.Diagnostics[2])
	fs := findings(res)
	assert.Equal(t, "a", fs[0].A)
	assert.Equal(t, "b", fs[1].A)
}

func TestCheck_OptionGatedRules(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		disable func(*lint.Options)
		want    lint.Kind
		wantA   string
	}{
		{"plusplus", "var i = 0;\ni++;\n", func(o *lint.Options) { o.Plusplus = false }, lint.KindUnexpected, "++"},
		{"todo", "// TODO: tidy\nvar a = 1;\n", func(o *lint.Options) { o.Todo = false }, lint.KindTodoComment, ""},
		{"stupid", "var fs = require('fs');\nfs.readFileSync('x');\n", func(o *lint.Options) { o.Stupid = false }, lint.KindSyncMethod, "readFileSync"},
		{"newcap", "function point() {}\nvar p = new point();\n", func(o *lint.Options) { o.Newcap = false }, lint.KindConstructorCase, "point"},
		{"vars", "var a = 1;\nvar b = 2;\n", func(o *lint.Options) { o.Vars = false }, lint.KindCombineVar, ""},
		{"nomen", "var _hidden = 1;\n", func(o *lint.Options) { o.Nomen = false }, lint.KindDanglingUnderscore, "_hidden"},
		{"regexp dot", "var r = /a.b/;\n", func(o *lint.Options) { o.Regexp = false }, lint.KindInsecureRegexp, "."},
		{"regexp negated class", "var r = /[^a]/;\n", func(o *lint.Options) { o.Regexp = false }, lint.KindInsecureRegexp, "^"},
		{"sloppy", "var a = 1;\n", func(o *lint.Options) { o.Sloppy = false }, lint.KindMissingUseStrict, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relaxed := nodeOpts()
			assert.True(t, check(t, tt.src, relaxed).OK, "rule must be off under the default options")

			strict := nodeOpts()
			tt.disable(&strict)
			fs := findings(check(t, tt.src, strict))
			require.Len(t, fs, 1)
			assert.Equal(t, tt.want, fs[0].Kind)
			assert.Equal(t, tt.wantA, fs[0].A)
		})
	}
}

func TestCheck_UseStrictDirective(t *testing.T) {
	opts := nodeOpts()
	opts.Sloppy = false
	assert.True(t, check(t, "'use strict';\nvar a = 1;\n", opts).OK)
}

func TestCheck_Idempotent(t *testing.T) {
	src := "var a = 1\nfoo(a);\n"
	first := check(t, src, nodeOpts())
	second := check(t, src, nodeOpts())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

func TestCheck_ConcurrentCallsDoNotShareOptions(t *testing.T) {
	c := New()
	src := []byte("document.title = 'x';\n")
	browser := lint.DefaultOptions().WithEnvironment(true, false, nil)

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			opts, wantOK := nodeOpts(), false
			if i%2 == 0 {
				opts, wantOK = browser, true
			}
			res, err := c.Check(context.Background(), src, opts)
			if err != nil {
				errs <- err.Error()
				return
			}
			if res.OK != wantOK {
				errs <- "options leaked between concurrent checks"
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestInsecureRegexp(t *testing.T) {
	tests := map[string]string{
		`abc`:     "",
		`a\.b`:    "",
		`[.]`:     "",
		`a.b`:     ".",
		`[^x]`:    "^",
		`\[^x`:    "",
		`x[a-z].`: ".",
	}
	for pattern, want := range tests {
		assert.Equal(t, want, insecureRegexp(pattern), pattern)
	}
}
