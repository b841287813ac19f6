package lint

import (
	"context"
	"strings"
)

// Kind identifies a diagnostic template independently of its wording.
type Kind string

// Diagnostic kinds. The string value doubles as the SARIF rule id.
const (
	KindUnexpected         Kind = "unexpected"
	KindExpected           Kind = "expected"
	KindMissingSemicolon   Kind = "missing-semicolon"
	KindElseAfterReturn    Kind = "else-after-return"
	KindFunctionInLoop     Kind = "function-in-loop"
	KindTypeofCompare      Kind = "typeof-compare"
	KindUndefined          Kind = "used-before-defined"
	KindMissingUseStrict   Kind = "missing-use-strict"
	KindTodoComment        Kind = "todo-comment"
	KindDanglingUnderscore Kind = "dangling-underscore"
	KindSyncMethod         Kind = "sync-method"
	KindConstructorCase    Kind = "constructor-case"
	KindCombineVar         Kind = "combine-var"
	KindInsecureRegexp     Kind = "insecure-regexp"
)

var templates = map[Kind]string{
	KindUnexpected:         "Unexpected '{a}'.",
	KindExpected:           "Expected '{a}' and instead saw '{b}'.",
	KindMissingSemicolon:   "Missing semicolon.",
	KindElseAfterReturn:    "Unexpected 'else' after 'return'.",
	KindFunctionInLoop:     "Don't make functions within a loop.",
	KindTypeofCompare:      "Unexpected 'typeof'. Use '===' to compare directly with {a}.",
	KindUndefined:          "'{a}' was used before it was defined.",
	KindMissingUseStrict:   "Missing 'use strict' statement.",
	KindTodoComment:        "Unexpected TODO comment.",
	KindDanglingUnderscore: "Unexpected dangling '_' in '{a}'.",
	KindSyncMethod:         "Unexpected sync method: '{a}'.",
	KindConstructorCase:    "A constructor name '{a}' should start with an uppercase letter.",
	KindCombineVar:         "Combine this with the previous 'var' statement.",
	KindInsecureRegexp:     "Insecure '{a}'.",
}

// Template returns the raw message template for k, or "" if k is unknown.
func (k Kind) Template() string {
	return templates[k]
}

// Diagnostic is either a Finding or GaveUp.
type Diagnostic interface {
	isDiagnostic()
}

// Finding is a single issue reported by a checker.
type Finding struct {
	Kind   Kind
	Line   int // 1-based
	Column int // 1-based
	A      string
	B      string
	Reason string
}

// Raw returns the unformatted message template of the finding.
func (f Finding) Raw() string {
	return f.Kind.Template()
}

func (Finding) isDiagnostic() {}

// GaveUp marks the point at which the checker stopped analysing a file.
type GaveUp struct{}

func (GaveUp) isDiagnostic() {}

// NewFinding builds a Finding with its Reason expanded from the kind's template.
func NewFinding(kind Kind, line, col int, a, b string) Finding {
	return Finding{
		Kind:   kind,
		Line:   line,
		Column: col,
		A:      a,
		B:      b,
		Reason: Expand(kind.Template(), a, b),
	}
}

// Expand substitutes {a} and {b} in a message template.
func Expand(template, a, b string) string {
	return strings.NewReplacer("{a}", a, "{b}", b).Replace(template)
}

// Result is what a checker returns for one source text.
type Result struct {
	OK          bool
	Diagnostics []Diagnostic
}

// Checker checks JavaScript source text.
// Implementations must not retain or share options between calls.
type Checker interface {
	Check(ctx context.Context, src []byte, opts Options) (Result, error)
}

// CheckerFunc adapts an ordinary function to the Checker interface.
type CheckerFunc func(ctx context.Context, src []byte, opts Options) (Result, error)

// Check calls f.
func (f CheckerFunc) Check(ctx context.Context, src []byte, opts Options) (Result, error) {
	return f(ctx, src, opts)
}
