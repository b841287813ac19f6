package filter

import "github.com/dkoosis/jscheck/pkg/lint"

// Predicate reports whether a finding is a known false positive.
type Predicate func(lint.Finding) bool

// Exceptions maps a diagnostic kind to the predicate deciding whether a
// finding of that kind is suppressed. Kinds missing from the table are never
// suppressed.
type Exceptions map[lint.Kind]Predicate

func always(lint.Finding) bool { return true }

// DefaultExceptions returns the suppression table applied to every file.
func DefaultExceptions() Exceptions {
	return Exceptions{
		lint.KindElseAfterReturn: always,
		lint.KindFunctionInLoop:  always,
		// typeof is how code tests whether a variable exists at all.
		lint.KindTypeofCompare: func(f lint.Finding) bool {
			return f.A == "undefined"
		},
	}
}

// Suppress reports whether f should be dropped.
func (e Exceptions) Suppress(f lint.Finding) bool {
	pred, ok := e[f.Kind]
	return ok && pred(f)
}
