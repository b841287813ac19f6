// Package lint defines the contract between jscheck and a JavaScript checker.
//
// A checker receives source text and an immutable Options value and returns
// an ordered list of diagnostics. Each diagnostic is either a Finding, which
// carries a Kind tag, a raw message template and the fields captured for that
// template, or GaveUp, which marks the point where the checker stopped
// analysing the file.
//
// Options is passed by value on every call. Nothing in this package holds
// process-wide state, so several files may be checked concurrently with
// different options.
package lint
