package lint

import "slices"

// DefaultMaxErr is the number of findings after which a checker gives up.
const DefaultMaxErr = 50

// Options is the rule option set handed to a checker for one file.
// Boolean rule flags follow JSLint's "tolerate" convention: true relaxes the rule.
type Options struct {
	Browser bool // browser globals are predefined
	Node    bool // Node.js globals are predefined

	Vars     bool // allow multiple var statements per function
	Sloppy   bool // do not require "use strict"
	White    bool // lenient whitespace rules
	Plusplus bool // allow ++ and --
	Regexp   bool // allow . and [^...] in regular expressions
	Todo     bool // allow TODO comments
	Newcap   bool // do not require constructors to be capitalised
	Nomen    bool // tolerate dangling _ in names
	Stupid   bool // allow synchronous methods

	MaxErr int

	predef []string
}

// DefaultOptions returns the fixed rule configuration used for every file.
// Only Browser, Node and the predefined globals vary between files.
func DefaultOptions() Options {
	return Options{
		Vars:     true,
		Sloppy:   true,
		White:    true,
		Plusplus: true,
		Regexp:   true,
		Todo:     true,
		Newcap:   true,
		Nomen:    true,
		Stupid:   true,
		MaxErr:   DefaultMaxErr,
	}
}

// WithEnvironment returns a copy of o with the environment fields replaced.
// The predef slice is copied; later changes to it do not affect the result.
func (o Options) WithEnvironment(browser, node bool, predef []string) Options {
	o.Browser = browser
	o.Node = node
	o.predef = slices.Clone(predef)
	return o
}

// Predef returns a copy of the predefined global names.
func (o Options) Predef() []string {
	return slices.Clone(o.predef)
}

// IsPredefined reports whether name was predefined for this file.
func (o Options) IsPredefined(name string) bool {
	return slices.Contains(o.predef, name)
}
