// Package jslint implements lint.Checker on top of tree-sitter's JavaScript
// grammar.
//
// It covers the JSLint rules that jscheck's fixed option set and exception
// table refer to: syntax errors, missing semicolons, else after return,
// functions made inside loops, typeof comparisons, undeclared identifiers, and
// the rules gated by the vars, sloppy, plusplus, regexp, todo, newcap, nomen
// and stupid options. The white option is accepted and has no rules.
//
// A Checker holds no per-file state. Every call to Check builds its own parser
// and reads its options only from the argument, so a Checker is safe for
// concurrent use.
package jslint

import (
	"context"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/dkoosis/jscheck/pkg/lint"
)

// Checker checks JavaScript source with tree-sitter.
type Checker struct {
	lang *sitter.Language
}

// New returns a JavaScript checker.
func New() *Checker {
	return &Checker{lang: javascript.GetLanguage()}
}

var _ lint.Checker = (*Checker)(nil)

// Check parses src and applies the rules enabled by opts.
func (c *Checker) Check(ctx context.Context, src []byte, opts lint.Options) (lint.Result, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(c.lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return lint.Result{}, fmt.Errorf("parse javascript: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	p := newPass(src, opts)

	if root.HasError() {
		p.syntaxErrors(root)
		return p.result(true), nil
	}

	p.collectDeclarations(root)
	p.applyRules(root)
	return p.result(false), nil
}

// pass is the state of a single Check call.
type pass struct {
	src      []byte
	opts     lint.Options
	predef   map[string]bool
	findings []lint.Finding
	scope    *scope
}

func newPass(src []byte, opts lint.Options) *pass {
	predef := make(map[string]bool)
	for _, name := range opts.Predef() {
		predef[name] = true
	}
	return &pass{
		src:    src,
		opts:   opts,
		predef: predef,
		scope:  newScope(),
	}
}

func (p *pass) report(n *sitter.Node, kind lint.Kind, a, b string) {
	pt := n.StartPoint()
	p.findings = append(p.findings, lint.NewFinding(kind, int(pt.Row)+1, int(pt.Column)+1, a, b))
}

func (p *pass) reportAtEnd(n *sitter.Node, kind lint.Kind) {
	pt := n.EndPoint()
	p.findings = append(p.findings, lint.NewFinding(kind, int(pt.Row)+1, int(pt.Column)+1, "", ""))
}

func (p *pass) text(n *sitter.Node) string {
	return n.Content(p.src)
}

// result orders the findings and applies the MaxErr limit. stopped is true when
// analysis ended early because of a syntax error.
func (p *pass) result(stopped bool) lint.Result {
	sort.SliceStable(p.findings, func(i, j int) bool {
		a, b := p.findings[i], p.findings[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	findings := p.findings
	if limit := p.opts.MaxErr; limit > 0 && len(findings) > limit {
		findings = findings[:limit]
		stopped = true
	}

	diags := make([]lint.Diagnostic, 0, len(findings)+1)
	for _, f := range findings {
		diags = append(diags, f)
	}
	if stopped {
		diags = append(diags, lint.GaveUp{})
	}
	return lint.Result{OK: len(diags) == 0, Diagnostics: diags}
}
