package jslint

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/dkoosis/jscheck/pkg/lint"
)

const maxTokenText = 30

// syntaxErrors reports every ERROR and MISSING node under root.
func (p *pass) syntaxErrors(root *sitter.Node) {
	walk(root, func(n *sitter.Node) bool {
		switch {
		case n.IsMissing():
			saw := "(end)"
			if next := nextToken(n); next != nil {
				saw = tokenText(p.text(next))
			}
			p.report(n, lint.KindExpected, n.Type(), saw)
			return false
		case n.IsError():
			p.report(n, lint.KindUnexpected, tokenText(p.text(firstLeaf(n))), "")
			return false
		}
		return n.HasError()
	})
}

// tokenText trims a token to its first line and a readable length.
func tokenText(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if len(s) > maxTokenText {
		s = s[:maxTokenText] + "..."
	}
	if s == "" {
		return "(end)"
	}
	return s
}
