package jslint

import (
	"strings"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/dkoosis/jscheck/pkg/lint"
)

// semicolonStatements end with a semicolon unless automatic semicolon
// insertion kicked in.
var semicolonStatements = map[string]bool{
	"expression_statement": true,
	"variable_declaration": true,
	"lexical_declaration":  true,
	"return_statement":     true,
	"throw_statement":      true,
	"break_statement":      true,
	"continue_statement":   true,
	"debugger_statement":   true,
	"do_statement":         true,
	"import_statement":     true,
}

// applyRules runs every rule over a syntactically valid tree.
func (p *pass) applyRules(root *sitter.Node) {
	if !p.opts.Sloppy {
		p.checkUseStrict(root)
	}
	if !p.opts.Nomen {
		p.checkDanglingUnderscores()
	}
	if !p.opts.Vars {
		p.checkCombinedVars(root)
	}

	walk(root, func(n *sitter.Node) bool {
		t := n.Type()
		switch {
		case semicolonStatements[t]:
			p.checkSemicolon(n)
		case t == "if_statement":
			p.checkElseAfterReturn(n)
		case t == "binary_expression":
			p.checkTypeofCompare(n)
		case t == "identifier" || t == "shorthand_property_identifier":
			p.checkDefined(n)
		case t == "update_expression":
			if !p.opts.Plusplus {
				p.checkIncrement(n)
			}
		case t == "comment":
			if !p.opts.Todo {
				p.checkTodo(n)
			}
		case t == "call_expression":
			if !p.opts.Stupid {
				p.checkSyncCall(n)
			}
		case t == "new_expression":
			if !p.opts.Newcap {
				p.checkConstructorCase(n)
			}
		case t == "regex":
			if !p.opts.Regexp {
				p.checkRegexp(n)
			}
		}
		if isFunctionExpression(n) {
			p.checkFunctionInLoop(n)
		}
		return true
	})
}

func (p *pass) checkSemicolon(n *sitter.Node) {
	if parent := n.Parent(); parent != nil {
		switch parent.Type() {
		case "for_statement", "for_in_statement":
			return
		}
	}
	if last := lastChild(n); last != nil && last.Type() == ";" {
		return
	}
	p.reportAtEnd(n, lint.KindMissingSemicolon)
}

func (p *pass) checkElseAfterReturn(n *sitter.Node) {
	alt := n.ChildByFieldName("alternative")
	if alt == nil {
		return
	}
	body := n.ChildByFieldName("consequence")
	if body == nil {
		return
	}
	last := body
	if body.Type() == "statement_block" {
		last = lastStatement(body)
	}
	if last != nil && last.Type() == "return_statement" {
		p.report(alt, lint.KindElseAfterReturn, "", "")
	}
}

// checkFunctionInLoop reports a function expression whose nearest enclosing
// function-or-loop is a loop.
func (p *pass) checkFunctionInLoop(n *sitter.Node) {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if isFunction(cur) {
			return
		}
		if isLoop(cur) {
			p.report(n, lint.KindFunctionInLoop, "", "")
			return
		}
	}
}

var equalityOperators = map[string]bool{"===": true, "!==": true, "==": true, "!=": true}

// checkTypeofCompare reports typeof results compared against undefined or null,
// which should be compared with the value directly.
func (p *pass) checkTypeofCompare(n *sitter.Node) {
	op := n.ChildByFieldName("operator")
	if op == nil || !equalityOperators[p.text(op)] {
		return
	}
	left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
	if left == nil || right == nil {
		return
	}
	operand, other := left, right
	if !p.isTypeof(operand) {
		operand, other = right, left
		if !p.isTypeof(operand) {
			return
		}
	}

	var with string
	switch other.Type() {
	case "string":
		switch v := unquote(p.text(other)); v {
		case "undefined", "null":
			with = v
		}
	case "null":
		with = "null"
	case "undefined":
		with = "undefined"
	}
	if with != "" {
		p.report(operand, lint.KindTypeofCompare, with, "")
	}
}

func (p *pass) isTypeof(n *sitter.Node) bool {
	if n.Type() != "unary_expression" {
		return false
	}
	op := n.ChildByFieldName("operator")
	return op != nil && p.text(op) == "typeof"
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}

// checkDefined reports identifiers that are neither declared in the file nor
// known globals. The operand of typeof is exempt since typeof is how code
// tests whether a global exists.
func (p *pass) checkDefined(n *sitter.Node) {
	name := p.text(n)
	if p.scope.has(name) || p.isKnownGlobal(name) {
		return
	}
	if parent := n.Parent(); parent != nil && p.isTypeof(parent) {
		return
	}
	p.report(n, lint.KindUndefined, name, "")
}

func (p *pass) checkIncrement(n *sitter.Node) {
	op := n.ChildByFieldName("operator")
	if op == nil {
		return
	}
	p.report(n, lint.KindUnexpected, p.text(op), "")
}

func (p *pass) checkTodo(n *sitter.Node) {
	if strings.Contains(p.text(n), "TODO") {
		p.report(n, lint.KindTodoComment, "", "")
	}
}

func (p *pass) checkSyncCall(n *sitter.Node) {
	fn := n.ChildByFieldName("function")
	if fn == nil {
		return
	}
	name := fn
	if fn.Type() == "member_expression" {
		name = fn.ChildByFieldName("property")
	}
	if name == nil {
		return
	}
	method := p.text(name)
	if len(method) > len("Sync") && strings.HasSuffix(method, "Sync") {
		p.report(name, lint.KindSyncMethod, method, "")
	}
}

func (p *pass) checkConstructorCase(n *sitter.Node) {
	ctor := n.ChildByFieldName("constructor")
	if ctor == nil {
		return
	}
	if ctor.Type() == "member_expression" {
		ctor = ctor.ChildByFieldName("property")
	}
	if ctor == nil || (ctor.Type() != "identifier" && ctor.Type() != "property_identifier") {
		return
	}
	name := p.text(ctor)
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsLower(r) {
		p.report(ctor, lint.KindConstructorCase, name, "")
	}
}

func (p *pass) checkRegexp(n *sitter.Node) {
	pattern := n.ChildByFieldName("pattern")
	if pattern == nil {
		return
	}
	if bad := insecureRegexp(p.text(pattern)); bad != "" {
		p.report(n, lint.KindInsecureRegexp, bad, "")
	}
}

// insecureRegexp returns "." for an unescaped dot outside a character class,
// "^" for a negated class, or "" when the pattern is acceptable.
func insecureRegexp(pattern string) string {
	inClass := false
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == '\\':
			i++
		case c == '[' && !inClass:
			inClass = true
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				return "^"
			}
		case c == ']' && inClass:
			inClass = false
		case c == '.' && !inClass:
			return "."
		}
	}
	return ""
}

// checkUseStrict requires the program to start with a "use strict" directive.
func (p *pass) checkUseStrict(root *sitter.Node) {
	var first *sitter.Node
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if t := child.Type(); t != "comment" && t != "hash_bang_line" {
			first = child
			break
		}
	}
	if first == nil {
		return
	}
	if first.Type() == "expression_statement" && first.NamedChildCount() > 0 {
		if s := first.NamedChild(0); s.Type() == "string" && unquote(p.text(s)) == "use strict" {
			return
		}
	}
	p.report(first, lint.KindMissingUseStrict, "", "")
}

func (p *pass) checkDanglingUnderscores() {
	for _, d := range p.scope.decls {
		if d.name == "_" {
			continue
		}
		if strings.HasPrefix(d.name, "_") || strings.HasSuffix(d.name, "_") {
			p.report(d.node, lint.KindDanglingUnderscore, d.name, "")
		}
	}
}

// checkCombinedVars reports every var statement after the first within the
// same function body. var statements in for-loop heads are not counted.
func (p *pass) checkCombinedVars(root *sitter.Node) {
	var visit func(n *sitter.Node, seen *bool)
	visit = func(n *sitter.Node, seen *bool) {
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			switch {
			case isFunction(child):
				fresh := false
				visit(child, &fresh)
			case child.Type() == "variable_declaration" && !inLoopHead(child):
				if *seen {
					p.report(child, lint.KindCombineVar, "", "")
				}
				*seen = true
				visit(child, seen)
			default:
				visit(child, seen)
			}
		}
	}
	seen := false
	visit(root, &seen)
}

func inLoopHead(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case "for_statement", "for_in_statement":
		return true
	}
	return false
}
