package jslint

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// declaration is a name bound somewhere in the file.
type declaration struct {
	name string
	node *sitter.Node
}

// scope records every name declared in the file. Names are file-wide: a name
// declared in any function counts as defined everywhere, which errs towards
// fewer undeclared-identifier reports.
type scope struct {
	names map[string]bool
	decls []declaration
}

func newScope() *scope {
	return &scope{names: make(map[string]bool)}
}

func (s *scope) has(name string) bool {
	return s.names[name]
}

func (p *pass) declare(n *sitter.Node) {
	name := p.text(n)
	p.scope.names[name] = true
	p.scope.decls = append(p.scope.decls, declaration{name: name, node: n})
}

// collectDeclarations records the names bound by declarations, parameters,
// catch clauses, imports and for-in/of heads.
func (p *pass) collectDeclarations(root *sitter.Node) {
	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "variable_declarator":
			p.declarePattern(n.ChildByFieldName("name"))
		case "function_declaration", "generator_function_declaration", "class_declaration",
			"function_expression", "function", "generator_function", "class":
			if name := n.ChildByFieldName("name"); name != nil {
				p.declare(name)
			}
		case "formal_parameters":
			for i := 0; i < int(n.NamedChildCount()); i++ {
				p.declarePattern(n.NamedChild(i))
			}
		case "arrow_function":
			p.declarePattern(n.ChildByFieldName("parameter"))
		case "catch_clause":
			p.declarePattern(n.ChildByFieldName("parameter"))
		case "for_in_statement":
			if n.ChildByFieldName("kind") != nil {
				p.declarePattern(n.ChildByFieldName("left"))
			}
		case "import_specifier":
			if alias := n.ChildByFieldName("alias"); alias != nil {
				p.declare(alias)
			} else {
				p.declarePattern(n.ChildByFieldName("name"))
			}
		case "import_clause", "namespace_import":
			for i := 0; i < int(n.NamedChildCount()); i++ {
				if child := n.NamedChild(i); child.Type() == "identifier" {
					p.declare(child)
				}
			}
		}
		return true
	})
}

// declarePattern declares the names bound by a binding target, which may be a
// plain identifier or a destructuring pattern.
func (p *pass) declarePattern(n *sitter.Node) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "identifier", "shorthand_property_identifier_pattern":
		p.declare(n)
	case "assignment_pattern", "object_assignment_pattern":
		p.declarePattern(n.ChildByFieldName("left"))
	case "pair_pattern":
		p.declarePattern(n.ChildByFieldName("value"))
	case "object_pattern", "array_pattern", "rest_pattern":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			p.declarePattern(n.NamedChild(i))
		}
	}
}
