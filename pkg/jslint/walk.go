package jslint

import sitter "github.com/smacker/go-tree-sitter"

// maxDepth bounds recursion on pathological input.
const maxDepth = 2000

// walk visits n and its descendants in source order. Children are skipped when
// visit returns false.
func walk(n *sitter.Node, visit func(*sitter.Node) bool) {
	walkDepth(n, visit, 0)
}

func walkDepth(n *sitter.Node, visit func(*sitter.Node) bool, depth int) {
	if n == nil || depth > maxDepth {
		return
	}
	if !visit(n) {
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		walkDepth(n.Child(i), visit, depth+1)
	}
}

// lastChild returns the last child of n, named or anonymous.
func lastChild(n *sitter.Node) *sitter.Node {
	count := int(n.ChildCount())
	if count == 0 {
		return nil
	}
	return n.Child(count - 1)
}

// lastStatement returns the last named child of a block that is not a comment.
func lastStatement(block *sitter.Node) *sitter.Node {
	for i := int(block.NamedChildCount()) - 1; i >= 0; i-- {
		child := block.NamedChild(i)
		if child.Type() != "comment" {
			return child
		}
	}
	return nil
}

// firstLeaf returns the first token under n.
func firstLeaf(n *sitter.Node) *sitter.Node {
	for n.ChildCount() > 0 {
		n = n.Child(0)
	}
	return n
}

// nextToken returns the first token after n, or nil at end of input.
func nextToken(n *sitter.Node) *sitter.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if sib := cur.NextSibling(); sib != nil {
			return firstLeaf(sib)
		}
	}
	return nil
}

func isFunction(n *sitter.Node) bool {
	switch n.Type() {
	case "function_declaration", "generator_function_declaration",
		"function_expression", "function", "generator_function",
		"arrow_function", "method_definition":
		return true
	}
	return false
}

func isFunctionExpression(n *sitter.Node) bool {
	switch n.Type() {
	case "function_expression", "function", "generator_function", "arrow_function":
		return true
	}
	return false
}

func isLoop(n *sitter.Node) bool {
	switch n.Type() {
	case "for_statement", "for_in_statement", "while_statement", "do_statement":
		return true
	}
	return false
}
