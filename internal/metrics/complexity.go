package metrics

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Each function-shaped block contributes a base complexity of 1; summing the
// bases means a slice containing nested definitions reports the sum of
// McCabe complexity over all its blocks.
var blockNodes = map[string]struct{}{
	"function_definition": {},
	"lambda":              {},
}

// decisionNodes each add one independent path through the control flow.
// Boolean operators nest pairwise in the grammar, so each node counts one
// short-circuit branch.
var decisionNodes = map[string]struct{}{
	"if_statement":           {},
	"elif_clause":            {},
	"conditional_expression": {},
	"for_statement":          {},
	"while_statement":        {},
	"except_clause":          {},
	"case_clause":            {},
	"assert_statement":       {},
	"boolean_operator":       {},
	"for_in_clause":          {},
	"if_clause":              {},
}

// complexity sums McCabe cyclomatic complexity over all blocks under root.
func complexity(root *sitter.Node) int {
	total := 0
	walkNamed(root, func(node *sitter.Node) {
		t := node.Type()
		if _, ok := blockNodes[t]; ok {
			total++
		}
		if _, ok := decisionNodes[t]; ok {
			total++
		}
	})
	return total
}

func walkNamed(node *sitter.Node, visit func(*sitter.Node)) {
	visit(node)
	for i := 0; i < int(node.NamedChildCount()); i++ {
		walkNamed(node.NamedChild(i), visit)
	}
}
