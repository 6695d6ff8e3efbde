package metrics

import (
	"math"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// operandNodes are leaf token types counted as Halstead operands. Every
// other non-comment leaf token is an operator.
var operandNodes = map[string]struct{}{
	"identifier":      {},
	"integer":         {},
	"float":           {},
	"true":            {},
	"false":           {},
	"none":            {},
	"string_content":  {},
	"escape_sequence": {},
	"ellipsis":        {},
}

// maintainability computes a maintainability index over an isolated source
// slice from Halstead volume, cyclomatic complexity, source line count, and
// comment density, normalized to [0, 100]. Higher is more maintainable.
// Returns 0 when the inputs degenerate.
func maintainability(root *sitter.Node, source []byte, cc int) float64 {
	sloc, comments := countLines(source)
	if sloc == 0 {
		return 0
	}

	volume := halsteadVolume(root, source)
	commentPct := 100 * float64(comments) / float64(sloc)

	mi := 171 -
		5.2*math.Log(math.Max(volume, 1)) -
		0.23*float64(cc) -
		16.2*math.Log(float64(sloc)) +
		50*math.Sin(math.Sqrt(2.4*commentPct*math.Pi/180))
	mi = mi * 100 / 171

	if math.IsNaN(mi) || math.IsInf(mi, 0) {
		return 0
	}
	return math.Min(math.Max(mi, 0), 100)
}

// halsteadVolume is (N1+N2) * log2(n1+n2) over the slice's leaf tokens.
func halsteadVolume(root *sitter.Node, source []byte) float64 {
	operators := make(map[string]struct{})
	operands := make(map[string]struct{})
	var totalOperators, totalOperands int

	walkTokens(root, func(node *sitter.Node) {
		t := node.Type()
		if t == "comment" {
			return
		}
		text := string(source[node.StartByte():node.EndByte()])
		if text == "" {
			return
		}
		if _, ok := operandNodes[t]; ok {
			operands[text] = struct{}{}
			totalOperands++
		} else {
			operators[text] = struct{}{}
			totalOperators++
		}
	})

	vocabulary := len(operators) + len(operands)
	length := totalOperators + totalOperands
	if vocabulary == 0 || length == 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(vocabulary))
}

// walkTokens visits every leaf token, anonymous tokens included.
func walkTokens(node *sitter.Node, visit func(*sitter.Node)) {
	if node.ChildCount() == 0 {
		visit(node)
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walkTokens(node.Child(i), visit)
	}
}

// countLines returns the number of non-blank source lines and how many of
// them are comment lines.
func countLines(source []byte) (sloc, comments int) {
	for _, line := range strings.Split(string(source), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		sloc++
		if strings.HasPrefix(trimmed, "#") {
			comments++
		}
	}
	return sloc, comments
}
