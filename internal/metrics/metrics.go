// Package metrics enriches function records with structural and domain measurements.
package metrics

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/funcrank/internal/lang"
	"github.com/phobologic/funcrank/internal/model"
)

// Enricher computes per-function metrics. The vocabulary is injected at
// construction so alternate keyword sets are testable without touching the
// scoring formula. An Enricher owns its parser and is not safe for
// concurrent use; create one per goroutine.
type Enricher struct {
	parser *sitter.Parser
	query  *sitter.Query
	vocab  []string
}

// NewEnricher creates an Enricher for the given language. A nil or empty
// vocabulary yields a domain score of 0 for every record.
func NewEnricher(l *lang.Language, vocabulary []string) (*Enricher, error) {
	query, err := l.GetTagQuery()
	if err != nil {
		return nil, err
	}
	vocab := make([]string, 0, len(vocabulary))
	for _, term := range vocabulary {
		vocab = append(vocab, strings.ToLower(term))
	}
	return &Enricher{
		parser: l.NewParser(),
		query:  query,
		vocab:  vocab,
	}, nil
}

// Enrich attaches a Metrics value to rec. It never fails: complexity,
// maintainability, and call extraction each degrade to zero/empty when the
// record's isolated source does not parse standalone, which happens for
// indented slices such as methods cut out of their class body.
func (e *Enricher) Enrich(rec *model.FunctionRecord) {
	m := &model.Metrics{
		LOC:         strings.Count(rec.Code, "\n") + 1,
		Calls:       []string{},
		DomainScore: e.domainScore(rec),
	}

	source := []byte(rec.Code)
	if tree := e.parseStandalone(source); tree != nil {
		root := tree.RootNode()
		m.CyclomaticComplexity = complexity(root)
		m.MaintainabilityIndex = maintainability(root, source, m.CyclomaticComplexity)
		m.Calls = e.callTargets(root, source)
		tree.Close()
	}

	rec.Metrics = m
}

// parseStandalone parses the isolated source slice, or returns nil when the
// slice is not independently valid. The caller owns the returned tree.
func (e *Enricher) parseStandalone(source []byte) *sitter.Tree {
	if len(source) == 0 {
		return nil
	}
	tree, err := e.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil
	}
	return tree
}

// domainScore is the fraction of the vocabulary appearing as a substring of
// the lowercased name and source text. Coverage, not frequency: repeated
// mentions of one term do not increase it.
func (e *Enricher) domainScore(rec *model.FunctionRecord) float64 {
	if len(e.vocab) == 0 {
		return 0
	}
	text := strings.ToLower(rec.Name + " " + rec.Code)
	matched := 0
	for _, term := range e.vocab {
		if strings.Contains(text, term) {
			matched++
		}
	}
	return float64(matched) / float64(len(e.vocab))
}

// callTargets returns every simple-identifier call in tree order, duplicates
// retained. A function calling the same helper twice records it twice.
func (e *Enricher) callTargets(root *sitter.Node, source []byte) []string {
	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(e.query, root)

	calls := []string{}
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		match = qc.FilterPredicates(match, source)

		var nameNode *sitter.Node
		isCall := false
		for _, c := range match.Captures {
			switch e.query.CaptureNameForId(c.Index) {
			case lang.CaptureName:
				nameNode = c.Node
			case lang.CaptureCall:
				isCall = true
			}
		}
		if isCall && nameNode != nil {
			calls = append(calls, lang.NodeText(nameNode, source))
		}
	}
	return calls
}
