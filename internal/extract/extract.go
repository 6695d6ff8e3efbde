// Package extract emits function records from source files using tree-sitter.
package extract

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/funcrank/internal/lang"
	"github.com/phobologic/funcrank/internal/model"
)

// Functions parses a source file and returns one record per function
// definition, in document order. Nested functions and methods are emitted as
// independent records. A file whose tree contains a syntax error yields no
// records at all; a malformed file must not halt the rest of the run.
//
// The parser must be created for the correct language. filePath is used for
// record IDs and FunctionRecord.FilePath and should be the repo-relative path.
func Functions(parser *sitter.Parser, query *sitter.Query, source []byte, filePath string) []*model.FunctionRecord {
	if len(source) == 0 {
		return nil
	}

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil
	}

	lines := splitLines(source)

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, root)

	var records []*model.FunctionRecord

	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		match = qc.FilterPredicates(match, source)

		var nameNode, defNode *sitter.Node
		for _, c := range match.Captures {
			switch query.CaptureNameForId(c.Index) {
			case lang.CaptureName:
				nameNode = c.Node
			case lang.CaptureDefinition:
				defNode = c.Node
			}
		}
		if nameNode == nil || defNode == nil {
			continue
		}

		name := lang.NodeText(nameNode, source)
		startRow := int(defNode.StartPoint().Row)
		endRow := lastRow(defNode)
		if endRow >= len(lines) {
			endRow = len(lines) - 1
		}

		code := ""
		for _, line := range lines[startRow : endRow+1] {
			code += line
		}

		startLine := startRow + 1
		records = append(records, &model.FunctionRecord{
			ID:        fmt.Sprintf("code:%s:%s:%d", filePath, name, startLine),
			Name:      name,
			Code:      code,
			Type:      model.RecordType,
			FilePath:  filePath,
			StartLine: startLine,
		})
	}

	return records
}

// lastRow returns the 0-based row of the node's final line. The end point is
// exclusive, so a node terminating exactly at a line start ends on the
// previous line.
func lastRow(node *sitter.Node) int {
	end := node.EndPoint()
	if end.Column == 0 && end.Row > 0 {
		return int(end.Row) - 1
	}
	return int(end.Row)
}

// splitLines splits source into lines, each retaining its terminator.
func splitLines(source []byte) []string {
	var lines []string
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lines = append(lines, string(source[start:i+1]))
			start = i + 1
		}
	}
	if start < len(source) {
		lines = append(lines, string(source[start:]))
	}
	return lines
}
