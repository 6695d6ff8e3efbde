// Package report assembles and encodes the analysis output document.
package report

import (
	"encoding/json"
	"io"

	"github.com/phobologic/funcrank/internal/model"
)

// Document is the serialized output: every enriched record under graphNodes
// and the scored ordering under rankedFunctions.
type Document struct {
	AnalysisData AnalysisData `json:"analysisData"`
}

// AnalysisData holds the two output sequences.
type AnalysisData struct {
	GraphNodes      []*model.FunctionRecord `json:"graphNodes"`
	RankedFunctions []model.RankedEntry     `json:"rankedFunctions"`
}

// Build assembles the output document. Nil slices are normalized to empty
// ones so a run over zero functions still serializes as arrays, not null.
func Build(records []*model.FunctionRecord, ranked []model.RankedEntry) *Document {
	if records == nil {
		records = []*model.FunctionRecord{}
	}
	if ranked == nil {
		ranked = []model.RankedEntry{}
	}
	return &Document{
		AnalysisData: AnalysisData{
			GraphNodes:      records,
			RankedFunctions: ranked,
		},
	}
}

// Encode writes the document as 2-space-indented JSON.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
