// Package model defines core data structures for funcrank.
package model

// RecordType is the fixed Type value for function records.
const RecordType = "Function"

// FunctionRecord represents one function definition discovered in the
// analyzed tree. Exactly one record is emitted per definition node; nested
// functions and methods are independent records with unqualified names.
type FunctionRecord struct {
	// ID is derived from (file path, name, start line). It disambiguates
	// output rows; two same-named functions at different lines get
	// distinct IDs even though they share a call-graph node.
	ID        string   `json:"id"`
	Name      string   `json:"label"`
	Code      string   `json:"code"`
	Type      string   `json:"type"`
	FilePath  string   `json:"file_path"`
	StartLine int      `json:"lineno"`
	Metrics   *Metrics `json:"metrics,omitempty"`
}

// Metrics holds per-function measurements attached after enrichment.
// Complexity and maintainability degrade to 0, and Calls to empty, when the
// function's isolated source does not parse standalone.
type Metrics struct {
	LOC                  int      `json:"loc"`
	CyclomaticComplexity int      `json:"cyclomatic_complexity"`
	MaintainabilityIndex float64  `json:"mi"`
	Calls                []string `json:"calls"`
	DomainScore          float64  `json:"domain_score"`
}

// RankedEntry is the public output unit produced by ranking. Score and
// IsTrivial are independent signals and may disagree: a high scorer can
// still be flagged trivial.
type RankedEntry struct {
	FunctionID string  `json:"functionId"`
	Name       string  `json:"name"`
	File       string  `json:"file"`
	Score      float64 `json:"score"`
	Rank       int     `json:"rank"`
	IsTrivial  bool    `json:"is_trivial"`
}
