// Package rank scores, orders, and flags enriched function records.
package rank

import (
	"math"
	"sort"
	"strings"

	"github.com/phobologic/funcrank/internal/graph"
	"github.com/phobologic/funcrank/internal/model"
)

// Composite score weights and saturation thresholds. The weights sum to 1
// and each term is capped into [0,1] before weighting, so pathologically
// large functions cannot dominate beyond their cap. Fixed constants, not
// configuration.
const (
	weightComplexity = 0.3
	weightSize       = 0.2
	weightCentrality = 0.3
	weightDomain     = 0.2

	complexityCap = 10.0
	locCap        = 50.0
)

// Rank combines each record's metrics with its graph centrality into a
// composite score, sorts descending, and assigns dense 1-based ranks.
// Scores are rounded to 4 decimal places before the sort; ties keep the
// records' input order. Triviality is evaluated independently per record.
func Rank(records []*model.FunctionRecord, g *graph.Graph) []model.RankedEntry {
	var centrality map[string]float64
	if g != nil && g.Len() > 0 {
		centrality = g.PageRank(graph.DefaultPageRankOptions())
	}

	entries := make([]model.RankedEntry, 0, len(records))
	for _, rec := range records {
		m := rec.Metrics
		if m == nil {
			m = &model.Metrics{}
		}

		score := weightComplexity*math.Min(float64(m.CyclomaticComplexity)/complexityCap, 1) +
			weightSize*math.Min(float64(m.LOC)/locCap, 1) +
			weightCentrality*centrality[rec.Name] +
			weightDomain*m.DomainScore

		entries = append(entries, model.RankedEntry{
			FunctionID: rec.ID,
			Name:       rec.Name,
			File:       rec.FilePath,
			Score:      round4(score),
			IsTrivial:  IsTrivial(rec),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

var trivialPrefixes = []string{"get_", "set_", "to_", "from_", "is_", "has_"}

// IsTrivial flags boilerplate-shaped functions. The rules are logically
// independent; any single match suffices, and the fixed order only
// short-circuits evaluation.
func IsTrivial(rec *model.FunctionRecord) bool {
	m := rec.Metrics
	if m == nil {
		return false
	}

	if m.LOC <= 5 && hasTrivialPrefix(rec.Name) {
		return true
	}
	if m.LOC <= 3 && m.CyclomaticComplexity <= 1 {
		return true
	}
	if len(m.Calls) == 1 && m.CyclomaticComplexity <= 1 {
		return true
	}
	if m.LOC <= 2 && len(m.Calls) == 0 && strings.Contains(rec.Code, "return") {
		return true
	}
	return false
}

func hasTrivialPrefix(name string) bool {
	for _, p := range trivialPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
