package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/funcrank/internal/model"
)

func TestBuildNormalizesNilSlices(t *testing.T) {
	t.Parallel()

	doc := Build(nil, nil)

	var buf bytes.Buffer
	require.NoError(t, doc.Encode(&buf))

	out := buf.String()
	assert.Contains(t, out, `"graphNodes": []`)
	assert.Contains(t, out, `"rankedFunctions": []`)
	assert.NotContains(t, out, "null")
}

func TestEncodeFieldNames(t *testing.T) {
	t.Parallel()

	records := []*model.FunctionRecord{
		{
			ID:        "code:app.py:login:3",
			Name:      "login",
			Code:      "def login(user):\n    return user\n",
			Type:      model.RecordType,
			FilePath:  "app.py",
			StartLine: 3,
			Metrics: &model.Metrics{
				LOC:                  3,
				CyclomaticComplexity: 1,
				MaintainabilityIndex: 82.5,
				Calls:                []string{},
				DomainScore:          0.0741,
			},
		},
	}
	ranked := []model.RankedEntry{
		{FunctionID: "code:app.py:login:3", Name: "login", File: "app.py", Score: 0.1234, Rank: 1, IsTrivial: true},
	}

	var buf bytes.Buffer
	require.NoError(t, Build(records, ranked).Encode(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	data, ok := decoded["analysisData"].(map[string]any)
	require.True(t, ok, "top-level analysisData object")

	nodes := data["graphNodes"].([]any)
	require.Len(t, nodes, 1)
	node := nodes[0].(map[string]any)
	for _, key := range []string{"id", "label", "code", "type", "file_path", "lineno", "metrics"} {
		assert.Contains(t, node, key)
	}
	m := node["metrics"].(map[string]any)
	for _, key := range []string{"loc", "cyclomatic_complexity", "mi", "calls", "domain_score"} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, []any{}, m["calls"], "empty calls serialize as an array")

	rankedOut := data["rankedFunctions"].([]any)
	require.Len(t, rankedOut, 1)
	entry := rankedOut[0].(map[string]any)
	for _, key := range []string{"functionId", "name", "file", "score", "rank", "is_trivial"} {
		assert.Contains(t, entry, key)
	}
	assert.Equal(t, true, entry["is_trivial"])
}

func TestEncodeIndented(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Build(nil, nil).Encode(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Greater(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[1], "  "), "two-space indentation")
}

func TestEncodeMetricsOmittedWhenAbsent(t *testing.T) {
	t.Parallel()

	records := []*model.FunctionRecord{
		{ID: "code:a.py:f:1", Name: "f", Type: model.RecordType, FilePath: "a.py", StartLine: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, Build(records, nil).Encode(&buf))
	assert.NotContains(t, buf.String(), `"metrics"`)
}
