package extract

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/funcrank/internal/lang"
)

func setup(t *testing.T) (*sitter.Parser, *sitter.Query) {
	t.Helper()
	l := lang.Python()
	q, err := l.GetTagQuery()
	require.NoError(t, err)
	return l.NewParser(), q
}

func TestFunctionsTopLevel(t *testing.T) {
	t.Parallel()
	parser, query := setup(t)

	source := []byte(`def first():
    return 1

def second(x):
    return x + 1
`)

	records := Functions(parser, query, source, "app.py")
	require.Len(t, records, 2)

	assert.Equal(t, "first", records[0].Name)
	assert.Equal(t, "code:app.py:first:1", records[0].ID)
	assert.Equal(t, "app.py", records[0].FilePath)
	assert.Equal(t, 1, records[0].StartLine)
	assert.Equal(t, "Function", records[0].Type)
	assert.Equal(t, "def first():\n    return 1\n", records[0].Code)

	assert.Equal(t, "second", records[1].Name)
	assert.Equal(t, 4, records[1].StartLine)
	assert.Equal(t, "def second(x):\n    return x + 1\n", records[1].Code)
}

func TestFunctionsNestedAndMethods(t *testing.T) {
	t.Parallel()
	parser, query := setup(t)

	source := []byte(`def outer():
    def inner():
        return 1
    return inner

class Account:
    def balance(self):
        return self._balance
`)

	records := Functions(parser, query, source, "app.py")
	require.Len(t, records, 3)

	names := []string{records[0].Name, records[1].Name, records[2].Name}
	assert.Equal(t, []string{"outer", "inner", "balance"}, names)

	// Methods keep their unqualified name; no parent linkage is modeled.
	assert.Equal(t, "balance", records[2].Name)
	// The slice preserves the method's indentation.
	assert.Equal(t, "    def balance(self):\n        return self._balance\n", records[2].Code)
}

func TestFunctionsSyntaxErrorSkipsFile(t *testing.T) {
	t.Parallel()
	parser, query := setup(t)

	source := []byte(`def good():
    return 1

def broken(:
    return 2
`)

	records := Functions(parser, query, source, "bad.py")
	assert.Empty(t, records, "a malformed file contributes zero records")
}

func TestFunctionsEmptySource(t *testing.T) {
	t.Parallel()
	parser, query := setup(t)

	assert.Nil(t, Functions(parser, query, nil, "empty.py"))
	assert.Nil(t, Functions(parser, query, []byte(""), "empty.py"))
}

func TestFunctionsNoDefinitions(t *testing.T) {
	t.Parallel()
	parser, query := setup(t)

	records := Functions(parser, query, []byte("x = 1\nprint(x)\n"), "flat.py")
	assert.Empty(t, records)
}

func TestFunctionsAccessorScenario(t *testing.T) {
	t.Parallel()
	parser, query := setup(t)

	source := []byte("def get_id(self): return self.id\n")

	records := Functions(parser, query, source, "model.py")
	require.Len(t, records, 1)
	assert.Equal(t, "get_id", records[0].Name)
	assert.Equal(t, "code:model.py:get_id:1", records[0].ID)
	assert.Equal(t, string(source), records[0].Code)
}

func TestFunctionsNoTrailingNewline(t *testing.T) {
	t.Parallel()
	parser, query := setup(t)

	source := []byte("def f():\n    return 1")

	records := Functions(parser, query, source, "f.py")
	require.Len(t, records, 1)
	assert.Equal(t, "def f():\n    return 1", records[0].Code)
}
