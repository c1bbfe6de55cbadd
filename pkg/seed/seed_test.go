package seed_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/genebar/pkg/ledger"
	"github.com/MacroPower/genebar/pkg/seed"
)

func TestParse_JSON(t *testing.T) {
	t.Parallel()

	ds, err := seed.Parse([]byte(`{"gene":[{"label":"GENE1","value":10},{"label":"gene2","value":2.5}]}`))
	require.NoError(t, err)

	es := ds.Entries()
	require.Len(t, es, 2)
	assert.Equal(t, "GENE1", es[0].Name)
	assert.Equal(t, "10", es[0].Value.String())
	assert.Equal(t, "2.5", es[1].Value.String())
}

func TestParse_YAML(t *testing.T) {
	t.Parallel()

	ds, err := seed.Parse([]byte("gene:\n  - label: gene1\n    value: 10\n"))
	require.NoError(t, err)

	l := ledger.New(ds.Entries()...)
	e, ok := l.Lookup("GENE1")
	require.True(t, ok)
	assert.Equal(t, "GENE1", e.Name)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	_, err := seed.Parse([]byte(`{"gene":[{"label":"","value":1},{"label":"X","value":0},{"label":"Y","value":-3}]}`))
	require.ErrorIs(t, err, seed.ErrInvalidSeed)
	assert.Contains(t, err.Error(), "gene[0]: label is empty")
	assert.Contains(t, err.Error(), "gene[1]: value must be positive")
	assert.Contains(t, err.Error(), "gene[2]: value must be positive")

	_, err = seed.Parse([]byte(`{"gene": "nope"}`))
	require.ErrorIs(t, err, seed.ErrInvalidSeed)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"gene":[{"label":"A","value":1}]}`), 0o600))

	ds, err := seed.Load(path)
	require.NoError(t, err)
	assert.Len(t, ds.Genes, 1)

	_, err = seed.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	ds := seed.Default()
	require.NoError(t, ds.Validate())
	assert.NotEmpty(t, ds.Entries())
}

func TestWriteSchema(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	require.NoError(t, seed.WriteSchema(buf))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	props, ok := got["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "gene")
	assert.Equal(t, "genebar seed", got["title"])
}

func TestSchema_ValueIsPositiveNumber(t *testing.T) {
	t.Parallel()

	s := seed.Schema()
	genes, ok := s.Properties.Get("gene")
	require.True(t, ok)
	require.NotNil(t, genes.Items)

	value, ok := genes.Items.Properties.Get("value")
	require.True(t, ok)
	assert.Equal(t, "number", value.Type)
	assert.Equal(t, json.Number("0"), value.ExclusiveMinimum)
}
