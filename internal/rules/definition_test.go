package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const elementsYAML = `
rule_sets:
  - name: elements
    choices: [fire, water, grass]
    beats:
      fire: [grass]
      water: [fire]
      grass: [water]
`

func TestLoadDefinitions(t *testing.T) {
	tables, err := LoadDefinitions(strings.NewReader(elementsYAML))
	require.NoError(t, err)
	require.Len(t, tables, 1)

	rs := tables[0]
	assert.Equal(t, "elements", rs.Name())
	assert.Equal(t, []Choice{"fire", "water", "grass"}, rs.Choices())

	got, err := rs.Resolve("water", "fire")
	require.NoError(t, err)
	assert.Equal(t, PlayerWins, got)
}

func TestLoadDefinitionsRejectsEmptyTemplate(t *testing.T) {
	const custom = `
rule_sets:
  - name: custom
    choices: [a, b, c, d, e]
`
	_, err := LoadDefinitions(strings.NewReader(custom))
	require.ErrorIs(t, err, ErrUndefinedOutcome)
}

func TestLoadDefinitionsEmptyDocument(t *testing.T) {
	tables, err := LoadDefinitions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestLoadDefinitionsBadYAML(t *testing.T) {
	_, err := LoadDefinitions(strings.NewReader("rule_sets: 5"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(elementsYAML), 0644))

	tables, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, tables, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"rps", "rpsls"}, r.Names())

	rs, err := r.Lookup("rpsls")
	require.NoError(t, err)
	assert.Len(t, rs.Choices(), 5)

	_, err = r.Lookup("custom")
	require.Error(t, err)

	tables, err := LoadDefinitions(strings.NewReader(elementsYAML))
	require.NoError(t, err)
	r.Register(tables[0])
	_, err = r.Lookup("elements")
	require.NoError(t, err)
}
