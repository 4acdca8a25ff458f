package rules

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML form of a rule set.
type Definition struct {
	Name    string              `yaml:"name"`
	Choices []Choice            `yaml:"choices"`
	Beats   map[Choice][]Choice `yaml:"beats"`
}

type definitionFile struct {
	RuleSets []Definition `yaml:"rule_sets"`
}

// Compile validates the definition and builds its table.
func (d Definition) Compile() (*Table, error) {
	return NewTable(d.Name, d.Choices, d.Beats)
}

// LoadDefinitions parses a YAML document with a top-level rule_sets list and compiles every entry.
func LoadDefinitions(r io.Reader) ([]*Table, error) {
	var file definitionFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse rule sets: %w", err)
	}

	tables := make([]*Table, 0, len(file.RuleSets))
	for _, def := range file.RuleSets {
		t, err := def.Compile()
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// LoadFile reads rule set definitions from a YAML file.
func LoadFile(path string) ([]*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tables, err := LoadDefinitions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tables, nil
}
