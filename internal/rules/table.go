package rules

import (
	"fmt"
	"slices"
)

// Table is a RuleSet backed by a fixed outcome matrix indexed by choice position.
// The matrix is complete once NewTable returns.
type Table struct {
	name     string
	choices  []Choice
	index    map[Choice]int
	outcomes [][]Outcome
}

// NewTable builds a rule set from a "beats" relation: beats[a] lists every choice a defeats.
// Every pair of distinct choices must be decided exactly once.
func NewTable(name string, choices []Choice, beats map[Choice][]Choice) (*Table, error) {
	if name == "" {
		return nil, fmt.Errorf("rule set has no name")
	}
	if len(choices) == 0 {
		return nil, fmt.Errorf("rule set %q: no choices", name)
	}

	t := &Table{
		name:     name,
		choices:  slices.Clone(choices),
		index:    make(map[Choice]int, len(choices)),
		outcomes: make([][]Outcome, len(choices)),
	}
	for i, c := range choices {
		if c == "" {
			return nil, fmt.Errorf("rule set %q: empty choice at position %d", name, i)
		}
		if _, dup := t.index[c]; dup {
			return nil, fmt.Errorf("rule set %q: duplicate choice %q", name, c)
		}
		t.index[c] = i
	}

	defined := make([][]bool, len(choices))
	for i := range choices {
		t.outcomes[i] = make([]Outcome, len(choices))
		defined[i] = make([]bool, len(choices))
		defined[i][i] = true
	}

	for winner, losers := range beats {
		w, ok := t.index[winner]
		if !ok {
			return nil, fmt.Errorf("rule set %q: %w: %q", name, ErrInvalidChoice, winner)
		}
		for _, loser := range losers {
			l, ok := t.index[loser]
			if !ok {
				return nil, fmt.Errorf("rule set %q: %w: %q", name, ErrInvalidChoice, loser)
			}
			if w == l {
				return nil, fmt.Errorf("rule set %q: %q cannot beat itself", name, winner)
			}
			if defined[w][l] {
				return nil, fmt.Errorf("rule set %q: pair %q/%q decided twice", name, winner, loser)
			}
			t.outcomes[w][l] = PlayerWins
			t.outcomes[l][w] = ComputerWins
			defined[w][l] = true
			defined[l][w] = true
		}
	}

	for i := range choices {
		for j := i + 1; j < len(choices); j++ {
			if !defined[i][j] {
				return nil, fmt.Errorf("rule set %q: %w for %q vs %q", name, ErrUndefinedOutcome, choices[i], choices[j])
			}
		}
	}

	return t, nil
}

// MustTable is NewTable for built-in variants known to be complete.
func MustTable(name string, choices []Choice, beats map[Choice][]Choice) *Table {
	t, err := NewTable(name, choices, beats)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Name() string { return t.name }

func (t *Table) Choices() []Choice { return slices.Clone(t.choices) }

func (t *Table) IsValid(c Choice) bool {
	_, ok := t.index[c]
	return ok
}

func (t *Table) Resolve(player, computer Choice) (Outcome, error) {
	p, ok := t.index[player]
	if !ok {
		return Draw, fmt.Errorf("%w: %q", ErrInvalidChoice, player)
	}
	c, ok := t.index[computer]
	if !ok {
		return Draw, fmt.Errorf("%w: %q", ErrInvalidChoice, computer)
	}
	return t.outcomes[p][c], nil
}

// Beating returns the choices that win against c, in display order.
func Beating(rs RuleSet, c Choice) []Choice {
	var out []Choice
	for _, candidate := range rs.Choices() {
		o, err := rs.Resolve(c, candidate)
		if err == nil && o == ComputerWins {
			out = append(out, candidate)
		}
	}
	return out
}
