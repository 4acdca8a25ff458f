package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRPSLSIsComplementary(t *testing.T) {
	rs := RPSLS()
	for _, a := range rs.Choices() {
		for _, b := range rs.Choices() {
			ab, err := rs.Resolve(a, b)
			require.NoError(t, err)
			ba, err := rs.Resolve(b, a)
			require.NoError(t, err)

			if a == b {
				assert.Equal(t, Draw, ab, "%s vs %s", a, b)
				continue
			}
			assert.NotEqual(t, Draw, ab, "%s vs %s", a, b)
			assert.Equal(t, ab.Invert(), ba, "%s vs %s", a, b)
		}
	}
}

func TestRPSLSOutcomes(t *testing.T) {
	rs := RPSLS()
	tests := []struct {
		player, computer Choice
		want             Outcome
	}{
		{Rock, Scissors, PlayerWins},
		{Rock, Lizard, PlayerWins},
		{Rock, Paper, ComputerWins},
		{Rock, Spock, ComputerWins},
		{Paper, Spock, PlayerWins},
		{Scissors, Lizard, PlayerWins},
		{Lizard, Spock, PlayerWins},
		{Lizard, Scissors, ComputerWins},
		{Spock, Scissors, PlayerWins},
		{Spock, Spock, Draw},
	}
	for _, tt := range tests {
		got, err := rs.Resolve(tt.player, tt.computer)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s vs %s", tt.player, tt.computer)
	}
}

func TestChoicesKeepDisplayOrder(t *testing.T) {
	rs := RPSLS()
	assert.Equal(t, []Choice{Rock, Paper, Scissors, Lizard, Spock}, rs.Choices())

	// callers must not be able to mutate the rule set
	c := rs.Choices()
	c[0] = "banana"
	assert.Equal(t, Rock, rs.Choices()[0])
}

func TestIsValid(t *testing.T) {
	rs := Classic()
	assert.True(t, rs.IsValid(Rock))
	assert.False(t, rs.IsValid(Spock))
	assert.False(t, rs.IsValid("ROCK"))
	assert.False(t, rs.IsValid(""))
}

func TestResolveRejectsUnknownChoice(t *testing.T) {
	_, err := Classic().Resolve(Rock, Lizard)
	require.ErrorIs(t, err, ErrInvalidChoice)
}

func TestNewTableValidation(t *testing.T) {
	abc := []Choice{"a", "b", "c"}
	tests := []struct {
		name    string
		choices []Choice
		beats   map[Choice][]Choice
		wantErr error
	}{
		{
			name:    "empty template",
			choices: []Choice{"a", "b", "c", "d", "e"},
			beats:   nil,
			wantErr: ErrUndefinedOutcome,
		},
		{
			name:    "missing pair",
			choices: abc,
			beats:   map[Choice][]Choice{"a": {"b"}, "b": {"c"}},
			wantErr: ErrUndefinedOutcome,
		},
		{
			name:    "unknown loser",
			choices: abc,
			beats:   map[Choice][]Choice{"a": {"z"}},
			wantErr: ErrInvalidChoice,
		},
		{
			name:    "contradiction",
			choices: abc,
			beats:   map[Choice][]Choice{"a": {"b", "c"}, "b": {"a", "c"}},
		},
		{
			name:    "self",
			choices: abc,
			beats:   map[Choice][]Choice{"a": {"a"}},
		},
		{
			name:    "duplicate choice",
			choices: []Choice{"a", "a"},
		},
		{
			name: "no choices",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable("custom", tt.choices, tt.beats)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSingleChoiceTableAlwaysDraws(t *testing.T) {
	rs, err := NewTable("solo", []Choice{"x"}, nil)
	require.NoError(t, err)
	got, err := rs.Resolve("x", "x")
	require.NoError(t, err)
	assert.Equal(t, Draw, got)
}

func TestBeating(t *testing.T) {
	assert.Equal(t, []Choice{Paper, Spock}, Beating(RPSLS(), Rock))
	assert.Equal(t, []Choice{Rock}, Beating(Classic(), Scissors))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "Draw", Draw.String())
	assert.Equal(t, "Player", PlayerWins.String())
	assert.Equal(t, "Computer", ComputerWins.String())
}
