package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/tatianab/rps-game/internal/models"
	"github.com/tatianab/rps-game/internal/rules"
)

const (
	StrategyRandom  = "random"
	StrategyCounter = "counter"
)

// Policy picks the computer's move for the next round.
type Policy interface {
	Next(rs rules.RuleSet, tracker *models.FrequencyTracker) rules.Choice
}

// RandomPolicy draws uniformly from the rule set's choices and ignores the player's history.
type RandomPolicy struct {
	rng *rand.Rand
}

func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (p *RandomPolicy) Next(rs rules.RuleSet, _ *models.FrequencyTracker) rules.Choice {
	return pick(p.rng, rs.Choices())
}

// CounterPolicy plays something that beats the player's most frequent choice so far.
// With no history, or when nothing beats that choice, it falls back to a random pick.
type CounterPolicy struct {
	rng *rand.Rand
}

func NewCounterPolicy(rng *rand.Rand) *CounterPolicy {
	return &CounterPolicy{rng: rng}
}

func (p *CounterPolicy) Next(rs rules.RuleSet, tracker *models.FrequencyTracker) rules.Choice {
	if tracker != nil {
		if favourite, _, ok := tracker.MostFrequent(); ok {
			if counters := rules.Beating(rs, favourite); len(counters) > 0 {
				return pick(p.rng, counters)
			}
		}
	}
	return pick(p.rng, rs.Choices())
}

// FixedPolicy always plays the same choice.
type FixedPolicy rules.Choice

func (p FixedPolicy) Next(rules.RuleSet, *models.FrequencyTracker) rules.Choice {
	return rules.Choice(p)
}

// NewPolicy returns the policy registered under name.
func NewPolicy(name string, rng *rand.Rand) (Policy, error) {
	switch name {
	case StrategyRandom, "":
		return NewRandomPolicy(rng), nil
	case StrategyCounter:
		return NewCounterPolicy(rng), nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}

// NewRand returns a PRNG seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func pick(rng *rand.Rand, choices []rules.Choice) rules.Choice {
	return choices[rng.IntN(len(choices))]
}
