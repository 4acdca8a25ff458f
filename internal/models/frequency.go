package models

import (
	"cmp"
	"slices"

	"github.com/tatianab/rps-game/internal/rules"
)

// FrequencyTracker counts the player's choices within one session.
type FrequencyTracker struct {
	counts map[rules.Choice]int
}

func NewFrequencyTracker() *FrequencyTracker {
	return &FrequencyTracker{counts: make(map[rules.Choice]int)}
}

// Record increments the count for c, starting it at 1 when unseen.
func (f *FrequencyTracker) Record(c rules.Choice) {
	if f.counts == nil {
		f.counts = make(map[rules.Choice]int)
	}
	f.counts[c]++
}

func (f *FrequencyTracker) Count(c rules.Choice) int {
	return f.counts[c]
}

// Len returns the number of distinct choices recorded.
func (f *FrequencyTracker) Len() int {
	return len(f.counts)
}

func (f *FrequencyTracker) Reset() {
	clear(f.counts)
}

// MostFrequent returns the choice with the highest count.
// Ties go to the lowest choice identifier. ok is false when nothing was recorded.
func (f *FrequencyTracker) MostFrequent() (c rules.Choice, count int, ok bool) {
	report := f.Report()
	if len(report) == 0 {
		return "", 0, false
	}
	return report[0].Choice, report[0].Count, true
}

// Report lists every recorded choice by descending count, ties by lowest identifier.
func (f *FrequencyTracker) Report() []Frequency {
	out := make([]Frequency, 0, len(f.counts))
	for c, n := range f.counts {
		out = append(out, Frequency{Choice: c, Count: n})
	}
	slices.SortFunc(out, func(a, b Frequency) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Choice, b.Choice)
	})
	return out
}
