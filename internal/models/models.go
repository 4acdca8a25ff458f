package models

import "github.com/tatianab/rps-game/internal/rules"

// HistoryEntry is a single human-readable round outcome, e.g. "Alice wins this round!".
type HistoryEntry string

// Frequency is how often the player picked a choice during one session.
type Frequency struct {
	Choice rules.Choice
	Count  int
}

// Scores holds the running totals of a session.
type Scores struct {
	Player   int
	Computer int
}
