package models

import "slices"

// HistoryLog is the ordered, append-only list of round outcomes for a session.
type HistoryLog struct {
	entries []HistoryEntry
}

func NewHistoryLog() *HistoryLog {
	return &HistoryLog{}
}

func (h *HistoryLog) Append(e HistoryEntry) {
	h.entries = append(h.entries, e)
}

func (h *HistoryLog) Len() int {
	return len(h.entries)
}

func (h *HistoryLog) Entries() []HistoryEntry {
	return slices.Clone(h.entries)
}

// Display returns the entries as lines for presentation; nil when the log is empty.
func (h *HistoryLog) Display() []string {
	if len(h.entries) == 0 {
		return nil
	}
	return h.lines()
}

// Persist writes every entry to sink, one per line, replacing what the sink held before.
func (h *HistoryLog) Persist(sink Sink) error {
	return sink.WriteLines(h.lines())
}

func (h *HistoryLog) lines() []string {
	lines := make([]string, len(h.entries))
	for i, e := range h.entries {
		lines[i] = string(e)
	}
	return lines
}
