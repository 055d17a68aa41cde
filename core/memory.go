package core

import "time"

// MemoryKind categorizes an agent memory entry.
type MemoryKind string

const (
	// MemoryAnalysis records the outcome of an Analyze pass.
	MemoryAnalysis MemoryKind = "analysis"
	// MemoryExecution records the outcome of an Execute pass.
	MemoryExecution MemoryKind = "execution"
)

// MemoryEntry is one append-only record in an agent's per-ticket memory log.
// Entries are never overwritten; later entries for the same ticket are
// appended after earlier ones.
type MemoryEntry struct {
	ID        string         `json:"id"`
	TicketID  string         `json:"ticket_id"`
	Kind      MemoryKind     `json:"kind"`
	Content   any            `json:"content"`
	Meta      map[string]any `json:"meta,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
