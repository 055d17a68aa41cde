package agent

import (
	"sync"
	"time"

	"github.com/hupe1980/ticketmesh/core"
)

// ticketLog is the append-only entry list for one ticket, guarded by its own
// mutex so appends for different tickets never contend.
type ticketLog struct {
	mu      sync.Mutex
	entries []core.MemoryEntry
}

// memoryLog is a concurrency-safe mapping from ticket id to an append-only
// entry list. The outer lock only guards the map itself; appends to a
// ticket's list happen under that ticket's lock.
type memoryLog struct {
	mu   sync.RWMutex
	logs map[string]*ticketLog
}

func newMemoryLog() *memoryLog {
	return &memoryLog{logs: make(map[string]*ticketLog)}
}

func (m *memoryLog) append(ticketID string, kind core.MemoryKind, content any, meta map[string]any) {
	log := m.logFor(ticketID)

	log.mu.Lock()
	defer log.mu.Unlock()
	log.entries = append(log.entries, core.MemoryEntry{
		ID:        core.NewID(),
		TicketID:  ticketID,
		Kind:      kind,
		Content:   content,
		Meta:      meta,
		Timestamp: time.Now().UTC(),
	})
}

// snapshot returns a copy of the entry list in append order.
func (m *memoryLog) snapshot(ticketID string) []core.MemoryEntry {
	m.mu.RLock()
	log, ok := m.logs[ticketID]
	m.mu.RUnlock()
	if !ok {
		return nil
	}

	log.mu.Lock()
	defer log.mu.Unlock()
	entries := make([]core.MemoryEntry, len(log.entries))
	copy(entries, log.entries)
	return entries
}

func (m *memoryLog) logFor(ticketID string) *ticketLog {
	m.mu.RLock()
	log, ok := m.logs[ticketID]
	m.mu.RUnlock()
	if ok {
		return log
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if log, ok = m.logs[ticketID]; ok {
		return log
	}
	log = &ticketLog{}
	m.logs[ticketID] = log
	return log
}
