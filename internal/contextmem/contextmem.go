// Package contextmem keeps a short history of recently mentioned items so
// referential commands ("make that 15") can resolve against the most recent
// target of the conversation.
package contextmem

import (
	"sync"
	"time"
)

// DefaultSize is the number of entries retained when none is configured.
const DefaultSize = 5

// Entry records one resolved mention.
type Entry struct {
	ItemName string
	Intent   string
	At       time.Time
}

// Memory is a fixed-capacity history of mentions, newest first on read.
// It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
	size    int
	now     func() time.Time
}

// New returns a memory that retains up to size entries. A non-positive
// size falls back to the default.
func New(size int) *Memory {
	if size <= 0 {
		size = DefaultSize
	}
	return &Memory{size: size, now: time.Now}
}

// Record remembers a mention, evicting the oldest entry when full. Empty
// names are ignored.
func (m *Memory) Record(itemName, intent string) {
	if itemName == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, Entry{ItemName: itemName, Intent: intent, At: m.now()})
	if len(m.entries) > m.size {
		m.entries = m.entries[len(m.entries)-m.size:]
	}
}

// LastItemName returns the most recently mentioned item, if any.
func (m *Memory) LastItemName() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.entries) == 0 {
		return "", false
	}
	return m.entries[len(m.entries)-1].ItemName, true
}

// Entries returns the history, most recent first.
func (m *Memory) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Entry, len(m.entries))
	for i, e := range m.entries {
		out[len(m.entries)-1-i] = e
	}
	return out
}

// Len reports the number of retained entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Clear drops all history.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}
