package logging

import "sync"

// Store holds all log entries of a run in memory. It is thread-safe.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

func newStore() *Store {
	return &Store{
		entries: make([]Entry, 0, 1024),
	}
}

// Add appends a new entry to the store.
func (s *Store) Add(entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// Entries returns a copy of all stored log entries.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entriesCopy := make([]Entry, len(s.entries))
	copy(entriesCopy, s.entries)
	return entriesCopy
}
