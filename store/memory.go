package store

import (
	"context"
	"sync"
)

// Compile-time interface check.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store implementation.
// It is safe for concurrent use. Samples are lost on process restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]Sample
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]Sample),
	}
}

// Append adds s to the session's sequence.
func (m *MemoryStore) Append(_ context.Context, session string, s Sample) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session] = append(m.sessions[session], s)
	return int64(len(m.sessions[session])), nil
}

// Load returns a copy of the session's samples.
func (m *MemoryStore) Load(_ context.Context, session string) ([]Sample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	samples := m.sessions[session]
	out := make([]Sample, len(samples))
	copy(out, samples)
	return out, nil
}

// Count returns the number of samples held for the session.
func (m *MemoryStore) Count(_ context.Context, session string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return int64(len(m.sessions[session])), nil
}

// Reset removes the session's samples.
func (m *MemoryStore) Reset(_ context.Context, session string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, session)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}

// fill replaces the session's samples wholesale. Used by TieredStore to
// backfill from its persistent backend.
func (m *MemoryStore) fill(session string, samples []Sample) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]Sample, len(samples))
	copy(cp, samples)
	m.sessions[session] = cp
}

// has reports whether the session has ever been written or filled.
func (m *MemoryStore) has(session string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.sessions[session]
	return ok
}
