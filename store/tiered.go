package store

import (
	"context"
	"sync"
)

// Compile-time interface check.
var _ Store = (*TieredStore)(nil)

// TieredStore wraps an in-memory store (fast path) with a persistent backend
// (durable path). Writes go to both stores (write-through); reads check memory
// first and fall back to the persistent store on a miss.
//
// Every operation holds the TieredStore lock across both tiers, so a backfill
// can never overwrite a concurrent append and both tiers keep the same order.
type TieredStore struct {
	mu         sync.Mutex
	memory     *MemoryStore
	persistent Store
}

// NewTieredStore creates a TieredStore backed by the given persistent store.
// An internal MemoryStore is created automatically.
func NewTieredStore(persistent Store) *TieredStore {
	return &TieredStore{
		memory:     NewMemoryStore(),
		persistent: persistent,
	}
}

// Append writes through to the persistent backend and then to memory.
// The persistent store is the source of truth for the returned count.
func (t *TieredStore) Append(ctx context.Context, session string, s Sample) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Bring memory up to date first so the append lands after the full
	// persisted history rather than starting a fresh partial sequence.
	if _, err := t.load(ctx, session); err != nil {
		return 0, err
	}

	count, err := t.persistent.Append(ctx, session, s)
	if err != nil {
		return 0, err
	}

	t.memory.Append(ctx, session, s)

	return count, nil
}

// Load serves from memory once the session has been seen. On a miss it reads
// the persistent store and backfills memory.
func (t *TieredStore) Load(ctx context.Context, session string) ([]Sample, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.load(ctx, session)
}

func (t *TieredStore) load(ctx context.Context, session string) ([]Sample, error) {
	if t.memory.has(session) {
		return t.memory.Load(ctx, session)
	}

	samples, err := t.persistent.Load(ctx, session)
	if err != nil {
		return nil, err
	}

	t.memory.fill(session, samples)
	return samples, nil
}

// Count reads from memory when the session is cached, otherwise from the
// persistent store.
func (t *TieredStore) Count(ctx context.Context, session string) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.memory.has(session) {
		return t.memory.Count(ctx, session)
	}
	return t.persistent.Count(ctx, session)
}

// Reset removes the session from both stores.
func (t *TieredStore) Reset(ctx context.Context, session string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.memory.Reset(ctx, session)
	return t.persistent.Reset(ctx, session)
}

// Close closes the persistent backend. The in-memory store needs no cleanup.
func (t *TieredStore) Close() error {
	return t.persistent.Close()
}
