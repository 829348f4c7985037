package store

import (
	"context"
	"sync"
	"testing"
)

func newTestTieredStore(t *testing.T) *TieredStore {
	t.Helper()
	persistent, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	ts := NewTieredStore(persistent)
	t.Cleanup(func() { ts.Close() })
	return ts
}

func TestTieredStoreAppend(t *testing.T) {
	s := newTestTieredStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		got, err := s.Append(ctx, "run", Sample{X: float64(i)})
		if err != nil {
			t.Fatal(err)
		}
		if got != i {
			t.Errorf("append %d: got %d, want %d", i, got, i)
		}
	}

	samples, _ := s.Load(ctx, "run")
	if len(samples) != 5 {
		t.Errorf("load: got %d samples, want 5", len(samples))
	}
}

func TestTieredStoreReset(t *testing.T) {
	s := newTestTieredStore(t)
	ctx := context.Background()

	s.Append(ctx, "run", Sample{})
	s.Reset(ctx, "run")

	got, _ := s.Count(ctx, "run")
	if got != 0 {
		t.Errorf("after reset: got %d, want 0", got)
	}
}

func TestTieredStorePersistentFallback(t *testing.T) {
	persistent, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer persistent.Close()

	ctx := context.Background()

	// Write data through a tiered store.
	ts1 := NewTieredStore(persistent)
	ts1.Append(ctx, "run", Sample{X: 1})
	ts1.Append(ctx, "run", Sample{X: 2})
	ts1.Append(ctx, "run", Sample{X: 3})

	// Simulate memory loss by creating a new tiered store with the same
	// persistent backend but a fresh MemoryStore.
	ts2 := NewTieredStore(persistent)

	got, err := ts2.Load(ctx, "run")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("persistent fallback: got %d samples, want 3", len(got))
	}

	// Appending after the fallback keeps the full history in memory.
	n, _ := ts2.Append(ctx, "run", Sample{X: 4})
	if n != 4 {
		t.Errorf("append after fallback: got %d, want 4", n)
	}
	got, _ = ts2.Load(ctx, "run")
	if len(got) != 4 || got[3].X != 4 {
		t.Errorf("memory after fallback append: got %v", got)
	}
}

func TestTieredStoreAppendWithoutLoad(t *testing.T) {
	persistent, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer persistent.Close()

	ctx := context.Background()
	persistent.Append(ctx, "run", Sample{X: 1})
	persistent.Append(ctx, "run", Sample{X: 2})

	ts := NewTieredStore(persistent)
	ts.Append(ctx, "run", Sample{X: 3})

	got, _ := ts.Load(ctx, "run")
	if len(got) != 3 {
		t.Errorf("load: got %d samples, want 3", len(got))
	}
}

// gatedStore holds the first Load open until release is closed.
type gatedStore struct {
	*MemoryStore
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gatedStore) Load(ctx context.Context, session string) ([]Sample, error) {
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	return g.MemoryStore.Load(ctx, session)
}

func TestTieredStoreBackfillDoesNotLoseAppend(t *testing.T) {
	ctx := context.Background()
	persistent := &gatedStore{
		MemoryStore: NewMemoryStore(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	persistent.MemoryStore.Append(ctx, "run", Sample{X: 1})
	persistent.MemoryStore.Append(ctx, "run", Sample{X: 2})

	ts := NewTieredStore(persistent)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		ts.Load(ctx, "run")
	}()

	<-persistent.entered
	go func() {
		defer wg.Done()
		if _, err := ts.Append(ctx, "run", Sample{X: 3}); err != nil {
			t.Error(err)
		}
	}()
	close(persistent.release)
	wg.Wait()

	got, err := ts.Load(ctx, "run")
	if err != nil {
		t.Fatal(err)
	}
	want := []Sample{{1, 0}, {2, 0}, {3, 0}}
	if len(got) != len(want) {
		t.Fatalf("tiered load: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if n, _ := ts.Count(ctx, "run"); n != 3 {
		t.Errorf("tiered count: got %d, want 3", n)
	}
}

func TestTieredStoreConcurrentAppendsKeepOrder(t *testing.T) {
	persistent := NewMemoryStore()
	ts := NewTieredStore(persistent)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ts.Append(ctx, "run", Sample{X: float64(i)})
		}(i)
	}
	wg.Wait()

	mem, _ := ts.Load(ctx, "run")
	disk, _ := persistent.Load(ctx, "run")
	if len(mem) != 50 || len(disk) != 50 {
		t.Fatalf("lengths: memory %d, persistent %d, want 50", len(mem), len(disk))
	}
	for i := range disk {
		if mem[i] != disk[i] {
			t.Fatalf("sample %d: memory %v, persistent %v", i, mem[i], disk[i])
		}
	}
}
