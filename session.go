package mcpi

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ryhazerus/mcpi/store"
)

// ErrSessionNotFound is returned by OpenSession when the backend holds no
// samples for the requested session.
var ErrSessionNotFound = errors.New("mcpi: session not found")

// Session records every point added to a SampleStore in a store.Store so a
// run can be resumed later. Like SampleStore, a Session is not safe for
// concurrent use.
type Session struct {
	id      string
	samples *SampleStore
	store   store.Store
}

// NewSession starts an empty session with a freshly generated ID.
// If st is nil, an in-memory store is used.
func NewSession(st store.Store, c Circle, opts ...Option) *Session {
	if st == nil {
		st = store.NewMemoryStore()
	}
	return &Session{
		id:      uuid.NewString(),
		samples: NewSampleStore(c, opts...),
		store:   st,
	}
}

// OpenSession resumes a recorded session. Stored points are replayed through
// Add, so the inside count is taken against c rather than whatever circle the
// session was recorded with.
func OpenSession(ctx context.Context, st store.Store, id string, c Circle, opts ...Option) (*Session, error) {
	recorded, err := st.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mcpi: session %s: %w", id, err)
	}
	if len(recorded) == 0 {
		return nil, fmt.Errorf("mcpi: session %s: %w", id, ErrSessionNotFound)
	}

	s := &Session{
		id:      id,
		samples: NewSampleStore(c, append([]Option{WithCapacity(len(recorded))}, opts...)...),
		store:   st,
	}
	for _, r := range recorded {
		s.samples.Add(Point{X: r.X, Y: r.Y})
	}
	return s, nil
}

// ID returns the session identifier used as the store key.
func (s *Session) ID() string {
	return s.id
}

// Samples returns the in-memory store backing the session.
// Points must be added through the Session, not directly, or they will not be
// recorded.
func (s *Session) Samples() *SampleStore {
	return s.samples
}

// Add records p in the backend and, once that succeeds, adds it to the
// in-memory store. On error the in-memory store is left unchanged.
func (s *Session) Add(ctx context.Context, p Point) error {
	if _, err := s.store.Append(ctx, s.id, store.Sample{X: p.X, Y: p.Y}); err != nil {
		return fmt.Errorf("mcpi: session %s: %w", s.id, err)
	}
	s.samples.Add(p)
	return nil
}

// Reset deletes the recorded samples and starts the in-memory store over
// against the same circle, keeping any WithOnSample callback.
func (s *Session) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx, s.id); err != nil {
		return fmt.Errorf("mcpi: session %s: %w", s.id, err)
	}
	s.samples = &SampleStore{circle: s.samples.circle, onSample: s.samples.onSample}
	return nil
}

// Close releases resources held by the session's store.
func (s *Session) Close() error {
	return s.store.Close()
}
