package store

import "context"

// Sample mirrors mcpi.Point so the store package doesn't import the parent.
type Sample struct {
	X, Y float64
}

// Store defines the interface for backends that persist sample sequences.
// Each session is an independent, append-only sequence.
type Store interface {
	// Append adds s to the end of the session's sequence and returns the new
	// length of that sequence.
	Append(ctx context.Context, session string, s Sample) (count int64, err error)

	// Load returns every sample recorded for the session, in insertion order.
	// An unknown session yields an empty slice and no error.
	Load(ctx context.Context, session string) ([]Sample, error)

	// Count returns the length of the session's sequence.
	Count(ctx context.Context, session string) (int64, error)

	// Reset removes all samples for the session.
	Reset(ctx context.Context, session string) error

	// Close releases any resources held by the store.
	Close() error
}
