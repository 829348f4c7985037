package mcpi

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a point is requested at a position the
// store does not hold.
var ErrIndexOutOfRange = errors.New("mcpi: index out of range")

// IndexOutOfRangeError reports the rejected index and the store length at the
// time of the call.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("mcpi: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

// SampleStore accumulates sampled points against a fixed circle and derives
// the Monte Carlo estimate of π from the share of points inside it.
//
// A SampleStore is not safe for concurrent use. Owners that add points from
// several goroutines must serialise access themselves.
type SampleStore struct {
	circle   Circle
	points   []Point
	inside   int
	onSample func(Point, bool)
}

// Stats is a point-in-time view of a SampleStore.
type Stats struct {
	Count    int
	Inside   int
	Estimate float64
}

// NewSampleStore creates an empty store counting against c.
// The circle is held by reference and must not change afterwards; counts
// already taken are never re-evaluated. NewSampleStore panics if c is nil.
func NewSampleStore(c Circle, opts ...Option) *SampleStore {
	if c == nil {
		panic("mcpi: nil Circle")
	}
	s := &SampleStore{circle: c}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Circle returns the circle the store counts against.
func (s *SampleStore) Circle() Circle {
	return s.circle
}

// Point returns the i-th point in insertion order.
func (s *SampleStore) Point(i int) (Point, error) {
	if i < 0 || i >= len(s.points) {
		return Point{}, &IndexOutOfRangeError{Index: i, Len: len(s.points)}
	}
	return s.points[i], nil
}

// Len returns the number of points added so far.
func (s *SampleStore) Len() int {
	return len(s.points)
}

// Inside returns how many of the added points fell inside the circle.
func (s *SampleStore) Inside() int {
	return s.inside
}

// Add appends p and counts it if the circle contains it.
func (s *SampleStore) Add(p Point) {
	s.points = append(s.points, p)
	in := s.circle.Contains(p)
	if in {
		s.inside++
	}
	if s.onSample != nil {
		s.onSample(p, in)
	}
}

// EstimatePi returns 4 * inside / total, or 0 when no points have been added.
func (s *SampleStore) EstimatePi() float64 {
	if len(s.points) == 0 {
		return 0
	}
	return 4 * float64(s.inside) / float64(len(s.points))
}

// Points returns a copy of all points in insertion order.
func (s *SampleStore) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Snapshot returns the count, inside count and estimate together.
func (s *SampleStore) Snapshot() Stats {
	return Stats{
		Count:    len(s.points),
		Inside:   s.inside,
		Estimate: s.EstimatePi(),
	}
}
