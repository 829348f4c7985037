package mcpi

// Option configures a SampleStore.
type Option func(*SampleStore)

// WithCapacity preallocates room for n points. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(s *SampleStore) {
		if n > 0 {
			s.points = make([]Point, 0, n)
		}
	}
}

// WithOnSample sets a callback that fires after every Add with the point and
// whether it was counted as inside. Renderers use it to colour points as they
// arrive without re-running the containment test.
func WithOnSample(fn func(p Point, inside bool)) Option {
	return func(s *SampleStore) {
		s.onSample = fn
	}
}
