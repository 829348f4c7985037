// Package mcpi holds the data model for a Monte Carlo estimate of π: a store
// of sampled points, the number of them that fell inside a reference circle,
// and the estimate 4 × inside / total that follows from the ratio of the
// circle's area to its bounding square.
//
// # Key Concepts
//
//   - [Circle] is the containment test points are counted against. [Disk] is
//     the usual implementation.
//   - [SampleStore] accumulates points in insertion order and reports
//     [SampleStore.EstimatePi]. It is a plain value holder and is not safe
//     for concurrent use.
//   - [Session] pairs a SampleStore with a [store.Store] so a run survives
//     restarts. An in-memory store, a SQLite store and a Redis store are
//     available.
//
// Generating points is left to the caller.
//
// # Quick Start
//
//	samples := mcpi.NewSampleStore(mcpi.UnitDisk())
//	for i := 0; i < n; i++ {
//		samples.Add(mcpi.Point{X: 2*rand.Float64() - 1, Y: 2*rand.Float64() - 1})
//	}
//	fmt.Println(samples.EstimatePi())
//
// See the [SampleStore] documentation for the full API.
package mcpi
