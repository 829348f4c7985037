// Package store defines the [Store] interface for sample sequence backends
// and provides three implementations:
//
//   - [MemoryStore]: fast, in-memory sequences that are lost on restart.
//   - [SQLiteStore]: persistent sequences backed by a SQLite database.
//   - [TieredStore]: a MemoryStore in front of any persistent Store.
//
// A Redis backend lives in the store/redis module. Custom backends can be
// created by implementing the [Store] interface.
package store
