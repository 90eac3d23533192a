// Package store provides an in-memory, hash-indexed record store.
//
// Records are held in an append-only sequence; a map from UID to the
// record's stable index gives O(1) average-case lookup. Storing
// indices rather than pointers means growth of the backing sequence
// never invalidates the index.
//
// The store is single-writer, single-reader: no internal locking.
package store
