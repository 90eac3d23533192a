// Package bench drives the record store benchmark.
//
// The driver populates a store with unique random UIDs, builds a mixed
// hit/miss search workload, executes the lookups, and produces a
// Report. All timing goes through an injected Clock and all console
// output through an injected Reporter, so the core loops stay free of
// I/O side effects and run deterministically under test.
package bench
