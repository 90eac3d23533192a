// Package harness runs demo and benchmark scenarios end to end.
//
// The demo driver exercises the record store with three fixed records
// and one hit/miss lookup pair. Benchmark scenarios are defined in
// YAML files validated against an embedded CUE schema:
//
//	name: smoke
//	description: "Small deterministic run"
//	records: 100
//	searches: 50
//	hit_ratio: 0.7
//	seed: 42
//	locale: en-US
//	demo: true
//
// With a fixed seed, a stepping clock, and a fixed run ID, scenario
// output is byte-stable and compared against golden files under
// testdata/golden.
package harness
