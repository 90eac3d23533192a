package bench

import (
	"fmt"
	"math/rand/v2"

	"github.com/roach88/uidbench/internal/store"
	"github.com/roach88/uidbench/internal/uid"
)

// Defaults match the original workload dimensions.
const (
	DefaultRecords  = 100000
	DefaultSearches = 10000
	DefaultHitRatio = 0.7
)

// Progress cadence inside the timed loops. Search progress is only
// emitted for workloads large enough for it to be useful.
const (
	generateProgressEvery   = 10000
	searchProgressEvery     = 1000
	searchProgressThreshold = 1000
)

// workloadSeedMix decorrelates the workload RNG stream from the UID
// generator stream derived from the same seed.
const workloadSeedMix = 0x9E3779B97F4A7C15

// Config holds benchmark parameters. The zero value means "use
// defaults" for every field.
type Config struct {
	// Records is the number of unique records to insert (N).
	Records int

	// Searches is the number of workload lookups to run (M).
	Searches int

	// HitRatio is the fraction of the workload drawn from inserted
	// UIDs; the rest are fresh keys that will miss.
	HitRatio float64

	// Seed fixes the PRNG streams for deterministic runs.
	// Zero selects a random seed.
	Seed uint64
}

func (c Config) withDefaults() Config {
	if c.Records == 0 {
		c.Records = DefaultRecords
	}
	if c.Searches == 0 {
		c.Searches = DefaultSearches
	}
	if c.HitRatio == 0 {
		c.HitRatio = DefaultHitRatio
	}
	return c
}

func (c Config) validate() error {
	if c.Records < 1 {
		return fmt.Errorf("invalid record count %d: must be positive", c.Records)
	}
	if c.Searches < 1 {
		return fmt.Errorf("invalid search count %d: must be positive", c.Searches)
	}
	if c.HitRatio < 0 || c.HitRatio > 1 {
		return fmt.Errorf("invalid hit ratio %g: must be within [0, 1]", c.HitRatio)
	}
	return nil
}

// Driver runs the benchmark: populate, build workload, search, report.
//
// Single-threaded by design; every phase runs to completion before the
// next begins.
type Driver struct {
	cfg      Config
	clock    Clock
	reporter Reporter
	runIDs   RunIDGenerator
}

// New creates a driver. Nil clock, reporter, or run ID generator
// select the production defaults (wall clock, no progress output,
// UUIDv7 run IDs).
func New(cfg Config, clock Clock, reporter Reporter, runIDs RunIDGenerator) *Driver {
	if clock == nil {
		clock = WallClock{}
	}
	if reporter == nil {
		reporter = NopReporter{}
	}
	if runIDs == nil {
		runIDs = UUIDv7Generator{}
	}
	return &Driver{cfg: cfg, clock: clock, reporter: reporter, runIDs: runIDs}
}

// Run executes the full benchmark and returns its report.
func (d *Driver) Run() (Report, error) {
	cfg := d.cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return Report{}, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	gen := uid.NewSeededGenerator(seed)
	unique := uid.NewUniqueGenerator(gen)
	st := store.NewWithCapacity(cfg.Records)

	report := Report{
		RunID:     d.runIDs.Generate(),
		StartedAt: d.clock.Now(),
		Records:   cfg.Records,
		Searches:  cfg.Searches,
	}

	// Phase 1: generate unique UIDs and populate the store.
	d.reporter.StageStarted(StageGenerate, cfg.Records)
	existing := make([]uid.UID, 0, cfg.Records)

	start := d.clock.Now()
	for i := 0; i < cfg.Records; i++ {
		id := unique.Next()
		rec := store.NewRecordUID(id, fmt.Sprintf("Данные для записи %d", i+1))
		if err := st.Insert(rec); err != nil {
			// Unreachable while the unique generator holds its
			// no-repeats contract.
			return Report{}, fmt.Errorf("populate store: %w", err)
		}
		existing = append(existing, id)

		if (i+1)%generateProgressEvery == 0 {
			d.reporter.Progress(StageGenerate, i+1)
		}
	}
	report.GenerateElapsed = d.clock.Now().Sub(start)
	report.GenerateAttempts = unique.Attempts()
	d.reporter.StageFinished(StageGenerate, report.GenerateElapsed)

	// Phase 2: build the mixed hit/miss workload.
	d.reporter.StageStarted(StageWorkload, cfg.Searches)
	rng := rand.New(rand.NewPCG(seed, seed^workloadSeedMix))
	keys := buildWorkload(rng, existing, gen, cfg.Searches, cfg.HitRatio)

	// Phase 3: execute the lookups.
	d.reporter.StageStarted(StageSearch, len(keys))
	emitSearchProgress := len(keys) > searchProgressThreshold

	start = d.clock.Now()
	hits, misses := 0, 0
	for i, key := range keys {
		if _, ok := st.Lookup(key); ok {
			hits++
		} else {
			misses++
		}

		if emitSearchProgress && (i+1)%searchProgressEvery == 0 {
			d.reporter.Progress(StageSearch, i+1)
		}
	}
	report.SearchElapsed = d.clock.Now().Sub(start)
	report.Hits = hits
	report.Misses = misses
	d.reporter.StageFinished(StageSearch, report.SearchElapsed)

	return report, nil
}
