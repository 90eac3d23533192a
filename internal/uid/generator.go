package uid

import (
	"math/rand/v2"
)

// Generator produces uniformly distributed random UIDs.
//
// The generator is backed by a PCG pseudorandom source seeded once at
// construction. It is NOT cryptographically secure and makes no
// uniqueness guarantee by itself; use UniqueGenerator when distinct
// identifiers are required.
//
// Thread-safety: a Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded from the process-global
// random source.
func NewGenerator() *Generator {
	return NewSeededGenerator(rand.Uint64())
}

// NewSeededGenerator creates a generator with an explicit seed.
// The same seed always yields the same UID sequence, which tests and
// deterministic scenarios rely on.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

// Generate returns a new random UID, each byte drawn independently and
// uniformly from [0, 255].
func (g *Generator) Generate() UID {
	var u UID
	for i := range u {
		u[i] = byte(g.rng.Uint64N(256))
	}
	return u
}

// UniqueGenerator wraps a Generator with collision avoidance.
//
// Next uses rejection sampling: it regenerates until the UID has not
// been seen before. With a 2^56 identifier space and workloads far
// below it, retries are vanishingly rare, but the loop is unbounded
// in principle.
type UniqueGenerator struct {
	gen      *Generator
	seen     map[UID]struct{}
	attempts uint64
}

// NewUniqueGenerator creates a collision-avoiding generator on top of gen.
func NewUniqueGenerator(gen *Generator) *UniqueGenerator {
	return &UniqueGenerator{
		gen:  gen,
		seen: make(map[UID]struct{}),
	}
}

// Next returns a UID never returned by this UniqueGenerator before.
func (u *UniqueGenerator) Next() UID {
	for {
		u.attempts++
		id := u.gen.Generate()
		if _, dup := u.seen[id]; dup {
			continue
		}
		u.seen[id] = struct{}{}
		return id
	}
}

// Count returns the number of distinct UIDs produced so far.
func (u *UniqueGenerator) Count() int {
	return len(u.seen)
}

// Attempts returns the total number of raw generations, including
// rejected collisions. Attempts >= Count always holds.
func (u *UniqueGenerator) Attempts() uint64 {
	return u.attempts
}

// Seen reports whether the UID was previously returned by Next.
func (u *UniqueGenerator) Seen(id UID) bool {
	_, ok := u.seen[id]
	return ok
}
