package bench

import (
	"math"
	"math/rand/v2"

	"github.com/roach88/uidbench/internal/uid"
)

// buildWorkload assembles the search key list.
//
// The first ceil(ratio*m) slots are drawn with replacement from the
// inserted UIDs; the remainder are freshly generated and not checked
// against the inserted set (absence is virtually certain in a 2^56
// space). The full list is shuffled so hits and misses interleave.
func buildWorkload(rng *rand.Rand, existing []uid.UID, gen *uid.Generator, m int, ratio float64) []uid.UID {
	hits := int(math.Ceil(ratio * float64(m)))
	if hits > m {
		hits = m
	}
	if len(existing) == 0 {
		hits = 0
	}

	keys := make([]uid.UID, 0, m)
	for i := 0; i < hits; i++ {
		keys = append(keys, existing[rng.IntN(len(existing))])
	}
	for i := hits; i < m; i++ {
		keys = append(keys, gen.Generate())
	}

	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return keys
}
