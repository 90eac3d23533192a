package bench

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/uidbench/internal/uid"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func existingUIDs(n int) []uid.UID {
	gen := uid.NewUniqueGenerator(uid.NewSeededGenerator(100))
	ids := make([]uid.UID, n)
	for i := range ids {
		ids[i] = gen.Next()
	}
	return ids
}

func TestBuildWorkload_SizeAndSplit(t *testing.T) {
	existing := existingUIDs(50)
	member := make(map[uid.UID]struct{}, len(existing))
	for _, id := range existing {
		member[id] = struct{}{}
	}

	gen := uid.NewSeededGenerator(200)
	keys := buildWorkload(testRNG(), existing, gen, 40, 0.7)
	require.Len(t, keys, 40)

	fromExisting := 0
	for _, k := range keys {
		if _, ok := member[k]; ok {
			fromExisting++
		}
	}
	// ceil(0.7 * 40) = 28 slots drawn from the inserted set; fresh
	// keys colliding with it is effectively impossible.
	assert.Equal(t, 28, fromExisting)
}

func TestBuildWorkload_CeilOnFractionalSplit(t *testing.T) {
	existing := existingUIDs(10)
	member := make(map[uid.UID]struct{}, len(existing))
	for _, id := range existing {
		member[id] = struct{}{}
	}

	gen := uid.NewSeededGenerator(300)
	keys := buildWorkload(testRNG(), existing, gen, 3, 0.7)
	require.Len(t, keys, 3)

	fromExisting := 0
	for _, k := range keys {
		if _, ok := member[k]; ok {
			fromExisting++
		}
	}
	// ceil(0.7 * 3) = 3: every slot comes from the inserted set.
	assert.Equal(t, 3, fromExisting)
}

func TestBuildWorkload_EmptyExisting(t *testing.T) {
	gen := uid.NewSeededGenerator(400)
	keys := buildWorkload(testRNG(), nil, gen, 10, 0.7)
	require.Len(t, keys, 10)
	// Nothing to draw hits from: every key is freshly generated.
}

func TestBuildWorkload_ZeroRatio(t *testing.T) {
	existing := existingUIDs(5)
	member := make(map[uid.UID]struct{}, len(existing))
	for _, id := range existing {
		member[id] = struct{}{}
	}

	gen := uid.NewSeededGenerator(500)
	keys := buildWorkload(testRNG(), existing, gen, 10, 0)
	require.Len(t, keys, 10)
	for _, k := range keys {
		_, ok := member[k]
		assert.False(t, ok, "zero ratio must draw nothing from the inserted set")
	}
}

func TestBuildWorkload_ShuffleIsSeeded(t *testing.T) {
	existing := existingUIDs(30)

	a := buildWorkload(rand.New(rand.NewPCG(9, 10)), existing, uid.NewSeededGenerator(600), 20, 0.5)
	b := buildWorkload(rand.New(rand.NewPCG(9, 10)), existing, uid.NewSeededGenerator(600), 20, 0.5)
	assert.Equal(t, a, b, "same RNG state must yield the same workload order")
}
