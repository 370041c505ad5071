package dendrogram

import (
	"fmt"
	"math/rand"
	"sort"
)

// Random builds a random binary hierarchy over keys: at each step two
// distinct clusters are drawn uniformly and merged, until one remains.
// It serves as the clustering-free baseline. A nil rng uses a fixed seed.
func Random(keys []int, rng *rand.Rand) (*Tree, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("Random: %w", ErrEmptyTree)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	sorted := append([]int(nil), keys...)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, fmt.Errorf("Random: duplicate key %d: %w", sorted[i], ErrMalformedTree)
		}
	}

	t := New()
	pool := make([]NodeID, len(sorted))
	for i, k := range sorted {
		pool[i] = t.AddLeaf(k)
	}
	next := sorted[len(sorted)-1] + 1
	for len(pool) > 1 {
		i := rng.Intn(len(pool))
		j := rng.Intn(len(pool) - 1)
		if j >= i {
			j++
		}
		id, err := t.AddInternal(next, pool[i], pool[j])
		if err != nil {
			return nil, fmt.Errorf("Random: %w", err)
		}
		next++
		if i > j {
			i, j = j, i
		}
		pool[i] = id
		pool = append(pool[:j], pool[j+1:]...)
	}
	if err := t.SetRoot(pool[0]); err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}

	return t, nil
}
