// Package assign distributes identifiers across groups at random while
// keeping group sizes balanced. It was written to hand out peer-marking
// teams, but works for any balanced draw, such as spreading samples over
// sequencing batches.
package assign

import (
	"fmt"
	"math"
	"math/rand"
)

// Assignment records the groups drawn for one identifier.
type Assignment struct {
	ID     string
	Groups []string
}

// Balanced assigns each identifier perID distinct groups, drawn at random
// from the groups still below capacity. Capacity is ceil(len(ids) /
// len(groups) * perID), so no group ends up with more than its share.
// Assignments come back in input identifier order; the count map reports how
// many identifiers each group received. The draw is deterministic for a
// given rand source.
func Balanced(r *rand.Rand, ids, groups []string, perID int) ([]Assignment, map[string]int, error) {
	if perID < 1 {
		return nil, nil, fmt.Errorf("each identifier needs at least 1 group, got %d", perID)
	}
	if len(groups) < perID {
		return nil, nil, fmt.Errorf("cannot draw %d distinct groups from %d", perID, len(groups))
	}
	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("no identifiers to assign")
	}

	capacity := int(math.Ceil(float64(len(ids)) / float64(len(groups)) * float64(perID)))

	counts := make(map[string]int, len(groups))
	for _, g := range groups {
		counts[g] = 0
	}

	pool := append([]string{}, groups...)
	out := make([]Assignment, 0, len(ids))

	for _, id := range ids {
		drawn := sample(r, pool, perID)
		for _, g := range drawn {
			counts[g]++
		}

		out = append(out, Assignment{ID: id, Groups: drawn})

		// Retire full groups, but never shrink the pool below the number of
		// distinct groups each identifier still needs.
		if len(pool) > perID {
			open := make([]string, 0, len(pool))
			for _, g := range pool {
				if counts[g] < capacity {
					open = append(open, g)
				}
			}
			if len(open) >= perID {
				pool = open
			}
		}
	}

	return out, counts, nil
}

// sample draws n distinct elements from pool without replacement.
func sample(r *rand.Rand, pool []string, n int) []string {
	idx := r.Perm(len(pool))[:n]

	out := make([]string, n)
	for k, i := range idx {
		out[k] = pool[i]
	}

	return out
}
