package exprset

import "sort"

// Arrange returns a new container whose sample axis is stable-sorted by one
// or more metadata columns, earlier keys taking precedence. Every assay's
// columns and the metadata rows are permuted identically; the sample set is
// unchanged.
func (es *ExpressionSet) Arrange(keys ...string) (*ExpressionSet, error) {
	cols := make([][]string, len(keys))
	for k, key := range keys {
		col, exists := es.meta[key]
		if !exists {
			return nil, NotFoundError{Kind: "covariate", Name: key}
		}
		cols[k] = col
	}

	perm := make([]int, len(es.samples))
	for j := range perm {
		perm[j] = j
	}

	sort.SliceStable(perm, func(a, b int) bool {
		for _, col := range cols {
			if col[perm[a]] != col[perm[b]] {
				return col[perm[a]] < col[perm[b]]
			}
		}
		return false
	})

	rowIdx := make([]int, len(es.features))
	for i := range rowIdx {
		rowIdx[i] = i
	}

	return es.slice(rowIdx, perm)
}
