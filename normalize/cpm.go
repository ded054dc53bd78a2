// Package normalize derives depth-normalized assays from raw counts and
// summarizes containers per sample and per feature.
package normalize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/strandlab/exprset"
)

// LibrarySizes returns the per-sample column sums of the named assay, in
// sample order.
func LibrarySizes(es *exprset.ExpressionSet, assay string) ([]float64, error) {
	m, err := es.Assay(assay)
	if err != nil {
		return nil, err
	}

	sizes := make([]float64, es.NSamples())
	col := make([]float64, es.NFeatures())
	for j := range sizes {
		for i := range m {
			col[i] = m[i][j]
		}
		sizes[j] = floats.Sum(col)
	}

	return sizes, nil
}

// CPM derives a counts-per-million assay from src and returns a new
// container carrying it under dst. A sample with library size zero fails
// rather than dividing by zero.
func CPM(es *exprset.ExpressionSet, src, dst string) (*exprset.ExpressionSet, error) {
	sizes, err := LibrarySizes(es, src)
	if err != nil {
		return nil, err
	}
	for j, size := range sizes {
		if size == 0 {
			return nil, fmt.Errorf("sample %s has library size 0", es.Samples()[j])
		}
	}

	m, err := es.Assay(src)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(m))
	for i, row := range m {
		vals := make([]float64, len(row))
		for j, v := range row {
			vals[j] = v / sizes[j] * 1e6
		}
		out[i] = vals
	}

	return es.WithAssay(dst, out)
}

// LogCPM derives log2 counts-per-million with a prior count added to both
// numerator and library size, the usual guard against log of zero.
func LogCPM(es *exprset.ExpressionSet, src, dst string, prior float64) (*exprset.ExpressionSet, error) {
	sizes, err := LibrarySizes(es, src)
	if err != nil {
		return nil, err
	}

	m, err := es.Assay(src)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(m))
	for i, row := range m {
		vals := make([]float64, len(row))
		for j, v := range row {
			vals[j] = math.Log2((v + prior) / (sizes[j] + 2*prior) * 1e6)
		}
		out[i] = vals
	}

	return es.WithAssay(dst, out)
}
