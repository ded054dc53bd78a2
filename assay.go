package exprset

import (
	"fmt"
	"sort"
)

// WithAssay returns a new container carrying all existing assays plus one
// more over the same axes. Values[i][j] must follow Features and Samples in
// the container's order; a dimension disagreement fails with
// AxisMismatchError.
func (es *ExpressionSet) WithAssay(name string, values [][]float64) (*ExpressionSet, error) {
	if _, exists := es.assays[name]; exists {
		return nil, fmt.Errorf("assay %q already exists", name)
	}
	if len(values) != len(es.features) {
		return nil, AxisMismatchError{Assay: name, Detail: fmt.Sprintf("%d rows for %d features", len(values), len(es.features))}
	}

	out := &ExpressionSet{
		features:   append([]string{}, es.features...),
		samples:    append([]string{}, es.samples...),
		assayNames: append(append([]string{}, es.assayNames...), name),
		assays:     make(map[string][][]float64, len(es.assays)+1),
		covariates: append([]string{}, es.covariates...),
		meta:       make(map[string][]string, len(es.meta)),
	}
	sort.Strings(out.assayNames)

	for existing, m := range es.assays {
		rows := make([][]float64, len(m))
		for i, row := range m {
			rows[i] = append([]float64{}, row...)
		}
		out.assays[existing] = rows
	}

	rows := make([][]float64, len(values))
	for i, row := range values {
		if len(row) != len(es.samples) {
			return nil, AxisMismatchError{Assay: name, Detail: fmt.Sprintf("row %d has %d values for %d samples", i, len(row), len(es.samples))}
		}
		rows[i] = append([]float64{}, row...)
	}
	out.assays[name] = rows

	for cov, col := range es.meta {
		out.meta[cov] = append([]string{}, col...)
	}

	out.featureIndex = indexOf(out.features)
	out.sampleIndex = indexOf(out.samples)

	return out, nil
}

// Table exports the sample metadata as a standalone SampleTable.
func (es *ExpressionSet) Table() *SampleTable {
	t := &SampleTable{
		Samples:    append([]string{}, es.samples...),
		Covariates: append([]string{}, es.covariates...),
		Values:     make(map[string][]string, len(es.meta)),
	}
	for cov, col := range es.meta {
		t.Values[cov] = append([]string{}, col...)
	}

	return t
}
