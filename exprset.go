// Package exprset provides an annotated expression-matrix container: one or
// more named measurement matrices (assays) over shared feature and sample
// axes, paired with a per-sample covariate table. The container guarantees
// that the column labels of every assay equal, in order, the row labels of
// the covariate table, and every derived container preserves that invariant.
package exprset

import (
	"fmt"
	"sort"
)

// Matrix is a dense numeric table with rows labeled by feature and columns
// labeled by sample. Values[i][j] is the measurement for Features[i] in
// Samples[j].
type Matrix struct {
	Features []string
	Samples  []string
	Values   [][]float64
}

// SampleTable holds one row of covariate values per sample. Values is keyed
// by covariate name; each slice is aligned with Samples.
type SampleTable struct {
	Samples    []string
	Covariates []string
	Values     map[string][]string
}

// ExpressionSet pairs named assays with sample metadata under a single
// ordering of the feature and sample axes. It is immutable once built:
// Subset, Arrange, and FilterLowExpression return new containers.
type ExpressionSet struct {
	features   []string
	samples    []string
	assayNames []string
	assays     map[string][][]float64
	covariates []string
	meta       map[string][]string

	featureIndex map[string]int
	sampleIndex  map[string]int
}

// New validates the shared axes and builds a container. Every assay must
// carry identical feature and sample labels, in order, and each assay's
// sample labels must equal the metadata's sample rows, in order. Any
// disagreement fails with AxisMismatchError; labels are never realigned.
func New(assays map[string]*Matrix, meta *SampleTable) (*ExpressionSet, error) {
	if len(assays) == 0 {
		return nil, fmt.Errorf("at least one assay is required")
	}
	if meta == nil {
		return nil, fmt.Errorf("a sample table is required")
	}

	if err := checkUnique("sample", meta.Samples); err != nil {
		return nil, err
	}
	for _, cov := range meta.Covariates {
		col, exists := meta.Values[cov]
		if !exists {
			return nil, NotFoundError{Kind: "covariate", Name: cov}
		}
		if len(col) != len(meta.Samples) {
			return nil, fmt.Errorf("covariate %q has %d values for %d samples", cov, len(col), len(meta.Samples))
		}
	}

	es := &ExpressionSet{
		samples:    append([]string{}, meta.Samples...),
		assayNames: sortedKeys(assays),
		assays:     make(map[string][][]float64, len(assays)),
		covariates: append([]string{}, meta.Covariates...),
		meta:       make(map[string][]string, len(meta.Covariates)),
	}
	for _, cov := range meta.Covariates {
		es.meta[cov] = append([]string{}, meta.Values[cov]...)
	}

	for _, name := range es.assayNames {
		m := assays[name]
		if m == nil {
			return nil, fmt.Errorf("assay %q is nil", name)
		}

		if err := compareAxes(name, m.Samples, meta.Samples); err != nil {
			return nil, err
		}

		if es.features == nil {
			if err := checkUnique("feature", m.Features); err != nil {
				return nil, err
			}
			es.features = append([]string{}, m.Features...)
		} else if err := compareFeatureAxes(name, m.Features, es.features); err != nil {
			return nil, err
		}

		if len(m.Values) != len(m.Features) {
			return nil, fmt.Errorf("assay %q has %d rows for %d features", name, len(m.Values), len(m.Features))
		}
		rows := make([][]float64, len(m.Values))
		for i, row := range m.Values {
			if len(row) != len(m.Samples) {
				return nil, fmt.Errorf("assay %q row %d has %d values for %d samples", name, i, len(row), len(m.Samples))
			}
			rows[i] = append([]float64{}, row...)
		}
		es.assays[name] = rows
	}

	es.featureIndex = indexOf(es.features)
	es.sampleIndex = indexOf(es.samples)

	return es, nil
}

// Features returns the ordered feature labels.
func (es *ExpressionSet) Features() []string {
	return append([]string{}, es.features...)
}

// Samples returns the ordered sample labels, identical across every assay
// and the metadata table.
func (es *ExpressionSet) Samples() []string {
	return append([]string{}, es.samples...)
}

// AssayNames returns the assay names in lexical order.
func (es *ExpressionSet) AssayNames() []string {
	return append([]string{}, es.assayNames...)
}

// Covariates returns the metadata column names in table order.
func (es *ExpressionSet) Covariates() []string {
	return append([]string{}, es.covariates...)
}

// Assay returns a copy of the named measurement matrix, rows following
// Features and columns following Samples.
func (es *ExpressionSet) Assay(name string) ([][]float64, error) {
	m, exists := es.assays[name]
	if !exists {
		return nil, NotFoundError{Kind: "assay", Name: name}
	}

	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64{}, row...)
	}

	return out, nil
}

// Covariate returns a copy of one metadata column, aligned with Samples.
func (es *ExpressionSet) Covariate(name string) ([]string, error) {
	col, exists := es.meta[name]
	if !exists {
		return nil, NotFoundError{Kind: "covariate", Name: name}
	}

	return append([]string{}, col...), nil
}

// Value returns a single measurement.
func (es *ExpressionSet) Value(assay, feature, sample string) (float64, error) {
	m, exists := es.assays[assay]
	if !exists {
		return 0, NotFoundError{Kind: "assay", Name: assay}
	}
	i, exists := es.featureIndex[feature]
	if !exists {
		return 0, NotFoundError{Kind: "feature", Name: feature}
	}
	j, exists := es.sampleIndex[sample]
	if !exists {
		return 0, NotFoundError{Kind: "sample", Name: sample}
	}

	return m[i][j], nil
}

// NFeatures reports the length of the feature axis.
func (es *ExpressionSet) NFeatures() int {
	return len(es.features)
}

// NSamples reports the length of the sample axis.
func (es *ExpressionSet) NSamples() int {
	return len(es.samples)
}

func compareAxes(assay string, got, want []string) error {
	if len(got) != len(want) {
		return AxisMismatchError{Assay: assay, Detail: fmt.Sprintf("%d matrix columns but %d metadata rows", len(got), len(want))}
	}
	for i := range want {
		if got[i] != want[i] {
			return AxisMismatchError{Assay: assay, Detail: fmt.Sprintf("column %d is %q but metadata row %d is %q", i, got[i], i, want[i])}
		}
	}

	return nil
}

func compareFeatureAxes(assay string, got, want []string) error {
	if len(got) != len(want) {
		return AxisMismatchError{Assay: assay, Detail: fmt.Sprintf("%d features where other assays have %d", len(got), len(want))}
	}
	for i := range want {
		if got[i] != want[i] {
			return AxisMismatchError{Assay: assay, Detail: fmt.Sprintf("feature %d is %q but other assays have %q", i, got[i], want[i])}
		}
	}

	return nil
}

func checkUnique(kind string, labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if _, dup := seen[label]; dup {
			return fmt.Errorf("duplicate %s label %q", kind, label)
		}
		seen[label] = struct{}{}
	}

	return nil
}

func sortedKeys(assays map[string]*Matrix) []string {
	out := make([]string, 0, len(assays))
	for name := range assays {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

func indexOf(labels []string) map[string]int {
	out := make(map[string]int, len(labels))
	for i, label := range labels {
		out[label] = i
	}

	return out
}
