package exprset

// Subset returns a new container restricted to the given feature and sample
// labels, in the given order. Every assay and the metadata table are
// re-sliced together, never independently. A nil slice keeps that axis
// unchanged; an unknown label fails with NotFoundError. Subsetting twice by
// the same lists equals subsetting once.
func (es *ExpressionSet) Subset(features, samples []string) (*ExpressionSet, error) {
	if features == nil {
		features = es.features
	}
	if samples == nil {
		samples = es.samples
	}

	rowIdx := make([]int, len(features))
	for k, f := range features {
		i, exists := es.featureIndex[f]
		if !exists {
			return nil, NotFoundError{Kind: "feature", Name: f}
		}
		rowIdx[k] = i
	}

	colIdx := make([]int, len(samples))
	for k, s := range samples {
		j, exists := es.sampleIndex[s]
		if !exists {
			return nil, NotFoundError{Kind: "sample", Name: s}
		}
		colIdx[k] = j
	}

	return es.slice(rowIdx, colIdx)
}

// slice builds a derived container from row and column index lists, applied
// identically to all assays and to the metadata table.
func (es *ExpressionSet) slice(rowIdx, colIdx []int) (*ExpressionSet, error) {
	out := &ExpressionSet{
		features:   make([]string, len(rowIdx)),
		samples:    make([]string, len(colIdx)),
		assayNames: append([]string{}, es.assayNames...),
		assays:     make(map[string][][]float64, len(es.assays)),
		covariates: append([]string{}, es.covariates...),
		meta:       make(map[string][]string, len(es.meta)),
	}

	for k, i := range rowIdx {
		out.features[k] = es.features[i]
	}
	for k, j := range colIdx {
		out.samples[k] = es.samples[j]
	}
	if err := checkUnique("feature", out.features); err != nil {
		return nil, err
	}
	if err := checkUnique("sample", out.samples); err != nil {
		return nil, err
	}

	for name, m := range es.assays {
		rows := make([][]float64, len(rowIdx))
		for k, i := range rowIdx {
			row := make([]float64, len(colIdx))
			for l, j := range colIdx {
				row[l] = m[i][j]
			}
			rows[k] = row
		}
		out.assays[name] = rows
	}

	for cov, col := range es.meta {
		vals := make([]string, len(colIdx))
		for l, j := range colIdx {
			vals[l] = col[j]
		}
		out.meta[cov] = vals
	}

	out.featureIndex = indexOf(out.features)
	out.sampleIndex = indexOf(out.samples)

	return out, nil
}
