package exprset

// FilterLowExpression returns a new container restricted to features whose
// measurement in the reference assay strictly exceeds threshold in at least
// minSamples samples. Retained features keep their original order, and every
// assay is filtered identically. A filter that retains nothing yields an
// empty container, not an error.
func (es *ExpressionSet) FilterLowExpression(assay string, threshold float64, minSamples int) (*ExpressionSet, error) {
	m, exists := es.assays[assay]
	if !exists {
		return nil, NotFoundError{Kind: "assay", Name: assay}
	}

	rowIdx := make([]int, 0, len(es.features))
	for i, row := range m {
		over := 0
		for _, v := range row {
			if v > threshold {
				over++
			}
		}
		if over >= minSamples {
			rowIdx = append(rowIdx, i)
		}
	}

	colIdx := make([]int, len(es.samples))
	for j := range colIdx {
		colIdx[j] = j
	}

	return es.slice(rowIdx, colIdx)
}
