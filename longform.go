package exprset

// Record is one row of the long-form projection: a single measurement
// together with its feature label, sample label, and the sample's covariate
// values.
type Record struct {
	Feature    string
	Sample     string
	Value      float64
	Covariates map[string]string
}

// LongFormCursor walks a container one (feature, sample) pair at a time in
// feature-major order. It reads from the container on each step rather than
// caching records, so Reset restarts a full traversal.
type LongFormCursor struct {
	es    *ExpressionSet
	assay string
	pos   int
}

// LongForm returns a cursor over the named assay, yielding exactly
// NFeatures×NSamples records.
func (es *ExpressionSet) LongForm(assay string) (*LongFormCursor, error) {
	if _, exists := es.assays[assay]; !exists {
		return nil, NotFoundError{Kind: "assay", Name: assay}
	}

	return &LongFormCursor{es: es, assay: assay, pos: -1}, nil
}

// Next advances the cursor. It returns false once the projection is
// exhausted.
func (c *LongFormCursor) Next() bool {
	if c.pos+1 >= c.es.NFeatures()*c.es.NSamples() {
		return false
	}
	c.pos++

	return true
}

// Record returns the record at the current cursor position. It must not be
// called before Next or after Next has returned false.
func (c *LongFormCursor) Record() Record {
	n := c.es.NSamples()
	i, j := c.pos/n, c.pos%n

	covs := make(map[string]string, len(c.es.covariates))
	for _, cov := range c.es.covariates {
		covs[cov] = c.es.meta[cov][j]
	}

	return Record{
		Feature:    c.es.features[i],
		Sample:     c.es.samples[j],
		Value:      c.es.assays[c.assay][i][j],
		Covariates: covs,
	}
}

// Reset rewinds the cursor so the projection can be traversed again.
func (c *LongFormCursor) Reset() {
	c.pos = -1
}

// Len reports the total number of records the projection yields.
func (c *LongFormCursor) Len() int {
	return c.es.NFeatures() * c.es.NSamples()
}
