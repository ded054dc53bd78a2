package exprset

import "fmt"

// AxisMismatchError indicates that the sample labels of an assay matrix and
// the metadata table disagree in identity or order. Construction never
// realigns axes silently; the mismatch is fatal.
type AxisMismatchError struct {
	Assay  string
	Detail string
}

func (e AxisMismatchError) Error() string {
	return fmt.Sprintf("assay %q: sample axis does not match metadata: %s", e.Assay, e.Detail)
}

// NotFoundError indicates that a requested assay, feature, sample, or
// covariate name is absent from the container.
type NotFoundError struct {
	Kind string
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}
