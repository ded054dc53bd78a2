package exprset

import (
	"reflect"
	"testing"
)

// g1 exceeds 10 in s1 and s2; g2 exceeds 10 only in s1.
func TestFilterLowExpression(t *testing.T) {
	es := testSet(t)

	filtered, err := es.FilterLowExpression("counts", 10, 2)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := filtered.Features(), []string{"g1"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Features: got %v, want %v", got, want)
	}
	if got, want := filtered.NSamples(), 3; got != want {
		t.Fatalf("NSamples: got %d, want %d", got, want)
	}

	m, err := filtered.Assay("counts")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := m[0], []float64{12, 15, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("g1 values changed by filtering: got %v, want %v", got, want)
	}
}

func TestFilterMonotonic(t *testing.T) {
	es := testSet(t)

	for _, v := range []struct {
		threshold  float64
		minSamples int
	}{
		{0, 1},
		{2, 1},
		{2, 2},
		{10, 2},
		{10, 3},
		{100, 1},
	} {
		loose, err := es.FilterLowExpression("counts", v.threshold, v.minSamples)
		if err != nil {
			t.Fatal(err)
		}
		stricter, err := es.FilterLowExpression("counts", v.threshold+1, v.minSamples)
		if err != nil {
			t.Fatal(err)
		}
		moreSamples, err := es.FilterLowExpression("counts", v.threshold, v.minSamples+1)
		if err != nil {
			t.Fatal(err)
		}

		if stricter.NFeatures() > loose.NFeatures() {
			t.Fatalf("Raising threshold from %g grew the feature set: %d > %d", v.threshold, stricter.NFeatures(), loose.NFeatures())
		}
		if moreSamples.NFeatures() > loose.NFeatures() {
			t.Fatalf("Raising min samples from %d grew the feature set: %d > %d", v.minSamples, moreSamples.NFeatures(), loose.NFeatures())
		}
	}
}

func TestFilterCanRetainNothing(t *testing.T) {
	es := testSet(t)

	filtered, err := es.FilterLowExpression("counts", 1e9, 1)
	if err != nil {
		t.Fatal(err)
	}
	if filtered.NFeatures() != 0 {
		t.Fatalf("Got %d features, want 0", filtered.NFeatures())
	}
	if filtered.NSamples() != 3 {
		t.Fatalf("Sample axis changed: got %d, want 3", filtered.NSamples())
	}
}

func TestFilterUnknownAssay(t *testing.T) {
	es := testSet(t)

	if _, err := es.FilterLowExpression("rpkm", 10, 2); !isNotFound(err, "assay") {
		t.Fatalf("Got %v, want NotFoundError", err)
	}
}
