package exprset

import (
	"reflect"
	"sort"
	"testing"
)

func TestArrangeIsPermutation(t *testing.T) {
	es := testSet(t)

	ordered, err := es.Arrange("genotype")
	if err != nil {
		t.Fatal(err)
	}

	// mut sorts before wt; ties keep file order.
	if got, want := ordered.Samples(), []string{"s2", "s1", "s3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Samples: got %v, want %v", got, want)
	}

	before, after := es.Samples(), ordered.Samples()
	sort.Strings(before)
	sort.Strings(after)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("Sample set changed: %v vs %v", before, after)
	}

	// Assay columns and metadata rows moved together.
	for _, sample := range ordered.Samples() {
		want, _ := es.Value("counts", "g1", sample)
		got, err := ordered.Value("counts", "g1", sample)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("Value for %s after Arrange: got %v, want %v", sample, got, want)
		}
	}
}

func TestArrangeMultiKeyStable(t *testing.T) {
	es := testSet(t)

	ordered, err := es.Arrange("stage", "genotype")
	if err != nil {
		t.Fatal(err)
	}

	if got, want := ordered.Samples(), []string{"s2", "s1", "s3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Samples: got %v, want %v", got, want)
	}
}

func TestArrangeUnknownKey(t *testing.T) {
	es := testSet(t)

	if _, err := es.Arrange("sex"); !isNotFound(err, "covariate") {
		t.Fatalf("Got %v, want NotFoundError for unknown covariate", err)
	}
}
