package normalize

import (
	"math"
	"reflect"
	"testing"

	"github.com/strandlab/exprset"
)

func testSet(t *testing.T) *exprset.ExpressionSet {
	t.Helper()

	counts := &exprset.Matrix{
		Features: []string{"g1", "g2"},
		Samples:  []string{"s1", "s2", "s3"},
		Values: [][]float64{
			{12, 15, 3},
			{8, 5, 7},
		},
	}
	meta := &exprset.SampleTable{
		Samples:    []string{"s1", "s2", "s3"},
		Covariates: []string{"genotype"},
		Values:     map[string][]string{"genotype": {"wt", "mut", "wt"}},
	}

	es, err := exprset.New(map[string]*exprset.Matrix{"counts": counts}, meta)
	if err != nil {
		t.Fatal(err)
	}

	return es
}

func TestLibrarySizes(t *testing.T) {
	es := testSet(t)

	sizes, err := LibrarySizes(es, "counts")
	if err != nil {
		t.Fatal(err)
	}

	if got, want := sizes, []float64{20, 20, 10}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Got %v, want %v", got, want)
	}
}

func TestCPMColumnsSumToMillion(t *testing.T) {
	es := testSet(t)

	derived, err := CPM(es, "counts", "cpm")
	if err != nil {
		t.Fatal(err)
	}

	m, err := derived.Assay("cpm")
	if err != nil {
		t.Fatal(err)
	}

	for j := range derived.Samples() {
		sum := 0.0
		for i := range m {
			sum += m[i][j]
		}
		if math.Abs(sum-1e6) > 1e-6 {
			t.Fatalf("Column %d sums to %v, want 1e6", j, sum)
		}
	}

	// 12 of 20 counts in s1
	if got, want := m[0][0], 6e5; math.Abs(got-want) > 1e-6 {
		t.Fatalf("cpm[g1][s1]: got %v, want %v", got, want)
	}

	// Raw counts remain available on the derived container.
	if _, err := derived.Assay("counts"); err != nil {
		t.Fatalf("counts assay lost: %v", err)
	}
}

func TestLogCPM(t *testing.T) {
	es := testSet(t)

	derived, err := LogCPM(es, "counts", "logcpm", 2)
	if err != nil {
		t.Fatal(err)
	}

	m, err := derived.Assay("logcpm")
	if err != nil {
		t.Fatal(err)
	}

	want := math.Log2((12.0 + 2) / (20.0 + 4) * 1e6)
	if got := m[0][0]; math.Abs(got-want) > 1e-9 {
		t.Fatalf("logcpm[g1][s1]: got %v, want %v", got, want)
	}
}

func TestSummaries(t *testing.T) {
	es := testSet(t)

	features, err := SummarizeFeatures(es, "counts")
	if err != nil {
		t.Fatal(err)
	}
	if len(features) != 2 {
		t.Fatalf("Got %d feature summaries, want 2", len(features))
	}
	if got, want := features[0], (FeatureSummary{Feature: "g1", Mean: 10, Median: 12, Min: 3, Max: 15}); got != want {
		t.Fatalf("g1 summary: got %+v, want %+v", got, want)
	}

	samples, err := SummarizeSamples(es, "counts")
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 3 {
		t.Fatalf("Got %d sample summaries, want 3", len(samples))
	}
	if got, want := samples[0].LibrarySize, 20.0; got != want {
		t.Fatalf("s1 library size: got %v, want %v", got, want)
	}
	if got, want := samples[0].Mean, 10.0; got != want {
		t.Fatalf("s1 mean: got %v, want %v", got, want)
	}
}
