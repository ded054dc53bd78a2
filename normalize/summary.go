package normalize

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/strandlab/exprset"
)

// FeatureSummary describes the distribution of one feature's measurements
// across samples.
type FeatureSummary struct {
	Feature string
	Mean    float64
	Median  float64
	Min     float64
	Max     float64
}

// SampleSummary describes one sample's measurements across features.
type SampleSummary struct {
	Sample      string
	LibrarySize float64
	Mean        float64
	SD          float64
}

// SummarizeFeatures computes per-feature summary statistics for the named
// assay, in feature order.
func SummarizeFeatures(es *exprset.ExpressionSet, assay string) ([]FeatureSummary, error) {
	m, err := es.Assay(assay)
	if err != nil {
		return nil, err
	}

	features := es.Features()
	out := make([]FeatureSummary, 0, len(features))

	for i, row := range m {
		mean, err := stats.Mean(row)
		if err != nil {
			return nil, err
		}
		median, err := stats.Median(row)
		if err != nil {
			return nil, err
		}
		min, err := stats.Min(row)
		if err != nil {
			return nil, err
		}
		max, err := stats.Max(row)
		if err != nil {
			return nil, err
		}

		out = append(out, FeatureSummary{
			Feature: features[i],
			Mean:    mean,
			Median:  median,
			Min:     min,
			Max:     max,
		})
	}

	return out, nil
}

// SummarizeSamples computes per-sample summary statistics for the named
// assay, in sample order.
func SummarizeSamples(es *exprset.ExpressionSet, assay string) ([]SampleSummary, error) {
	m, err := es.Assay(assay)
	if err != nil {
		return nil, err
	}

	sizes, err := LibrarySizes(es, assay)
	if err != nil {
		return nil, err
	}

	samples := es.Samples()
	out := make([]SampleSummary, 0, len(samples))

	col := make([]float64, es.NFeatures())
	for j, sample := range samples {
		for i := range m {
			col[i] = m[i][j]
		}

		out = append(out, SampleSummary{
			Sample:      sample,
			LibrarySize: sizes[j],
			Mean:        stat.Mean(col, nil),
			SD:          stat.StdDev(col, nil),
		})
	}

	return out, nil
}
