package main

import (
	"bytes"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/strandlab/exprset"
)

// featureProfile walks the long-form projection and collects the chosen
// feature's value for each sample, in the container's sample order.
func featureProfile(es *exprset.ExpressionSet, assay, feature string) ([]string, []float64, error) {
	if _, err := es.Value(assay, feature, es.Samples()[0]); err != nil {
		return nil, nil, err
	}

	cursor, err := es.LongForm(assay)
	if err != nil {
		return nil, nil, err
	}

	samples := make([]string, 0, es.NSamples())
	values := make([]float64, 0, es.NSamples())

	for cursor.Next() {
		rec := cursor.Record()
		if rec.Feature != feature {
			continue
		}
		samples = append(samples, rec.Sample)
		values = append(values, rec.Value)
	}

	return samples, values, nil
}

func plotProfile(filename, feature string, samples []string, values []float64) error {
	graph := chart.Chart{
		Title:  feature,
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: intSeq(len(values)),
				YValues: values,
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return err
	}

	return nil
}

func intSeq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}
