// exprfilter loads a counts matrix and its sample covariate table, removes
// features with too few samples above a count threshold, and writes the
// retained matrix as tab-delimited text.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/carbocation/pfx"

	"github.com/strandlab/exprset/loader"
)

func main() {
	var counts, meta, output string
	var threshold float64
	var minSamples int

	flag.StringVar(&counts, "counts", "", "Counts matrix (features x samples, TSV or CSV, local path or URL)")
	flag.StringVar(&meta, "meta", "", "Sample covariate table (samples x covariates)")
	flag.StringVar(&output, "output", "", "Output path for the filtered matrix. If empty, writes to stdout.")
	flag.Float64Var(&threshold, "threshold", 10, "Per-sample count a feature must exceed to be considered expressed in that sample")
	flag.IntVar(&minSamples, "min_samples", 2, "Minimum number of samples in which a feature must be expressed")
	flag.Parse()

	if counts == "" || meta == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	es, err := loader.Load(counts, meta)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Printf("Loaded %d features x %d samples\n", es.NFeatures(), es.NSamples())

	filtered, err := es.FilterLowExpression(loader.CountsAssay, threshold, minSamples)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Printf("Retained %d of %d features (> %g in >= %d samples)\n", filtered.NFeatures(), es.NFeatures(), threshold, minSamples)

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		defer f.Close()
		out = f
	}

	if err := writeMatrix(out, filtered, loader.CountsAssay); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}
