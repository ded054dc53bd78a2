// exprplot renders one feature's log-CPM expression profile across samples
// as a PNG, with samples ordered by a chosen covariate so group structure is
// visible along the x axis.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/carbocation/pfx"

	"github.com/strandlab/exprset/loader"
	"github.com/strandlab/exprset/normalize"
)

const logAssay = "logcpm"

func main() {
	var counts, meta, feature, orderBy, output string
	var prior float64

	flag.StringVar(&counts, "counts", "", "Counts matrix (features x samples, local path or URL)")
	flag.StringVar(&meta, "meta", "", "Sample covariate table (samples x covariates)")
	flag.StringVar(&feature, "feature", "", "Feature (gene) to plot")
	flag.StringVar(&orderBy, "order_by", "", "Covariate to order samples by. If empty, file order is kept.")
	flag.StringVar(&output, "output", "expression.png", "Output PNG path")
	flag.Float64Var(&prior, "prior", 2, "Prior count added before the log transform")
	flag.Parse()

	if counts == "" || meta == "" || feature == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	es, err := loader.Load(counts, meta)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	es, err = normalize.LogCPM(es, loader.CountsAssay, logAssay, prior)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if orderBy != "" {
		es, err = es.Arrange(orderBy)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
	}

	samples, values, err := featureProfile(es, logAssay, feature)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if err := plotProfile(output, feature, samples, values); err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Printf("Wrote %s (%d samples)\n", output, len(samples))
}
