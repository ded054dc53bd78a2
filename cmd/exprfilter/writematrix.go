package main

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/strandlab/exprset"
)

func writeMatrix(w io.Writer, es *exprset.ExpressionSet, assay string) error {
	m, err := es.Assay(assay)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(append([]string{"feature"}, es.Samples()...)); err != nil {
		return err
	}

	features := es.Features()
	for i, row := range m {
		fields := make([]string, 0, len(row)+1)
		fields = append(fields, features[i])
		for _, v := range row {
			fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(fields); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
