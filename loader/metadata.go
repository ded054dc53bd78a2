package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/strandlab/exprset"
)

// Metadata parses a covariate table whose first column holds sample labels
// and whose remaining columns are covariates, one row per sample.
func Metadata(path string) (*exprset.SampleTable, error) {
	contents, err := Open(path)
	if err != nil {
		return nil, err
	}

	return ParseMetadata(contents)
}

// ParseMetadata parses covariate table contents already in memory. Column
// order from the file is preserved so downstream consumers see covariates in
// table order.
func ParseMetadata(contents []byte) (*exprset.SampleTable, error) {
	delim := exprset.DetermineDelimiter(bytes.NewReader(contents))

	header, err := readHeader(contents, delim)
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("covariate table needs a sample column plus at least one covariate, got %d columns", len(header))
	}

	// Tell gocsv to honor the sniffed delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		r.LazyQuotes = true
		return r
	})

	rows, err := gocsv.CSVToMaps(bytes.NewReader(contents))
	if err != nil {
		return nil, pfx.Err(err)
	}

	sampleCol, covariates := header[0], header[1:]

	table := &exprset.SampleTable{
		Samples:    make([]string, 0, len(rows)),
		Covariates: covariates,
		Values:     make(map[string][]string, len(covariates)),
	}

	for n, row := range rows {
		sample, exists := row[sampleCol]
		if !exists || sample == "" {
			return nil, fmt.Errorf("covariate table row %d has no sample label", n+2)
		}
		table.Samples = append(table.Samples, sample)

		for _, cov := range covariates {
			table.Values[cov] = append(table.Values[cov], row[cov])
		}
	}

	return table, nil
}

func readHeader(contents []byte, delim rune) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(contents))
	r.Comma = delim
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, pfx.Err(err)
	}

	return header, nil
}
