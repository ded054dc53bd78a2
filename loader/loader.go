// Package loader reads delimited expression matrices and sample covariate
// tables from local files or http(s) URLs and assembles them into an
// exprset.ExpressionSet. Delimiters are sniffed and compressed inputs are
// unwrapped transparently; sample ordering between the two files is
// validated by the container, never repaired here.
package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/strandlab/exprset"
)

// CountsAssay is the assay name under which Load stores the raw matrix.
const CountsAssay = "counts"

// Open fetches a local file or an http(s) URL and returns its decompressed
// contents.
func Open(input string) ([]byte, error) {
	var f io.ReadCloser

	if strings.HasPrefix(input, "http") {
		resp, err := http.Get(input)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, pfx.Err(fmt.Errorf("fetching %s: %s", input, resp.Status))
		}

		f = resp.Body
	} else {
		file, err := os.Open(input)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer file.Close()

		f = file
	}

	r, err := exprset.MaybeDecompress(f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return ioutil.ReadAll(r)
}

// Counts parses a delimited numeric matrix whose first column holds feature
// labels and whose header row holds sample labels. A header with one fewer
// field than the data rows is accepted, since R's write.table emits no
// corner label above the feature column.
func Counts(path string) (*exprset.Matrix, error) {
	contents, err := Open(path)
	if err != nil {
		return nil, err
	}

	return ParseCounts(contents)
}

// ParseCounts parses matrix contents already in memory.
func ParseCounts(contents []byte) (*exprset.Matrix, error) {
	delim := exprset.DetermineDelimiter(bytes.NewReader(contents))

	r := csv.NewReader(bytes.NewReader(contents))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("matrix needs a header row and at least one feature row, got %d rows", len(rows))
	}

	header, body := rows[0], rows[1:]

	var samples []string
	switch len(header) {
	case len(body[0]):
		samples = header[1:]
	case len(body[0]) - 1:
		samples = header
	default:
		return nil, fmt.Errorf("header has %d fields but data rows have %d", len(header), len(body[0]))
	}

	m := &exprset.Matrix{
		Features: make([]string, 0, len(body)),
		Samples:  samples,
		Values:   make([][]float64, 0, len(body)),
	}

	for n, row := range body {
		if len(row) != len(samples)+1 {
			return nil, fmt.Errorf("row %d has %d fields, want %d", n+2, len(row), len(samples)+1)
		}

		vals := make([]float64, len(samples))
		for j, field := range row[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, pfx.Err(fmt.Errorf("row %d (%s), column %s: %w", n+2, row[0], samples[j], err))
			}
			vals[j] = v
		}

		m.Features = append(m.Features, row[0])
		m.Values = append(m.Values, vals)
	}

	return m, nil
}

// Load reads a counts matrix and a covariate table and constructs a
// container with a single raw assay. Construction fails with
// exprset.AxisMismatchError when the two files disagree on sample identity
// or order.
func Load(countsPath, metaPath string) (*exprset.ExpressionSet, error) {
	counts, err := Counts(countsPath)
	if err != nil {
		return nil, err
	}

	meta, err := Metadata(metaPath)
	if err != nil {
		return nil, err
	}

	return exprset.New(map[string]*exprset.Matrix{CountsAssay: counts}, meta)
}
