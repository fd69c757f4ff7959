package Classify

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrEmptyTable = errors.New("table has no rows")

// Table is a tab separated file with a header line. Cells are kept as read
// so that they can be written back unchanged.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable reads a tab separated table. Every row must have as many cells as
// the header.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("read table: missing header")
	}
	return &Table{Header: recs[0], Rows: recs[1:]}, nil
}

// Features parses the first n cells of every row as numbers.
func (t *Table) Features(n int) ([][]float64, error) {
	x := make([][]float64, len(t.Rows))
	for i, row := range t.Rows {
		if len(row) < n {
			return nil, fmt.Errorf("row %d: %d cells, want at least %d", i+1, len(row), n)
		}
		x[i] = make([]float64, n)
		for j := range n {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", i+1, t.Header[j], err)
			}
			x[i][j] = v
		}
	}
	return x, nil
}

// Labels returns the last cell of every row.
func (t *Table) Labels() []string {
	y := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		y[i] = strings.TrimSpace(row[len(row)-1])
	}
	return y
}

// WritePredictions writes t with an extra "predicted" column holding preds.
func WritePredictions(w io.Writer, t *Table, preds []string) error {
	if len(preds) != len(t.Rows) {
		return fmt.Errorf("%d predictions for %d rows", len(preds), len(t.Rows))
	}
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(append(append([]string(nil), t.Header...), "predicted")); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := cw.Write(append(append([]string(nil), row...), preds[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
