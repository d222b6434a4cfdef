package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/steed360/Synthetic-Categorical-Data/synth"
)

// ErrNilResult indicates a nil solved result was passed in.
var ErrNilResult = errors.New("dataset: result must be non-nil")

// countColumn is the header of the solved-count column in cell tables.
const countColumn = "count"

// Rounding selects how real-valued counts become whole individuals in
// Records.
type Rounding int

const (
	// RoundNearest rounds each cell count to the nearest integer.
	RoundNearest Rounding = iota
	// RoundDown truncates each cell count; the expansion never exceeds
	// the solved table.
	RoundDown
)

// Table is a rendered tabular view: ordered column headers plus string
// rows. It is a plain value, ready for CSV or any row-oriented consumer.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New renders the row-per-cell table of a solved result: one column per
// categorical variable, one "count" column, one row per combination cell
// in the space's Cartesian order.
// Complexity: O(cells · variables).
func New(res *synth.Result) (*Table, error) {
	if res == nil {
		return nil, fmt.Errorf("New: %w", ErrNilResult)
	}

	t := &Table{}
	for _, v := range res.Space().Variables() {
		t.Columns = append(t.Columns, v.Name)
	}
	t.Columns = append(t.Columns, countColumn)

	for _, cc := range res.Cells {
		row := make([]string, 0, len(t.Columns))
		row = append(row, cc.Cell...)
		row = append(row, strconv.FormatFloat(cc.Count, 'g', -1, 64))
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// Records expands a solved result into a row-per-individual table: each
// cell contributes round(count) identical rows. Cell order is preserved,
// so the output is deterministic for a given result.
// Complexity: O(N · variables) for sample size N.
func Records(res *synth.Result, mode Rounding) (*Table, error) {
	if res == nil {
		return nil, fmt.Errorf("Records: %w", ErrNilResult)
	}

	t := &Table{}
	for _, v := range res.Space().Variables() {
		t.Columns = append(t.Columns, v.Name)
	}

	for _, cc := range res.Cells {
		n := 0
		switch mode {
		case RoundDown:
			n = int(math.Floor(cc.Count))
		default:
			n = int(math.Round(cc.Count))
		}
		for i := 0; i < n; i++ {
			row := make([]string, len(cc.Cell))
			copy(row, cc.Cell)
			t.Rows = append(t.Rows, row)
		}
	}

	return t, nil
}

// WriteCSV serializes the table, header first, to w in RFC 4180 form.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
