// Package ingest reads absorbance tables and value lists given to photoprot.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/santiagohigareda/photoprotection/spectral"
)

// ErrFormat reports a table or value list that cannot be parsed.
var ErrFormat = errors.New("ingest: malformed input")

// Table is a parsed absorbance table.
type Table struct {
	// Names holds one label per spectrum, from the header row or
	// "sample N" when the table has none.
	Names []string
	// Wavelengths is set when the table had a leading wavelength column.
	Wavelengths []int
	Batch       spectral.Batch
}

var wavelengthHeaders = map[string]bool{
	"wavelength": true,
	"wl":         true,
	"nm":         true,
	"lambda":     true,
}

// ReadCSV reads a table with one row per wavelength and one column per
// spectrum. A first row holding any non-numeric cell is a header. A leading
// column is treated as wavelengths when its header names it so, or, without
// a header, when it holds consecutive integers ending at 400 nm and at least
// one more column follows.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("%w: empty table", ErrFormat)
	}

	var header []string
	if !numericRow(records[0]) {
		header, records = records[0], records[1:]
		if len(records) == 0 {
			return Table{}, fmt.Errorf("%w: table has a header but no data", ErrFormat)
		}
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, cell := range rec {
			v, err := parseFloat(cell)
			if err != nil {
				return Table{}, fmt.Errorf("%w: row %d column %d: %w", ErrFormat, i+1, j+1, err)
			}
			row[j] = v
		}
		rows[i] = row
	}

	var t Table
	if hasWavelengthColumn(header, rows) {
		t.Wavelengths = make([]int, len(rows))
		for i, row := range rows {
			t.Wavelengths[i] = int(row[0])
			rows[i] = row[1:]
		}
		if header != nil {
			header = header[1:]
		}
	}

	t.Batch, err = spectral.Columns(rows)
	if err != nil {
		return Table{}, err
	}
	t.Names = make([]string, len(t.Batch))
	for i := range t.Names {
		if header != nil && strings.TrimSpace(header[i]) != "" {
			t.Names[i] = strings.TrimSpace(header[i])
		} else {
			t.Names[i] = fmt.Sprintf("sample %d", i+1)
		}
	}
	return t, nil
}

// ParseValues parses a comma-separated list of numbers such as "30" or
// "30,50.5". An empty string yields no values.
func ParseValues(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := parseFloat(f)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d: %w", ErrFormat, i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	return v, nil
}

func numericRow(rec []string) bool {
	for _, cell := range rec {
		if _, err := parseFloat(cell); err != nil {
			return false
		}
	}
	return true
}

func hasWavelengthColumn(header []string, rows [][]float64) bool {
	if len(rows[0]) < 2 {
		return false
	}
	if header != nil {
		return wavelengthHeaders[strings.ToLower(strings.TrimSpace(header[0]))]
	}
	last := rows[len(rows)-1][0]
	if last != float64(spectral.BandSPF.End) {
		return false
	}
	for i := 1; i < len(rows); i++ {
		if rows[i][0]-rows[i-1][0] != 1 {
			return false
		}
	}
	return true
}
