package bench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Sample is one row of a table.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Table is an ordered sequence of samples with named columns.
// The column names are only used for labels.
type Table struct {
	Name    string   `json:"name"`
	XName   string   `json:"xname"`
	YName   string   `json:"yname"`
	Samples []Sample `json:"samples"`
}

// Len and XY make Table usable as a plotter.XYer.
func (t Table) Len() int { return len(t.Samples) }

func (t Table) XY(i int) (float64, float64) {
	return t.Samples[i].X, t.Samples[i].Y
}

// Xs returns the x column.
func (t Table) Xs() []float64 {
	xs := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		xs[i] = s.X
	}
	return xs
}

// Ys returns the y column.
func (t Table) Ys() []float64 {
	ys := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		ys[i] = s.Y
	}
	return ys
}

// Sorted returns a copy of t with samples stably sorted by x.
func (t Table) Sorted() Table {
	cpy := t
	cpy.Samples = append([]Sample(nil), t.Samples...)
	sort.SliceStable(cpy.Samples, func(i, j int) bool {
		return cpy.Samples[i].X < cpy.Samples[j].X
	})
	return cpy
}

// ReadTables reads a CSV table file. The table is named after the file's base name.
func ReadTables(file string) ([]Table, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	tables, err := ReadTableFrom(name, fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", file, err)
	}
	return tables, nil
}

// ReadTableFrom reads CSV data with a header row. Column 0 holds x values and
// column 1 holds y values. If there is a third column, it is taken to be the
// execution mode and rows are split into one table per mode, named
// "<name>-<mode>" and ordered by first appearance.
func ReadTableFrom(name string, r io.Reader) ([]Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("missing header row")
	} else if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("need at least 2 columns, header has %d", len(header))
	}
	var (
		byMode  = len(header) > 2
		tables  []Table
		modeIdx = make(map[string]int)
	)
	if !byMode {
		tables = append(tables, Table{Name: name, XName: header[0], YName: header[1]})
	}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < len(header) {
			return nil, fmt.Errorf("line %d: expected %d fields, got %d", line, len(header), len(rec))
		}
		var s Sample
		if s.X, err = parseField(rec[0]); err != nil {
			return nil, fmt.Errorf("line %d, column %q: %v", line, header[0], err)
		}
		if s.Y, err = parseField(rec[1]); err != nil {
			return nil, fmt.Errorf("line %d, column %q: %v", line, header[1], err)
		}
		ti := 0
		if byMode {
			mode := strings.ToLower(strings.TrimSpace(rec[2]))
			idx, ok := modeIdx[mode]
			if !ok {
				idx = len(tables)
				modeIdx[mode] = idx
				tables = append(tables, Table{Name: name + "-" + mode, XName: header[0], YName: header[1]})
			}
			ti = idx
		}
		tables[ti].Samples = append(tables[ti].Samples, s)
	}
	return tables, nil
}

func parseField(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// WriteTable writes t as CSV with a header row.
func WriteTable(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{t.XName, t.YName}); err != nil {
		return err
	}
	for _, s := range t.Samples {
		rec := []string{
			strconv.FormatFloat(s.X, 'g', -1, 64),
			strconv.FormatFloat(s.Y, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
