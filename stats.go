package bench

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary is the mean of a table's y column.
type Summary struct {
	Name  string  // table name
	Label string  // y column name
	Mean  float64 // scaled mean
}

// Mean returns the arithmetic mean of column multiplied by scale.
// Use a scale of 1 for the plain mean.
func Mean(column []float64, scale float64) (float64, error) {
	if len(column) == 0 {
		return 0, ErrEmptyInput
	}
	if !isFinite(scale) {
		return 0, fmt.Errorf("%w: scale %v", ErrInvalidValue, scale)
	}
	if err := checkFinite(column); err != nil {
		return 0, err
	}
	return stat.Mean(column, nil) * scale, nil
}

// Summarize computes the scaled mean of t's y column.
func Summarize(t Table, scale float64) (Summary, error) {
	m, err := Mean(t.Ys(), scale)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", t.Name, err)
	}
	return Summary{Name: t.Name, Label: t.YName, Mean: m}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkFinite(column []float64) error {
	for i, v := range column {
		if !isFinite(v) {
			return fmt.Errorf("%w at row %d: %v", ErrInvalidValue, i, v)
		}
	}
	return nil
}
