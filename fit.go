package bench

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Line is the straight line y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Evaluate returns the line's value at each of xs, in order.
func (l Line) Evaluate(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = l.At(x)
	}
	return ys
}

// Evaluate is the function form of l.Evaluate.
func Evaluate(l Line, xs []float64) []float64 {
	return l.Evaluate(xs)
}

// Fit computes the ordinary least-squares line through points.
//
// The result does not depend on the order of points beyond floating point rounding.
// Fit fails with ErrInsufficientData for fewer than two points and with
// ErrDegenerateFit when every point has the same x.
func Fit(points []Sample) (Line, error) {
	if len(points) < 2 {
		return Line{}, fmt.Errorf("%w: got %d", ErrInsufficientData, len(points))
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	distinct := false
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return Line{}, fmt.Errorf("%w at point %d: (%v, %v)", ErrInvalidValue, i, p.X, p.Y)
		}
		xs[i], ys[i] = p.X, p.Y
		if p.X != points[0].X {
			distinct = true
		}
	}
	if !distinct {
		return Line{}, fmt.Errorf("%w: all x = %v", ErrDegenerateFit, points[0].X)
	}
	// Two-pass closed form: means first, then cov(x,y)/var(x).
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return Line{}, fmt.Errorf("%w: slope %v", ErrDegenerateFit, slope)
	}
	return Line{Slope: slope, Intercept: intercept}, nil
}

// TableFit is a fitted line together with its values at the table's sorted xs.
type TableFit struct {
	Name   string
	Line   Line
	Xs     []float64 // x column, ascending
	Fitted []float64 // Line evaluated at Xs
}

// FitTable sorts t by x, fits a line and evaluates it on the sorted xs.
func FitTable(t Table) (TableFit, error) {
	sorted := t.Sorted()
	line, err := Fit(sorted.Samples)
	if err != nil {
		return TableFit{}, fmt.Errorf("%s: %w", t.Name, err)
	}
	xs := sorted.Xs()
	return TableFit{Name: t.Name, Line: line, Xs: xs, Fitted: line.Evaluate(xs)}, nil
}
