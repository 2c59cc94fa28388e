package bench

import "errors"

var (
	// ErrEmptyInput is returned when a statistic is requested on a column with no rows.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidValue is returned when a NaN or infinite value is found where a finite
	// number is required.
	ErrInvalidValue = errors.New("non-finite value")
	// ErrInsufficientData is returned when fewer than two points are given to Fit.
	ErrInsufficientData = errors.New("need at least two points")
	// ErrDegenerateFit is returned when all x values of a fit are identical.
	ErrDegenerateFit = errors.New("zero x variance")

	ErrNoTable      = errors.New("no such table")
	ErrInvalidScale = errors.New("invalid scale")
)
