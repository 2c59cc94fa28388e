package bench

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var unitRE = regexp.MustCompile(`(?i)^(s|ms|us|µs|ns)$`)

// ParseScale parses a scale factor. It accepts a plain positive number or the name of
// a time unit, which gives the factor converting seconds into that unit.
func ParseScale(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if unitRE.MatchString(s) {
		switch strings.ToLower(s) {
		case "s":
			return 1, nil
		case "ms":
			return 1e3, nil
		case "us", "µs":
			return 1e6, nil
		case "ns":
			return 1e9, nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) || v <= 0 {
		return 0, fmt.Errorf("%w %q", ErrInvalidScale, s)
	}
	return v, nil
}
