// FilePath: internal/geo/geo.go
package geo

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidCoordinates indicates that a combined coordinate string
// could not be parsed. Callers surface it as a client error.
var ErrInvalidCoordinates = errors.New("invalid coordinate format, use 'lat,lon'")

// ParseCoordinates splits a combined "lat,lon" string into its two
// halves and parses each as a float64. Surrounding whitespace on either
// half is ignored. The values are not range-checked; anything that
// parses to a finite number is accepted.
func ParseCoordinates(input string) (lat, lon float64, err error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidCoordinates
	}

	lat, err = parseFinite(parts[0])
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	lon, err = parseFinite(parts[1])
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}

	return lat, lon, nil
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidCoordinates
	}
	return v, nil
}
