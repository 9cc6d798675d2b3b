package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lat   float64
		lon   float64
	}{
		{"plain", "12.5,-45.25", 12.5, -45.25},
		{"space after comma", "12.5, -45.25", 12.5, -45.25},
		{"surrounding whitespace", "  40.7 , -74.0  ", 40.7, -74.0},
		{"tabs", "\t51.5,\t-0.12", 51.5, -0.12},
		{"integers", "40,-74", 40, -74},
		{"out of geographic range accepted", "123.4,567.8", 123.4, 567.8},
		{"negative zero", "-0.0,0.0", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, err := ParseCoordinates(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.lat, lat)
			assert.Equal(t, tt.lon, lon)
		})
	}
}

func TestParseCoordinatesWhitespaceInsensitive(t *testing.T) {
	lat1, lon1, err := ParseCoordinates("12.5,-45.25")
	assert.NoError(t, err)
	lat2, lon2, err := ParseCoordinates("12.5, -45.25")
	assert.NoError(t, err)

	assert.Equal(t, lat1, lat2)
	assert.Equal(t, lon1, lon2)
}

func TestParseCoordinatesInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no separator", "12.5"},
		{"too many parts", "12.5,45,1"},
		{"non-numeric latitude", "abc,45"},
		{"non-numeric longitude", "45,abc"},
		{"empty", ""},
		{"only separator", ","},
		{"missing longitude", "12.5,"},
		{"missing latitude", ",45"},
		{"nan", "NaN,45"},
		{"infinity", "Inf,45"},
		{"inner whitespace", "12 .5,45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseCoordinates(tt.input)
			assert.ErrorIs(t, err, ErrInvalidCoordinates)
		})
	}
}
