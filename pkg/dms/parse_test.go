package dms

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLat float64
		wantLon float64
	}{
		{
			name:    "new york",
			input:   "40°42′46″N 74°0′22″W",
			wantLat: 40.71278,
			wantLon: -74.00611,
		},
		{
			name:    "paris",
			input:   "48°51′24″N 2°21′8″E",
			wantLat: 48.85667,
			wantLon: 2.35222,
		},
		{
			name:    "sydney southern hemisphere",
			input:   "33°52′4″S 151°12′26″E",
			wantLat: -33.86778,
			wantLon: 151.20722,
		},
		{
			name:    "multiple whitespace between groups",
			input:   "0°0′0″S \t 0°0′36″W",
			wantLat: 0,
			wantLon: -0.01,
		},
		{
			name:    "out of range minutes are accepted",
			input:   "40°99′99″N 74°0′0″E",
			wantLat: 40 + 99.0/60 + 99.0/3600,
			wantLon: 74,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, err := Parse(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantLat, lat, 1e-5)
			assert.InDelta(t, tt.wantLon, lon, 1e-5)
		})
	}
}

func TestParse_Formula(t *testing.T) {
	for _, h1 := range []string{"N", "S"} {
		for _, h2 := range []string{"E", "W"} {
			for _, d := range []int{0, 1, 45, 89, 179} {
				m, s := (d*7)%60, (d*13)%60
				input := fmt.Sprintf("%d°%d′%d″%s %d°%d′%d″%s", d, m, s, h1, d, s, m, h2)

				lat, lon, err := Parse(input)
				require.NoError(t, err, input)

				wantLat := float64(d) + float64(m)/60 + float64(s)/3600
				wantLon := float64(d) + float64(s)/60 + float64(m)/3600
				if h1 == "S" {
					wantLat = -wantLat
				}
				if h2 == "W" {
					wantLon = -wantLon
				}
				assert.Equal(t, wantLat, lat, input)
				assert.Equal(t, wantLon, lon, input)
			}
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"New York",
		"40,74",
		"40.7128, -74.0060",
		"40°42'46\"N 74°0'22\"W",
		"40°42′46″N",
		"40°42′46″N74°0′22″W",
		"40°42′46″E 74°0′22″N",
		"40°42′46″n 74°0′22″w",
		"-40°42′46″N 74°0′22″W",
		"40°42.5′46″N 74°0′22″W",
		"at 40°42′46″N 74°0′22″W",
		"40°42′46″N 74°0′22″W please",
		"40°42′46″N 74°0′22″W ",
		"40°42′46″N 74°0′W",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, _, err := Parse(input)
				assert.ErrorIs(t, err, ErrParseFailure)
			})
			assert.False(t, Valid(input))
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	input := "40°42′46″N 74°0′22″W"

	lat1, lon1, err := Parse(input)
	require.NoError(t, err)
	lat2, lon2, err := Parse(input)
	require.NoError(t, err)

	assert.Equal(t, math.Float64bits(lat1), math.Float64bits(lat2))
	assert.Equal(t, math.Float64bits(lon1), math.Float64bits(lon2))
}

func TestParse_HugeDegreesDoNotOverflow(t *testing.T) {
	lat, _, err := Parse("99999999999999999999°0′0″N 0°0′0″E")
	require.NoError(t, err)
	assert.Greater(t, lat, 1e19)
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = Parse("40°42′46″N 74°0′22″W")
	}
}
