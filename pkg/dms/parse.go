// Package dms parses degrees-minutes-seconds coordinate strings such as
// "40°42′46″N 74°0′22″W" into signed decimal degrees.
package dms

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrParseFailure is returned for any input that does not follow the grammar
// D°M′S″[NS] D°M′S″[EW].
var ErrParseFailure = errors.New("PARSE_FAILURE")

// The whole input must match; surrounding text or whitespace is rejected.
var pattern = regexp.MustCompile(`^(\d+)°(\d+)′(\d+)″([NS])\s+(\d+)°(\d+)′(\d+)″([EW])$`)

// Parse converts a DMS pair into decimal latitude and longitude. Minutes and
// seconds are not range checked: "40°99′99″N" is accepted and computed as is.
func Parse(input string) (lat, lon float64, err error) {
	m := pattern.FindStringSubmatch(input)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q does not match D°M′S″H D°M′S″H", ErrParseFailure, input)
	}

	lat, err = decimal(m[1], m[2], m[3])
	if err != nil {
		return 0, 0, err
	}
	lon, err = decimal(m[5], m[6], m[7])
	if err != nil {
		return 0, 0, err
	}

	if m[4] == "S" {
		lat = -lat
	}
	if m[8] == "W" {
		lon = -lon
	}
	return lat, lon, nil
}

// Valid reports whether input would parse.
func Valid(input string) bool {
	_, _, err := Parse(input)
	return err == nil
}

func decimal(d, m, s string) (float64, error) {
	parts := [3]float64{}
	for i, raw := range [3]string{d, m, s} {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrParseFailure, err)
		}
		parts[i] = v
	}
	return parts[0] + parts[1]/60 + parts[2]/3600, nil
}
