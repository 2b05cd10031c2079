package models

// CoordinatePair is a signed decimal latitude/longitude.
type CoordinatePair struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// NamedLocation is a city/state/country triple as supplied by the
// conversational agent. Values are raw user text.
type NamedLocation struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Complete reports whether every part of the triple is non-empty.
func (l NamedLocation) Complete() bool {
	return l.City != "" && l.State != "" && l.Country != ""
}
