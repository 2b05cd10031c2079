// internal/location/resolve-location/models.go
package resolvelocation

// Candidate is one entry of an OpenWeatherMap direct geocoding reply.
// Lat and Lon are pointers so an entry without coordinates can be told apart
// from one at 0,0.
type Candidate struct {
	Name    string   `json:"name"`
	State   string   `json:"state,omitempty"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

// Context parameter keys written by the agent's location entities.
const (
	ParamCity    = "geo-city"
	ParamState   = "geo-state"
	ParamCountry = "geo-country"

	originalSuffix = ".original"
)
