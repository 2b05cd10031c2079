// internal/weather/fetch-current/models.go
package fetchcurrent

// currentWeatherResponse is the subset of /data/2.5/weather the fulfillment
// text needs. Pointer fields distinguish "absent" from zero values.
type currentWeatherResponse struct {
	Weather []struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

type errorResponse struct {
	Message string `json:"message"`
}
