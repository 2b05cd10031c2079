package models

// WeatherResult holds the current conditions reported for a coordinate pair.
type WeatherResult struct {
	Description        string  `json:"description"`
	TemperatureCelsius float64 `json:"temperatureCelsius"`
}
