// internal/conversation/dispatch-intent/messages.go
package dispatchintent

import (
	"fmt"
	"strconv"

	"weather-fulfillment/internal/models"
)

const (
	GreetingText = "Hi! I am a weather bot. What location would you like to know the current weather for? " +
		"Use the standard latitude and longitude format, which for New York City, for example, would be: 40°42′46″N 74°0′22″W."
	FallbackText           = "I'm not sure how to handle that request."
	InvalidCoordinatesText = "Invalid latitude and longitude format. Please try again."
	FetchFailedText        = "Failed to fetch weather data. Please try again later."
	MissingAPIKeyText      = "OPENWEATHERMAP_API_KEY must be provided!"
	RequestErrorText       = "An error occurred while processing the request."

	givenLocation = "the given location"
)

// weatherText renders "The weather for {place} is {description} with a
// temperature of {temp}ºC." using the shortest decimal form of temp.
func weatherText(place string, result models.WeatherResult) string {
	return fmt.Sprintf("The weather for %s is %s with a temperature of %sºC.",
		place, result.Description, strconv.FormatFloat(result.TemperatureCelsius, 'f', -1, 64))
}

func namedPlace(loc models.NamedLocation) string {
	return fmt.Sprintf("%s / %s / %s", loc.City, loc.State, loc.Country)
}
