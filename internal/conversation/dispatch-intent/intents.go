// internal/conversation/dispatch-intent/intents.go
package dispatchintent

// Intent is the closed set of intents the webhook understands.
type Intent int

const (
	IntentUnrecognized Intent = iota
	IntentGreeting
	IntentGetWeather
	IntentGetWeatherByCoordinates
	IntentGetCountryName
)

var intentNames = map[Intent]string{
	IntentUnrecognized:            "Unrecognized",
	IntentGreeting:                "Greeting",
	IntentGetWeather:              "GetWeather",
	IntentGetWeatherByCoordinates: "GetWeatherByCoordinates",
	IntentGetCountryName:          "GetCountryName",
}

var intentsByName = func() map[string]Intent {
	m := make(map[string]Intent, len(intentNames))
	for intent, name := range intentNames {
		if intent != IntentUnrecognized {
			m[name] = intent
		}
	}
	return m
}()

// ParseIntent maps an agent display name to an Intent. Matching is exact and
// case-sensitive; anything else is IntentUnrecognized.
func ParseIntent(name string) Intent {
	if intent, ok := intentsByName[name]; ok {
		return intent
	}
	return IntentUnrecognized
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return intentNames[IntentUnrecognized]
}
