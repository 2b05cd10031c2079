// internal/location/resolve-location/contexts.go
package resolvelocation

import "weather-fulfillment/internal/models"

// NamedLocationFromContexts picks the first context whose parameters carry
// geo-city, geo-state and geo-country and reads their ".original" values.
// Later contexts are not consulted once one qualifies; if the selected
// context lacks usable original values the result is not ok.
func NamedLocationFromContexts(contexts []models.OutputContext) (models.NamedLocation, bool) {
	for _, c := range contexts {
		params := c.Parameters
		if params == nil {
			continue
		}
		if !hasKeys(params, ParamCity, ParamState, ParamCountry) {
			continue
		}

		loc := models.NamedLocation{
			City:    stringParam(params, ParamCity+originalSuffix),
			State:   stringParam(params, ParamState+originalSuffix),
			Country: stringParam(params, ParamCountry+originalSuffix),
		}
		return loc, loc.Complete()
	}
	return models.NamedLocation{}, false
}

func hasKeys(params map[string]interface{}, keys ...string) bool {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return false
		}
	}
	return true
}

func stringParam(params map[string]interface{}, key string) string {
	s, _ := params[key].(string)
	return s
}
