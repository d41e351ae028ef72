package geolib

import "sort"

// documentIsResult marks endpoints whose response document, once checked for
// a status envelope, is the payload itself.
const documentIsResult = ""

// endpointResults is the registry of callable endpoints. Each entry maps an
// endpoint name to the property of the response document that carries the
// payload. The web service exposes every endpoint under the path
// "<name>JSON".
var endpointResults = map[string]string{
	"astergdem":               documentIsResult,
	"children":                "geonames",
	"cities":                  "geonames",
	"countryCode":             documentIsResult,
	"countryInfo":             "geonames",
	"countrySubdivision":      documentIsResult,
	"earthquakes":             "earthquakes",
	"extendedFindNearby":      documentIsResult,
	"findNearby":              "geonames",
	"findNearbyPlaceName":     "geonames",
	"findNearbyPostalCodes":   "postalCodes",
	"findNearbyStreets":       "streetSegment",
	"findNearbyWeather":       "weatherObservation",
	"findNearbyWikipedia":     "geonames",
	"findNearestAddress":      "address",
	"findNearestIntersection": "intersection",
	"get":                     documentIsResult,
	"gtopo30":                 documentIsResult,
	"hierarchy":               "geonames",
	"neighbourhood":           "neighbourhood",
	"neighbours":              "geonames",
	"ocean":                   "ocean",
	"postalCodeCountryInfo":   "geonames",
	"postalCodeLookup":        "postalcodes",
	"postalCodeSearch":        "postalCodes",
	"search":                  "geonames",
	"siblings":                "geonames",
	"srtm1":                   documentIsResult,
	"srtm3":                   documentIsResult,
	"timezone":                documentIsResult,
	"weather":                 "weatherObservations",
	"weatherIcao":             "weatherObservation",
	"wikipediaBoundingBox":    "geonames",
	"wikipediaSearch":         "geonames",
}

// SupportedEndpoints returns a sorted list of endpoint names this client can
// call through Invoke.
func SupportedEndpoints() []string {
	names := make([]string, 0, len(endpointResults))

	for name := range endpointResults {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
