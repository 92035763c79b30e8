package planner

import "strings"

// cityCodes maps well-known city names to their 3-letter codes.
var cityCodes = map[string]string{
	"new york":      "NYC",
	"nyc":           "NYC",
	"paris":         "PAR",
	"london":        "LON",
	"tokyo":         "TYO",
	"los angeles":   "LAX",
	"chicago":       "CHI",
	"san francisco": "SFO",
	"miami":         "MIA",
	"boston":        "BOS",
	"seattle":       "SEA",
	"rome":          "ROM",
	"barcelona":     "BCN",
	"amsterdam":     "AMS",
	"dubai":         "DXB",
	"singapore":     "SIN",
	"hong kong":     "HKG",
	"sydney":        "SYD",
	"delhi":         "DEL",
	"mumbai":        "BOM",
}

// CityCode converts a free-text city name to a 3-letter code. Lookups are
// case-insensitive and trimmed; unknown cities fall back to the first three
// characters of the name, uppercased.
func CityCode(city string) string {
	trimmed := strings.TrimSpace(city)
	if code, ok := cityCodes[strings.ToLower(trimmed)]; ok {
		return code
	}
	if len(trimmed) > 3 {
		trimmed = trimmed[:3]
	}
	return strings.ToUpper(trimmed)
}
