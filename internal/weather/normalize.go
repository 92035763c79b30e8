package weather

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

// ErrUnparseable signals that the payload contained nothing recognizable;
// the adapter falls back to synthetic data.
var ErrUnparseable = errors.New("weather payload contains no recognizable data")

// Field defaults when a single token is missing from a text payload.
// Partial real data beats full synthetic data.
const (
	defaultCelsius     = 20.0
	defaultFahrenheit  = 68.0
	defaultHumidity    = 65
	defaultWindSpeed   = 10.0
	defaultDescription = "moderate weather"
)

var (
	celsiusRe    = regexp.MustCompile(`(\d+)°C`)
	fahrenheitRe = regexp.MustCompile(`(\d+)°F`)
	humidityRe   = regexp.MustCompile(`(\d+)%`)
	windRe       = regexp.MustCompile(`(\d+\.?\d*)\s*(mph|km/h|m/s)`)
)

// Condition keywords recognized in text payloads, most specific first so
// "partly cloudy" wins over "cloudy".
var conditions = []string{"partly cloudy", "sunny", "rainy", "clear", "overcast", "stormy", "cloudy"}

// structuredPayload is the JSON shape some upstream deployments return.
type structuredPayload struct {
	TemperatureCelsius    *float64 `json:"temperature_celsius"`
	TemperatureFahrenheit *float64 `json:"temperature_fahrenheit"`
	Description           string   `json:"description"`
	Humidity              *int     `json:"humidity"`
	WindSpeed             *float64 `json:"wind_speed"`
}

// Normalize converts a raw weather payload — structured JSON or free text —
// into a WeatherReport. It returns ErrUnparseable when neither form yields
// any data.
func Normalize(payload, location string) (*trip.WeatherReport, error) {
	if report, ok := normalizeStructured(payload, location); ok {
		return report, nil
	}
	return normalizeText(payload, location)
}

func normalizeStructured(payload, location string) (*trip.WeatherReport, bool) {
	var raw structuredPayload
	if err := json.Unmarshal([]byte(payload), &raw); err != nil || raw.TemperatureCelsius == nil {
		return nil, false
	}

	report := &trip.WeatherReport{
		Location:           location,
		TemperatureCelsius: *raw.TemperatureCelsius,
		Description:        raw.Description,
		Humidity:           defaultHumidity,
		WindSpeed:          defaultWindSpeed,
		Source:             trip.SourceLive,
	}
	if raw.TemperatureFahrenheit != nil {
		report.TemperatureFahrenheit = *raw.TemperatureFahrenheit
	} else {
		report.TemperatureFahrenheit = trip.CelsiusToFahrenheit(report.TemperatureCelsius)
	}
	if raw.Description == "" {
		report.Description = defaultDescription
	}
	if raw.Humidity != nil {
		report.Humidity = *raw.Humidity
	}
	if raw.WindSpeed != nil {
		report.WindSpeed = *raw.WindSpeed
	}
	return report, true
}

func normalizeText(payload, location string) (*trip.WeatherReport, error) {
	celsius, celsiusFound := extractFloat(celsiusRe, payload)
	fahrenheit, fahrenheitFound := extractFloat(fahrenheitRe, payload)
	humidity, humidityFound := extractInt(humidityRe, payload)
	wind, windFound := extractWind(payload)
	description, descriptionFound := extractCondition(payload)

	if !celsiusFound && !fahrenheitFound && !humidityFound && !windFound && !descriptionFound {
		return nil, ErrUnparseable
	}

	report := &trip.WeatherReport{
		Location:              location,
		TemperatureCelsius:    defaultCelsius,
		TemperatureFahrenheit: defaultFahrenheit,
		Description:           defaultDescription,
		Humidity:              defaultHumidity,
		WindSpeed:             defaultWindSpeed,
		Source:                trip.SourceLive,
	}
	if celsiusFound {
		report.TemperatureCelsius = celsius
		if !fahrenheitFound {
			fahrenheit = trip.CelsiusToFahrenheit(celsius)
			fahrenheitFound = true
		}
	}
	if fahrenheitFound {
		report.TemperatureFahrenheit = fahrenheit
	}
	if humidityFound {
		report.Humidity = humidity
	}
	if windFound {
		report.WindSpeed = wind
	}
	if descriptionFound {
		report.Description = description
	}
	return report, nil
}

func extractFloat(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func extractInt(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}

func extractWind(text string) (float64, bool) {
	return extractFloat(windRe, strings.ToLower(text))
}

func extractCondition(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, c := range conditions {
		if strings.Contains(lower, c) {
			return c, true
		}
	}
	return "", false
}
