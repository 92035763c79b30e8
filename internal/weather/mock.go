package weather

import (
	"time"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

// forecastConditions is the condition cycle used by synthetic forecasts.
var forecastConditions = []string{"sunny", "partly cloudy", "cloudy"}

// MockCurrent returns the fixed synthetic current reading.
func MockCurrent(location string) *trip.WeatherReport {
	return &trip.WeatherReport{
		Location:              location,
		TemperatureCelsius:    24.5,
		TemperatureFahrenheit: 76.1,
		Description:           "partly cloudy",
		Humidity:              65,
		WindSpeed:             12.5,
		Source:                trip.SourceMock,
	}
}

// MockForecast returns a synthetic forecast of numDays entries starting
// today. Temperatures oscillate over a small 3-value cycle.
func MockForecast(numDays int, now time.Time) []trip.ForecastDay {
	const baseTemp = 24.0

	forecast := make([]trip.ForecastDay, 0, numDays)
	for i := 0; i < numDays; i++ {
		celsius := baseTemp + float64(i%3)*2
		forecast = append(forecast, trip.ForecastDay{
			Date:                  trip.FormatDate(now.AddDate(0, 0, i)),
			TemperatureCelsius:    celsius,
			TemperatureFahrenheit: trip.CelsiusToFahrenheit(celsius),
			Description:           forecastConditions[i%3],
			Humidity:              60 + (i%4)*5,
			WindSpeed:             10 + float64(i%3)*2,
		})
	}
	return forecast
}
