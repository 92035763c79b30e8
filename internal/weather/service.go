package weather

import (
	"context"
	"log/slog"
	"time"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

// rawFetcher is the interface satisfied by Client.
type rawFetcher interface {
	Fetch(ctx context.Context, location, units string) (string, error)
}

// Service owns the fallback contract for the weather source: one attempt
// under a fixed timeout, then synthetic data. It never returns an error to
// its caller — every result is a valid, provenance-tagged record.
type Service struct {
	client  rawFetcher
	useMock bool
	now     func() time.Time
	log     *slog.Logger
}

// NewService constructs a Service. When useMock is true the live source is
// never contacted.
func NewService(client rawFetcher, useMock bool, log *slog.Logger) *Service {
	return &Service{client: client, useMock: useMock, now: time.Now, log: log}
}

// NewServiceWithClock constructs a Service with an injectable clock (for tests).
func NewServiceWithClock(client rawFetcher, useMock bool, now func() time.Time, log *slog.Logger) *Service {
	return &Service{client: client, useMock: useMock, now: now, log: log}
}

// CurrentWeather returns the current conditions for a city, synthetic on
// any transport or parse failure. No retry: the pipeline must keep moving.
func (s *Service) CurrentWeather(ctx context.Context, city string) *trip.WeatherReport {
	if s.useMock {
		return MockCurrent(city)
	}

	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	payload, err := s.client.Fetch(callCtx, city, "metric")
	if err != nil {
		s.log.Warn("weather fetch failed, using mock data", "city", city, "err", err)
		return MockCurrent(city)
	}

	report, err := Normalize(payload, city)
	if err != nil {
		s.log.Warn("weather payload unparseable, using mock data", "city", city, "err", err)
		return MockCurrent(city)
	}
	return report
}

// Forecast returns a numDays forecast. A live current reading seeds the
// per-day entries (the upstream source is hourly-only); otherwise the
// synthetic forecast is used.
func (s *Service) Forecast(ctx context.Context, city string, numDays int) []trip.ForecastDay {
	current := s.CurrentWeather(ctx, city)
	if current.Source != trip.SourceLive {
		return MockForecast(numDays, s.now())
	}

	forecast := make([]trip.ForecastDay, 0, numDays)
	for i := 0; i < numDays; i++ {
		celsius := current.TemperatureCelsius + float64(i%3) - 1
		forecast = append(forecast, trip.ForecastDay{
			Date:                  trip.FormatDate(s.now().AddDate(0, 0, i)),
			TemperatureCelsius:    celsius,
			TemperatureFahrenheit: trip.CelsiusToFahrenheit(celsius),
			Description:           current.Description,
			Humidity:              current.Humidity,
			WindSpeed:             current.WindSpeed,
		})
	}
	return forecast
}
