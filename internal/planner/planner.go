// Package planner composes travel plans. It owns date-window computation,
// input validation, and the orchestration of the LLM, the weather and
// flight adapters, and the itinerary builder. The adapters never fail, so
// composition only fails on invalid input.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

// Fixed offsets of the plan's date window.
const (
	departureOffsetDays = 2
	forecastCap         = 5
	defaultNumResults   = 3
)

// WeatherProvider is the interface satisfied by weather.Service.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) *trip.WeatherReport
	Forecast(ctx context.Context, city string, numDays int) []trip.ForecastDay
}

// FlightProvider is the interface satisfied by flights.Service.
type FlightProvider interface {
	BestFlights(ctx context.Context, query trip.FlightQuery, numResults int) *trip.FlightSearch
}

// ItineraryBuilder is the interface satisfied by places.Builder.
type ItineraryBuilder interface {
	BuildItinerary(destination string, numDays int) []trip.DayPlan
}

// Narrator is the interface satisfied by llm.Client.
type Narrator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Planner assembles TravelPlans.
type Planner struct {
	narrator  Narrator
	weather   WeatherProvider
	flights   FlightProvider
	itinerary ItineraryBuilder
	now       func() time.Time
	log       *slog.Logger
}

// New constructs a Planner.
func New(narrator Narrator, weather WeatherProvider, flights FlightProvider, itinerary ItineraryBuilder, log *slog.Logger) *Planner {
	return &Planner{
		narrator:  narrator,
		weather:   weather,
		flights:   flights,
		itinerary: itinerary,
		now:       time.Now,
		log:       log,
	}
}

// NewWithClock constructs a Planner with an injectable clock (for tests).
func NewWithClock(narrator Narrator, weather WeatherProvider, flights FlightProvider, itinerary ItineraryBuilder, now func() time.Time, log *slog.Logger) *Planner {
	p := New(narrator, weather, flights, itinerary, log)
	p.now = now
	return p
}

// ValidateRequest rejects bad input before any component is invoked.
func ValidateRequest(req trip.PlanRequest) error {
	if len(strings.TrimSpace(req.Destination)) < 2 {
		return fmt.Errorf("destination must be at least 2 characters")
	}
	if req.NumDays < 1 || req.NumDays > 30 {
		return fmt.Errorf("number of days must be between 1 and 30")
	}
	if req.TravelMonth < 1 || req.TravelMonth > 12 {
		return fmt.Errorf("travel month must be between 1 and 12")
	}
	return nil
}

// CreatePlan builds one complete TravelPlan. Weather and flights are
// independent and fetched concurrently; both always succeed (the adapters
// substitute synthetic data internally), so the only error path here is
// input validation.
func (p *Planner) CreatePlan(ctx context.Context, req trip.PlanRequest) (*trip.TravelPlan, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	if req.Origin == "" {
		req.Origin = "NYC"
	}

	departure := p.now().AddDate(0, 0, departureOffsetDays)
	returnDay := departure.AddDate(0, 0, req.NumDays)

	p.log.Info("creating travel plan",
		"origin", req.Origin, "destination", req.Destination,
		"days", req.NumDays, "departure", trip.FormatDate(departure))

	culturalContext := p.culturalContext(ctx, req.Destination)

	query := trip.FlightQuery{
		FlyFrom:       CityCode(req.Origin),
		FlyTo:         CityCode(req.Destination),
		DepartureDate: trip.FormatDate(departure),
		ReturnDate:    trip.FormatDate(returnDay),
	}

	forecastDays := req.NumDays
	if forecastDays > forecastCap {
		forecastDays = forecastCap
	}

	var weatherInfo trip.WeatherInfo
	var flightSearch *trip.FlightSearch

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		weatherInfo.Current = *p.weather.CurrentWeather(gCtx, req.Destination)
		weatherInfo.Forecast = p.weather.Forecast(gCtx, req.Destination, forecastDays)
		return nil
	})
	g.Go(func() error {
		flightSearch = p.flights.BestFlights(gCtx, query, defaultNumResults)
		return nil
	})
	_ = g.Wait() // branches never return errors; adapters degrade internally

	itinerary := p.itinerary.BuildItinerary(req.Destination, req.NumDays)

	return &trip.TravelPlan{
		Destination:     req.Destination,
		Origin:          req.Origin,
		Duration:        fmt.Sprintf("%d days", req.NumDays),
		TravelMonth:     trip.MonthName(req.TravelMonth),
		CulturalContext: culturalContext,
		Weather:         weatherInfo,
		SuggestedDates:  dateSuggestions(departure, returnDay),
		Flights:         flightSearch,
		Itinerary:       itinerary,
		GeneratedAt:     p.now(),
		SourcesUsed:     sourcesUsed(weatherInfo.Current.Source, flightSearch.Source),
	}, nil
}

// culturalContext asks the LLM for a short destination narrative, falling
// back to a fixed template when the model is unavailable.
func (p *Planner) culturalContext(ctx context.Context, destination string) string {
	prompt := fmt.Sprintf(
		"Write a concise, informative paragraph (4-6 sentences) about the cultural "+
			"and historical significance of %s. Include historical importance, cultural "+
			"highlights, what makes it unique, and why travelers should visit. "+
			"Keep it engaging and informative.", destination)

	text, err := p.narrator.Generate(ctx, prompt)
	if err != nil {
		p.log.Warn("cultural context generation failed, using fallback narrative", "destination", destination, "err", err)
		return fallbackNarrative(destination)
	}
	return text
}

func fallbackNarrative(destination string) string {
	return fmt.Sprintf("%s is a remarkable destination known for its rich cultural heritage "+
		"and historical significance. The city offers a unique blend of tradition and modernity, "+
		"making it an ideal destination for travelers seeking authentic experiences. "+
		"Visitors can explore numerous historical sites, immerse themselves in local culture, "+
		"and enjoy the vibrant atmosphere that %s has to offer.", destination, destination)
}

// dateSuggestions proposes the computed window plus the same window shifted
// by one and two weeks.
func dateSuggestions(departure, returnDay time.Time) []trip.DateSuggestion {
	periods := []struct {
		label  string
		offset int
	}{
		{"Suggested Dates", 0},
		{"Alternative (+1 week)", 7},
		{"Alternative (+2 weeks)", 14},
	}

	out := make([]trip.DateSuggestion, 0, len(periods))
	for _, p := range periods {
		out = append(out, trip.DateSuggestion{
			Period:    p.label,
			StartDate: trip.FormatLongDate(departure.AddDate(0, 0, p.offset)),
			EndDate:   trip.FormatLongDate(returnDay.AddDate(0, 0, p.offset)),
		})
	}
	return out
}

// sourcesUsed maps each service to a human-readable provenance description
// derived from the tagged Source values.
func sourcesUsed(weatherSource, flightSource trip.Source) map[string]string {
	describe := func(s trip.Source, live string) string {
		if s == trip.SourceLive {
			return live
		}
		return "Mock Data (live source unavailable)"
	}
	return map[string]string{
		"weather": describe(weatherSource, "AccuWeather conditions service"),
		"flights": describe(flightSource, "Kiwi.com flight search"),
		"places":  "Synthetic itinerary generator",
	}
}
