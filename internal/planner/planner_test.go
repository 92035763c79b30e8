package planner_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/flights"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/places"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/planner"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/weather"
)

// ---- stubs ----

type stubNarrator struct {
	text  string
	err   error
	calls int
}

func (s *stubNarrator) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.text, s.err
}

type stubWeather struct {
	forecastDaysAsked int
}

func (s *stubWeather) CurrentWeather(_ context.Context, city string) *trip.WeatherReport {
	return weather.MockCurrent(city)
}

func (s *stubWeather) Forecast(_ context.Context, _ string, numDays int) []trip.ForecastDay {
	s.forecastDaysAsked = numDays
	return weather.MockForecast(numDays, time.Now())
}

type stubFlights struct {
	gotQuery      trip.FlightQuery
	gotNumResults int
}

func (s *stubFlights) BestFlights(_ context.Context, query trip.FlightQuery, numResults int) *trip.FlightSearch {
	s.gotQuery = query
	s.gotNumResults = numResults
	result := flights.MockFlights(query)
	if len(result.OutboundFlights) > numResults {
		result.OutboundFlights = result.OutboundFlights[:numResults]
	}
	if len(result.ReturnFlights) > numResults {
		result.ReturnFlights = result.ReturnFlights[:numResults]
	}
	return result
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func buildPlanner(narrator planner.Narrator, w planner.WeatherProvider, f planner.FlightProvider) *planner.Planner {
	return planner.NewWithClock(narrator, w, f, places.NewBuilder(), func() time.Time { return testNow }, discardLogger())
}

// ---- validation ----

func TestValidateRequest(t *testing.T) {
	valid := trip.PlanRequest{Destination: "Paris", NumDays: 5, TravelMonth: 6}
	require.NoError(t, planner.ValidateRequest(valid))

	cases := []struct {
		name string
		req  trip.PlanRequest
	}{
		{"empty destination", trip.PlanRequest{Destination: "", NumDays: 5, TravelMonth: 6}},
		{"whitespace destination", trip.PlanRequest{Destination: "  P ", NumDays: 5, TravelMonth: 6}},
		{"zero days", trip.PlanRequest{Destination: "Paris", NumDays: 0, TravelMonth: 6}},
		{"too many days", trip.PlanRequest{Destination: "Paris", NumDays: 31, TravelMonth: 6}},
		{"month too low", trip.PlanRequest{Destination: "Paris", NumDays: 5, TravelMonth: 0}},
		{"month too high", trip.PlanRequest{Destination: "Paris", NumDays: 5, TravelMonth: 13}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, planner.ValidateRequest(tc.req))
		})
	}
}

func TestCreatePlan_InvalidInput_NothingInvoked(t *testing.T) {
	narrator := &stubNarrator{text: "should not be called"}
	p := buildPlanner(narrator, &stubWeather{}, &stubFlights{})

	_, err := p.CreatePlan(context.Background(), trip.PlanRequest{Destination: "X", NumDays: 5, TravelMonth: 6})
	require.Error(t, err)
	assert.Zero(t, narrator.calls, "no component may run for invalid input")
}

// ---- city codes ----

func TestCityCode_KnownCities(t *testing.T) {
	assert.Equal(t, "PAR", planner.CityCode("Paris"))
	assert.Equal(t, "NYC", planner.CityCode("New York"))
	assert.Equal(t, "TYO", planner.CityCode("tokyo"))
	assert.Equal(t, "BOM", planner.CityCode("MUMBAI"))
}

func TestCityCode_TrimsAndIgnoresCase(t *testing.T) {
	assert.Equal(t, "PAR", planner.CityCode("  Paris "))
	assert.Equal(t, "PAR", planner.CityCode("pArIs"))
}

func TestCityCode_Idempotent(t *testing.T) {
	// A code already in the table maps to itself.
	assert.Equal(t, "NYC", planner.CityCode("NYC"))
	assert.Equal(t, "NYC", planner.CityCode(" nyc "))
}

func TestCityCode_UnknownFallsBackToPrefix(t *testing.T) {
	assert.Equal(t, "REY", planner.CityCode("Reykjavik"))
	assert.Equal(t, "OSL", planner.CityCode("Oslo"))
	assert.Equal(t, "UB", planner.CityCode("UB"))
}

// ---- plan composition ----

func TestCreatePlan_EndToEnd(t *testing.T) {
	narrator := &stubNarrator{text: "Paris has a rich history."}
	w := &stubWeather{}
	f := &stubFlights{}
	p := buildPlanner(narrator, w, f)

	plan, err := p.CreatePlan(context.Background(), trip.PlanRequest{
		Destination: "Paris",
		Origin:      "NYC",
		NumDays:     5,
		TravelMonth: 6,
	})
	require.NoError(t, err)
	require.NotNil(t, plan)

	assert.Equal(t, "Paris", plan.Destination)
	assert.Equal(t, "NYC", plan.Origin)
	assert.Equal(t, "5 days", plan.Duration)
	assert.Equal(t, "June", plan.TravelMonth)
	assert.Equal(t, "Paris has a rich history.", plan.CulturalContext)

	assert.Len(t, plan.Itinerary, 5)
	assert.LessOrEqual(t, len(plan.Weather.Forecast), 5)
	assert.LessOrEqual(t, len(plan.Flights.OutboundFlights), 3)

	require.Len(t, plan.SuggestedDates, 3)
	assert.Equal(t, "Suggested Dates", plan.SuggestedDates[0].Period)
	assert.Equal(t, "June 12, 2025", plan.SuggestedDates[0].StartDate) // today + 2 days
	assert.Equal(t, "June 17, 2025", plan.SuggestedDates[0].EndDate)
	assert.Equal(t, "June 19, 2025", plan.SuggestedDates[1].StartDate)
	assert.Equal(t, "June 26, 2025", plan.SuggestedDates[2].StartDate)

	assert.Equal(t, trip.FlightQuery{
		FlyFrom:       "NYC",
		FlyTo:         "PAR",
		DepartureDate: "2025-06-12",
		ReturnDate:    "2025-06-17",
	}, f.gotQuery)
	assert.Equal(t, 3, f.gotNumResults)

	assert.Equal(t, testNow, plan.GeneratedAt)
	assert.Contains(t, plan.SourcesUsed, "weather")
	assert.Contains(t, plan.SourcesUsed, "flights")
	assert.Contains(t, plan.SourcesUsed, "places")
}

func TestCreatePlan_ForecastCappedAtFiveDays(t *testing.T) {
	w := &stubWeather{}
	p := buildPlanner(&stubNarrator{text: "ok"}, w, &stubFlights{})

	_, err := p.CreatePlan(context.Background(), trip.PlanRequest{Destination: "Paris", NumDays: 12, TravelMonth: 6})
	require.NoError(t, err)
	assert.Equal(t, 5, w.forecastDaysAsked)

	_, err = p.CreatePlan(context.Background(), trip.PlanRequest{Destination: "Paris", NumDays: 3, TravelMonth: 6})
	require.NoError(t, err)
	assert.Equal(t, 3, w.forecastDaysAsked)
}

func TestCreatePlan_DefaultOrigin(t *testing.T) {
	f := &stubFlights{}
	p := buildPlanner(&stubNarrator{text: "ok"}, &stubWeather{}, f)

	plan, err := p.CreatePlan(context.Background(), trip.PlanRequest{Destination: "Paris", NumDays: 2, TravelMonth: 1})
	require.NoError(t, err)
	assert.Equal(t, "NYC", plan.Origin)
	assert.Equal(t, "NYC", f.gotQuery.FlyFrom)
}

func TestCreatePlan_LLMFailure_UsesFallbackNarrative(t *testing.T) {
	narrator := &stubNarrator{err: fmt.Errorf("model unavailable")}
	p := buildPlanner(narrator, &stubWeather{}, &stubFlights{})

	plan, err := p.CreatePlan(context.Background(), trip.PlanRequest{Destination: "Paris", NumDays: 2, TravelMonth: 6})
	require.NoError(t, err)
	assert.Contains(t, plan.CulturalContext, "Paris is a remarkable destination")
}

func TestCreatePlan_AdapterFailuresDegradeToMock(t *testing.T) {
	// Real adapters wired to dead endpoints: the plan must still come out
	// complete, with every record tagged as mock.
	weatherSvc := weather.NewService(weather.NewClientWithURL("http://127.0.0.1:1", "k"), false, discardLogger())
	flightSvc := flights.NewService(flights.NewClientWithURL("http://127.0.0.1:1"), false, discardLogger())
	p := planner.NewWithClock(&stubNarrator{err: fmt.Errorf("down")}, weatherSvc, flightSvc, places.NewBuilder(),
		func() time.Time { return testNow }, discardLogger())

	plan, err := p.CreatePlan(context.Background(), trip.PlanRequest{Destination: "Paris", NumDays: 4, TravelMonth: 7})
	require.NoError(t, err)

	assert.Equal(t, trip.SourceMock, plan.Weather.Current.Source)
	assert.Equal(t, trip.SourceMock, plan.Flights.Source)
	assert.Len(t, plan.Itinerary, 4)
	assert.Contains(t, plan.SourcesUsed["weather"], "Mock")
	assert.Contains(t, plan.SourcesUsed["flights"], "Mock")
}
