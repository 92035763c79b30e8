package trip

import "time"

// Source marks whether a record came from a real external service or was
// synthesized locally. It is a tagged value on every record so downstream
// consumers never have to sniff free-text source descriptions.
type Source string

const (
	SourceLive Source = "live"
	SourceMock Source = "mock"
)

// WeatherReport holds one weather reading for a location.
// TemperatureCelsius is always present; TemperatureFahrenheit may be zero,
// in which case it is derivable via CelsiusToFahrenheit.
type WeatherReport struct {
	Location              string  `json:"location"`
	TemperatureCelsius    float64 `json:"temperature_celsius"`
	TemperatureFahrenheit float64 `json:"temperature_fahrenheit,omitempty"`
	Description           string  `json:"description"`
	Humidity              int     `json:"humidity"`
	WindSpeed             float64 `json:"wind_speed"`
	Source                Source  `json:"source"`
}

// ForecastDay is one date-stamped entry of a multi-day forecast.
type ForecastDay struct {
	Date                  string  `json:"date"` // YYYY-MM-DD
	TemperatureCelsius    float64 `json:"temperature_celsius"`
	TemperatureFahrenheit float64 `json:"temperature_fahrenheit"`
	Description           string  `json:"description"`
	Humidity              int     `json:"humidity"`
	WindSpeed             float64 `json:"wind_speed"`
}

// WeatherInfo bundles the current reading with the forecast window.
type WeatherInfo struct {
	Current  WeatherReport `json:"current"`
	Forecast []ForecastDay `json:"forecast"`
}

// FlightOption is a single flight candidate.
type FlightOption struct {
	FlightNumber  string  `json:"flight_number"`
	Airline       string  `json:"airline"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	DepartureTime string  `json:"departure_time"`
	ArrivalDate   string  `json:"arrival_date"`
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration"` // free text, e.g. "6h 0m"
	Stops         int     `json:"stops"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	BookingLink   string  `json:"booking_link,omitempty"`
	Source        Source  `json:"source"`
}

// FlightQuery holds the parameters of one flight search.
type FlightQuery struct {
	FlyFrom       string `json:"from"`
	FlyTo         string `json:"to"`
	DepartureDate string `json:"departure"` // YYYY-MM-DD
	ReturnDate    string `json:"return,omitempty"`
}

// FlightSearch is one search result set. Mock outbound flights are sorted
// ascending by price; live ordering is whatever the source returned.
type FlightSearch struct {
	OutboundFlights []FlightOption `json:"outbound_flights"`
	ReturnFlights   []FlightOption `json:"return_flights,omitempty"`
	Source          Source         `json:"source"`
	SearchParams    FlightQuery    `json:"search_params"`
}

// EntryFee describes the admission cost of a place.
type EntryFee struct {
	IsFree   bool    `json:"is_free"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// PlaceOfInterest is one attraction in the itinerary pool.
type PlaceOfInterest struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"` // historical, cultural, natural, entertainment, religious
	Type          string   `json:"type"`     // subtype label, e.g. "Museum"
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"num_reviews"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	VisitDuration string   `json:"estimated_visit_duration"`
	EntryFee      EntryFee `json:"entry_fee"`
	BestTime      string   `json:"best_time_to_visit"`
	Activities    []string `json:"activities"`
}

// DayPlan is one themed day of the itinerary.
type DayPlan struct {
	Day        int               `json:"day"` // 1-based
	Theme      string            `json:"theme"`
	Places     []PlaceOfInterest `json:"places"`
	Activities []string          `json:"activities"` // union of place activities, capped at 4
}

// DateSuggestion is one proposed travel window.
type DateSuggestion struct {
	Period    string `json:"period"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// PlanRequest is the validated input to plan composition.
type PlanRequest struct {
	Destination string `json:"destination"`
	Origin      string `json:"origin"`
	NumDays     int    `json:"num_days"`
	TravelMonth int    `json:"travel_month"` // 1-12
}

// TravelPlan is the aggregate root. It owns everything beneath it and is
// constructed fresh per request; nothing is mutated after composition.
type TravelPlan struct {
	Destination     string            `json:"destination"`
	Origin          string            `json:"origin"`
	Duration        string            `json:"duration"`     // e.g. "5 days"
	TravelMonth     string            `json:"travel_month"` // month name
	CulturalContext string            `json:"cultural_context"`
	Weather         WeatherInfo       `json:"weather"`
	SuggestedDates  []DateSuggestion  `json:"suggested_dates"`
	Flights         *FlightSearch     `json:"flights,omitempty"`
	Itinerary       []DayPlan         `json:"itinerary"`
	GeneratedAt     time.Time         `json:"generated_at"`
	SourcesUsed     map[string]string `json:"sources_used"`
}
