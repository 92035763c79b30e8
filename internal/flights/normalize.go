package flights

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

// ErrUnparseable signals a payload with no extractable flight data.
var ErrUnparseable = errors.New("flight payload contains no recognizable data")

// maxParsedFlights caps how many entries are taken from a live response.
const maxParsedFlights = 5

var priceRe = regexp.MustCompile(`\$(\d+)`)

// kiwiFlight is one entry of the structured upstream response.
type kiwiFlight struct {
	ID             string   `json:"id"`
	Airlines       []string `json:"airlines"`
	LocalDeparture string   `json:"local_departure"` // RFC3339-ish local timestamp
	LocalArrival   string   `json:"local_arrival"`
	FlyDuration    string   `json:"fly_duration"`
	Route          []any    `json:"route"`
	Price          float64  `json:"price"`
	Currency       string   `json:"currency"`
	DeepLink       string   `json:"deep_link"`
}

type kiwiResponse struct {
	Data []kiwiFlight `json:"data"`
}

// Normalize converts a raw flight-search payload into a FlightSearch.
// Structured JSON is preferred; a text payload is scanned for $-prefixed
// prices and flights are synthesized around them with placeholder times.
func Normalize(payload string, query trip.FlightQuery) (*trip.FlightSearch, error) {
	result := &trip.FlightSearch{
		Source:       trip.SourceLive,
		SearchParams: query,
	}

	var raw kiwiResponse
	if err := json.Unmarshal([]byte(payload), &raw); err == nil && len(raw.Data) > 0 {
		for i, f := range raw.Data {
			if i == maxParsedFlights {
				break
			}
			result.OutboundFlights = append(result.OutboundFlights, normalizeKiwiFlight(f, query))
		}
		return result, nil
	}

	outbound := normalizeText(payload, query)
	if len(outbound) == 0 {
		return nil, ErrUnparseable
	}
	result.OutboundFlights = outbound
	return result, nil
}

func normalizeKiwiFlight(f kiwiFlight, query trip.FlightQuery) trip.FlightOption {
	airline := "Kiwi Airlines"
	if len(f.Airlines) > 0 {
		airline = f.Airlines[0]
	}

	stops := 0
	if len(f.Route) > 1 {
		stops = len(f.Route) - 1
	}

	duration := f.FlyDuration
	if duration == "" {
		duration = "N/A"
	}

	currency := f.Currency
	if currency == "" {
		currency = "USD"
	}

	return trip.FlightOption{
		FlightNumber:  f.ID,
		Airline:       airline,
		Origin:        query.FlyFrom,
		Destination:   query.FlyTo,
		DepartureDate: timestampDate(f.LocalDeparture),
		DepartureTime: timestampTime(f.LocalDeparture),
		ArrivalDate:   timestampDate(f.LocalArrival),
		ArrivalTime:   timestampTime(f.LocalArrival),
		Duration:      duration,
		Stops:         stops,
		Price:         f.Price,
		Currency:      currency,
		BookingLink:   f.DeepLink,
		Source:        trip.SourceLive,
	}
}

// timestampDate takes the date part of a local timestamp like
// "2025-06-01T08:30:00".
func timestampDate(ts string) string {
	if len(ts) < 10 {
		return ts
	}
	return ts[:10]
}

// timestampTime takes the HH:MM part of a local timestamp.
func timestampTime(ts string) string {
	if len(ts) < 16 {
		return ""
	}
	return ts[11:16]
}

// normalizeText synthesizes up to 5 flight records from $-prefixed prices
// found in a text payload, with deterministic placeholder times and a fixed
// 6-hour duration.
func normalizeText(payload string, query trip.FlightQuery) []trip.FlightOption {
	matches := priceRe.FindAllStringSubmatch(payload, maxParsedFlights)

	flights := make([]trip.FlightOption, 0, len(matches))
	for i, m := range matches {
		price, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		departureHour := 8 + i*2
		flights = append(flights, trip.FlightOption{
			FlightNumber:  fmt.Sprintf("KW%d", 1000+i),
			Airline:       "Kiwi Airlines",
			Origin:        query.FlyFrom,
			Destination:   query.FlyTo,
			DepartureDate: query.DepartureDate,
			DepartureTime: fmt.Sprintf("%02d:00", departureHour),
			ArrivalDate:   query.DepartureDate,
			ArrivalTime:   fmt.Sprintf("%02d:00", departureHour+6),
			Duration:      "6h 0m",
			Stops:         0,
			Price:         price,
			Currency:      "USD",
			Source:        trip.SourceLive,
		})
	}
	return flights
}
