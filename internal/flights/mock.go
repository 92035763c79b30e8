package flights

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

const mockFlightCount = 5

var mockAirlines = []string{"Kiwi Airlines", "AirFly", "SkyConnect"}

// stopChoices biases synthetic flights toward non-stop.
var stopChoices = []int{0, 0, 1}

// MockFlights generates exactly 5 synthetic flights sorted ascending by
// price. When the query has a return date, the first 3 outbound flights are
// reused as the return leg — a quirk inherited from the upstream behavior,
// kept until the intended return-leg semantics are confirmed.
func MockFlights(query trip.FlightQuery) *trip.FlightSearch {
	result := &trip.FlightSearch{
		Source:       trip.SourceMock,
		SearchParams: query,
	}

	for i := 0; i < mockFlightCount; i++ {
		hour := 6 + i*3
		result.OutboundFlights = append(result.OutboundFlights, trip.FlightOption{
			FlightNumber:  fmt.Sprintf("KW%d", 1000+i),
			Airline:       mockAirlines[rand.IntN(len(mockAirlines))],
			Origin:        query.FlyFrom,
			Destination:   query.FlyTo,
			DepartureDate: query.DepartureDate,
			DepartureTime: fmt.Sprintf("%02d:00", hour),
			ArrivalDate:   query.DepartureDate,
			ArrivalTime:   fmt.Sprintf("%02d:00", hour+6),
			Duration:      "6h 0m",
			Stops:         stopChoices[rand.IntN(len(stopChoices))],
			Price:         float64(300 + rand.IntN(301) - 100), // uniform on [200, 500]
			Currency:      "USD",
			Source:        trip.SourceMock,
		})
	}

	sort.Slice(result.OutboundFlights, func(i, j int) bool {
		return result.OutboundFlights[i].Price < result.OutboundFlights[j].Price
	})

	if query.ReturnDate != "" {
		result.ReturnFlights = append(result.ReturnFlights, result.OutboundFlights[:3]...)
	}

	return result
}
