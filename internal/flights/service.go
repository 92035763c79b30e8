package flights

import (
	"context"
	"log/slog"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

// searcher is the interface satisfied by Client.
type searcher interface {
	Search(ctx context.Context, query trip.FlightQuery) (string, error)
}

// Service owns the fallback contract for the flight source: one attempt
// under a fixed timeout, synthetic data on any failure, never an error.
type Service struct {
	client  searcher
	useMock bool
	log     *slog.Logger
}

// NewService constructs a Service. When useMock is true the live source is
// never contacted.
func NewService(client searcher, useMock bool, log *slog.Logger) *Service {
	return &Service{client: client, useMock: useMock, log: log}
}

// SearchFlights runs one search and returns a full result set.
func (s *Service) SearchFlights(ctx context.Context, query trip.FlightQuery) *trip.FlightSearch {
	if s.useMock {
		return MockFlights(query)
	}

	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	payload, err := s.client.Search(callCtx, query)
	if err != nil {
		s.log.Warn("flight search failed, using mock data", "from", query.FlyFrom, "to", query.FlyTo, "err", err)
		return MockFlights(query)
	}

	result, err := Normalize(payload, query)
	if err != nil {
		s.log.Warn("flight payload unparseable, using mock data", "from", query.FlyFrom, "to", query.FlyTo, "err", err)
		return MockFlights(query)
	}
	return result
}

// BestFlights runs a search and truncates both legs to numResults.
func (s *Service) BestFlights(ctx context.Context, query trip.FlightQuery, numResults int) *trip.FlightSearch {
	result := s.SearchFlights(ctx, query)

	if len(result.OutboundFlights) > numResults {
		result.OutboundFlights = result.OutboundFlights[:numResults]
	}
	if len(result.ReturnFlights) > numResults {
		result.ReturnFlights = result.ReturnFlights[:numResults]
	}
	return result
}
