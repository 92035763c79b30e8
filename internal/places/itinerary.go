package places

import "github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"

const (
	firstDayTheme = "Arrival & City Orientation"
	lastDayTheme  = "Final Day Highlights"
)

// interiorThemes cycle through the days between arrival and departure.
var interiorThemes = []string{
	"Historical Exploration",
	"Cultural Immersion",
	"Natural Beauty",
	"Local Experiences",
	"Adventure & Entertainment",
	"Relaxation & Leisure",
	"Shopping & Cuisine",
}

// maxDayActivities caps the suggested activities per day.
const maxDayActivities = 4

// Builder assembles itineraries from the synthetic place pool. It exists as
// a type (rather than free functions) so the planner can take it behind an
// interface.
type Builder struct{}

// NewBuilder constructs a Builder.
func NewBuilder() *Builder { return &Builder{} }

// BuildItinerary partitions a pool of roughly 4 places per day into numDays
// contiguous chunks, labeling each day with a theme. Trailing remainder
// places are dropped rather than redistributed.
func (b *Builder) BuildItinerary(destination string, numDays int) []trip.DayPlan {
	pool := SearchPlaces(destination, nil, numDays*4)

	perDay := len(pool) / numDays
	if perDay < 2 {
		perDay = 2
	}

	itinerary := make([]trip.DayPlan, 0, numDays)
	for day := 0; day < numDays; day++ {
		start := day * perDay
		if start > len(pool) {
			start = len(pool)
		}
		end := start + perDay
		if end > len(pool) {
			end = len(pool)
		}
		dayPlaces := pool[start:end]

		itinerary = append(itinerary, trip.DayPlan{
			Day:        day + 1,
			Theme:      dayTheme(day, numDays),
			Places:     dayPlaces,
			Activities: suggestActivities(dayPlaces),
		})
	}
	return itinerary
}

// dayTheme labels a 0-based day. The first-day rule wins over the last-day
// rule when the trip is a single day.
func dayTheme(day, totalDays int) string {
	switch {
	case day == 0:
		return firstDayTheme
	case day == totalDays-1:
		return lastDayTheme
	default:
		return interiorThemes[day%len(interiorThemes)]
	}
}

// suggestActivities unions the activity sets of a day's places in insertion
// order (for determinism) and caps the result.
func suggestActivities(dayPlaces []trip.PlaceOfInterest) []string {
	seen := make(map[string]bool)
	var out []string
	for _, place := range dayPlaces {
		for _, activity := range place.Activities {
			if seen[activity] {
				continue
			}
			seen[activity] = true
			out = append(out, activity)
			if len(out) == maxDayActivities {
				return out
			}
		}
	}
	return out
}
