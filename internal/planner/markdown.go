package planner

import (
	"fmt"
	"strings"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

// topPerList caps flights and per-day places in the rendered document.
const topPerList = 3

// ExportMarkdown renders a plan as a downloadable markdown document.
func ExportMarkdown(plan *trip.TravelPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Travel Plan: %s\n\n", plan.Destination)
	fmt.Fprintf(&b, "**Duration:** %s in %s\n", plan.Duration, plan.TravelMonth)
	fmt.Fprintf(&b, "**Origin:** %s\n\n", plan.Origin)

	b.WriteString("**Data Sources:**\n")
	for _, service := range []string{"weather", "flights", "places"} {
		if desc, ok := plan.SourcesUsed[service]; ok {
			fmt.Fprintf(&b, "- %s: %s\n", capitalize(service), desc)
		}
	}
	b.WriteString("\n")

	b.WriteString("## Cultural & Historical Significance\n")
	b.WriteString(plan.CulturalContext)
	b.WriteString("\n\n")

	writeWeather(&b, plan.Weather)
	writeDates(&b, plan.SuggestedDates)
	writeFlights(&b, plan.Flights)
	writeItinerary(&b, plan.Itinerary)

	return b.String()
}

func writeWeather(b *strings.Builder, w trip.WeatherInfo) {
	b.WriteString("## Weather Information\n")
	fmt.Fprintf(b, "**Current Weather** (%s):\n", w.Current.Source)
	fmt.Fprintf(b, "- Temperature: %.1f°C (%.1f°F)\n", w.Current.TemperatureCelsius, w.Current.TemperatureFahrenheit)
	fmt.Fprintf(b, "- Conditions: %s\n", capitalize(w.Current.Description))
	fmt.Fprintf(b, "- Humidity: %d%%\n\n", w.Current.Humidity)

	b.WriteString("**Forecast:**\n")
	for _, day := range w.Forecast {
		fmt.Fprintf(b, "- %s: %s, %.1f°C\n", day.Date, capitalize(day.Description), day.TemperatureCelsius)
	}
	b.WriteString("\n")
}

func writeDates(b *strings.Builder, dates []trip.DateSuggestion) {
	b.WriteString("## Suggested Travel Dates\n")
	for _, d := range dates {
		fmt.Fprintf(b, "**%s:** %s to %s\n", d.Period, d.StartDate, d.EndDate)
	}
	b.WriteString("\n")
}

func writeFlights(b *strings.Builder, f *trip.FlightSearch) {
	if f == nil || len(f.OutboundFlights) == 0 {
		return
	}

	b.WriteString("## Flight Options\n")
	fmt.Fprintf(b, "**Source:** %s\n\n", f.Source)
	b.WriteString("**Outbound Flights:**\n")

	flights := f.OutboundFlights
	if len(flights) > topPerList {
		flights = flights[:topPerList]
	}
	for i, flight := range flights {
		fmt.Fprintf(b, "\n**Option %d:** %s - %s\n", i+1, flight.Airline, flight.FlightNumber)
		fmt.Fprintf(b, "  - Departure: %s at %s\n", flight.DepartureDate, flight.DepartureTime)
		fmt.Fprintf(b, "  - Arrival: %s at %s\n", flight.ArrivalDate, flight.ArrivalTime)
		fmt.Fprintf(b, "  - Duration: %s (%d stop(s))\n", flight.Duration, flight.Stops)
		fmt.Fprintf(b, "  - Price: %s\n", trip.FormatPrice(flight.Price, flight.Currency))
		if flight.BookingLink != "" {
			fmt.Fprintf(b, "  - Book: %s\n", flight.BookingLink)
		}
	}
	b.WriteString("\n")
}

func writeItinerary(b *strings.Builder, itinerary []trip.DayPlan) {
	if len(itinerary) == 0 {
		return
	}

	b.WriteString("## Day-wise Itinerary\n")
	for _, day := range itinerary {
		fmt.Fprintf(b, "\n### Day %d: %s\n", day.Day, day.Theme)

		dayPlaces := day.Places
		if len(dayPlaces) > topPerList {
			dayPlaces = dayPlaces[:topPerList]
		}
		for _, place := range dayPlaces {
			fmt.Fprintf(b, "\n**%s** (%s)\n", place.Name, place.Type)
			fmt.Fprintf(b, "  - %s\n", place.Description)
			fmt.Fprintf(b, "  - Rating: %.1f/5.0\n", place.Rating)
			fmt.Fprintf(b, "  - Duration: %s\n", place.VisitDuration)
			fee := "Free"
			if !place.EntryFee.IsFree {
				fee = trip.FormatPrice(place.EntryFee.Price, place.EntryFee.Currency)
			}
			fmt.Fprintf(b, "  - Entry: %s\n", fee)
		}
		b.WriteString("\n")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
