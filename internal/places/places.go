// Package places generates synthetic places of interest and assembles them
// into day-wise itineraries. There is no live source for attractions, so
// everything here is schema-valid substitute data: fixed shape, randomized
// values, seasoned with a small table of real landmarks for well-known
// cities.
package places

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

// Categories is the fixed category vocabulary, in generation order.
var Categories = []string{"historical", "cultural", "natural", "entertainment", "religious"}

var subtypes = map[string][]string{
	"historical":    {"Monument", "Palace", "Fort", "Archaeological Site", "Heritage Site"},
	"cultural":      {"Museum", "Art Gallery", "Theater", "Cultural Center", "Temple"},
	"natural":       {"Park", "Garden", "Lake", "Beach", "Viewpoint"},
	"entertainment": {"Amusement Park", "Zoo", "Aquarium", "Shopping Mall", "Market"},
	"religious":     {"Temple", "Church", "Mosque", "Monastery", "Shrine"},
}

var activityVocabulary = []string{
	"Sightseeing", "Photography", "Walking Tour", "Food Tour",
	"Shopping", "Cultural Experience", "Adventure", "Relaxation",
}

var visitDurations = []string{"1-2 hours", "2-3 hours", "3-4 hours", "Half day", "Full day"}

var bestTimes = []string{"Morning", "Afternoon", "Evening", "Anytime"}

type landmark struct {
	name        string
	description string
}

// landmarkTable holds real landmarks for the destinations the generator
// knows about, keyed by lowercased city name then category.
var landmarkTable = map[string]map[string][]landmark{
	"paris": {
		"historical": {
			{"Eiffel Tower", "Iconic iron lattice tower and symbol of Paris"},
			{"Arc de Triomphe", "Monumental arch honoring French military victories"},
		},
		"cultural": {
			{"Louvre Museum", "World's largest art museum and historic monument"},
			{"Musée d'Orsay", "Museum featuring Impressionist and Post-Impressionist masterpieces"},
		},
	},
	"london": {
		"historical": {
			{"Tower of London", "Historic castle and UNESCO World Heritage Site"},
			{"Buckingham Palace", "Official residence of the British monarch"},
		},
		"cultural": {
			{"British Museum", "World-famous museum of human history and culture"},
		},
	},
	"tokyo": {
		"historical": {
			{"Senso-ji Temple", "Ancient Buddhist temple in Asakusa"},
			{"Imperial Palace", "Primary residence of the Emperor of Japan"},
		},
		"cultural": {
			{"Tokyo National Museum", "Japan's oldest and largest museum"},
		},
	},
	"new york": {
		"historical": {
			{"Statue of Liberty", "Iconic symbol of freedom and democracy"},
			{"Empire State Building", "Art Deco skyscraper and American cultural icon"},
		},
	},
}

// SearchPlaces generates up to limit places for a destination, spread
// evenly across the given categories (all five when nil), with a minimum of
// 2 per category, then shuffled.
func SearchPlaces(destination string, categories []string, limit int) []trip.PlaceOfInterest {
	if len(categories) == 0 {
		categories = Categories
	}

	perCategory := limit / len(categories)
	if perCategory < 2 {
		perCategory = 2
	}

	var pool []trip.PlaceOfInterest
	for _, category := range categories {
		pool = append(pool, generateForCategory(destination, category, perCategory)...)
	}

	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	if len(pool) > limit {
		pool = pool[:limit]
	}
	return pool
}

func generateForCategory(destination, category string, count int) []trip.PlaceOfInterest {
	kinds, ok := subtypes[category]
	if !ok {
		kinds = []string{"Attraction"}
	}
	known := landmarkTable[strings.ToLower(strings.TrimSpace(destination))][category]

	out := make([]trip.PlaceOfInterest, 0, count)
	for i := 0; i < count; i++ {
		var name, description string
		if i < len(known) {
			name = known[i].name
			description = known[i].description
		} else {
			subtype := kinds[rand.IntN(len(kinds))]
			name = fmt.Sprintf("%s %s %d", destination, subtype, i+1)
			description = fmt.Sprintf("A beautiful %s %s in %s.", category, strings.ToLower(subtype), destination)
		}

		out = append(out, trip.PlaceOfInterest{
			Name:          name,
			Category:      category,
			Type:          kinds[rand.IntN(len(kinds))],
			Rating:        randomRating(),
			ReviewCount:   100 + rand.IntN(4901),
			Description:   description,
			Address:       fmt.Sprintf("%d %s Road, %s", 1+rand.IntN(999), destination, destination),
			VisitDuration: visitDurations[rand.IntN(len(visitDurations))],
			EntryFee:      randomEntryFee(),
			BestTime:      bestTimes[rand.IntN(len(bestTimes))],
			Activities:    sampleActivities(),
		})
	}
	return out
}

// randomRating returns a rating in [3.8, 4.9] rounded to one decimal.
func randomRating() float64 {
	return math.Round((3.8+rand.Float64()*1.1)*10) / 10
}

// randomEntryFee is free with probability 0.3, otherwise a whole-dollar
// price in [5, 50].
func randomEntryFee() trip.EntryFee {
	if rand.Float64() < 0.3 {
		return trip.EntryFee{IsFree: true, Price: 0, Currency: "USD"}
	}
	return trip.EntryFee{IsFree: false, Price: float64(5 + rand.IntN(46)), Currency: "USD"}
}

// sampleActivities picks 2-4 distinct activities from the vocabulary.
func sampleActivities() []string {
	n := 2 + rand.IntN(3)
	idx := rand.Perm(len(activityVocabulary))
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, activityVocabulary[i])
	}
	return out
}

// TopAttractions returns the highest-rated places for a destination.
func TopAttractions(destination string, numResults int) []trip.PlaceOfInterest {
	pool := SearchPlaces(destination, nil, 20)

	sort.Slice(pool, func(i, j int) bool { return pool[i].Rating > pool[j].Rating })

	if len(pool) > numResults {
		pool = pool[:numResults]
	}
	return pool
}
