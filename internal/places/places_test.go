package places_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/places"
)

func TestSearchPlaces_CoversAllCategories(t *testing.T) {
	pool := places.SearchPlaces("Paris", nil, 20)
	require.Len(t, pool, 20)

	counts := map[string]int{}
	for _, p := range pool {
		counts[p.Category]++
	}
	for _, category := range places.Categories {
		assert.Positive(t, counts[category], "category %s missing from pool", category)
	}
}

func TestSearchPlaces_MinimumTwoPerCategory(t *testing.T) {
	// limit 3 over 5 categories still yields 2 per category before capping.
	pool := places.SearchPlaces("Paris", []string{"natural"}, 1)
	assert.Len(t, pool, 1, "result is capped at limit after generation")
}

func TestSearchPlaces_KnownLandmarks(t *testing.T) {
	pool := places.SearchPlaces("Paris", []string{"historical"}, 10)

	names := make([]string, 0, len(pool))
	for _, p := range pool {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Eiffel Tower")
	assert.Contains(t, names, "Arc de Triomphe")
}

func TestSearchPlaces_CaseInsensitiveDestination(t *testing.T) {
	pool := places.SearchPlaces("  paris ", []string{"historical"}, 10)

	names := make([]string, 0, len(pool))
	for _, p := range pool {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Eiffel Tower")
}

func TestSearchPlaces_UnknownDestinationSynthesizesNames(t *testing.T) {
	pool := places.SearchPlaces("Ulanbaatar", []string{"natural"}, 4)
	require.NotEmpty(t, pool)
	for _, p := range pool {
		assert.Contains(t, p.Name, "Ulanbaatar")
		assert.Equal(t, "natural", p.Category)
	}
}

func TestSearchPlaces_FieldRanges(t *testing.T) {
	pool := places.SearchPlaces("Lisbon", nil, 100)

	for _, p := range pool {
		assert.GreaterOrEqual(t, p.Rating, 3.8, "%s rating out of range", p.Name)
		assert.LessOrEqual(t, p.Rating, 4.9, "%s rating out of range", p.Name)
		assert.GreaterOrEqual(t, p.ReviewCount, 100)
		assert.LessOrEqual(t, p.ReviewCount, 5000)
		assert.GreaterOrEqual(t, len(p.Activities), 2)
		assert.LessOrEqual(t, len(p.Activities), 4)
		if p.EntryFee.IsFree {
			assert.Zero(t, p.EntryFee.Price)
		} else {
			assert.GreaterOrEqual(t, p.EntryFee.Price, 5.0)
			assert.LessOrEqual(t, p.EntryFee.Price, 50.0)
		}
		assert.Equal(t, "USD", p.EntryFee.Currency)
	}
}

func TestSearchPlaces_ActivitiesAreDistinct(t *testing.T) {
	pool := places.SearchPlaces("Lisbon", nil, 50)
	for _, p := range pool {
		seen := map[string]bool{}
		for _, a := range p.Activities {
			assert.False(t, seen[a], "%s has duplicate activity %s", p.Name, a)
			seen[a] = true
		}
	}
}

func TestEntryFee_FreeFractionConvergesToThirty(t *testing.T) {
	// Statistical property: p(free) = 0.3. With 10,000 samples the observed
	// fraction should be well within ±0.03.
	pool := places.SearchPlaces("Lisbon", []string{"historical"}, 10000)
	require.Len(t, pool, 10000)

	free := 0
	for _, p := range pool {
		if p.EntryFee.IsFree {
			free++
		}
	}
	fraction := float64(free) / float64(len(pool))
	assert.InDelta(t, 0.3, fraction, 0.03)
}

func TestTopAttractions_SortedByRating(t *testing.T) {
	top := places.TopAttractions("Paris", 10)
	require.Len(t, top, 10)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Rating, top[i].Rating)
	}
}
