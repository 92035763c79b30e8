package trip_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	assert.Equal(t, 32.0, trip.CelsiusToFahrenheit(0))
	assert.Equal(t, 68.0, trip.CelsiusToFahrenheit(20))
	assert.InDelta(t, 76.1, trip.CelsiusToFahrenheit(24.5), 0.001)
	assert.Equal(t, 14.0, trip.CelsiusToFahrenheit(-10))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", trip.MonthName(1))
	assert.Equal(t, "June", trip.MonthName(6))
	assert.Equal(t, "December", trip.MonthName(12))
	assert.Empty(t, trip.MonthName(0))
	assert.Empty(t, trip.MonthName(13))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$350.00", trip.FormatPrice(350, "USD"))
	assert.Equal(t, "€99.50", trip.FormatPrice(99.5, "EUR"))
	assert.Equal(t, "CHF120.00", trip.FormatPrice(120, "CHF"))
}

func TestFormatDates(t *testing.T) {
	d := time.Date(2025, 6, 3, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2025-06-03", trip.FormatDate(d))
	assert.Equal(t, "June 03, 2025", trip.FormatLongDate(d))
}
