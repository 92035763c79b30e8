package trip

import (
	"fmt"
	"time"
)

// CelsiusToFahrenheit converts a temperature in °C to °F.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// MonthName returns the English name of a month number (1-12).
// Out-of-range values return an empty string.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
}

// FormatPrice renders a price with its currency symbol, falling back to the
// currency code when no symbol is known.
func FormatPrice(price float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency
	}
	return fmt.Sprintf("%s%.2f", symbol, price)
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatLongDate renders a time as "January 02, 2006".
func FormatLongDate(t time.Time) string {
	return t.Format("January 02, 2006")
}
