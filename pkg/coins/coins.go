// Package coins formats in-game coin amounts for display.
package coins

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	thousand = 1_000
	million  = 1_000_000
	billion  = 1_000_000_000
)

//nolint:gochecknoglobals
var printer = message.NewPrinter(language.English)

// Format abbreviates large amounts (1.5K, 2.50M, 3.00B) and prints smaller
// ones as whole coins with thousand separators. Ties round up: 2250 is 2.3K.
func Format(amount float64) string {
	switch {
	case amount >= billion:
		return fixed(amount/billion, 2) + "B"
	case amount >= million:
		return fixed(amount/million, 2) + "M"
	case amount >= thousand:
		return fixed(amount/thousand, 1) + "K"
	default:
		return printer.Sprintf("%d", int64(math.Round(amount)))
	}
}

func fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
