package dashboard

import (
	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1000)
	// rawAmountThreshold is the magnitude above which the k-suffix is dropped
	// and the rounded integer is shown.
	rawAmountThreshold = decimal.New(1, 12)
)

// FormatCurrency renders an amount for a stat card:
//
//	 999.5  -> £999.5
//	1500    -> £1.5k
//	-2500   -> -£2.5k
//	 5e12   -> £5000000000000
//	-0.001  -> £0
//
// Decimal places are fixed (1 for thousands, at most 2 otherwise), so the
// output does not depend on locale.
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}

	// Thresholds apply to the value as displayed, so 999.999 reads £1.0k.
	abs := amount.Abs().Round(2)

	var shown decimal.Decimal
	var text string
	switch {
	case abs.GreaterThanOrEqual(rawAmountThreshold):
		shown = abs.Round(0)
		text = shown.String()
	case abs.GreaterThanOrEqual(thousand):
		shown = abs.Div(thousand).Round(1)
		text = shown.StringFixed(1) + "k"
	default:
		shown = abs
		text = shown.String()
	}

	if amount.IsNegative() && !shown.IsZero() {
		return "-" + symbol + text
	}
	return symbol + text
}
