package invoice

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyGlyph prefixes every rendered amount.
const CurrencyGlyph = "₹"

var groupedPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with the currency glyph and exactly two
// decimals, without thousands grouping. Used in the per-item cards.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%s%.2f", CurrencyGlyph, v)
}

// FormatAmountGrouped renders an amount with locale thousands grouping.
// Used in the pricing breakdown block only; the per-item rows stay ungrouped.
// The two blocks intentionally format differently.
func FormatAmountGrouped(v float64) string {
	return CurrencyGlyph + groupedPrinter.Sprintf("%v",
		number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
