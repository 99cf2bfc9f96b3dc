package interpreter

import (
	"regexp"

	"fjacquet/chat-txn/internal/currencyutils"
	"fjacquet/chat-txn/internal/parsererror"

	"github.com/shopspring/decimal"
)

// numeral matches "350", "1,200" and "99.50". It is also used to blank out
// every numeral when building the description.
var numeral = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d{2})?`)

// extractAmount returns the first numeral of text, left to right. A message
// whose first numeral is zero has no usable amount.
func extractAmount(text string) (decimal.Decimal, error) {
	match := numeral.FindString(text)
	if match == "" {
		return decimal.Zero, parsererror.NewNoAmountFound()
	}
	amount, err := currencyutils.ParseGroupedAmount(match)
	if err != nil {
		return decimal.Zero, parsererror.NewInternalFailure(StageAmount, err)
	}
	if !currencyutils.IsPositive(amount) {
		return decimal.Zero, parsererror.NewNoAmountFound()
	}
	return amount, nil
}
