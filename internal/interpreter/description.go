package interpreter

import (
	"regexp"

	"fjacquet/chat-txn/internal/currencyutils"
	"fjacquet/chat-txn/internal/models"
	"fjacquet/chat-txn/internal/textutils"
)

// Only a whole leading word is removed: "Payment for rent" keeps "Payment".
var leadingVerb = regexp.MustCompile(`(?i)^\s*(bought|buy|purchased|purchase|paid|pay|spent|spend|earned|earn|received|receive|got|get)\b\s*`)

const minDescriptionLen = 3

// buildDescription derives the display label from the original message.
func buildDescription(original string, txType models.TransactionType, category string) string {
	desc := currencyutils.StripCurrency(original)
	desc = numeral.ReplaceAllString(desc, "")
	desc = leadingVerb.ReplaceAllString(desc, "")
	desc = textutils.CollapseWhitespace(desc)
	desc = textutils.TrimLeadingPunctuation(desc)

	if textutils.RuneLen(desc) < minDescriptionLen {
		return txType.Label() + " - " + category
	}
	return textutils.CapitalizeFirst(desc)
}
