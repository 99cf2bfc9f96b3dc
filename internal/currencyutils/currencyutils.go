// Package currencyutils recognizes currency markers in free text and handles
// the decimal amounts used throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Tokens are matched case-insensitively against whole letter runs, so "500tk"
// loses its "tk" while "flowers" keeps its "rs".
var currencyWords = map[string]struct{}{
	"taka":    {},
	"takas":   {},
	"tk":      {},
	"bdt":     {},
	"dollar":  {},
	"dollars": {},
	"usd":     {},
	"euro":    {},
	"euros":   {},
	"eur":     {},
	"rupee":   {},
	"rupees":  {},
	"rs":      {},
	"inr":     {},
}

const currencySymbols = "$৳€₹"

var letterRunOrSymbol = regexp.MustCompile(`\p{L}+|[$৳€₹]`)

// IsCurrencyToken reports whether word is a recognized currency word or symbol.
func IsCurrencyToken(word string) bool {
	if word == "" {
		return false
	}
	if strings.ContainsAny(word, currencySymbols) && len([]rune(word)) == 1 {
		return true
	}
	_, ok := currencyWords[strings.ToLower(word)]
	return ok
}

// StripCurrency removes every currency word and symbol from text, leaving the
// rest (including case and spacing) untouched.
func StripCurrency(text string) string {
	return letterRunOrSymbol.ReplaceAllStringFunc(text, func(tok string) string {
		if IsCurrencyToken(tok) {
			return ""
		}
		return tok
	})
}

// ParseGroupedAmount converts a numeral such as "1,200" or "99.50" to a decimal.
// Grouping commas are dropped before conversion.
func ParseGroupedAmount(numeral string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(numeral), ",", "")
	if clean == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", numeral, err)
	}
	return amount, nil
}

// FormatAmount formats amount with two decimals and the currency symbol or code.
// Returns strings like "৳1234.50" or "CHF 1234.50".
func FormatAmount(amount decimal.Decimal, currency string) string {
	formattedAmount := amount.StringFixed(2)

	switch strings.ToUpper(currency) {
	case "":
		return formattedAmount
	case "BDT":
		return "৳" + formattedAmount
	case "USD":
		return "$" + formattedAmount
	case "EUR":
		return "€" + formattedAmount
	case "INR":
		return "₹" + formattedAmount
	default:
		return currency + " " + formattedAmount
	}
}

// IsPositive checks if an amount is strictly greater than zero
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}
