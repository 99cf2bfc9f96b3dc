package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var categoryEmojis = map[string]string{
	CategoryFood:          "🍔",
	CategoryTransport:     "🚗",
	CategoryEntertainment: "🎬",
	CategoryShopping:      "🛍️",
	CategoryBills:         "📄",
	CategoryHealth:        "🏥",
	CategoryEducation:     "📚",
	CategorySalary:        "💼",
	CategoryFreelance:     "💻",
	CategoryInvestment:    "📈",
	CategoryOther:         "📦",
	CategoryOtherIncome:   "💰",
}

// CategoryEmoji returns the emoji shown next to a category. Unknown categories
// get the emoji of CategoryOther.
func CategoryEmoji(category string) string {
	if emoji, ok := categoryEmojis[category]; ok {
		return emoji
	}
	return categoryEmojis[CategoryOther]
}

// FormatConfirmation renders the chat reply confirming that a transaction was recorded.
func FormatConfirmation(tx ParsedTransaction, currency string) string {
	emoji := "💸"
	if tx.IsIncome() {
		emoji = "💰"
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s Added!\n", emoji, tx.Type.Label())
	fmt.Fprintf(&sb, "💵 Amount: %s %s\n", tx.Amount.String(), currency)
	fmt.Fprintf(&sb, "📝 %s\n", tx.Description)
	fmt.Fprintf(&sb, "🏷️ Category: %s", tx.Category)
	return sb.String()
}

// FormatConfirmationWithBalance is FormatConfirmation followed by the balance
// after the transaction was recorded and the category badge.
func FormatConfirmationWithBalance(tx ParsedTransaction, balance decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return fmt.Sprintf("%s\n\n💳 New Balance: %s %s\n%s %s",
		FormatConfirmation(tx, currency), balance.String(), currency,
		CategoryEmoji(tx.Category), tx.Category)
}

// ExampleMessages are the phrasings suggested to a user whose message could not be parsed.
var ExampleMessages = struct {
	Expense []string
	Income  []string
}{
	Expense: []string{
		"I bought groceries for 500 taka",
		"Paid the rent 15000 today",
		"Spent 200 on transportation",
	},
	Income: []string{
		"Received my salary 45000",
		"Got freelance payment 3000",
		"Earned from tutoring 2000",
	},
}

const helpClosing = "\nJust describe it naturally - I'll figure out the details! 😊"

// FormatHelp renders a failure message followed by example phrasings.
func FormatHelp(message string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "❌ %s\n\n💡 Try these natural language examples:\n\n💸 For Expenses:\n", message)
	for _, ex := range ExampleMessages.Expense {
		fmt.Fprintf(&sb, "• %q\n", ex)
	}
	sb.WriteString("\n💰 For Income:\n")
	for _, ex := range ExampleMessages.Income {
		fmt.Fprintf(&sb, "• %q\n", ex)
	}
	sb.WriteString(helpClosing)
	return sb.String()
}
