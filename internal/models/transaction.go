// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tells whether money came in or went out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the two known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Label returns the capitalized display name ("Income" or "Expense").
func (t TransactionType) Label() string {
	if t == TypeIncome {
		return "Income"
	}
	return "Expense"
}

// Confidence is an advisory classification-certainty tag. It is not a probability.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ParsedTransaction is the structured record produced from one free-text message.
type ParsedTransaction struct {
	Type        TransactionType `json:"type" yaml:"type"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    string          `json:"category" yaml:"category"`
	Description string          `json:"description" yaml:"description"`
	Date        time.Time       `json:"date" yaml:"date"`
	Confidence  Confidence      `json:"confidence" yaml:"confidence"`
	Diagnostics *Diagnostics    `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// IsIncome returns true if the transaction adds money to the balance
func (t ParsedTransaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense returns true if the transaction removes money from the balance
func (t ParsedTransaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// DateString returns the transaction date as YYYY-MM-DD.
func (t ParsedTransaction) DateString() string {
	return t.Date.Format("2006-01-02")
}

// Diagnostics records what the interpreter saw. It is advisory only and never
// needed to use the transaction.
type Diagnostics struct {
	Verbs            []string         `json:"verbs" yaml:"verbs"`
	Nouns            []string         `json:"nouns" yaml:"nouns"`
	DetectedPatterns DetectedPatterns `json:"detected_patterns" yaml:"detected_patterns"`
	Rules            []string         `json:"rules" yaml:"rules"`
	Scores           []CategoryScore  `json:"scores,omitempty" yaml:"scores,omitempty"`
}

// DetectedPatterns tells which pattern sets matched the message. Both sets are
// evaluated even though only the first matching one decides the type.
type DetectedPatterns struct {
	Income  bool `json:"income" yaml:"income"`
	Expense bool `json:"expense" yaml:"expense"`
}

// CategoryScore is the accumulated score of one category for one message.
type CategoryScore struct {
	Category string `json:"category" yaml:"category"`
	Score    int    `json:"score" yaml:"score"`
}
