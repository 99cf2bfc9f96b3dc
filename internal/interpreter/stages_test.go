package interpreter

import (
	"errors"
	"testing"

	"fjacquet/chat-txn/internal/models"
	"fjacquet/chat-txn/internal/parsererror"
	"fjacquet/chat-txn/internal/taxonomy"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		text     string
		expected string
		noAmount bool
	}{
		{text: "lunch 350", expected: "350"},
		{text: "rent 12,000 this month", expected: "12000"},
		{text: "coffee 99.50", expected: "99.5"},
		{text: "2 for 500", expected: "2"},
		{text: "got 1,234,567.89", expected: "1234567.89"},
		{text: "paid 500tk", expected: "500"},
		{text: "no number here", noAmount: true},
		{text: "0 taka", noAmount: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			amount, err := extractAmount(tt.text)
			if tt.noAmount {
				assert.True(t, errors.Is(err, parsererror.ErrNoAmountFound))
				assert.True(t, amount.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(amount), "got %s", amount)
		})
	}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		verbs []string
		nouns []string
	}{
		{
			name:  "verb and nouns",
			text:  "i bought groceries and milk",
			verbs: []string{"bought"},
			nouns: []string{"groceries", "milk"},
		},
		{
			name:  "determiner turns verb into noun",
			text:  "paid for my work shoes",
			verbs: []string{"paid"},
			nouns: []string{"work", "shoes"},
		},
		{
			name:  "same word as verb and noun",
			text:  "watch the watch",
			verbs: []string{"watch"},
			nouns: []string{"watch"},
		},
		{
			name:  "duplicates collapse",
			text:  "tea tea and more tea",
			nouns: []string{"tea", "more"},
		},
		{
			name:  "contractions and function words",
			text:  "i'm at the gym today",
			nouns: []string{"gym"},
		},
		{
			name: "nothing",
			text: "500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := analyze(tt.text)
			assert.Equal(t, tt.verbs, lex.verbs)
			assert.Equal(t, tt.nouns, lex.nouns)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		txType     models.TransactionType
		confidence models.Confidence
		rules      []string
	}{
		{
			name:       "income verb beats expense shape",
			text:       "got 500 from uncle for 3 days",
			txType:     models.TypeIncome,
			confidence: models.ConfidenceHigh,
			rules:      []string{"income_verb", "expense_context"},
		},
		{
			name:       "income context noun",
			text:       "bonus 2000",
			txType:     models.TypeIncome,
			confidence: models.ConfidenceHigh,
			rules:      []string{"income_context"},
		},
		{
			name:       "work source",
			text:       "3000 from freelance",
			txType:     models.TypeIncome,
			confidence: models.ConfidenceHigh,
			rules:      []string{"work_source"},
		},
		{
			name:       "bill vocabulary",
			text:       "late fee 50",
			txType:     models.TypeExpense,
			confidence: models.ConfidenceHigh,
			rules:      []string{"bill"},
		},
		{
			name:       "shopping venue",
			text:       "market 200",
			txType:     models.TypeExpense,
			confidence: models.ConfidenceHigh,
			rules:      []string{"shopping_venue"},
		},
		{
			name:       "preposition words number",
			text:       "dinner at the corner 450",
			txType:     models.TypeExpense,
			confidence: models.ConfidenceHigh,
			rules:      []string{"expense_context"},
		},
		{
			name:       "default",
			text:       "lunch 120",
			txType:     models.TypeExpense,
			confidence: models.ConfidenceMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classify(tt.text, analyze(tt.text))
			assert.Equal(t, tt.txType, c.txType)
			assert.Equal(t, tt.confidence, c.confidence)
			assert.Equal(t, tt.rules, c.rules)
		})
	}
}

func TestClassify_VerbFallback(t *testing.T) {
	c := classify("", lexicon{verbs: []string{"received"}})
	assert.Equal(t, models.TypeIncome, c.txType)
	assert.Equal(t, models.ConfidenceMedium, c.confidence)
	assert.Equal(t, []string{"income_verb_fallback"}, c.rules)

	c = classify("", lexicon{verbs: []string{"purchased"}})
	assert.Equal(t, models.TypeExpense, c.txType)
	assert.Equal(t, models.ConfidenceMedium, c.confidence)
	assert.Equal(t, []string{"expense_verb_fallback"}, c.rules)
}

func TestScoreCategories_Weights(t *testing.T) {
	tax, err := taxonomy.New([]taxonomy.Category{
		{Name: "pets", Keywords: []string{"dog", "vet"}, Verbs: []string{"feed"}},
		{Name: "garden", Keywords: []string{"seed"}},
	})
	require.NoError(t, err)

	cleaned := "feed the dog at the vet 40"
	scores := scoreCategories(tax, cleaned, analyze(cleaned))

	// dog and vet: 2 each as substrings, 1 each as nouns; feed: 3 as a verb
	assert.Equal(t, []models.CategoryScore{
		{Category: "pets", Score: 9},
		{Category: "garden", Score: 0},
	}, scores)
}

func TestPickCategory(t *testing.T) {
	tests := []struct {
		name     string
		scores   []models.CategoryScore
		category string
		top      int
	}{
		{name: "all zero", scores: []models.CategoryScore{{Category: "a", Score: 0}, {Category: "b", Score: 0}}, category: models.CategoryOther},
		{name: "empty", category: models.CategoryOther},
		{name: "clear winner", scores: []models.CategoryScore{{Category: "a", Score: 2}, {Category: "b", Score: 5}}, category: "b", top: 5},
		{name: "tie keeps first", scores: []models.CategoryScore{{Category: "a", Score: 3}, {Category: "b", Score: 3}, {Category: "c", Score: 1}}, category: "a", top: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, top := pickCategory(tt.scores)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.top, top)
		})
	}
}

func TestApplyIncomeOverride(t *testing.T) {
	tests := []struct {
		cleaned  string
		generic  string
		maxScore int
		expected string
	}{
		{"monthly salary 5000", models.CategoryFood, 2, models.CategorySalary},
		{"gig money 300", models.CategoryEntertainment, 4, models.CategoryFreelance},
		{"stock dividend 90", models.CategoryOther, 0, models.CategoryInvestment},
		{"paycheck and project", models.CategoryFreelance, 6, models.CategorySalary},
		{"gift 100", models.CategoryOther, 0, models.CategoryOtherIncome},
		{"got coffee money 100", models.CategoryFood, 3, models.CategoryFood},
	}

	for _, tt := range tests {
		t.Run(tt.cleaned, func(t *testing.T) {
			assert.Equal(t, tt.expected, applyIncomeOverride(tt.cleaned, tt.generic, tt.maxScore))
		})
	}
}

func TestBuildDescription(t *testing.T) {
	tests := []struct {
		name     string
		original string
		txType   models.TransactionType
		category string
		expected string
	}{
		{"keeps case of the rest", "Bought Groceries at Shwapno 500", models.TypeExpense, "food", "Groceries at Shwapno"},
		{"strips currency and numbers", "lunch 250 taka", models.TypeExpense, "food", "Lunch"},
		{"leading punctuation", "paid - 300 - rent", models.TypeExpense, "bills", "Rent"},
		{"only one leading verb", "paid pay fee 10", models.TypeExpense, "bills", "Pay fee"},
		{"verb inside word kept", "Getaway trip 9000", models.TypeExpense, "transport", "Getaway trip"},
		{"income fallback", "got 100", models.TypeIncome, models.CategoryOtherIncome, "Income - other_income"},
		{"too short", "tk 5 ab", models.TypeExpense, models.CategoryOther, "Expense - other"},
		{"three runes is enough", "tea 20", models.TypeExpense, "food", "Tea"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildDescription(tt.original, tt.txType, tt.category))
		})
	}
}
