package interpreter

import (
	"strings"

	"fjacquet/chat-txn/internal/models"
	"fjacquet/chat-txn/internal/taxonomy"
)

// Signal weights
const (
	keywordWeight = 2
	verbWeight    = 3
	nounWeight    = 1
)

// A generic score above this raises confidence to high.
const strongScore = 3

// The income overrides, checked in order against the cleaned text.
var incomeOverrides = []struct {
	category string
	markers  []string
}{
	{models.CategorySalary, []string{"salary", "wage", "paycheck"}},
	{models.CategoryFreelance, []string{"freelance", "project", "gig"}},
	{models.CategoryInvestment, []string{"investment", "dividend", "stock"}},
}

// scoreCategories folds the taxonomy into one score per category, in
// declaration order.
func scoreCategories(tax *taxonomy.Taxonomy, cleaned string, lex lexicon) []models.CategoryScore {
	scores := make([]models.CategoryScore, 0, tax.Len())
	tax.Range(func(c taxonomy.Category) bool {
		scores = append(scores, models.CategoryScore{
			Category: c.Name,
			Score:    scoreCategory(c, cleaned, lex),
		})
		return true
	})
	return scores
}

func scoreCategory(c taxonomy.Category, cleaned string, lex lexicon) int {
	score := 0
	for _, kw := range c.Keywords {
		if strings.Contains(cleaned, kw) {
			score += keywordWeight
		}
	}
	for _, noun := range lex.nouns {
		if contains(c.Keywords, noun) {
			score += nounWeight
		}
	}
	for _, verb := range c.Verbs {
		if lex.hasVerb(verb) {
			score += verbWeight
		}
	}
	return score
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}

// pickCategory returns the highest scoring category. A later category must
// strictly beat the current leader, so ties go to the earlier one. When
// nothing scored the result is "other".
func pickCategory(scores []models.CategoryScore) (string, int) {
	best, top := models.CategoryOther, 0
	for _, s := range scores {
		if s.Score > top {
			best, top = s.Category, s.Score
		}
	}
	return best, top
}

// applyIncomeOverride replaces the generic winner for income messages.
func applyIncomeOverride(cleaned, generic string, maxScore int) string {
	for _, o := range incomeOverrides {
		for _, m := range o.markers {
			if strings.Contains(cleaned, m) {
				return o.category
			}
		}
	}
	if maxScore == 0 {
		return models.CategoryOtherIncome
	}
	return generic
}
