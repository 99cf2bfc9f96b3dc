package interpreter

import (
	"regexp"

	"fjacquet/chat-txn/internal/models"
)

// rule is one named pattern of an intent rule set.
type rule struct {
	name    string
	pattern *regexp.Regexp
}

// Income is checked first: its vocabulary is narrower, and the broad
// "preposition + words + number" expense shape would otherwise swallow
// messages such as "received 3000 from client".
var incomeRules = []rule{
	{"income_verb", regexp.MustCompile(`\b(earned|earn|received|receive|got|get|made|make|sold|sell)\b`)},
	{"income_context", regexp.MustCompile(`\b(salary|wage|paycheck|income|bonus|profit|revenue|commission|dividend|refund|cashback)\b`)},
	{"work_source", regexp.MustCompile(`\b(from\s+(work|job|client|company|freelance|project|gig))\b`)},
}

var expenseRules = []rule{
	{"expense_verb", regexp.MustCompile(`\b(bought|buy|purchased|purchase|paid|pay|spent|spend|cost|gave|give|ordered|order)\b`)},
	{"expense_context", regexp.MustCompile(`\b(for|at|from|in|to)\s+[\w\s]+\s+\d+`)},
	{"bill", regexp.MustCompile(`\b(bill|invoice|charge|fee|fine|penalty)\b`)},
	{"shopping_venue", regexp.MustCompile(`\b(shopping|store|mall|market|shop)\b`)},
}

var (
	incomeFallbackVerbs  = []string{"earned", "received", "got", "made", "sold"}
	expenseFallbackVerbs = []string{"bought", "paid", "spent", "purchased", "ordered"}
)

// classification is the outcome of the intent stage.
type classification struct {
	txType     models.TransactionType
	confidence models.Confidence
	patterns   models.DetectedPatterns
	rules      []string
}

// classify decides income or expense. Both rule sets are always evaluated
// so every rule that fired is reported, but the first set that matched decides.
func classify(cleaned string, lex lexicon) classification {
	var c classification
	c.patterns.Income = matchRules(incomeRules, cleaned, &c.rules)
	c.patterns.Expense = matchRules(expenseRules, cleaned, &c.rules)

	switch {
	case c.patterns.Income:
		c.txType, c.confidence = models.TypeIncome, models.ConfidenceHigh
	case c.patterns.Expense:
		c.txType, c.confidence = models.TypeExpense, models.ConfidenceHigh
	case lex.hasAnyVerb(incomeFallbackVerbs):
		c.txType, c.confidence = models.TypeIncome, models.ConfidenceMedium
		c.rules = append(c.rules, "income_verb_fallback")
	case lex.hasAnyVerb(expenseFallbackVerbs):
		c.txType, c.confidence = models.TypeExpense, models.ConfidenceMedium
		c.rules = append(c.rules, "expense_verb_fallback")
	default:
		c.txType, c.confidence = models.TypeExpense, models.ConfidenceMedium
	}
	return c
}

func matchRules(rules []rule, text string, fired *[]string) bool {
	matched := false
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			matched = true
			*fired = append(*fired, r.name)
		}
	}
	return matched
}

func (l lexicon) hasAnyVerb(verbs []string) bool {
	for _, v := range verbs {
		if l.hasVerb(v) {
			return true
		}
	}
	return false
}
