// Package interpreter turns one free-text message such as
// "I bought groceries for 500 taka" into a ParsedTransaction.
//
// Interpretation runs in stages over lexical artifacts computed once per call:
// amount extraction, intent classification, category scoring and description
// building. An Interpreter holds no per-call state and is safe for concurrent use.
package interpreter

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"fjacquet/chat-txn/internal/currencyutils"
	"fjacquet/chat-txn/internal/dateutils"
	"fjacquet/chat-txn/internal/logging"
	"fjacquet/chat-txn/internal/models"
	"fjacquet/chat-txn/internal/parsererror"
	"fjacquet/chat-txn/internal/taxonomy"
)

// Stage names reported in logs and in InternalFailure errors.
const (
	StageAmount     = "amount"
	StageLexicon    = "lexicon"
	StageClassify   = "classify"
	StageCategorize = "categorize"
	StageDescribe   = "describe"
)

// Interpreter converts transaction messages using a fixed taxonomy.
type Interpreter struct {
	tax         *taxonomy.Taxonomy
	logger      logging.Logger
	diagnostics bool
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithDiagnostics controls whether results carry a Diagnostics record.
func WithDiagnostics(enabled bool) Option {
	return func(in *Interpreter) {
		in.diagnostics = enabled
	}
}

// New creates an Interpreter. A nil taxonomy selects the built-in one; a nil
// logger logs to stderr at info level. Diagnostics are on unless disabled.
func New(tax *taxonomy.Taxonomy, logger logging.Logger, opts ...Option) *Interpreter {
	if tax == nil {
		tax = taxonomy.Default()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	in := &Interpreter{
		tax:         tax,
		logger:      logger,
		diagnostics: true,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Taxonomy returns the taxonomy used for scoring.
func (in *Interpreter) Taxonomy() *taxonomy.Taxonomy {
	return in.tax
}

// Interpret parses text into a transaction dated on the calendar day of now.
//
// The only errors returned are *parsererror.InterpretError values: NoAmountFound
// when text has no usable number, InternalFailure for any fault raised while
// a stage runs. On error the returned transaction is the zero value.
func (in *Interpreter) Interpret(text string, now time.Time) (tx models.ParsedTransaction, err error) {
	stage := StageAmount
	log := in.logger.WithField(logging.FieldMessage, text)

	defer func() {
		if r := recover(); r != nil {
			tx = models.ParsedTransaction{}
			err = parsererror.NewInternalFailure(stage, fmt.Errorf("%v", r))
			log.WithError(err).Error("Failed to interpret message",
				logging.F(logging.FieldStage, stage))
		}
	}()

	amount, err := extractAmount(text)
	if err != nil {
		log.Debug("No amount found in message", logging.F(logging.FieldStage, stage))
		return models.ParsedTransaction{}, err
	}
	log.Debug("Amount extracted", logging.F(logging.FieldAmount, amount.String()))

	stage = StageLexicon
	cleaned := strings.ToLower(currencyutils.StripCurrency(text))
	lex := analyze(cleaned)

	stage = StageClassify
	intent := classify(cleaned, lex)
	log.Debug("Message classified",
		logging.F(logging.FieldType, string(intent.txType)),
		logging.F(logging.FieldConfidence, string(intent.confidence)),
		logging.F(logging.FieldRule, strings.Join(intent.rules, ",")))

	stage = StageCategorize
	scores := scoreCategories(in.tax, cleaned, lex)
	category, maxScore := pickCategory(scores)
	if intent.txType == models.TypeIncome {
		category = applyIncomeOverride(cleaned, category, maxScore)
	}
	confidence := intent.confidence
	if maxScore > strongScore {
		confidence = models.ConfidenceHigh
	}
	log.Debug("Message categorized",
		logging.F(logging.FieldCategory, category),
		logging.F(logging.FieldScore, maxScore))

	stage = StageDescribe
	description := buildDescription(text, intent.txType, category)

	tx = models.ParsedTransaction{
		Type:        intent.txType,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        dateutils.StartOfDay(now),
		Confidence:  confidence,
	}
	if in.diagnostics {
		tx.Diagnostics = &models.Diagnostics{
			Verbs:            nonNil(lex.verbs),
			Nouns:            nonNil(firstN(lex.nouns, maxDiagnosticNouns)),
			DetectedPatterns: intent.patterns,
			Rules:            nonNil(intent.rules),
			Scores:           scores,
		}
	}
	return tx, nil
}

const maxDiagnosticNouns = 3

func firstN(words []string, n int) []string {
	if len(words) > n {
		return words[:n:n]
	}
	return words
}

func nonNil(words []string) []string {
	if words == nil {
		return []string{}
	}
	return words
}

var (
	defaultOnce        sync.Once
	defaultInterpreter *Interpreter
)

// Interpret parses text with the built-in taxonomy.
func Interpret(text string, now time.Time) (models.ParsedTransaction, error) {
	defaultOnce.Do(func() {
		defaultInterpreter = New(taxonomy.Default(), nil)
	})
	return defaultInterpreter.Interpret(text, now)
}
