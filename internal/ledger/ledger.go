// Package ledger keeps running balance, income and expense totals for
// interpreted transactions. Deleting an entry applies the exact inverse of
// adding it.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"fjacquet/chat-txn/internal/logging"
	"fjacquet/chat-txn/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("transaction amount must be positive")
	ErrUnknownType   = errors.New("unknown transaction type")
	ErrEntryNotFound = errors.New("ledger entry not found")
)

// Totals is the running state of a ledger.
type Totals struct {
	Balance      decimal.Decimal `json:"balance" yaml:"balance"`
	TotalIncome  decimal.Decimal `json:"total_income" yaml:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense" yaml:"total_expense"`
}

// Apply returns t with tx added.
func (t Totals) Apply(tx models.ParsedTransaction) (Totals, error) {
	if err := validate(tx); err != nil {
		return t, err
	}
	if tx.IsIncome() {
		t.Balance = t.Balance.Add(tx.Amount)
		t.TotalIncome = t.TotalIncome.Add(tx.Amount)
	} else {
		t.Balance = t.Balance.Sub(tx.Amount)
		t.TotalExpense = t.TotalExpense.Add(tx.Amount)
	}
	return t, nil
}

// Revert returns t with the effect of tx removed. Revert(Apply(t, tx), tx) == t.
func (t Totals) Revert(tx models.ParsedTransaction) (Totals, error) {
	if err := validate(tx); err != nil {
		return t, err
	}
	if tx.IsIncome() {
		t.Balance = t.Balance.Sub(tx.Amount)
		t.TotalIncome = t.TotalIncome.Sub(tx.Amount)
	} else {
		t.Balance = t.Balance.Add(tx.Amount)
		t.TotalExpense = t.TotalExpense.Sub(tx.Amount)
	}
	return t, nil
}

// Equal compares totals by value, ignoring decimal exponent differences.
func (t Totals) Equal(o Totals) bool {
	return t.Balance.Equal(o.Balance) &&
		t.TotalIncome.Equal(o.TotalIncome) &&
		t.TotalExpense.Equal(o.TotalExpense)
}

func validate(tx models.ParsedTransaction) error {
	if !tx.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, tx.Type)
	}
	if !tx.Amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, tx.Amount)
	}
	return nil
}

// Entry is a transaction recorded in the ledger.
type Entry struct {
	ID          string                   `json:"id" yaml:"id"`
	Transaction models.ParsedTransaction `json:"transaction" yaml:"transaction"`
	CreatedAt   time.Time                `json:"created_at" yaml:"created_at"`
	seq         uint64
}

// Filter narrows List results. Zero fields match everything.
type Filter struct {
	Type     models.TransactionType
	Category string
	Limit    int
}

// Ledger is an in-memory transaction ledger, safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	entries map[string]Entry
	totals  Totals
	seq     uint64
	logger  logging.Logger
	now     func() time.Time
}

// New creates an empty ledger.
func New(logger logging.Logger) *Ledger {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Ledger{
		entries: make(map[string]Entry),
		logger:  logger,
		now:     time.Now,
	}
}

// Add records tx and returns its entry ID. Totals are left untouched when
// tx is rejected.
func (l *Ledger) Add(tx models.ParsedTransaction) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, err := l.totals.Apply(tx)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	l.seq++
	l.entries[id] = Entry{ID: id, Transaction: tx, CreatedAt: l.now(), seq: l.seq}
	l.totals = next

	l.logger.Debug("Transaction added to ledger",
		logging.F(logging.FieldEntryID, id),
		logging.F(logging.FieldType, string(tx.Type)),
		logging.F(logging.FieldAmount, tx.Amount.String()))
	return id, nil
}

// Delete removes the entry and reverts its effect on the totals.
func (l *Ledger) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	next, err := l.totals.Revert(entry.Transaction)
	if err != nil {
		return err
	}
	delete(l.entries, id)
	l.totals = next

	l.logger.Debug("Transaction removed from ledger", logging.F(logging.FieldEntryID, id))
	return nil
}

// Get returns the entry with the given ID.
func (l *Ledger) Get(id string) (Entry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entry, ok := l.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return entry, nil
}

// List returns matching entries, newest transaction date first. Entries on
// the same date keep reverse insertion order.
func (l *Ledger) List(f Filter) []Entry {
	l.mu.RLock()
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if f.Type != "" && e.Transaction.Type != f.Type {
			continue
		}
		if f.Category != "" && e.Transaction.Category != f.Category {
			continue
		}
		out = append(out, e)
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].Transaction.Date, out[j].Transaction.Date
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return out[i].seq > out[j].seq
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// Recent returns the n most recent entries.
func (l *Ledger) Recent(n int) []Entry {
	return l.List(Filter{Limit: n})
}

// Totals returns the current totals.
func (l *Ledger) Totals() Totals {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totals
}

// Len returns the number of recorded entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
