package ledger

import (
	"errors"
	"sync"
	"testing"
	"time"

	"fjacquet/chat-txn/internal/logging"
	"fjacquet/chat-txn/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(txType models.TransactionType, amount, category string, day int) models.ParsedTransaction {
	return models.ParsedTransaction{
		Type:        txType,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: "test",
		Date:        time.Date(2024, time.May, day, 0, 0, 0, 0, time.UTC),
		Confidence:  models.ConfidenceHigh,
	}
}

func TestTotals_ApplyRevert(t *testing.T) {
	start := Totals{
		Balance:      decimal.RequireFromString("100.25"),
		TotalIncome:  decimal.RequireFromString("300"),
		TotalExpense: decimal.RequireFromString("199.75"),
	}

	tests := []struct {
		name     string
		tx       models.ParsedTransaction
		expected Totals
	}{
		{
			name: "income",
			tx:   tx(models.TypeIncome, "50.50", models.CategorySalary, 1),
			expected: Totals{
				Balance:      decimal.RequireFromString("150.75"),
				TotalIncome:  decimal.RequireFromString("350.50"),
				TotalExpense: decimal.RequireFromString("199.75"),
			},
		},
		{
			name: "expense",
			tx:   tx(models.TypeExpense, "0.25", models.CategoryFood, 1),
			expected: Totals{
				Balance:      decimal.RequireFromString("100"),
				TotalIncome:  decimal.RequireFromString("300"),
				TotalExpense: decimal.RequireFromString("200"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applied, err := start.Apply(tt.tx)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(applied), "got %+v", applied)

			reverted, err := applied.Revert(tt.tx)
			require.NoError(t, err)
			assert.True(t, start.Equal(reverted), "got %+v", reverted)
		})
	}
}

func TestTotals_RejectsInvalid(t *testing.T) {
	var zero Totals

	_, err := zero.Apply(tx(models.TypeExpense, "0", models.CategoryOther, 1))
	assert.True(t, errors.Is(err, ErrInvalidAmount))

	_, err = zero.Apply(tx(models.TypeExpense, "-5", models.CategoryOther, 1))
	assert.True(t, errors.Is(err, ErrInvalidAmount))

	_, err = zero.Revert(tx("transfer", "5", models.CategoryOther, 1))
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestLedger_AddDeleteRestoresTotals(t *testing.T) {
	l := New(logging.NewMockLogger())
	_, err := l.Add(tx(models.TypeIncome, "5000", models.CategorySalary, 1))
	require.NoError(t, err)
	_, err = l.Add(tx(models.TypeExpense, "1200", models.CategoryBills, 2))
	require.NoError(t, err)
	before := l.Totals()

	for _, item := range []models.ParsedTransaction{
		tx(models.TypeIncome, "3000", models.CategoryFreelance, 3),
		tx(models.TypeExpense, "99.99", models.CategoryFood, 3),
	} {
		id, err := l.Add(item)
		require.NoError(t, err)
		assert.False(t, before.Equal(l.Totals()))

		require.NoError(t, l.Delete(id))
		assert.True(t, before.Equal(l.Totals()), "got %+v", l.Totals())
	}
	assert.Equal(t, 2, l.Len())
}

func TestLedger_TotalsAccumulate(t *testing.T) {
	l := New(logging.NewMockLogger())
	for _, item := range []models.ParsedTransaction{
		tx(models.TypeIncome, "1000", models.CategorySalary, 1),
		tx(models.TypeExpense, "250.50", models.CategoryFood, 2),
		tx(models.TypeExpense, "49.50", models.CategoryTransport, 2),
	} {
		_, err := l.Add(item)
		require.NoError(t, err)
	}

	totals := l.Totals()
	assert.True(t, decimal.NewFromInt(700).Equal(totals.Balance), totals.Balance.String())
	assert.True(t, decimal.NewFromInt(1000).Equal(totals.TotalIncome))
	assert.True(t, decimal.NewFromInt(300).Equal(totals.TotalExpense))
}

func TestLedger_RejectedAddLeavesStateAlone(t *testing.T) {
	mock := logging.NewMockLogger()
	l := New(mock)

	id, err := l.Add(tx(models.TypeExpense, "0", models.CategoryOther, 1))
	assert.True(t, errors.Is(err, ErrInvalidAmount))
	assert.Empty(t, id)
	assert.Equal(t, 0, l.Len())
	assert.True(t, Totals{}.Equal(l.Totals()))
	assert.Empty(t, mock.GetEntries())
}

func TestLedger_GetAndDeleteUnknown(t *testing.T) {
	l := New(logging.NewMockLogger())
	item := tx(models.TypeExpense, "10", models.CategoryFood, 1)

	id, err := l.Add(item)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	entry, err := l.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, item, entry.Transaction)
	assert.False(t, entry.CreatedAt.IsZero())

	require.NoError(t, l.Delete(id))
	assert.True(t, errors.Is(l.Delete(id), ErrEntryNotFound))
	_, err = l.Get(id)
	assert.True(t, errors.Is(err, ErrEntryNotFound))
}

func TestLedger_List(t *testing.T) {
	l := New(logging.NewMockLogger())
	add := func(item models.ParsedTransaction) string {
		id, err := l.Add(item)
		require.NoError(t, err)
		return id
	}

	old := add(tx(models.TypeExpense, "10", models.CategoryFood, 1))
	salary := add(tx(models.TypeIncome, "500", models.CategorySalary, 3))
	lunch := add(tx(models.TypeExpense, "20", models.CategoryFood, 3))
	taxi := add(tx(models.TypeExpense, "30", models.CategoryTransport, 2))

	ids := func(entries []Entry) []string {
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.ID
		}
		return out
	}

	assert.Equal(t, []string{lunch, salary, taxi, old}, ids(l.List(Filter{})))
	assert.Equal(t, []string{lunch, taxi, old}, ids(l.List(Filter{Type: models.TypeExpense})))
	assert.Equal(t, []string{lunch, old}, ids(l.List(Filter{Category: models.CategoryFood})))
	assert.Equal(t, []string{lunch, salary}, ids(l.Recent(2)))
	assert.Empty(t, l.List(Filter{Category: models.CategoryHealth}))
}

func TestLedger_ConcurrentAdds(t *testing.T) {
	l := New(logging.NewMockLogger())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			txType := models.TypeExpense
			if i%2 == 0 {
				txType = models.TypeIncome
			}
			_, err := l.Add(tx(txType, "2", models.CategoryOther, 1))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, l.Len())
	totals := l.Totals()
	assert.True(t, totals.Balance.IsZero())
	assert.True(t, decimal.NewFromInt(50).Equal(totals.TotalIncome))
	assert.True(t, decimal.NewFromInt(50).Equal(totals.TotalExpense))
}
