// Package ledger provides pure aggregation over in-memory transaction
// collections: month grouping, per-month totals, and display ordering.
package ledger

import (
	"sort"

	"github.com/Veraticus/tally/internal/model"
)

// Totals summarizes one month of transactions.
type Totals struct {
	Expense float64
	Income  float64
	Balance float64 // Income - Expense
}

// GroupByMonth buckets transactions by their month key. Within each bucket,
// transactions are sorted descending by calendar date; same-day ties keep
// their input order. Finer same-day ordering is SortForDisplay's job.
func GroupByMonth(transactions []model.Transaction) map[string][]model.Transaction {
	grouped := make(map[string][]model.Transaction)
	for _, txn := range transactions {
		key := txn.MonthKey()
		grouped[key] = append(grouped[key], txn)
	}

	for _, bucket := range grouped {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[j].DateTime().Before(bucket[i].DateTime())
		})
	}

	return grouped
}

// ComputeTotals sums one month's transactions by type.
func ComputeTotals(transactions []model.Transaction) Totals {
	var t Totals
	for _, txn := range transactions {
		switch txn.Type {
		case model.TypeExpense:
			t.Expense += txn.Amount
		case model.TypeIncome:
			t.Income += txn.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// SortForDisplay returns a copy of a month's transactions ordered descending
// by effective timestamp, so same-day entries appear most-recently-added
// first. The input slice is not modified.
func SortForDisplay(transactions []model.Transaction) []model.Transaction {
	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].EffectiveTime().Before(sorted[i].EffectiveTime())
	})
	return sorted
}
