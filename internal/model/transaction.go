// Package model defines the core ledger records shared by every layer.
package model

import (
	"fmt"
	"strconv"
	"time"
)

// Date layouts used throughout the ledger. Dates carry no zone marker and are
// always interpreted in local time.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	// TypeExpense represents money spent.
	TypeExpense TransactionType = "expense"
	// TypeIncome represents money received.
	TypeIncome TransactionType = "income"
)

// Transaction is a single ledger entry. Transactions are immutable after
// creation: they are added and deleted, never edited.
type Transaction struct {
	ID          string
	Description string
	Amount      float64 // always > 0; direction comes from Type
	CategoryID  string
	Date        string // canonical YYYY-MM-DD, local calendar date
	CreatedAt   string // optional YYYY-MM-DDTHH:mm:ss; fine-grained ordering key
	Type        TransactionType
}

// NewID derives a transaction id from its creation time.
func NewID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// BatchID derives an id for the index-th record of a bulk import. All records
// of one batch share the batch timestamp, so the index keeps them unique.
func BatchID(batch time.Time, index int) string {
	return fmt.Sprintf("%d-%d", batch.UnixMilli(), index)
}

// MonthKeyFor returns the month bucket key for a point in time, formatted
// "<year>-<month>" with the month unpadded.
func MonthKeyFor(t time.Time) string {
	return fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))
}

// MonthKey returns the month bucket key derived from the transaction's date.
// A transaction always belongs to exactly one bucket.
func (t Transaction) MonthKey() string {
	parsed, err := time.ParseInLocation(DateLayout, t.Date, time.Local)
	if err != nil {
		// Non-canonical dates cannot occur through normal creation paths;
		// bucket them under their raw value so grouping stays deterministic.
		return t.Date
	}
	return MonthKeyFor(parsed)
}

// DateTime parses the transaction's calendar date.
func (t Transaction) DateTime() time.Time {
	parsed, _ := time.ParseInLocation(DateLayout, t.Date, time.Local)
	return parsed
}

// EffectiveTime is the fine-grained ordering key for same-day transactions:
// CreatedAt when present, otherwise local midnight of Date.
func (t Transaction) EffectiveTime() time.Time {
	if t.CreatedAt != "" {
		if parsed, err := time.ParseInLocation(DateTimeLayout, t.CreatedAt, time.Local); err == nil {
			return parsed
		}
	}
	return t.DateTime()
}
