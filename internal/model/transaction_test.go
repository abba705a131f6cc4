package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_MonthKey(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-03-15", "2024-3"},
		{"2024-12-01", "2024-12"},
		{"2024-01-31", "2024-1"},
		{"1999-10-05", "1999-10"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			txn := Transaction{Date: tt.date}
			assert.Equal(t, tt.want, txn.MonthKey())
		})
	}
}

func TestMonthKeyFor(t *testing.T) {
	assert.Equal(t, "2024-3", MonthKeyFor(time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)))
	assert.Equal(t, "2024-12", MonthKeyFor(time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local)))
}

func TestTransaction_EffectiveTime(t *testing.T) {
	t.Run("uses createdAt when present", func(t *testing.T) {
		txn := Transaction{
			Date:      "2024-03-15",
			CreatedAt: "2024-03-15T18:45:12",
		}
		assert.Equal(t, time.Date(2024, 3, 15, 18, 45, 12, 0, time.Local), txn.EffectiveTime())
	})

	t.Run("falls back to date at local midnight", func(t *testing.T) {
		txn := Transaction{Date: "2024-03-15"}
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), txn.EffectiveTime())
	})

	t.Run("unparseable createdAt falls back to date", func(t *testing.T) {
		txn := Transaction{Date: "2024-03-15", CreatedAt: "not-a-timestamp"}
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), txn.EffectiveTime())
	})
}

func TestNewID(t *testing.T) {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "1710504000000", NewID(at))
}

func TestBatchID(t *testing.T) {
	batch := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "1710504000000-0", BatchID(batch, 0))
	assert.Equal(t, "1710504000000-7", BatchID(batch, 7))

	// Same batch, different indexes, always distinct.
	assert.NotEqual(t, BatchID(batch, 1), BatchID(batch, 2))
}
