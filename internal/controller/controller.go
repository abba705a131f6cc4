// Package controller owns the canonical in-memory ledger state and keeps it
// synchronized with the persistent store.
package controller

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Veraticus/tally/internal/category"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/importer"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/service"
)

// Controller orchestrates the ledger: it owns the month-bucketed transaction
// state and the custom category set, applies every mutation to memory
// synchronously, and persists asynchronously. Memory is optimistic — a failed
// write is retried and then logged, never rolled back — so queries always see
// a mutation before its persistence resolves.
type Controller struct {
	store    service.Store
	registry *category.Registry
	now      func() time.Time

	mu     sync.Mutex
	months map[string][]model.Transaction
	custom []model.Category

	writes sync.WaitGroup
	retry  service.RetryOptions
}

// MonthView is one month of transactions in display order plus its totals.
type MonthView struct {
	Transactions []model.Transaction
	Totals       ledger.Totals
	Key          string
}

// New creates a controller over the given store and registry. Call Initialize
// before issuing operations.
func New(store service.Store, registry *category.Registry) *Controller {
	return &Controller{
		store:    store,
		registry: registry,
		now:      time.Now,
		months:   make(map[string][]model.Transaction),
		retry:    service.RetryOptions{MaxAttempts: 3},
	}
}

// Initialize loads transactions and categories in parallel, groups the
// transactions by month, seeds the starter categories on first-ever load, and
// fills the registry. It is abortable: once ctx is canceled no state is
// committed, even if the loads already finished.
func (c *Controller) Initialize(ctx context.Context) error {
	var (
		transactions []model.Transaction
		categories   []model.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = c.store.GetTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = c.store.GetCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if len(categories) == 0 {
		categories = category.DefaultCustomCategories()
		for _, cat := range categories {
			if err := c.store.PutCategory(ctx, cat); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.months = ledger.GroupByMonth(transactions)
	c.custom = categories
	c.mu.Unlock()
	c.registry.ReplaceCustomSet(categories)

	common.LogDebug("ledger initialized", common.Fields{
		"transactions": len(transactions),
		"categories":   len(categories),
	})
	return nil
}

// AddTransaction constructs a transaction from the given inputs and inserts
// it at the head of its month bucket. The caller has already enforced a
// non-empty description and a positive amount; unlike the import path, no
// re-validation happens here. createdAt defaults to the current local time.
func (c *Controller) AddTransaction(description string, amount float64, categoryID string, createdAt *time.Time, typ model.TransactionType) model.Transaction {
	when := c.now()
	if createdAt != nil {
		when = *createdAt
	}
	if categoryID == "" {
		categoryID = model.OtherID
	}
	if typ == "" {
		typ = model.TypeExpense
	}

	txn := model.Transaction{
		ID:          model.NewID(when),
		Description: description,
		Amount:      amount,
		CategoryID:  categoryID,
		Date:        when.Format(model.DateLayout),
		CreatedAt:   when.Format(model.DateTimeLayout),
		Type:        typ,
	}

	key := model.MonthKeyFor(when)
	c.mu.Lock()
	c.months[key] = append([]model.Transaction{txn}, c.months[key]...)
	c.mu.Unlock()

	c.persistAsync("put transaction", func(ctx context.Context) error {
		return c.store.PutTransaction(ctx, txn)
	})

	return txn
}

// DeleteTransaction removes a transaction by id from the in-memory state and
// issues an asynchronous delete. An absent id is a no-op, never an error, and
// the store delete is issued regardless so memory and store converge.
func (c *Controller) DeleteTransaction(id string) {
	c.mu.Lock()
	for key, bucket := range c.months {
		for i, txn := range bucket {
			if txn.ID == id {
				c.months[key] = append(bucket[:i:i], bucket[i+1:]...)
				break
			}
		}
	}
	c.mu.Unlock()

	c.persistAsync("delete transaction", func(ctx context.Context) error {
		return c.store.DeleteTransaction(ctx, id)
	})
}

// ImportTransactions validates raw pasted JSON and, only if the whole batch
// passes, merges every produced transaction into its month bucket and
// persists each one. On validation failure the structured error is returned
// and no state changes.
func (c *Controller) ImportTransactions(raw string) ([]model.Transaction, error) {
	batch, err := importer.ParseBatch(raw, c.registry, c.now())
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	for _, txn := range batch {
		key := txn.MonthKey()
		c.months[key] = append([]model.Transaction{txn}, c.months[key]...)
	}
	c.mu.Unlock()

	for _, txn := range batch {
		txn := txn
		c.persistAsync("put imported transaction", func(ctx context.Context) error {
			return c.store.PutTransaction(ctx, txn)
		})
	}

	return batch, nil
}

// UpsertCategory replaces an existing custom category in place or appends a
// new one, resynchronizes the registry, and persists.
func (c *Controller) UpsertCategory(cat model.Category) {
	c.mu.Lock()
	replaced := false
	for i, existing := range c.custom {
		if existing.ID == cat.ID {
			c.custom[i] = cat
			replaced = true
			break
		}
	}
	if !replaced {
		c.custom = append(c.custom, cat)
	}
	snapshot := append([]model.Category(nil), c.custom...)
	c.mu.Unlock()

	c.registry.ReplaceCustomSet(snapshot)

	c.persistAsync("put category", func(ctx context.Context) error {
		return c.store.PutCategory(ctx, cat)
	})
}

// DeleteCategory removes a custom category, resynchronizes the registry, and
// persists the deletion. Transactions referencing the id keep it; their
// display resolution degrades to the Other category on next lookup.
func (c *Controller) DeleteCategory(id string) {
	c.mu.Lock()
	kept := c.custom[:0]
	for _, existing := range c.custom {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	c.custom = kept
	snapshot := append([]model.Category(nil), c.custom...)
	c.mu.Unlock()

	c.registry.ReplaceCustomSet(snapshot)

	c.persistAsync("delete category", func(ctx context.Context) error {
		return c.store.DeleteCategory(ctx, id)
	})
}

// Month returns the view for a month key: transactions in display order plus
// totals. Unknown keys yield an empty view.
func (c *Controller) Month(key string) MonthView {
	c.mu.Lock()
	bucket := append([]model.Transaction(nil), c.months[key]...)
	c.mu.Unlock()

	return MonthView{
		Key:          key,
		Transactions: ledger.SortForDisplay(bucket),
		Totals:       ledger.ComputeTotals(bucket),
	}
}

// CustomCategories returns a copy of the current custom category set in the
// deterministic enumeration order.
func (c *Controller) CustomCategories() []model.Category {
	c.mu.Lock()
	snapshot := append([]model.Category(nil), c.custom...)
	c.mu.Unlock()
	return model.SortCategories(snapshot)
}

// Flush blocks until every issued persistence write has settled. The CLI
// calls this before exit; a long-lived caller never needs to.
func (c *Controller) Flush() {
	c.writes.Wait()
}

// persistAsync issues a fire-and-forget write with bounded retry. Terminal
// failures are logged as warnings; the in-memory mutation stands regardless.
func (c *Controller) persistAsync(op string, fn func(context.Context) error) {
	c.writes.Add(1)
	go func() {
		defer c.writes.Done()
		err := common.WithRetry(context.Background(), func() error {
			return fn(context.Background())
		}, c.retry)
		if err != nil {
			common.LogError(err, "persistence failed; in-memory state kept", common.Fields{"op": op})
		}
	}()
}
