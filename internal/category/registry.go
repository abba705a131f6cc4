// Package category maintains the process-wide category lookup.
package category

import (
	"sync"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

// Registry maps category ids to definitions. It is pre-seeded with the seven
// built-ins and mutated only through ReplaceCustomSet, so it never holds a
// stale custom entry after an edit or delete. Construct one at application
// start and pass it explicitly; there is no package-level instance.
type Registry struct {
	mu   sync.RWMutex
	byID map[string]model.Category
}

// NewRegistry creates a registry containing only the built-in categories.
func NewRegistry() *Registry {
	byID := make(map[string]model.Category)
	for _, c := range model.BuiltinCategories() {
		byID[c.ID] = c
	}
	return &Registry{byID: byID}
}

// Resolve returns the category for id, falling back to the built-in Other
// category when the id is unknown. It never fails.
func (r *Registry) Resolve(id string) model.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.byID[id]; ok {
		return c
	}
	return r.byID[model.OtherID]
}

// ReplaceCustomSet atomically removes every custom entry and inserts the
// given set. Entries without the custom prefix are ignored; the built-ins
// cannot be overridden or removed.
func (r *Registry) ReplaceCustomSet(categories []model.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, c := range r.byID {
		if c.IsCustom() {
			delete(r.byID, id)
		}
	}
	for _, c := range categories {
		if !c.IsCustom() {
			common.LogWarn("ignoring non-custom category in custom set", common.Fields{"id": c.ID})
			continue
		}
		r.byID[c.ID] = c
	}
}

// DefaultCustomCategories returns the starter set persisted on first-ever
// load, so a fresh ledger has a non-trivial category list.
func DefaultCustomCategories() []model.Category {
	return []model.Category{
		{ID: "custom-fitness", Name: "Fitness", Color: "#4CAF50"},
		{ID: "custom-education", Name: "Education", Color: "#2196F3"},
	}
}
