package category

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/tally/internal/model"
)

func TestRegistry_Resolve(t *testing.T) {
	reg := NewRegistry()

	t.Run("built-ins resolve exactly", func(t *testing.T) {
		assert.Equal(t, "Food", reg.Resolve(model.FoodID).Name)
		assert.Equal(t, "Income", reg.Resolve(model.IncomeID).Name)
	})

	t.Run("unknown ids resolve to other", func(t *testing.T) {
		for _, id := range []string{"", "groceries", "custom-missing", "OTHER", "food "} {
			got := reg.Resolve(id)
			assert.Equal(t, model.OtherID, got.ID, "id %q", id)
		}
	})

	t.Run("custom entries resolve after replacement", func(t *testing.T) {
		reg.ReplaceCustomSet([]model.Category{
			{ID: "custom-gym", Name: "Gym"},
		})
		assert.Equal(t, "Gym", reg.Resolve("custom-gym").Name)
	})
}

func TestRegistry_ReplaceCustomSet(t *testing.T) {
	reg := NewRegistry()

	reg.ReplaceCustomSet([]model.Category{
		{ID: "custom-gym", Name: "Gym"},
		{ID: "custom-books", Name: "Books"},
	})
	assert.Equal(t, "Gym", reg.Resolve("custom-gym").Name)

	// Replacement drops every previous custom entry; no stale lookups.
	reg.ReplaceCustomSet([]model.Category{
		{ID: "custom-books", Name: "Reading"},
	})
	assert.Equal(t, model.OtherID, reg.Resolve("custom-gym").ID)
	assert.Equal(t, "Reading", reg.Resolve("custom-books").Name)

	// Empty set clears all custom entries but never the built-ins.
	reg.ReplaceCustomSet(nil)
	assert.Equal(t, model.OtherID, reg.Resolve("custom-books").ID)
	assert.Equal(t, "Food", reg.Resolve(model.FoodID).Name)
}

func TestRegistry_ReplaceCustomSetIgnoresBuiltinOverrides(t *testing.T) {
	reg := NewRegistry()

	reg.ReplaceCustomSet([]model.Category{
		{ID: model.FoodID, Name: "Hijacked"},
		{ID: "custom-gym", Name: "Gym"},
	})

	assert.Equal(t, "Food", reg.Resolve(model.FoodID).Name)
	assert.Equal(t, "Gym", reg.Resolve("custom-gym").Name)
}

func TestDefaultCustomCategories(t *testing.T) {
	defaults := DefaultCustomCategories()
	assert.Len(t, defaults, 2)
	for _, c := range defaults {
		assert.True(t, c.IsCustom())
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Color)
	}
}
