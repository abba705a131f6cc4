package model

import (
	"sort"
	"strconv"
	"strings"
)

// CustomIDPrefix marks user-created categories. Every id without this prefix
// is one of the built-ins.
const CustomIDPrefix = "custom-"

// Category represents an expense category, built-in or user-defined.
type Category struct {
	ID    string
	Name  string
	Icon  string // optional glyph; takes rendering precedence over Color
	Color string // optional; paired with the first rune of Name when Icon is absent
}

// IsCustom reports whether the category is user-defined.
func (c Category) IsCustom() bool {
	return strings.HasPrefix(c.ID, CustomIDPrefix)
}

// Built-in category ids. These always resolve; OtherID is the fallback for
// any unknown id.
const (
	FoodID          = "food"
	TransportID     = "transport"
	ShoppingID      = "shopping"
	EntertainmentID = "entertainment"
	DailyID         = "daily"
	IncomeID        = "income"
	OtherID         = "other"
)

// BuiltinCategories returns the seven fixed categories every registry starts
// with. The slice is freshly allocated on each call.
func BuiltinCategories() []Category {
	return []Category{
		{ID: FoodID, Name: "Food", Icon: "🍔"},
		{ID: TransportID, Name: "Transport", Icon: "🚗"},
		{ID: ShoppingID, Name: "Shopping", Icon: "🛍️"},
		{ID: EntertainmentID, Name: "Entertainment", Icon: "🎮"},
		{ID: DailyID, Name: "Daily", Icon: "🏠"},
		{ID: IncomeID, Name: "Income", Icon: "💰"},
		{ID: OtherID, Name: "Other", Icon: "📝"},
	}
}

// SortCategories orders a persisted category set deterministically: non-custom
// ids first (lexicographic), then custom ids with a non-numeric suffix
// (lexicographic by suffix), then custom ids with a fully numeric suffix
// (ascending by value). Persisted categories are only ever enumerated in this
// order; it is not creation order.
func SortCategories(categories []Category) []Category {
	var builtin, letter, numeric []Category
	for _, c := range categories {
		switch {
		case !c.IsCustom():
			builtin = append(builtin, c)
		case isNumericSuffix(customSuffix(c.ID)):
			numeric = append(numeric, c)
		default:
			letter = append(letter, c)
		}
	}

	sort.Slice(builtin, func(i, j int) bool {
		return builtin[i].ID < builtin[j].ID
	})
	sort.Slice(letter, func(i, j int) bool {
		return customSuffix(letter[i].ID) < customSuffix(letter[j].ID)
	})
	sort.Slice(numeric, func(i, j int) bool {
		a, _ := strconv.ParseInt(customSuffix(numeric[i].ID), 10, 64)
		b, _ := strconv.ParseInt(customSuffix(numeric[j].ID), 10, 64)
		return a < b
	})

	out := make([]Category, 0, len(categories))
	out = append(out, builtin...)
	out = append(out, letter...)
	out = append(out, numeric...)
	return out
}

func customSuffix(id string) string {
	return strings.TrimPrefix(id, CustomIDPrefix)
}

func isNumericSuffix(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
