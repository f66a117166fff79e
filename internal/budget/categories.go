package budget

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/id"
	"github.com/budgetwave-dev/budgetwave/internal/model"
)

// DefaultCategoryColor is used when a category is added without a color.
const DefaultCategoryColor = "#14b8a6"

// NewCategoryWeight seeds the profile for a freshly added category name so it
// takes part in goal allocation right away.
var NewCategoryWeight = decimal.NewFromInt(5)

// AddCategory appends a category named name. An existing profile weight for
// the same name is kept.
func AddCategory(s *model.AppState, name, color string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		v := validation{op: "add category"}
		v.add("name", "required")
		return model.Category{}, v.err()
	}
	if color == "" {
		color = DefaultCategoryColor
	}

	cat := model.Category{ID: id.New(), Name: name, Color: color}
	s.Categories = append(s.Categories, cat)

	if s.Profile == nil {
		s.Profile = make(map[string]decimal.Decimal)
	}
	if _, ok := s.Profile[name]; !ok {
		s.Profile[name] = NewCategoryWeight
	}
	return cat, nil
}

// DeleteCategory removes the category and its profile weight. Transactions
// that reference catID keep the dangling id. Unknown ids are a no-op.
func DeleteCategory(s *model.AppState, catID string) bool {
	for i, c := range s.Categories {
		if c.ID == catID {
			s.Categories = append(s.Categories[:i:i], s.Categories[i+1:]...)
			delete(s.Profile, c.Name)
			return true
		}
	}
	return false
}

// FindCategory returns the category with catID.
func FindCategory(s model.AppState, catID string) (model.Category, bool) {
	for _, c := range s.Categories {
		if c.ID == catID {
			return c, true
		}
	}
	return model.Category{}, false
}

// Index provides in-memory lookup over a category list.
type Index struct {
	byID map[string]model.Category
}

// NewIndex creates an Index from a slice of categories.
func NewIndex(categories []model.Category) *Index {
	byID := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return &Index{byID: byID}
}

// Get returns a category by id.
func (x *Index) Get(catID string) (model.Category, bool) {
	c, ok := x.byID[catID]
	return c, ok
}

// Name returns the category name for catID, or placeholder when the id does
// not resolve.
func (x *Index) Name(catID, placeholder string) string {
	if c, ok := x.byID[catID]; ok {
		return c.Name
	}
	return placeholder
}
