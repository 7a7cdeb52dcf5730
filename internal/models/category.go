package models

// Category identifies one of the fixed scoring actions.
type Category string

const (
	CategoryMontada  Category = "montada"  // mount, 4 points
	CategoryPassagem Category = "passagem" // guard pass, 3 points
	CategoryQueda    Category = "queda"    // takedown, 2 points
)

// CategoryInfo describes a scoring action: display label plus the fixed
// number of points a single occurrence is worth. This is configuration,
// not per-match data.
type CategoryInfo struct {
	Key    Category `json:"key"`
	Label  string   `json:"label"`
	Points int      `json:"points"`
}

// Categories is the fixed rule set, in display order.
var Categories = []CategoryInfo{
	{Key: CategoryMontada, Label: "Montada", Points: 4},
	{Key: CategoryPassagem, Label: "Passagem", Points: 3},
	{Key: CategoryQueda, Label: "Queda", Points: 2},
}

// ValidCategory reports whether key names one of the fixed categories.
func ValidCategory(key Category) bool {
	for _, c := range Categories {
		if c.Key == key {
			return true
		}
	}
	return false
}

// CategoryPoints returns the fixed point value for a category, or 0 for an
// unknown key.
func CategoryPoints(key Category) int {
	for _, c := range Categories {
		if c.Key == key {
			return c.Points
		}
	}
	return 0
}
