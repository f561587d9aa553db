package recipes

import "time"

// Recipe is a recipe in a user's collection. Ingredients are raw lines as
// entered or clipped; structure is imposed downstream by the shopping list
// engine.
type Recipe struct {
	ID          string
	OwnerID     string
	DishName    string
	SourceURL   string
	Ingredients []string
	Steps       []string
	CreatedAt   time.Time
}
