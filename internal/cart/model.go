package cart

import (
	"time"

	"recipebox-backend/internal/shoppinglist"
)

// Cart is the single active shopping cart for an owner: the recipe set it was
// built from, a point-in-time shopping list snapshot, the checked-item keys,
// and an optional share token. Saving a new cart replaces the old one in full.
type Cart struct {
	ID           string
	OwnerID      string
	RecipeIDs    []string
	ShoppingList shoppinglist.ShoppingListResponse
	CheckedItems []string
	ShareToken   string
	CreatedAt    time.Time
}
