package cart

import (
	"time"

	"recipebox-backend/internal/shoppinglist"
)

// CartResponse is the outward-facing representation of a cart.
type CartResponse struct {
	ID           string                            `json:"id"`
	RecipeIDs    []string                          `json:"recipeIds"`
	ShoppingList shoppinglist.ShoppingListResponse `json:"shoppingList"`
	CheckedItems []string                          `json:"checkedItems"`
	ShareToken   *string                           `json:"shareToken"`
	CreatedAt    time.Time                         `json:"createdAt"`
}

// SharedCartResponse is what a share-link bearer sees.
type SharedCartResponse struct {
	ShoppingList shoppinglist.ShoppingListResponse `json:"shoppingList"`
	CheckedItems []string                          `json:"checkedItems"`
	OwnerName    string                            `json:"ownerName"`
}

func toResponse(c Cart) CartResponse {
	resp := CartResponse{
		ID:           c.ID,
		RecipeIDs:    c.RecipeIDs,
		ShoppingList: c.ShoppingList,
		CheckedItems: c.CheckedItems,
		CreatedAt:    c.CreatedAt,
	}
	if resp.RecipeIDs == nil {
		resp.RecipeIDs = []string{}
	}
	if resp.CheckedItems == nil {
		resp.CheckedItems = []string{}
	}
	if c.ShareToken != "" {
		token := c.ShareToken
		resp.ShareToken = &token
	}
	return resp
}

func toSharedResponse(sc SharedCart) SharedCartResponse {
	resp := SharedCartResponse{
		ShoppingList: sc.ShoppingList,
		CheckedItems: sc.CheckedItems,
		OwnerName:    sc.OwnerName,
	}
	if resp.CheckedItems == nil {
		resp.CheckedItems = []string{}
	}
	return resp
}
