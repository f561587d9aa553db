package shoppinglist

import "errors"

// ErrNoRecipes is returned when a shopping list is requested for zero recipes.
var ErrNoRecipes = errors.New("no recipes provided")
