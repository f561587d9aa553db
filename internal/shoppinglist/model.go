package shoppinglist

// RecipeIngredients is the engine's view of a recipe: an id, a display name,
// and its raw ingredient lines. Resolution from recipe ids happens upstream;
// ids that could not be resolved arrive with an empty Ingredients slice so the
// totals still account for them.
type RecipeIngredients struct {
	ID          string   `json:"id"`
	DishName    string   `json:"dishName"`
	Ingredients []string `json:"ingredients"`
}

// ShoppingSection groups merged ingredients under one supermarket section.
type ShoppingSection struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}

// MissingRecipe identifies a requested recipe that contributed no ingredients.
type MissingRecipe struct {
	ID       string `json:"id"`
	DishName string `json:"dishName"`
}

// ShoppingListResponse is the merged, sectioned shopping list.
// recipesWithIngredients + len(missingRecipes) always equals totalRecipes.
type ShoppingListResponse struct {
	Sections               []ShoppingSection `json:"sections"`
	MissingRecipes         []MissingRecipe   `json:"missingRecipes"`
	TotalRecipes           int               `json:"totalRecipes"`
	RecipesWithIngredients int               `json:"recipesWithIngredients"`
}
