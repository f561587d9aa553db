package shoppinglist

// Generate merges the ingredient lists of the given recipes into one
// deduplicated, sectioned shopping list. Recipes with no ingredients are
// reported as missing instead of failing the whole request; the only error
// case is an empty input set.
//
// The output is deterministic: sections appear in first-use order and
// ingredients keep the first-seen display text per canonical key.
func Generate(recipes []RecipeIngredients) (ShoppingListResponse, error) {
	if len(recipes) == 0 {
		return ShoppingListResponse{}, ErrNoRecipes
	}

	resp := ShoppingListResponse{
		Sections:       []ShoppingSection{},
		MissingRecipes: []MissingRecipe{},
		TotalRecipes:   len(recipes),
	}

	seenKeys := make(map[string]struct{})
	sectionIndex := make(map[string]int)

	for _, recipe := range recipes {
		if len(recipe.Ingredients) == 0 {
			resp.MissingRecipes = append(resp.MissingRecipes, MissingRecipe{
				ID:       recipe.ID,
				DishName: recipe.DishName,
			})
			continue
		}

		for _, raw := range recipe.Ingredients {
			key := Normalize(raw)
			if key == "" {
				continue
			}
			if _, dup := seenKeys[key]; dup {
				continue
			}
			seenKeys[key] = struct{}{}

			name := Classify(key)
			idx, ok := sectionIndex[name]
			if !ok {
				idx = len(resp.Sections)
				sectionIndex[name] = idx
				resp.Sections = append(resp.Sections, ShoppingSection{Name: name, Ingredients: []string{}})
			}
			resp.Sections[idx].Ingredients = append(resp.Sections[idx].Ingredients, raw)
		}
	}

	resp.RecipesWithIngredients = resp.TotalRecipes - len(resp.MissingRecipes)
	return resp, nil
}
