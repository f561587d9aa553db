package recipes

import "time"

// RecipeResponse is the outward-facing representation of a recipe.
type RecipeResponse struct {
	ID          string    `json:"id"`
	DishName    string    `json:"dishName"`
	SourceURL   string    `json:"sourceUrl,omitempty"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toResponse(r Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:          r.ID,
		DishName:    r.DishName,
		SourceURL:   r.SourceURL,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		CreatedAt:   r.CreatedAt,
	}
	if resp.Ingredients == nil {
		resp.Ingredients = []string{}
	}
	if resp.Steps == nil {
		resp.Steps = []string{}
	}
	return resp
}
