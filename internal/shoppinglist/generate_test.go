package shoppinglist

import (
	"reflect"
	"testing"
)

func TestGenerateEmptyInput(t *testing.T) {
	if _, err := Generate(nil); err != ErrNoRecipes {
		t.Fatalf("Generate(nil) error = %v, want ErrNoRecipes", err)
	}
	if _, err := Generate([]RecipeIngredients{}); err != ErrNoRecipes {
		t.Fatalf("Generate([]) error = %v, want ErrNoRecipes", err)
	}
}

func TestGenerateMergesAndCounts(t *testing.T) {
	recipes := []RecipeIngredients{
		{ID: "r1", DishName: "Pancakes", Ingredients: []string{"2 cups flour", "1 egg"}},
		{ID: "r2", DishName: "Empty Dish", Ingredients: []string{}},
		{ID: "r3", DishName: "Crepes", Ingredients: []string{"flour", "1 cup milk"}},
	}

	resp, err := Generate(recipes)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if resp.TotalRecipes != 3 {
		t.Errorf("totalRecipes = %d, want 3", resp.TotalRecipes)
	}
	if resp.RecipesWithIngredients != 2 {
		t.Errorf("recipesWithIngredients = %d, want 2", resp.RecipesWithIngredients)
	}
	if len(resp.MissingRecipes) != 1 || resp.MissingRecipes[0].ID != "r2" {
		t.Fatalf("missingRecipes = %+v, want [r2]", resp.MissingRecipes)
	}
	if resp.RecipesWithIngredients+len(resp.MissingRecipes) != resp.TotalRecipes {
		t.Errorf("count invariant violated: %d + %d != %d",
			resp.RecipesWithIngredients, len(resp.MissingRecipes), resp.TotalRecipes)
	}

	// "flour" from r3 dedupes against "2 cups flour" from r1 and keeps the
	// first-seen display text.
	flourCount := 0
	for _, section := range resp.Sections {
		for _, ing := range section.Ingredients {
			if Normalize(ing) == "flour" {
				flourCount++
				if ing != "2 cups flour" {
					t.Errorf("flour display text = %q, want first-seen %q", ing, "2 cups flour")
				}
			}
		}
	}
	if flourCount != 1 {
		t.Errorf("flour appears %d times, want 1", flourCount)
	}

	if got := sectionFor(t, resp, "1 egg"); got != "Dairy & Eggs" {
		t.Errorf("egg section = %q, want Dairy & Eggs", got)
	}
	if got := sectionFor(t, resp, "1 cup milk"); got != "Dairy & Eggs" {
		t.Errorf("milk section = %q, want Dairy & Eggs", got)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	recipes := []RecipeIngredients{
		{ID: "a", DishName: "A", Ingredients: []string{"1 onion", "salt", "2 chicken thighs", "rice"}},
		{ID: "b", DishName: "B", Ingredients: []string{"1 Onion", "olive oil", "lemon"}},
	}

	first, err := Generate(recipes)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := Generate(recipes)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("output changed between runs:\n%+v\nvs\n%+v", first, again)
		}
	}
}

func TestGenerateSectionsInFirstAppearanceOrder(t *testing.T) {
	recipes := []RecipeIngredients{
		{ID: "r1", DishName: "Toast", Ingredients: []string{"bread", "butter", "tomato"}},
	}
	resp, err := Generate(recipes)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []string{"Bakery", "Dairy & Eggs", "Produce"}
	if len(resp.Sections) != len(want) {
		t.Fatalf("sections = %+v, want names %v", resp.Sections, want)
	}
	for i, name := range want {
		if resp.Sections[i].Name != name {
			t.Errorf("section[%d] = %q, want %q", i, resp.Sections[i].Name, name)
		}
	}
}

func TestGenerateAllRecipesMissing(t *testing.T) {
	resp, err := Generate([]RecipeIngredients{
		{ID: "x", DishName: "X"},
		{ID: "y", DishName: "Y"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.TotalRecipes != 2 || resp.RecipesWithIngredients != 0 || len(resp.MissingRecipes) != 2 {
		t.Fatalf("unexpected counts: %+v", resp)
	}
	if len(resp.Sections) != 0 {
		t.Fatalf("expected no sections, got %+v", resp.Sections)
	}
}

func sectionFor(t *testing.T, resp ShoppingListResponse, ingredient string) string {
	t.Helper()
	for _, section := range resp.Sections {
		for _, ing := range section.Ingredients {
			if ing == ingredient {
				return section.Name
			}
		}
	}
	t.Fatalf("ingredient %q not found in %+v", ingredient, resp.Sections)
	return ""
}
