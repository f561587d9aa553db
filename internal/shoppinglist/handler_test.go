package shoppinglist_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"recipebox-backend/internal/bootstrap"
	"recipebox-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func createRecipe(t *testing.T, router *gin.Engine, dishName string, ingredients []string) string {
	t.Helper()

	resp := postJSON(t, router, "/api/v1/recipes", map[string]any{
		"dishName":    dishName,
		"ingredients": ingredients,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create recipe: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected recipe id")
	}
	return created.ID
}

func TestGenerateFromStoredRecipes(t *testing.T) {
	router := newTestRouter(t)

	pancakes := createRecipe(t, router, "Pancakes", []string{"2 cups flour", "1 egg", "1 cup milk"})
	salad := createRecipe(t, router, "Salad", []string{"1 head lettuce", "2 tomatoes"})

	resp := postJSON(t, router, "/api/v1/shopping-list/generate", map[string]any{
		"recipeIds": []string{pancakes, salad, "ghost-id"},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("generate: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var list struct {
		Sections []struct {
			Name        string   `json:"name"`
			Ingredients []string `json:"ingredients"`
		} `json:"sections"`
		MissingRecipes []struct {
			ID string `json:"id"`
		} `json:"missingRecipes"`
		TotalRecipes           int `json:"totalRecipes"`
		RecipesWithIngredients int `json:"recipesWithIngredients"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if list.TotalRecipes != 3 {
		t.Fatalf("expected totalRecipes 3, got %d", list.TotalRecipes)
	}
	if list.RecipesWithIngredients != 2 {
		t.Fatalf("expected recipesWithIngredients 2, got %d", list.RecipesWithIngredients)
	}
	if len(list.MissingRecipes) != 1 || list.MissingRecipes[0].ID != "ghost-id" {
		t.Fatalf("expected ghost-id reported missing, got %+v", list.MissingRecipes)
	}
	if len(list.Sections) == 0 {
		t.Fatal("expected at least one section")
	}
	total := 0
	for _, section := range list.Sections {
		total += len(section.Ingredients)
	}
	if total != 5 {
		t.Fatalf("expected 5 ingredients across sections, got %d", total)
	}
}

func TestGenerateRequiresRecipeIDs(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/shopping-list/generate", map[string]any{
		"recipeIds": []string{"", "  "},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestGenerateDedupesRequestedIDs(t *testing.T) {
	router := newTestRouter(t)

	pancakes := createRecipe(t, router, "Pancakes", []string{"2 cups flour"})

	resp := postJSON(t, router, "/api/v1/shopping-list/generate", map[string]any{
		"recipeIds": []string{pancakes, pancakes, " " + pancakes + " "},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("generate: expected 200, got %d", resp.Code)
	}

	var list struct {
		TotalRecipes int `json:"totalRecipes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if list.TotalRecipes != 1 {
		t.Fatalf("expected duplicate ids collapsed to 1 recipe, got %d", list.TotalRecipes)
	}
}
