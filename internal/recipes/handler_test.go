package recipes_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
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

func doRequest(t *testing.T, router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRecipeCreateGetDelete(t *testing.T) {
	router := newTestRouter(t)

	body, err := json.Marshal(map[string]any{
		"dishName":    "Pancakes",
		"ingredients": []string{"2 cups flour", "1 egg"},
		"steps":       []string{"Mix.", "Fry."},
	})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := doRequest(t, router, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID       string `json:"id"`
		DishName string `json:"dishName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == "" || created.DishName != "Pancakes" {
		t.Fatalf("unexpected create response: %+v", created)
	}

	resp = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/recipes/"+created.ID, nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", resp.Code)
	}

	resp = doRequest(t, router, httptest.NewRequest(http.MethodDelete, "/api/v1/recipes/"+created.ID, nil))
	if resp.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", resp.Code)
	}

	resp = doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/recipes/"+created.ID, nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", resp.Code)
	}
}

func TestRecipeCreateValidation(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{"dishName": "No Ingredients"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := doRequest(t, router, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestRecipeImportTextFile(t *testing.T) {
	router := newTestRouter(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	fileWriter, err := writer.CreateFormFile("file", "soup.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write([]byte("Tomato Soup\ntomatoes\nonion\nSteps:\nSimmer.\n")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := doRequest(t, router, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("import: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var imported struct {
		DishName    string   `json:"dishName"`
		Ingredients []string `json:"ingredients"`
		Steps       []string `json:"steps"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&imported); err != nil {
		t.Fatalf("decode import response: %v", err)
	}
	if imported.DishName != "Tomato Soup" || len(imported.Ingredients) != 2 || len(imported.Steps) != 1 {
		t.Fatalf("unexpected import response: %+v", imported)
	}
}

func TestRecipeImportRequiresFile(t *testing.T) {
	router := newTestRouter(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := doRequest(t, router, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestRecipeClipRejectsBadURL(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{"url": "ftp://example.com/recipe"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/clip", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := doRequest(t, router, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestRecipeListPagination(t *testing.T) {
	router := newTestRouter(t)

	for _, name := range []string{"A", "B", "C"} {
		body, _ := json.Marshal(map[string]any{"dishName": name, "ingredients": []string{"x"}})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if resp := doRequest(t, router, req); resp.Code != http.StatusCreated {
			t.Fatalf("create %s: expected 201, got %d", name, resp.Code)
		}
	}

	resp := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/recipes?limit=2", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.Code)
	}
	var listed []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(listed))
	}
}
