package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Clipper fetches a web page and extracts a recipe draft from its markup.
// Extraction is best-effort and layered: schema.org JSON-LD first, then
// recipe microdata, then a generic ingredient-list heuristic.
type Clipper struct {
	client  *http.Client
	timeout time.Duration
}

// NewClipper constructs a Clipper with the given fetch timeout.
func NewClipper(timeout time.Duration) *Clipper {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Clipper{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Clip fetches rawURL and returns an unsaved recipe draft.
func (c *Clipper) Clip(ctx context.Context, rawURL string) (Recipe, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return Recipe{}, ErrInvalidInput
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return Recipe{}, err
	}
	req.Header.Set("User-Agent", "recipebox/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return Recipe{}, fmt.Errorf("fetch %s: %w", parsed.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Recipe{}, fmt.Errorf("fetch %s: status %d", parsed.Host, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Recipe{}, err
	}

	draft := extractJSONLD(doc)
	if len(draft.Ingredients) == 0 {
		draft = extractMicrodata(doc)
	}
	if len(draft.Ingredients) == 0 {
		draft = extractHeuristic(doc)
	}
	if len(draft.Ingredients) == 0 {
		return Recipe{}, ErrClipFailed
	}

	if draft.DishName == "" {
		draft.DishName = pageTitle(doc)
	}
	draft.SourceURL = parsed.String()
	return draft, nil
}

// jsonLDRecipe is the subset of the schema.org Recipe type we read.
type jsonLDRecipe struct {
	Type               any               `json:"@type"`
	Name               string            `json:"name"`
	RecipeIngredient   []string          `json:"recipeIngredient"`
	RecipeInstructions any               `json:"recipeInstructions"`
	Graph              []json.RawMessage `json:"@graph"`
}

func extractJSONLD(doc *goquery.Document) Recipe {
	var draft Recipe
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if recipe, ok := parseJSONLD([]byte(s.Text())); ok {
			draft = recipe
			return false
		}
		return true
	})
	return draft
}

func parseJSONLD(raw []byte) (Recipe, bool) {
	var node jsonLDRecipe
	if err := json.Unmarshal(raw, &node); err != nil {
		// Some sites wrap their JSON-LD in a top-level array.
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil {
			return Recipe{}, false
		}
		for _, item := range list {
			if recipe, ok := parseJSONLD(item); ok {
				return recipe, true
			}
		}
		return Recipe{}, false
	}

	if isRecipeType(node.Type) && len(node.RecipeIngredient) > 0 {
		return Recipe{
			DishName:    strings.TrimSpace(node.Name),
			Ingredients: node.RecipeIngredient,
			Steps:       instructionLines(node.RecipeInstructions),
		}, true
	}

	for _, item := range node.Graph {
		if recipe, ok := parseJSONLD(item); ok {
			return recipe, true
		}
	}
	return Recipe{}, false
}

func isRecipeType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == "Recipe"
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

func instructionLines(raw any) []string {
	var out []string
	switch v := raw.(type) {
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	case []any:
		for _, item := range v {
			switch step := item.(type) {
			case string:
				if trimmed := strings.TrimSpace(step); trimmed != "" {
					out = append(out, trimmed)
				}
			case map[string]any:
				if text, ok := step["text"].(string); ok {
					if trimmed := strings.TrimSpace(text); trimmed != "" {
						out = append(out, trimmed)
					}
				}
			}
		}
	}
	return out
}

func extractMicrodata(doc *goquery.Document) Recipe {
	var draft Recipe
	doc.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`).Each(func(_ int, s *goquery.Selection) {
		if text := collapseSpace(s.Text()); text != "" {
			draft.Ingredients = append(draft.Ingredients, text)
		}
	})
	if name := doc.Find(`[itemprop="name"]`).First(); name.Length() > 0 {
		draft.DishName = collapseSpace(name.Text())
	}
	return draft
}

// extractHeuristic looks for a list near an "Ingredients" heading.
func extractHeuristic(doc *goquery.Document) Recipe {
	var draft Recipe
	doc.Find("h1, h2, h3, h4").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(heading.Text()), "ingredient") {
			return true
		}
		list := heading.NextAllFiltered("ul, ol").First()
		if list.Length() == 0 {
			list = heading.Parent().Find("ul, ol").First()
		}
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			if text := collapseSpace(li.Text()); text != "" {
				draft.Ingredients = append(draft.Ingredients, text)
			}
		})
		return len(draft.Ingredients) == 0
	})
	return draft
}

func pageTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if title := collapseSpace(og); title != "" {
			return title
		}
	}
	return collapseSpace(doc.Find("title").First().Text())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
