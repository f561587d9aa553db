package recipes

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestImportTextDraft(t *testing.T) {
	imp := NewImporter()

	text := `Tomato Soup

Ingredients:
- 2 lbs tomatoes
- 1 onion
* 2 cloves garlic

Steps:
1. Roast the tomatoes.
2. Blend everything.
`
	draft, err := imp.Import(context.Background(), "soup.txt", []byte(text))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if draft.DishName != "Tomato Soup" {
		t.Fatalf("unexpected dish name %q", draft.DishName)
	}
	want := []string{"2 lbs tomatoes", "1 onion", "2 cloves garlic"}
	if !reflect.DeepEqual(draft.Ingredients, want) {
		t.Fatalf("unexpected ingredients: %v", draft.Ingredients)
	}
	if len(draft.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %v", draft.Steps)
	}
}

func TestImportWithoutStepsHeading(t *testing.T) {
	imp := NewImporter()

	text := "Pancakes\nflour\nmilk\neggs\n"
	draft, err := imp.Import(context.Background(), "pancakes.txt", []byte(text))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(draft.Ingredients) != 3 || len(draft.Steps) != 0 {
		t.Fatalf("unexpected draft: %+v", draft)
	}
}

func TestImportHeadingVariants(t *testing.T) {
	imp := NewImporter()

	for _, heading := range []string{"Steps", "INSTRUCTIONS:", "Method", "directions", "Preparation:"} {
		text := "Dish\nflour\n" + heading + "\nmix it\n"
		draft, err := imp.Import(context.Background(), "r.txt", []byte(text))
		if err != nil {
			t.Fatalf("Import with heading %q: %v", heading, err)
		}
		if !reflect.DeepEqual(draft.Steps, []string{"mix it"}) {
			t.Fatalf("heading %q: unexpected steps %v", heading, draft.Steps)
		}
	}
}

func TestImportRejectsEmptyAndBinary(t *testing.T) {
	imp := NewImporter()

	if _, err := imp.Import(context.Background(), "r.txt", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty payload: expected ErrInvalidInput, got %v", err)
	}
	if _, err := imp.Import(context.Background(), "r.txt", []byte{0xff, 0xfe, 0x00}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("binary payload: expected ErrInvalidInput, got %v", err)
	}
}

func TestImportRejectsIngredientlessText(t *testing.T) {
	imp := NewImporter()

	if _, err := imp.Import(context.Background(), "r.txt", []byte("Just a title\n")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
