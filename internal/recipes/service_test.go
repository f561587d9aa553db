package recipes

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func newTestService() *Service {
	return &Service{Repo: NewMemoryRepo(), Importer: NewImporter()}
}

func TestCreateValidatesDraft(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "owner-1", Recipe{DishName: "  ", Ingredients: []string{"x"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, "owner-1", Recipe{DishName: "Toast", Ingredients: []string{" ", ""}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("no ingredients: expected ErrInvalidInput, got %v", err)
	}

	recipe, err := svc.Create(ctx, "owner-1", Recipe{
		DishName:    " Toast ",
		Ingredients: []string{" bread ", "", "butter"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if recipe.ID == "" {
		t.Fatal("expected generated id")
	}
	if recipe.DishName != "Toast" {
		t.Fatalf("expected trimmed dish name, got %q", recipe.DishName)
	}
	if !reflect.DeepEqual(recipe.Ingredients, []string{"bread", "butter"}) {
		t.Fatalf("unexpected ingredients: %v", recipe.Ingredients)
	}
}

func TestGetIsOwnerScoped(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	recipe, err := svc.Create(ctx, "owner-1", Recipe{DishName: "Toast", Ingredients: []string{"bread"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(ctx, "owner-1", recipe.ID); err != nil {
		t.Fatalf("Get as owner: %v", err)
	}
	if _, err := svc.Get(ctx, "owner-2", recipe.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get as stranger: expected ErrNotFound, got %v", err)
	}
}

func TestResolveIngredientsKeepsRequestedOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, "owner-1", Recipe{DishName: "Toast", Ingredients: []string{"bread", "butter"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(ctx, "owner-1", Recipe{DishName: "Salad", Ingredients: []string{"lettuce"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	resolved, err := svc.ResolveIngredients(ctx, "owner-1", []string{second.ID, "ghost", first.ID})
	if err != nil {
		t.Fatalf("ResolveIngredients: %v", err)
	}
	if len(resolved) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(resolved))
	}
	if resolved[0].DishName != "Salad" || resolved[2].DishName != "Toast" {
		t.Fatalf("expected request order preserved, got %+v", resolved)
	}
	if resolved[1].ID != "ghost" || len(resolved[1].Ingredients) != 0 {
		t.Fatalf("expected unknown id to yield an empty entry, got %+v", resolved[1])
	}
}

func TestResolveIngredientsIgnoresOtherOwners(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	recipe, err := svc.Create(ctx, "owner-1", Recipe{DishName: "Toast", Ingredients: []string{"bread"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	resolved, err := svc.ResolveIngredients(ctx, "owner-2", []string{recipe.ID})
	if err != nil {
		t.Fatalf("ResolveIngredients: %v", err)
	}
	if len(resolved) != 1 || len(resolved[0].Ingredients) != 0 {
		t.Fatalf("expected foreign recipe to resolve empty, got %+v", resolved)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	recipe, err := svc.Create(ctx, "owner-1", Recipe{DishName: "Toast", Ingredients: []string{"bread"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, "owner-1", recipe.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, "owner-1", recipe.ID); err != nil {
		t.Fatalf("Delete again: %v", err)
	}
	if _, err := svc.Get(ctx, "owner-1", recipe.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := svc.Create(ctx, "owner-1", Recipe{DishName: name, Ingredients: []string{"x"}}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	listed, err := svc.List(ctx, "owner-1", 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected limit applied, got %d recipes", len(listed))
	}
}
