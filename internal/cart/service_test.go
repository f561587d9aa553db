package cart

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"recipebox-backend/internal/shoppinglist"
)

type staticNames struct {
	name string
}

func (s staticNames) DisplayName(ctx context.Context, ownerID string) string {
	return s.name
}

func sampleList() shoppinglist.ShoppingListResponse {
	return shoppinglist.ShoppingListResponse{
		Sections: []shoppinglist.ShoppingSection{
			{Name: "Produce", Ingredients: []string{"tomato", "basil"}},
			{Name: "Dairy & Eggs", Ingredients: []string{"milk"}},
		},
		TotalRecipes:           2,
		RecipesWithIngredients: 2,
	}
}

func TestSaveRequiresRecipeIDs(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	_, err := svc.Save(context.Background(), "owner-1", []string{" ", ""}, sampleList(), nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSaveReplacesCartAndResetsToken(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	first, err := svc.Save(ctx, "owner-1", []string{"r1", "r2"}, sampleList(), nil)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	token, err := svc.Share(ctx, "owner-1")
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty share token")
	}

	second, err := svc.Save(ctx, "owner-1", []string{"r3"}, sampleList(), nil)
	if err != nil {
		t.Fatalf("Save again: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("expected a fresh cart id on replace")
	}
	if second.ShareToken != "" {
		t.Fatalf("expected share token reset on replace, got %q", second.ShareToken)
	}

	if _, err := svc.ReadShared(ctx, token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected old token dead after replace, got %v", err)
	}
}

func TestShareIsIdempotent(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, err := svc.Save(ctx, "owner-1", []string{"r1"}, sampleList(), nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	first, err := svc.Share(ctx, "owner-1")
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	second, err := svc.Share(ctx, "owner-1")
	if err != nil {
		t.Fatalf("Share again: %v", err)
	}
	if first != second {
		t.Fatalf("expected same token on re-share, got %q then %q", first, second)
	}
}

func TestUnshareThenReshareMintsNewToken(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, err := svc.Save(ctx, "owner-1", []string{"r1"}, sampleList(), nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	first, err := svc.Share(ctx, "owner-1")
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	if err := svc.Unshare(ctx, "owner-1"); err != nil {
		t.Fatalf("Unshare: %v", err)
	}
	if _, err := svc.ReadShared(ctx, first); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected revoked token dead, got %v", err)
	}

	second, err := svc.Share(ctx, "owner-1")
	if err != nil {
		t.Fatalf("Share after unshare: %v", err)
	}
	if second == first {
		t.Fatal("expected a different token after unshare")
	}
}

func TestShareWithoutCart(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	if _, err := svc.Share(context.Background(), "owner-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUnshareWithoutCartIsNoOp(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	if err := svc.Unshare(context.Background(), "owner-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestReadSharedResolvesOwnerName(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Names: staticNames{name: "Alex"}}
	ctx := context.Background()

	if _, err := svc.Save(ctx, "owner-1", []string{"r1"}, sampleList(), []string{"0-1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	token, err := svc.Share(ctx, "owner-1")
	if err != nil {
		t.Fatalf("Share: %v", err)
	}

	shared, err := svc.ReadShared(ctx, token)
	if err != nil {
		t.Fatalf("ReadShared: %v", err)
	}
	if shared.OwnerName != "Alex" {
		t.Fatalf("expected owner name Alex, got %q", shared.OwnerName)
	}
	if !reflect.DeepEqual(shared.CheckedItems, []string{"0-1"}) {
		t.Fatalf("unexpected checked items: %v", shared.CheckedItems)
	}
	if len(shared.ShoppingList.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(shared.ShoppingList.Sections))
	}
}

func TestReadSharedFallsBackToGenericName(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, err := svc.Save(ctx, "guest:abc", []string{"r1"}, sampleList(), nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	token, err := svc.Share(ctx, "guest:abc")
	if err != nil {
		t.Fatalf("Share: %v", err)
	}

	shared, err := svc.ReadShared(ctx, token)
	if err != nil {
		t.Fatalf("ReadShared: %v", err)
	}
	if shared.OwnerName != "Someone" {
		t.Fatalf("expected fallback owner name, got %q", shared.OwnerName)
	}
}

func TestUpdateSharedWritesThroughToOwnerCart(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, err := svc.Save(ctx, "owner-1", []string{"r1"}, sampleList(), nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	token, err := svc.Share(ctx, "owner-1")
	if err != nil {
		t.Fatalf("Share: %v", err)
	}

	if err := svc.UpdateShared(ctx, token, []string{"1-0", "0-0"}); err != nil {
		t.Fatalf("UpdateShared: %v", err)
	}

	owned, err := svc.Get(ctx, "owner-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(owned.CheckedItems, []string{"0-0", "1-0"}) {
		t.Fatalf("expected owner cart to see shared edits, got %v", owned.CheckedItems)
	}
}

func TestUpdateCheckedItemsDropsOrphanKeys(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, err := svc.Save(ctx, "owner-1", []string{"r1"}, sampleList(), nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	updated, err := svc.UpdateCheckedItems(ctx, "owner-1", []string{
		"0-0",
		"0-0",    // duplicate
		"5-0",    // section out of range
		"0-9",    // ingredient out of range
		"-1-0",   // negative index
		"bogus",  // malformed
		" 1-0 ",  // needs trimming
		"0-1x",   // trailing garbage
	})
	if err != nil {
		t.Fatalf("UpdateCheckedItems: %v", err)
	}
	if !reflect.DeepEqual(updated.CheckedItems, []string{"0-0", "1-0"}) {
		t.Fatalf("unexpected checked items: %v", updated.CheckedItems)
	}
}

func TestUpdateCheckedItemsLeavesSnapshotUntouched(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	saved, err := svc.Save(ctx, "owner-1", []string{"r1"}, sampleList(), nil)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := svc.UpdateCheckedItems(ctx, "owner-1", []string{"0-0"}); err != nil {
		t.Fatalf("UpdateCheckedItems: %v", err)
	}

	after, err := svc.Get(ctx, "owner-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(after.ShoppingList, saved.ShoppingList) {
		t.Fatal("expected shopping list snapshot unchanged")
	}
	if after.ID != saved.ID || !after.CreatedAt.Equal(saved.CreatedAt) {
		t.Fatal("expected cart identity unchanged")
	}
}

func TestUpdateCheckedItemsWithoutCart(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	if _, err := svc.UpdateCheckedItems(context.Background(), "owner-1", []string{"0-0"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if err := svc.Delete(ctx, "owner-1"); err != nil {
		t.Fatalf("Delete absent cart: %v", err)
	}
	if _, err := svc.Save(ctx, "owner-1", []string{"r1"}, sampleList(), nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := svc.Delete(ctx, "owner-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, "owner-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
