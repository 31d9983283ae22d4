package galleries

import (
	"errors"
	"testing"
)

func draftItems(titles ...string) []ItemDraft {
	items := make([]ItemDraft, 0, len(titles))
	for _, title := range titles {
		items = append(items, ItemDraft{Title: title, Media: StoredMedia("https://cdn.example.com/" + title + ".jpg")})
	}
	return Renumber(items)
}

func assertOrder(t *testing.T, items []ItemDraft, titles ...string) {
	t.Helper()
	if len(items) != len(titles) {
		t.Fatalf("expected %d items, got %d", len(titles), len(items))
	}
	for i, title := range titles {
		if items[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, items[i].Title)
		}
		if items[i].SortOrder != i+1 {
			t.Fatalf("position %d: expected sort order %d, got %d", i, i+1, items[i].SortOrder)
		}
	}
}

func TestRenumberAssignsDenseOrders(t *testing.T) {
	items := []ItemDraft{
		{Title: "a", SortOrder: 7},
		{Title: "b", SortOrder: 0},
		{Title: "c", SortOrder: 3},
	}
	Renumber(items)
	assertOrder(t, items, "a", "b", "c")
}

func TestRenumberIsIdempotent(t *testing.T) {
	items := draftItems("a", "b", "c")
	Renumber(items)
	Renumber(items)
	assertOrder(t, items, "a", "b", "c")
}

func TestAppendItemRenumbers(t *testing.T) {
	items := draftItems("a", "b")
	items = AppendItem(items, ItemDraft{Title: "c"})
	assertOrder(t, items, "a", "b", "c")
}

func TestRemoveItemClosesGap(t *testing.T) {
	items := draftItems("a", "b", "c")
	items, err := RemoveItem(items, 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	assertOrder(t, items, "a", "c")
}

func TestRemoveItemRejectsBadIndex(t *testing.T) {
	items := draftItems("a")
	if _, err := RemoveItem(items, 3); !errors.Is(err, ErrItemIndexInvalid) {
		t.Fatalf("expected ErrItemIndexInvalid, got %v", err)
	}
	if _, err := RemoveItem(items, -1); !errors.Is(err, ErrItemIndexInvalid) {
		t.Fatalf("expected ErrItemIndexInvalid, got %v", err)
	}
}

func TestMoveItemSwapsWithNeighbor(t *testing.T) {
	items := draftItems("a", "b", "c")

	items, err := MoveItem(items, 2, MoveUp)
	if err != nil {
		t.Fatalf("move up: %v", err)
	}
	assertOrder(t, items, "a", "c", "b")

	items, err = MoveItem(items, 0, MoveDown)
	if err != nil {
		t.Fatalf("move down: %v", err)
	}
	assertOrder(t, items, "c", "a", "b")
}

func TestMoveItemBoundaryIsNoOp(t *testing.T) {
	items := draftItems("a", "b")

	items, err := MoveItem(items, 0, MoveUp)
	if err != nil {
		t.Fatalf("move first up: %v", err)
	}
	assertOrder(t, items, "a", "b")

	items, err = MoveItem(items, 1, MoveDown)
	if err != nil {
		t.Fatalf("move last down: %v", err)
	}
	assertOrder(t, items, "a", "b")
}

func TestMoveItemRejectsBadIndex(t *testing.T) {
	items := draftItems("a", "b")
	if _, err := MoveItem(items, 5, MoveUp); !errors.Is(err, ErrItemIndexInvalid) {
		t.Fatalf("expected ErrItemIndexInvalid, got %v", err)
	}
}
