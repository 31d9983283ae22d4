package galleries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func seedInput() CreateGalleryInput {
	return CreateGalleryInput{
		Title:    "Summer Collection",
		Subtitle: "New arrivals",
		IsActive: true,
		Items: []ItemPayload{
			{ImageURL: "https://cdn.example.com/a.jpg", SortOrder: 1, IsActive: true},
			{ImageURL: "https://cdn.example.com/b.jpg", SortOrder: 2, IsActive: true},
		},
	}
}

func TestServiceCreateNormalizesSlug(t *testing.T) {
	svc := NewService(NewMemoryGalleryRepository(), WithClock(fixedClock))
	created, err := svc.Create(context.Background(), seedInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "summer-collection" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}
	if created.ID == uuid.Nil {
		t.Fatal("missing id")
	}
	if !created.CreatedAt.Equal(fixedClock()) {
		t.Fatalf("unexpected created_at %v", created.CreatedAt)
	}
}

func TestServiceCreateRenumbersItems(t *testing.T) {
	svc := NewService(NewMemoryGalleryRepository())
	input := seedInput()
	input.Items[0].SortOrder = 10
	input.Items[1].SortOrder = 3

	created, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for i, item := range created.Items {
		if item.SortOrder != i+1 {
			t.Fatalf("item %d: expected sort order %d, got %d", i, i+1, item.SortOrder)
		}
		if item.GalleryID != created.ID {
			t.Fatalf("item %d not linked to gallery", i)
		}
	}
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryGalleryRepository())
	ctx := context.Background()

	input := seedInput()
	input.Title = "   "
	if _, err := svc.Create(ctx, input); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}

	input = seedInput()
	input.Subtitle = ""
	if _, err := svc.Create(ctx, input); !errors.Is(err, ErrSubtitleRequired) {
		t.Fatalf("expected ErrSubtitleRequired, got %v", err)
	}

	input = seedInput()
	input.SortOrder = -2
	if _, err := svc.Create(ctx, input); !errors.Is(err, ErrSortOrderInvalid) {
		t.Fatalf("expected ErrSortOrderInvalid, got %v", err)
	}

	input = seedInput()
	input.Items = []ItemPayload{{ImageURL: "   "}}
	if _, err := svc.Create(ctx, input); !errors.Is(err, ErrInsufficientItems) {
		t.Fatalf("expected ErrInsufficientItems, got %v", err)
	}
}

func TestServiceGetBySlug(t *testing.T) {
	svc := NewService(NewMemoryGalleryRepository())
	created, err := svc.Create(context.Background(), seedInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	found, err := svc.GetBySlug(context.Background(), " summer-collection ")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected %s, got %s", created.ID, found.ID)
	}
}

func TestServiceUpdateReplacesItemsWholesale(t *testing.T) {
	svc := NewService(NewMemoryGalleryRepository())
	created, err := svc.Create(context.Background(), seedInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, UpdateGalleryInput{
		Title:    "Summer Collection",
		Subtitle: "Refreshed",
		IsActive: true,
		Items: []ItemPayload{
			{ImageURL: "https://cdn.example.com/c.jpg", SortOrder: 1, IsActive: true},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Subtitle != "Refreshed" {
		t.Fatalf("unexpected subtitle %q", updated.Subtitle)
	}
	if len(updated.Items) != 1 {
		t.Fatalf("expected wholesale replacement, got %d items", len(updated.Items))
	}
	if updated.Items[0].ImageURL != "https://cdn.example.com/c.jpg" {
		t.Fatalf("unexpected item %q", updated.Items[0].ImageURL)
	}
}

func TestServiceUpdateUnknownGallery(t *testing.T) {
	svc := NewService(NewMemoryGalleryRepository())
	_, err := svc.Update(context.Background(), uuid.New(), UpdateGalleryInput{
		Title:    "x",
		Subtitle: "y",
		Items:    []ItemPayload{{ImageURL: "https://cdn.example.com/a.jpg"}},
	})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestServiceToggleActive(t *testing.T) {
	svc := NewService(NewMemoryGalleryRepository())
	created, err := svc.Create(context.Background(), seedInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	toggled, err := svc.ToggleActive(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.IsActive {
		t.Fatal("expected gallery to deactivate")
	}
	toggled, err = svc.ToggleActive(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if !toggled.IsActive {
		t.Fatal("expected gallery to reactivate")
	}
}

func TestServiceDelete(t *testing.T) {
	svc := NewService(NewMemoryGalleryRepository())
	created, err := svc.Create(context.Background(), seedInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); err == nil {
		t.Fatal("expected lookup to fail after delete")
	}
	if err := svc.Delete(context.Background(), uuid.Nil); !errors.Is(err, ErrGalleryIDRequired) {
		t.Fatalf("expected ErrGalleryIDRequired, got %v", err)
	}
}

func TestServiceListSortsBySortOrder(t *testing.T) {
	svc := NewService(NewMemoryGalleryRepository())
	ctx := context.Background()

	second := seedInput()
	second.Title = "Second"
	second.SortOrder = 2
	first := seedInput()
	first.Title = "First"
	first.SortOrder = 1

	if _, err := svc.Create(ctx, second); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[0].Title != "First" {
		t.Fatalf("unexpected order: %v, %v", listed[0].Title, listed[1].Title)
	}
}

func TestReconcileListReplacesOrAppends(t *testing.T) {
	a := &Gallery{ID: uuid.New(), Title: "a"}
	b := &Gallery{ID: uuid.New(), Title: "b"}
	list := []*Gallery{a, b}

	updated := &Gallery{ID: a.ID, Title: "a2"}
	out := ReconcileList(list, updated)
	if out[0].Title != "a2" {
		t.Fatalf("expected replacement, got %q", out[0].Title)
	}
	if list[0].Title != "a" {
		t.Fatal("input list mutated")
	}

	fresh := &Gallery{ID: uuid.New(), Title: "c"}
	out = ReconcileList(list, fresh)
	if len(out) != 3 || out[2].Title != "c" {
		t.Fatalf("expected append, got %v", out)
	}
}
