package galleries

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func seedGallery(t *testing.T, repo GalleryRepository) *Gallery {
	t.Helper()
	title := "Solitaire"
	created, err := repo.Create(context.Background(), &Gallery{
		ID:       uuid.New(),
		Title:    "Rings",
		Subtitle: "Engagement rings",
		Slug:     "rings",
		IsActive: true,
		Items: []*GalleryItem{
			{ID: uuid.New(), Title: &title, ImageURL: "https://cdn.example.com/a.jpg", SortOrder: 1, IsActive: true},
		},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return created
}

func TestMemoryRepositoryLinksItemsOnCreate(t *testing.T) {
	repo := NewMemoryGalleryRepository()
	created := seedGallery(t, repo)
	if len(created.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(created.Items))
	}
	if created.Items[0].GalleryID != created.ID {
		t.Fatal("item not linked to its gallery")
	}
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryGalleryRepository()
	created := seedGallery(t, repo)

	created.Title = "mutated"
	created.Items[0].ImageURL = "mutated"

	stored, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Title != "Rings" {
		t.Fatal("caller mutation leaked into the store")
	}
	if stored.Items[0].ImageURL != "https://cdn.example.com/a.jpg" {
		t.Fatal("caller item mutation leaked into the store")
	}
}

func TestMemoryRepositoryReplaceItems(t *testing.T) {
	repo := NewMemoryGalleryRepository()
	created := seedGallery(t, repo)

	replaced, err := repo.ReplaceItems(context.Background(), created.ID, []*GalleryItem{
		{ID: uuid.New(), ImageURL: "https://cdn.example.com/b.jpg", SortOrder: 1, IsActive: true},
		{ID: uuid.New(), ImageURL: "https://cdn.example.com/c.jpg", SortOrder: 2, IsActive: true},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if len(replaced) != 2 {
		t.Fatalf("expected 2 items, got %d", len(replaced))
	}

	stored, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(stored.Items) != 2 {
		t.Fatalf("old rows survived the replace, got %d items", len(stored.Items))
	}
	if stored.Items[0].ImageURL != "https://cdn.example.com/b.jpg" {
		t.Fatalf("unexpected first item %q", stored.Items[0].ImageURL)
	}
}

func TestMemoryRepositoryUpdateRekeysSlug(t *testing.T) {
	repo := NewMemoryGalleryRepository()
	created := seedGallery(t, repo)

	created.Slug = "wedding-rings"
	if _, err := repo.Update(context.Background(), created); err != nil {
		t.Fatalf("update: %v", err)
	}

	if _, err := repo.GetBySlug(context.Background(), "wedding-rings"); err != nil {
		t.Fatalf("new slug not found: %v", err)
	}
	var notFound *NotFoundError
	if _, err := repo.GetBySlug(context.Background(), "rings"); !errors.As(err, &notFound) {
		t.Fatalf("old slug should be gone, got %v", err)
	}
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryGalleryRepository()
	created := seedGallery(t, repo)

	if err := repo.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var notFound *NotFoundError
	if _, err := repo.GetByID(context.Background(), created.ID); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err := repo.Delete(context.Background(), created.ID); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError on second delete, got %v", err)
	}
}
