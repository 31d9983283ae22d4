package galleries

import (
	"strings"
	"testing"
)

func TestValidateItemAcceptsMinimalItem(t *testing.T) {
	item := ItemDraft{Media: StoredMedia("https://cdn.example.com/ring.jpg")}
	if errs := ValidateItem(item); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateItemRequiresMedia(t *testing.T) {
	item := ItemDraft{Title: "Solitaire", Media: EmptyMedia()}
	errs := ValidateItem(item)
	if errs == nil {
		t.Fatal("expected errors")
	}
	if _, ok := errs["media"]; !ok {
		t.Fatalf("expected media error, got %v", errs)
	}
}

func TestValidateItemEnforcesLengthCaps(t *testing.T) {
	item := ItemDraft{
		Title:       strings.Repeat("x", MaxItemTitleLen+1),
		Description: strings.Repeat("y", MaxItemDescriptionLen+1),
		Media:       StoredMedia("https://cdn.example.com/ring.jpg"),
	}
	errs := ValidateItem(item)
	if _, ok := errs["title"]; !ok {
		t.Fatalf("expected title error, got %v", errs)
	}
	if _, ok := errs["description"]; !ok {
		t.Fatalf("expected description error, got %v", errs)
	}
}

func TestValidateItemBoundaryLengthsPass(t *testing.T) {
	item := ItemDraft{
		Title:       strings.Repeat("x", MaxItemTitleLen),
		Description: strings.Repeat("y", MaxItemDescriptionLen),
		Media:       StoredMedia("https://cdn.example.com/ring.jpg"),
	}
	if errs := ValidateItem(item); errs != nil {
		t.Fatalf("expected no errors at the cap, got %v", errs)
	}
}

func TestValidateGalleryRequiresParentFields(t *testing.T) {
	result := ValidateGallery(GalleryDraft{
		SortOrder: -1,
		Items:     draftItems("a"),
	})
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	for _, path := range []string{"title", "subtitle", "sort_order"} {
		if _, ok := result.Errors[path]; !ok {
			t.Fatalf("expected %s error, got %v", path, result.Errors)
		}
	}
}

func TestValidateGalleryRequiresACompleteItem(t *testing.T) {
	result := ValidateGallery(GalleryDraft{
		Title:    "Rings",
		Subtitle: "Engagement rings",
		Items: []ItemDraft{
			{Title: "placeholder", Media: EmptyMedia()},
		},
	})
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if _, ok := result.Errors["items"]; !ok {
		t.Fatalf("expected items error, got %v", result.Errors)
	}
}

func TestValidateGalleryIgnoresIncompletePlaceholders(t *testing.T) {
	result := ValidateGallery(GalleryDraft{
		Title:    "Rings",
		Subtitle: "Engagement rings",
		Items: []ItemDraft{
			{Media: StoredMedia("https://cdn.example.com/a.jpg")},
			{Title: "scaffold for later", Media: EmptyMedia()},
		},
	})
	if !result.Valid {
		t.Fatalf("placeholders must not block submission, got %v", result.Errors)
	}
}

func TestValidateGalleryKeysItemErrorsByIndex(t *testing.T) {
	result := ValidateGallery(GalleryDraft{
		Title:    "Rings",
		Subtitle: "Engagement rings",
		Items: []ItemDraft{
			{
				Title: strings.Repeat("x", MaxItemTitleLen+1),
				Media: StoredMedia("https://cdn.example.com/a.jpg"),
			},
		},
	})
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if _, ok := result.Errors["items.0.title"]; !ok {
		t.Fatalf("expected items.0.title error, got %v", result.Errors)
	}
}

func TestCompleteItemsFiltersByMediaOnly(t *testing.T) {
	items := []ItemDraft{
		{Media: StoredMedia("https://cdn.example.com/a.jpg")},
		{Title: "no media yet", Media: EmptyMedia()},
		{Media: PendingMedia(&LocalFile{Name: "b.jpg", Data: []byte("jpeg")})},
	}
	complete := CompleteItems(items)
	if len(complete) != 2 {
		t.Fatalf("expected 2 complete items, got %d", len(complete))
	}
}
