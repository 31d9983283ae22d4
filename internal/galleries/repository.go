package galleries

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewGalleryRepository creates a repository for Gallery entities.
func NewGalleryRepository(db *bun.DB) repository.Repository[*Gallery] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Gallery]{
		NewRecord: func() *Gallery { return &Gallery{} },
		GetID: func(g *Gallery) uuid.UUID {
			return g.ID
		},
		SetID: func(g *Gallery, id uuid.UUID) {
			g.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(g *Gallery) string {
			return g.Slug
		},
	})
}

// NewGalleryItemRepository creates a repository for GalleryItem entities.
func NewGalleryItemRepository(db *bun.DB) repository.Repository[*GalleryItem] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*GalleryItem]{
		NewRecord: func() *GalleryItem { return &GalleryItem{} },
		GetID: func(item *GalleryItem) uuid.UUID {
			return item.ID
		},
		SetID: func(item *GalleryItem, id uuid.UUID) {
			item.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(item *GalleryItem) string {
			return item.ID.String()
		},
	})
}
