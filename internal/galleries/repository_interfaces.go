package galleries

import (
	"context"

	"github.com/google/uuid"
)

// GalleryRepository exposes persistence operations for galleries and their
// item collections. Saving items is a whole-collection replace: the caller
// resubmits the desired state and the repository reconciles the stored rows.
type GalleryRepository interface {
	Create(ctx context.Context, gallery *Gallery) (*Gallery, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Gallery, error)
	GetBySlug(ctx context.Context, slug string) (*Gallery, error)
	List(ctx context.Context) ([]*Gallery, error)
	Update(ctx context.Context, gallery *Gallery) (*Gallery, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceItems(ctx context.Context, galleryID uuid.UUID, items []*GalleryItem) ([]*GalleryItem, error)
}
