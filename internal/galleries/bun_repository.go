package galleries

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunGalleryRepository implements GalleryRepository on top of bun with
// optional read caching for the gallery records.
type BunGalleryRepository struct {
	db        *bun.DB
	galleries repository.Repository[*Gallery]
	items     repository.Repository[*GalleryItem]
}

// NewBunGalleryRepository creates a gallery repository without caching.
func NewBunGalleryRepository(db *bun.DB) *BunGalleryRepository {
	return NewBunGalleryRepositoryWithCache(db, nil, nil)
}

// NewBunGalleryRepositoryWithCache creates a gallery repository with caching services.
func NewBunGalleryRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunGalleryRepository {
	base := NewGalleryRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunGalleryRepository{
		db:        db,
		galleries: base,
		items:     NewGalleryItemRepository(db),
	}
}

func (r *BunGalleryRepository) Create(ctx context.Context, gallery *Gallery) (*Gallery, error) {
	record, err := r.galleries.Create(ctx, gallery)
	if err != nil {
		return nil, fmt.Errorf("gallery repository error: %w", err)
	}
	if len(gallery.Items) > 0 {
		items, err := r.ReplaceItems(ctx, record.ID, gallery.Items)
		if err != nil {
			return nil, err
		}
		record.Items = items
	}
	return record, nil
}

func (r *BunGalleryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Gallery, error) {
	record, err := r.galleries.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "gallery", id.String())
	}
	if err := r.attachItems(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunGalleryRepository) GetBySlug(ctx context.Context, slug string) (*Gallery, error) {
	records, _, err := r.galleries.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", slug)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "gallery", slug)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "gallery", Key: slug}
	}
	if err := r.attachItems(ctx, records[0]); err != nil {
		return nil, err
	}
	return records[0], nil
}

func (r *BunGalleryRepository) List(ctx context.Context) ([]*Gallery, error) {
	records, _, err := r.galleries.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("sort_order ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("gallery repository error: %w", err)
	}
	for _, record := range records {
		if err := r.attachItems(ctx, record); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (r *BunGalleryRepository) Update(ctx context.Context, gallery *Gallery) (*Gallery, error) {
	updated, err := r.galleries.Update(ctx, gallery,
		repository.UpdateByID(gallery.ID.String()),
		repository.UpdateColumns(
			"title",
			"subtitle",
			"slug",
			"is_active",
			"sort_order",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "gallery", gallery.ID.String())
	}
	return updated, nil
}

func (r *BunGalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.NewDelete().
		Model((*GalleryItem)(nil)).
		Where("gallery_id = ?", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("gallery repository error: %w", err)
	}
	return r.galleries.Delete(ctx, &Gallery{ID: id})
}

// ReplaceItems swaps the stored item rows for the gallery with the supplied
// desired state in one transaction. The collection arrives renumbered; no
// per-row diffing is attempted.
func (r *BunGalleryRepository) ReplaceItems(ctx context.Context, galleryID uuid.UUID, items []*GalleryItem) ([]*GalleryItem, error) {
	rows := make([]*GalleryItem, 0, len(items))
	for _, item := range items {
		cloned := *item
		cloned.GalleryID = galleryID
		if cloned.ID == uuid.Nil {
			cloned.ID = uuid.New()
		}
		rows = append(rows, &cloned)
	}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*GalleryItem)(nil)).
			Where("gallery_id = ?", galleryID).
			Exec(ctx); err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		_, err := tx.NewInsert().Model(&rows).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gallery item repository error: %w", err)
	}
	return rows, nil
}

func (r *BunGalleryRepository) attachItems(ctx context.Context, record *Gallery) error {
	if record == nil {
		return nil
	}
	items, _, err := r.items.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.gallery_id = ?", record.ID).Order("sort_order ASC")
		}),
	)
	if err != nil {
		return fmt.Errorf("gallery item repository error: %w", err)
	}
	record.Items = items
	return nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}

	return fmt.Errorf("%s repository error: %w", resource, err)
}
