package galleries

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryGalleryRepository constructs an in-memory repository, used by
// tests and by embedded setups that do not need durable storage.
func NewMemoryGalleryRepository() GalleryRepository {
	return &memoryGalleryRepository{
		byID:   make(map[uuid.UUID]*Gallery),
		bySlug: make(map[string]uuid.UUID),
		items:  make(map[uuid.UUID][]*GalleryItem),
	}
}

type memoryGalleryRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*Gallery
	bySlug map[string]uuid.UUID
	items  map[uuid.UUID][]*GalleryItem
}

func (m *memoryGalleryRepository) Create(_ context.Context, gallery *Gallery) (*Gallery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneGallery(gallery)
	m.byID[cloned.ID] = cloned
	if cloned.Slug != "" {
		m.bySlug[cloned.Slug] = cloned.ID
	}
	if len(cloned.Items) > 0 {
		for _, item := range cloned.Items {
			item.GalleryID = cloned.ID
		}
		m.items[cloned.ID] = cloned.Items
	}
	return m.withItems(cloned), nil
}

func (m *memoryGalleryRepository) GetByID(_ context.Context, id uuid.UUID) (*Gallery, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "gallery", Key: id.String()}
	}
	return m.withItems(record), nil
}

func (m *memoryGalleryRepository) GetBySlug(_ context.Context, slug string) (*Gallery, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.bySlug[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "gallery", Key: slug}
	}
	return m.withItems(m.byID[id]), nil
}

func (m *memoryGalleryRepository) List(_ context.Context) ([]*Gallery, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	galleries := make([]*Gallery, 0, len(m.byID))
	for _, record := range m.byID {
		galleries = append(galleries, m.withItems(record))
	}
	sort.Slice(galleries, func(i, j int) bool {
		if galleries[i].SortOrder != galleries[j].SortOrder {
			return galleries[i].SortOrder < galleries[j].SortOrder
		}
		return galleries[i].Title < galleries[j].Title
	})
	return galleries, nil
}

func (m *memoryGalleryRepository) Update(_ context.Context, gallery *Gallery) (*Gallery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[gallery.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "gallery", Key: gallery.ID.String()}
	}
	if existing.Slug != "" {
		delete(m.bySlug, existing.Slug)
	}

	cloned := cloneGallery(gallery)
	cloned.Items = nil
	m.byID[cloned.ID] = cloned
	if cloned.Slug != "" {
		m.bySlug[cloned.Slug] = cloned.ID
	}
	return m.withItems(cloned), nil
}

func (m *memoryGalleryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.byID[id]
	if !ok {
		return &NotFoundError{Resource: "gallery", Key: id.String()}
	}
	if record.Slug != "" {
		delete(m.bySlug, record.Slug)
	}
	delete(m.byID, id)
	delete(m.items, id)
	return nil
}

func (m *memoryGalleryRepository) ReplaceItems(_ context.Context, galleryID uuid.UUID, items []*GalleryItem) ([]*GalleryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[galleryID]; !ok {
		return nil, &NotFoundError{Resource: "gallery", Key: galleryID.String()}
	}

	replaced := make([]*GalleryItem, 0, len(items))
	for _, item := range items {
		cloned := cloneItem(item)
		cloned.GalleryID = galleryID
		replaced = append(replaced, cloned)
	}
	m.items[galleryID] = replaced

	out := make([]*GalleryItem, 0, len(replaced))
	for _, item := range replaced {
		out = append(out, cloneItem(item))
	}
	return out, nil
}

// withItems attaches cloned item rows ordered by sort order. Callers must
// hold at least a read lock.
func (m *memoryGalleryRepository) withItems(record *Gallery) *Gallery {
	cloned := cloneGallery(record)
	stored := m.items[record.ID]
	cloned.Items = make([]*GalleryItem, 0, len(stored))
	for _, item := range stored {
		cloned.Items = append(cloned.Items, cloneItem(item))
	}
	sort.Slice(cloned.Items, func(i, j int) bool {
		return cloned.Items[i].SortOrder < cloned.Items[j].SortOrder
	})
	return cloned
}

func cloneGallery(gallery *Gallery) *Gallery {
	if gallery == nil {
		return nil
	}
	cloned := *gallery
	if gallery.DeletedAt != nil {
		deleted := *gallery.DeletedAt
		cloned.DeletedAt = &deleted
	}
	cloned.Items = make([]*GalleryItem, 0, len(gallery.Items))
	for _, item := range gallery.Items {
		cloned.Items = append(cloned.Items, cloneItem(item))
	}
	return &cloned
}

func cloneItem(item *GalleryItem) *GalleryItem {
	if item == nil {
		return nil
	}
	cloned := *item
	if item.Title != nil {
		title := *item.Title
		cloned.Title = &title
	}
	if item.Description != nil {
		description := *item.Description
		cloned.Description = &description
	}
	return &cloned
}
