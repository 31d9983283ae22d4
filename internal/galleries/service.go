package galleries

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/velora/jewelcms/internal/logging"
	"github.com/velora/jewelcms/pkg/interfaces"
)

// Service exposes gallery management for the admin API: the server side of
// the persistence contract the editor submits resolved payloads to.
type Service interface {
	Create(ctx context.Context, input CreateGalleryInput) (*Gallery, error)
	Get(ctx context.Context, id uuid.UUID) (*Gallery, error)
	GetBySlug(ctx context.Context, slug string) (*Gallery, error)
	List(ctx context.Context) ([]*Gallery, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateGalleryInput) (*Gallery, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleActive(ctx context.Context, id uuid.UUID) (*Gallery, error)
}

// CreateGalleryInput carries the resolved desired state for a new gallery.
// Items arrive fully resolved: every one references stored media.
type CreateGalleryInput struct {
	Title     string
	Subtitle  string
	IsActive  bool
	SortOrder int
	Items     []ItemPayload
}

// UpdateGalleryInput carries the resolved desired state for an existing
// gallery. The item collection replaces what is stored wholesale.
type UpdateGalleryInput struct {
	Title     string
	Subtitle  string
	IsActive  bool
	SortOrder int
	Items     []ItemPayload
}

// IDGenerator produces ids for new records.
type IDGenerator func() uuid.UUID

// ServiceOption customises the gallery service.
type ServiceOption func(*service)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a structured logger to service operations.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo   GalleryRepository
	now    func() time.Time
	id     IDGenerator
	logger interfaces.Logger
}

// NewService constructs a gallery service over the provided repository.
func NewService(repo GalleryRepository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *service) Create(ctx context.Context, input CreateGalleryInput) (*Gallery, error) {
	if err := validatePayloadInput(input.Title, input.Subtitle, input.SortOrder, input.Items); err != nil {
		return nil, err
	}

	normalized, err := slug.Normalize(input.Title)
	if err != nil || normalized == "" {
		normalized = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(input.Title), " ", "-"))
	}

	now := s.now().UTC()
	gallery := &Gallery{
		ID:        s.id(),
		Title:     strings.TrimSpace(input.Title),
		Subtitle:  strings.TrimSpace(input.Subtitle),
		Slug:      normalized,
		IsActive:  input.IsActive,
		SortOrder: input.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
		Items:     s.itemRows(uuid.Nil, input.Items, now),
	}

	created, err := s.repo.Create(ctx, gallery)
	if err != nil {
		return nil, err
	}

	logging.WithFields(s.logger, map[string]any{
		"operation":  "galleries.create",
		"gallery_id": created.ID.String(),
		"items":      len(created.Items),
	}).Info("galleries.created")
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Gallery, error) {
	if id == uuid.Nil {
		return nil, ErrGalleryIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slugValue string) (*Gallery, error) {
	return s.repo.GetBySlug(ctx, strings.TrimSpace(slugValue))
}

func (s *service) List(ctx context.Context) ([]*Gallery, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateGalleryInput) (*Gallery, error) {
	if id == uuid.Nil {
		return nil, ErrGalleryIDRequired
	}
	if err := validatePayloadInput(input.Title, input.Subtitle, input.SortOrder, input.Items); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	existing.Title = strings.TrimSpace(input.Title)
	existing.Subtitle = strings.TrimSpace(input.Subtitle)
	existing.IsActive = input.IsActive
	existing.SortOrder = input.SortOrder
	existing.UpdatedAt = now

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ReplaceItems(ctx, id, s.itemRows(id, input.Items, now))
	if err != nil {
		return nil, err
	}
	updated.Items = items

	logging.WithFields(s.logger, map[string]any{
		"operation":  "galleries.update",
		"gallery_id": id.String(),
		"items":      len(items),
	}).Info("galleries.updated")
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrGalleryIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logging.WithFields(s.logger, map[string]any{
		"operation":  "galleries.delete",
		"gallery_id": id.String(),
	}).Info("galleries.deleted")
	return nil
}

func (s *service) ToggleActive(ctx context.Context, id uuid.UUID) (*Gallery, error) {
	if id == uuid.Nil {
		return nil, ErrGalleryIDRequired
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.IsActive = !existing.IsActive
	existing.UpdatedAt = s.now().UTC()
	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	updated.Items = existing.Items
	return updated, nil
}

// itemRows converts payload items to rows, renumbering defensively so the
// stored collection is always dense and 1-based even if a client sent gaps.
func (s *service) itemRows(galleryID uuid.UUID, items []ItemPayload, now time.Time) []*GalleryItem {
	rows := make([]*GalleryItem, 0, len(items))
	for i, item := range items {
		rows = append(rows, &GalleryItem{
			ID:          s.id(),
			GalleryID:   galleryID,
			Title:       item.Title,
			Description: item.Description,
			ImageURL:    item.ImageURL,
			SortOrder:   i + 1,
			IsActive:    item.IsActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return rows
}

func validatePayloadInput(title, subtitle string, sortOrder int, items []ItemPayload) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(subtitle) == "" {
		return ErrSubtitleRequired
	}
	if sortOrder < 0 {
		return ErrSortOrderInvalid
	}
	withMedia := 0
	for _, item := range items {
		if strings.TrimSpace(item.ImageURL) != "" {
			withMedia++
		}
	}
	if withMedia == 0 {
		return ErrInsufficientItems
	}
	return nil
}
