package galleries

import (
	"context"

	"github.com/google/uuid"

	"github.com/velora/jewelcms/pkg/interfaces"
)

// localPersistence adapts the in-process Service to the PersistenceAPI
// contract so an editor can run embedded, without an HTTP hop. Credentials
// are accepted for contract parity and ignored; in-process calls carry
// authorization out of band.
type localPersistence struct {
	svc Service
}

// NewLocalPersistence wraps a Service as a PersistenceAPI.
func NewLocalPersistence(svc Service) PersistenceAPI {
	return &localPersistence{svc: svc}
}

func (l *localPersistence) Create(ctx context.Context, payload GalleryPayload, _ interfaces.Credential) (*Gallery, error) {
	return l.svc.Create(ctx, CreateGalleryInput{
		Title:     payload.Title,
		Subtitle:  payload.Subtitle,
		IsActive:  payload.IsActive,
		SortOrder: payload.SortOrder,
		Items:     payload.Items,
	})
}

func (l *localPersistence) Update(ctx context.Context, id uuid.UUID, payload GalleryPayload, _ interfaces.Credential) (*Gallery, error) {
	return l.svc.Update(ctx, id, UpdateGalleryInput{
		Title:     payload.Title,
		Subtitle:  payload.Subtitle,
		IsActive:  payload.IsActive,
		SortOrder: payload.SortOrder,
		Items:     payload.Items,
	})
}

func (l *localPersistence) List(ctx context.Context, _ interfaces.Credential) ([]*Gallery, error) {
	return l.svc.List(ctx)
}

func (l *localPersistence) Delete(ctx context.Context, id uuid.UUID, _ interfaces.Credential) error {
	return l.svc.Delete(ctx, id)
}

func (l *localPersistence) ToggleActive(ctx context.Context, id uuid.UUID, _ interfaces.Credential) (*Gallery, error) {
	return l.svc.ToggleActive(ctx, id)
}
