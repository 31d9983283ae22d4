package jewelcms

import (
	"net/http"

	galleriescmd "github.com/velora/jewelcms/internal/commands/galleries"
	"github.com/velora/jewelcms/internal/di"
	"github.com/velora/jewelcms/internal/galleries"
	"github.com/velora/jewelcms/internal/logging"
	"github.com/velora/jewelcms/pkg/interfaces"
)

// GalleryService exports the gallery service contract for consumers of the
// jewelcms package.
type GalleryService = galleries.Service

// GalleryRepository exports the gallery repository contract.
type GalleryRepository = galleries.GalleryRepository

// PersistenceAPI exports the persistence boundary used by gallery editors.
type PersistenceAPI = galleries.PersistenceAPI

// Editor exports the draft editing session type.
type Editor = galleries.Editor

// MediaUploadGateway exports the upload gateway contract.
type MediaUploadGateway = interfaces.MediaUploadGateway

// Credential exports the per-call authorization token type.
type Credential = interfaces.Credential

// Module represents the top level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Galleries returns the configured gallery service.
func (m *Module) Galleries() GalleryService {
	return m.container.GalleryService()
}

// GalleryCommands returns the command handler for gallery maintenance
// operations, or nil when the commands feature is disabled.
func (m *Module) GalleryCommands() *galleriescmd.GalleryHandler {
	return m.container.GalleryCommands()
}

// Uploads returns the media upload gateway used by the module.
func (m *Module) Uploads() MediaUploadGateway {
	return m.container.UploadGateway()
}

// Persistence returns the persistence API editors submit against.
func (m *Module) Persistence() PersistenceAPI {
	return m.container.Persistence()
}

// NewGalleryEditor opens an editing session for a brand new gallery.
func (m *Module) NewGalleryEditor(cred Credential) *Editor {
	return galleries.NewEditor(m.container.Persistence(), m.container.Orchestrator(),
		galleries.EditorWithCredential(cred),
		galleries.EditorWithLogger(logging.EditorLogger(m.container.LoggerProvider())),
	)
}

// EditGallery opens an editing session seeded from a stored gallery.
func (m *Module) EditGallery(gallery *galleries.Gallery, cred Credential) *Editor {
	return galleries.NewEditorFor(gallery, m.container.Persistence(), m.container.Orchestrator(),
		galleries.EditorWithCredential(cred),
		galleries.EditorWithLogger(logging.EditorLogger(m.container.LoggerProvider())),
	)
}

// RegisterAdminRoutes mounts the admin API onto the provided mux.
func (m *Module) RegisterAdminRoutes(mux *http.ServeMux) {
	m.container.AdminAPI().Register(mux)
}
