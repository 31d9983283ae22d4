package http

import (
	"net/http"
	"strings"

	galleriescmd "github.com/velora/jewelcms/internal/commands/galleries"
	"github.com/velora/jewelcms/internal/galleries"
	"github.com/velora/jewelcms/internal/logging"
	"github.com/velora/jewelcms/pkg/interfaces"
)

// AdminAPI registers admin endpoints for gallery management and uploads.
type AdminAPI struct {
	basePath  string
	galleries galleries.Service
	commands  *galleriescmd.GalleryHandler
	gateway   interfaces.MediaUploadGateway
	logger    interfaces.Logger
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/admin/api",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/admin/api").
func WithBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithGalleryService wires the gallery service.
func WithGalleryService(service galleries.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.galleries = service
		}
	}
}

// WithGalleryCommands routes gallery maintenance operations (toggle, delete,
// item reorder) through the command layer instead of calling the service
// directly. The reorder endpoint is mounted only when commands are wired.
func WithGalleryCommands(handler *galleriescmd.GalleryHandler) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.commands = handler
		}
	}
}

// WithUploadGateway wires the gateway backing the upload endpoint.
func WithUploadGateway(gateway interfaces.MediaUploadGateway) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.gateway = gateway
		}
	}
}

// WithLogger attaches a structured logger to request handling.
func WithLogger(logger interfaces.Logger) AdminOption {
	return func(api *AdminAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// Register mounts every configured route on the provided mux.
func (api *AdminAPI) Register(mux *http.ServeMux) {
	if api.galleries != nil {
		api.registerGalleryRoutes(mux, api.basePath)
	}
	if api.gateway != nil {
		api.registerUploadRoutes(mux, api.basePath)
	}
}
