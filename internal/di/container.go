package di

import (
	"strings"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	galleriescmd "github.com/velora/jewelcms/internal/commands/galleries"
	"github.com/velora/jewelcms/internal/galleries"
	httpapi "github.com/velora/jewelcms/internal/http"
	"github.com/velora/jewelcms/internal/logging"
	"github.com/velora/jewelcms/internal/logging/gologger"
	"github.com/velora/jewelcms/internal/media"
	"github.com/velora/jewelcms/internal/runtimeconfig"
	"github.com/velora/jewelcms/pkg/interfaces"
)

// Container wires module dependencies.
type Container struct {
	config runtimeconfig.Config

	bunDB         *bun.DB
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider

	galleryRepo galleries.GalleryRepository
	gallerySvc  galleries.Service
	galleryCmds *galleriescmd.GalleryHandler

	gateway      interfaces.MediaUploadGateway
	orchestrator *galleries.Orchestrator
	persistence  galleries.PersistenceAPI

	admin *httpapi.AdminAPI
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB binds the bun database used for gallery persistence. Without it
// the container falls back to in-memory repositories.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache binds a repository cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the default logger provider binding.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithGalleryRepository overrides the default gallery repository binding.
func WithGalleryRepository(repo galleries.GalleryRepository) Option {
	return func(c *Container) {
		c.galleryRepo = repo
	}
}

// WithGalleryService overrides the default gallery service binding.
func WithGalleryService(svc galleries.Service) Option {
	return func(c *Container) {
		c.gallerySvc = svc
	}
}

// WithUploadGateway overrides the default media upload gateway binding.
func WithUploadGateway(gateway interfaces.MediaUploadGateway) Option {
	return func(c *Container) {
		c.gateway = gateway
	}
}

// WithPersistence overrides the default persistence API binding, typically to
// point editors at a remote admin deployment instead of the local service.
func WithPersistence(api galleries.PersistenceAPI) Option {
	return func(c *Container) {
		c.persistence = api
	}
}

// NewContainer validates the configuration and wires default bindings for
// everything the options left unset.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.loggerProvider == nil && cfg.Features.Logger {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.galleryRepo == nil {
		c.galleryRepo = c.buildGalleryRepository()
	}
	if c.gallerySvc == nil {
		c.gallerySvc = galleries.NewService(c.galleryRepo,
			galleries.WithLogger(logging.GalleriesLogger(c.loggerProvider)),
		)
	}
	if cfg.Features.Commands {
		c.galleryCmds = galleriescmd.NewGalleryHandler(c.gallerySvc,
			logging.GalleriesLogger(c.loggerProvider),
		)
	}
	if c.gateway == nil {
		c.gateway = c.buildUploadGateway()
	}
	if c.orchestrator == nil {
		c.orchestrator = galleries.NewOrchestrator(c.gateway,
			galleries.OrchestratorWithLogger(logging.MediaLogger(c.loggerProvider)),
		)
	}
	if c.persistence == nil {
		c.persistence = galleries.NewLocalPersistence(c.gallerySvc)
	}

	c.admin = httpapi.NewAdminAPI(
		httpapi.WithBasePath(cfg.HTTP.BasePath),
		httpapi.WithGalleryService(c.gallerySvc),
		httpapi.WithGalleryCommands(c.galleryCmds),
		httpapi.WithUploadGateway(c.gateway),
		httpapi.WithLogger(logging.HTTPLogger(c.loggerProvider)),
	)

	return c, nil
}

// Config returns the configuration the container was built with.
func (c *Container) Config() runtimeconfig.Config {
	return c.config
}

// LoggerProvider returns the active logger provider, possibly nil when the
// logger feature is disabled and no override was supplied.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// GalleryRepository returns the bound gallery repository.
func (c *Container) GalleryRepository() galleries.GalleryRepository {
	return c.galleryRepo
}

// GalleryService returns the bound gallery service.
func (c *Container) GalleryService() galleries.Service {
	return c.gallerySvc
}

// GalleryCommands returns the command handler for gallery maintenance
// operations, or nil when the commands feature is disabled.
func (c *Container) GalleryCommands() *galleriescmd.GalleryHandler {
	return c.galleryCmds
}

// UploadGateway returns the bound media upload gateway.
func (c *Container) UploadGateway() interfaces.MediaUploadGateway {
	return c.gateway
}

// Orchestrator returns the shared upload orchestrator. Editors created from
// the same container reuse its upload cache.
func (c *Container) Orchestrator() *galleries.Orchestrator {
	return c.orchestrator
}

// Persistence returns the bound persistence API.
func (c *Container) Persistence() galleries.PersistenceAPI {
	return c.persistence
}

// AdminAPI returns the configured admin HTTP adapter.
func (c *Container) AdminAPI() *httpapi.AdminAPI {
	return c.admin
}

func (c *Container) buildGalleryRepository() galleries.GalleryRepository {
	if c.bunDB == nil {
		return galleries.NewMemoryGalleryRepository()
	}
	if c.config.Features.Cache && c.config.Cache.Enabled && c.cacheService != nil {
		return galleries.NewBunGalleryRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	}
	return galleries.NewBunGalleryRepository(c.bunDB)
}

func (c *Container) buildUploadGateway() interfaces.MediaUploadGateway {
	uploads := c.config.Uploads
	if base := strings.TrimSpace(uploads.BaseURL); base != "" {
		return media.NewHTTPGateway(base,
			media.HTTPGatewayWithLogger(logging.MediaLogger(c.loggerProvider)),
		)
	}
	return media.NewLocalGateway(uploads.LocalRoot, uploads.PublicURL)
}

func buildLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "noop":
		return nil, nil
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, runtimeconfig.ErrLoggingProviderUnknown
	}
}
