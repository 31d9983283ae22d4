package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrLoggingProviderRequired = errors.New("jewelcms config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("jewelcms config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("jewelcms config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("jewelcms config: logging format is invalid")

// ErrUploadsDestinationRequired indicates no upload destination was configured.
var ErrUploadsDestinationRequired = errors.New("jewelcms config: uploads require a remote base URL or a local root directory")

// ErrUploadsMaxBytesInvalid rejects non-positive upload size limits.
var ErrUploadsMaxBytesInvalid = errors.New("jewelcms config: uploads max bytes must be positive")

// ErrCacheTTLInvalid rejects negative cache TTLs.
var ErrCacheTTLInvalid = errors.New("jewelcms config: cache ttl must be zero or positive")

// Config aggregates feature flags and adapter bindings for the module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Storage  StorageConfig
	Uploads  UploadsConfig
	HTTP     HTTPConfig
	Cache    CacheConfig
	Features Features
	Logging  LoggingConfig
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
	DSN      string
}

// UploadsConfig selects and configures the media upload gateway. When BaseURL
// is set a remote HTTP gateway is used; otherwise LocalRoot selects disk
// storage served from PublicURL.
type UploadsConfig struct {
	BaseURL   string
	LocalRoot string
	PublicURL string
	MaxBytes  int64
}

// HTTPConfig captures the admin API mount point.
type HTTPConfig struct {
	BasePath string
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// Features toggles module functionality.
type Features struct {
	Logger   bool
	Cache    bool
	Commands bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the module defaults for an embedded deployment.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Provider: "bun",
		},
		Uploads: UploadsConfig{
			LocalRoot: "uploads",
			PublicURL: "/media",
			MaxBytes:  32 << 20,
		},
		HTTP: HTTPConfig{
			BasePath: "/admin/api",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Features: Features{
			Logger:   true,
			Cache:    true,
			Commands: true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Uploads.BaseURL) == "" && strings.TrimSpace(cfg.Uploads.LocalRoot) == "" {
		return ErrUploadsDestinationRequired
	}
	if cfg.Uploads.MaxBytes <= 0 {
		return ErrUploadsMaxBytesInvalid
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "json", "pretty":
		return true
	default:
		return false
	}
}
