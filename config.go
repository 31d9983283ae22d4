package jewelcms

import "github.com/velora/jewelcms/internal/runtimeconfig"

var (
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
	ErrUploadsDestinationRequired = runtimeconfig.ErrUploadsDestinationRequired
	ErrUploadsMaxBytesInvalid     = runtimeconfig.ErrUploadsMaxBytesInvalid
	ErrCacheTTLInvalid            = runtimeconfig.ErrCacheTTLInvalid
)

type (
	Config        = runtimeconfig.Config
	StorageConfig = runtimeconfig.StorageConfig
	UploadsConfig = runtimeconfig.UploadsConfig
	HTTPConfig    = runtimeconfig.HTTPConfig
	CacheConfig   = runtimeconfig.CacheConfig
	Features      = runtimeconfig.Features
	LoggingConfig = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
