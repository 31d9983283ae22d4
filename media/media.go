package media

import (
	internalmedia "github.com/velora/jewelcms/internal/media"
)

// Re-exported errors from the internal media package.
var (
	ErrFileRequired   = internalmedia.ErrFileRequired
	ErrKindRequired   = internalmedia.ErrKindRequired
	ErrUploadRejected = internalmedia.ErrUploadRejected
)

// Re-exported types from the internal media package.
type (
	HTTPGateway       = internalmedia.HTTPGateway
	HTTPGatewayOption = internalmedia.HTTPGatewayOption
	LocalGateway      = internalmedia.LocalGateway
	MemoryGateway     = internalmedia.MemoryGateway
)

// Gateway constructors.
var (
	NewHTTPGateway        = internalmedia.NewHTTPGateway
	HTTPGatewayWithClient = internalmedia.HTTPGatewayWithClient
	HTTPGatewayWithLogger = internalmedia.HTTPGatewayWithLogger
	NewLocalGateway       = internalmedia.NewLocalGateway
	NewMemoryGateway      = internalmedia.NewMemoryGateway
)
