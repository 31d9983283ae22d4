package interfaces

import (
	"context"
	"time"
)

// DestinationKind selects the logical bucket or path prefix an upload is
// stored under. Kinds map onto storefront surfaces rather than physical
// storage layout.
type DestinationKind string

const (
	DestinationGallery DestinationKind = "gallery"
	DestinationSlider  DestinationKind = "slider"
	DestinationPopup   DestinationKind = "popup"
)

// Credential is the opaque bearer token attached by the caller to every
// gateway and persistence request. The core never reads it from ambient
// state; callers pass it explicitly.
type Credential string

// UploadRequest carries one file and its destination to the gateway.
type UploadRequest struct {
	FileName    string
	ContentType string
	Data        []byte
	Kind        DestinationKind
	Credential  Credential
}

// StoredReference is a durable pointer to media already persisted by the
// storage backend.
type StoredReference struct {
	URL        string    `json:"url"`
	Path       string    `json:"path,omitempty"`
	MimeType   string    `json:"mime_type,omitempty"`
	Size       int64     `json:"size,omitempty"`
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
}

// MediaUploadGateway accepts one binary file and a destination kind, and
// returns a stored-object reference or fails. Whole-file, single attempt;
// implementations carry no per-call state between requests.
type MediaUploadGateway interface {
	Upload(ctx context.Context, req UploadRequest) (StoredReference, error)
}
