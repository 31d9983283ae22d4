package galleries

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/velora/jewelcms/pkg/interfaces"
)

// Gallery is the canonical persisted record for a storefront gallery.
type Gallery struct {
	bun.BaseModel `bun:"table:galleries,alias:g"`

	ID        uuid.UUID  `bun:",pk,type:uuid"                   json:"id"`
	Title     string     `bun:"title,notnull"                   json:"title"`
	Subtitle  string     `bun:"subtitle,notnull"                json:"subtitle"`
	Slug      string     `bun:"slug,notnull"                    json:"slug"`
	IsActive  bool       `bun:"is_active,notnull,default:true"  json:"is_active"`
	SortOrder int        `bun:"sort_order,notnull,default:0"    json:"sort_order"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero"             json:"deleted_at,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Items []*GalleryItem `bun:"rel:has-many,join:id=gallery_id" json:"items,omitempty"`
}

// GalleryItem is one ordered unit of displayable media within a gallery.
// SortOrder stays dense and 1-based whenever the collection is at rest.
type GalleryItem struct {
	bun.BaseModel `bun:"table:gallery_items,alias:gi"`

	ID          uuid.UUID `bun:",pk,type:uuid"                  json:"id"`
	GalleryID   uuid.UUID `bun:"gallery_id,notnull,type:uuid"   json:"gallery_id"`
	Title       *string   `bun:"title"                          json:"title,omitempty"`
	Description *string   `bun:"description"                    json:"description,omitempty"`
	ImageURL    string    `bun:"image_url,notnull"              json:"image_url"`
	SortOrder   int       `bun:"sort_order,notnull"             json:"sort_order"`
	IsActive    bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// MediaSourceKind discriminates the media source union carried by a draft item.
type MediaSourceKind int

const (
	// MediaSourceEmpty marks a draft placeholder with no media selected yet.
	MediaSourceEmpty MediaSourceKind = iota
	// MediaSourceStored points at media the storage backend already holds.
	MediaSourceStored
	// MediaSourcePending wraps a local file that has not been uploaded.
	MediaSourcePending
)

// LocalFile is a not-yet-uploaded file selected by the user. The byte slice
// is owned by the draft for the duration of the edit session.
type LocalFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// MediaSource is the tagged union {Stored(url) | Pending(file) | Empty}.
// Exactly one variant is populated; constructing it through the helpers below
// rules out the "both set" and "neither set" states a pair of nullable
// strings would allow.
type MediaSource struct {
	kind MediaSourceKind
	url  string
	file *LocalFile
}

// StoredMedia references media already persisted by the storage backend.
func StoredMedia(url string) MediaSource {
	return MediaSource{kind: MediaSourceStored, url: url}
}

// PendingMedia wraps a local file awaiting upload.
func PendingMedia(file *LocalFile) MediaSource {
	if file == nil {
		return MediaSource{}
	}
	return MediaSource{kind: MediaSourcePending, file: file}
}

// EmptyMedia returns the unset variant used by draft placeholders.
func EmptyMedia() MediaSource {
	return MediaSource{}
}

// Kind reports which variant is populated.
func (m MediaSource) Kind() MediaSourceKind { return m.kind }

// IsResolvable reports whether the source can produce a stored URL at submit
// time, either because one exists already or because a pending file can be
// uploaded. This is the sole input to the "complete item" filter.
func (m MediaSource) IsResolvable() bool {
	switch m.kind {
	case MediaSourceStored:
		return m.url != ""
	case MediaSourcePending:
		return m.file != nil && len(m.file.Data) > 0
	default:
		return false
	}
}

// URL returns the stored URL when the source is the Stored variant.
func (m MediaSource) URL() (string, bool) {
	if m.kind == MediaSourceStored {
		return m.url, true
	}
	return "", false
}

// File returns the pending local file when the source is the Pending variant.
func (m MediaSource) File() (*LocalFile, bool) {
	if m.kind == MediaSourcePending {
		return m.file, true
	}
	return nil, false
}

// ItemDraft is the client-side editable form of a GalleryItem. Drafts carry
// no durable identity until a submit round-trip assigns one.
type ItemDraft struct {
	Title       string
	Description string
	Media       MediaSource
	SortOrder   int
	IsActive    bool
}

// Complete reports whether the draft is eligible for submission.
func (d ItemDraft) Complete() bool {
	return d.Media.IsResolvable()
}

// GalleryDraft is the in-memory editable state owned by one editor session.
type GalleryDraft struct {
	ID        uuid.UUID // uuid.Nil until first persisted
	Title     string
	Subtitle  string
	IsActive  bool
	SortOrder int
	Items     []ItemDraft
}

// ItemPayload is one fully resolved item as handed to the persistence API.
type ItemPayload struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    string  `json:"image_url"`
	SortOrder   int     `json:"sort_order"`
	IsActive    bool    `json:"is_active"`
}

// GalleryPayload is the resolved desired state for a whole gallery. The
// collection is resubmitted wholesale on every save; the persistence layer
// is responsible for diffing against what it holds.
type GalleryPayload struct {
	Title     string        `json:"title"`
	Subtitle  string        `json:"subtitle"`
	IsActive  bool          `json:"is_active"`
	SortOrder int           `json:"sort_order"`
	Items     []ItemPayload `json:"items"`
}

// ResolvedItem pairs a draft item with the stored reference produced for it
// by the upload orchestrator.
type ResolvedItem struct {
	Title       string
	Description string
	Reference   interfaces.StoredReference
	SortOrder   int
	IsActive    bool
}

// Payload converts resolved items into the wire payload for the draft.
func Payload(draft GalleryDraft, resolved []ResolvedItem) GalleryPayload {
	items := make([]ItemPayload, 0, len(resolved))
	for i, item := range resolved {
		order := item.SortOrder
		if order <= 0 {
			order = i + 1
		}
		payload := ItemPayload{
			ImageURL:  item.Reference.URL,
			SortOrder: order,
			IsActive:  item.IsActive,
		}
		if item.Title != "" {
			title := item.Title
			payload.Title = &title
		}
		if item.Description != "" {
			description := item.Description
			payload.Description = &description
		}
		items = append(items, payload)
	}
	return GalleryPayload{
		Title:     draft.Title,
		Subtitle:  draft.Subtitle,
		IsActive:  draft.IsActive,
		SortOrder: draft.SortOrder,
		Items:     items,
	}
}
