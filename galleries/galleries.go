package galleries

import (
	internalgalleries "github.com/velora/jewelcms/internal/galleries"
)

// Re-exported errors from the internal galleries package.
var (
	ErrTitleRequired        = internalgalleries.ErrTitleRequired
	ErrSubtitleRequired     = internalgalleries.ErrSubtitleRequired
	ErrSortOrderInvalid     = internalgalleries.ErrSortOrderInvalid
	ErrInsufficientItems    = internalgalleries.ErrInsufficientItems
	ErrGalleryIDRequired    = internalgalleries.ErrGalleryIDRequired
	ErrItemIndexInvalid     = internalgalleries.ErrItemIndexInvalid
	ErrEditorBusy           = internalgalleries.ErrEditorBusy
	ErrEditorClosed         = internalgalleries.ErrEditorClosed
	ErrGatewayRequired      = internalgalleries.ErrGatewayRequired
	ErrPersistenceMissing   = internalgalleries.ErrPersistenceMissing
	ErrOrchestratorRequired = internalgalleries.ErrOrchestratorRequired
	ErrValidationFailed     = internalgalleries.ErrValidationFailed
)

// Re-exported types from the internal galleries package.
type (
	Gallery              = internalgalleries.Gallery
	GalleryItem          = internalgalleries.GalleryItem
	GalleryDraft         = internalgalleries.GalleryDraft
	ItemDraft            = internalgalleries.ItemDraft
	ItemPayload          = internalgalleries.ItemPayload
	GalleryPayload       = internalgalleries.GalleryPayload
	ResolvedItem         = internalgalleries.ResolvedItem
	LocalFile            = internalgalleries.LocalFile
	MediaSource          = internalgalleries.MediaSource
	MediaSourceKind      = internalgalleries.MediaSourceKind
	MoveDirection        = internalgalleries.MoveDirection
	Result               = internalgalleries.Result
	Editor               = internalgalleries.Editor
	EditorOption         = internalgalleries.EditorOption
	Phase                = internalgalleries.Phase
	Orchestrator         = internalgalleries.Orchestrator
	OrchestratorOption   = internalgalleries.OrchestratorOption
	PersistenceAPI       = internalgalleries.PersistenceAPI
	PersistenceError     = internalgalleries.PersistenceError
	PersistenceErrorKind = internalgalleries.PersistenceErrorKind
	NotFoundError        = internalgalleries.NotFoundError
	UploadFailure        = internalgalleries.UploadFailure
	FileFailure          = internalgalleries.FileFailure
	Service              = internalgalleries.Service
	ServiceOption        = internalgalleries.ServiceOption
	CreateGalleryInput   = internalgalleries.CreateGalleryInput
	UpdateGalleryInput   = internalgalleries.UpdateGalleryInput
	GalleryRepository    = internalgalleries.GalleryRepository
)

// Re-exported enum values.
const (
	MediaSourceEmpty   = internalgalleries.MediaSourceEmpty
	MediaSourceStored  = internalgalleries.MediaSourceStored
	MediaSourcePending = internalgalleries.MediaSourcePending

	MoveUp   = internalgalleries.MoveUp
	MoveDown = internalgalleries.MoveDown

	PhaseEditing    = internalgalleries.PhaseEditing
	PhaseSubmitting = internalgalleries.PhaseSubmitting
	PhaseSettled    = internalgalleries.PhaseSettled
	PhaseClosed     = internalgalleries.PhaseClosed

	PersistenceValidation = internalgalleries.PersistenceValidation
	PersistenceConflict   = internalgalleries.PersistenceConflict
	PersistenceTransport  = internalgalleries.PersistenceTransport
)

// Media source constructors.
var (
	StoredMedia  = internalgalleries.StoredMedia
	PendingMedia = internalgalleries.PendingMedia
	EmptyMedia   = internalgalleries.EmptyMedia
)

// Validation entry points.
var (
	ValidateItem    = internalgalleries.ValidateItem
	ValidateGallery = internalgalleries.ValidateGallery
	CompleteItems   = internalgalleries.CompleteItems
)

// Ordering helpers.
var (
	Renumber   = internalgalleries.Renumber
	AppendItem = internalgalleries.AppendItem
	RemoveItem = internalgalleries.RemoveItem
	MoveItem   = internalgalleries.MoveItem
)

// Editor constructors and draft helpers.
var (
	NewEditor             = internalgalleries.NewEditor
	NewEditorFor          = internalgalleries.NewEditorFor
	DraftFrom             = internalgalleries.DraftFrom
	EditorWithCredential  = internalgalleries.EditorWithCredential
	EditorWithDestination = internalgalleries.EditorWithDestination
	EditorWithLogger      = internalgalleries.EditorWithLogger
	Payload               = internalgalleries.Payload
	ReconcileList         = internalgalleries.ReconcileList
)

// Orchestrator constructors.
var (
	NewOrchestrator        = internalgalleries.NewOrchestrator
	OrchestratorWithLogger = internalgalleries.OrchestratorWithLogger
)

// Service and persistence constructors.
var (
	NewService                       = internalgalleries.NewService
	WithClock                        = internalgalleries.WithClock
	WithIDGenerator                  = internalgalleries.WithIDGenerator
	WithLogger                       = internalgalleries.WithLogger
	NewLocalPersistence              = internalgalleries.NewLocalPersistence
	NewMemoryGalleryRepository       = internalgalleries.NewMemoryGalleryRepository
	NewBunGalleryRepository          = internalgalleries.NewBunGalleryRepository
	NewBunGalleryRepositoryWithCache = internalgalleries.NewBunGalleryRepositoryWithCache
)
