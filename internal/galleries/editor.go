package galleries

import (
	"context"
	"errors"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/velora/jewelcms/internal/logging"
	"github.com/velora/jewelcms/pkg/interfaces"
)

// ErrValidationFailed is returned by Submit when the draft did not pass
// collection validation. Field errors are available via Errors().
var ErrValidationFailed = errors.New("galleries: validation failed")

// Phase tracks where an edit session sits in its lifecycle.
type Phase int

const (
	// PhaseEditing accepts draft mutations and submit attempts.
	PhaseEditing Phase = iota
	// PhaseSubmitting covers the upload and persistence calls of one
	// submit attempt. Further submits are rejected; field edits are not
	// prevented but do not affect the in-flight attempt.
	PhaseSubmitting
	// PhaseSettled means persistence accepted the payload and the draft
	// has been discarded in favor of the canonical entity.
	PhaseSettled
	// PhaseClosed means the user abandoned the session. The draft is
	// dropped with no persistence side effect; in-flight uploads run to
	// completion but their results are discarded.
	PhaseClosed
)

// Editor owns the draft state for one gallery edit session and drives the
// validate/upload/persist submit pipeline. One editor owns one draft; no
// two sessions share state.
type Editor struct {
	mu sync.Mutex

	draft       GalleryDraft
	phase       Phase
	fieldErrors validation.Errors
	canonical   *Gallery

	orchestrator *Orchestrator
	persistence  PersistenceAPI
	kind         interfaces.DestinationKind
	cred         interfaces.Credential
	logger       interfaces.Logger
}

// EditorOption customises an editor session.
type EditorOption func(*Editor)

// EditorWithCredential sets the opaque bearer credential attached to every
// gateway and persistence call issued by this session.
func EditorWithCredential(cred interfaces.Credential) EditorOption {
	return func(e *Editor) { e.cred = cred }
}

// EditorWithDestination overrides the logical upload bucket.
func EditorWithDestination(kind interfaces.DestinationKind) EditorOption {
	return func(e *Editor) {
		if kind != "" {
			e.kind = kind
		}
	}
}

// EditorWithLogger attaches a structured logger to the session.
func EditorWithLogger(logger interfaces.Logger) EditorOption {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEditor opens a session over an empty draft for creating a new gallery.
func NewEditor(persistence PersistenceAPI, orchestrator *Orchestrator, opts ...EditorOption) *Editor {
	e := &Editor{
		draft:        GalleryDraft{IsActive: true},
		orchestrator: orchestrator,
		persistence:  persistence,
		kind:         interfaces.DestinationGallery,
		logger:       logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// NewEditorFor opens a session seeded from a previously persisted gallery.
func NewEditorFor(gallery *Gallery, persistence PersistenceAPI, orchestrator *Orchestrator, opts ...EditorOption) *Editor {
	e := NewEditor(persistence, orchestrator, opts...)
	if gallery != nil {
		e.draft = DraftFrom(gallery)
	}
	return e
}

// DraftFrom converts a canonical gallery into editable draft state. Every
// item starts with a stored media reference.
func DraftFrom(gallery *Gallery) GalleryDraft {
	draft := GalleryDraft{
		ID:        gallery.ID,
		Title:     gallery.Title,
		Subtitle:  gallery.Subtitle,
		IsActive:  gallery.IsActive,
		SortOrder: gallery.SortOrder,
	}
	for _, item := range gallery.Items {
		if item == nil {
			continue
		}
		d := ItemDraft{
			Media:     StoredMedia(item.ImageURL),
			SortOrder: item.SortOrder,
			IsActive:  item.IsActive,
		}
		if item.Title != nil {
			d.Title = *item.Title
		}
		if item.Description != nil {
			d.Description = *item.Description
		}
		draft.Items = append(draft.Items, d)
	}
	Renumber(draft.Items)
	return draft
}

// Phase reports the session lifecycle stage.
func (e *Editor) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// Draft returns a copy of the current draft state.
func (e *Editor) Draft() GalleryDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// Errors returns the field-path-keyed errors of the last failed submit.
func (e *Editor) Errors() validation.Errors {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.fieldErrors) == 0 {
		return nil
	}
	copied := validation.Errors{}
	for path, err := range e.fieldErrors {
		copied[path] = err
	}
	return copied
}

// Canonical returns the authoritative entity once the session settled.
func (e *Editor) Canonical() *Gallery {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.canonical
}

// SetTitle updates the parent title.
func (e *Editor) SetTitle(title string) error {
	return e.mutate(func() { e.draft.Title = title })
}

// SetSubtitle updates the parent subtitle.
func (e *Editor) SetSubtitle(subtitle string) error {
	return e.mutate(func() { e.draft.Subtitle = subtitle })
}

// SetSortOrder updates the parent display order among sibling galleries.
func (e *Editor) SetSortOrder(order int) error {
	return e.mutate(func() { e.draft.SortOrder = order })
}

// ToggleActive flips the parent's storefront visibility.
func (e *Editor) ToggleActive() error {
	return e.mutate(func() { e.draft.IsActive = !e.draft.IsActive })
}

// AddItem appends an empty draft placeholder and returns its index.
func (e *Editor) AddItem() (int, error) {
	index := -1
	err := e.mutate(func() {
		e.draft.Items = AppendItem(e.draft.Items, ItemDraft{Media: EmptyMedia(), IsActive: true})
		index = len(e.draft.Items) - 1
	})
	return index, err
}

// RemoveItem drops the item at index. Removing a draft-only item has no
// side effect; removing a persisted item takes effect on the next save when
// the whole collection is resubmitted.
func (e *Editor) RemoveItem(index int) error {
	return e.mutateErr(func() error {
		items, err := RemoveItem(e.draft.Items, index)
		if err != nil {
			return err
		}
		e.draft.Items = items
		return nil
	})
}

// MoveItem swaps the item at index one position up or down and renumbers.
func (e *Editor) MoveItem(index int, direction MoveDirection) error {
	return e.mutateErr(func() error {
		items, err := MoveItem(e.draft.Items, index, direction)
		if err != nil {
			return err
		}
		e.draft.Items = items
		return nil
	})
}

// SetItemTitle updates one item's title.
func (e *Editor) SetItemTitle(index int, title string) error {
	return e.mutateItem(index, func(item *ItemDraft) { item.Title = title })
}

// SetItemDescription updates one item's description.
func (e *Editor) SetItemDescription(index int, description string) error {
	return e.mutateItem(index, func(item *ItemDraft) { item.Description = description })
}

// SetItemFile points the item at a local file awaiting upload, replacing
// any previously selected source.
func (e *Editor) SetItemFile(index int, file *LocalFile) error {
	return e.mutateItem(index, func(item *ItemDraft) { item.Media = PendingMedia(file) })
}

// SetItemURL points the item at media the backend already stores.
func (e *Editor) SetItemURL(index int, url string) error {
	return e.mutateItem(index, func(item *ItemDraft) { item.Media = StoredMedia(url) })
}

// ClearItemMedia resets the item to a draft placeholder.
func (e *Editor) ClearItemMedia(index int) error {
	return e.mutateItem(index, func(item *ItemDraft) { item.Media = EmptyMedia() })
}

// ToggleItemActive flips one item's visibility independent of the parent.
func (e *Editor) ToggleItemActive(index int) error {
	return e.mutateItem(index, func(item *ItemDraft) { item.IsActive = !item.IsActive })
}

// Submit runs the full pipeline: synchronous validation, concurrent upload
// resolution, then the persistence create/update call. Any failure returns
// the session to Editing with the draft fully intact; persistence is never
// reached unless validation passed and every upload resolved.
func (e *Editor) Submit(ctx context.Context) (*Gallery, error) {
	e.mu.Lock()
	switch e.phase {
	case PhaseSubmitting:
		e.mu.Unlock()
		return nil, ErrEditorBusy
	case PhaseSettled, PhaseClosed:
		e.mu.Unlock()
		return nil, ErrEditorClosed
	}
	if e.persistence == nil {
		e.mu.Unlock()
		return nil, ErrPersistenceMissing
	}
	if e.orchestrator == nil {
		e.mu.Unlock()
		return nil, ErrOrchestratorRequired
	}

	snapshot := e.snapshot()
	result := ValidateGallery(snapshot)
	if !result.Valid {
		e.fieldErrors = result.Errors
		e.mu.Unlock()
		return nil, ErrValidationFailed
	}
	e.fieldErrors = nil
	e.phase = PhaseSubmitting
	e.mu.Unlock()

	canonical, err := e.submit(ctx, snapshot)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.phase = PhaseEditing
		var persistErr *PersistenceError
		if errors.As(err, &persistErr) && len(persistErr.Fields) > 0 {
			merged := validation.Errors{}
			for path, message := range persistErr.Fields {
				merged[path] = validation.NewError("jewelcms.galleries.server_rejected", message)
			}
			e.fieldErrors = merged
		}
		return nil, err
	}
	e.phase = PhaseSettled
	e.canonical = canonical
	e.draft = GalleryDraft{}
	return canonical, nil
}

// Close abandons the session, discarding the draft. Uploads already in
// flight are not cancelled; their results are discarded because no state
// reconciliation runs after Close.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase == PhaseSettled {
		return
	}
	e.phase = PhaseClosed
	e.draft = GalleryDraft{}
	e.fieldErrors = nil
}

func (e *Editor) submit(ctx context.Context, snapshot GalleryDraft) (*Gallery, error) {
	resolved, err := e.orchestrator.Resolve(ctx, CompleteItems(snapshot.Items), e.kind, e.cred)
	if err != nil {
		return nil, err
	}

	payload := Payload(snapshot, resolved)
	var canonical *Gallery
	if snapshot.ID == uuid.Nil {
		canonical, err = e.persistence.Create(ctx, payload, e.cred)
	} else {
		canonical, err = e.persistence.Update(ctx, snapshot.ID, payload, e.cred)
	}
	if err != nil {
		// Uploaded media stays orphaned in storage on persistence
		// failure; cleanup is out of scope.
		return nil, err
	}

	logging.WithFields(e.logger, map[string]any{
		"operation":  "galleries.editor.submit",
		"gallery_id": canonical.ID.String(),
		"items":      len(payload.Items),
	}).Info("galleries.editor_settled")
	return canonical, nil
}

func (e *Editor) snapshot() GalleryDraft {
	copied := e.draft
	copied.Items = append([]ItemDraft(nil), e.draft.Items...)
	return copied
}

func (e *Editor) mutate(apply func()) error {
	return e.mutateErr(func() error {
		apply()
		return nil
	})
}

func (e *Editor) mutateErr(apply func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase == PhaseSettled || e.phase == PhaseClosed {
		return ErrEditorClosed
	}
	return apply()
}

func (e *Editor) mutateItem(index int, apply func(*ItemDraft)) error {
	return e.mutateErr(func() error {
		if index < 0 || index >= len(e.draft.Items) {
			return ErrItemIndexInvalid
		}
		apply(&e.draft.Items[index])
		return nil
	})
}
