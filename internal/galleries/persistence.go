package galleries

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/velora/jewelcms/pkg/interfaces"
)

// PersistenceAPI is the external collaborator the editor hands a fully
// resolved payload to. Responses are the authoritative post-write entity,
// including server-assigned ids and timestamps. Credentials are supplied
// per call by the caller; the core holds no ambient token.
type PersistenceAPI interface {
	Create(ctx context.Context, payload GalleryPayload, cred interfaces.Credential) (*Gallery, error)
	Update(ctx context.Context, id uuid.UUID, payload GalleryPayload, cred interfaces.Credential) (*Gallery, error)
	List(ctx context.Context, cred interfaces.Credential) ([]*Gallery, error)
	Delete(ctx context.Context, id uuid.UUID, cred interfaces.Credential) error
	ToggleActive(ctx context.Context, id uuid.UUID, cred interfaces.Credential) (*Gallery, error)
}

// PersistenceErrorKind classifies a failed persistence call for recovery.
type PersistenceErrorKind int

const (
	// PersistenceValidation reports server-side validation failures, with
	// field paths when the server returns them.
	PersistenceValidation PersistenceErrorKind = iota
	// PersistenceConflict reports stale state, surfaced to the user as
	// "refresh and retry".
	PersistenceConflict
	// PersistenceTransport covers network and timeout failures; retryable.
	PersistenceTransport
)

// PersistenceError wraps a failed create/update/list/delete call.
type PersistenceError struct {
	Kind    PersistenceErrorKind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("galleries: persistence failed: %s", e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("galleries: persistence failed: %v", e.Err)
	}
	return "galleries: persistence failed"
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ReconcileList replaces the entry matching canonical's id, or appends it
// when absent. The surrounding list view applies this once per settled edit
// session; no partial collection state is merged.
func ReconcileList(list []*Gallery, canonical *Gallery) []*Gallery {
	if canonical == nil {
		return list
	}
	for i, existing := range list {
		if existing != nil && existing.ID == canonical.ID {
			out := append([]*Gallery(nil), list...)
			out[i] = canonical
			return out
		}
	}
	return append(append([]*Gallery(nil), list...), canonical)
}
