package galleries

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTitleRequired        = errors.New("galleries: title is required")
	ErrSubtitleRequired     = errors.New("galleries: subtitle is required")
	ErrSortOrderInvalid     = errors.New("galleries: sort order cannot be negative")
	ErrInsufficientItems    = errors.New("galleries: at least one item with media is required")
	ErrGalleryIDRequired    = errors.New("galleries: gallery id required")
	ErrItemIndexInvalid     = errors.New("galleries: item index out of range")
	ErrEditorBusy           = errors.New("galleries: a submit is already in flight")
	ErrEditorClosed         = errors.New("galleries: editor session is closed")
	ErrGatewayRequired      = errors.New("galleries: upload gateway required")
	ErrPersistenceMissing   = errors.New("galleries: persistence api required")
	ErrOrchestratorRequired = errors.New("galleries: upload orchestrator required")
)

// NotFoundError is returned when a gallery resource cannot be located.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// UploadFailure aggregates the per-file failures of one orchestration run.
// A single submit attempt either resolves every pending file or fails as a
// whole; the failing files are listed for user messaging.
type UploadFailure struct {
	Failures []FileFailure
}

// FileFailure identifies one file whose upload did not complete.
type FileFailure struct {
	FileName string
	Err      error
}

func (e *UploadFailure) Error() string {
	if len(e.Failures) == 0 {
		return "galleries: upload failed"
	}
	names := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		names = append(names, failure.FileName)
	}
	return fmt.Sprintf("galleries: upload failed for %s", strings.Join(names, ", "))
}

func (e *UploadFailure) Unwrap() error {
	if len(e.Failures) == 0 {
		return nil
	}
	return e.Failures[0].Err
}
