package galleries

import (
	"context"
	"sync"

	"github.com/velora/jewelcms/internal/identity"
	"github.com/velora/jewelcms/internal/logging"
	"github.com/velora/jewelcms/pkg/interfaces"
)

// Orchestrator resolves a validated list of complete items into stored
// references, uploading pending local files through the gateway. A run is
// all-or-nothing: if any upload fails the whole call fails and the caller's
// draft is left untouched.
type Orchestrator struct {
	gateway interfaces.MediaUploadGateway
	logger  interfaces.Logger

	mu       sync.Mutex
	uploaded map[string]interfaces.StoredReference
}

// OrchestratorOption customises the orchestrator.
type OrchestratorOption func(*Orchestrator)

// OrchestratorWithLogger attaches a structured logger to upload runs.
func OrchestratorWithLogger(logger interfaces.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewOrchestrator constructs an orchestrator over the provided gateway.
func NewOrchestrator(gateway interfaces.MediaUploadGateway, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		gateway:  gateway,
		logger:   logging.NoOp(),
		uploaded: make(map[string]interfaces.StoredReference),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

type uploadOutcome struct {
	index int
	ref   interfaces.StoredReference
	err   error
}

// Resolve produces one ResolvedItem per input item. Items already holding a
// stored URL pass through; pending files are uploaded concurrently with no
// sequencing dependency between them. The call completes only once every
// upload has settled, so persistence never sees partially resolved media.
//
// References for uploads that succeeded are remembered keyed by file name
// and content digest: a retry after a partial failure skips files the
// storage backend already holds, while a different file under a reused name
// still uploads. The cache never marks an item resolved on its own; only a
// fully successful run returns resolved items.
func (o *Orchestrator) Resolve(ctx context.Context, items []ItemDraft, kind interfaces.DestinationKind, cred interfaces.Credential) ([]ResolvedItem, error) {
	if o.gateway == nil {
		return nil, ErrGatewayRequired
	}

	resolved := make([]ResolvedItem, len(items))
	pending := make([]int, 0, len(items))

	for i, item := range items {
		resolved[i] = ResolvedItem{
			Title:       item.Title,
			Description: item.Description,
			SortOrder:   item.SortOrder,
			IsActive:    item.IsActive,
		}
		if url, ok := item.Media.URL(); ok {
			resolved[i].Reference = interfaces.StoredReference{URL: url}
			continue
		}
		if _, ok := item.Media.File(); ok {
			pending = append(pending, i)
			continue
		}
		// Validation filters unresolvable items before Resolve; an Empty
		// source reaching this point is a caller bug.
		return nil, ErrInsufficientItems
	}

	if len(pending) == 0 {
		return resolved, nil
	}

	outcomes := make(chan uploadOutcome, len(pending))
	var wg sync.WaitGroup
	for _, idx := range pending {
		file, _ := items[idx].Media.File()
		if ref, ok := o.cached(file); ok {
			outcomes <- uploadOutcome{index: idx, ref: ref}
			continue
		}
		wg.Add(1)
		go func(idx int, file *LocalFile) {
			defer wg.Done()
			ref, err := o.gateway.Upload(ctx, interfaces.UploadRequest{
				FileName:    file.Name,
				ContentType: file.ContentType,
				Data:        file.Data,
				Kind:        kind,
				Credential:  cred,
			})
			outcomes <- uploadOutcome{index: idx, ref: ref, err: err}
		}(idx, file)
	}
	wg.Wait()
	close(outcomes)

	var failures []FileFailure
	for outcome := range outcomes {
		if outcome.err != nil {
			file, _ := items[outcome.index].Media.File()
			failures = append(failures, FileFailure{FileName: file.Name, Err: outcome.err})
			continue
		}
		file, _ := items[outcome.index].Media.File()
		if file != nil {
			o.remember(file, outcome.ref)
		}
		resolved[outcome.index].Reference = outcome.ref
	}

	if len(failures) > 0 {
		logging.WithFields(o.logger, map[string]any{
			"operation": "galleries.upload.resolve",
			"pending":   len(pending),
			"failed":    len(failures),
		}).Warn("galleries.upload_failed")
		return nil, &UploadFailure{Failures: failures}
	}

	logging.WithFields(o.logger, map[string]any{
		"operation": "galleries.upload.resolve",
		"items":     len(items),
		"uploaded":  len(pending),
	}).Info("galleries.upload_resolved")
	return resolved, nil
}

func (o *Orchestrator) cached(file *LocalFile) (interfaces.StoredReference, bool) {
	if file == nil {
		return interfaces.StoredReference{}, false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	ref, ok := o.uploaded[identity.FileKey(file.Name, file.Data)]
	return ref, ok
}

func (o *Orchestrator) remember(file *LocalFile, ref interfaces.StoredReference) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.uploaded[identity.FileKey(file.Name, file.Data)] = ref
}
