package media

import (
	"context"
	"fmt"
	"sync"

	"github.com/velora/jewelcms/pkg/interfaces"
)

// MemoryGateway is an in-memory upload gateway for tests and previews. It
// records every request and can be scripted to fail for specific files.
type MemoryGateway struct {
	mu       sync.Mutex
	requests []interfaces.UploadRequest
	failures map[string]error
	counter  int
}

// NewMemoryGateway constructs an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{failures: make(map[string]error)}
}

// FailFile makes subsequent uploads of the named file return err.
func (g *MemoryGateway) FailFile(name string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failures[name] = err
}

// Requests returns a copy of every upload request seen so far.
func (g *MemoryGateway) Requests() []interfaces.UploadRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]interfaces.UploadRequest(nil), g.requests...)
}

// Upload records the request and fabricates a stored reference.
func (g *MemoryGateway) Upload(_ context.Context, req interfaces.UploadRequest) (interfaces.StoredReference, error) {
	if len(req.Data) == 0 {
		return interfaces.StoredReference{}, ErrFileRequired
	}
	if req.Kind == "" {
		return interfaces.StoredReference{}, ErrKindRequired
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	if err, ok := g.failures[req.FileName]; ok && err != nil {
		return interfaces.StoredReference{}, err
	}
	g.counter++
	return interfaces.StoredReference{
		URL:      fmt.Sprintf("mem://%s/%d-%s", req.Kind, g.counter, req.FileName),
		MimeType: req.ContentType,
		Size:     int64(len(req.Data)),
	}, nil
}
