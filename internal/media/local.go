package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/velora/jewelcms/internal/util"
	"github.com/velora/jewelcms/pkg/interfaces"
)

// LocalGateway stores uploads on the local filesystem under one directory
// per destination kind. Used by embedded deployments and by the admin API's
// own upload endpoint when no object store is configured.
type LocalGateway struct {
	root      string
	publicURL string
}

// NewLocalGateway constructs a gateway writing under root. publicURL is the
// prefix stored references are built from, e.g. "https://cdn.example.com".
func NewLocalGateway(root, publicURL string) *LocalGateway {
	return &LocalGateway{
		root:      root,
		publicURL: strings.TrimRight(strings.TrimSpace(publicURL), "/"),
	}
}

// Upload writes the file bytes under root/{kind}/ with a collision-free
// name and returns the public reference.
func (g *LocalGateway) Upload(_ context.Context, req interfaces.UploadRequest) (interfaces.StoredReference, error) {
	if len(req.Data) == 0 {
		return interfaces.StoredReference{}, ErrFileRequired
	}
	if req.Kind == "" {
		return interfaces.StoredReference{}, ErrKindRequired
	}

	dir := filepath.Join(g.root, string(req.Kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return interfaces.StoredReference{}, fmt.Errorf("media: create upload dir: %w", err)
	}

	ext := filepath.Ext(req.FileName)
	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, req.Data, 0o644); err != nil {
		return interfaces.StoredReference{}, fmt.Errorf("media: write upload: %w", err)
	}

	relative := fmt.Sprintf("%s/%s", req.Kind, name)
	url := relative
	if g.publicURL != "" {
		url = fmt.Sprintf("%s/%s", g.publicURL, relative)
	}
	return interfaces.StoredReference{
		URL:        url,
		Path:       path,
		MimeType:   util.FirstNonEmpty(req.ContentType, "application/octet-stream"),
		Size:       int64(len(req.Data)),
		UploadedAt: time.Now().UTC(),
	}, nil
}
