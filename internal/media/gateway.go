package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/velora/jewelcms/internal/logging"
	"github.com/velora/jewelcms/pkg/interfaces"
)

var (
	// ErrFileRequired reports an upload request without file bytes.
	ErrFileRequired = errors.New("media: file data required")
	// ErrKindRequired reports an upload request without a destination kind.
	ErrKindRequired = errors.New("media: destination kind required")
	// ErrUploadRejected reports a non-2xx response from the upload endpoint.
	ErrUploadRejected = errors.New("media: upload rejected")
)

// HTTPGateway implements the upload contract against a remote media endpoint
// using a multipart POST per file. Whole-file, single attempt; retry policy
// belongs to the caller.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
	logger  interfaces.Logger
}

// HTTPGatewayOption customises the HTTP gateway.
type HTTPGatewayOption func(*HTTPGateway)

// HTTPGatewayWithClient overrides the underlying HTTP client. Timeout
// semantics are delegated entirely to this client.
func HTTPGatewayWithClient(client *http.Client) HTTPGatewayOption {
	return func(g *HTTPGateway) {
		if client != nil {
			g.client = client
		}
	}
}

// HTTPGatewayWithLogger attaches a structured logger to upload calls.
func HTTPGatewayWithLogger(logger interfaces.Logger) HTTPGatewayOption {
	return func(g *HTTPGateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewHTTPGateway constructs a gateway posting to baseURL/uploads/{kind}.
func NewHTTPGateway(baseURL string, opts ...HTTPGatewayOption) *HTTPGateway {
	g := &HTTPGateway{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

type uploadResponse struct {
	URL      string `json:"url"`
	Path     string `json:"path,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// Upload posts the file as multipart form data and returns the stored
// reference the endpoint reports.
func (g *HTTPGateway) Upload(ctx context.Context, req interfaces.UploadRequest) (interfaces.StoredReference, error) {
	if len(req.Data) == 0 {
		return interfaces.StoredReference{}, ErrFileRequired
	}
	if req.Kind == "" {
		return interfaces.StoredReference{}, ErrKindRequired
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", req.FileName)
	if err != nil {
		return interfaces.StoredReference{}, fmt.Errorf("media: build multipart body: %w", err)
	}
	if _, err := part.Write(req.Data); err != nil {
		return interfaces.StoredReference{}, fmt.Errorf("media: build multipart body: %w", err)
	}
	if err := writer.WriteField("kind", string(req.Kind)); err != nil {
		return interfaces.StoredReference{}, fmt.Errorf("media: build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return interfaces.StoredReference{}, fmt.Errorf("media: build multipart body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/uploads/%s", g.baseURL, req.Kind)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return interfaces.StoredReference{}, fmt.Errorf("media: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	if req.Credential != "" {
		httpReq.Header.Set("Authorization", "Bearer "+string(req.Credential))
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return interfaces.StoredReference{}, fmt.Errorf("media: upload %s: %w", req.FileName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logging.WithFields(g.logger, map[string]any{
			"operation": "media.upload",
			"file":      req.FileName,
			"status":    resp.StatusCode,
		}).Warn("media.upload_rejected")
		return interfaces.StoredReference{}, fmt.Errorf("%w: status %d: %s", ErrUploadRejected, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var payload uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return interfaces.StoredReference{}, fmt.Errorf("media: decode upload response: %w", err)
	}
	if payload.URL == "" {
		return interfaces.StoredReference{}, fmt.Errorf("%w: response missing url", ErrUploadRejected)
	}

	return interfaces.StoredReference{
		URL:        payload.URL,
		Path:       payload.Path,
		MimeType:   payload.MimeType,
		Size:       payload.Size,
		UploadedAt: time.Now().UTC(),
	}, nil
}
