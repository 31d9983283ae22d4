// Package persistence provides the HTTP client for a remote gallery admin
// API, implementing the persistence contract the editor submits to.
package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/velora/jewelcms/internal/galleries"
	"github.com/velora/jewelcms/internal/util"
	"github.com/velora/jewelcms/pkg/interfaces"
)

// Client talks JSON to a gallery admin API. Each call attaches the caller's
// bearer credential; the client holds no token of its own.
type Client struct {
	baseURL string
	client  *http.Client
}

// ClientOption customises the persistence client.
type ClientOption func(*Client)

// ClientWithHTTPClient overrides the underlying HTTP client. Timeout
// semantics are delegated entirely to it.
func ClientWithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// NewClient constructs a client rooted at baseURL (e.g.
// "https://api.example.com/admin/api").
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

var _ galleries.PersistenceAPI = (*Client)(nil)

// Create posts a resolved payload and returns the canonical entity.
func (c *Client) Create(ctx context.Context, payload galleries.GalleryPayload, cred interfaces.Credential) (*galleries.Gallery, error) {
	var out galleries.Gallery
	if err := c.do(ctx, http.MethodPost, "/galleries", payload, cred, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the gallery's desired state and returns the canonical entity.
func (c *Client) Update(ctx context.Context, id uuid.UUID, payload galleries.GalleryPayload, cred interfaces.Credential) (*galleries.Gallery, error) {
	var out galleries.Gallery
	if err := c.do(ctx, http.MethodPut, "/galleries/"+id.String(), payload, cred, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List fetches every gallery for the surrounding list view.
func (c *Client) List(ctx context.Context, cred interfaces.Credential) ([]*galleries.Gallery, error) {
	var out []*galleries.Gallery
	if err := c.do(ctx, http.MethodGet, "/galleries", nil, cred, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a gallery.
func (c *Client) Delete(ctx context.Context, id uuid.UUID, cred interfaces.Credential) error {
	return c.do(ctx, http.MethodDelete, "/galleries/"+id.String(), nil, cred, nil)
}

// ToggleActive flips storefront visibility and returns the updated entity.
func (c *Client) ToggleActive(ctx context.Context, id uuid.UUID, cred interfaces.Credential) (*galleries.Gallery, error) {
	var out galleries.Gallery
	if err := c.do(ctx, http.MethodPatch, "/galleries/"+id.String()+"/toggle", nil, cred, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Issues  []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"issues,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, cred interfaces.Credential, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &galleries.PersistenceError{
				Kind:    galleries.PersistenceTransport,
				Message: "encode request",
				Err:     err,
			}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &galleries.PersistenceError{
			Kind:    galleries.PersistenceTransport,
			Message: "build request",
			Err:     err,
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred != "" {
		req.Header.Set("Authorization", "Bearer "+string(cred))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &galleries.PersistenceError{
			Kind:    galleries.PersistenceTransport,
			Message: fmt.Sprintf("%s %s", method, path),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &galleries.PersistenceError{
				Kind:    galleries.PersistenceTransport,
				Message: "decode response",
				Err:     err,
			}
		}
		return nil
	}

	return mapStatusError(resp)
}

// mapStatusError converts a non-2xx response into the editor's error
// taxonomy. Field paths are preserved when the server reports them so the
// editor can highlight the offending fields.
func mapStatusError(resp *http.Response) error {
	var payload apiError
	_ = json.NewDecoder(io.LimitReader(resp.Body, 8192)).Decode(&payload)

	message := util.FirstNonEmpty(payload.Message, payload.Error, resp.Status)

	switch {
	case resp.StatusCode == http.StatusConflict:
		return &galleries.PersistenceError{Kind: galleries.PersistenceConflict, Message: message}
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		fields := make(map[string]string, len(payload.Issues))
		for _, issue := range payload.Issues {
			if issue.Location != "" {
				fields[issue.Location] = issue.Message
			}
		}
		return &galleries.PersistenceError{
			Kind:    galleries.PersistenceValidation,
			Message: message,
			Fields:  fields,
		}
	default:
		return &galleries.PersistenceError{
			Kind:    galleries.PersistenceTransport,
			Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, message),
		}
	}
}
