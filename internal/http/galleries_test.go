package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	galleriescmd "github.com/velora/jewelcms/internal/commands/galleries"
	"github.com/velora/jewelcms/internal/galleries"
)

func newTestAPI(t *testing.T) (*http.ServeMux, galleries.Service) {
	t.Helper()
	svc := galleries.NewService(galleries.NewMemoryGalleryRepository())
	api := NewAdminAPI(WithGalleryService(svc))
	mux := http.NewServeMux()
	api.Register(mux)
	return mux, svc
}

func newCommandAPI(t *testing.T) (*http.ServeMux, galleries.Service) {
	t.Helper()
	svc := galleries.NewService(galleries.NewMemoryGalleryRepository())
	api := NewAdminAPI(
		WithGalleryService(svc),
		WithGalleryCommands(galleriescmd.NewGalleryHandler(svc, nil)),
	)
	mux := http.NewServeMux()
	api.Register(mux)
	return mux, svc
}

func validGalleryBody() map[string]any {
	return map[string]any{
		"title":      "Rings",
		"subtitle":   "Engagement rings",
		"is_active":  true,
		"sort_order": 1,
		"items": []map[string]any{
			{"title": "Solitaire", "image_url": "https://cdn.example.com/a.jpg", "sort_order": 1, "is_active": true},
		},
	}
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)
	return recorder
}

func createGallery(t *testing.T, mux *http.ServeMux) galleries.Gallery {
	t.Helper()
	recorder := doJSON(t, mux, http.MethodPost, "/admin/api/galleries", validGalleryBody())
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", recorder.Code, recorder.Body.String())
	}
	var created galleries.Gallery
	if err := json.Unmarshal(recorder.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created gallery: %v", err)
	}
	return created
}

func TestGalleryCreateEndpoint(t *testing.T) {
	mux, _ := newTestAPI(t)
	created := createGallery(t, mux)
	if created.ID == uuid.Nil {
		t.Fatal("missing id in response")
	}
	if created.Slug != "rings" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}
	if len(created.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(created.Items))
	}
}

func TestGalleryCreateRejectsInvalidPayload(t *testing.T) {
	mux, _ := newTestAPI(t)

	body := validGalleryBody()
	delete(body, "title")
	recorder := doJSON(t, mux, http.MethodPost, "/admin/api/galleries", body)
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response errorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if len(response.Issues) == 0 {
		t.Fatalf("expected issues in response, got %+v", response)
	}
}

func TestGalleryCreateRejectsEmptyItems(t *testing.T) {
	mux, _ := newTestAPI(t)
	body := validGalleryBody()
	body["items"] = []map[string]any{}
	recorder := doJSON(t, mux, http.MethodPost, "/admin/api/galleries", body)
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestGalleryCreateRejectsMalformedJSON(t *testing.T) {
	mux, _ := newTestAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/admin/api/galleries", bytes.NewReader([]byte("{not json")))
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestGalleryListEndpoint(t *testing.T) {
	mux, _ := newTestAPI(t)
	createGallery(t, mux)

	recorder := doJSON(t, mux, http.MethodGet, "/admin/api/galleries", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("list returned %d", recorder.Code)
	}
	var listed []galleries.Gallery
	if err := json.Unmarshal(recorder.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 gallery, got %d", len(listed))
	}
}

func TestGalleryGetEndpoint(t *testing.T) {
	mux, _ := newTestAPI(t)
	created := createGallery(t, mux)

	recorder := doJSON(t, mux, http.MethodGet, "/admin/api/galleries/"+created.ID.String(), nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("get returned %d", recorder.Code)
	}

	recorder = doJSON(t, mux, http.MethodGet, "/admin/api/galleries/"+uuid.NewString(), nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", recorder.Code)
	}

	recorder = doJSON(t, mux, http.MethodGet, "/admin/api/galleries/not-a-uuid", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid id, got %d", recorder.Code)
	}
}

func TestGalleryUpdateEndpoint(t *testing.T) {
	mux, _ := newTestAPI(t)
	created := createGallery(t, mux)

	body := validGalleryBody()
	body["subtitle"] = "Refreshed"
	recorder := doJSON(t, mux, http.MethodPut, "/admin/api/galleries/"+created.ID.String(), body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", recorder.Code, recorder.Body.String())
	}
	var updated galleries.Gallery
	if err := json.Unmarshal(recorder.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated gallery: %v", err)
	}
	if updated.Subtitle != "Refreshed" {
		t.Fatalf("unexpected subtitle %q", updated.Subtitle)
	}
}

func TestGalleryToggleEndpoint(t *testing.T) {
	mux, _ := newTestAPI(t)
	created := createGallery(t, mux)

	recorder := doJSON(t, mux, http.MethodPatch, "/admin/api/galleries/"+created.ID.String()+"/toggle", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("toggle returned %d", recorder.Code)
	}
	var toggled galleries.Gallery
	if err := json.Unmarshal(recorder.Body.Bytes(), &toggled); err != nil {
		t.Fatalf("decode toggled gallery: %v", err)
	}
	if toggled.IsActive {
		t.Fatal("expected gallery to deactivate")
	}
}

func createThreeItemGallery(t *testing.T, mux *http.ServeMux) galleries.Gallery {
	t.Helper()
	body := validGalleryBody()
	body["items"] = []map[string]any{
		{"title": "First", "image_url": "https://cdn.example.com/1.jpg", "sort_order": 1, "is_active": true},
		{"title": "Second", "image_url": "https://cdn.example.com/2.jpg", "sort_order": 2, "is_active": true},
		{"title": "Third", "image_url": "https://cdn.example.com/3.jpg", "sort_order": 3, "is_active": true},
	}
	recorder := doJSON(t, mux, http.MethodPost, "/admin/api/galleries", body)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", recorder.Code, recorder.Body.String())
	}
	var created galleries.Gallery
	if err := json.Unmarshal(recorder.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created gallery: %v", err)
	}
	return created
}

func TestGalleryToggleRoutesThroughCommands(t *testing.T) {
	mux, _ := newCommandAPI(t)
	created := createGallery(t, mux)

	recorder := doJSON(t, mux, http.MethodPatch, "/admin/api/galleries/"+created.ID.String()+"/toggle", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("toggle returned %d: %s", recorder.Code, recorder.Body.String())
	}
	var toggled galleries.Gallery
	if err := json.Unmarshal(recorder.Body.Bytes(), &toggled); err != nil {
		t.Fatalf("decode toggled gallery: %v", err)
	}
	if toggled.IsActive {
		t.Fatal("expected gallery to deactivate")
	}
}

func TestGalleryDeleteRoutesThroughCommands(t *testing.T) {
	mux, svc := newCommandAPI(t)
	created := createGallery(t, mux)

	recorder := doJSON(t, mux, http.MethodDelete, "/admin/api/galleries/"+created.ID.String(), nil)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("delete returned %d", recorder.Code)
	}
	if _, err := svc.Get(context.Background(), created.ID); err == nil {
		t.Fatal("gallery still retrievable after delete")
	}

	recorder = doJSON(t, mux, http.MethodDelete, "/admin/api/galleries/"+created.ID.String(), nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for repeated delete, got %d", recorder.Code)
	}
}

func TestItemReorderEndpoint(t *testing.T) {
	mux, svc := newCommandAPI(t)
	created := createThreeItemGallery(t, mux)

	recorder := doJSON(t, mux, http.MethodPost,
		"/admin/api/galleries/"+created.ID.String()+"/items/reorder",
		map[string]any{"item_index": 0, "direction": "down"})
	if recorder.Code != http.StatusOK {
		t.Fatalf("reorder returned %d: %s", recorder.Code, recorder.Body.String())
	}

	reloaded, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(reloaded.Items))
	}
	if reloaded.Items[0].Title == nil || *reloaded.Items[0].Title != "Second" {
		t.Fatalf("unexpected first item after reorder: %+v", reloaded.Items[0])
	}
	for i, item := range reloaded.Items {
		if item.SortOrder != i+1 {
			t.Fatalf("sort orders not dense after reorder: %+v", reloaded.Items)
		}
	}
}

func TestItemReorderRejectsBadDirection(t *testing.T) {
	mux, _ := newCommandAPI(t)
	created := createThreeItemGallery(t, mux)

	recorder := doJSON(t, mux, http.MethodPost,
		"/admin/api/galleries/"+created.ID.String()+"/items/reorder",
		map[string]any{"item_index": 0, "direction": "sideways"})
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for bad direction, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestItemReorderRejectsOutOfRangeIndex(t *testing.T) {
	mux, _ := newCommandAPI(t)
	created := createThreeItemGallery(t, mux)

	recorder := doJSON(t, mux, http.MethodPost,
		"/admin/api/galleries/"+created.ID.String()+"/items/reorder",
		map[string]any{"item_index": 9, "direction": "up"})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range index, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestItemReorderRouteRequiresCommands(t *testing.T) {
	mux, _ := newTestAPI(t)
	created := createGallery(t, mux)

	recorder := doJSON(t, mux, http.MethodPost,
		"/admin/api/galleries/"+created.ID.String()+"/items/reorder",
		map[string]any{"item_index": 0, "direction": "down"})
	if recorder.Code == http.StatusOK {
		t.Fatal("reorder route should not be mounted without the command layer")
	}
}

func TestGalleryDeleteEndpoint(t *testing.T) {
	mux, svc := newTestAPI(t)
	created := createGallery(t, mux)

	recorder := doJSON(t, mux, http.MethodDelete, "/admin/api/galleries/"+created.ID.String(), nil)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("delete returned %d", recorder.Code)
	}
	if _, err := svc.Get(context.Background(), created.ID); err == nil {
		t.Fatal("gallery still retrievable after delete")
	}
}
