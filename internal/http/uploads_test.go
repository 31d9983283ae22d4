package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/velora/jewelcms/internal/media"
	"github.com/velora/jewelcms/pkg/interfaces"
)

func newUploadAPI(t *testing.T) (*http.ServeMux, *media.MemoryGateway) {
	t.Helper()
	gateway := media.NewMemoryGateway()
	api := NewAdminAPI(WithUploadGateway(gateway))
	mux := http.NewServeMux()
	api.Register(mux)
	return mux, gateway
}

func multipartUpload(t *testing.T, name string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func TestUploadEndpointStoresFile(t *testing.T) {
	mux, gateway := newUploadAPI(t)

	body, contentType := multipartUpload(t, "band.jpg", []byte("jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/admin/api/uploads/gallery", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer staff-token")
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("upload returned %d: %s", recorder.Code, recorder.Body.String())
	}
	var ref interfaces.StoredReference
	if err := json.Unmarshal(recorder.Body.Bytes(), &ref); err != nil {
		t.Fatalf("decode reference: %v", err)
	}
	if !strings.HasPrefix(ref.URL, "mem://") {
		t.Fatalf("unexpected url %q", ref.URL)
	}

	requests := gateway.Requests()
	if len(requests) != 1 {
		t.Fatalf("expected 1 gateway request, got %d", len(requests))
	}
	if requests[0].Kind != interfaces.DestinationGallery {
		t.Fatalf("unexpected kind %q", requests[0].Kind)
	}
	if requests[0].Credential != "staff-token" {
		t.Fatalf("bearer token not forwarded, got %q", requests[0].Credential)
	}
	if string(requests[0].Data) != "jpeg-bytes" {
		t.Fatal("file bytes not forwarded intact")
	}
}

func TestUploadEndpointRejectsUnknownKind(t *testing.T) {
	mux, _ := newUploadAPI(t)

	body, contentType := multipartUpload(t, "band.jpg", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/admin/api/uploads/banner", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestUploadEndpointRequiresFileField(t *testing.T) {
	mux, _ := newUploadAPI(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("note", "no file here"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/api/uploads/gallery", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestUploadEndpointReportsGatewayFailure(t *testing.T) {
	mux, gateway := newUploadAPI(t)
	gateway.FailFile("band.jpg", errors.New("bucket unavailable"))

	body, contentType := multipartUpload(t, "band.jpg", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/admin/api/uploads/gallery", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", recorder.Code, recorder.Body.String())
	}
}
