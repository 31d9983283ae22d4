package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/velora/jewelcms/internal/logging"
	"github.com/velora/jewelcms/pkg/interfaces"
)

// maxUploadBytes bounds a single multipart upload. Uploads are whole-file,
// single attempt; anything larger belongs on a direct-to-storage path.
const maxUploadBytes = 32 << 20

var allowedKinds = map[interfaces.DestinationKind]struct{}{
	interfaces.DestinationGallery: {},
	interfaces.DestinationSlider:  {},
	interfaces.DestinationPopup:   {},
}

func (api *AdminAPI) registerUploadRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "uploads")
	mux.HandleFunc("POST "+root+"/{kind}", api.handleUpload)
}

func (api *AdminAPI) handleUpload(w http.ResponseWriter, r *http.Request) {
	kind := interfaces.DestinationKind(r.PathValue("kind"))
	if _, ok := allowedKinds[kind]; !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: "unknown upload destination",
		})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: "invalid multipart body",
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: "file field is required",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: "could not read file",
		})
		return
	}

	ref, err := api.gateway.Upload(r.Context(), interfaces.UploadRequest{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
		Kind:        kind,
		Credential:  bearerCredential(r),
	})
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   "upload_failed",
			Message: err.Error(),
		})
		return
	}

	logging.WithFields(api.logger, map[string]any{
		"operation": "http.uploads",
		"kind":      string(kind),
		"file":      header.Filename,
		"size":      len(data),
	}).Info("http.upload_stored")
	writeJSON(w, http.StatusCreated, ref)
}

// bearerCredential extracts the caller's opaque bearer token, forwarded
// verbatim to downstream gateways. Verification happens upstream of this
// adapter.
func bearerCredential(r *http.Request) interfaces.Credential {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return interfaces.Credential(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
