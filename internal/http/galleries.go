package http

import (
	"net/http"

	"github.com/google/uuid"

	galleriescmd "github.com/velora/jewelcms/internal/commands/galleries"
	"github.com/velora/jewelcms/internal/galleries"
	"github.com/velora/jewelcms/internal/logging"
	"github.com/velora/jewelcms/internal/validation"
)

type galleryPayload struct {
	Title     string            `json:"title"`
	Subtitle  string            `json:"subtitle"`
	IsActive  bool              `json:"is_active"`
	SortOrder int               `json:"sort_order"`
	Items     []galleryItemBody `json:"items"`
}

type galleryItemBody struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    string  `json:"image_url"`
	SortOrder   int     `json:"sort_order,omitempty"`
	IsActive    bool    `json:"is_active"`
}

func (api *AdminAPI) registerGalleryRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "galleries")

	mux.HandleFunc("GET "+root, api.handleGalleryList)
	mux.HandleFunc("POST "+root, api.handleGalleryCreate)
	mux.HandleFunc("GET "+root+"/{id}", api.handleGalleryGet)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleGalleryUpdate)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleGalleryDelete)
	mux.HandleFunc("PATCH "+root+"/{id}/toggle", api.handleGalleryToggle)
	if api.commands != nil {
		mux.HandleFunc("POST "+root+"/{id}/items/reorder", api.handleItemReorder)
	}
}

func (api *AdminAPI) handleGalleryList(w http.ResponseWriter, r *http.Request) {
	records, err := api.galleries.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (api *AdminAPI) handleGalleryGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	record, err := api.galleries.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleGalleryCreate(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeGalleryPayload(w, r)
	if !ok {
		return
	}

	record, err := api.galleries.Create(r.Context(), galleries.CreateGalleryInput{
		Title:     payload.Title,
		Subtitle:  payload.Subtitle,
		IsActive:  payload.IsActive,
		SortOrder: payload.SortOrder,
		Items:     payload.items(),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	logging.WithFields(api.logger, map[string]any{
		"operation":  "http.galleries.create",
		"gallery_id": record.ID.String(),
	}).Info("http.gallery_created")
	writeJSON(w, http.StatusCreated, record)
}

func (api *AdminAPI) handleGalleryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	payload, ok := decodeGalleryPayload(w, r)
	if !ok {
		return
	}

	record, err := api.galleries.Update(r.Context(), id, galleries.UpdateGalleryInput{
		Title:     payload.Title,
		Subtitle:  payload.Subtitle,
		IsActive:  payload.IsActive,
		SortOrder: payload.SortOrder,
		Items:     payload.items(),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleGalleryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var err error
	if api.commands != nil {
		err = api.commands.ExecuteDelete(r.Context(), galleriescmd.DeleteGalleryCommand{GalleryID: id})
	} else {
		err = api.galleries.Delete(r.Context(), id)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleGalleryToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if api.commands != nil {
		if err := api.commands.ExecuteToggle(r.Context(), galleriescmd.ToggleGalleryCommand{GalleryID: id}); err != nil {
			writeError(w, err)
			return
		}
		record, err := api.galleries.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, record)
		return
	}
	record, err := api.galleries.ToggleActive(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

type reorderBody struct {
	ItemIndex int    `json:"item_index"`
	Direction string `json:"direction"`
}

func (api *AdminAPI) handleItemReorder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body reorderBody
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: "invalid JSON body",
		})
		return
	}

	err := api.commands.ExecuteReorder(r.Context(), galleriescmd.ReorderItemCommand{
		GalleryID: id,
		ItemIndex: body.ItemIndex,
		Direction: body.Direction,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	record, err := api.galleries.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	logging.WithFields(api.logger, map[string]any{
		"operation":  "http.galleries.reorder",
		"gallery_id": id.String(),
		"item_index": body.ItemIndex,
		"direction":  body.Direction,
	}).Info("http.gallery_reordered")
	writeJSON(w, http.StatusOK, record)
}

// decodeGalleryPayload decodes and schema-validates the request body. The
// raw body is validated before it is bound so issue locations line up with
// what the client actually sent.
func decodeGalleryPayload(w http.ResponseWriter, r *http.Request) (galleryPayload, bool) {
	var raw map[string]any
	if err := decodeJSON(r, &raw); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: "invalid JSON body",
		})
		return galleryPayload{}, false
	}
	if err := validation.ValidateGalleryPayload(raw); err != nil {
		writeError(w, err)
		return galleryPayload{}, false
	}

	var payload galleryPayload
	if err := rebind(raw, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: "invalid gallery payload",
		})
		return galleryPayload{}, false
	}
	return payload, true
}

func (p galleryPayload) items() []galleries.ItemPayload {
	items := make([]galleries.ItemPayload, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, galleries.ItemPayload{
			Title:       item.Title,
			Description: item.Description,
			ImageURL:    item.ImageURL,
			SortOrder:   item.SortOrder,
			IsActive:    item.IsActive,
		})
	}
	return items
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: "invalid gallery id",
		})
		return uuid.Nil, false
	}
	return id, true
}
