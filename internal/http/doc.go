// Package http provides optional HTTP adapters for the jewelcms admin API.
//
// Routes mount under /admin/api:
//   - Galleries: /galleries, /galleries/{id}, /galleries/{id}/toggle
//   - Uploads: /uploads/{kind} (multipart, one file per request)
//
// Host applications register the handlers on their own mux as needed.
package http
