package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/muskiz/beach-handball/storage"
)

// MediaHandler раздаёт файлы из MemoryUploader, когда R2 не настроен.
type MediaHandler struct {
	store *storage.MemoryUploader
}

func NewMediaHandler(store *storage.MemoryUploader) *MediaHandler {
	return &MediaHandler{store: store}
}

func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if key == "" || strings.Contains(key, "..") {
		notFoundResponse(w, r, "")
		return
	}
	data, contentType, ok := h.store.Object(key)
	if !ok {
		notFoundResponse(w, r, "")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
