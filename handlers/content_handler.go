package handlers

import (
	"net/http"

	"github.com/muskiz/beach-handball/models"
	"github.com/muskiz/beach-handball/services"
)

type ContentHandler struct {
	contentService services.ContentService
}

func NewContentHandler(cs services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: cs}
}

func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.contentService.Get(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"content": content})
}

func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var input services.UpdateContentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	content, err := h.contentService.Update(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"content": content})
}

func (h *ContentHandler) AddSponsor(w http.ResponseWriter, r *http.Request) {
	var input services.SponsorInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	sponsor, err := h.contentService.AddSponsor(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, jsonResponse{"sponsor": sponsor})
}

func (h *ContentHandler) DeleteSponsor(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "sponsorID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.contentService.DeleteSponsor(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) AddGalleryItem(w http.ResponseWriter, r *http.Request) {
	var input services.GalleryItemInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	item, err := h.contentService.AddGalleryItem(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, jsonResponse{"item": item})
}

func (h *ContentHandler) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "itemID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.contentService.DeleteGalleryItem(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) GetLimits(w http.ResponseWriter, r *http.Request) {
	limits, err := h.contentService.GetLimits(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"limits": limits})
}

// UpdateLimits принимает частичную карту {"Elite": 10}; остальные категории не меняются.
func (h *ContentHandler) UpdateLimits(w http.ResponseWriter, r *http.Request) {
	var input models.CategoryLimits
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	limits, err := h.contentService.UpdateLimits(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"limits": limits})
}
