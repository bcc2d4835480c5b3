package handlers

import (
	"net/http"

	"github.com/muskiz/beach-handball/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(s services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: s}
}

// GetStandings godoc
// @Summary Clasificación
// @Description Sin parámetro devuelve todas las categorías. Orden: puntos, diferencia de goles.
// @Tags standings
// @Produce json
// @Param division query string false "Elite, Amateur o Juvenil"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /standings [get]
func (h *StandingsHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	division, err := divisionParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if division == "" {
		all, err := h.standingsService.All(r.Context())
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, jsonResponse{"standings": all})
		return
	}

	rows, err := h.standingsService.Division(r.Context(), division)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"division": division, "standings": rows})
}
