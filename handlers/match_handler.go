package handlers

import (
	"net/http"
	"strings"

	"github.com/muskiz/beach-handball/models"
	"github.com/muskiz/beach-handball/repositories"
	"github.com/muskiz/beach-handball/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: ms}
}

// ListMatches godoc
// @Summary Calendario de partidos
// @Tags matches
// @Produce json
// @Param status query string false "SCHEDULED, LIVE o FINISHED"
// @Param division query string false "Elite, Amateur o Juvenil"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /matches [get]
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	division, err := divisionParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	filter := repositories.MatchFilter{
		Status:   models.MatchStatus(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("status")))),
		Division: division,
	}

	matches, err := h.matchService.List(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"matches": matches})
}

func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	match, err := h.matchService.GetByID(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"match": match})
}

func (h *MatchHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var input services.CreateMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	match, err := h.matchService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, jsonResponse{"match": match})
}

// SetScore godoc
// @Summary Registrar resultado
// @Description Con ambos marcadores el partido pasa a FINISHED; si falta alguno vuelve a SCHEDULED.
// @Tags admin
// @Accept json
// @Produce json
// @Param matchID path string true "Match ID"
// @Param input body services.ScoreInput true "Marcador"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Marcador negativo"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/matches/{matchID}/score [put]
func (h *MatchHandler) SetScore(w http.ResponseWriter, r *http.Request) {
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input services.ScoreInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	match, err := h.matchService.SetScore(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"match": match})
}

func (h *MatchHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input struct {
		Status models.MatchStatus `json:"status"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	match, err := h.matchService.SetStatus(r.Context(), matchID, input.Status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"match": match})
}

func (h *MatchHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.matchService.Delete(r.Context(), matchID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GenerateSchedule godoc
// @Summary Generar calendario (liga por categoría)
// @Description Sustituye todos los partidos existentes.
// @Tags admin
// @Accept json
// @Produce json
// @Param input body services.GenerateScheduleInput true "Franjas y pistas"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Pocos equipos o pocas franjas"
// @Failure 422 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/matches/generate [post]
func (h *MatchHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var input services.GenerateScheduleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matches, err := h.matchService.GenerateSchedule(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, jsonResponse{"matches": matches})
}

func (h *MatchHandler) GenerateKnockout(w http.ResponseWriter, r *http.Request) {
	var input services.GenerateKnockoutInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matches, err := h.matchService.GenerateKnockout(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, jsonResponse{"matches": matches})
}

func (h *MatchHandler) OpenReport(w http.ResponseWriter, r *http.Request) {
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	match, err := h.matchService.OpenReport(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"match": match})
}

func (h *MatchHandler) AdjustStat(w http.ResponseWriter, r *http.Request) {
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input services.AdjustStatInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	match, err := h.matchService.AdjustStat(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"match": match})
}

func (h *MatchHandler) SetObservations(w http.ResponseWriter, r *http.Request) {
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input struct {
		Observations string `json:"observations"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	match, err := h.matchService.SetObservations(r.Context(), matchID, input.Observations)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"match": match})
}

func (h *MatchHandler) AttachReportImage(w http.ResponseWriter, r *http.Request) {
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	file, contentType, err := uploadedFile(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	match, err := h.matchService.AttachReportImage(r.Context(), matchID, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"match": match})
}
