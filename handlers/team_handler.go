package handlers

import (
	"errors"
	"net/http"

	"github.com/muskiz/beach-handball/models"
	"github.com/muskiz/beach-handball/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: ts}
}

// RegisterTeam godoc
// @Summary Inscribir un equipo
// @Tags teams
// @Accept json
// @Produce json
// @Param input body services.RegisterTeamInput true "Equipo"
// @Success 201 {object} map[string]interface{} "Equipo creado"
// @Failure 400 {object} map[string]string "JSON inválido"
// @Failure 409 {object} map[string]string "Nombre ocupado o categoría completa"
// @Failure 422 {object} map[string]interface{} "Errores de validación por campo"
// @Router /teams [post]
func (h *TeamHandler) RegisterTeam(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.Register(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, jsonResponse{"team": team})
}

// ListTeams godoc
// @Summary Lista de equipos
// @Tags teams
// @Produce json
// @Param division query string false "Elite, Amateur o Juvenil"
// @Success 200 {object} map[string]interface{}
// @Router /teams [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	division, err := divisionParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teams, err := h.teamService.List(r.Context(), division)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"teams": teams})
}

func (h *TeamHandler) GetTeamByID(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	team, err := h.teamService.GetByID(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"team": team})
}

func (h *TeamHandler) UpdateTeamDetails(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input services.UpdateTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Name == nil && input.City == nil {
		badRequestResponse(w, r, errors.New("nothing to update"))
		return
	}

	team, err := h.teamService.Update(r.Context(), teamID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"team": team})
}

func (h *TeamHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input services.PlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.teamService.AddPlayer(r.Context(), teamID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, jsonResponse{"player": player})
}

func (h *TeamHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	playerID, err := urlParam(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.teamService.RemovePlayer(r.Context(), teamID, playerID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImportRoster godoc
// @Summary Importar plantilla desde CSV
// @Description Cabecera: Nombre,Apellidos,DNI,FechaNacimiento,Numero,Posicion. Las filas sin nombre o dorsal se devuelven en "skipped".
// @Tags teams
// @Accept text/csv
// @Produce json
// @Param teamID path string true "Team ID"
// @Success 200 {object} services.RosterImportResult
// @Failure 400 {object} map[string]string "CSV inválido"
// @Failure 404 {object} map[string]string "Equipo no encontrado"
// @Router /teams/{teamID}/players/import [post]
func (h *TeamHandler) ImportRoster(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	result, err := h.teamService.ImportRoster(r.Context(), teamID, r.Body)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, result)
}

func (h *TeamHandler) RosterTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="plantilla_jugadores.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(h.teamService.RosterTemplate())
}

func (h *TeamHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParam(r, "teamID")
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

	team, err := h.teamService.UploadLogo(r.Context(), teamID, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"team": team})
}

func (h *TeamHandler) SubmitDocument(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	playerID, err := urlParam(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	docType, err := urlParam(r, "docType")
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

	player, err := h.teamService.SubmitDocument(r.Context(), teamID, playerID, models.DocumentType(docType), contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"player": player})
}

// ReviewDocument - админ одобряет или отклоняет документ игрока.
func (h *TeamHandler) ReviewDocument(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	playerID, err := urlParam(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	docType, err := urlParam(r, "docType")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input struct {
		Approved *bool `json:"approved"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Approved == nil {
		failedValidationResponse(w, r, map[string]string{"approved": "must be provided"})
		return
	}

	player, err := h.teamService.ReviewDocument(r.Context(), teamID, playerID, models.DocumentType(docType), *input.Approved)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"player": player})
}

func (h *TeamHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	team, err := h.teamService.MarkPaid(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"team": team})
}
