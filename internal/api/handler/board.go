package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/graretg02/Superbowl-app2/internal/api/request"
	"github.com/graretg02/Superbowl-app2/internal/api/response"
	"github.com/graretg02/Superbowl-app2/internal/model"
	"github.com/graretg02/Superbowl-app2/internal/services/game"
)

// BoardHandler handles board endpoints. Every mutation responds with the updated board.
type BoardHandler struct {
	controller *game.Controller
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(controller *game.Controller) *BoardHandler {
	return &BoardHandler{controller: controller}
}

func (h *BoardHandler) writeBoard(w http.ResponseWriter, status int) {
	response.JSON(w, status, response.BoardFromSession(h.controller.Snapshot()))
}

// Get handles GET /api/v1/board
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeBoard(w, http.StatusOK)
}

// AddParticipant handles POST /api/v1/participants
func (h *BoardHandler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var req request.AddParticipantRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.controller.AddParticipant(r.Context(), req.FirstName, req.LastName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AddParticipantResponse{
		Participant: response.ParticipantFromModel(p, 0),
		Board:       response.BoardFromSession(h.controller.Snapshot()),
	})
}

// RemoveParticipant handles DELETE /api/v1/participants/{id}
func (h *BoardHandler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	id := model.ParticipantID(mux.Vars(r)["id"])

	if err := h.controller.RemoveParticipant(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	h.writeBoard(w, http.StatusOK)
}

// SetActive handles PUT /api/v1/active
func (h *BoardHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req request.SetActiveRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.controller.SetActiveParticipant(r.Context(), model.ParticipantID(req.ParticipantID)); err != nil {
		WriteError(w, err)
		return
	}
	h.writeBoard(w, http.StatusOK)
}

// ToggleCell handles POST /api/v1/cells/{row}/{col}/toggle
func (h *BoardHandler) ToggleCell(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	row, errRow := strconv.Atoi(vars["row"])
	col, errCol := strconv.Atoi(vars["col"])
	if errRow != nil || errCol != nil {
		WriteError(w, model.ErrInvalidPosition)
		return
	}

	if err := h.controller.ToggleCell(r.Context(), model.Position{Row: row, Col: col}); err != nil {
		WriteError(w, err)
		return
	}
	h.writeBoard(w, http.StatusOK)
}

// Randomize handles POST /api/v1/randomize
func (h *BoardHandler) Randomize(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Randomize(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	h.writeBoard(w, http.StatusOK)
}

// Unlock handles POST /api/v1/unlock
func (h *BoardHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Unlock(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	h.writeBoard(w, http.StatusOK)
}

// Reset handles POST /api/v1/reset
func (h *BoardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.controller.Reset(r.Context())
	h.writeBoard(w, http.StatusOK)
}

// SetTeamName handles PUT /api/v1/teams/{which}
func (h *BoardHandler) SetTeamName(w http.ResponseWriter, r *http.Request) {
	team, ok := model.ParseTeam(mux.Vars(r)["which"])
	if !ok {
		WriteError(w, model.ErrInvalidTeam)
		return
	}

	var req request.SetTeamNameRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.controller.SetTeamName(r.Context(), team, req.Name); err != nil {
		WriteError(w, err)
		return
	}
	h.writeBoard(w, http.StatusOK)
}

// TeamPresets handles GET /api/v1/teams/presets
func (h *BoardHandler) TeamPresets(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.TeamPresetsFromModel(model.TeamPresets))
}

// SetView handles PUT /api/v1/view
func (h *BoardHandler) SetView(w http.ResponseWriter, r *http.Request) {
	var req request.SetViewRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.controller.SetView(r.Context(), model.View(req.View)); err != nil {
		WriteError(w, err)
		return
	}
	h.writeBoard(w, http.StatusOK)
}
