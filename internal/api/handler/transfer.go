package handler

import (
	"net/http"

	"github.com/graretg02/Superbowl-app2/internal/api/request"
	"github.com/graretg02/Superbowl-app2/internal/api/response"
	"github.com/graretg02/Superbowl-app2/internal/services/game"
)

// TransferHandler handles export, import and analysis
type TransferHandler struct {
	controller *game.Controller
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(controller *game.Controller) *TransferHandler {
	return &TransferHandler{controller: controller}
}

// Export handles GET /api/v1/transfer
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	code, err := h.controller.Export()
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TransferCode{Code: code})
}

// Import handles POST /api/v1/transfer
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req request.ImportRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.controller.Import(r.Context(), req.Code); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.BoardFromSession(h.controller.Snapshot()))
}

// Analyze handles POST /api/v1/analysis
func (h *TransferHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	text, err := h.controller.Analyze(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Analysis{Text: text})
}
