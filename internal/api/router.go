package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/graretg02/Superbowl-app2/internal/api/apierr"
	"github.com/graretg02/Superbowl-app2/internal/api/handler"
	"github.com/graretg02/Superbowl-app2/internal/api/response"
	"github.com/graretg02/Superbowl-app2/internal/dependencies/ids"
	"github.com/graretg02/Superbowl-app2/internal/middleware"
	"github.com/graretg02/Superbowl-app2/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	// RequestIDs generates request ids (optional, defaults to UUIDs)
	RequestIDs ids.Generator
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	requestIDs := cfg.RequestIDs
	if requestIDs == nil {
		requestIDs = ids.New()
	}

	// Create handlers
	boardHandler := handler.NewBoardHandler(cfg.GameController)
	transferHandler := handler.NewTransferHandler(cfg.GameController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID(requestIDs))
	api.Use(middleware.Recovery(cfg.Logger, apiPanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	// Board
	api.HandleFunc("/board", boardHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/randomize", boardHandler.Randomize).Methods(http.MethodPost)
	api.HandleFunc("/unlock", boardHandler.Unlock).Methods(http.MethodPost)
	api.HandleFunc("/reset", boardHandler.Reset).Methods(http.MethodPost)
	api.HandleFunc("/cells/{row}/{col}/toggle", boardHandler.ToggleCell).Methods(http.MethodPost)

	// Participants
	api.HandleFunc("/participants", boardHandler.AddParticipant).Methods(http.MethodPost)
	api.HandleFunc("/participants/{id}", boardHandler.RemoveParticipant).Methods(http.MethodDelete)
	api.HandleFunc("/active", boardHandler.SetActive).Methods(http.MethodPut)

	// Teams and view
	api.HandleFunc("/teams/presets", boardHandler.TeamPresets).Methods(http.MethodGet)
	api.HandleFunc("/teams/{which}", boardHandler.SetTeamName).Methods(http.MethodPut)
	api.HandleFunc("/view", boardHandler.SetView).Methods(http.MethodPut)

	// Transfer and analysis
	api.HandleFunc("/transfer", transferHandler.Export).Methods(http.MethodGet)
	api.HandleFunc("/transfer", transferHandler.Import).Methods(http.MethodPost)
	api.HandleFunc("/analysis", transferHandler.Analyze).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler(cfg.GameController)).Methods(http.MethodGet)

	return r
}

func healthHandler(controller *game.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := controller.Snapshot().SaveStatus
		response.JSON(w, http.StatusOK, response.Health{Status: "ok", SaveStatus: string(status)})
	}
}

// apiPanicHandler answers a panicking request with a JSON error
func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
