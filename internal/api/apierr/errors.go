package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/graretg02/Superbowl-app2/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidName         = "INVALID_NAME"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeInvalidTeam         = "INVALID_TEAM"
	CodeInvalidView         = "INVALID_VIEW"
	CodeInvalidCode         = "INVALID_CODE"
	CodeParticipantNotFound = "PARTICIPANT_NOT_FOUND"
	CodeBoardLocked         = "BOARD_LOCKED"
	CodeBoardNotLocked      = "BOARD_NOT_LOCKED"
	CodeGridNotFull         = "GRID_NOT_FULL"
	CodeAnalysisInProgress  = "ANALYSIS_IN_PROGRESS"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// StatusFor returns the HTTP status an error is reported with
func StatusFor(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrParticipantNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeParticipantNotFound, "Participant not found"}}
	case errors.Is(err, model.ErrInvalidName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidName, "First and last name are required"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Row and column must be between 0 and 9"}}
	case errors.Is(err, model.ErrInvalidTeam):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTeam, "Team must be team1 or team2"}}
	case errors.Is(err, model.ErrInvalidView):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidView, "View must be grid or settings"}}
	case errors.Is(err, model.ErrInvalidTransferCode):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCode, "Invalid game code"}}
	case errors.Is(err, model.ErrBoardLocked):
		return &httpError{http.StatusConflict, APIError{CodeBoardLocked, "Board is locked"}}
	case errors.Is(err, model.ErrBoardNotLocked):
		return &httpError{http.StatusConflict, APIError{CodeBoardNotLocked, "Board is not locked"}}
	case errors.Is(err, model.ErrGridNotFull):
		return &httpError{http.StatusConflict, APIError{CodeGridNotFull, "Every square must be claimed first"}}
	case errors.Is(err, model.ErrAnalysisInProgress):
		return &httpError{http.StatusConflict, APIError{CodeAnalysisInProgress, "Analysis already in progress"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
