package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Code is a stable machine-readable identifier.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// StateErrorResponse is returned when an operation is attempted from the wrong lifecycle state
type StateErrorResponse struct {
	Error          string                  `json:"error"`
	Code           string                  `json:"code"`
	CurrentState   domain.LifecycleState   `json:"current_state"`
	RequiredStates []domain.LifecycleState `json:"required_states"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondServiceError maps a service error to its status and body and logs it at a level
// matching who is at fault: client errors at WARN, server errors at ERROR.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	var guard *domain.StateGuardError
	if errors.As(err, &guard) {
		log.Warn(opName+" rejected", "error", err)
		respondJSON(w, http.StatusBadRequest, StateErrorResponse{
			Error:          guard.Error(),
			Code:           CodeInvalidTournamentState,
			CurrentState:   guard.Current,
			RequiredStates: guard.Required,
		})
		return
	}

	status, code, message := mapServiceError(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, code, message)
}

// mapServiceError maps domain errors to an HTTP status, an error code and a client message.
// Server errors never expose the underlying error text.
func mapServiceError(err error) (int, string, string) {
	if err == nil {
		return http.StatusInternalServerError, CodeInternal, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrTournamentNotFound):
		return http.StatusNotFound, CodeTournamentNotFound, err.Error()
	case errors.Is(err, domain.ErrUnresolvedRankTie), errors.Is(err, domain.ErrInvalidRanking):
		return http.StatusUnprocessableEntity, CodeInvalidRankings, err.Error()
	case errors.Is(err, domain.ErrAlreadyRewarded):
		return http.StatusConflict, CodeAlreadyDistributed, err.Error()
	case errors.Is(err, domain.ErrTournamentHasLedgerEntries):
		return http.StatusConflict, CodeTournamentHasLedgerEntries, err.Error()
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusBadRequest, CodeInvalidTournamentState, err.Error()
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusBadRequest, CodeInvalidTransition, err.Error()
	case errors.Is(err, domain.ErrReasonRequired):
		return http.StatusBadRequest, CodeReasonRequired, err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, CodeInvalidInput, err.Error()
	case errors.Is(err, domain.ErrInvalidPolicy):
		return http.StatusUnprocessableEntity, CodeInvalidPolicy, err.Error()
	}

	return http.StatusInternalServerError, CodeInternal, ErrMsgGenericServerError
}
