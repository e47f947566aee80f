package handler

import (
	"net/http"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/tournament"
)

// MaxReasonLength bounds audit reasons
const MaxReasonLength = 500

// TournamentHandler serves tournament reads and lifecycle transitions
type TournamentHandler struct {
	service tournament.Service
}

// NewTournamentHandler creates a new TournamentHandler
func NewTournamentHandler(service tournament.Service) *TournamentHandler {
	return &TournamentHandler{service: service}
}

// TransitionRequest moves a tournament one step along its lifecycle
type TransitionRequest struct {
	ToState domain.LifecycleState `json:"to_state" validate:"required,lifecycle_state"`
	Reason  string                `json:"reason,omitempty" validate:"max=500"`
}

// HandleGet returns a tournament
// @Summary Get tournament
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} domain.Tournament
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tournaments/{id} [get]
func (h *TournamentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := tournamentIDParam(w, r)
	if !ok {
		return
	}

	t, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpGetTournament, err)
		return
	}
	respondJSON(w, http.StatusOK, t)
}

// HandleTransition applies a lifecycle transition from the transition table
// @Summary Transition tournament
// @Description REWARDS_DISTRIBUTED is reached only through distribution
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param request body TransitionRequest true "Target state"
// @Param X-Actor-ID header string false "Caller identity"
// @Success 200 {object} domain.StatusChange
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tournaments/{id}/transition [post]
func (h *TournamentHandler) HandleTransition(w http.ResponseWriter, r *http.Request) {
	id, ok := tournamentIDParam(w, r)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpTransition, false); err != nil {
		return
	}

	change, err := h.service.Transition(r.Context(), id, req.ToState, actorID(r), req.Reason)
	if err != nil {
		respondServiceError(w, r, OpTransition, err)
		return
	}
	respondJSON(w, http.StatusOK, change)
}

// HandleStatusHistory returns the audited lifecycle changes of a tournament, oldest first
// @Summary List status history
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {array} domain.StatusChange
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tournaments/{id}/history [get]
func (h *TournamentHandler) HandleStatusHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := tournamentIDParam(w, r)
	if !ok {
		return
	}

	history, err := h.service.ListStatusHistory(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpStatusHistory, err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}
