package handler

import (
	"net/http"

	"github.com/osse101/tournament-rewards/internal/rewards"
	"github.com/osse101/tournament-rewards/internal/tournament"
)

// AdminHandler serves privileged lifecycle overrides and operational endpoints
type AdminHandler struct {
	tournaments tournament.Service
	rewards     rewards.Service
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(tournaments tournament.Service, rewardsService rewards.Service) *AdminHandler {
	return &AdminHandler{
		tournaments: tournaments,
		rewards:     rewardsService,
	}
}

// ResetRequest carries the mandatory audit reason of a reset
type ResetRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// HandleResetToCompleted moves a REWARDS_DISTRIBUTED tournament back to COMPLETED
// @Summary Reset tournament to COMPLETED
// @Description Audited override; a later distribution must be forced
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param request body ResetRequest true "Audit reason"
// @Param X-Actor-ID header string false "Caller identity"
// @Success 200 {object} domain.StatusChange
// @Failure 400 {object} StateErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/tournaments/{id}/reset-to-completed [post]
func (h *AdminHandler) HandleResetToCompleted(w http.ResponseWriter, r *http.Request) {
	id, ok := tournamentIDParam(w, r)
	if !ok {
		return
	}

	var req ResetRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpResetToCompleted, false); err != nil {
		return
	}

	change, err := h.tournaments.ResetToCompleted(r.Context(), id, actorID(r), req.Reason)
	if err != nil {
		respondServiceError(w, r, OpResetToCompleted, err)
		return
	}
	respondJSON(w, http.StatusOK, change)
}

// HandlePurge deletes a tournament that no ledger transaction references
// @Summary Purge tournament
// @Tags admin
// @Produce json
// @Param id path int true "Tournament ID"
// @Param X-Actor-ID header string false "Caller identity"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admin/tournaments/{id} [delete]
func (h *AdminHandler) HandlePurge(w http.ResponseWriter, r *http.Request) {
	id, ok := tournamentIDParam(w, r)
	if !ok {
		return
	}

	if err := h.tournaments.Purge(r.Context(), id, actorID(r)); err != nil {
		respondServiceError(w, r, OpPurge, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTournamentPurged})
}

// HandleGetCacheStats returns the tournament-type template cache statistics
// @Summary Get policy cache stats
// @Tags admin
// @Produce json
// @Success 200 {object} policy.CacheStats
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.rewards.PolicyCacheStats())
}
