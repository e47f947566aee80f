package handler

import (
	"net/http"

	"github.com/osse101/tournament-rewards/internal/logger"
	"github.com/osse101/tournament-rewards/internal/rewards"
)

// RewardsHandler serves reward distribution and the participant read APIs
type RewardsHandler struct {
	service rewards.Service
}

// NewRewardsHandler creates a new RewardsHandler
func NewRewardsHandler(service rewards.Service) *RewardsHandler {
	return &RewardsHandler{service: service}
}

// DistributeRequest is the optional body of a distribution call.
// TournamentID, when sent, must match the path.
type DistributeRequest struct {
	TournamentID        *int64 `json:"tournament_id,omitempty" validate:"omitempty,gt=0"`
	ForceRedistribution bool   `json:"force_redistribution"`
}

// HandleDistribute distributes rewards for a completed tournament
// @Summary Distribute tournament rewards
// @Description Awards XP, credits, badges and skill progress to every ranked participant in one transaction
// @Tags rewards
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param request body DistributeRequest false "Distribution options"
// @Param X-Actor-ID header string false "Caller identity"
// @Success 200 {object} domain.DistributionResult
// @Failure 400 {object} StateErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/tournaments/{id}/distribute-rewards [post]
func (h *RewardsHandler) HandleDistribute(w http.ResponseWriter, r *http.Request) {
	id, ok := tournamentIDParam(w, r)
	if !ok {
		return
	}

	var req DistributeRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpDistribute, true); err != nil {
		return
	}
	if req.TournamentID != nil && *req.TournamentID != id {
		respondError(w, http.StatusBadRequest, CodeInvalidInput, ErrMsgTournamentIDMismatch)
		return
	}

	actor := actorID(r)
	logger.FromContext(r.Context()).Debug("Request details", "tournament_id", id, "force", req.ForceRedistribution, "actor_id", actor)

	result, err := h.service.Distribute(r.Context(), id, req.ForceRedistribution, actor)
	if err != nil {
		respondServiceError(w, r, OpDistribute, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleListParticipations lists who has been rewarded for a tournament
// @Summary List participations
// @Tags rewards
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {array} domain.Participation
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tournaments/{id}/participations [get]
func (h *RewardsHandler) HandleListParticipations(w http.ResponseWriter, r *http.Request) {
	id, ok := tournamentIDParam(w, r)
	if !ok {
		return
	}

	participations, err := h.service.ListParticipations(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpListParticipations, err)
		return
	}
	respondJSON(w, http.StatusOK, participations)
}

// HandleListRuns lists the audit rows of every distribution run of a tournament
// @Summary List distribution runs
// @Tags rewards
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {array} domain.DistributionRun
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tournaments/{id}/runs [get]
func (h *RewardsHandler) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	id, ok := tournamentIDParam(w, r)
	if !ok {
		return
	}

	runs, err := h.service.ListRuns(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpListRuns, err)
		return
	}
	respondJSON(w, http.StatusOK, runs)
}

// HandleGetSkills returns a participant's skill values
// @Summary Get skill profile
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} domain.SkillProfile
// @Router /api/v1/participants/{id}/skills [get]
func (h *RewardsHandler) HandleGetSkills(w http.ResponseWriter, r *http.Request) {
	participantID, ok := participantIDParam(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetSkillProfile(r.Context(), participantID)
	if err != nil {
		respondServiceError(w, r, OpGetSkills, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// HandleListLedger returns a participant's newest ledger transactions
// @Summary List ledger transactions
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID"
// @Param limit query int false "Maximum rows (default 50, max 500)"
// @Success 200 {array} domain.LedgerTransaction
// @Router /api/v1/participants/{id}/ledger [get]
func (h *RewardsHandler) HandleListLedger(w http.ResponseWriter, r *http.Request) {
	participantID, ok := participantIDParam(w, r)
	if !ok {
		return
	}
	limit, ok := optionalLimit(w, r)
	if !ok {
		return
	}

	txs, err := h.service.ListLedger(r.Context(), participantID, limit)
	if err != nil {
		respondServiceError(w, r, OpListLedger, err)
		return
	}
	respondJSON(w, http.StatusOK, txs)
}

// HandleListBalances returns a participant's running balances per scope and currency
// @Summary List balances
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {array} domain.Balance
// @Router /api/v1/participants/{id}/balances [get]
func (h *RewardsHandler) HandleListBalances(w http.ResponseWriter, r *http.Request) {
	participantID, ok := participantIDParam(w, r)
	if !ok {
		return
	}

	balances, err := h.service.ListBalances(r.Context(), participantID)
	if err != nil {
		respondServiceError(w, r, OpListBalances, err)
		return
	}
	respondJSON(w, http.StatusOK, balances)
}
