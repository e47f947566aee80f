package rewards

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/event"
	"github.com/osse101/tournament-rewards/internal/ledger"
	"github.com/osse101/tournament-rewards/internal/lifecycle"
	"github.com/osse101/tournament-rewards/internal/logger"
	"github.com/osse101/tournament-rewards/internal/policy"
	"github.com/osse101/tournament-rewards/internal/repository"
	"github.com/osse101/tournament-rewards/internal/skill"
)

// committed is what a successful batch hands back for logging and events
type committed struct {
	result     *domain.DistributionResult
	tournament *domain.Tournament
	resolution policy.Resolution
	change     *domain.StatusChange
}

type skillRef struct {
	participantID string
	skillName     string
}

// Distribute runs one distribution batch. Everything it writes, including the
// lifecycle transition, commits or rolls back together.
func (s *service) Distribute(ctx context.Context, tournamentID int64, force bool, actorID string) (*domain.DistributionResult, error) {
	return s.execute(ctx, tournamentID, force, actorID, slog.LevelWarn)
}

// execute logs rejections at rejectLevel; the sweeper expects guard rejections and passes Debug
func (s *service) execute(ctx context.Context, tournamentID int64, force bool, actorID string, rejectLevel slog.Level) (*domain.DistributionResult, error) {
	log := logger.FromContext(ctx)
	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidTournamentID)
	}
	if actorID == "" {
		actorID = DefaultActorID
	}

	log.Info(LogMsgDistributionStarted, "tournament_id", tournamentID, "forced", force, "actor_id", actorID)
	start := s.now()

	c, err := s.distribute(ctx, tournamentID, force, actorID)
	if err != nil {
		outcome := Outcome(err)
		if outcome == OutcomeError {
			log.Error(LogMsgDistributionFailed, "tournament_id", tournamentID, "forced", force, "error", err)
		} else {
			log.Log(ctx, rejectLevel, LogMsgDistributionRejected, "tournament_id", tournamentID, "forced", force, "outcome", outcome, "error", err)
		}
		s.publish(ctx, event.NewDistributionRejectedEvent(tournamentID, force, outcome, err))
		return nil, err
	}

	elapsed := s.now().Sub(start)
	log.Info(LogMsgDistributionComplete,
		"tournament_id", tournamentID,
		"run_id", c.result.RunID,
		"forced", force,
		"participants", c.result.ParticipantsRewarded,
		"revoked", c.result.ParticipantsRevoked,
		"total_xp", c.result.Summary.TotalXPAwarded,
		"total_credits", c.result.Summary.TotalCreditsAwarded,
		"policy_source", c.result.PolicySource,
		"duration", elapsed)

	s.publish(ctx, event.NewRewardsDistributedEvent(c.tournament, c.result, actorID, c.resolution.FallbackReasons, elapsed))
	if c.change != nil {
		s.publish(ctx, event.NewTournamentStateChangedEvent(*c.change))
	}
	return c.result, nil
}

func (s *service) distribute(ctx context.Context, tournamentID int64, force bool, actorID string) (*committed, error) {
	tx, err := s.repo.BeginRewardsTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	t, err := tx.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.GuardDistribution(t.ID, t.State, force); err != nil {
		return nil, err
	}

	// The conditional update runs before any other write and holds the tournament row
	// lock until commit. A forced re-run moves REWARDS_DISTRIBUTED to itself.
	rows, err := tx.UpdateTournamentStateIfMatches(ctx, t.ID, t.State, domain.StateRewardsDistributed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedTransition, err)
	}
	if rows == 0 {
		return nil, lostRace(ctx, tx, t, force)
	}

	resolution, err := s.resolver.Resolve(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedResolvePolicy, err)
	}

	rankings, err := tx.GetRankings(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedReadRankings, err)
	}
	if err := ValidateRankings(rankings); err != nil {
		return nil, err
	}

	awards, err := s.computeAwards(ctx, rankings, resolution.Policy)
	if err != nil {
		return nil, err
	}

	previous := make(map[string]domain.Participation)
	if force {
		prior, err := tx.GetParticipations(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedParticipation, err)
		}
		for _, p := range prior {
			previous[p.ParticipantID] = p
		}
	}

	revoked := revokedParticipations(previous, awards)

	book, err := lockBalances(ctx, tx, t, participantIDs(awards, revoked))
	if err != nil {
		return nil, err
	}
	values, err := s.lockSkills(ctx, tx, awards, previous)
	if err != nil {
		return nil, err
	}

	runID := s.newRunID()
	tournamentRef := t.ID
	xpScope := domain.LicenseScope(t.Specialization)
	result := &domain.DistributionResult{
		TournamentID: t.ID,
		RunID:        runID,
		Forced:       force,
		PolicySource: resolution.Source,
		State:        domain.StateRewardsDistributed,
		Awards:       make([]domain.ParticipantAward, 0, len(awards)),
	}

	for _, a := range awards {
		prev, rerun := previous[a.ParticipantID]

		entry := ledger.Entry{
			TournamentID:  &tournamentRef,
			ParticipantID: a.ParticipantID,
			RunID:         &runID,
		}
		if rerun {
			if err := reverse(ctx, book, entry, prev, xpScope, t.ID); err != nil {
				return nil, err
			}
		}

		entry.Kind = domain.KindTournamentReward
		entry.Description = fmt.Sprintf(ledger.DescTournamentReward, t.ID, a.Tier)
		if _, err := book.Record(ctx, withAmount(entry, domain.CurrencyXP, xpScope, a.XP)); err != nil {
			return nil, err
		}
		if a.Credits > 0 {
			if _, err := book.Record(ctx, withAmount(entry, domain.CurrencyCredits, domain.ScopeGeneral, a.Credits)); err != nil {
				return nil, err
			}
		}

		deltas := a.deltas
		if rerun {
			deltas = skill.NetDeltas(a.ParticipantID, prev.SkillDeltas, a.deltas)
		}
		changes, err := s.applySkills(ctx, tx, values, deltas, t.ID, runID)
		if err != nil {
			return nil, err
		}

		participation := &domain.Participation{
			TournamentID:      t.ID,
			ParticipantID:     a.ParticipantID,
			RunID:             runID,
			Rank:              a.Rank,
			Tier:              a.Tier,
			XPAwarded:         a.XP,
			CreditsAwarded:    a.Credits,
			Badges:            a.Badges,
			SkillDeltas:       skill.Accumulate(prev.SkillDeltas, changes),
			DistributionCount: 1,
		}
		if force {
			err = tx.UpsertParticipation(ctx, participation)
		} else {
			err = tx.InsertParticipation(ctx, participation)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedParticipation, err)
		}

		result.Awards = append(result.Awards, a.ParticipantAward)
		result.Summary.TotalXPAwarded += a.XP
		result.Summary.TotalCreditsAwarded += a.Credits
	}
	result.ParticipantsRewarded = len(result.Awards)

	for _, prev := range revoked {
		if err := s.revoke(ctx, tx, book, values, prev, xpScope, runID); err != nil {
			return nil, err
		}
	}
	result.ParticipantsRevoked = len(revoked)

	if err := book.Flush(ctx); err != nil {
		return nil, err
	}
	if err := tx.IncrementRewardsRunCount(ctx, t.ID); err != nil {
		return nil, err
	}

	var change *domain.StatusChange
	if t.State != domain.StateRewardsDistributed {
		change = &domain.StatusChange{
			TournamentID: t.ID,
			FromState:    t.State,
			ToState:      domain.StateRewardsDistributed,
			ActorID:      actorID,
			Reason:       ReasonDistributed,
		}
		if err := tx.InsertStatusChange(ctx, change); err != nil {
			return nil, err
		}
	}

	run := &domain.DistributionRun{
		RunID:               runID,
		TournamentID:        t.ID,
		Forced:              force,
		ActorID:             actorID,
		ParticipantCount:    result.ParticipantsRewarded,
		TotalXPAwarded:      result.Summary.TotalXPAwarded,
		TotalCreditsAwarded: result.Summary.TotalCreditsAwarded,
		PolicySource:        resolution.Source,
	}
	if err := tx.InsertDistributionRun(ctx, run); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRecordRun, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCommit, err)
	}

	t.State = domain.StateRewardsDistributed
	return &committed{result: result, tournament: t, resolution: resolution, change: change}, nil
}

// lostRace reports a conditional update that matched no row: another batch changed the state first
func lostRace(ctx context.Context, tx repository.RewardsTx, t *domain.Tournament, force bool) error {
	current := t.State
	if fresh, err := tx.GetTournament(ctx, t.ID); err == nil {
		current = fresh.State
	}
	return &domain.StateGuardError{
		TournamentID: t.ID,
		Operation:    lifecycle.OperationDistribute,
		Current:      current,
		Required:     lifecycle.DistributionStates(force),
		Hint:         HintConcurrentChange,
	}
}

// revokedParticipations returns previous awards whose participant is no longer ranked, by participant id
func revokedParticipations(previous map[string]domain.Participation, awards []award) []domain.Participation {
	ranked := make(map[string]bool, len(awards))
	for _, a := range awards {
		ranked[a.ParticipantID] = true
	}

	var out []domain.Participation
	for id, p := range previous {
		if !ranked[id] {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ParticipantID < out[j].ParticipantID })
	return out
}

func participantIDs(awards []award, revoked []domain.Participation) []string {
	ids := make([]string, 0, len(awards)+len(revoked))
	for _, a := range awards {
		ids = append(ids, a.ParticipantID)
	}
	for _, p := range revoked {
		ids = append(ids, p.ParticipantID)
	}
	return ids
}

func lockBalances(ctx context.Context, tx repository.RewardsTx, t *domain.Tournament, participants []string) (*ledger.Book, error) {
	xpScope := domain.LicenseScope(t.Specialization)
	keys := make([]domain.BalanceKey, 0, 2*len(participants))
	for _, id := range participants {
		keys = append(keys,
			domain.BalanceKey{ParticipantID: id, Currency: domain.CurrencyXP, Scope: xpScope},
			domain.BalanceKey{ParticipantID: id, Currency: domain.CurrencyCredits, Scope: domain.ScopeGeneral},
		)
	}

	locked, err := tx.LockBalances(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLockBalances, err)
	}
	return ledger.NewBook(tx, locked), nil
}

// lockSkills locks every skill a batch may touch, including skills only present on previous awards
func (s *service) lockSkills(ctx context.Context, tx repository.RewardsTx, awards []award, previous map[string]domain.Participation) (map[skillRef]domain.SkillValue, error) {
	var keys []domain.SkillKey
	seen := make(map[skillRef]bool)
	for _, a := range awards {
		for _, d := range a.deltas {
			keys = append(keys, d.Key)
			seen[skillRef{d.Key.ParticipantID, d.Key.SkillName}] = true
		}
	}
	for id, p := range previous {
		for name := range p.SkillDeltas {
			if ref := (skillRef{id, name}); !seen[ref] {
				keys = append(keys, domain.SkillKey{ParticipantID: id, SkillName: name})
				seen[ref] = true
			}
		}
	}

	values := make(map[skillRef]domain.SkillValue, len(keys))
	if len(keys) == 0 {
		return values, nil
	}

	locked, err := tx.LockSkillValues(ctx, keys, s.calc.Bounds().Baseline)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLockSkills, err)
	}
	for _, v := range locked {
		values[skillRef{v.ParticipantID, v.SkillName}] = v
	}
	return values, nil
}

// applySkills clamps and stores each delta and returns what was actually applied
func (s *service) applySkills(ctx context.Context, tx repository.RewardsTx, values map[skillRef]domain.SkillValue, deltas []skill.Delta, tournamentID int64, runID uuid.UUID) ([]skill.Change, error) {
	changes := make([]skill.Change, 0, len(deltas))
	for _, d := range deltas {
		ref := skillRef{d.Key.ParticipantID, d.Key.SkillName}
		current, ok := values[ref]
		if !ok {
			current = s.calc.NewValue(d.Key)
		}

		updated, change := s.calc.Apply(current, d)
		if err := tx.UpdateSkillValue(ctx, &updated); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedApplySkill, err)
		}
		err := tx.InsertSkillChange(ctx, &domain.SkillChange{
			ParticipantID:  d.Key.ParticipantID,
			SkillName:      d.Key.SkillName,
			TournamentID:   tournamentID,
			RunID:          runID,
			RequestedDelta: change.Requested,
			AppliedDelta:   change.Applied,
			ValueBefore:    change.Before,
			ValueAfter:     change.After,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedApplySkill, err)
		}
		values[ref] = updated
		changes = append(changes, change)
	}
	return changes, nil
}

// revoke cancels the award of a participant who is no longer ranked: ledger reversal,
// skill reversal of the applied deltas, and removal of the participation record.
func (s *service) revoke(ctx context.Context, tx repository.RewardsTx, book *ledger.Book, values map[skillRef]domain.SkillValue, prev domain.Participation, xpScope string, runID uuid.UUID) error {
	tournamentRef := prev.TournamentID
	entry := ledger.Entry{
		TournamentID:  &tournamentRef,
		ParticipantID: prev.ParticipantID,
		RunID:         &runID,
	}
	if err := reverse(ctx, book, entry, prev, xpScope, prev.TournamentID); err != nil {
		return err
	}

	deltas := skill.NetDeltas(prev.ParticipantID, prev.SkillDeltas, nil)
	if _, err := s.applySkills(ctx, tx, values, deltas, prev.TournamentID, runID); err != nil {
		return err
	}

	if err := tx.DeleteParticipation(ctx, prev.TournamentID, prev.ParticipantID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedParticipation, err)
	}
	return nil
}

// reverse appends adjustment transactions cancelling a participant's previous award
func reverse(ctx context.Context, book *ledger.Book, entry ledger.Entry, prev domain.Participation, xpScope string, tournamentID int64) error {
	entry.Kind = domain.KindAdjustment
	entry.Description = fmt.Sprintf(ledger.DescReversal, tournamentID)

	if prev.XPAwarded != 0 {
		if _, err := book.Record(ctx, withAmount(entry, domain.CurrencyXP, xpScope, -prev.XPAwarded)); err != nil {
			return err
		}
	}
	if prev.CreditsAwarded != 0 {
		if _, err := book.Record(ctx, withAmount(entry, domain.CurrencyCredits, domain.ScopeGeneral, -prev.CreditsAwarded)); err != nil {
			return err
		}
	}
	return nil
}

func withAmount(e ledger.Entry, currency domain.Currency, scope string, amount int64) ledger.Entry {
	e.Currency = currency
	e.Scope = scope
	e.Amount = amount
	return e
}

// Outcome classifies a Distribute error for logs, events and metrics
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrInvalidState):
		return OutcomeInvalidState
	case errors.Is(err, domain.ErrTournamentNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrInvalidRanking), errors.Is(err, domain.ErrUnresolvedRankTie):
		return OutcomeInvalidRankings
	case errors.Is(err, domain.ErrAlreadyRewarded):
		return OutcomeConflict
	default:
		return OutcomeError
	}
}
