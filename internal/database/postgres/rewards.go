package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/tournament-rewards/internal/database/generated"
	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/repository"
)

// RewardsRepository implements repository.Rewards for PostgreSQL
type RewardsRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewRewardsRepository creates a new RewardsRepository
func NewRewardsRepository(db *pgxpool.Pool) *RewardsRepository {
	return &RewardsRepository{
		db: db,
		q:  generated.New(db),
	}
}

var _ repository.Rewards = (*RewardsRepository)(nil)

// GetTournament returns domain.ErrTournamentNotFound for unknown ids
func (r *RewardsRepository) GetTournament(ctx context.Context, id int64) (*domain.Tournament, error) {
	return getTournament(ctx, r.q, id)
}

// GetTournamentType returns nil, nil when the template does not exist
func (r *RewardsRepository) GetTournamentType(ctx context.Context, id int64) (*domain.TournamentType, error) {
	row, err := r.q.GetTournamentType(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTournamentType, err)
	}

	tt := &domain.TournamentType{
		ID:          row.ID,
		TypeKey:     row.TypeKey,
		DisplayName: row.DisplayName,
	}
	if len(row.DefaultRewardPolicy) > 0 {
		tt.DefaultRewardPolicy = row.DefaultRewardPolicy
	}
	return tt, nil
}

func (r *RewardsRepository) ListParticipations(ctx context.Context, tournamentID int64) ([]domain.Participation, error) {
	return getParticipations(ctx, r.q, tournamentID)
}

func (r *RewardsRepository) ListDistributionRuns(ctx context.Context, tournamentID int64) ([]domain.DistributionRun, error) {
	rows, err := r.q.ListDistributionRuns(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRuns, err)
	}

	runs := make([]domain.DistributionRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, domain.DistributionRun{
			RunID:               row.RunID,
			TournamentID:        row.TournamentID,
			Forced:              row.Forced,
			ActorID:             row.ActorID,
			ParticipantCount:    int(row.ParticipantCount),
			TotalXPAwarded:      row.TotalXpAwarded,
			TotalCreditsAwarded: row.TotalCreditsAwarded,
			PolicySource:        domain.PolicySource(row.PolicySource),
			CreatedAt:           row.CreatedAt.Time,
		})
	}
	return runs, nil
}

func (r *RewardsRepository) GetSkillProfile(ctx context.Context, participantID string) (*domain.SkillProfile, error) {
	id, err := parseParticipantUUID(participantID)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.GetSkillValues(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSkills, err)
	}

	profile := &domain.SkillProfile{
		ParticipantID: participantID,
		Skills:        make([]domain.SkillValue, 0, len(rows)),
	}
	for _, row := range rows {
		profile.Skills = append(profile.Skills, mapSkillValue(row))
	}
	return profile, nil
}

func (r *RewardsRepository) ListLedgerTransactions(ctx context.Context, participantID string, limit int) ([]domain.LedgerTransaction, error) {
	id, err := parseParticipantUUID(participantID)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.ListLedgerTransactions(ctx, generated.ListLedgerTransactionsParams{
		ParticipantID: id,
		Limit:         int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListLedger, err)
	}

	entries := make([]domain.LedgerTransaction, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.LedgerTransaction{
			ID:            row.ID,
			TournamentID:  ptrInt64(row.TournamentID),
			ParticipantID: row.ParticipantID.String(),
			RunID:         ptrUUID(row.RunID),
			Kind:          domain.TransactionKind(row.Kind),
			Currency:      domain.Currency(row.Currency),
			Scope:         row.Scope,
			Amount:        row.Amount,
			BalanceAfter:  row.BalanceAfter,
			Description:   row.Description,
			CreatedAt:     row.CreatedAt.Time,
		})
	}
	return entries, nil
}

func (r *RewardsRepository) ListBalances(ctx context.Context, participantID string) ([]domain.Balance, error) {
	id, err := parseParticipantUUID(participantID)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.ListBalances(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListBalances, err)
	}

	balances := make([]domain.Balance, 0, len(rows))
	for _, row := range rows {
		balances = append(balances, mapBalance(row))
	}
	return balances, nil
}

func (r *RewardsRepository) ListAutoDistributable(ctx context.Context, completedBefore time.Time, limit int) ([]int64, error) {
	ids, err := r.q.ListAutoDistributable(ctx, generated.ListAutoDistributableParams{
		CompletedAt: pgtype.Timestamptz{Time: completedBefore, Valid: true},
		Limit:       int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAutoDistributable, err)
	}
	return ids, nil
}

// BeginRewardsTx starts the transaction that carries one whole distribution batch
func (r *RewardsRepository) BeginRewardsTx(ctx context.Context) (repository.RewardsTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginRewardsTransaction, err)
	}
	return &rewardsTx{
		pgTx: pgTx{tx: tx},
		q:    r.q.WithTx(tx),
	}, nil
}

type rewardsTx struct {
	pgTx
	q *generated.Queries
}

var _ repository.RewardsTx = (*rewardsTx)(nil)

func (t *rewardsTx) GetTournament(ctx context.Context, id int64) (*domain.Tournament, error) {
	return getTournament(ctx, t.q, id)
}

// UpdateTournamentStateIfMatches performs the CAS transition within the transaction.
// The row lock it takes serialises concurrent batches for the same tournament.
func (t *rewardsTx) UpdateTournamentStateIfMatches(ctx context.Context, id int64, expected, next domain.LifecycleState) (int64, error) {
	return updateTournamentStateIfMatches(ctx, t.q, id, expected, next)
}

func (t *rewardsTx) IncrementRewardsRunCount(ctx context.Context, id int64) error {
	if err := t.q.IncrementRewardsRunCount(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateTournament, err)
	}
	return nil
}

func (t *rewardsTx) InsertStatusChange(ctx context.Context, change *domain.StatusChange) error {
	return insertStatusChange(ctx, t.q, change)
}

func (t *rewardsTx) InsertDistributionRun(ctx context.Context, run *domain.DistributionRun) error {
	err := t.q.InsertDistributionRun(ctx, generated.InsertDistributionRunParams{
		RunID:               run.RunID,
		TournamentID:        run.TournamentID,
		Forced:              run.Forced,
		ActorID:             run.ActorID,
		ParticipantCount:    int32(run.ParticipantCount),
		TotalXpAwarded:      run.TotalXPAwarded,
		TotalCreditsAwarded: run.TotalCreditsAwarded,
		PolicySource:        string(run.PolicySource),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordRun, err)
	}
	return nil
}

func (t *rewardsTx) GetRankings(ctx context.Context, tournamentID int64) ([]domain.Ranking, error) {
	rows, err := t.q.GetRankings(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRankings, err)
	}

	rankings := make([]domain.Ranking, 0, len(rows))
	for _, row := range rows {
		rankings = append(rankings, domain.Ranking{
			TournamentID:  row.TournamentID,
			ParticipantID: row.ParticipantID.String(),
			Rank:          int(row.Rank),
			Points:        row.Points,
			Wins:          int(row.Wins),
			Losses:        int(row.Losses),
			Draws:         int(row.Draws),
		})
	}
	return rankings, nil
}

func (t *rewardsTx) GetParticipations(ctx context.Context, tournamentID int64) ([]domain.Participation, error) {
	return getParticipations(ctx, t.q, tournamentID)
}

// InsertParticipation is the storage-level idempotency guard: a second row for the
// same (tournament, participant) is reported as domain.ErrAlreadyRewarded.
func (t *rewardsTx) InsertParticipation(ctx context.Context, p *domain.Participation) error {
	params, err := participationParams(p)
	if err != nil {
		return err
	}

	if err := t.q.InsertParticipation(ctx, generated.InsertParticipationParams(params)); err != nil {
		if isUniqueViolation(err, ConstraintParticipationsUnique) {
			return fmt.Errorf("%w: participant %s, tournament %d", domain.ErrAlreadyRewarded, p.ParticipantID, p.TournamentID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToWriteParticipation, err)
	}
	return nil
}

func (t *rewardsTx) UpsertParticipation(ctx context.Context, p *domain.Participation) error {
	params, err := participationParams(p)
	if err != nil {
		return err
	}

	if err := t.q.UpsertParticipation(ctx, params); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToWriteParticipation, err)
	}
	return nil
}

// DeleteParticipation removes the record of a participant dropped from the rankings
func (t *rewardsTx) DeleteParticipation(ctx context.Context, tournamentID int64, participantID string) error {
	id, err := parseParticipantUUID(participantID)
	if err != nil {
		return err
	}

	if _, err := t.q.DeleteParticipation(ctx, generated.DeleteParticipationParams{TournamentID: tournamentID, ParticipantID: id}); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteParticipation, err)
	}
	return nil
}

// LockSkillValues inserts absent skills at baseline so every row exists before FOR UPDATE.
// Keys are sorted to keep lock acquisition order stable across concurrent batches.
func (t *rewardsTx) LockSkillValues(ctx context.Context, keys []domain.SkillKey, baseline float64) ([]domain.SkillValue, error) {
	if len(keys) == 0 {
		return []domain.SkillValue{}, nil
	}

	sorted := append([]domain.SkillKey(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].ParticipantID != sorted[j].ParticipantID {
			return sorted[i].ParticipantID < sorted[j].ParticipantID
		}
		return sorted[i].SkillName < sorted[j].SkillName
	})

	params := generated.EnsureSkillValuesParams{Baseline: baseline}
	seen := make(map[uuid.UUID]bool)
	var participants []uuid.UUID
	for _, k := range sorted {
		id, err := parseParticipantUUID(k.ParticipantID)
		if err != nil {
			return nil, err
		}
		params.ParticipantIds = append(params.ParticipantIds, id)
		params.SkillNames = append(params.SkillNames, k.SkillName)
		params.Categories = append(params.Categories, k.Category)
		if !seen[id] {
			seen[id] = true
			participants = append(participants, id)
		}
	}

	if err := t.q.EnsureSkillValues(ctx, params); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockSkills, err)
	}

	rows, err := t.q.GetSkillValuesForUpdate(ctx, participants)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockSkills, err)
	}

	values := make([]domain.SkillValue, 0, len(rows))
	for _, row := range rows {
		values = append(values, mapSkillValue(row))
	}
	return values, nil
}

func (t *rewardsTx) UpdateSkillValue(ctx context.Context, v *domain.SkillValue) error {
	id, err := parseParticipantUUID(v.ParticipantID)
	if err != nil {
		return err
	}

	err = t.q.UpdateSkillValue(ctx, generated.UpdateSkillValueParams{
		ParticipantID: id,
		SkillName:     v.SkillName,
		CurrentValue:  v.Current,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateSkill, err)
	}
	return nil
}

func (t *rewardsTx) InsertSkillChange(ctx context.Context, c *domain.SkillChange) error {
	id, err := parseParticipantUUID(c.ParticipantID)
	if err != nil {
		return err
	}

	tournamentID := c.TournamentID
	runID := c.RunID
	err = t.q.InsertSkillChange(ctx, generated.InsertSkillChangeParams{
		ParticipantID:  id,
		SkillName:      c.SkillName,
		TournamentID:   int64ToInt8(&tournamentID),
		RunID:          uuidToPg(&runID),
		RequestedDelta: c.RequestedDelta,
		AppliedDelta:   c.AppliedDelta,
		ValueBefore:    c.ValueBefore,
		ValueAfter:     c.ValueAfter,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordSkillChange, err)
	}
	return nil
}

// LockBalances inserts absent balances at zero so every row exists before FOR UPDATE
func (t *rewardsTx) LockBalances(ctx context.Context, keys []domain.BalanceKey) ([]domain.Balance, error) {
	if len(keys) == 0 {
		return []domain.Balance{}, nil
	}

	sorted := append([]domain.BalanceKey(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.ParticipantID != b.ParticipantID {
			return a.ParticipantID < b.ParticipantID
		}
		if a.Currency != b.Currency {
			return a.Currency < b.Currency
		}
		return a.Scope < b.Scope
	})

	var params generated.EnsureBalancesParams
	seen := make(map[uuid.UUID]bool)
	var participants []uuid.UUID
	for _, k := range sorted {
		id, err := parseParticipantUUID(k.ParticipantID)
		if err != nil {
			return nil, err
		}
		params.ParticipantIds = append(params.ParticipantIds, id)
		params.Currencies = append(params.Currencies, string(k.Currency))
		params.Scopes = append(params.Scopes, k.Scope)
		if !seen[id] {
			seen[id] = true
			participants = append(participants, id)
		}
	}

	if err := t.q.EnsureBalances(ctx, params); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockBalances, err)
	}

	rows, err := t.q.GetBalancesForUpdate(ctx, participants)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockBalances, err)
	}

	balances := make([]domain.Balance, 0, len(rows))
	for _, row := range rows {
		balances = append(balances, mapBalance(row))
	}
	return balances, nil
}

func (t *rewardsTx) UpdateBalance(ctx context.Context, b *domain.Balance) error {
	id, err := parseParticipantUUID(b.ParticipantID)
	if err != nil {
		return err
	}

	err = t.q.UpdateBalance(ctx, generated.UpdateBalanceParams{
		ParticipantID: id,
		Currency:      string(b.Currency),
		Scope:         b.Scope,
		Amount:        b.Amount,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalance, err)
	}
	return nil
}

func (t *rewardsTx) InsertLedgerTransaction(ctx context.Context, entry *domain.LedgerTransaction) error {
	id, err := parseParticipantUUID(entry.ParticipantID)
	if err != nil {
		return err
	}

	err = t.q.InsertLedgerTransaction(ctx, generated.InsertLedgerTransactionParams{
		ID:            entry.ID,
		TournamentID:  int64ToInt8(entry.TournamentID),
		ParticipantID: id,
		RunID:         uuidToPg(entry.RunID),
		Kind:          string(entry.Kind),
		Currency:      string(entry.Currency),
		Scope:         entry.Scope,
		Amount:        entry.Amount,
		BalanceAfter:  entry.BalanceAfter,
		Description:   entry.Description,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertLedgerEntry, err)
	}
	return nil
}

func participationParams(p *domain.Participation) (generated.UpsertParticipationParams, error) {
	id, err := parseParticipantUUID(p.ParticipantID)
	if err != nil {
		return generated.UpsertParticipationParams{}, err
	}

	deltas := p.SkillDeltas
	if deltas == nil {
		deltas = map[string]float64{}
	}
	deltasJSON, err := json.Marshal(deltas)
	if err != nil {
		return generated.UpsertParticipationParams{}, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalSkillDeltas, err)
	}

	badges := p.Badges
	if badges == nil {
		badges = []string{}
	}

	return generated.UpsertParticipationParams{
		TournamentID:   p.TournamentID,
		ParticipantID:  id,
		RunID:          p.RunID,
		Rank:           int32(p.Rank),
		Tier:           string(p.Tier),
		XpAwarded:      p.XPAwarded,
		CreditsAwarded: p.CreditsAwarded,
		Badges:         badges,
		SkillDeltas:    deltasJSON,
	}, nil
}

func getParticipations(ctx context.Context, q *generated.Queries, tournamentID int64) ([]domain.Participation, error) {
	rows, err := q.GetParticipations(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipations, err)
	}

	participations := make([]domain.Participation, 0, len(rows))
	for _, row := range rows {
		var deltas map[string]float64
		if len(row.SkillDeltas) > 0 {
			if err := json.Unmarshal(row.SkillDeltas, &deltas); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalSkillDeltas, err)
			}
		}
		participations = append(participations, domain.Participation{
			TournamentID:      row.TournamentID,
			ParticipantID:     row.ParticipantID.String(),
			RunID:             row.RunID,
			Rank:              int(row.Rank),
			Tier:              domain.RewardTier(row.Tier),
			XPAwarded:         row.XpAwarded,
			CreditsAwarded:    row.CreditsAwarded,
			Badges:            row.Badges,
			SkillDeltas:       deltas,
			DistributionCount: int(row.DistributionCount),
			RewardedAt:        row.RewardedAt.Time,
			UpdatedAt:         row.UpdatedAt.Time,
		})
	}
	return participations, nil
}

func mapSkillValue(row generated.SkillValue) domain.SkillValue {
	return domain.SkillValue{
		ParticipantID: row.ParticipantID.String(),
		SkillName:     row.SkillName,
		Category:      row.Category,
		Baseline:      row.Baseline,
		Current:       row.CurrentValue,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}

func mapBalance(row generated.Balance) domain.Balance {
	return domain.Balance{
		BalanceKey: domain.BalanceKey{
			ParticipantID: row.ParticipantID.String(),
			Currency:      domain.Currency(row.Currency),
			Scope:         row.Scope,
		},
		Amount:    row.Amount,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
