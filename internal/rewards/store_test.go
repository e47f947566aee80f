package rewards

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/repository"
)

var errInjected = errors.New("injected failure")

type memState struct {
	tournaments    map[int64]domain.Tournament
	types          map[int64]domain.TournamentType
	rankings       map[int64][]domain.Ranking
	participations map[int64]map[string]domain.Participation
	runs           map[int64][]domain.DistributionRun
	ledger         []domain.LedgerTransaction
	balances       map[domain.BalanceKey]domain.Balance
	skills         map[skillRef]domain.SkillValue
	skillHistory   []domain.SkillChange
	statusHistory  []domain.StatusChange
}

func newMemState() *memState {
	return &memState{
		tournaments:    make(map[int64]domain.Tournament),
		types:          make(map[int64]domain.TournamentType),
		rankings:       make(map[int64][]domain.Ranking),
		participations: make(map[int64]map[string]domain.Participation),
		runs:           make(map[int64][]domain.DistributionRun),
		balances:       make(map[domain.BalanceKey]domain.Balance),
		skills:         make(map[skillRef]domain.SkillValue),
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.tournaments {
		c.tournaments[k] = v
	}
	for k, v := range s.types {
		c.types[k] = v
	}
	for k, v := range s.rankings {
		c.rankings[k] = append([]domain.Ranking(nil), v...)
	}
	for k, v := range s.participations {
		m := make(map[string]domain.Participation, len(v))
		for pid, p := range v {
			m[pid] = p
		}
		c.participations[k] = m
	}
	for k, v := range s.runs {
		c.runs[k] = append([]domain.DistributionRun(nil), v...)
	}
	c.ledger = append([]domain.LedgerTransaction(nil), s.ledger...)
	for k, v := range s.balances {
		c.balances[k] = v
	}
	for k, v := range s.skills {
		c.skills[k] = v
	}
	c.skillHistory = append([]domain.SkillChange(nil), s.skillHistory...)
	c.statusHistory = append([]domain.StatusChange(nil), s.statusHistory...)
	return c
}

// memStore is a transactional in-memory repository.Rewards. Transactions are serialised
// by a single writer lock taken at Begin and released on Commit or Rollback.
type memStore struct {
	mu      sync.Mutex
	writer  sync.Mutex
	state   *memState
	nextRow int64

	// failParticipationAt fails the n-th participation write of a transaction (1-based); 0 disables
	failParticipationAt int
	// loseRace makes the next conditional state update match nothing after moving the tournament to this state
	loseRace domain.LifecycleState

	lastLedgerLimit int
}

func newMemStore() *memStore {
	return &memStore{state: newMemState()}
}

func (m *memStore) snapshot() *memState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

func (m *memStore) addTournament(t domain.Tournament) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.tournaments[t.ID] = t
}

func (m *memStore) addType(tt domain.TournamentType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.types[tt.ID] = tt
}

func (m *memStore) setRankings(tournamentID int64, rankings []domain.Ranking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.rankings[tournamentID] = rankings
}

func (m *memStore) setSkill(v domain.SkillValue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.skills[skillRef{v.ParticipantID, v.SkillName}] = v
}

func (m *memStore) GetTournament(_ context.Context, id int64) (*domain.Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.getTournament(id)
}

func (s *memState) getTournament(id int64) (*domain.Tournament, error) {
	t, ok := s.tournaments[id]
	if !ok {
		return nil, domain.ErrTournamentNotFound
	}
	return &t, nil
}

func (m *memStore) GetTournamentType(_ context.Context, id int64) (*domain.TournamentType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tt, ok := m.state.types[id]
	if !ok {
		return nil, nil
	}
	return &tt, nil
}

func (m *memStore) ListParticipations(_ context.Context, tournamentID int64) ([]domain.Participation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.listParticipations(tournamentID), nil
}

func (s *memState) listParticipations(tournamentID int64) []domain.Participation {
	out := make([]domain.Participation, 0, len(s.participations[tournamentID]))
	for _, p := range s.participations[tournamentID] {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out
}

func (m *memStore) ListDistributionRuns(_ context.Context, tournamentID int64) ([]domain.DistributionRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.DistributionRun{}, m.state.runs[tournamentID]...), nil
}

func (m *memStore) GetSkillProfile(_ context.Context, participantID string) (*domain.SkillProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile := &domain.SkillProfile{ParticipantID: participantID, Skills: []domain.SkillValue{}}
	for ref, v := range m.state.skills {
		if ref.participantID == participantID {
			profile.Skills = append(profile.Skills, v)
		}
	}
	sort.Slice(profile.Skills, func(i, j int) bool { return profile.Skills[i].SkillName < profile.Skills[j].SkillName })
	return profile, nil
}

func (m *memStore) ListLedgerTransactions(_ context.Context, participantID string, limit int) ([]domain.LedgerTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLedgerLimit = limit
	var out []domain.LedgerTransaction
	for i := len(m.state.ledger) - 1; i >= 0 && len(out) < limit; i-- {
		if m.state.ledger[i].ParticipantID == participantID {
			out = append(out, m.state.ledger[i])
		}
	}
	return out, nil
}

func (m *memStore) ListBalances(_ context.Context, participantID string) ([]domain.Balance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Balance
	for k, b := range m.state.balances {
		if k.ParticipantID == participantID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out, nil
}

func (m *memStore) ListAutoDistributable(_ context.Context, completedBefore time.Time, limit int) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []int64
	for id, t := range m.state.tournaments {
		if t.AutoDistribute && t.State == domain.StateCompleted && t.CompletedAt != nil && t.CompletedAt.Before(completedBefore) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (m *memStore) BeginRewardsTx(_ context.Context) (repository.RewardsTx, error) {
	m.writer.Lock()
	return &memTx{store: m, st: m.snapshot()}, nil
}

type memTx struct {
	store          *memStore
	st             *memState
	done           bool
	participations int
}

var _ repository.RewardsTx = (*memTx)(nil)

func (t *memTx) Commit(context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.store.mu.Lock()
	t.store.state = t.st
	t.store.mu.Unlock()
	t.done = true
	t.store.writer.Unlock()
	return nil
}

func (t *memTx) Rollback(context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.done = true
	t.store.writer.Unlock()
	return nil
}

func (t *memTx) GetTournament(_ context.Context, id int64) (*domain.Tournament, error) {
	return t.st.getTournament(id)
}

func (t *memTx) UpdateTournamentStateIfMatches(_ context.Context, id int64, expected, next domain.LifecycleState) (int64, error) {
	tour, ok := t.st.tournaments[id]
	if !ok {
		return 0, nil
	}
	if lost := t.store.loseRace; lost != "" {
		t.store.loseRace = ""
		tour.State = lost
		t.st.tournaments[id] = tour
		return 0, nil
	}
	if tour.State != expected {
		return 0, nil
	}
	tour.State = next
	t.st.tournaments[id] = tour
	return 1, nil
}

func (t *memTx) IncrementRewardsRunCount(_ context.Context, id int64) error {
	tour := t.st.tournaments[id]
	tour.RewardsRunCount++
	t.st.tournaments[id] = tour
	return nil
}

func (t *memTx) InsertStatusChange(_ context.Context, change *domain.StatusChange) error {
	t.store.nextRow++
	change.ID = t.store.nextRow
	t.st.statusHistory = append(t.st.statusHistory, *change)
	return nil
}

func (t *memTx) InsertDistributionRun(_ context.Context, run *domain.DistributionRun) error {
	t.st.runs[run.TournamentID] = append(t.st.runs[run.TournamentID], *run)
	return nil
}

func (t *memTx) GetRankings(_ context.Context, tournamentID int64) ([]domain.Ranking, error) {
	return append([]domain.Ranking(nil), t.st.rankings[tournamentID]...), nil
}

func (t *memTx) GetParticipations(_ context.Context, tournamentID int64) ([]domain.Participation, error) {
	return t.st.listParticipations(tournamentID), nil
}

func (t *memTx) countParticipationWrite() error {
	t.participations++
	if at := t.store.failParticipationAt; at > 0 && t.participations == at {
		return fmt.Errorf("participation %d: %w", at, errInjected)
	}
	return nil
}

func (t *memTx) InsertParticipation(_ context.Context, p *domain.Participation) error {
	if err := t.countParticipationWrite(); err != nil {
		return err
	}
	byParticipant := t.st.participations[p.TournamentID]
	if byParticipant == nil {
		byParticipant = make(map[string]domain.Participation)
		t.st.participations[p.TournamentID] = byParticipant
	}
	if _, exists := byParticipant[p.ParticipantID]; exists {
		return domain.ErrAlreadyRewarded
	}
	byParticipant[p.ParticipantID] = *p
	return nil
}

func (t *memTx) UpsertParticipation(_ context.Context, p *domain.Participation) error {
	if err := t.countParticipationWrite(); err != nil {
		return err
	}
	byParticipant := t.st.participations[p.TournamentID]
	if byParticipant == nil {
		byParticipant = make(map[string]domain.Participation)
		t.st.participations[p.TournamentID] = byParticipant
	}
	row := *p
	if existing, ok := byParticipant[p.ParticipantID]; ok {
		row.DistributionCount = existing.DistributionCount + 1
	}
	byParticipant[p.ParticipantID] = row
	return nil
}

func (t *memTx) DeleteParticipation(_ context.Context, tournamentID int64, participantID string) error {
	delete(t.st.participations[tournamentID], participantID)
	return nil
}

func (t *memTx) LockSkillValues(_ context.Context, keys []domain.SkillKey, baseline float64) ([]domain.SkillValue, error) {
	participants := make(map[string]bool)
	for _, k := range keys {
		ref := skillRef{k.ParticipantID, k.SkillName}
		if _, ok := t.st.skills[ref]; !ok {
			t.st.skills[ref] = domain.SkillValue{
				ParticipantID: k.ParticipantID,
				SkillName:     k.SkillName,
				Category:      k.Category,
				Baseline:      baseline,
				Current:       baseline,
			}
		}
		participants[k.ParticipantID] = true
	}

	var out []domain.SkillValue
	for ref, v := range t.st.skills {
		if participants[ref.participantID] {
			out = append(out, v)
		}
	}
	return out, nil
}

func (t *memTx) UpdateSkillValue(_ context.Context, v *domain.SkillValue) error {
	t.st.skills[skillRef{v.ParticipantID, v.SkillName}] = *v
	return nil
}

func (t *memTx) InsertSkillChange(_ context.Context, c *domain.SkillChange) error {
	t.st.skillHistory = append(t.st.skillHistory, *c)
	return nil
}

func (t *memTx) LockBalances(_ context.Context, keys []domain.BalanceKey) ([]domain.Balance, error) {
	out := make([]domain.Balance, 0, len(keys))
	for _, k := range keys {
		b, ok := t.st.balances[k]
		if !ok {
			b = domain.Balance{BalanceKey: k}
			t.st.balances[k] = b
		}
		out = append(out, b)
	}
	return out, nil
}

func (t *memTx) UpdateBalance(_ context.Context, b *domain.Balance) error {
	t.st.balances[b.BalanceKey] = *b
	return nil
}

func (t *memTx) InsertLedgerTransaction(_ context.Context, txn *domain.LedgerTransaction) error {
	t.st.ledger = append(t.st.ledger, *txn)
	return nil
}
