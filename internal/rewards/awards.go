package rewards

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/policy"
	"github.com/osse101/tournament-rewards/internal/skill"
)

// award is the computed reward for one ranking plus the skill deltas in keyed form
type award struct {
	domain.ParticipantAward
	deltas []skill.Delta
}

// ValidateRankings rejects rankings that cannot be rewarded unambiguously.
// Shared ranks are never tie-broken here.
func ValidateRankings(rankings []domain.Ranking) error {
	byRank := make(map[int][]string)
	seen := make(map[string]bool, len(rankings))

	for _, r := range rankings {
		if r.ParticipantID == "" {
			return fmt.Errorf("%w: %s", domain.ErrInvalidRanking, ErrMsgInvalidParticipant)
		}
		if r.Rank < 1 {
			return fmt.Errorf("%w: %s (participant %s, rank %d)", domain.ErrInvalidRanking, ErrMsgRankBelowOne, r.ParticipantID, r.Rank)
		}
		if seen[r.ParticipantID] {
			return fmt.Errorf("%w: %s (%s)", domain.ErrInvalidRanking, ErrMsgDuplicateRanking, r.ParticipantID)
		}
		seen[r.ParticipantID] = true
		byRank[r.Rank] = append(byRank[r.Rank], r.ParticipantID)
	}

	ranks := make([]int, 0, len(byRank))
	for rank := range byRank {
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)
	for _, rank := range ranks {
		if ids := byRank[rank]; len(ids) > 1 {
			sort.Strings(ids)
			return &domain.RankTieError{Rank: rank, Participants: ids}
		}
	}
	return nil
}

// ComputeAward derives one participant's reward from their rank and the policy
func ComputeAward(r domain.Ranking, p *domain.RewardPolicy, baseXP int64, calc *skill.Calculator) domain.ParticipantAward {
	return computeAward(r, p, baseXP, calc).ParticipantAward
}

func computeAward(r domain.Ranking, p *domain.RewardPolicy, baseXP int64, calc *skill.Calculator) award {
	tier := domain.TierForRank(r.Rank)
	reward := p.Tier(tier)

	deltas := calc.ComputeDeltas(r.ParticipantID, tier, p.EnabledMappings())
	var badges []string
	if len(reward.Badges) > 0 {
		badges = append(badges, reward.Badges...)
	}

	return award{
		ParticipantAward: domain.ParticipantAward{
			ParticipantID: r.ParticipantID,
			Rank:          r.Rank,
			Tier:          tier,
			XP:            int64(math.Round(float64(baseXP) * reward.XPMultiplier)),
			Credits:       reward.Credits,
			Badges:        badges,
			SkillDeltas:   skill.AsMap(deltas),
		},
		deltas: deltas,
	}
}

// computeAwards computes every award in parallel and returns them in rank order
func (s *service) computeAwards(ctx context.Context, rankings []domain.Ranking, p *domain.RewardPolicy) ([]award, error) {
	baseXP := policy.BaseXP(p, s.cfg.BaseXP)
	awards := make([]award, len(rankings))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.ComputeLimit)
	for i := range rankings {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			awards[i] = computeAward(rankings[i], p, baseXP, s.calc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(awards, func(i, j int) bool {
		if awards[i].Rank != awards[j].Rank {
			return awards[i].Rank < awards[j].Rank
		}
		return awards[i].ParticipantID < awards[j].ParticipantID
	})
	return awards, nil
}
