package rewards_test

import (
	"fmt"
	"testing"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/policy"
	"github.com/osse101/tournament-rewards/internal/rewards"
	"github.com/osse101/tournament-rewards/internal/skill"
)

func benchRankings(n int) []domain.Ranking {
	rankings := make([]domain.Ranking, n)
	for i := range rankings {
		rankings[i] = domain.Ranking{TournamentID: 1, ParticipantID: fmt.Sprintf("p-%04d", i), Rank: i + 1}
	}
	return rankings
}

func BenchmarkValidateRankings(b *testing.B) {
	rankings := benchRankings(256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := rewards.ValidateRankings(rankings); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComputeAward(b *testing.B) {
	calc, err := skill.NewCalculator(skill.DefaultBounds())
	if err != nil {
		b.Fatal(err)
	}
	p := policy.Default()
	p.SkillMappings = []domain.SkillMapping{
		{SkillName: "aim", Weight: 1, Enabled: true},
		{SkillName: "tactics", Weight: 0.5, Enabled: true, Category: "strategy"},
	}
	rankings := benchRankings(256)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, r := range rankings {
			_ = rewards.ComputeAward(r, p, 100, calc)
		}
	}
}
