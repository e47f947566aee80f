package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/tournament-rewards/internal/config"
	"github.com/osse101/tournament-rewards/internal/event"
	"github.com/osse101/tournament-rewards/internal/policy"
	"github.com/osse101/tournament-rewards/internal/rewards"
	"github.com/osse101/tournament-rewards/internal/skill"
	"github.com/osse101/tournament-rewards/internal/tournament"
)

// Services holds the application services built over the repositories
type Services struct {
	Rewards    rewards.Service
	Tournament tournament.Service
	Resolver   *policy.Resolver
}

// InitializeServices loads the default reward policy and builds the services.
// A present but invalid default policy file stops startup.
func InitializeServices(ctx context.Context, cfg *config.Config, repos *Repositories, publisher event.Publisher) (*Services, error) {
	fallback, err := policy.LoadDefault(ctx, cfg.DefaultPolicyPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadDefaultPolicy, err)
	}

	calc, err := skill.NewCalculator(skill.Bounds{
		Min:      cfg.SkillMin,
		Max:      cfg.SkillMax,
		Baseline: cfg.SkillBaseline,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidSkillBounds, err)
	}

	resolver := policy.NewResolver(repos.Rewards, fallback, cfg.PolicyCacheSize, cfg.PolicyCacheTTL)

	svcs := &Services{
		Rewards: rewards.NewService(repos.Rewards, resolver, calc, publisher, rewards.Config{
			BaseXP: cfg.BaseXP,
		}),
		Tournament: tournament.NewService(repos.Tournament, publisher),
		Resolver:   resolver,
	}

	slog.Info(LogMsgServicesInitialized,
		"base_xp", cfg.BaseXP,
		"policy_cache_size", cfg.PolicyCacheSize,
		"policy_cache_ttl", cfg.PolicyCacheTTL)

	return svcs, nil
}
