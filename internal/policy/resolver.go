package policy

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/logger"
)

// TemplateSource loads tournament-type templates
type TemplateSource interface {
	GetTournamentType(ctx context.Context, id int64) (*domain.TournamentType, error)
}

// Resolution is the policy chosen for one distribution run.
// Policy may be shared with the cache and must not be mutated.
type Resolution struct {
	Policy *domain.RewardPolicy
	Source domain.PolicySource
	// FallbackReasons lists why earlier candidates were skipped; empty when the tournament policy was used
	FallbackReasons []string
}

// Fallback reports whether the tournament's own policy was not used
func (r Resolution) Fallback() bool {
	return r.Source != domain.PolicySourceTournament
}

// CacheStats reports template cache usage
type CacheStats struct {
	Size   int   `json:"size"`
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// cachedTemplate holds a parsed template policy; Policy is nil when the template is absent or invalid
type cachedTemplate struct {
	Version string
	Policy  *domain.RewardPolicy
	Reason  string
}

// Resolver picks the policy for a tournament and caches parsed templates
type Resolver struct {
	source   TemplateSource
	fallback *domain.RewardPolicy
	cache    *expirable.LRU[int64, *cachedTemplate]
	hits     atomic.Int64
	misses   atomic.Int64
}

// NewResolver creates a Resolver. A nil fallback uses Default().
func NewResolver(source TemplateSource, fallback *domain.RewardPolicy, size int, ttl time.Duration) *Resolver {
	if fallback == nil {
		fallback = Default()
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Resolver{
		source:   source,
		fallback: fallback,
		cache:    expirable.NewLRU[int64, *cachedTemplate](size, nil, ttl),
	}
}

// Resolve never fails on a bad policy; only template lookup errors are returned
func (r *Resolver) Resolve(ctx context.Context, t *domain.Tournament) (Resolution, error) {
	p, err := Parse(t.RewardPolicy)
	if err == nil {
		return Resolution{Policy: p, Source: domain.PolicySourceTournament}, nil
	}

	reasons := []string{reasonFor(err, ReasonAbsent, ReasonMalformed)}
	log := logger.FromContext(ctx)

	if t.TournamentTypeID != nil {
		entry, err := r.template(ctx, *t.TournamentTypeID)
		if err != nil {
			return Resolution{}, err
		}
		if entry.Policy != nil {
			log.Warn(LogMsgPolicyFallback,
				"tournament_id", t.ID,
				"source", domain.PolicySourceTemplate,
				"reasons", reasons)
			return Resolution{Policy: entry.Policy, Source: domain.PolicySourceTemplate, FallbackReasons: reasons}, nil
		}
		reasons = append(reasons, entry.Reason)
	}

	log.Warn(LogMsgPolicyFallback,
		"tournament_id", t.ID,
		"source", domain.PolicySourceDefault,
		"reasons", reasons)
	return Resolution{Policy: r.fallback, Source: domain.PolicySourceDefault, FallbackReasons: reasons}, nil
}

func (r *Resolver) template(ctx context.Context, typeID int64) (*cachedTemplate, error) {
	if entry, ok := r.cache.Get(typeID); ok {
		if entry.Version == CacheSchemaVersion {
			r.hits.Add(1)
			return entry, nil
		}
		r.cache.Remove(typeID)
	}
	r.misses.Add(1)

	tt, err := r.source.GetTournamentType(ctx, typeID)
	if err != nil {
		return nil, err
	}

	entry := &cachedTemplate{Version: CacheSchemaVersion}
	if tt == nil {
		entry.Reason = ReasonTemplateAbsent
	} else {
		p, err := Parse(tt.DefaultRewardPolicy)
		if err != nil {
			entry.Reason = reasonFor(err, ReasonTemplateAbsent, ReasonTemplateMalformed)
		} else {
			entry.Policy = p
		}
	}

	r.cache.Add(typeID, entry)
	return entry, nil
}

// Invalidate drops a cached template, e.g. after the template is edited
func (r *Resolver) Invalidate(ctx context.Context, typeID int64) {
	if r.cache.Remove(typeID) {
		logger.FromContext(ctx).Info(LogMsgTemplateCacheEvict, "tournament_type_id", typeID)
	}
}

// Stats returns cache counters
func (r *Resolver) Stats() CacheStats {
	return CacheStats{
		Size:   r.cache.Len(),
		Hits:   r.hits.Load(),
		Misses: r.misses.Load(),
	}
}

// Fallback returns the policy used when neither tournament nor template policy is usable
func (r *Resolver) Fallback() *domain.RewardPolicy {
	return r.fallback
}

func reasonFor(err error, absent, malformed string) string {
	if errors.Is(err, ErrPolicyAbsent) {
		return absent
	}
	return malformed
}
