package rewards

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/logger"
)

// SweepResult reports one auto-distribution pass
type SweepResult struct {
	Checked     int              `json:"checked"`
	Distributed []int64          `json:"distributed"`
	Skipped     []int64          `json:"skipped"`
	Failed      map[int64]string `json:"failed,omitempty"`
}

// DistributeDue distributes auto_distribute tournaments that have been COMPLETED for at least grace.
// A tournament another caller already distributed is skipped, not failed.
func (s *service) DistributeDue(ctx context.Context, grace time.Duration, limit int) (*SweepResult, error) {
	log := logger.FromContext(ctx)
	if limit <= 0 {
		limit = DefaultSweepLimit
	}
	if grace < 0 {
		grace = 0
	}

	ids, err := s.repo.ListAutoDistributable(ctx, s.now().Add(-grace), limit)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{
		Checked:     len(ids),
		Distributed: []int64{},
		Skipped:     []int64{},
	}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		res, err := s.execute(ctx, id, false, DefaultActorID, slog.LevelDebug)
		switch {
		case err == nil:
			result.Distributed = append(result.Distributed, id)
			log.Info(LogMsgSweepDistributed, "tournament_id", id, "run_id", res.RunID, "participants", res.ParticipantsRewarded)
		case errors.Is(err, domain.ErrInvalidState):
			result.Skipped = append(result.Skipped, id)
			log.Debug(LogMsgSweepSkipped, "tournament_id", id, "reason", err)
		default:
			if result.Failed == nil {
				result.Failed = make(map[int64]string)
			}
			result.Failed[id] = err.Error()
			log.Error(LogMsgSweepFailed, "tournament_id", id, "error", err)
		}
	}
	return result, nil
}
