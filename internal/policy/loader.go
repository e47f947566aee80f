package policy

import (
	"context"
	"errors"
	"io/fs"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/logger"
)

// LoadDefault loads the operator-supplied default policy, or the built-in Default
// when path is empty or the file does not exist. A present but invalid file is an error.
func LoadDefault(ctx context.Context, path string) (*domain.RewardPolicy, error) {
	log := logger.FromContext(ctx)
	if path == "" {
		return Default(), nil
	}

	p, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn(LogMsgDefaultPolicyFile, "path", path)
			return Default(), nil
		}
		return nil, err
	}

	log.Info(LogMsgDefaultPolicyLoad, "path", path, "skill_mappings", len(p.SkillMappings))
	return p, nil
}
