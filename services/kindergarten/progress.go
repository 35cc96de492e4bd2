// File: services/kindergarten/progress.go
package kindergarten

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/phucnvzeud/center-x-sub000/models"
	"github.com/phucnvzeud/center-x-sub000/scheduling"
	"github.com/phucnvzeud/center-x-sub000/utils"
)

const progressCacheTTL = 5 * time.Minute

func progressCacheKey(classID string) string {
	return "progress:kindergarten:" + classID
}

// Progress computes the class completion statistics. Results are cached
// briefly; every schedule mutation invalidates the entry.
func (s *DefaultKindergartenService) Progress(ctx context.Context, classID string, now time.Time) (*models.ProgressStats, error) {
	key := progressCacheKey(classID)
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached models.ProgressStats
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	class, err := s.GetClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	stats := scheduling.Stats(&class.Schedule, scheduling.KindergartenVocabulary, now)

	if s.Cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, key, data, progressCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache kindergarten progress", zap.Error(err))
			}
		}
	}
	return &stats, nil
}

func (s *DefaultKindergartenService) invalidateProgress(ctx context.Context, classID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, progressCacheKey(classID)).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate kindergarten progress cache",
			zap.String("classId", classID), zap.Error(err))
	}
}
