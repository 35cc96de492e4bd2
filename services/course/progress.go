// File: services/course/progress.go
package course

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

func progressCacheKey(courseID string) string {
	return "progress:course:" + courseID
}

// Progress computes the course completion statistics. Results are cached
// briefly; every schedule mutation invalidates the entry.
func (s *DefaultCourseService) Progress(ctx context.Context, courseID string, now time.Time) (*models.ProgressStats, error) {
	key := progressCacheKey(courseID)
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached models.ProgressStats
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	stats := scheduling.Stats(&course.Schedule, scheduling.CourseVocabulary, now)

	if s.Cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, key, data, progressCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache course progress", zap.Error(err))
			}
		}
	}
	return &stats, nil
}

func (s *DefaultCourseService) invalidateProgress(ctx context.Context, courseID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, progressCacheKey(courseID)).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate course progress cache",
			zap.String("courseId", courseID), zap.Error(err))
	}
}
