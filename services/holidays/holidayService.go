// File: services/holidays/holidayService.go
package holidays

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/phucnvzeud/center-x-sub000/config"
	holidayRepo "github.com/phucnvzeud/center-x-sub000/database/repository/holiday"
	"github.com/phucnvzeud/center-x-sub000/models"
	"github.com/phucnvzeud/center-x-sub000/scheduling"
	courseService "github.com/phucnvzeud/center-x-sub000/services/course"
	kindergartenService "github.com/phucnvzeud/center-x-sub000/services/kindergarten"
	"github.com/phucnvzeud/center-x-sub000/utils"
)

// HolidayService manages the global holiday calendar and its fan-out to every
// schedule owner.
type HolidayService interface {
	CreateHoliday(ctx context.Context, date time.Time, name string) (*models.Holiday, error)
	ListHolidays(ctx context.Context) ([]models.Holiday, error)
	DeleteHoliday(ctx context.Context, id string) error
	CheckDateRange(ctx context.Context, start, end time.Time) ([]models.Holiday, error)

	ApplyToAllOwners(ctx context.Context, holidayID string) ([]models.ApplyResult, error)
	EnqueueApply(ctx context.Context, holidayID string) error
	ApplyResults(ctx context.Context, holidayID string) ([]models.ApplyResult, error)
}

// DefaultHolidayService is the production HolidayService implementation.
type DefaultHolidayService struct {
	Repo          holidayRepo.HolidayRepository
	Courses       courseService.CourseService
	Kindergartens kindergartenService.KindergartenService
	Queue         *asynq.Client
	Cache         *redis.Client
}

// NewDefaultHolidayService constructs a HolidayService. Queue may be nil when
// asynchronous application is not wired.
func NewDefaultHolidayService(repo holidayRepo.HolidayRepository, courses courseService.CourseService, kindergartens kindergartenService.KindergartenService, queue *asynq.Client, cache *redis.Client) *DefaultHolidayService {
	return &DefaultHolidayService{
		Repo:          repo,
		Courses:       courses,
		Kindergartens: kindergartens,
		Queue:         queue,
		Cache:         cache,
	}
}

// CreateHoliday records one holiday date. The date is stored truncated to UTC
// midnight so lookups are stable regardless of request time zones.
func (s *DefaultHolidayService) CreateHoliday(ctx context.Context, date time.Time, name string) (*models.Holiday, error) {
	if name == "" {
		return nil, &scheduling.ValidationError{Message: "holiday name is required"}
	}
	holiday := &models.Holiday{
		ID:        uuid.New().String(),
		Date:      scheduling.DateOnly(date),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, holiday); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Holiday created",
		zap.String("holidayId", holiday.ID),
		zap.String("date", scheduling.DateKey(holiday.Date)))
	return holiday, nil
}

func (s *DefaultHolidayService) ListHolidays(ctx context.Context) ([]models.Holiday, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultHolidayService) DeleteHoliday(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &scheduling.NotFoundError{Kind: "holiday", ID: id}
		}
		return err
	}
	return nil
}

// CheckDateRange returns the holidays falling inside the inclusive [start,
// end] window, ordered by date.
func (s *DefaultHolidayService) CheckDateRange(ctx context.Context, start, end time.Time) ([]models.Holiday, error) {
	start = scheduling.DateOnly(start)
	end = scheduling.DateOnly(end)
	if end.Before(start) {
		return nil, &scheduling.ValidationError{Message: "range end is before range start"}
	}
	return s.Repo.FindInRange(ctx, start, end)
}

// ApplyToAllOwners fans the holiday out to every course and kindergarten
// class with bounded concurrency. The batch is best effort: an owner that
// fails is recorded and skipped, never aborting the rest. Results are sorted
// deterministically and cached for later retrieval.
func (s *DefaultHolidayService) ApplyToAllOwners(ctx context.Context, holidayID string) ([]models.ApplyResult, error) {
	logger := utils.GetLogger().With(zap.String("holidayId", holidayID))

	holiday, err := s.Repo.GetByID(ctx, holidayID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &scheduling.NotFoundError{Kind: "holiday", ID: holidayID}
		}
		return nil, err
	}

	courses, err := s.Courses.ListCourses(ctx, "")
	if err != nil {
		return nil, err
	}
	classes, err := s.Kindergartens.ListClasses(ctx, "")
	if err != nil {
		return nil, err
	}

	concurrency := config.AppConfig.HolidayApplyConcurrency
	if concurrency <= 0 {
		concurrency = 8
	}
	sem := make(chan struct{}, concurrency)

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []models.ApplyResult
	)
	collect := func(r models.ApplyResult) {
		mu.Lock()
		results = append(results, r)
		mu.Unlock()
	}

	for _, c := range courses {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			result, err := s.Courses.ApplyHoliday(ctx, id, holiday.Date)
			if err != nil {
				logger.Warn("Holiday application failed for course",
					zap.String("courseId", id), zap.Error(err))
			}
			collect(result)
		}(c.ID)
	}
	for _, k := range classes {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			result, err := s.Kindergartens.ApplyHoliday(ctx, id, holiday.Date)
			if err != nil {
				logger.Warn("Holiday application failed for kindergarten class",
					zap.String("classId", id), zap.Error(err))
			}
			collect(result)
		}(k.ID)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		if results[i].OwnerKind != results[j].OwnerKind {
			return results[i].OwnerKind < results[j].OwnerKind
		}
		return results[i].OwnerID < results[j].OwnerID
	})

	if err := s.storeApplyResults(ctx, holidayID, results); err != nil {
		logger.Warn("Failed to store holiday apply results", zap.Error(err))
	}
	logger.Info("Holiday applied to all owners", zap.Int("owners", len(results)))
	return results, nil
}
