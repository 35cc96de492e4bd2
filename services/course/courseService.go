// File: services/course/courseService.go
package course

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	courseRepo "github.com/phucnvzeud/center-x-sub000/database/repository/course"
	holidayRepo "github.com/phucnvzeud/center-x-sub000/database/repository/holiday"
	"github.com/phucnvzeud/center-x-sub000/database/repository"
	"github.com/phucnvzeud/center-x-sub000/models"
	"github.com/phucnvzeud/center-x-sub000/scheduling"
	"github.com/phucnvzeud/center-x-sub000/utils"
)

// CourseService manages language-school courses and their session schedules.
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	ListCourses(ctx context.Context, branchID string) ([]models.Course, error)
	UpdateCourse(ctx context.Context, id string, update models.CourseUpdate) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error

	GetSessions(ctx context.Context, courseID string) ([]models.Session, error)
	UpdateSession(ctx context.Context, courseID, sessionID string, req models.UpdateSessionRequest, now time.Time) (*models.SessionUpdateResult, error)
	AddCustomSession(ctx context.Context, courseID string, date time.Time, notes string) (*models.CustomSessionResult, error)
	DeleteSession(ctx context.Context, courseID, sessionID string) error

	Progress(ctx context.Context, courseID string, now time.Time) (*models.ProgressStats, error)
	ApplyHoliday(ctx context.Context, courseID string, date time.Time) (models.ApplyResult, error)
}

// DefaultCourseService is the production CourseService implementation.
type DefaultCourseService struct {
	Repo     courseRepo.CourseRepository
	Holidays holidayRepo.HolidayRepository
	Cache    *redis.Client
}

// NewDefaultCourseService constructs a CourseService backed by MongoDB and the
// shared Redis cache.
func NewDefaultCourseService(repo courseRepo.CourseRepository, holidays holidayRepo.HolidayRepository, cache *redis.Client) *DefaultCourseService {
	return &DefaultCourseService{Repo: repo, Holidays: holidays, Cache: cache}
}

// CreateCourse validates the schedule, generates the initial session list and
// persists the aggregate at version 1.
func (s *DefaultCourseService) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	logger := utils.GetLogger().With(zap.String("service", "course"))

	if course.Name == "" {
		return nil, &scheduling.ValidationError{Message: "course name is required"}
	}
	holidays, err := s.holidaySet(ctx)
	if err != nil {
		return nil, err
	}
	excluded := make(map[string]bool, len(holidays)+len(course.HolidayExceptions))
	for key := range holidays {
		excluded[key] = true
	}
	for _, d := range course.HolidayExceptions {
		excluded[scheduling.DateKey(d)] = true
	}

	sessions, err := scheduling.Generate(course.StartDate, course.Recurrence, course.TargetSessionCount, excluded, scheduling.CourseVocabulary)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	course.ID = uuid.New().String()
	course.StartDate = scheduling.DateOnly(course.StartDate)
	course.Sessions = sessions
	course.Version = 1
	course.CreatedAt = now
	course.UpdatedAt = now

	if err := s.Repo.Create(ctx, course); err != nil {
		logger.Error("Failed to create course", zap.Error(err))
		return nil, err
	}
	logger.Info("Course created", zap.String("courseId", course.ID), zap.Int("sessions", len(sessions)))
	return course, nil
}

func (s *DefaultCourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &scheduling.NotFoundError{Kind: "course", ID: id}
		}
		return nil, err
	}
	return course, nil
}

func (s *DefaultCourseService) ListCourses(ctx context.Context, branchID string) ([]models.Course, error) {
	return s.Repo.List(ctx, branchID)
}

// UpdateCourse edits course metadata only; the schedule is never touched here.
func (s *DefaultCourseService) UpdateCourse(ctx context.Context, id string, update models.CourseUpdate) (*models.Course, error) {
	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		course.Name = *update.Name
	}
	if update.Language != nil {
		course.Language = *update.Language
	}
	if update.Level != nil {
		course.Level = *update.Level
	}
	if update.TeacherName != nil {
		course.TeacherName = *update.TeacherName
	}
	if update.BranchID != nil {
		course.BranchID = *update.BranchID
	}
	if err := s.Repo.UpdateMeta(ctx, course); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &scheduling.NotFoundError{Kind: "course", ID: id}
		}
		return nil, err
	}
	return course, nil
}

func (s *DefaultCourseService) DeleteCourse(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &scheduling.NotFoundError{Kind: "course", ID: id}
		}
		return err
	}
	s.invalidateProgress(ctx, id)
	return nil
}

// mutate loads the course, applies fn to its schedule in memory and writes the
// session list back under the loaded version. A stale write is retried once
// against a fresh copy before the conflict is surfaced.
func (s *DefaultCourseService) mutate(ctx context.Context, courseID string, fn func(*models.Schedule) error) error {
	for attempt := 0; ; attempt++ {
		course, err := s.GetCourse(ctx, courseID)
		if err != nil {
			return err
		}
		if err := fn(&course.Schedule); err != nil {
			return err
		}
		err = s.Repo.ReplaceSessions(ctx, courseID, course.Sessions, course.HolidayExceptions, course.Version)
		if err == nil {
			s.invalidateProgress(ctx, courseID)
			return nil
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &scheduling.NotFoundError{Kind: "course", ID: courseID}
		}
		if errors.Is(err, repository.ErrVersionConflict) && attempt == 0 {
			utils.GetLogger().Warn("Version conflict on course, retrying",
				zap.String("courseId", courseID))
			continue
		}
		return err
	}
}

// holidaySet loads the global holiday calendar as a date-keyed lookup.
func (s *DefaultCourseService) holidaySet(ctx context.Context) (map[string]bool, error) {
	holidays, err := s.Holidays.List(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		set[scheduling.DateKey(h.Date)] = true
	}
	return set, nil
}
