// File: services/kindergarten/kindergartenService.go
package kindergarten

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	holidayRepo "github.com/phucnvzeud/center-x-sub000/database/repository/holiday"
	kindergartenRepo "github.com/phucnvzeud/center-x-sub000/database/repository/kindergarten"
	"github.com/phucnvzeud/center-x-sub000/database/repository"
	"github.com/phucnvzeud/center-x-sub000/models"
	"github.com/phucnvzeud/center-x-sub000/scheduling"
	"github.com/phucnvzeud/center-x-sub000/utils"
)

// KindergartenService manages kindergarten classes and their session
// schedules. It mirrors the course service but runs on the
// Scheduled/Completed/Canceled/Holiday Break vocabulary.
type KindergartenService interface {
	CreateClass(ctx context.Context, class *models.KindergartenClass) (*models.KindergartenClass, error)
	GetClass(ctx context.Context, id string) (*models.KindergartenClass, error)
	ListClasses(ctx context.Context, schoolID string) ([]models.KindergartenClass, error)
	UpdateClass(ctx context.Context, id string, update models.KindergartenClassUpdate) (*models.KindergartenClass, error)
	DeleteClass(ctx context.Context, id string) error

	GetSessions(ctx context.Context, classID string) ([]models.Session, error)
	UpdateSession(ctx context.Context, classID, sessionID string, req models.UpdateSessionRequest, now time.Time) (*models.SessionUpdateResult, error)
	AddCustomSession(ctx context.Context, classID string, date time.Time, notes string) (*models.CustomSessionResult, error)
	DeleteSession(ctx context.Context, classID, sessionID string) error

	Progress(ctx context.Context, classID string, now time.Time) (*models.ProgressStats, error)
	ApplyHoliday(ctx context.Context, classID string, date time.Time) (models.ApplyResult, error)
}

// DefaultKindergartenService is the production KindergartenService
// implementation.
type DefaultKindergartenService struct {
	Repo     kindergartenRepo.KindergartenRepository
	Holidays holidayRepo.HolidayRepository
	Cache    *redis.Client
}

// NewDefaultKindergartenService constructs a KindergartenService backed by
// MongoDB and the shared Redis cache.
func NewDefaultKindergartenService(repo kindergartenRepo.KindergartenRepository, holidays holidayRepo.HolidayRepository, cache *redis.Client) *DefaultKindergartenService {
	return &DefaultKindergartenService{Repo: repo, Holidays: holidays, Cache: cache}
}

// CreateClass validates the schedule, generates the initial session list and
// persists the aggregate at version 1.
func (s *DefaultKindergartenService) CreateClass(ctx context.Context, class *models.KindergartenClass) (*models.KindergartenClass, error) {
	logger := utils.GetLogger().With(zap.String("service", "kindergarten"))

	if class.Name == "" {
		return nil, &scheduling.ValidationError{Message: "class name is required"}
	}
	holidays, err := s.holidaySet(ctx)
	if err != nil {
		return nil, err
	}
	excluded := make(map[string]bool, len(holidays)+len(class.HolidayExceptions))
	for key := range holidays {
		excluded[key] = true
	}
	for _, d := range class.HolidayExceptions {
		excluded[scheduling.DateKey(d)] = true
	}

	sessions, err := scheduling.Generate(class.StartDate, class.Recurrence, class.TargetSessionCount, excluded, scheduling.KindergartenVocabulary)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	class.ID = uuid.New().String()
	class.StartDate = scheduling.DateOnly(class.StartDate)
	class.Sessions = sessions
	class.Version = 1
	class.CreatedAt = now
	class.UpdatedAt = now

	if err := s.Repo.Create(ctx, class); err != nil {
		logger.Error("Failed to create kindergarten class", zap.Error(err))
		return nil, err
	}
	logger.Info("Kindergarten class created", zap.String("classId", class.ID), zap.Int("sessions", len(sessions)))
	return class, nil
}

func (s *DefaultKindergartenService) GetClass(ctx context.Context, id string) (*models.KindergartenClass, error) {
	class, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &scheduling.NotFoundError{Kind: "kindergarten class", ID: id}
		}
		return nil, err
	}
	return class, nil
}

func (s *DefaultKindergartenService) ListClasses(ctx context.Context, schoolID string) ([]models.KindergartenClass, error) {
	return s.Repo.List(ctx, schoolID)
}

// UpdateClass edits class metadata only; the schedule is never touched here.
func (s *DefaultKindergartenService) UpdateClass(ctx context.Context, id string, update models.KindergartenClassUpdate) (*models.KindergartenClass, error) {
	class, err := s.GetClass(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		class.Name = *update.Name
	}
	if update.SchoolID != nil {
		class.SchoolID = *update.SchoolID
	}
	if update.Room != nil {
		class.Room = *update.Room
	}
	if update.TeacherName != nil {
		class.TeacherName = *update.TeacherName
	}
	if err := s.Repo.UpdateMeta(ctx, class); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &scheduling.NotFoundError{Kind: "kindergarten class", ID: id}
		}
		return nil, err
	}
	return class, nil
}

func (s *DefaultKindergartenService) DeleteClass(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &scheduling.NotFoundError{Kind: "kindergarten class", ID: id}
		}
		return err
	}
	s.invalidateProgress(ctx, id)
	return nil
}

// mutate loads the class, applies fn to its schedule in memory and writes the
// session list back under the loaded version. A stale write is retried once
// against a fresh copy before the conflict is surfaced.
func (s *DefaultKindergartenService) mutate(ctx context.Context, classID string, fn func(*models.Schedule) error) error {
	for attempt := 0; ; attempt++ {
		class, err := s.GetClass(ctx, classID)
		if err != nil {
			return err
		}
		if err := fn(&class.Schedule); err != nil {
			return err
		}
		err = s.Repo.ReplaceSessions(ctx, classID, class.Sessions, class.HolidayExceptions, class.Version)
		if err == nil {
			s.invalidateProgress(ctx, classID)
			return nil
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &scheduling.NotFoundError{Kind: "kindergarten class", ID: classID}
		}
		if errors.Is(err, repository.ErrVersionConflict) && attempt == 0 {
			utils.GetLogger().Warn("Version conflict on kindergarten class, retrying",
				zap.String("classId", classID))
			continue
		}
		return err
	}
}

// holidaySet loads the global holiday calendar as a date-keyed lookup.
func (s *DefaultKindergartenService) holidaySet(ctx context.Context) (map[string]bool, error) {
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
