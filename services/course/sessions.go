// File: services/course/sessions.go
package course

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/phucnvzeud/center-x-sub000/models"
	"github.com/phucnvzeud/center-x-sub000/scheduling"
	"github.com/phucnvzeud/center-x-sub000/utils"
)

func (s *DefaultCourseService) GetSessions(ctx context.Context, courseID string) ([]models.Session, error) {
	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return course.Sessions, nil
}

// UpdateSession applies a status transition to one session. When the edit is
// an absence on a previously pending session and the caller requested it, a
// compensatory session is appended in the same atomic write.
func (s *DefaultCourseService) UpdateSession(ctx context.Context, courseID, sessionID string, req models.UpdateSessionRequest, now time.Time) (*models.SessionUpdateResult, error) {
	holidays, err := s.holidaySet(ctx)
	if err != nil {
		return nil, err
	}

	var result models.SessionUpdateResult
	err = s.mutate(ctx, courseID, func(sched *models.Schedule) error {
		session, compensatory, err := scheduling.Transition(sched, scheduling.CourseVocabulary, sessionID, req.Status, req.Notes, req.AddCompensatory, holidays, now)
		if err != nil {
			return err
		}
		result.Session = *session
		if compensatory != nil {
			comp := *compensatory
			result.Compensatory = &comp
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AddCustomSession inserts an ad-hoc taught session, cancelling the most
// recently created pending compensatory session if one exists.
func (s *DefaultCourseService) AddCustomSession(ctx context.Context, courseID string, date time.Time, notes string) (*models.CustomSessionResult, error) {
	var result models.CustomSessionResult
	err := s.mutate(ctx, courseID, func(sched *models.Schedule) error {
		session, removedID := scheduling.SubstituteCustom(sched, scheduling.CourseVocabulary, date, notes)
		result.Session = *session
		result.RemovedCompensatoryID = removedID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteSession removes a session without compensation checks. The deletion is
// logged because it can leave the schedule under its target count.
func (s *DefaultCourseService) DeleteSession(ctx context.Context, courseID, sessionID string) error {
	err := s.mutate(ctx, courseID, func(sched *models.Schedule) error {
		return scheduling.DeleteSession(sched, sessionID)
	})
	if err != nil {
		return err
	}
	utils.GetLogger().Warn("Course session deleted by administrative override",
		zap.String("courseId", courseID),
		zap.String("sessionId", sessionID))
	return nil
}
