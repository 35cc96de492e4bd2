// File: services/kindergarten/sessions.go
package kindergarten

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/phucnvzeud/center-x-sub000/models"
	"github.com/phucnvzeud/center-x-sub000/scheduling"
	"github.com/phucnvzeud/center-x-sub000/utils"
)

func (s *DefaultKindergartenService) GetSessions(ctx context.Context, classID string) ([]models.Session, error) {
	class, err := s.GetClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	return class.Sessions, nil
}

// UpdateSession applies a status transition to one session. A cancellation of
// a previously scheduled session appends a compensatory session when the
// caller requested one; a holiday break never does.
func (s *DefaultKindergartenService) UpdateSession(ctx context.Context, classID, sessionID string, req models.UpdateSessionRequest, now time.Time) (*models.SessionUpdateResult, error) {
	holidays, err := s.holidaySet(ctx)
	if err != nil {
		return nil, err
	}

	var result models.SessionUpdateResult
	err = s.mutate(ctx, classID, func(sched *models.Schedule) error {
		session, compensatory, err := scheduling.Transition(sched, scheduling.KindergartenVocabulary, sessionID, req.Status, req.Notes, req.AddCompensatory, holidays, now)
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

// AddCustomSession inserts an ad-hoc completed session, cancelling the most
// recently created pending compensatory session if one exists.
func (s *DefaultKindergartenService) AddCustomSession(ctx context.Context, classID string, date time.Time, notes string) (*models.CustomSessionResult, error) {
	var result models.CustomSessionResult
	err := s.mutate(ctx, classID, func(sched *models.Schedule) error {
		session, removedID := scheduling.SubstituteCustom(sched, scheduling.KindergartenVocabulary, date, notes)
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
func (s *DefaultKindergartenService) DeleteSession(ctx context.Context, classID, sessionID string) error {
	err := s.mutate(ctx, classID, func(sched *models.Schedule) error {
		return scheduling.DeleteSession(sched, sessionID)
	})
	if err != nil {
		return err
	}
	utils.GetLogger().Warn("Kindergarten session deleted by administrative override",
		zap.String("classId", classID),
		zap.String("sessionId", sessionID))
	return nil
}
