// File: services/holidays/tasks.go
package holidays

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/phucnvzeud/center-x-sub000/scheduling"
	"github.com/phucnvzeud/center-x-sub000/utils"
)

// TypeHolidayApply is the asynq task type for asynchronous holiday fan-out.
const TypeHolidayApply = "holiday:apply"

type holidayApplyPayload struct {
	HolidayID string `json:"holidayId"`
}

// NewHolidayApplyTask builds the queue task for one holiday.
func NewHolidayApplyTask(holidayID string) (*asynq.Task, error) {
	payload, err := json.Marshal(holidayApplyPayload{HolidayID: holidayID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeHolidayApply, payload), nil
}

// EnqueueApply schedules the holiday fan-out on the background queue. The
// holiday must exist; results become available via ApplyResults once the
// worker finishes.
func (s *DefaultHolidayService) EnqueueApply(ctx context.Context, holidayID string) error {
	if s.Queue == nil {
		return fmt.Errorf("holiday queue is not configured")
	}
	if _, err := s.Repo.GetByID(ctx, holidayID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &scheduling.NotFoundError{Kind: "holiday", ID: holidayID}
		}
		return err
	}
	task, err := NewHolidayApplyTask(holidayID)
	if err != nil {
		return err
	}
	info, err := s.Queue.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}
	utils.GetLogger().Info("Holiday apply task enqueued",
		zap.String("holidayId", holidayID),
		zap.String("taskId", info.ID))
	return nil
}

// HandleHolidayApplyTask is the asynq handler for TypeHolidayApply.
func (s *DefaultHolidayService) HandleHolidayApplyTask(ctx context.Context, t *asynq.Task) error {
	var payload holidayApplyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid holiday apply payload: %w", err)
	}
	_, err := s.ApplyToAllOwners(ctx, payload.HolidayID)
	return err
}
