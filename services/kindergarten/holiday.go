// File: services/kindergarten/holiday.go
package kindergarten

import (
	"context"
	"time"

	"github.com/phucnvzeud/center-x-sub000/models"
	"github.com/phucnvzeud/center-x-sub000/scheduling"
)

// ApplyHoliday reconciles one global holiday date with a class schedule.
// Scheduled sessions on the date become "Holiday Break" without compensation;
// when no session falls on the date the class gains an exception entry.
func (s *DefaultKindergartenService) ApplyHoliday(ctx context.Context, classID string, date time.Time) (models.ApplyResult, error) {
	result := models.ApplyResult{OwnerID: classID, OwnerKind: "kindergarten"}
	err := s.mutate(ctx, classID, func(sched *models.Schedule) error {
		outcome, converted := scheduling.ApplyHoliday(sched, scheduling.KindergartenVocabulary, date)
		switch outcome {
		case scheduling.HolidayConverted:
			result.Outcome = models.ApplyConverted
			if converted != nil {
				result.SessionID = converted.ID
			}
		case scheduling.HolidayExcluded:
			result.Outcome = models.ApplyExcluded
		default:
			result.Outcome = models.ApplyUnchanged
		}
		return nil
	})
	if err != nil {
		result.Outcome = models.ApplyFailed
		result.Err = err.Error()
		return result, err
	}
	return result, nil
}
