// File: services/course/holiday.go
package course

import (
	"context"
	"time"

	"github.com/phucnvzeud/center-x-sub000/models"
	"github.com/phucnvzeud/center-x-sub000/scheduling"
)

// ApplyHoliday reconciles one global holiday date with a course schedule.
// Pending sessions on the date become "Absent (Holiday)" without compensation;
// when no session falls on the date the course gains an exception entry.
func (s *DefaultCourseService) ApplyHoliday(ctx context.Context, courseID string, date time.Time) (models.ApplyResult, error) {
	result := models.ApplyResult{OwnerID: courseID, OwnerKind: "course"}
	err := s.mutate(ctx, courseID, func(sched *models.Schedule) error {
		outcome, converted := scheduling.ApplyHoliday(sched, scheduling.CourseVocabulary, date)
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
