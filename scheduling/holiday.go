package scheduling

import (
	"time"

	"github.com/phucnvzeud/center-x-sub000/models"
)

// HolidayApplication describes the effect of applying one holiday date to a
// schedule.
type HolidayApplication string

const (
	HolidayConverted HolidayApplication = "converted"
	HolidayExcluded  HolidayApplication = "excluded"
	HolidayUnchanged HolidayApplication = "unchanged"
)

// ApplyHoliday reconciles one global holiday date with a schedule. Pending
// sessions falling on the date are converted to the holiday-break status in
// place, without compensation; sessions already taught or absent are left
// alone. When no session exists on the date yet, it is added to the owner's
// exception list so future generation and compensation skip it. Re-applying
// the same date is a no-op.
//
// The returned session pointer aliases a sched.Sessions entry and is the
// first session converted, if any.
func ApplyHoliday(sched *models.Schedule, vocab Vocabulary, date time.Time) (HolidayApplication, *models.Session) {
	day := DateOnly(date)

	outcome := HolidayUnchanged
	var converted *models.Session
	hasSession := false
	for i := range sched.Sessions {
		if !sched.Sessions[i].Date.Equal(day) {
			continue
		}
		hasSession = true
		if sched.Sessions[i].Status == vocab.Pending {
			sched.Sessions[i].Status = vocab.HolidayBreak
			if converted == nil {
				converted = &sched.Sessions[i]
			}
			outcome = HolidayConverted
		}
	}
	if hasSession {
		return outcome, converted
	}

	for _, d := range sched.HolidayExceptions {
		if DateOnly(d).Equal(day) {
			return HolidayUnchanged, nil
		}
	}
	sched.HolidayExceptions = append(sched.HolidayExceptions, day)
	return HolidayExcluded, nil
}
