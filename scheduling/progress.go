package scheduling

import (
	"math"
	"time"

	"github.com/phucnvzeud/center-x-sub000/models"
)

// Stats derives read-only progress statistics from the current session list.
// It never mutates the schedule and nothing it returns is persisted.
func Stats(sched *models.Schedule, vocab Vocabulary, now time.Time) models.ProgressStats {
	stats := models.ProgressStats{
		TotalSessions:      len(sched.Sessions),
		TargetSessionCount: sched.TargetSessionCount,
	}

	pending := 0
	var end time.Time
	for _, s := range sched.Sessions {
		switch {
		case s.Status == vocab.Completed:
			stats.Completed++
		case vocab.IsAbsence(s.Status):
			stats.Canceled++
		case s.Status == vocab.HolidayBreak:
			stats.HolidayBreak++
		}
		if s.Status == vocab.Pending {
			pending++
		}
		if s.Compensatory {
			stats.Compensatory++
		}
		if s.Date.After(end) {
			end = s.Date
		}
	}

	if sched.TargetSessionCount > 0 {
		pct := int(math.Round(float64(stats.Completed) / float64(sched.TargetSessionCount) * 100))
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		stats.ProgressPercent = pct
	}

	stats.ActualEndDate = end
	stats.IsFinished = pending == 0
	if !end.IsZero() {
		today := DateOnly(now)
		days := int(end.Sub(today).Hours() / 24)
		stats.RemainingDays = days
		stats.RemainingWeeks = int(math.Ceil(float64(days) / 7))
		stats.IsFinished = !today.Before(end) || pending == 0
	}
	return stats
}
