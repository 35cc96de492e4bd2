package scheduling

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/phucnvzeud/center-x-sub000/models"
)

// maxWalkDays caps every calendar walk so a recurrence whose dates are all
// excluded cannot loop forever.
const maxWalkDays = 366 * 5

// DateKey formats a date for exclusion-set lookups.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DateOnly truncates t to UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Generate builds the initial session list: it walks calendar days forward
// from startDate and, for every recurrence slot matching the day's weekday on
// a non-excluded date, emits one pending session with the slot's time window,
// stopping the moment target sessions exist. Generation is all-or-nothing; an
// invalid recurrence or non-positive target yields a ValidationError and no
// partial list.
func Generate(startDate time.Time, recurrence []models.RecurrenceSlot, target int, excluded map[string]bool, vocab Vocabulary) ([]models.Session, error) {
	if len(recurrence) == 0 {
		return nil, &ValidationError{Message: "weekly recurrence must have at least one slot"}
	}
	if target <= 0 {
		return nil, &ValidationError{Message: fmt.Sprintf("target session count must be positive, got %d", target)}
	}
	byWeekday, err := slotsByWeekday(recurrence)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sessions := make([]models.Session, 0, target)
	day := DateOnly(startDate)
	for walked := 0; len(sessions) < target; walked++ {
		if walked > maxWalkDays {
			return nil, &ValidationError{Message: "recurrence and exclusions leave no schedulable days"}
		}
		if slots := byWeekday[day.Weekday()]; len(slots) > 0 && !excluded[DateKey(day)] {
			for _, slot := range slots {
				sessions = append(sessions, models.Session{
					ID:        uuid.New().String(),
					Date:      day,
					Start:     slot.Start,
					End:       slot.End,
					Status:    vocab.Pending,
					CreatedAt: now,
				})
				if len(sessions) == target {
					break
				}
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return sessions, nil
}

// slotsByWeekday validates the recurrence and groups its slots per weekday,
// ordered by start time so same-day sessions come out sorted.
func slotsByWeekday(recurrence []models.RecurrenceSlot) (map[time.Weekday][]models.RecurrenceSlot, error) {
	by := make(map[time.Weekday][]models.RecurrenceSlot, len(recurrence))
	for _, slot := range recurrence {
		if slot.Weekday < time.Sunday || slot.Weekday > time.Saturday {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid weekday %d in recurrence", slot.Weekday)}
		}
		if slot.Start < 0 || slot.End > 24*60 || slot.Start >= slot.End {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid time window [%d, %d] in recurrence", slot.Start, slot.End)}
		}
		for _, existing := range by[slot.Weekday] {
			if existing.Start == slot.Start {
				return nil, &ValidationError{Message: fmt.Sprintf("duplicate recurrence slot on %s at %d", slot.Weekday, slot.Start)}
			}
		}
		by[slot.Weekday] = append(by[slot.Weekday], slot)
	}
	for wd := range by {
		slots := by[wd]
		sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })
	}
	return by, nil
}
