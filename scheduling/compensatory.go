package scheduling

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/phucnvzeud/center-x-sub000/models"
)

// AppendCompensatory creates one trailing make-up session: the first date
// strictly after the current maximum session date that matches a recurrence
// weekday and is in neither the owner's exception list nor the global holiday
// set. The new session is inserted in chronological position; no existing
// session is touched, so the list grows by exactly one.
func AppendCompensatory(sched *models.Schedule, vocab Vocabulary, holidays map[string]bool) (*models.Session, error) {
	if len(sched.Recurrence) == 0 {
		return nil, &ValidationError{Message: "schedule has no weekly recurrence"}
	}
	byWeekday, err := slotsByWeekday(sched.Recurrence)
	if err != nil {
		return nil, err
	}

	base := DateOnly(sched.StartDate).AddDate(0, 0, -1)
	for _, s := range sched.Sessions {
		if s.Date.After(base) {
			base = s.Date
		}
	}

	excluded := exclusionSet(sched.HolidayExceptions, holidays)
	day := base.AddDate(0, 0, 1)
	for walked := 0; walked <= maxWalkDays; walked++ {
		if slots := byWeekday[day.Weekday()]; len(slots) > 0 && !excluded[DateKey(day)] {
			session := models.Session{
				ID:           uuid.New().String(),
				Date:         day,
				Start:        slots[0].Start,
				End:          slots[0].End,
				Status:       vocab.Pending,
				Compensatory: true,
				CreatedAt:    time.Now().UTC(),
			}
			i := insertChronological(sched, session)
			return &sched.Sessions[i], nil
		}
		day = day.AddDate(0, 0, 1)
	}
	return nil, &ValidationError{Message: "no schedulable date found for compensatory session"}
}

// SubstituteCustom records an ad-hoc session that was actually taught outside
// the generated schedule. A custom make-up retroactively satisfies the debt a
// future compensatory slot would have covered, so the most recently created
// pending compensatory session, if any, is removed in exchange (net length
// change zero). Without one the custom session is simply inserted and the
// target count is exceeded by design.
func SubstituteCustom(sched *models.Schedule, vocab Vocabulary, customDate time.Time, notes string) (*models.Session, string) {
	date := DateOnly(customDate)
	start, end := 0, 0
	if byWeekday, err := slotsByWeekday(sched.Recurrence); err == nil {
		if slots := byWeekday[date.Weekday()]; len(slots) > 0 {
			start, end = slots[0].Start, slots[0].End
		}
	}

	removedID := ""
	if idx := latestPendingCompensatory(sched, vocab); idx >= 0 {
		removedID = sched.Sessions[idx].ID
		sched.Sessions = append(sched.Sessions[:idx], sched.Sessions[idx+1:]...)
	}

	session := models.Session{
		ID:        uuid.New().String(),
		Date:      date,
		Start:     start,
		End:       end,
		Status:    vocab.Completed,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}
	i := insertChronological(sched, session)
	return &sched.Sessions[i], removedID
}

// DeleteSession removes a session unconditionally. This is the administrative
// override: it may drop the list below the target count and the caller is
// responsible for auditing it. Only referential integrity is guaranteed.
func DeleteSession(sched *models.Schedule, sessionID string) error {
	idx := indexByID(sched.Sessions, sessionID)
	if idx < 0 {
		return &NotFoundError{Kind: "session", ID: sessionID}
	}
	sched.Sessions = append(sched.Sessions[:idx], sched.Sessions[idx+1:]...)
	return nil
}

// latestPendingCompensatory returns the index of the most recently created
// pending compensatory session, or -1. Creation-time ties resolve to the
// later list position.
func latestPendingCompensatory(sched *models.Schedule, vocab Vocabulary) int {
	best := -1
	for i := range sched.Sessions {
		s := &sched.Sessions[i]
		if !s.Compensatory || s.Status != vocab.Pending {
			continue
		}
		if best < 0 || !s.CreatedAt.Before(sched.Sessions[best].CreatedAt) {
			best = i
		}
	}
	return best
}

// insertChronological inserts s preserving the canonical (date, start time)
// ordering and returns its index.
func insertChronological(sched *models.Schedule, s models.Session) int {
	i := sort.Search(len(sched.Sessions), func(i int) bool {
		other := sched.Sessions[i]
		if !other.Date.Equal(s.Date) {
			return other.Date.After(s.Date)
		}
		return other.Start > s.Start
	})
	sched.Sessions = append(sched.Sessions, models.Session{})
	copy(sched.Sessions[i+1:], sched.Sessions[i:])
	sched.Sessions[i] = s
	return i
}

func exclusionSet(exceptions []time.Time, holidays map[string]bool) map[string]bool {
	out := make(map[string]bool, len(exceptions)+len(holidays))
	for key := range holidays {
		out[key] = true
	}
	for _, d := range exceptions {
		out[DateKey(d)] = true
	}
	return out
}
