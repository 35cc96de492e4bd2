package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/phucnvzeud/center-x-sub000/models"
)

func TestSubstituteCustomCancelsLatestCompensatory(t *testing.T) {
	sched := courseSchedule(t)

	// Two absences with compensation leave two pending compensatory sessions,
	// Jan 29 created first and Feb 5 created second.
	if _, _, err := Transition(&sched, CourseVocabulary, sched.Sessions[0].ID, models.CourseStatusAbsentPersonal, "", true, nil, afterSchedule); err != nil {
		t.Fatalf("first absence: %v", err)
	}
	if _, _, err := Transition(&sched, CourseVocabulary, sched.Sessions[1].ID, models.CourseStatusAbsentOther, "", true, nil, afterSchedule); err != nil {
		t.Fatalf("second absence: %v", err)
	}
	if len(sched.Sessions) != 6 {
		t.Fatalf("expected 6 sessions before substitution, got %d", len(sched.Sessions))
	}
	latest := sched.Sessions[len(sched.Sessions)-1]
	if !latest.Compensatory || !latest.Date.Equal(date(2024, time.February, 5)) {
		t.Fatalf("expected latest compensatory on Feb 5, got %v", latest.Date)
	}

	custom, removedID := SubstituteCustom(&sched, CourseVocabulary, date(2024, time.January, 13), "weekend make-up")
	if removedID != latest.ID {
		t.Fatalf("expected most recently created compensatory %s removed, got %s", latest.ID, removedID)
	}
	if len(sched.Sessions) != 6 {
		t.Fatalf("substitution must keep length, got %d", len(sched.Sessions))
	}
	if custom.Status != models.CourseStatusTaught || custom.Compensatory {
		t.Fatalf("custom session must be taught and non-compensatory, got %q %v", custom.Status, custom.Compensatory)
	}
	if indexByID(sched.Sessions, latest.ID) >= 0 {
		t.Fatalf("removed compensatory still present")
	}
}

func TestSubstituteCustomWithoutPendingCompensatory(t *testing.T) {
	sched := courseSchedule(t)

	custom, removedID := SubstituteCustom(&sched, CourseVocabulary, date(2024, time.January, 13), "")
	if removedID != "" {
		t.Fatalf("expected no removal, got %s", removedID)
	}
	if len(sched.Sessions) != 5 {
		t.Fatalf("expected length 5 (target exceeded by design), got %d", len(sched.Sessions))
	}
	if custom.Status != models.CourseStatusTaught {
		t.Fatalf("expected taught custom session, got %q", custom.Status)
	}
}

func TestSubstituteCustomInheritsSlotTimes(t *testing.T) {
	sched := courseSchedule(t)

	// A custom session on a recurrence weekday inherits that slot's window.
	onMonday, _ := SubstituteCustom(&sched, CourseVocabulary, date(2024, time.February, 12), "")
	if onMonday.Start != 540 || onMonday.End != 600 {
		t.Fatalf("expected inherited window [540, 600], got [%d, %d]", onMonday.Start, onMonday.End)
	}

	// Off-recurrence dates have no slot to inherit from.
	onSaturday, _ := SubstituteCustom(&sched, CourseVocabulary, date(2024, time.February, 10), "")
	if onSaturday.Start != 0 || onSaturday.End != 0 {
		t.Fatalf("expected empty window off recurrence, got [%d, %d]", onSaturday.Start, onSaturday.End)
	}
}

func TestSubstituteCustomKeepsChronologicalOrder(t *testing.T) {
	sched := courseSchedule(t)
	SubstituteCustom(&sched, CourseVocabulary, date(2024, time.January, 10), "")

	for i := 1; i < len(sched.Sessions); i++ {
		prev, cur := sched.Sessions[i-1], sched.Sessions[i]
		if cur.Date.Before(prev.Date) || (cur.Date.Equal(prev.Date) && cur.Start < prev.Start) {
			t.Fatalf("session %d out of order after insert", i)
		}
	}
}

func TestAppendCompensatoryNeverMutatesExistingSessions(t *testing.T) {
	sched := courseSchedule(t)
	before := make([]models.Session, len(sched.Sessions))
	copy(before, sched.Sessions)

	comp, err := AppendCompensatory(&sched, CourseVocabulary, nil)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(sched.Sessions) != len(before)+1 {
		t.Fatalf("expected length +1, got %d", len(sched.Sessions))
	}
	for i, prev := range before {
		cur := sched.Sessions[indexByID(sched.Sessions, prev.ID)]
		if cur.Status != prev.Status || !cur.Date.Equal(prev.Date) {
			t.Fatalf("existing session %d was altered", i)
		}
	}
	if !comp.Date.After(before[len(before)-1].Date) {
		t.Fatalf("compensatory date must be strictly after the previous maximum")
	}
}

func TestAppendCompensatorySkipsOwnerExceptions(t *testing.T) {
	sched := courseSchedule(t)
	sched.HolidayExceptions = []time.Time{date(2024, time.January, 29)}

	comp, err := AppendCompensatory(&sched, CourseVocabulary, nil)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if !comp.Date.Equal(date(2024, time.February, 5)) {
		t.Fatalf("expected exception skipped, got %v", comp.Date)
	}
}

func TestDeleteSessionIsUnprotected(t *testing.T) {
	sched := courseSchedule(t)
	id := sched.Sessions[2].ID

	if err := DeleteSession(&sched, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// The administrative override may drop the list below the target count.
	if len(sched.Sessions) != 3 {
		t.Fatalf("expected length 3, got %d", len(sched.Sessions))
	}
	if indexByID(sched.Sessions, id) >= 0 {
		t.Fatalf("deleted session still present")
	}

	err := DeleteSession(&sched, "missing")
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
