package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/phucnvzeud/center-x-sub000/models"
)

// courseSchedule builds the four-Monday January 2024 schedule used by most
// state machine tests.
func courseSchedule(t *testing.T) models.Schedule {
	t.Helper()
	sched := models.Schedule{
		StartDate:          date(2024, time.January, 1),
		Recurrence:         mondayRecurrence(),
		TargetSessionCount: 4,
	}
	sched.Sessions = mustGenerate(t, sched.StartDate, sched.Recurrence, sched.TargetSessionCount, nil, CourseVocabulary)
	return sched
}

var afterSchedule = date(2024, time.February, 1)

func TestTransitionMarkTaughtKeepsLength(t *testing.T) {
	sched := courseSchedule(t)

	updated, comp, err := Transition(&sched, CourseVocabulary, sched.Sessions[0].ID, models.CourseStatusTaught, "covered unit 1", false, nil, afterSchedule)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if comp != nil {
		t.Fatalf("marking taught must not add a compensatory session")
	}
	if updated.Status != models.CourseStatusTaught || updated.Notes != "covered unit 1" {
		t.Fatalf("expected taught session with notes, got %q %q", updated.Status, updated.Notes)
	}
	if len(sched.Sessions) != 4 {
		t.Fatalf("expected length 4, got %d", len(sched.Sessions))
	}
}

func TestTransitionAbsentAppendsCompensatory(t *testing.T) {
	sched := courseSchedule(t)

	_, comp, err := Transition(&sched, CourseVocabulary, sched.Sessions[0].ID, models.CourseStatusAbsentHoliday, "", true, nil, afterSchedule)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if len(sched.Sessions) != 5 {
		t.Fatalf("expected length 5, got %d", len(sched.Sessions))
	}
	if comp == nil {
		t.Fatalf("expected a compensatory session")
	}
	if !comp.Date.Equal(date(2024, time.January, 29)) {
		t.Fatalf("expected compensatory on Jan 29, got %v", comp.Date)
	}
	if comp.Status != models.CourseStatusPending || !comp.Compensatory {
		t.Fatalf("compensatory session must be pending and flagged, got %q %v", comp.Status, comp.Compensatory)
	}
	if comp.Date.Weekday() != time.Monday {
		t.Fatalf("compensatory date must match a recurrence weekday, got %s", comp.Date.Weekday())
	}
	last := sched.Sessions[len(sched.Sessions)-1]
	if last.ID != comp.ID {
		t.Fatalf("compensatory session must sort after the existing maximum date")
	}
}

func TestTransitionAbsentWithoutRequestLeavesLength(t *testing.T) {
	sched := courseSchedule(t)

	_, comp, err := Transition(&sched, CourseVocabulary, sched.Sessions[0].ID, models.CourseStatusAbsentPersonal, "", false, nil, afterSchedule)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if comp != nil || len(sched.Sessions) != 4 {
		t.Fatalf("compensation must be explicit, got comp=%v length=%d", comp, len(sched.Sessions))
	}
}

func TestTransitionCompensatorySkipsHolidays(t *testing.T) {
	sched := courseSchedule(t)
	holidays := map[string]bool{"2024-01-29": true}

	_, comp, err := Transition(&sched, CourseVocabulary, sched.Sessions[0].ID, models.CourseStatusAbsentOther, "", true, holidays, afterSchedule)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if !comp.Date.Equal(date(2024, time.February, 5)) {
		t.Fatalf("expected compensatory pushed past the holiday to Feb 5, got %v", comp.Date)
	}
}

func TestTransitionReEditDoesNotCompensateTwice(t *testing.T) {
	sched := courseSchedule(t)
	id := sched.Sessions[0].ID

	if _, _, err := Transition(&sched, CourseVocabulary, id, models.CourseStatusTaught, "", false, nil, afterSchedule); err != nil {
		t.Fatalf("first transition: %v", err)
	}
	// Correcting a recorded session is allowed, but the previous status is no
	// longer pending, so no compensation may be triggered.
	updated, comp, err := Transition(&sched, CourseVocabulary, id, models.CourseStatusAbsentPersonal, "correction", true, nil, afterSchedule)
	if err != nil {
		t.Fatalf("second transition: %v", err)
	}
	if updated.Status != models.CourseStatusAbsentPersonal {
		t.Fatalf("expected corrected status, got %q", updated.Status)
	}
	if comp != nil || len(sched.Sessions) != 4 {
		t.Fatalf("re-edit must not compensate, got comp=%v length=%d", comp, len(sched.Sessions))
	}
}

func TestTransitionUnknownSession(t *testing.T) {
	sched := courseSchedule(t)

	_, _, err := Transition(&sched, CourseVocabulary, "nope", models.CourseStatusTaught, "", false, nil, afterSchedule)
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nferr.ID != "nope" {
		t.Fatalf("expected offending id in error, got %q", nferr.ID)
	}
}

func TestTransitionFutureSessionRejected(t *testing.T) {
	sched := courseSchedule(t)
	// "Now" is one day before the first session.
	now := date(2023, time.December, 31)

	_, _, err := Transition(&sched, CourseVocabulary, sched.Sessions[0].ID, models.CourseStatusTaught, "", false, nil, now)
	var iterr *InvalidTransitionError
	if !errors.As(err, &iterr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if sched.Sessions[0].Status != models.CourseStatusPending {
		t.Fatalf("failed transition must not mutate the session")
	}
}

func TestTransitionUnsupportedStatus(t *testing.T) {
	sched := courseSchedule(t)

	_, _, err := Transition(&sched, CourseVocabulary, sched.Sessions[0].ID, models.KgStatusCanceled, "", false, nil, afterSchedule)
	var iterr *InvalidTransitionError
	if !errors.As(err, &iterr) {
		t.Fatalf("expected InvalidTransitionError for foreign status, got %v", err)
	}
}

func TestTransitionKindergartenVocabulary(t *testing.T) {
	sched := models.Schedule{
		StartDate:          date(2024, time.January, 1),
		Recurrence:         mondayRecurrence(),
		TargetSessionCount: 4,
	}
	sched.Sessions = mustGenerate(t, sched.StartDate, sched.Recurrence, 4, nil, KindergartenVocabulary)

	_, comp, err := Transition(&sched, KindergartenVocabulary, sched.Sessions[0].ID, models.KgStatusCanceled, "", true, nil, afterSchedule)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if comp == nil || len(sched.Sessions) != 5 {
		t.Fatalf("canceled class must compensate on request, got comp=%v length=%d", comp, len(sched.Sessions))
	}

	// Holiday break is not an absence and never compensates, even on request.
	_, comp, err = Transition(&sched, KindergartenVocabulary, sched.Sessions[1].ID, models.KgStatusHolidayBreak, "", true, nil, afterSchedule)
	if err != nil {
		t.Fatalf("holiday break: %v", err)
	}
	if comp != nil || len(sched.Sessions) != 5 {
		t.Fatalf("holiday break must not compensate, got comp=%v length=%d", comp, len(sched.Sessions))
	}
}
