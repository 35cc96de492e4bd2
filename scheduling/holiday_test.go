package scheduling

import (
	"testing"
	"time"

	"github.com/phucnvzeud/center-x-sub000/models"
)

func TestApplyHolidayConvertsPendingSession(t *testing.T) {
	sched := courseSchedule(t)

	outcome, converted := ApplyHoliday(&sched, CourseVocabulary, date(2024, time.January, 15))
	if outcome != HolidayConverted {
		t.Fatalf("expected converted, got %q", outcome)
	}
	if converted == nil || converted.Status != models.CourseStatusAbsentHoliday {
		t.Fatalf("expected the Jan 15 session marked absent-holiday, got %+v", converted)
	}
	if len(sched.Sessions) != 4 {
		t.Fatalf("holiday application must not change length, got %d", len(sched.Sessions))
	}
	for _, s := range sched.Sessions {
		if s.Compensatory {
			t.Fatalf("holiday application must not add compensatory sessions")
		}
	}

	// Idempotent: re-applying the same date changes nothing further.
	outcome, converted = ApplyHoliday(&sched, CourseVocabulary, date(2024, time.January, 15))
	if outcome != HolidayUnchanged || converted != nil {
		t.Fatalf("expected unchanged on re-apply, got %q %+v", outcome, converted)
	}
}

func TestApplyHolidayKindergartenBreakStatus(t *testing.T) {
	sched := models.Schedule{
		StartDate:          date(2024, time.January, 1),
		Recurrence:         mondayRecurrence(),
		TargetSessionCount: 4,
	}
	sched.Sessions = mustGenerate(t, sched.StartDate, sched.Recurrence, 4, nil, KindergartenVocabulary)

	_, converted := ApplyHoliday(&sched, KindergartenVocabulary, date(2024, time.January, 8))
	if converted == nil || converted.Status != models.KgStatusHolidayBreak {
		t.Fatalf("expected holiday break status, got %+v", converted)
	}
}

func TestApplyHolidayLeavesRecordedSessions(t *testing.T) {
	sched := courseSchedule(t)
	if _, _, err := Transition(&sched, CourseVocabulary, sched.Sessions[1].ID, models.CourseStatusTaught, "", false, nil, afterSchedule); err != nil {
		t.Fatalf("transition: %v", err)
	}

	outcome, converted := ApplyHoliday(&sched, CourseVocabulary, sched.Sessions[1].Date)
	if outcome != HolidayUnchanged || converted != nil {
		t.Fatalf("taught sessions are never rewritten, got %q %+v", outcome, converted)
	}
	if sched.Sessions[1].Status != models.CourseStatusTaught {
		t.Fatalf("taught status was rewritten to %q", sched.Sessions[1].Status)
	}
}

func TestApplyHolidayRecordsExceptionWhenNoSessionYet(t *testing.T) {
	sched := courseSchedule(t)
	future := date(2024, time.March, 4)

	outcome, _ := ApplyHoliday(&sched, CourseVocabulary, future)
	if outcome != HolidayExcluded {
		t.Fatalf("expected excluded, got %q", outcome)
	}
	if len(sched.HolidayExceptions) != 1 || !sched.HolidayExceptions[0].Equal(future) {
		t.Fatalf("expected exception recorded, got %v", sched.HolidayExceptions)
	}

	outcome, _ = ApplyHoliday(&sched, CourseVocabulary, future)
	if outcome != HolidayUnchanged || len(sched.HolidayExceptions) != 1 {
		t.Fatalf("expected idempotent exception, got %q %v", outcome, sched.HolidayExceptions)
	}

	// A later compensatory append honors the recorded exception.
	sched.HolidayExceptions = []time.Time{date(2024, time.January, 29)}
	comp, err := AppendCompensatory(&sched, CourseVocabulary, nil)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if !comp.Date.Equal(date(2024, time.February, 5)) {
		t.Fatalf("expected compensatory past the exception, got %v", comp.Date)
	}
}
