package scheduling

import (
	"testing"
	"time"

	"github.com/phucnvzeud/center-x-sub000/models"
)

func TestStatsCountsAndPercent(t *testing.T) {
	sched := courseSchedule(t)
	mark := func(i int, status models.SessionStatus, comp bool) {
		if _, _, err := Transition(&sched, CourseVocabulary, sched.Sessions[i].ID, status, "", comp, nil, afterSchedule); err != nil {
			t.Fatalf("transition %d: %v", i, err)
		}
	}
	mark(0, models.CourseStatusTaught, false)
	mark(1, models.CourseStatusTaught, false)
	mark(2, models.CourseStatusAbsentPersonal, true)

	stats := Stats(&sched, CourseVocabulary, afterSchedule)
	if stats.TotalSessions != 5 || stats.TargetSessionCount != 4 {
		t.Fatalf("expected 5 sessions over target 4, got %d/%d", stats.TotalSessions, stats.TargetSessionCount)
	}
	if stats.Completed != 2 {
		t.Fatalf("expected 2 completed, got %d", stats.Completed)
	}
	if stats.Canceled != 1 {
		t.Fatalf("expected 1 canceled, got %d", stats.Canceled)
	}
	if stats.Compensatory != 1 {
		t.Fatalf("expected 1 compensatory, got %d", stats.Compensatory)
	}
	if stats.ProgressPercent != 50 {
		t.Fatalf("expected 50%%, got %d", stats.ProgressPercent)
	}
	if !stats.ActualEndDate.Equal(date(2024, time.January, 29)) {
		t.Fatalf("expected actual end on the trailing compensatory date, got %v", stats.ActualEndDate)
	}
}

func TestStatsCourseAbsentHolidayCountsAsCanceled(t *testing.T) {
	sched := courseSchedule(t)
	if _, _, err := Transition(&sched, CourseVocabulary, sched.Sessions[0].ID, models.CourseStatusAbsentHoliday, "", false, nil, afterSchedule); err != nil {
		t.Fatalf("transition: %v", err)
	}

	stats := Stats(&sched, CourseVocabulary, afterSchedule)
	if stats.Canceled != 1 || stats.HolidayBreak != 0 {
		t.Fatalf("course absent-holiday belongs to canceled, got canceled=%d holidayBreak=%d", stats.Canceled, stats.HolidayBreak)
	}
}

func TestStatsKindergartenHolidayBreak(t *testing.T) {
	sched := models.Schedule{
		StartDate:          date(2024, time.January, 1),
		Recurrence:         mondayRecurrence(),
		TargetSessionCount: 4,
	}
	sched.Sessions = mustGenerate(t, sched.StartDate, sched.Recurrence, 4, nil, KindergartenVocabulary)
	if _, _, err := Transition(&sched, KindergartenVocabulary, sched.Sessions[0].ID, models.KgStatusHolidayBreak, "", false, nil, afterSchedule); err != nil {
		t.Fatalf("transition: %v", err)
	}

	stats := Stats(&sched, KindergartenVocabulary, afterSchedule)
	if stats.HolidayBreak != 1 || stats.Canceled != 0 {
		t.Fatalf("expected holidayBreak=1 canceled=0, got %d/%d", stats.HolidayBreak, stats.Canceled)
	}
}

func TestStatsZeroTargetDoesNotDivide(t *testing.T) {
	sched := models.Schedule{TargetSessionCount: 0}
	stats := Stats(&sched, CourseVocabulary, afterSchedule)
	if stats.ProgressPercent != 0 {
		t.Fatalf("expected 0%% for zero target, got %d", stats.ProgressPercent)
	}
}

func TestStatsPercentClamped(t *testing.T) {
	sched := courseSchedule(t)
	sched.TargetSessionCount = 2
	for i := range sched.Sessions {
		sched.Sessions[i].Status = models.CourseStatusTaught
	}

	stats := Stats(&sched, CourseVocabulary, afterSchedule)
	if stats.ProgressPercent != 100 {
		t.Fatalf("expected clamp to 100, got %d", stats.ProgressPercent)
	}
}

func TestStatsRemainingAndFinished(t *testing.T) {
	sched := courseSchedule(t) // last session Jan 22

	// Ten days before the end, with pending sessions left.
	stats := Stats(&sched, CourseVocabulary, date(2024, time.January, 12))
	if stats.RemainingDays != 10 {
		t.Fatalf("expected 10 remaining days, got %d", stats.RemainingDays)
	}
	if stats.RemainingWeeks != 2 {
		t.Fatalf("expected ceil(10/7)=2 remaining weeks, got %d", stats.RemainingWeeks)
	}
	if stats.IsFinished {
		t.Fatalf("schedule with pending sessions before its end is not finished")
	}

	// Past the end the count goes negative and the schedule is finished.
	stats = Stats(&sched, CourseVocabulary, date(2024, time.January, 25))
	if stats.RemainingDays != -3 {
		t.Fatalf("expected -3 remaining days, got %d", stats.RemainingDays)
	}
	if !stats.IsFinished {
		t.Fatalf("schedule past its actual end date must be finished")
	}

	// All sessions terminal is finished even before the end date.
	for i := range sched.Sessions {
		sched.Sessions[i].Status = models.CourseStatusTaught
	}
	stats = Stats(&sched, CourseVocabulary, date(2024, time.January, 12))
	if !stats.IsFinished {
		t.Fatalf("schedule with no pending sessions must be finished")
	}
}
