package holidays

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phucnvzeud/center-x-sub000/models"
	"github.com/phucnvzeud/center-x-sub000/scheduling"
	courseService "github.com/phucnvzeud/center-x-sub000/services/course"
	kindergartenService "github.com/phucnvzeud/center-x-sub000/services/kindergarten"
)

type fakeHolidayRepo struct {
	holidays []models.Holiday
}

func (r *fakeHolidayRepo) Create(ctx context.Context, holiday *models.Holiday) error {
	r.holidays = append(r.holidays, *holiday)
	return nil
}

func (r *fakeHolidayRepo) GetByID(ctx context.Context, id string) (*models.Holiday, error) {
	for i := range r.holidays {
		if r.holidays[i].ID == id {
			return &r.holidays[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeHolidayRepo) List(ctx context.Context) ([]models.Holiday, error) {
	return r.holidays, nil
}

func (r *fakeHolidayRepo) FindInRange(ctx context.Context, start, end time.Time) ([]models.Holiday, error) {
	var out []models.Holiday
	for _, h := range r.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) Delete(ctx context.Context, id string) error {
	for i := range r.holidays {
		if r.holidays[i].ID == id {
			r.holidays = append(r.holidays[:i], r.holidays[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

// fakeCourses overrides only what the holiday fan-out touches.
type fakeCourses struct {
	courseService.CourseService
	ids     []string
	failing map[string]bool
}

func (f *fakeCourses) ListCourses(ctx context.Context, branchID string) ([]models.Course, error) {
	var out []models.Course
	for _, id := range f.ids {
		out = append(out, models.Course{ID: id})
	}
	return out, nil
}

func (f *fakeCourses) ApplyHoliday(ctx context.Context, courseID string, date time.Time) (models.ApplyResult, error) {
	if f.failing[courseID] {
		return models.ApplyResult{
			OwnerID:   courseID,
			OwnerKind: "course",
			Outcome:   models.ApplyFailed,
			Err:       "write failed",
		}, fmt.Errorf("write failed")
	}
	return models.ApplyResult{OwnerID: courseID, OwnerKind: "course", Outcome: models.ApplyConverted}, nil
}

type fakeKindergartens struct {
	kindergartenService.KindergartenService
	ids []string
}

func (f *fakeKindergartens) ListClasses(ctx context.Context, schoolID string) ([]models.KindergartenClass, error) {
	var out []models.KindergartenClass
	for _, id := range f.ids {
		out = append(out, models.KindergartenClass{ID: id})
	}
	return out, nil
}

func (f *fakeKindergartens) ApplyHoliday(ctx context.Context, classID string, date time.Time) (models.ApplyResult, error) {
	return models.ApplyResult{OwnerID: classID, OwnerKind: "kindergarten", Outcome: models.ApplyExcluded}, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestApplyToAllOwnersBestEffort(t *testing.T) {
	repo := &fakeHolidayRepo{holidays: []models.Holiday{
		{ID: "h1", Date: date(2024, time.May, 1), Name: "Labor Day"},
	}}
	svc := NewDefaultHolidayService(
		repo,
		&fakeCourses{ids: []string{"c1", "c2"}, failing: map[string]bool{"c1": true}},
		&fakeKindergartens{ids: []string{"k1"}},
		nil,
		nil,
	)

	results, err := svc.ApplyToAllOwners(context.Background(), "h1")
	if err != nil {
		t.Fatalf("ApplyToAllOwners: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	// Results come back sorted by owner kind then owner ID.
	wantOwners := []string{"c1", "c2", "k1"}
	for i, want := range wantOwners {
		if results[i].OwnerID != want {
			t.Errorf("result %d: expected owner %q, got %q", i, want, results[i].OwnerID)
		}
	}
	if results[0].Outcome != models.ApplyFailed || results[0].Err == "" {
		t.Errorf("expected c1 to fail with a recorded cause, got %+v", results[0])
	}
	if results[1].Outcome != models.ApplyConverted {
		t.Errorf("expected c2 converted, got %q", results[1].Outcome)
	}
	if results[2].Outcome != models.ApplyExcluded {
		t.Errorf("expected k1 excluded, got %q", results[2].Outcome)
	}
}

func TestApplyToAllOwnersUnknownHoliday(t *testing.T) {
	svc := NewDefaultHolidayService(&fakeHolidayRepo{}, &fakeCourses{}, &fakeKindergartens{}, nil, nil)

	_, err := svc.ApplyToAllOwners(context.Background(), "missing")
	var notFound *scheduling.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCheckDateRange(t *testing.T) {
	repo := &fakeHolidayRepo{holidays: []models.Holiday{
		{ID: "h1", Date: date(2024, time.April, 30), Name: "Reunification Day"},
		{ID: "h2", Date: date(2024, time.May, 1), Name: "Labor Day"},
		{ID: "h3", Date: date(2024, time.September, 2), Name: "National Day"},
	}}
	svc := NewDefaultHolidayService(repo, &fakeCourses{}, &fakeKindergartens{}, nil, nil)

	holidays, err := svc.CheckDateRange(context.Background(), date(2024, time.April, 29), date(2024, time.May, 3))
	if err != nil {
		t.Fatalf("CheckDateRange: %v", err)
	}
	if len(holidays) != 2 {
		t.Fatalf("expected 2 holidays in range, got %d", len(holidays))
	}
}

func TestCheckDateRangeInvertedRange(t *testing.T) {
	svc := NewDefaultHolidayService(&fakeHolidayRepo{}, &fakeCourses{}, &fakeKindergartens{}, nil, nil)

	_, err := svc.CheckDateRange(context.Background(), date(2024, time.May, 3), date(2024, time.April, 29))
	var validation *scheduling.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateHolidayTruncatesDate(t *testing.T) {
	repo := &fakeHolidayRepo{}
	svc := NewDefaultHolidayService(repo, &fakeCourses{}, &fakeKindergartens{}, nil, nil)

	holiday, err := svc.CreateHoliday(context.Background(), time.Date(2024, time.May, 1, 15, 30, 0, 0, time.UTC), "Labor Day")
	if err != nil {
		t.Fatalf("CreateHoliday: %v", err)
	}
	if !holiday.Date.Equal(date(2024, time.May, 1)) {
		t.Fatalf("expected UTC midnight, got %s", holiday.Date)
	}
}
