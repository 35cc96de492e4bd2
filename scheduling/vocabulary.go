package scheduling

import "github.com/phucnvzeud/center-x-sub000/models"

// Vocabulary binds the shared engine to one owner kind's closed status set.
// The engine never hardcodes status strings; courses and kindergarten classes
// each supply their own vocabulary.
type Vocabulary struct {
	// Pending is the only non-terminal status; sessions are generated with it.
	Pending models.SessionStatus
	// Completed marks a session as actually taught.
	Completed models.SessionStatus
	// HolidayBreak is the status applied when a global holiday lands on a
	// pending session. For courses, which have no dedicated break status,
	// this is "Absent (Holiday)".
	HolidayBreak models.SessionStatus
	// Absences are the statuses that may trigger a compensatory session.
	Absences []models.SessionStatus
	// All enumerates every accepted status.
	All []models.SessionStatus
}

// CourseVocabulary is the language-course status set.
var CourseVocabulary = Vocabulary{
	Pending:      models.CourseStatusPending,
	Completed:    models.CourseStatusTaught,
	HolidayBreak: models.CourseStatusAbsentHoliday,
	Absences: []models.SessionStatus{
		models.CourseStatusAbsentPersonal,
		models.CourseStatusAbsentHoliday,
		models.CourseStatusAbsentOther,
	},
	All: []models.SessionStatus{
		models.CourseStatusPending,
		models.CourseStatusTaught,
		models.CourseStatusAbsentPersonal,
		models.CourseStatusAbsentHoliday,
		models.CourseStatusAbsentOther,
	},
}

// KindergartenVocabulary is the kindergarten-class status set.
var KindergartenVocabulary = Vocabulary{
	Pending:      models.KgStatusScheduled,
	Completed:    models.KgStatusCompleted,
	HolidayBreak: models.KgStatusHolidayBreak,
	Absences: []models.SessionStatus{
		models.KgStatusCanceled,
	},
	All: []models.SessionStatus{
		models.KgStatusScheduled,
		models.KgStatusCompleted,
		models.KgStatusCanceled,
		models.KgStatusHolidayBreak,
	},
}

// Valid reports whether s belongs to the vocabulary.
func (v Vocabulary) Valid(s models.SessionStatus) bool {
	for _, known := range v.All {
		if known == s {
			return true
		}
	}
	return false
}

// IsAbsence reports whether s belongs to the absence class that may trigger
// compensation.
func (v Vocabulary) IsAbsence(s models.SessionStatus) bool {
	for _, a := range v.Absences {
		if a == s {
			return true
		}
	}
	return false
}
