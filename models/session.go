package models

import "time"

// SessionStatus is one entry of a closed, owner-specific status vocabulary.
type SessionStatus string

// Course session statuses.
const (
	CourseStatusPending        SessionStatus = "Pending"
	CourseStatusTaught         SessionStatus = "Taught"
	CourseStatusAbsentPersonal SessionStatus = "Absent (Personal Reason)"
	CourseStatusAbsentHoliday  SessionStatus = "Absent (Holiday)"
	CourseStatusAbsentOther    SessionStatus = "Absent (Other Reason)"
)

// Kindergarten class session statuses.
const (
	KgStatusScheduled    SessionStatus = "Scheduled"
	KgStatusCompleted    SessionStatus = "Completed"
	KgStatusCanceled     SessionStatus = "Canceled"
	KgStatusHolidayBreak SessionStatus = "Holiday Break"
)

// Session is one dated occurrence of an owner's weekly timetable. Sessions are
// embedded in the owning document and addressed by ID, never by array position.
type Session struct {
	ID           string        `bson:"id" json:"id"`
	Date         time.Time     `bson:"date" json:"date"`
	Start        int           `bson:"start" json:"start"` // minutes from midnight (e.g., 540 for 9:00 AM)
	End          int           `bson:"end" json:"end"`
	Status       SessionStatus `bson:"status" json:"status"`
	Notes        string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Compensatory bool          `bson:"compensatory" json:"compensatory"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
}

// RecurrenceSlot is one (weekday, time window) entry of the weekly timetable.
type RecurrenceSlot struct {
	Weekday time.Weekday `bson:"weekday" json:"weekday"`
	Start   int          `bson:"start" json:"start"`
	End     int          `bson:"end" json:"end"`
}

// Schedule carries the recurring timetable and the generated session list
// shared by courses and kindergarten classes.
type Schedule struct {
	StartDate          time.Time        `bson:"startDate" json:"startDate"`
	Recurrence         []RecurrenceSlot `bson:"recurrence" json:"recurrence"`
	TargetSessionCount int              `bson:"targetSessionCount" json:"targetSessionCount"`
	HolidayExceptions  []time.Time      `bson:"holidayExceptions,omitempty" json:"holidayExceptions,omitempty"`
	Sessions           []Session        `bson:"sessions" json:"sessions"`
}

// UpdateSessionRequest is the payload for a single-session status transition.
type UpdateSessionRequest struct {
	Status          SessionStatus `json:"status" binding:"required"`
	Notes           string        `json:"notes"`
	AddCompensatory bool          `json:"addCompensatory"`
}

// SessionUpdateResult reports the edited session and, when a make-up slot was
// appended, the new compensatory session.
type SessionUpdateResult struct {
	Session      Session  `json:"session"`
	Compensatory *Session `json:"compensatorySession,omitempty"`
}

// CustomSessionResult reports an inserted ad-hoc session and the pending
// compensatory session it cancelled, if any.
type CustomSessionResult struct {
	Session               Session `json:"session"`
	RemovedCompensatoryID string  `json:"removedCompensatoryId,omitempty"`
}
