package models

import "time"

// ProgressStats is derived from the current session list on demand and never
// persisted.
type ProgressStats struct {
	TotalSessions      int       `json:"totalSessions"`
	TargetSessionCount int       `json:"targetSessionCount"`
	Completed          int       `json:"completed"`
	Canceled           int       `json:"canceled"`
	HolidayBreak       int       `json:"holidayBreak"`
	Compensatory       int       `json:"compensatory"`
	ProgressPercent    int       `json:"progressPercent"`
	ActualEndDate      time.Time `json:"actualEndDate"`
	RemainingDays      int       `json:"remainingDays"`
	RemainingWeeks     int       `json:"remainingWeeks"`
	IsFinished         bool      `json:"isFinished"`
}
