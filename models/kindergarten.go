package models

import "time"

// KindergartenClass is the schedule-owning aggregate for the
// "Scheduled/Completed/Canceled/Holiday Break" vocabulary. Structurally it is
// a Course with different directory fields; the scheduling engine treats both
// through the embedded Schedule.
type KindergartenClass struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	SchoolID    string `bson:"schoolId,omitempty" json:"schoolId,omitempty"`
	Room        string `bson:"room,omitempty" json:"room,omitempty"`
	TeacherName string `bson:"teacherName,omitempty" json:"teacherName,omitempty"`

	Schedule `bson:",inline"`

	Version   int       `bson:"version" json:"version"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// KindergartenClassUpdate carries the editable class metadata; nil fields are
// left as-is.
type KindergartenClassUpdate struct {
	Name        *string `json:"name,omitempty"`
	SchoolID    *string `json:"schoolId,omitempty"`
	Room        *string `json:"room,omitempty"`
	TeacherName *string `json:"teacherName,omitempty"`
}
