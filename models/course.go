package models

import "time"

// Course is a language-school course: the schedule-owning aggregate for the
// "Pending/Taught/Absent" vocabulary. The whole document, session list
// included, is loaded, mutated in memory and written back in one atomic
// update guarded by Version.
type Course struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Language    string `bson:"language,omitempty" json:"language,omitempty"`
	Level       string `bson:"level,omitempty" json:"level,omitempty"`
	TeacherName string `bson:"teacherName,omitempty" json:"teacherName,omitempty"`
	BranchID    string `bson:"branchId,omitempty" json:"branchId,omitempty"`

	Schedule `bson:",inline"`

	Version   int       `bson:"version" json:"version"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CourseUpdate carries the editable course metadata; nil fields are left as-is.
type CourseUpdate struct {
	Name        *string `json:"name,omitempty"`
	Language    *string `json:"language,omitempty"`
	Level       *string `json:"level,omitempty"`
	TeacherName *string `json:"teacherName,omitempty"`
	BranchID    *string `json:"branchId,omitempty"`
}
