package models

import (
	"time"
)

// Rating is a student's evaluation of a lecturer for one module occurrence.
// The stored rating is the rounded mean of the sub-criteria the student filled
// in on the client; it is immutable once created.
type Rating struct {
	ID           int64     `json:"rating_id" db:"rating_id"`
	StudentID    int64     `json:"student_id" db:"student_id"`
	LecturerID   int64     `json:"lecturer_id" db:"lecturer_id"`
	LecturerName string    `json:"lecturer_name" db:"lecturer_name"` // denormalized snapshot, refreshed by JOIN on reads
	ModuleName   string    `json:"module_name" db:"module_name"`
	ModuleCode   string    `json:"module_code" db:"module_code"`
	Programme    string    `json:"programme" db:"programme"`
	YearOfStudy  string    `json:"year_of_study" db:"year_of_study"`
	Rating       int       `json:"rating" db:"rating"` // 1-5
	Comments     string    `json:"comments" db:"comments"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	// StudentName is joined in for the lecturer-facing listing only.
	StudentName string `json:"student_name,omitempty" db:"student_name"`
}
