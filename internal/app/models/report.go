package models

import (
	"time"
)

// Report is a lecturer's record of one delivered lecture session.
type Report struct {
	ID               int64     `json:"report_id" db:"report_id"`
	LecturerID       int64     `json:"lecturer_id" db:"lecturer_id"`
	CourseCode       string    `json:"course_code" db:"course_code"`
	WeekOfReporting  string    `json:"week_of_reporting" db:"week_of_reporting"`
	DateOfLecture    string    `json:"date_of_lecture" db:"date_of_lecture"`
	Topic            string    `json:"topic" db:"topic"`
	LearningOutcomes string    `json:"learning_outcomes" db:"learning_outcomes"`
	Recommendations  string    `json:"recommendations" db:"recommendations"`
	StudentsPresent  int       `json:"students_present" db:"students_present"`
	TotalStudents    int       `json:"total_students" db:"total_students"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`

	// LecturerName is joined in on reads for display.
	LecturerName string `json:"lecturer_name,omitempty" db:"lecturer_name"`

	// PRLFeedback has no backing column and no persisting endpoint; principal
	// lecturer views overlay it from their device-local store.
	PRLFeedback string `json:"prl_feedback,omitempty" db:"-"`
}
