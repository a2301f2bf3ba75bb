package models

// Course is a row of the courses reference table, served as a raw passthrough.
type Course struct {
	ID     int64  `json:"course_id" db:"course_id"`
	Code   string `json:"course_code" db:"course_code"`
	Name   string `json:"course_name" db:"course_name"`
	Stream string `json:"stream" db:"stream"`
}
