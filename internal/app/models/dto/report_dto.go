package dto

// CreateReportRequest is the body of POST /reports
type CreateReportRequest struct {
	LecturerID       int64  `json:"lecturer_id"`
	CourseCode       string `json:"course_code"`
	WeekOfReporting  string `json:"week_of_reporting"`
	DateOfLecture    string `json:"date_of_lecture"`
	Topic            string `json:"topic"`
	LearningOutcomes string `json:"learning_outcomes"`
	Recommendations  string `json:"recommendations"`
	StudentsPresent  int    `json:"students_present"`
	TotalStudents    int    `json:"total_students"`
}

// CreateReportResponse is returned by POST /reports
type CreateReportResponse struct {
	Message  string `json:"message"`
	ReportID int64  `json:"report_id"`
}
