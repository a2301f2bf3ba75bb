package dto

// CreateRatingRequest is the body of POST /ratings. The rating value is the
// rounded mean of the sub-criteria the student filled in client-side.
type CreateRatingRequest struct {
	StudentID    int64  `json:"student_id"`
	LecturerID   int64  `json:"lecturer_id"`
	LecturerName string `json:"lecturer_name"`
	ModuleName   string `json:"module_name"`
	ModuleCode   string `json:"module_code"`
	Programme    string `json:"programme"`
	YearOfStudy  string `json:"year_of_study"`
	Rating       int    `json:"rating"`
	Comments     string `json:"comments"`
}

// CreateRatingResponse is returned by POST /ratings
type CreateRatingResponse struct {
	Message  string `json:"message"`
	RatingID int64  `json:"ratingId"`
}
