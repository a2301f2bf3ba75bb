package dto

// AddLecturerRequest is the body of POST /prl/lecturers
type AddLecturerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AddLecturerResponse is returned by POST /prl/lecturers
type AddLecturerResponse struct {
	Message    string `json:"message"`
	LecturerID int64  `json:"lecturerId"`
}

// LecturerResponse is one row of GET /prl/lecturers
type LecturerResponse struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
