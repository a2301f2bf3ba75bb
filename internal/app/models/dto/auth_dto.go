package dto

import (
	"github.com/tumelo/reportal/internal/app/models"
)

// RegisterRequest is the body of POST /register
type RegisterRequest struct {
	Name     string `json:"name" example:"Lineo Mahao"`
	Email    string `json:"email" example:"lineo@luct.ac.ls"`
	Password string `json:"password" example:"secret12"`
	Role     string `json:"role" example:"student"`
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Email    string `json:"email" example:"lineo@luct.ac.ls"`
	Password string `json:"password" example:"secret12"`
}

// AuthResponse is returned by register and login. Token is only present on
// login; the user object never includes the password field.
type AuthResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Token   string       `json:"token,omitempty"`
}
