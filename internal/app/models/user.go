package models

import (
	"time"
)

// Role identifies what a user can do in the portal
type Role string

const (
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
	RolePRL      Role = "prl"
	RolePL       Role = "pl"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"user_id" db:"user_id" example:"1"`              // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Thabo Mokoena"`        // Full display name
	Email     string    `json:"email" db:"email" example:"thabo@luct.ac.ls"`   // Email address, unique per user
	Password  string    `json:"-" db:"password"`                               // Stored credential (bcrypt digest, or legacy plaintext)
	Role      Role      `json:"role" db:"role" example:"student"`              // One of student, lecturer, prl, pl
	CreatedAt time.Time `json:"created_at" db:"created_at"`                    // Timestamp when the user was created
}
