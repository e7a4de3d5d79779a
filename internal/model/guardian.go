package model

import "time"

// Guardian represents a parent/guardian account that manages a family.
type Guardian struct {
	ID           int       `json:"id"`
	FamilyID     int       `json:"family_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginRequest is the payload for guardian authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token    string   `json:"token"`
	Guardian Guardian `json:"guardian"`
	Family   Family   `json:"family"`
}
