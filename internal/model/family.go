package model

import "time"

// Family represents a homeschooling household. The state field determines
// which jurisdiction's compliance rules apply.
type Family struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
