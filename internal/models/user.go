package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // don’t expose hash
	Role         string    `json:"role,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
