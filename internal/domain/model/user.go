package model

import "time"

// User is a stored credential record. Email is always in normalized form.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
