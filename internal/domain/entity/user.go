package entity

import "time"

// User is an account holder. All records in the system are scoped to the
// owning user.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
