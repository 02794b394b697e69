package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the stored account row. The password hash never leaves the
// service layer.
type User struct {
	ID           uuid.UUID `json:"user_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email_address"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
}

// UserData is the public projection of a User, returned to clients and
// embedded in sessions.
type UserData struct {
	ID       uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email_address"`
	Address  string    `json:"address"`
}

func (u User) Public() UserData {
	return UserData{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Address:  u.Address,
	}
}

// Session binds an opaque token to an authenticated user. Sessions are
// values copied out of the store; callers needing freshness re-fetch.
type Session struct {
	ID         string    `json:"session_id"`
	UserData   UserData  `json:"user_data"`
	LastActive time.Time `json:"last_active"`
}
