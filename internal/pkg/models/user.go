package models

import (
	"strings"
	"time"
)

// User represents an authenticated operator of the dashboard
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// SheetUserRow is a raw row from the users sheet. The backend script
// uppercases every header, so the keys are fixed.
type SheetUserRow struct {
	ID        interface{} `json:"ID"`
	Email     interface{} `json:"EMAIL"`
	Password  interface{} `json:"SENHA"`
	FirstName interface{} `json:"NOME"`
	LastName  interface{} `json:"SOBRENOME"`
	Sector    interface{} `json:"SETOR"`
}

// LoginRequest is the body of a login call
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is returned after successful authentication
type LoginResult struct {
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Session is what we keep in Redis for a logged in operator
type Session struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// User returns the operator the session belongs to
func (s Session) User() User {
	return User{ID: s.UserID, Name: s.Name, Email: s.Email, Role: s.Role, Avatar: s.Avatar}
}

// AvatarFor returns the avatar letter shown for a first name
func AvatarFor(firstName string) string {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return "U"
	}
	return strings.ToUpper(string([]rune(firstName)[:1]))
}
