package auth

import "errors"

// Error messages match the UI copy verbatim. Login reports the same message
// for a missing user and a wrong password so accounts cannot be enumerated.
var (
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrUsernameTaken      = errors.New("Username already exists")
	ErrUsernameTooShort   = errors.New("Username must be at least 3 characters")
	ErrPasswordTooShort   = errors.New("Password must be at least 4 characters")
)

// Credentials is the signup and login request body.
type Credentials struct {
	Username string `json:"username" example:"abcd"`
	Password string `json:"password" example:"1234"`
}

// Session is an established user session.
type Session struct {
	Token    string `json:"token" example:"5f7c1a0e-8a44-4a8e-9f0a-1c2d3e4f5a6b"`
	Username string `json:"username" example:"abcd"`
}

// User is the current-user response body.
type User struct {
	Username string `json:"username" example:"abcd"`
}
