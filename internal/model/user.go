package model

import "time"

// User is an account row.
type User struct {
	ID        int64
	Email     string
	AuthHash  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CredentialsRequest is the body of register and login calls.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a bearer token and the account it belongs to.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse omits the password hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// WeakPasswordResponse explains why a registration password was refused.
type WeakPasswordResponse struct {
	Error    string   `json:"error"`
	Strength string   `json:"strength"`
	Feedback []string `json:"feedback"`
}
