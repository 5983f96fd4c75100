package dto

import "time"

// AuthenticationRequest carries the credentials for register and login
type AuthenticationRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"s3cret"`
}

// LoginResult is returned by a successful login. An empty token means the
// credentials were rejected.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
