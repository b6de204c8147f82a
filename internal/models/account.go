package models

import "time"

// Account represents a registered user account.
type Account struct {
	ID           string    `json:"id"`
	Fullname     string    `json:"fullname"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	ProfileImg   string    `json:"profile_img"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SessionPayload is the response body for a successful signup or signin.
type SessionPayload struct {
	AccessToken string `json:"access_token"`
	ProfileImg  string `json:"profile_img"`
	Username    string `json:"username"`
	Fullname    string `json:"fullname"`
}
