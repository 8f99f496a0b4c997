package models

import "time"

// User is a stored account row. RefreshToken is nil while the user is
// logged out; it holds the single live refresh token otherwise.
type User struct {
	ID            string
	UserName      string
	Email         string
	FullName      string
	PasswordHash  string
	AvatarKey     string
	CoverImageKey string
	RefreshToken  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Profile is the public view of a User: image keys are resolved to URLs and
// credentials are left out.
type Profile struct {
	ID            string    `json:"id"`
	UserName      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	AvatarURL     string    `json:"avatar"`
	CoverImageURL string    `json:"coverImage,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
