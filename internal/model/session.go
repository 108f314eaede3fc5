package model

import "time"

// Session is the local web session. Its token travels in the session cookie;
// the Supabase tokens it carries are what the gateway authenticates with.
// Existence of a valid session implies "logged in".
type Session struct {
	Token        string
	UserID       string
	AccessToken  string
	RefreshToken string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}
