package domain

import "time"

// User is an anonymous cookie-bound identity. Session is the secret token
// matched against the user_session cookie and is never exposed in
// listings; ShowId is the short public token shown next to posts.
type User struct {
	Id       UserId
	ShowId   string
	Nickname string
	Session  string
	LastIp   string
	LastSeen time.Time
}
