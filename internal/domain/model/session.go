package model

import "time"

// Session is the authenticated state handed out at login.
type Session struct {
	Token     string
	ExpiresIn time.Duration
	Roles     []string
}
