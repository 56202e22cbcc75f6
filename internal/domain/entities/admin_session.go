package entities

import "time"

// AdminSession is the authentication context of one browser.
//
// It is resolved from the session cookie once per request and handed explicitly
// to every admin operation. The zero value is an unauthenticated session.
type AdminSession struct {
	Authenticated bool
	TokenID       string
	IssuedAt      time.Time
	ExpiresAt     time.Time
}

// UnauthenticatedSession is the session of a browser without a valid cookie.
func UnauthenticatedSession() AdminSession {
	return AdminSession{}
}

func (s AdminSession) IsAuthenticated() bool {
	return s.Authenticated && s.TokenID != ""
}
