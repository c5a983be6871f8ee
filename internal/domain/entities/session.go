package entities

import "time"

// IdentitySession is what the external identity provider hands back on a
// successful credential check.
type IdentitySession struct {
	AccessToken string
	ExpiresIn   int32
}

// Session is the authenticated operator session returned by sign-in.
//
// Token is the API bearer token issued by this service; AccessToken is the
// identity provider's own token, kept so sign-out can revoke it upstream.
type Session struct {
	Email       string
	Token       string
	AccessToken string
	ExpiresAt   time.Time
}
