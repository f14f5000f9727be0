package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an access token issued at login or registration, or parsed from
// an Authorization header. UserID mirrors the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// Bearer is the Authorization header value carrying the token.
func (t Token) Bearer() string {
	return "Bearer " + t.SignedString
}

// ExpiresIn is the lifetime left at now, zero once expired or when the
// token carries no "exp" claim.
func (t Token) ExpiresIn(now time.Time) time.Duration {
	if t.ExpiresAt == nil {
		return 0
	}
	return max(t.ExpiresAt.Sub(now), 0)
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return t.SignedString
}
