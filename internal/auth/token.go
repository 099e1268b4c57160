package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired inspects a bearer token's exp claim without verifying the
// signature; the client never holds the signing secret. Tokens that are not
// JWTs, or carry no exp claim, are treated as non-expiring and left for the
// backend to reject.
func Expired(token string) bool {
	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
