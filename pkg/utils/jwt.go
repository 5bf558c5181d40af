package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// jwtParser decodes tokens without verifying signatures. The client never
// holds the signing secret; it only needs the exp claim to decide whether a
// credential is still worth sending.
var jwtParser = jwt.NewParser()

// TokenExpiration returns the expiry time encoded in a JWT.
// It returns false when the token is malformed or carries no exp claim.
func TokenExpiration(tokenString string) (time.Time, bool) {
	if tokenString == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	_, _, err := jwtParser.ParseUnverified(tokenString, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}

// IsTokenExpired reports whether a JWT has passed its expiry as of now.
// Malformed tokens are treated as expired.
func IsTokenExpired(tokenString string) bool {
	return IsTokenExpiredAt(tokenString, time.Now())
}

// IsTokenExpiredAt reports whether a JWT has passed its expiry as of the
// given instant. Malformed tokens are treated as expired.
func IsTokenExpiredAt(tokenString string, now time.Time) bool {
	exp, ok := TokenExpiration(tokenString)
	if !ok {
		return true
	}
	return !now.Before(exp)
}
