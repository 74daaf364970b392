package gateway

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the exp claim from a JWT without verifying its
// signature. The client holds no signing key and the backend is the only
// authority on validity, so the expiry is informational: it feeds debug
// logging and the whoami display, never an authorization decision.
func TokenExpiry(raw string) (time.Time, bool) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func tokenLooksExpired(raw string, now time.Time) bool {
	exp, ok := TokenExpiry(raw)
	return ok && exp.Before(now)
}
