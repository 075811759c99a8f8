package session

import (
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short, stable digest of token for logs and keys.
// The raw credential is never logged.
func Fingerprint(token string) string {
	if token == "" {
		return "anonymous"
	}
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:6])
}

// claims reads the JWT payload without verifying it. The backend owns the
// signing key; we only peek at exp and the user's email.
func claims(token string) (jwt.MapClaims, bool) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return nil, false
	}
	return mc, true
}

// Expiry returns how long the credential cookie should live: max, or less
// when the token is a JWT that expires sooner. A token that has already
// expired yields 0.
func Expiry(token string, now time.Time, max time.Duration) time.Duration {
	mc, ok := claims(token)
	if !ok {
		return max
	}
	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return max
	}
	left := exp.Time.Sub(now)
	if left <= 0 {
		return 0
	}
	if left < max {
		return left
	}
	return max
}

// Subject returns the email (or sub) claim of a JWT credential, if any.
func Subject(token string) string {
	mc, ok := claims(token)
	if !ok {
		return ""
	}
	if email, ok := mc["email"].(string); ok && email != "" {
		return email
	}
	sub, _ := mc.GetSubject()
	return sub
}
