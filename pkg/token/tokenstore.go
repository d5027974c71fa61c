package tokenstore

import (
	"time"

	"StudyIQ/pkg/cache"
)

// Revoked jtis are held until the token itself would have expired anyway.
const revocationTTL = 24 * time.Hour

func key(jti string) string {
	return cache.KeyFromStrings("revoked-jti", jti)
}

// RevokeToken marks a token id as revoked for the token lifetime.
func RevokeToken(jti string) {
	if jti == "" {
		return
	}
	cache.Default().Set(key(jti), true, revocationTTL)
}

func IsRevoked(jti string) bool {
	if jti == "" {
		return false
	}
	_, ok := cache.Default().Get(key(jti))
	return ok
}
