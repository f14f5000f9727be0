package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// CacheKey derives a keyed digest for an AI cache entry from its parts.
// Parts are NUL-separated, so ("ab", "c") and ("a", "bc") never collide.
func CacheKey(secret string, parts ...string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	for i, p := range parts {
		if i > 0 {
			mac.Write([]byte{0})
		}
		mac.Write([]byte(p))
	}
	return hex.EncodeToString(mac.Sum(nil))
}
