package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/noamani/authkit/pkg/clientip"
)

// maxKeyLength bounds storage keys so backends like Redis never see
// unbounded key material.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from an HTTP request. An empty return
// skips limiting for the request.
type KeyFunc func(*http.Request) string

// ClientIP keys requests by originating client IP, preferring the value the
// clientip middleware resolved into the context.
func ClientIP() KeyFunc {
	return func(r *http.Request) string {
		if ip := clientip.FromContext(r.Context()); ip != "" {
			return ip
		}
		return clientip.GetIP(r)
	}
}

// Composite joins multiple key functions into one key. Long keys are hashed
// to 32 hex chars to keep storage keys bounded without collisions.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) > maxKeyLength {
			sum := sha256.Sum256([]byte(combined))
			return hex.EncodeToString(sum[:16])
		}
		return combined
	}
}
