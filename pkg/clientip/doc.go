// Package clientip extracts the originating client IP from HTTP requests.
//
// The rate limiter keys on this value, so extraction prefers proxy headers
// in trust order before falling back to the socket address:
//
//  1. CF-Connecting-IP (Cloudflare)
//  2. X-Forwarded-For (first valid entry)
//  3. X-Real-IP (nginx)
//  4. RemoteAddr
//
// Every candidate is parsed with net.ParseIP; malformed values are skipped
// rather than trusted. Middleware stores the resolved IP in the request
// context for handlers and log extractors.
package clientip
