// Package ratelimit bounds how often a single client may trigger
// OTP issuance.
//
// The limiter is a fixed window: the first request for a key opens a
// window, subsequent requests increment a counter, and once the counter
// passes the limit further requests are denied until the window expires.
// State lives behind the Store interface: MemoryStore for single-instance
// deployments (state is lost on restart, acceptable for a defense-in-depth
// control) and RedisStore when the window must hold across instances.
//
//	store := ratelimit.NewMemoryStore()
//	limiter, err := ratelimit.NewFixedWindow(store, 10, 15*time.Minute)
//	...
//	r.Use(ratelimit.Middleware(limiter, ratelimit.ClientIP()))
//
// The middleware fails open: a store error lets the request through, since
// losing rate limiting is preferable to failing password resets outright.
package ratelimit
