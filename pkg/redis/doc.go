// Package redis connects the service to Redis.
//
// The service uses Redis for one thing: shared rate-limiter state, so that
// the per-IP issuance window in pkg/ratelimit holds across instances rather
// than resetting per process. Connect retries per the config; Healthcheck
// returns a readiness probe.
package redis
