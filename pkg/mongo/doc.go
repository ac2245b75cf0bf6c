// Package mongo connects the service to its MongoDB deployment.
//
// Connect retries with a configurable interval so the service survives a
// database that comes up slightly later than the application container.
// Config is populated from the environment via pkg/config. Healthcheck
// returns a probe function for readiness endpoints.
package mongo
