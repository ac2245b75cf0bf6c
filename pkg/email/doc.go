// Package email sends transactional mail for the reset flows.
//
// EmailSender is the interface handlers depend on; the production
// implementation wraps Postmark's transactional API, and DevSender writes
// messages to disk for local development so no provider account is needed.
//
// Callers in the reset flows must treat send failures as non-fatal: the
// HTTP response to the client is the same whether or not the message went
// out. That policy lives with the callers; this package just reports
// errors honestly.
package email
