// Package passwordreset implements account password recovery over two
// channels: a short-lived emailed OTP verified together with the new
// password, and a single-use emailed reset link carrying a random token.
//
// Neither channel ever confirms whether an address has an account. The
// issuance endpoints return the same generic response for known and
// unknown addresses, and internal failures on those paths are logged but
// not surfaced.
//
// Secrets are never stored in recoverable form: OTP codes are kept as
// HMAC-SHA256 digests keyed with a server secret and bound to the
// account email, reset tokens as SHA-256 digests. OTP verification is
// bounded by an attempts ceiling enforced with an atomic counter so that
// concurrent guesses cannot slip under it.
package passwordreset
