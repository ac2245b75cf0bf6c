// Package resettoken generates the high-entropy secrets used by the
// link-based password-reset flow.
//
// A token is 32 random bytes hex-encoded to 64 characters, giving 256 bits
// of entropy. Unlike the 6-digit OTP, the token itself is infeasible to
// brute-force, so an unkeyed SHA-256 digest is sufficient for storage: the
// raw token is emailed to the user inside a reset link and only its digest
// is ever persisted.
//
//	raw, err := resettoken.Generate()
//	if err != nil { ... }
//	store(resettoken.Digest(raw))
//	email("https://example.com/reset-password?token=" + raw)
//
// Lookup later recomputes Digest over the submitted token and matches it
// against the stored value.
package resettoken
