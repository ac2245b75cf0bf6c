// Package otp implements the one-time password primitives used by the
// password-reset flow: a uniformly distributed 6-digit code generator, a
// keyed hash that binds a code to a recipient, and a constant-time
// comparator for verifying submitted codes.
//
// Codes are never persisted in raw form. The hash is an HMAC-SHA256 over
// the lowercase recipient email and the code, keyed with a server-held
// secret. Keying matters here: a 6-digit code has only 10^6 possible
// values, so an unkeyed digest leaked from the database could be
// brute-forced offline in milliseconds. With the HMAC key held outside the
// database that attack requires the server secret as well.
//
// # Usage
//
//	code, err := otp.Generate()
//	if err != nil {
//	    // crypto/rand is unavailable; treat as fatal
//	}
//
//	digest := otp.Hash(code, "user@example.com", secret)
//	// store digest, email the raw code
//
//	// later, verifying a submitted code:
//	if otp.Equal(otp.Hash(submitted, email, secret), storedDigest) {
//	    // code is valid
//	}
//
// Hash is deterministic for the same inputs and secret, which is what makes
// the later comparison possible. Equal never short-circuits on content, so
// verification time does not leak the position of the first mismatching
// byte.
package otp
