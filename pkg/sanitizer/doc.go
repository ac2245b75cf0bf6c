// Package sanitizer normalizes and masks user-supplied identifiers.
//
// The reset flows key everything on email addresses, so normalization
// (trim, lowercase, dot consolidation in the local part) happens once here
// and every lookup, hash, and persistence call uses the normalized form.
// MaskEmail is for log output: recipients appear as "u***@example.com" so
// operator logs never carry full addresses.
package sanitizer
