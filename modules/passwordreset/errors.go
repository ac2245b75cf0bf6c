package passwordreset

import "errors"

var (
	// ErrAccountNotFound indicates no account exists for the given lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrOTPInvalidOrExpired indicates verification was attempted for an
	// account with no pending OTP, or for an unknown address. Deliberately
	// indistinguishable from the outside.
	ErrOTPInvalidOrExpired = errors.New("otp invalid or expired")

	// ErrOTPExpired indicates the pending OTP's validity window has passed.
	// The pending OTP is cleared before this is returned.
	ErrOTPExpired = errors.New("otp expired")

	// ErrOTPInvalid indicates the submitted code did not match the pending
	// OTP. Attempts remaining accompany it in the verification result.
	ErrOTPInvalid = errors.New("otp invalid")

	// ErrTooManyAttempts indicates the attempts ceiling was reached. The
	// pending OTP is cleared before this is returned.
	ErrTooManyAttempts = errors.New("too many otp attempts")

	// ErrTokenInvalidOrExpired indicates the reset token matched no account
	// or its validity window has passed.
	ErrTokenInvalidOrExpired = errors.New("reset token invalid or expired")

	// ErrFailedToResetPassword wraps storage or hashing failures during the
	// final password update.
	ErrFailedToResetPassword = errors.New("failed to reset password")

	// ErrInvalidConfig indicates the module configuration is incomplete.
	ErrInvalidConfig = errors.New("invalid password reset config")
)
