package otp

import "errors"

var (
	// ErrFailedToGenerateOTP indicates the system random source failed.
	ErrFailedToGenerateOTP = errors.New("failed to generate one-time password")
)
