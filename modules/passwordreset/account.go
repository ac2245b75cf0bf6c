package passwordreset

import "time"

// Account is the stored user record as seen by the reset flows. Reset
// fields are absent (zero) unless a reset is pending; completing or
// abandoning a reset unsets them.
type Account struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`

	ResetOTPHash      string    `bson:"password_reset_otp_hash,omitempty"`
	ResetOTPExpires   time.Time `bson:"password_reset_otp_expires,omitempty"`
	ResetOTPAttempts  int       `bson:"password_reset_otp_attempts,omitempty"`
	ResetTokenDigest  string    `bson:"password_reset_token,omitempty"`
	ResetTokenExpires time.Time `bson:"password_reset_expires,omitempty"`
}

// HasPendingOTP reports whether an OTP reset is in flight.
func (a *Account) HasPendingOTP() bool {
	return a.ResetOTPHash != "" && !a.ResetOTPExpires.IsZero()
}
