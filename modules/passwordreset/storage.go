package passwordreset

import (
	"context"
	"time"
)

// SecretKind selects which pending reset secret an operation targets.
type SecretKind int

const (
	// SecretOTP is the emailed numeric code channel.
	SecretOTP SecretKind = iota
	// SecretToken is the emailed reset link channel.
	SecretToken
)

func (k SecretKind) String() string {
	switch k {
	case SecretOTP:
		return "otp"
	case SecretToken:
		return "token"
	default:
		return "unknown"
	}
}

// Storage persists accounts and their pending reset secrets. Lookups that
// match nothing return ErrAccountNotFound.
type Storage interface {
	// FindByEmail returns the account for a normalized email address.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// FindByResetTokenDigest returns the account whose pending reset token
	// digest matches and has not expired as of now.
	FindByResetTokenDigest(ctx context.Context, digest string, now time.Time) (*Account, error)

	// SetSecret records a pending secret digest and its expiry, replacing
	// any previous one of the same kind. For SecretOTP the attempts counter
	// is reset to zero in the same write.
	SetSecret(ctx context.Context, accountID string, kind SecretKind, digest string, expiresAt time.Time) error

	// ClearSecret removes the pending secret of the given kind. Clearing an
	// absent secret is not an error.
	ClearSecret(ctx context.Context, accountID string, kind SecretKind) error

	// IncrementOTPAttempts atomically bumps the OTP attempts counter and
	// returns the post-increment value.
	IncrementOTPAttempts(ctx context.Context, accountID string) (int, error)

	// CompleteReset installs the new password hash and clears the pending
	// secret of the given kind in a single update.
	CompleteReset(ctx context.Context, accountID string, passwordHash string, kind SecretKind) error
}
