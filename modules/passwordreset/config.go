package passwordreset

import (
	"errors"
	"net/url"
	"time"
)

// Config holds the password reset settings, loaded from environment
// variables. OTP_SECRET and APP_BASE_URL have no defaults on purpose: a
// deployment that forgets either must fail at startup, not silently issue
// guessable digests or links pointing at localhost.
type Config struct {
	// OTPSecret keys the HMAC over issued OTP codes.
	OTPSecret string `env:"OTP_SECRET,required"`
	// OTPTTL is how long an issued OTP stays valid.
	OTPTTL time.Duration `env:"OTP_TTL" envDefault:"10m"`
	// OTPMaxAttempts is the verification attempts ceiling per issued OTP.
	OTPMaxAttempts int `env:"OTP_MAX_ATTEMPTS" envDefault:"5"`
	// TokenTTL is how long an issued reset link stays valid.
	TokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"30m"`
	// MinPasswordLength applies to new passwords on both reset channels.
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH" envDefault:"6"`
	// AppName appears in outgoing email copy.
	AppName string `env:"APP_NAME" envDefault:"Noamani"`
	// BaseURL is the public origin reset links are built on. Links are
	// never derived from request headers.
	BaseURL string `env:"APP_BASE_URL,required"`
	// EmailTimeout bounds each outgoing email send.
	EmailTimeout time.Duration `env:"EMAIL_TIMEOUT" envDefault:"5s"`
	// RateLimit and RateWindow bound OTP issuance per client IP.
	RateLimit  int           `env:"RESET_RATE_LIMIT" envDefault:"10"`
	RateWindow time.Duration `env:"RESET_RATE_WINDOW" envDefault:"15m"`
	// BcryptCost is the work factor for new password hashes.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

// Validate checks the config is usable.
func (c Config) Validate() error {
	if c.OTPSecret == "" {
		return errors.Join(ErrInvalidConfig, errors.New("OTP secret is required"))
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Join(ErrInvalidConfig, errors.New("base URL must be absolute"))
	}
	if c.OTPTTL <= 0 || c.TokenTTL <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("secret lifetimes must be positive"))
	}
	if c.OTPMaxAttempts <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("OTP attempts ceiling must be positive"))
	}
	if c.MinPasswordLength < 1 {
		return errors.Join(ErrInvalidConfig, errors.New("minimum password length must be positive"))
	}
	return nil
}
