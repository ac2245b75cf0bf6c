package passwordreset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/noamani/authkit/pkg/email"
	"github.com/noamani/authkit/pkg/otp"
	"github.com/noamani/authkit/pkg/resettoken"
	"github.com/noamani/authkit/pkg/sanitizer"
)

// Service coordinates both reset channels over a Storage and an email
// sender.
type Service struct {
	cfg     Config
	storage Storage
	sender  email.EmailSender
	log     *slog.Logger
	now     func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a password reset service.
func NewService(cfg Config, storage Storage, sender email.EmailSender, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if storage == nil {
		return nil, errors.Join(ErrInvalidConfig, errors.New("storage is required"))
	}
	if sender == nil {
		return nil, errors.Join(ErrInvalidConfig, errors.New("email sender is required"))
	}

	s := &Service{
		cfg:     cfg,
		storage: storage,
		sender:  sender,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RequestOTP issues a reset OTP to the account behind email, if one
// exists. It always returns nil: unknown addresses and internal failures
// are logged and swallowed so the caller's response cannot reveal whether
// the account exists.
func (s *Service) RequestOTP(ctx context.Context, emailAddr string) error {
	return s.issueSecret(ctx, emailAddr, SecretOTP)
}

// ForgotPassword emails a single-use reset link to the account behind
// email, if one exists. Like RequestOTP it always returns nil.
func (s *Service) ForgotPassword(ctx context.Context, emailAddr string) error {
	return s.issueSecret(ctx, emailAddr, SecretToken)
}

// issueSecret is the shared issuance skeleton for both channels: look up
// the account, generate the secret, persist its digest with an expiry, and
// email the raw value. All failures are logged and swallowed.
func (s *Service) issueSecret(ctx context.Context, emailAddr string, kind SecretKind) error {
	emailAddr = sanitizer.NormalizeEmail(emailAddr)
	masked := sanitizer.MaskEmail(emailAddr)

	account, err := s.storage.FindByEmail(ctx, emailAddr)
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			s.log.ErrorContext(ctx, "reset issuance lookup failed", "kind", kind.String(), "email", masked, "error", err)
		}
		return nil
	}

	var (
		raw, digest string
		ttl         time.Duration
	)
	switch kind {
	case SecretOTP:
		raw, err = otp.Generate()
		digest = otp.Hash(raw, emailAddr, s.cfg.OTPSecret)
		ttl = s.cfg.OTPTTL
	case SecretToken:
		raw, err = resettoken.Generate()
		digest = resettoken.Digest(raw)
		ttl = s.cfg.TokenTTL
	}
	if err != nil {
		s.log.ErrorContext(ctx, "secret generation failed", "kind", kind.String(), "email", masked, "error", err)
		return nil
	}

	if err := s.storage.SetSecret(ctx, account.ID, kind, digest, s.now().Add(ttl)); err != nil {
		s.log.ErrorContext(ctx, "secret persist failed", "kind", kind.String(), "email", masked, "error", err)
		return nil
	}

	params := email.SendEmailParams{SendTo: account.Email}
	var resetURL string
	switch kind {
	case SecretOTP:
		params.Subject = otpEmailSubject(s.cfg.AppName)
		params.BodyHTML = otpEmailBody(s.cfg.AppName, raw, int(ttl.Minutes()))
		params.Tag = tagOTP
	case SecretToken:
		resetURL = s.resetURL(raw)
		params.Subject = resetLinkEmailSubject(s.cfg.AppName)
		params.BodyHTML = resetLinkEmailBody(s.cfg.AppName, resetURL, int(ttl.Minutes()))
		params.Tag = tagLink
	}

	if err := s.send(ctx, params); err != nil {
		if kind == SecretToken {
			// Keep the link recoverable from logs when delivery is down. The
			// token digest in storage still gates its use.
			s.log.WarnContext(ctx, "reset email send failed", "kind", kind.String(), "email", masked, "reset_url", resetURL, "error", err)
		} else {
			s.log.WarnContext(ctx, "reset email send failed", "kind", kind.String(), "email", masked, "error", err)
		}
	}
	return nil
}

// VerifyOTP checks the submitted code and, on success, installs the new
// password. On ErrOTPInvalid the returned count is how many attempts
// remain before the ceiling clears the pending OTP.
func (s *Service) VerifyOTP(ctx context.Context, emailAddr, code, newPassword string) (int, error) {
	emailAddr = sanitizer.NormalizeEmail(emailAddr)
	masked := sanitizer.MaskEmail(emailAddr)

	account, err := s.storage.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return 0, ErrOTPInvalidOrExpired
		}
		return 0, fmt.Errorf("verify otp lookup: %w", err)
	}
	if !account.HasPendingOTP() {
		return 0, ErrOTPInvalidOrExpired
	}

	// Count the attempt before checking anything about the code. The
	// increment is atomic in storage, so concurrent guesses each consume a
	// slot and the ceiling holds.
	attempts, err := s.storage.IncrementOTPAttempts(ctx, account.ID)
	if err != nil {
		return 0, fmt.Errorf("count otp attempt: %w", err)
	}
	if attempts > s.cfg.OTPMaxAttempts {
		if err := s.storage.ClearSecret(ctx, account.ID, SecretOTP); err != nil {
			s.log.ErrorContext(ctx, "otp clear after ceiling failed", "email", masked, "error", err)
		}
		return 0, ErrTooManyAttempts
	}

	if s.now().After(account.ResetOTPExpires) {
		if err := s.storage.ClearSecret(ctx, account.ID, SecretOTP); err != nil {
			s.log.ErrorContext(ctx, "expired otp clear failed", "email", masked, "error", err)
		}
		return 0, ErrOTPExpired
	}

	if !otp.Equal(otp.Hash(code, emailAddr, s.cfg.OTPSecret), account.ResetOTPHash) {
		remaining := max(0, s.cfg.OTPMaxAttempts-attempts)
		return remaining, ErrOTPInvalid
	}

	passwordHash, err := hashPassword(newPassword, s.cfg.BcryptCost)
	if err != nil {
		return 0, errors.Join(ErrFailedToResetPassword, err)
	}
	if err := s.storage.CompleteReset(ctx, account.ID, passwordHash, SecretOTP); err != nil {
		return 0, errors.Join(ErrFailedToResetPassword, err)
	}

	s.notifySuccess(ctx, account.Email)
	s.log.InfoContext(ctx, "password reset via otp", "email", masked)
	return 0, nil
}

// ResetPassword consumes a reset link token and installs the new password.
func (s *Service) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	account, err := s.storage.FindByResetTokenDigest(ctx, resettoken.Digest(rawToken), s.now())
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrTokenInvalidOrExpired
		}
		return fmt.Errorf("reset token lookup: %w", err)
	}

	passwordHash, err := hashPassword(newPassword, s.cfg.BcryptCost)
	if err != nil {
		return errors.Join(ErrFailedToResetPassword, err)
	}
	if err := s.storage.CompleteReset(ctx, account.ID, passwordHash, SecretToken); err != nil {
		return errors.Join(ErrFailedToResetPassword, err)
	}

	s.notifySuccess(ctx, account.Email)
	s.log.InfoContext(ctx, "password reset via link", "email", sanitizer.MaskEmail(account.Email))
	return nil
}

func (s *Service) resetURL(rawToken string) string {
	return s.cfg.BaseURL + "/reset-password?token=" + url.QueryEscape(rawToken)
}

func (s *Service) notifySuccess(ctx context.Context, to string) {
	params := email.SendEmailParams{
		SendTo:   to,
		Subject:  successEmailSubject(s.cfg.AppName),
		BodyHTML: successEmailBody(s.cfg.AppName),
		Tag:      tagSuccess,
	}
	if err := s.send(ctx, params); err != nil {
		s.log.WarnContext(ctx, "success email send failed", "email", sanitizer.MaskEmail(to), "error", err)
	}
}

func (s *Service) send(ctx context.Context, params email.SendEmailParams) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.EmailTimeout)
	defer cancel()
	return s.sender.SendEmail(ctx, params)
}
