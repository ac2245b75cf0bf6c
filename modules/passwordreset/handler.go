package passwordreset

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Response copy. The issuance endpoints use the same generic line whether
// or not an account exists.
const (
	msgOTPSent           = "If an account exists, an OTP has been sent."
	msgLinkSent          = "If an account exists, an email has been sent."
	msgResetOK           = "Password reset successful"
	msgTokenResetOK      = "Password has been reset successfully"
	msgFieldsRequired    = "Email, OTP and new password are required"
	msgEmailRequired     = "Email is required"
	msgTokenRequired     = "Token is required"
	msgPasswordTooShort  = "Password must be at least 6 characters"
	msgOTPInvalidExpired = "Invalid OTP or expired"
	msgOTPInvalid        = "Invalid OTP"
	msgOTPExpired        = "OTP expired. Please request a new OTP."
	msgTooManyAttempts   = "Too many attempts. Please request a new OTP."
	msgTokenInvalid      = "Token is invalid or has expired"
	msgServerError       = "Server error"
	msgResetFailed       = "Failed to reset password"
)

type requestOTPRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Router mounts the four reset endpoints. rateLimit guards OTP issuance
// only; pass nil to mount without limiting.
func (s *Service) Router(rateLimit func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	if rateLimit != nil {
		r.With(rateLimit).Post("/request-reset-otp", s.handleRequestOTP)
	} else {
		r.Post("/request-reset-otp", s.handleRequestOTP)
	}
	r.Post("/reset-password-otp", s.handleVerifyOTP)
	r.Post("/forgot-password", s.handleForgotPassword)
	r.Post("/reset-password", s.handleResetPassword)

	return r
}

// handleRequestOTP answers the generic success line no matter what: a
// blank email or an unparseable body looks exactly like an unknown
// address.
func (s *Service) handleRequestOTP(w http.ResponseWriter, r *http.Request) {
	var req requestOTPRequest
	if err := decodeJSON(r, &req); err == nil && req.Email != "" {
		_ = s.RequestOTP(r.Context(), req.Email)
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": msgOTPSent})
}

func (s *Service) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	err := decodeJSON(r, &req)
	req.OTP = strings.TrimSpace(req.OTP)
	if err != nil || req.Email == "" || req.OTP == "" || req.NewPassword == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": msgFieldsRequired})
		return
	}
	if len(req.NewPassword) < s.cfg.MinPasswordLength {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": msgPasswordTooShort})
		return
	}

	remaining, err := s.VerifyOTP(r.Context(), req.Email, req.OTP, req.NewPassword)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{"message": msgResetOK})
	case errors.Is(err, ErrOTPInvalidOrExpired):
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": msgOTPInvalidExpired})
	case errors.Is(err, ErrTooManyAttempts):
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": msgTooManyAttempts})
	case errors.Is(err, ErrOTPExpired):
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": msgOTPExpired})
	case errors.Is(err, ErrOTPInvalid):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message":           msgOTPInvalid,
			"attemptsRemaining": remaining,
		})
	default:
		s.log.ErrorContext(r.Context(), "otp verification failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": msgServerError})
	}
}

// handleForgotPassword rejects a blank email but degrades an unparseable
// body to the generic success line, so a broken client cannot probe for
// internal failures.
func (s *Service) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req requestOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"message": msgLinkSent})
		return
	}
	if req.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": msgEmailRequired})
		return
	}

	_ = s.ForgotPassword(r.Context(), req.Email)
	writeJSON(w, http.StatusOK, map[string]any{"message": msgLinkSent})
}

func (s *Service) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil || req.Token == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": msgTokenRequired})
		return
	}
	if len(req.Password) < s.cfg.MinPasswordLength {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": msgPasswordTooShort})
		return
	}

	err := s.ResetPassword(r.Context(), req.Token, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{"message": msgTokenResetOK})
	case errors.Is(err, ErrTokenInvalidOrExpired):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": msgTokenInvalid})
	default:
		s.log.ErrorContext(r.Context(), "token reset failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": msgResetFailed})
	}
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
