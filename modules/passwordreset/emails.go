package passwordreset

import (
	"fmt"
	"html"
)

// Email copy for the three reset notifications. Plain inline-styled HTML;
// anything fancier belongs in a template pipeline this module does not need.

const (
	tagOTP     = "password-reset-otp"
	tagLink    = "password-reset-link"
	tagSuccess = "password-reset-success"
)

func otpEmailSubject(appName string) string {
	return fmt.Sprintf("%s password reset code", appName)
}

func otpEmailBody(appName, code string, ttlMinutes int) string {
	appName = html.EscapeString(appName)
	return fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:480px;margin:0 auto">
  <h2>%s</h2>
  <p>Use this code to reset your password:</p>
  <p style="font-size:32px;font-weight:bold;letter-spacing:6px">%s</p>
  <p>The code expires in %d minutes. If you did not request a password reset, you can ignore this email.</p>
</div>`, appName, html.EscapeString(code), ttlMinutes)
}

func resetLinkEmailSubject(appName string) string {
	return fmt.Sprintf("Reset your %s password", appName)
}

func resetLinkEmailBody(appName, resetURL string, ttlMinutes int) string {
	appName = html.EscapeString(appName)
	escapedURL := html.EscapeString(resetURL)
	return fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:480px;margin:0 auto">
  <h2>%s</h2>
  <p>We received a request to reset your password. Click the button below to choose a new one:</p>
  <p><a href="%s" style="display:inline-block;padding:12px 24px;background:#111;color:#fff;text-decoration:none;border-radius:4px">Reset password</a></p>
  <p>Or copy this link into your browser:</p>
  <p><a href="%s">%s</a></p>
  <p>The link expires in %d minutes. If you did not request a password reset, you can ignore this email.</p>
</div>`, appName, escapedURL, escapedURL, escapedURL, ttlMinutes)
}

func successEmailSubject(appName string) string {
	return fmt.Sprintf("Your %s password was changed", appName)
}

func successEmailBody(appName string) string {
	appName = html.EscapeString(appName)
	return fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:480px;margin:0 auto">
  <h2>%s</h2>
  <p>Your password has been reset successfully.</p>
  <p>If this wasn't you, contact support immediately.</p>
</div>`, appName)
}
