package email_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noamani/authkit/pkg/email"
)

func TestSendEmailParamsValidate(t *testing.T) {
	t.Parallel()

	valid := email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Your password reset code",
		BodyHTML: "<p>123456</p>",
	}

	tests := []struct {
		name   string
		mutate func(*email.SendEmailParams)
		ok     bool
	}{
		{name: "valid", mutate: func(*email.SendEmailParams) {}, ok: true},
		{name: "missing recipient", mutate: func(p *email.SendEmailParams) { p.SendTo = "" }},
		{name: "malformed recipient", mutate: func(p *email.SendEmailParams) { p.SendTo = "not-an-email" }},
		{name: "missing subject", mutate: func(p *email.SendEmailParams) { p.Subject = "" }},
		{name: "missing body", mutate: func(p *email.SendEmailParams) { p.BodyHTML = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, email.ErrInvalidParams)
			}
		})
	}
}

func TestNewPostmarkClient(t *testing.T) {
	t.Parallel()

	valid := email.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "no-reply@example.com",
		SupportEmail:         "support@example.com",
	}

	tests := []struct {
		name   string
		mutate func(*email.Config)
		ok     bool
	}{
		{name: "valid", mutate: func(*email.Config) {}, ok: true},
		{name: "missing server token", mutate: func(c *email.Config) { c.PostmarkServerToken = "" }},
		{name: "missing account token", mutate: func(c *email.Config) { c.PostmarkAccountToken = "" }},
		{name: "invalid sender", mutate: func(c *email.Config) { c.SenderEmail = "nope" }},
		{name: "invalid support", mutate: func(c *email.Config) { c.SupportEmail = "nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)
			sender, err := email.NewPostmarkClient(cfg)
			if tt.ok {
				assert.NoError(t, err)
				assert.NotNil(t, sender)
			} else {
				assert.ErrorIs(t, err, email.ErrInvalidConfig)
			}
		})
	}
}

func TestDevSender(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(dir)

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Your password reset code",
		BodyHTML: "<p>123456</p>",
		Tag:      "password-reset-otp",
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var sawHTML, sawJSON bool
	for _, entry := range entries {
		switch filepath.Ext(entry.Name()) {
		case ".html":
			sawHTML = true
			body, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			require.NoError(t, err)
			assert.Contains(t, string(body), "123456")
		case ".json":
			sawJSON = true
			meta, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			require.NoError(t, err)
			assert.Contains(t, string(meta), "user@example.com")
		}
		assert.True(t, strings.Contains(entry.Name(), "password-reset-otp"))
	}
	assert.True(t, sawHTML)
	assert.True(t, sawJSON)
}
