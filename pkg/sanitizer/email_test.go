package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noamani/authkit/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already normal", input: "user@example.com", want: "user@example.com"},
		{name: "uppercase and spaces", input: "  User@Example.COM ", want: "user@example.com"},
		{name: "consecutive dots", input: "u..ser@example.com", want: "u.ser@example.com"},
		{name: "leading trailing dots", input: ".user.@example.com", want: "user@example.com"},
		{name: "not an email", input: "  NotAnEmail ", want: "notanemail"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "typical", input: "user@example.com", want: "u***@example.com"},
		{name: "single char local", input: "u@example.com", want: "*@example.com"},
		{name: "not an email", input: "plainstring", want: "plainstring"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.MaskEmail(tt.input))
		})
	}
}
