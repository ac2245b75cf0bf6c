package otp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// Digits is the length of generated codes.
const Digits = 6

// codeRange covers 100000-999999 inclusive: six digits, never leading-zero.
var codeRange = big.NewInt(900000)

// Generate returns a uniformly distributed 6-digit code drawn from
// crypto/rand. The only failure mode is an unreadable system random source.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeRange)
	if err != nil {
		return "", errors.Join(ErrFailedToGenerateOTP, err)
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

// Hash derives the stored digest for a code issued to the given email.
// The message is the lowercase, trimmed email joined to the code with a dot,
// keyed with the server secret via HMAC-SHA256. Binding the email into the
// message means a digest leaked from one account cannot validate a guess
// against another.
func Hash(code, email, secret string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(email + "." + code))
	return hex.EncodeToString(mac.Sum(nil))
}

// Equal compares two digests in constant time with respect to their
// contents. Length is not secret here (digests are fixed-size hex), so a
// differing length returns false immediately.
func Equal(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
