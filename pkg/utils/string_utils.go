package utils

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// NewNullString is a helper for string pointers, returning nil if string is empty.
// Useful for fields that are optional and should be NULL in DB if not provided.
func NewNullString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// StringValue dereferences s, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// TimeToken builds an identifier of the form <prefix>_<unix millis>.
// Uniqueness is only as good as the clock resolution.
func TimeToken(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%d", prefix, now.UnixMilli())
}

const accessCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// AccessCodeLength is the length of generated staff access codes.
const AccessCodeLength = 8

// NewAccessCode returns an upper-case base-36 code of AccessCodeLength characters.
// It is not cryptographically secure.
func NewAccessCode() string {
	var b strings.Builder
	b.Grow(AccessCodeLength)
	for i := 0; i < AccessCodeLength; i++ {
		b.WriteByte(accessCodeAlphabet[rand.IntN(len(accessCodeAlphabet))])
	}
	return b.String()
}
