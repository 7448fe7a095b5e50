// Package codec implements the reversible text transform used to embed a
// trip payload in a URL fragment: Unicode text → UTF-8 bytes → base64 →
// percent-encoding. Going through UTF-8 bytes first is what makes multi-byte
// characters and emoji survive the round trip; encoding one byte per rune
// does not.
package codec

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/wayplan/wayplan/internal/domain"
)

// Encode converts an arbitrary Unicode string into an ASCII token safe to
// place in a URL fragment. decode(encode(s)) == s for every string s.
func Encode(text string) string {
	b64 := base64.StdEncoding.EncodeToString([]byte(text))
	return url.QueryEscape(b64)
}

// Decode is the exact inverse of Encode. A malformed token — bad percent
// escape, bytes outside the base64 alphabet, or invalid UTF-8 after decoding
// — returns an error wrapping domain.ErrDecode; callers treat any failure as
// "no shareable payload present".
func Decode(token string) (string, error) {
	b64, err := url.QueryUnescape(token)
	if err != nil {
		return "", fmt.Errorf("codec.Decode: %w: %v", domain.ErrDecode, err)
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("codec.Decode: %w: %v", domain.ErrDecode, err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("codec.Decode: %w: payload is not valid UTF-8", domain.ErrDecode)
	}
	return string(raw), nil
}
