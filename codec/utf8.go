package codec

import (
	"errors"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 is returned by strict decoding when the input is not valid
// UTF-8.
var ErrInvalidUTF8 = errors.New("invalid utf-8")

// EncodeUTF8 returns the UTF-8 bytes of a string.
func EncodeUTF8(text string) []byte {
	return []byte(text)
}

// DecodeUTF8 decodes a buffer as UTF-8 text. Each byte that is not part of a
// valid encoding is replaced with U+FFFD, so decoding never fails.
func DecodeUTF8(buf []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(buf)
	if err != nil {
		// The replacing decoder does not fail on malformed input.
		return string(buf)
	}
	return string(decoded)
}

// DecodeUTF8Strict decodes a buffer as UTF-8 text and returns ErrInvalidUTF8
// if it contains an invalid encoding.
func DecodeUTF8Strict(buf []byte) (string, error) {
	validated, _, err := transform.Bytes(encoding.UTF8Validator, buf)
	if err != nil {
		return "", ErrInvalidUTF8
	}
	return string(validated), nil
}
