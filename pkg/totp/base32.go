package totp

import (
	"encoding/base32"
	"fmt"
	"strings"
)

// secretAlphabet is the RFC 4648 base32 alphabet; a character's value is its index.
const secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// DecodeBase32 decodes a base32 secret into raw key bytes using the lenient
// rules this library inherited from the product it ports: input is
// case-insensitive, any character outside the alphabet (including padding)
// contributes the value 0, and trailing zero bytes are stripped from the
// result. Decoding therefore never fails, which means a mistyped secret is
// silently accepted and produces codes that will not match the enrolled key.
// Callers that prefer rejection should pass WithStrictDecoding to the
// generation and validation functions instead of calling this directly.
//
// Bits are packed most-significant-first: each character supplies 5 bits, and
// trailing bits that do not fill a whole byte are dropped.
func DecodeBase32(secret string) []byte {
	var (
		buf  uint16
		bits uint
		out  []byte
	)
	for _, r := range strings.ToUpper(secret) {
		v := strings.IndexRune(secretAlphabet, r)
		if v < 0 {
			v = 0
		}
		buf = buf<<5 | uint16(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buf>>bits))
		}
	}
	for len(out) > 0 && out[len(out)-1] == 0 {
		out = out[:len(out)-1]
	}
	return out
}

// decodeSecretStrict is the opt-in RFC 4648 path: case-folded, padding added
// if missing, and any non-alphabet character is an error.
func decodeSecretStrict(secret string) ([]byte, error) {
	s := strings.ToUpper(strings.TrimSpace(secret))
	if m := len(s) % 8; m != 0 {
		s += strings.Repeat("=", 8-m)
	}
	key, err := base32.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSecret, err)
	}
	return key, nil
}

func decodeSecret(secret string, strict bool) ([]byte, error) {
	if strict {
		return decodeSecretStrict(secret)
	}
	return DecodeBase32(secret), nil
}
