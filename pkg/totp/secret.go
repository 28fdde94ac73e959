package totp

import (
	"crypto/rand"
	"fmt"
)

// DefaultSecretLength is the number of base32 characters in a generated
// secret: 16 characters carry 80 bits of key material, the RFC 4226 minimum.
const DefaultSecretLength = 16

// GenerateSecretKey returns a new random base32 secret of DefaultSecretLength
// characters, suitable for enrolling a user with an authenticator app.
//
// The product this library ports drew secrets from a non-cryptographic
// source; this implementation deliberately uses crypto/rand instead, since
// the secret is the only thing standing between an attacker and valid codes.
func GenerateSecretKey() (string, error) {
	return GenerateSecretKeyN(DefaultSecretLength)
}

// GenerateSecretKeyN returns a random base32 secret of the given length in
// characters. Each character is an independent uniform draw from the alphabet.
func GenerateSecretKeyN(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("totp: reading random source: %w", err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		// 256 is a multiple of 32, so masking keeps the draw uniform.
		out[i] = secretAlphabet[b&31]
	}
	return string(out), nil
}
