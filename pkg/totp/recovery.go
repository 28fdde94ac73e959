package totp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// recoveryCodeLength is the number of characters in a recovery code.
	recoveryCodeLength = 16

	// recoveryAlphabet avoids the ambiguous characters I, O, 0 and 1. It has
	// 32 entries, so masking a random byte keeps the draw uniform.
	recoveryAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// GenerateRecoveryCodes returns count single-use backup codes for account
// recovery when the authenticator device is lost. Store only their hashes
// (see HashRecoveryCode) and remove each code after it is redeemed.
func GenerateRecoveryCodes(count int) ([]string, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	codes := make([]string, count)
	buf := make([]byte, recoveryCodeLength)
	for i := range codes {
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("totp: reading random source: %w", err)
		}
		code := make([]byte, recoveryCodeLength)
		for j, b := range buf {
			code[j] = recoveryAlphabet[b&31]
		}
		codes[i] = string(code)
	}
	return codes, nil
}

// HashRecoveryCode returns the hex-encoded SHA-256 hash of a normalized
// recovery code. Codes are normalized by trimming surrounding whitespace,
// removing interior separators (spaces and hyphens) and upper-casing, so user
// input in any common formatting verifies against the stored hash.
func HashRecoveryCode(code string) string {
	sum := sha256.Sum256([]byte(normalizeRecoveryCode(code)))
	return hex.EncodeToString(sum[:])
}

// VerifyRecoveryCode reports whether code matches a stored hash produced by
// HashRecoveryCode. The comparison is constant-time.
func VerifyRecoveryCode(code, hash string) bool {
	want := HashRecoveryCode(code)
	return subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(hash))) == 1
}

func normalizeRecoveryCode(code string) string {
	code = strings.Join(strings.Fields(code), "")
	code = strings.ReplaceAll(code, "-", "")
	return strings.ToUpper(code)
}
