package totp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeroows/otpass/pkg/totp"
)

func TestGenerateRecoveryCodes(t *testing.T) {
	t.Parallel()

	t.Run("returns the requested number of distinct codes", func(t *testing.T) {
		t.Parallel()
		codes, err := totp.GenerateRecoveryCodes(10)
		require.NoError(t, err)
		require.Len(t, codes, 10)

		seen := make(map[string]struct{}, len(codes))
		for _, code := range codes {
			assert.Len(t, code, 16)
			assert.Regexp(t, "^[A-HJ-NP-Z2-9]+$", code, "ambiguous characters are excluded")
			seen[code] = struct{}{}
		}
		assert.Len(t, seen, 10)
	})

	t.Run("rejects non-positive counts", func(t *testing.T) {
		t.Parallel()
		_, err := totp.GenerateRecoveryCodes(0)
		assert.ErrorIs(t, err, totp.ErrInvalidCount)

		_, err = totp.GenerateRecoveryCodes(-3)
		assert.ErrorIs(t, err, totp.ErrInvalidCount)
	})
}

func TestVerifyRecoveryCode(t *testing.T) {
	t.Parallel()

	t.Run("accepts the original code", func(t *testing.T) {
		t.Parallel()
		codes, err := totp.GenerateRecoveryCodes(1)
		require.NoError(t, err)

		hash := totp.HashRecoveryCode(codes[0])
		assert.True(t, totp.VerifyRecoveryCode(codes[0], hash))
	})

	t.Run("accepts common user formatting", func(t *testing.T) {
		t.Parallel()
		hash := totp.HashRecoveryCode("ABCDEFGHJKLMNPQR")

		assert.True(t, totp.VerifyRecoveryCode("abcdefghjklmnpqr", hash))
		assert.True(t, totp.VerifyRecoveryCode("ABCD-EFGH-JKLM-NPQR", hash))
		assert.True(t, totp.VerifyRecoveryCode("  ABCD EFGH JKLM NPQR  ", hash))
	})

	t.Run("rejects other codes", func(t *testing.T) {
		t.Parallel()
		hash := totp.HashRecoveryCode("ABCDEFGHJKLMNPQR")

		assert.False(t, totp.VerifyRecoveryCode("ABCDEFGHJKLMNPQ2", hash))
		assert.False(t, totp.VerifyRecoveryCode("", hash))
	})

	t.Run("rejects a tampered hash", func(t *testing.T) {
		t.Parallel()
		assert.False(t, totp.VerifyRecoveryCode("ABCDEFGHJKLMNPQR", "deadbeef"))
	})
}
