package totp_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeroows/otpass/pkg/totp"
)

// rfcSecret is the base32 encoding of the ASCII secret "12345678901234567890"
// used by the RFC 4226 and RFC 6238 test vectors.
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestGenerateHOTP(t *testing.T) {
	t.Parallel()

	t.Run("matches RFC 4226 appendix D vectors", func(t *testing.T) {
		t.Parallel()
		expected := []string{
			"755224", "287082", "359152", "969429", "338314",
			"254676", "287922", "162583", "399871", "520489",
		}
		for counter, want := range expected {
			code, err := totp.GenerateHOTP(rfcSecret, uint64(counter))
			require.NoError(t, err)
			assert.Equal(t, want, code, "counter %d", counter)
		}
	})

	t.Run("produces exactly the requested number of digits", func(t *testing.T) {
		t.Parallel()
		for digits := 1; digits <= 10; digits++ {
			code, err := totp.GenerateHOTP(rfcSecret, 7, totp.WithDigits(digits))
			require.NoError(t, err)
			assert.Len(t, code, digits)

			n, err := strconv.ParseUint(code, 10, 64)
			require.NoError(t, err, "code must be decimal")
			assert.Less(t, n, uint64(1e10))
		}
	})

	t.Run("rejects out-of-range digits", func(t *testing.T) {
		t.Parallel()
		_, err := totp.GenerateHOTP(rfcSecret, 0, totp.WithDigits(0))
		assert.ErrorIs(t, err, totp.ErrInvalidDigits)

		_, err = totp.GenerateHOTP(rfcSecret, 0, totp.WithDigits(11))
		assert.ErrorIs(t, err, totp.ErrInvalidDigits)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()
		a, err := totp.GenerateHOTP(rfcSecret, 42)
		require.NoError(t, err)
		b, err := totp.GenerateHOTP(rfcSecret, 42)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestValidateHOTP(t *testing.T) {
	t.Parallel()

	t.Run("accepts the code for its counter", func(t *testing.T) {
		t.Parallel()
		valid, err := totp.ValidateHOTP(rfcSecret, "755224", 0)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("rejects a code from another counter", func(t *testing.T) {
		t.Parallel()
		valid, err := totp.ValidateHOTP(rfcSecret, "755224", 1)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()
		valid, err := totp.ValidateHOTP(rfcSecret, "", 0)
		require.NoError(t, err)
		assert.False(t, valid)

		valid, err = totp.ValidateHOTP(rfcSecret, "75522", 0)
		require.NoError(t, err)
		assert.False(t, valid)
	})
}
