package totp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeroows/otpass/pkg/totp"
)

func TestDecodeBase32(t *testing.T) {
	t.Parallel()

	t.Run("decodes RFC 4648 vectors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []byte("fooba"), totp.DecodeBase32("MZXW6YTB"))
		assert.Equal(t, []byte("1234567890"), totp.DecodeBase32("GEZDGNBVGY3TQOJQ"))
		assert.Equal(t, []byte("12345678901234567890"),
			totp.DecodeBase32("GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"))
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, totp.DecodeBase32("GEZDGNBVGY3TQOJQ"), totp.DecodeBase32("gezdgnbvgy3tqojq"))
	})

	t.Run("packs five bits per character dropping the partial tail", func(t *testing.T) {
		t.Parallel()
		// 16 characters carry 80 bits, exactly 10 bytes.
		assert.Len(t, totp.DecodeBase32("HHHHHHHHHHHHHHHH"), 10)
		// 2 characters carry 10 bits, 1 byte once the tail is dropped.
		assert.Len(t, totp.DecodeBase32("MB"), 1)
	})

	t.Run("maps invalid characters to zero instead of failing", func(t *testing.T) {
		t.Parallel()
		// '!' decodes as value 0, same as 'A'.
		assert.Equal(t, totp.DecodeBase32("MA"), totp.DecodeBase32("M!"))
		// Padding characters are outside the alphabet too.
		assert.Equal(t, []byte("foo"), totp.DecodeBase32("MZXW6==="))
	})

	t.Run("strips trailing zero bytes", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, totp.DecodeBase32("AAAA"))
		assert.Empty(t, totp.DecodeBase32(""))
	})
}
