package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
)

// GenerateHOTP produces an RFC 4226 counter-based one-time password for the
// given base32 secret and counter value. The caller owns the counter; this
// package keeps no state between calls.
func GenerateHOTP(secret string, counter uint64, opts ...Option) (string, error) {
	o := applyOptions(opts...)
	if err := o.validate(); err != nil {
		return "", err
	}
	return hotpCode(secret, counter, o)
}

// ValidateHOTP reports whether code matches the HOTP value for the given
// counter. The comparison is constant-time.
func ValidateHOTP(secret, code string, counter uint64, opts ...Option) (bool, error) {
	o := applyOptions(opts...)
	if err := o.validate(); err != nil {
		return false, err
	}
	want, err := hotpCode(secret, counter, o)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(code)) == 1, nil
}

// hotpCode runs the shared pipeline: decode the secret, serialize the counter
// as 8 big-endian bytes per RFC 4226 §5.2, HMAC-SHA1, then truncate.
func hotpCode(secret string, counter uint64, o *options) (string, error) {
	key, err := decodeSecret(secret, o.strictDecoding)
	if err != nil {
		return "", err
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])

	return truncate(mac.Sum(nil), o.digits), nil
}

// truncate applies RFC 4226 §5.3 dynamic truncation: the low nibble of the
// digest's last byte selects a 4-byte window, whose value (sign bit cleared,
// so always in [0, 2^31-1]) is reduced modulo 10^digits and zero-padded on the
// left to exactly digits characters.
func truncate(digest []byte, digits int) string {
	offset := digest[len(digest)-1] & 0x0f
	bin := uint32(digest[offset]&0x7f)<<24 |
		uint32(digest[offset+1])<<16 |
		uint32(digest[offset+2])<<8 |
		uint32(digest[offset+3])

	code := fmt.Sprintf("%0*d", digits, uint64(bin)%pow10(digits))
	if len(code) > digits {
		code = code[len(code)-digits:]
	}
	return code
}

func pow10(n int) uint64 {
	p := uint64(1)
	for range n {
		p *= 10
	}
	return p
}
