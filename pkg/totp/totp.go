package totp

import (
	"crypto/subtle"
	"time"
)

// GenerateTOTP produces the RFC 6238 time-based one-time password for the
// given base32 secret at the current wall-clock time.
func GenerateTOTP(secret string, opts ...Option) (string, error) {
	return GenerateTOTPWithTime(secret, time.Now(), opts...)
}

// GenerateTOTPWithTime produces the code valid at an explicit time. It exists
// so tests and resynchronization tooling can ask for any window
// deterministically; the Unix epoch itself is a valid input.
func GenerateTOTPWithTime(secret string, t time.Time, opts ...Option) (string, error) {
	o := applyOptions(opts...)
	if err := o.validate(); err != nil {
		return "", err
	}

	counter, err := timeCounter(t, o.period)
	if err != nil {
		return "", err
	}
	return hotpCode(secret, counter, o)
}

// ValidateTOTP reports whether code is valid for the secret at the current
// time. Codes from up to skew adjacent time steps (default 1) are accepted to
// tolerate clock drift between client and server.
func ValidateTOTP(secret, code string, opts ...Option) (bool, error) {
	return ValidateTOTPWithTime(secret, code, time.Now(), opts...)
}

// ValidateTOTPWithTime reports whether code is valid at an explicit reference
// time. Every candidate window is compared in constant time, and all windows
// are always checked so the comparison count does not leak which one matched.
func ValidateTOTPWithTime(secret, code string, t time.Time, opts ...Option) (bool, error) {
	o := applyOptions(opts...)
	if err := o.validate(); err != nil {
		return false, err
	}

	counter, err := timeCounter(t, o.period)
	if err != nil {
		return false, err
	}

	first := counter - uint64(o.skew)
	if first > counter { // underflow below the epoch window
		first = 0
	}
	last := counter + uint64(o.skew)

	match := 0
	for c := first; c <= last; c++ {
		want, err := hotpCode(secret, c, o)
		if err != nil {
			return false, err
		}
		match |= subtle.ConstantTimeCompare([]byte(want), []byte(code))
	}
	return match == 1, nil
}

// timeCounter maps a timestamp onto its time-step counter using truncating
// division, so every second in [k*period, (k+1)*period) lands on counter k.
func timeCounter(t time.Time, period int) (uint64, error) {
	ts := t.Unix()
	if ts < 0 {
		return 0, ErrInvalidTime
	}
	return uint64(ts) / uint64(period), nil
}
