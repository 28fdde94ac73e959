package totp

import "errors"

// Package-level error definitions for OTP operations.
var (
	// ErrInvalidPeriod indicates a non-positive time step was configured.
	ErrInvalidPeriod = errors.New("totp: period must be a positive number of seconds")

	// ErrInvalidDigits indicates a code length outside the 1-10 range supported
	// by the 31-bit truncated value.
	ErrInvalidDigits = errors.New("totp: digits must be between 1 and 10")

	// ErrInvalidTime indicates a pre-epoch timestamp was supplied.
	ErrInvalidTime = errors.New("totp: time must not be before the Unix epoch")

	// ErrInvalidLength indicates a non-positive secret length was requested.
	ErrInvalidLength = errors.New("totp: secret length must be positive")

	// ErrInvalidCount indicates a non-positive recovery code count was requested.
	ErrInvalidCount = errors.New("totp: recovery code count must be positive")

	// ErrMalformedSecret indicates the secret is not valid base32. Only returned
	// when strict decoding is enabled; the default decoder never fails.
	ErrMalformedSecret = errors.New("totp: secret is not valid base32")

	// ErrEmptySecret indicates an empty secret was supplied where one is required.
	ErrEmptySecret = errors.New("totp: secret must not be empty")

	// ErrEmptyAccountName indicates a provisioning URI was requested without an account name.
	ErrEmptyAccountName = errors.New("totp: account name must not be empty")

	// ErrEmptyIssuer indicates a provisioning URI was requested without an issuer.
	ErrEmptyIssuer = errors.New("totp: issuer must not be empty")

	// ErrInvalidKeySize indicates an encryption key that is not 32 bytes.
	ErrInvalidKeySize = errors.New("totp: encryption key must be 32 bytes")

	// ErrInvalidCiphertext indicates ciphertext that cannot be decrypted with the
	// given key, either because it is malformed or because it was tampered with.
	ErrInvalidCiphertext = errors.New("totp: invalid ciphertext")
)
