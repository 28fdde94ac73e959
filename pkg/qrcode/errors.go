package qrcode

import "errors"

// Package-level error definitions for QR generation.
var (
	// ErrEmptyContent indicates there was nothing to encode.
	ErrEmptyContent = errors.New("qrcode: content must not be empty")

	// ErrInvalidSize indicates an image size outside the supported range.
	ErrInvalidSize = errors.New("qrcode: size out of range")
)
