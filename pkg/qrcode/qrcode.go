package qrcode

import (
	"encoding/base64"
	"fmt"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

const (
	// DefaultSize is the image edge length used when size is 0, a good balance
	// for web display and smartphone scanning.
	DefaultSize = 256

	// minSize and maxSize bound the accepted image dimensions. Below 64 px
	// typical provisioning URIs no longer scan reliably; above 4096 px the
	// image buffer grows quadratically for no practical benefit.
	minSize = 64
	maxSize = 4096
)

// Generate renders content as a PNG QR code with the given edge length in
// pixels. A size of 0 selects DefaultSize. Medium error correction is used:
// it recovers from roughly 15% data corruption, which handles typical screen
// and print quality variation.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size == 0 {
		size = DefaultSize
	}
	if size < minSize || size > maxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	png, err := qr.Encode(content, qr.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encoding content: %w", err)
	}
	return png, nil
}

// GenerateBase64Image renders content as a data URI suitable for direct
// embedding in an HTML img tag:
//
//	data:image/png;base64,...
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
