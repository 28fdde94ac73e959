package totp

import (
	"fmt"
	"net/url"
	"strings"
)

// qrChartURLTemplate is the fixed rendering endpoint the ported product
// pointed authenticator enrollment at; the otpauth URI travels in chl.
const qrChartURLTemplate = "https://chart.googleapis.com/chart?cht=qr&chs=150x150&chl=%s&chld=H|0"

// TOTPParams holds the fields embedded into a provisioning URI.
type TOTPParams struct {
	// Secret is the base32 secret. Whitespace is stripped and the remainder
	// upper-cased before embedding, so copy-pasted grouped secrets work.
	Secret string
	// AccountName identifies the account, typically an email address.
	AccountName string
	// Issuer is the service name shown in the authenticator app.
	Issuer string
	// Digits overrides the 6-digit default when non-zero.
	Digits int
	// Period overrides the 30-second default when non-zero.
	Period int
}

// GetTOTPURI formats an otpauth:// provisioning URI for authenticator apps:
//
//	otpauth://totp/Issuer:account?secret=...&issuer=Issuer
//
// digits and period parameters are appended only when they differ from the
// defaults. The secret is embedded verbatim after normalization (the base32
// alphabet needs no escaping); issuer and account name are percent-escaped.
func GetTOTPURI(params TOTPParams) (string, error) {
	secret := normalizeSecret(params.Secret)
	if secret == "" {
		return "", ErrEmptySecret
	}
	if strings.TrimSpace(params.AccountName) == "" {
		return "", ErrEmptyAccountName
	}
	if strings.TrimSpace(params.Issuer) == "" {
		return "", ErrEmptyIssuer
	}
	if params.Digits != 0 && (params.Digits < 1 || params.Digits > maxDigits) {
		return "", ErrInvalidDigits
	}
	if params.Period < 0 {
		return "", ErrInvalidPeriod
	}

	var b strings.Builder
	b.WriteString("otpauth://totp/")
	b.WriteString(url.PathEscape(params.Issuer))
	b.WriteByte(':')
	b.WriteString(url.PathEscape(params.AccountName))
	b.WriteString("?secret=")
	b.WriteString(secret)
	b.WriteString("&issuer=")
	b.WriteString(url.QueryEscape(params.Issuer))
	if params.Digits != 0 && params.Digits != DefaultDigits {
		fmt.Fprintf(&b, "&digits=%d", params.Digits)
	}
	if params.Period != 0 && params.Period != DefaultPeriod {
		fmt.Fprintf(&b, "&period=%d", params.Period)
	}
	return b.String(), nil
}

// GetQRChartURL wraps the provisioning URI as the chl parameter of the fixed
// QR-rendering endpoint. Only the URL string is produced here; fetching the
// image is the caller's business. For rendering without a third-party
// service, see the qrcode package in this module.
func GetQRChartURL(params TOTPParams) (string, error) {
	uri, err := GetTOTPURI(params)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(qrChartURLTemplate, url.QueryEscape(uri)), nil
}

// normalizeSecret removes all whitespace and upper-cases the secret.
func normalizeSecret(secret string) string {
	return strings.ToUpper(strings.Join(strings.Fields(secret), ""))
}
