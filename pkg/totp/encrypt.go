package totp

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// encryptionKeySize is the AES-256 key length in bytes.
const encryptionKeySize = 32

// Config carries the encryption key used to protect enrolled secrets at rest.
// The key is base64-encoded 32 random bytes; generate one with
// GenerateEncodedEncryptionKey.
type Config struct {
	EncryptionKey string `env:"TOTP_ENCRYPTION_KEY,required,notEmpty"`
}

// LoadConfig parses Config from the process environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("totp: parsing environment: %w", err)
	}
	return cfg, nil
}

// GetEncryptionKey decodes and validates the configured encryption key.
func GetEncryptionKey(cfg Config) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(cfg.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeySize, err)
	}
	if len(key) != encryptionKeySize {
		return nil, ErrInvalidKeySize
	}
	return key, nil
}

// GenerateEncryptionKey returns 32 cryptographically random bytes for use as
// an AES-256 key.
func GenerateEncryptionKey() ([]byte, error) {
	key := make([]byte, encryptionKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("totp: reading random source: %w", err)
	}
	return key, nil
}

// GenerateEncodedEncryptionKey returns a new key base64-encoded for direct
// use in configuration, e.g. TOTP_ENCRYPTION_KEY=<value>.
func GenerateEncodedEncryptionKey() (string, error) {
	key, err := GenerateEncryptionKey()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// EncryptSecret encrypts a TOTP secret with AES-256-GCM for database storage.
// The random nonce is prepended to the ciphertext and the whole blob is
// base64-encoded. GCM authenticates the ciphertext, so tampering is detected
// at decryption time.
func EncryptSecret(secret string, key []byte) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("totp: reading random source: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(secret), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptSecret reverses EncryptSecret. It returns ErrInvalidCiphertext for
// malformed input, a wrong key, or authentication failure; the three cases
// are deliberately indistinguishable to the caller.
func DecryptSecret(encrypted string, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	sealed, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}
	if len(sealed) < gcm.NonceSize() {
		return "", ErrInvalidCiphertext
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	secret, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	return string(secret), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != encryptionKeySize {
		return nil, ErrInvalidKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("totp: creating cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
