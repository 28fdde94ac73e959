// Package totp implements RFC 6238 Time-based and RFC 4226 counter-based
// One-Time Passwords, together with the surrounding enrollment surface:
// secret generation, otpauth:// provisioning URIs, AES-256-GCM secret
// encryption for storage, and backup recovery codes.
//
// Every operation is a pure function of its inputs (plus the system clock and
// random source where noted); the package keeps no state and is safe for
// concurrent use.
//
// # Basic Usage
//
// Enroll a user and verify codes:
//
//	import "github.com/zeroows/otpass/pkg/totp"
//
//	// Generate a new secret
//	secret, err := totp.GenerateSecretKey()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Create a provisioning URI for QR enrollment
//	params := totp.TOTPParams{
//		Secret:      secret,
//		AccountName: "user@example.com",
//		Issuer:      "MyApp",
//	}
//
//	uri, err := totp.GetTOTPURI(params)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Generate the current code
//	code, err := totp.GenerateTOTP(secret)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Validate a user-provided code
//	valid, err := totp.ValidateTOTP(secret, "123456")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Code valid: %t\n", valid)
//
// # Options
//
// Generation and validation accept functional options for non-default
// parameters:
//
//	// 8-digit codes over a 60-second window
//	code, err := totp.GenerateTOTP(secret, totp.WithDigits(8), totp.WithPeriod(60))
//
//	// Exact-window validation, no clock-drift tolerance
//	valid, err := totp.ValidateTOTP(secret, code, totp.WithSkew(0))
//
// # Counter-Based Codes
//
// The HOTP variant takes the counter directly instead of deriving it from
// time; the caller is responsible for persisting and advancing it:
//
//	code, err := totp.GenerateHOTP(secret, counter)
//	valid, err := totp.ValidateHOTP(secret, code, counter)
//
// # Secret Decoding
//
// Base32 decoding is lenient: characters outside the alphabet are treated as
// the value 0 rather than rejected, matching the product this package ports.
// A mistyped secret therefore still produces codes; they simply will not
// match the correctly enrolled key. Pass WithStrictDecoding to reject
// malformed secrets with ErrMalformedSecret instead:
//
//	code, err := totp.GenerateTOTP(secret, totp.WithStrictDecoding())
//	if errors.Is(err, totp.ErrMalformedSecret) {
//		// reject the secret at enrollment time
//	}
//
// # Secret Encryption
//
// Encrypt secrets before storing them in a database:
//
//	// Load configuration (expects TOTP_ENCRYPTION_KEY)
//	cfg, err := totp.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	key, err := totp.GetEncryptionKey(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	encrypted, err := totp.EncryptSecret(secret, key)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Decrypt when validating
//	decrypted, err := totp.DecryptSecret(encrypted, key)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	valid, err := totp.ValidateTOTP(decrypted, userCode)
//
// Generate a key for configuration:
//
//	encodedKey, err := totp.GenerateEncodedEncryptionKey()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("TOTP_ENCRYPTION_KEY=%s\n", encodedKey)
//
// # Recovery Codes
//
// Generate backup codes for account recovery:
//
//	codes, err := totp.GenerateRecoveryCodes(10)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Hash codes for storage
//	var hashedCodes []string
//	for _, code := range codes {
//		hashedCodes = append(hashedCodes, totp.HashRecoveryCode(code))
//	}
//
//	// Verify during authentication, then remove the used code
//	if totp.VerifyRecoveryCode(userInput, hashedCodes[0]) {
//		fmt.Println("Recovery code valid")
//	}
//
// # Time-based Testing
//
// Generate and validate codes for specific times in tests:
//
//	testTime := time.Unix(1609459200, 0) // 2021-01-01 00:00:00 UTC
//	code, err := totp.GenerateTOTPWithTime(secret, testTime)
//	valid, err := totp.ValidateTOTPWithTime(secret, code, testTime)
package totp
