package totp

// Defaults used across the package when options are not supplied.
const (
	// DefaultDigits is the standard authenticator code length.
	DefaultDigits = 6
	// DefaultPeriod is the standard TOTP time step in seconds.
	DefaultPeriod = 30
	// DefaultSkew is the number of adjacent time steps accepted during validation.
	DefaultSkew = 1

	// maxDigits is the widest code the 31-bit truncated value can fill.
	maxDigits = 10
)

// options configures code generation and validation behavior.
type options struct {
	// digits is the length of the generated code.
	digits int

	// period is the TOTP time step in seconds.
	period int

	// skew is how many time steps before and after the reference time a code is
	// accepted during validation. Generation ignores it.
	skew int

	// strictDecoding rejects secrets containing characters outside the base32
	// alphabet instead of mapping them to zero.
	strictDecoding bool
}

// Option is a functional option for configuring OTP operations.
type Option func(*options)

// WithDigits sets the code length. Values outside 1-10 cause the operation to
// fail with ErrInvalidDigits.
func WithDigits(digits int) Option {
	return func(o *options) {
		o.digits = digits
	}
}

// WithPeriod sets the TOTP time step in seconds. Non-positive values cause the
// operation to fail with ErrInvalidPeriod.
func WithPeriod(seconds int) Option {
	return func(o *options) {
		o.period = seconds
	}
}

// WithSkew sets how many adjacent time steps are accepted during TOTP
// validation. WithSkew(0) requires the code for the exact current step.
func WithSkew(steps int) Option {
	return func(o *options) {
		o.skew = steps
	}
}

// WithStrictDecoding rejects secrets that are not valid RFC 4648 base32 with
// ErrMalformedSecret. By default decoding is lenient: characters outside the
// alphabet contribute a zero value, so a mistyped secret still yields codes.
func WithStrictDecoding() Option {
	return func(o *options) {
		o.strictDecoding = true
	}
}

func defaultOptions() *options {
	return &options{
		digits: DefaultDigits,
		period: DefaultPeriod,
		skew:   DefaultSkew,
	}
}

func applyOptions(opts ...Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.skew < 0 {
		o.skew = 0
	}
	return o
}

// validate reports configuration errors before any arithmetic happens, so a
// zero period can never reach the counter division.
func (o *options) validate() error {
	if o.period <= 0 {
		return ErrInvalidPeriod
	}
	if o.digits < 1 || o.digits > maxDigits {
		return ErrInvalidDigits
	}
	return nil
}
