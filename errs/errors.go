// Package errs defines sentinel errors shared across the use-params packages.
//
// Callers can use errors.Is to match these sentinels even when they are
// wrapped with additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrExponentRange indicates a value's exponent cannot be represented
	// with the precision scheme's exponent bits. It is raised before any
	// bits are committed to a buffer.
	ErrExponentRange = errors.New("exponent exceeds precision scheme range")

	// ErrMantissaBits indicates a mantissa bit width outside the supported
	// range of 8 to 52 bits.
	ErrMantissaBits = errors.New("mantissa bit width out of range")

	// ErrExponentBits indicates an exponent bit width outside the supported
	// range of 2 to 11 bits.
	ErrExponentBits = errors.New("exponent bit width out of range")

	// ErrNonFinite indicates an attempt to quantize NaN or an infinity.
	ErrNonFinite = errors.New("value is not finite")

	// ErrMalformedPrecision indicates a precision string that does not match
	// the "<expBits>+<mantBits>" format.
	ErrMalformedPrecision = errors.New("malformed precision string")

	// ErrMalformedInput indicates encoded input that cannot be decoded,
	// such as a payload too short to hold the fields it claims.
	ErrMalformedInput = errors.New("malformed encoded input")

	// ErrUnknownCompression indicates a compressed payload tagged with a
	// codec this build does not recognize.
	ErrUnknownCompression = errors.New("unknown compression codec")
)
