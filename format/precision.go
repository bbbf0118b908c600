package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/runsascoded/use-params/errs"
)

// Mantissa bit width bounds. Widths below 8 bits give less than 2 decimal
// digits and are rejected; widths above 52 bits exceed what an IEEE-754
// double can supply.
const (
	MinMantissaBits = 8
	MaxMantissaBits = 52

	MinExponentBits = 2
	MaxExponentBits = 11
)

// PrecisionScheme describes how floats are quantized for packing: ExpBits
// bounds the shared exponent's range and MantBits fixes the per-value
// mantissa width.
//
// A scheme with ExpBits=e can represent shared reference exponents in
// [-2^(e-1)+1, 2^(e-1)]. The reference sits one above the largest member
// exponent of a batch, so values with exponents up to 2^(e-1)-1 are
// encodable. All values packed together in one encode call share a single
// exponent, so a scheme's exponent range also bounds the magnitude spread
// of a batch.
//
// Schemes are immutable value objects; construct them directly, take them
// from the preset table, or parse them from a "<expBits>+<mantBits>"
// precision string via ParsePrecision.
type PrecisionScheme struct {
	ExpBits  uint8
	MantBits uint8
}

// Preset precision schemes. All use a 5-bit shared exponent (values spanning
// up to a factor of 2^16 in magnitude per batch) with mantissa widths from
// 16 to 52 bits, giving roughly 5 to 16 decimal digits.
var (
	Precision16 = PrecisionScheme{ExpBits: 5, MantBits: 16}
	Precision22 = PrecisionScheme{ExpBits: 5, MantBits: 22}
	Precision28 = PrecisionScheme{ExpBits: 5, MantBits: 28}
	Precision34 = PrecisionScheme{ExpBits: 5, MantBits: 34}
	Precision40 = PrecisionScheme{ExpBits: 5, MantBits: 40}
	Precision46 = PrecisionScheme{ExpBits: 5, MantBits: 46}
	Precision52 = PrecisionScheme{ExpBits: 5, MantBits: 52}

	// DefaultPrecision is the recommended scheme for typical URL params:
	// ~7 decimal digits, comparable to float32.
	DefaultPrecision = Precision22
)

// Presets returns the built-in precision schemes in increasing mantissa width.
func Presets() []PrecisionScheme {
	return []PrecisionScheme{
		Precision16, Precision22, Precision28, Precision34,
		Precision40, Precision46, Precision52,
	}
}

// Validate checks that the scheme's bit widths are within supported bounds.
//
// Returns:
//   - error: nil if valid, errs.ErrExponentBits or errs.ErrMantissaBits otherwise
func (s PrecisionScheme) Validate() error {
	if s.ExpBits < MinExponentBits || s.ExpBits > MaxExponentBits {
		return fmt.Errorf("%w: %d (want %d-%d)", errs.ErrExponentBits, s.ExpBits, MinExponentBits, MaxExponentBits)
	}
	if s.MantBits < MinMantissaBits || s.MantBits > MaxMantissaBits {
		return fmt.Errorf("%w: %d (want %d-%d)", errs.ErrMantissaBits, s.MantBits, MinMantissaBits, MaxMantissaBits)
	}

	return nil
}

// MaxExponent returns the largest shared reference exponent the scheme can
// store. Since the reference is one above the largest member exponent,
// values with exponents up to MaxExponent()-1 are encodable.
func (s PrecisionScheme) MaxExponent() int {
	return 1 << (s.ExpBits - 1)
}

// MinExponent returns the smallest shared reference exponent the scheme
// can store.
func (s PrecisionScheme) MinExponent() int {
	return -(1 << (s.ExpBits - 1)) + 1
}

// Bias returns the offset added to a shared exponent to store it as an
// unsigned ExpBits-wide field: MinExponent maps to 0 and MaxExponent to
// 2^ExpBits-1.
func (s PrecisionScheme) Bias() int {
	return 1<<(s.ExpBits-1) - 1
}

// PayloadBits returns the total bit length of a packed payload holding
// count values: the shared exponent field plus one sign bit and MantBits
// mantissa bits per value.
func (s PrecisionScheme) PayloadBits(count int) int {
	return int(s.ExpBits) + count*(1+int(s.MantBits))
}

// PayloadBytes returns PayloadBits rounded up to whole bytes.
func (s PrecisionScheme) PayloadBytes(count int) int {
	return (s.PayloadBits(count) + 7) / 8
}

// String renders the scheme in precision-string form, e.g. "5+22".
func (s PrecisionScheme) String() string {
	return strconv.Itoa(int(s.ExpBits)) + "+" + strconv.Itoa(int(s.MantBits))
}

// ParsePrecision parses a compact precision string of the form
// "<expBits>+<mantBits>", e.g. "5+22".
//
// Parameters:
//   - str: Precision string to parse
//
// Returns:
//   - PrecisionScheme: The parsed scheme
//   - error: errs.ErrMalformedPrecision if the string does not match the
//     format, or a validation error if the widths are out of bounds
func ParsePrecision(str string) (PrecisionScheme, error) {
	expStr, mantStr, found := strings.Cut(str, "+")
	if !found {
		return PrecisionScheme{}, fmt.Errorf("%w: %q", errs.ErrMalformedPrecision, str)
	}

	expBits, err := strconv.ParseUint(expStr, 10, 8)
	if err != nil {
		return PrecisionScheme{}, fmt.Errorf("%w: %q", errs.ErrMalformedPrecision, str)
	}

	mantBits, err := strconv.ParseUint(mantStr, 10, 8)
	if err != nil {
		return PrecisionScheme{}, fmt.Errorf("%w: %q", errs.ErrMalformedPrecision, str)
	}

	scheme := PrecisionScheme{ExpBits: uint8(expBits), MantBits: uint8(mantBits)}
	if err := scheme.Validate(); err != nil {
		return PrecisionScheme{}, err
	}

	return scheme, nil
}
