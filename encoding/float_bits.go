package encoding

import "math"

const (
	// MantissaBits is the width of an IEEE-754 double's mantissa field.
	MantissaBits = 52

	// MantissaMask selects the low 52 mantissa bits of a double's pattern.
	MantissaMask = (uint64(1) << MantissaBits) - 1

	// ExponentBias is the IEEE-754 double exponent bias.
	ExponentBias = 1023

	// MinExponent is the unbiased exponent of zero and subnormal doubles.
	MinExponent = -ExponentBias

	exponentMask = 0x7FF
)

// DecomposedFloat holds the raw IEEE-754 fields of a float64: sign bit,
// unbiased exponent, and the 52-bit mantissa without the implicit leading 1.
//
// For any finite double, Recompose(Decompose(x)) == x bit-for-bit,
// including negative zero and subnormals.
type DecomposedFloat struct {
	Sign     bool
	Exponent int
	Mantissa uint64
}

// Decompose splits a float64 into its IEEE-754 fields.
//
// The sign is the top bit, the exponent is the 11-bit field minus the 1023
// bias, and the mantissa is the low 52 bits. Zero decomposes to
// {Exponent: MinExponent, Mantissa: 0}; NaN and infinities decompose to
// Exponent 1024 and round-trip through Recompose unchanged.
func Decompose(val float64) DecomposedFloat {
	pattern := math.Float64bits(val)

	return DecomposedFloat{
		Sign:     pattern>>63 == 1,
		Exponent: int(pattern>>MantissaBits&exponentMask) - ExponentBias,
		Mantissa: pattern & MantissaMask,
	}
}

// Recompose reassembles the 64-bit IEEE-754 pattern from decomposed fields
// and reinterprets it as a float64. It is the exact inverse of Decompose.
//
// Exponents below MinExponent (possible after heavy quantization of tiny
// values) flush to signed zero rather than wrapping the exponent field.
func Recompose(d DecomposedFloat) float64 {
	var pattern uint64
	if d.Sign {
		pattern = 1 << 63
	}

	if d.Exponent < MinExponent {
		return math.Float64frombits(pattern)
	}

	pattern |= uint64(d.Exponent+ExponentBias) << MantissaBits
	pattern |= d.Mantissa & MantissaMask

	return math.Float64frombits(pattern)
}
