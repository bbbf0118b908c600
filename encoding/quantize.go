package encoding

import (
	"fmt"
	"math/bits"

	"github.com/runsascoded/use-params/errs"
)

// FixedPointValue is a float re-quantized against a shared reference
// exponent: the sign, the reference exponent itself, and a mantissa of
// exactly mantBits significant positions.
//
// The mantissa's highest set bit is a marker recording how far the value's
// own exponent sits below the reference: a value whose exponent is one
// below the reference has its marker at position mantBits-1, and each
// further power of two pushes the marker one position down. The bits below
// the marker are the value's significand, rounded to nearest. A zero
// mantissa represents signed zero.
type FixedPointValue struct {
	Sign     bool
	Exponent int
	Mantissa uint64
}

// significand returns the 53-bit significand of a decomposed finite double:
// the 52 mantissa bits with the implicit leading 1 restored. Zero and
// subnormals (Exponent == MinExponent) have no implicit bit.
func significand(d DecomposedFloat) uint64 {
	if d.Exponent == MinExponent {
		return d.Mantissa
	}

	return d.Mantissa | 1<<MantissaBits
}

// Quantize converts a decomposed float to a fixed-point value relative to
// refExponent with a mantBits-wide mantissa.
//
// The 53-bit significand is shifted right by
// refExponent - (ownExponent+1) + 53 - mantBits positions with
// round-to-nearest (ties round up), which lands the leading 1 at the marker
// position mantBits-1-(refExponent-ownExponent-1). Values too small for any
// of their bits to survive the shift quantize to zero. A rounding carry
// that would escape the mantissa field saturates at the all-ones mantissa.
//
// Parameters:
//   - d: Decomposed finite double to quantize
//   - refExponent: Shared reference exponent (at least ownExponent+1)
//   - mantBits: Mantissa width in bits (8-52)
//
// Returns:
//   - FixedPointValue: The quantized value
//   - error: errs.ErrExponentRange if d's exponent exceeds refExponent-1
func Quantize(d DecomposedFloat, refExponent int, mantBits int) (FixedPointValue, error) {
	if d.Exponent+1 > refExponent {
		return FixedPointValue{}, fmt.Errorf("%w: exponent %d above reference %d", errs.ErrExponentRange, d.Exponent, refExponent)
	}

	sig := significand(d)
	if sig == 0 {
		return FixedPointValue{Sign: d.Sign, Exponent: refExponent}, nil
	}

	// 53-bit significand, top bit at position 52; the shift lands it at the
	// marker position for this value's magnitude.
	shift := refExponent - (d.Exponent + 1) + 53 - mantBits

	var mant uint64
	switch {
	case shift <= 0:
		mant = sig << uint(-shift)
	case shift > 53:
		mant = 0
	default:
		mant = sig >> shift
		if sig>>(shift-1)&1 == 1 {
			mant++ // round to nearest, ties up
		}
	}

	if mant>>mantBits != 0 {
		mant = 1<<mantBits - 1
	}

	return FixedPointValue{Sign: d.Sign, Exponent: refExponent, Mantissa: mant}, nil
}

// Dequantize reverses Quantize: the highest set bit of the mantissa is the
// marker locating the value's own exponent below the reference, and the
// remaining bits shift back into 52-bit IEEE mantissa position.
//
// A zero mantissa dequantizes to signed zero.
func Dequantize(f FixedPointValue, mantBits int) DecomposedFloat {
	if f.Mantissa == 0 {
		return DecomposedFloat{Sign: f.Sign, Exponent: MinExponent}
	}

	sigLen := bits.Len64(f.Mantissa)
	exponent := f.Exponent - (mantBits - sigLen) - 1

	// Strip the marker, then left-shift the surviving significand bits back
	// into the 52-bit mantissa field.
	mantissa := (f.Mantissa ^ 1<<(sigLen-1)) << uint(53-sigLen) & MantissaMask

	return DecomposedFloat{Sign: f.Sign, Exponent: exponent, Mantissa: mantissa}
}
