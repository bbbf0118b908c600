package encoding

import (
	"fmt"
	"math"

	"github.com/runsascoded/use-params/errs"
	"github.com/runsascoded/use-params/format"
)

// EncodeFixedPoints packs a batch of float64 values into the buffer under
// one shared exponent.
//
// The reference exponent is max(exponent)+1 across the batch, written once
// as a biased unsigned field of scheme.ExpBits bits, followed by each value
// in input order as 1 sign bit plus scheme.MantBits mantissa bits. A batch
// whose maximum exponent sits below the scheme's floor clamps the reference
// to the floor; members then quantize toward zero mantissas.
//
// The range check runs before any bits are committed: on error the buffer
// is untouched.
//
// Parameters:
//   - values: Batch of finite float64 values (order is preserved on decode)
//   - scheme: Precision scheme fixing exponent and mantissa field widths
//
// Returns:
//   - error: errs.ErrNonFinite for NaN or infinities, errs.ErrExponentRange
//     if the shared exponent does not fit scheme.ExpBits, or a scheme
//     validation error
func (b *BitBuffer) EncodeFixedPoints(values []float64, scheme format.PrecisionScheme) error {
	if err := scheme.Validate(); err != nil {
		return err
	}

	maxExp := MinExponent
	for _, val := range values {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("%w: %v", errs.ErrNonFinite, val)
		}
		if exp := Decompose(val).Exponent; exp > maxExp {
			maxExp = exp
		}
	}

	ref := maxExp + 1
	if ref > scheme.MaxExponent() {
		return fmt.Errorf("%w: shared exponent %d exceeds scheme %s", errs.ErrExponentRange, ref, scheme)
	}
	if ref < scheme.MinExponent() {
		ref = scheme.MinExponent()
	}

	mantBits := int(scheme.MantBits)
	b.EncodeInt(uint32(ref+scheme.Bias()), int(scheme.ExpBits))

	for _, val := range values {
		fixed, err := Quantize(Decompose(val), ref, mantBits)
		if err != nil {
			return err
		}

		var signBit uint32
		if fixed.Sign {
			signBit = 1
		}
		b.EncodeInt(signBit, 1)
		b.EncodeBigInt(fixed.Mantissa, mantBits)
	}

	return nil
}

// DecodeFixedPointsInto reads the shared exponent once, then len(dst)
// repetitions of {sign bit, mantissa}, dequantizing each back to a float64
// in input order.
//
// Like the other decode primitives it assumes a payload produced by a
// matching EncodeFixedPoints call with the same scheme and count.
func (b *BitBuffer) DecodeFixedPointsInto(dst []float64, scheme format.PrecisionScheme) error {
	if err := scheme.Validate(); err != nil {
		return err
	}

	mantBits := int(scheme.MantBits)
	ref := int(b.DecodeInt(int(scheme.ExpBits))) - scheme.Bias()

	for i := range dst {
		sign := b.DecodeInt(1) == 1
		mant := b.DecodeBigInt(mantBits)
		dst[i] = Recompose(Dequantize(FixedPointValue{Sign: sign, Exponent: ref, Mantissa: mant}, mantBits))
	}

	return nil
}

// DecodeFixedPoints allocates and returns count values decoded via
// DecodeFixedPointsInto.
func (b *BitBuffer) DecodeFixedPoints(count int, scheme format.PrecisionScheme) ([]float64, error) {
	dst := make([]float64, count)
	if err := b.DecodeFixedPointsInto(dst, scheme); err != nil {
		return nil, err
	}

	return dst, nil
}

// FixedPointCount recovers the number of values in a packed payload of the
// given byte length: the wire format carries no explicit count, but byte
// padding is under 8 bits while each value costs 1+MantBits >= 9 bits, so
// the division is unambiguous.
func FixedPointCount(byteLen int, scheme format.PrecisionScheme) int {
	bits := byteLen*8 - int(scheme.ExpBits)
	if bits < 0 {
		return 0
	}

	return bits / (1 + int(scheme.MantBits))
}
