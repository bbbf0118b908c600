package encoding

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runsascoded/use-params/errs"
)

func TestLossless_RoundTrip(t *testing.T) {
	values := []float64{
		0.0, 1.0, -1.0, 3.141592653589793, -2.718281828459045,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
		math.Inf(1), math.Inf(-1), math.Copysign(0, -1),
		1e-300, 1e300,
	}
	for _, val := range values {
		str := EncodeLossless(val)
		require.Len(t, str, 11)

		got, err := DecodeLossless(str)
		require.NoError(t, err)
		require.Equal(t, math.Float64bits(val), math.Float64bits(got), "value %v", val)
	}
}

func TestLossless_NaN(t *testing.T) {
	got, err := DecodeLossless(EncodeLossless(math.NaN()))
	require.NoError(t, err)
	require.True(t, math.IsNaN(got))
}

func TestLossless_RandomBitPatterns(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 5000; i++ {
		bits := rng.Uint64()
		val := math.Float64frombits(bits)
		if math.IsNaN(val) {
			continue // NaN payloads are not preserved across float64 moves on all platforms
		}

		got, err := DecodeLossless(EncodeLossless(val))
		require.NoError(t, err)
		require.Equal(t, bits, math.Float64bits(got))
	}
}

func TestDecodeLossless_WrongLength(t *testing.T) {
	for _, str := range []string{"", "AA", "AAAAAAAAAAAAAAAA"} {
		_, err := DecodeLossless(str)
		require.ErrorIs(t, err, errs.ErrMalformedInput, "input %q", str)
	}
}

func BenchmarkEncodeLossless(b *testing.B) {
	for b.Loop() {
		EncodeLossless(3.141592653589793)
	}
}
