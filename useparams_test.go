package useparams

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runsascoded/use-params/format"
	"github.com/runsascoded/use-params/param"
)

func TestFloatParam_EndToEnd(t *testing.T) {
	zoom, err := NewFloatParam("z", 1.0)
	require.NoError(t, err)

	encoded, ok := zoom.Encode(3.14159)
	require.True(t, ok)
	require.InDelta(t, 3.14159, zoom.Decode(encoded, true), 1e-6)

	_, ok = zoom.Encode(1.0)
	require.False(t, ok)
	require.Equal(t, 1.0, zoom.Decode("", false))
}

func TestLosslessFloatParam_EndToEnd(t *testing.T) {
	p, err := NewLosslessFloatParam("x", 0)
	require.NoError(t, err)

	encoded, ok := p.Encode(math.Pi)
	require.True(t, ok)

	got := p.Decode(encoded, true)
	require.Equal(t, math.Float64bits(math.Pi), math.Float64bits(got))
}

func TestPointParam_EndToEnd(t *testing.T) {
	center, err := NewPointParam("c", param.Point{})
	require.NoError(t, err)

	pt := param.Point{X: -73.9857, Y: 40.7484}
	encoded, ok := center.Encode(pt)
	require.True(t, ok)

	got := center.Decode(encoded, true)
	require.InDelta(t, pt.X, got.X, 1e-4)
	require.InDelta(t, pt.Y, got.Y, 1e-4)
}

func TestFloatsParam_EndToEnd(t *testing.T) {
	samples, err := NewFloatsParam("s", nil,
		WithScheme(format.Precision16),
		WithCompression(format.CompressionZstd),
	)
	require.NoError(t, err)

	values := make([]float64, 256)
	for i := range values {
		values[i] = math.Sin(float64(i) / 16)
	}

	encoded, ok := samples.Encode(values)
	require.True(t, ok)

	got := samples.Decode(encoded, true)
	require.Len(t, got, len(values))
	for i, val := range values {
		require.InDelta(t, val, got[i], 1e-4, "index %d", i)
	}
}

func TestBind_EndToEnd(t *testing.T) {
	qs := NewQueryStrategy("n=3")
	count := NewIntParam("n", 0)

	var seen []int
	b := Bind[int](qs, "n", count, func(v int) { seen = append(seen, v) })
	defer b.Close()

	require.Equal(t, 3, b.Get())

	b.Set(7)
	require.Equal(t, []int{7}, seen)
	require.Equal(t, "n=7", qs.String())

	b.Set(0)
	require.Equal(t, "", qs.String())
}

func TestHashStrategy_EndToEnd(t *testing.T) {
	hs := NewHashStrategy("")
	q := NewStringParam("view", "map")

	b := Bind[string](hs, "view", q, nil)
	defer b.Close()

	b.Set("table")
	require.Equal(t, "#view=table", hs.String())
	require.Equal(t, "table", b.Get())
}

func TestParsePrecision_Wrapper(t *testing.T) {
	scheme, err := ParsePrecision("5+28")
	require.NoError(t, err)
	require.Equal(t, format.Precision28, scheme)

	_, err = ParsePrecision("nope")
	require.Error(t, err)
}

func TestOptions_Wrappers(t *testing.T) {
	_, err := NewFloatParam("a", 0, WithPrecision("5+40"))
	require.NoError(t, err)

	_, err = NewFloatParam("b", 0, WithScheme(format.Precision52))
	require.NoError(t, err)

	_, err = NewFloatParam("c", 0, WithDecimalDigits(3))
	require.NoError(t, err)

	_, err = NewFloatsParam("d", nil, WithCompression(format.CompressionLZ4))
	require.NoError(t, err)
}
