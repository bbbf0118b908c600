package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Basic(t *testing.T) {
	buf := NewByteBuffer(64)
	require.Equal(t, 0, buf.Len())
	require.Equal(t, 64, buf.Cap())

	buf.MustWrite([]byte{1, 2, 3})
	require.Equal(t, 3, buf.Len())
	require.Equal(t, []byte{1, 2, 3}, buf.B)

	buf.Reset()
	require.Equal(t, 0, buf.Len())
	require.Equal(t, 64, buf.Cap())
}

func TestByteBuffer_GrowsPastInitialCapacity(t *testing.T) {
	buf := NewByteBuffer(2)
	for i := 0; i < 100; i++ {
		buf.MustWrite([]byte{byte(i)})
	}
	require.Equal(t, 100, buf.Len())
	require.Equal(t, byte(99), buf.B[99])
}

func TestByteBuffer_Slice(t *testing.T) {
	buf := NewByteBuffer(8)
	buf.MustWrite([]byte{1, 2, 3, 4})

	require.Equal(t, []byte{2, 3}, buf.Slice(1, 3))
	require.Panics(t, func() { buf.Slice(-1, 2) })
	require.Panics(t, func() { buf.Slice(2, 1) })
}

func TestParamBufferPool(t *testing.T) {
	buf := GetParamBuffer()
	require.Equal(t, 0, buf.Len())

	buf.MustWrite([]byte{1, 2, 3})
	PutParamBuffer(buf)

	// A fresh Get always hands back a reset buffer.
	buf = GetParamBuffer()
	require.Equal(t, 0, buf.Len())
	PutParamBuffer(buf)

	// Oversized buffers are dropped, nil is tolerated.
	big := NewByteBuffer(ParamBufferMaxThreshold + 1)
	PutParamBuffer(big)
	PutParamBuffer(nil)
}

func TestGetFloat64Slice(t *testing.T) {
	slice, cleanup := GetFloat64Slice(5)
	require.Len(t, slice, 5)
	for i := range slice {
		slice[i] = float64(i)
	}
	cleanup()

	slice, cleanup = GetFloat64Slice(3)
	require.Len(t, slice, 3)
	cleanup()

	slice, cleanup = GetFloat64Slice(0)
	require.Len(t, slice, 0)
	cleanup()
}
