package compress

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runsascoded/use-params/errs"
	"github.com/runsascoded/use-params/format"
)

func testPayload(size int) []byte {
	// Repetitive payload resembling packed float arrays: long runs of
	// similar mantissa bytes compress well.
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 16)
	}

	return data
}

func TestCodecs_RoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	sizes := []int{0, 1, 7, 64, 1024, 65536}

	for _, compType := range types {
		t.Run(compType.String(), func(t *testing.T) {
			codec, err := CreateCodec(compType, "test")
			require.NoError(t, err)

			for _, size := range sizes {
				data := testPayload(size)

				compressed, err := codec.Compress(data)
				require.NoError(t, err, "size %d", size)

				if size > 0 && len(compressed) == 0 {
					// LZ4 block compression reports incompressible
					// input with an empty output; callers keep the
					// original payload in that case.
					require.Equal(t, format.CompressionLZ4, compType)
					continue
				}

				restored, err := codec.Decompress(compressed)
				require.NoError(t, err, "size %d", size)

				if size == 0 {
					require.Empty(t, restored)
				} else {
					require.Equal(t, data, restored, "size %d", size)
				}
			}
		})
	}
}

func TestCodecs_CompressRepetitiveData(t *testing.T) {
	data := testPayload(4096)

	for _, compType := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compType)
		require.NoError(t, err)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(data), "codec %s", compType)
	}
}

func TestCodecs_RandomDataRoundTrip(t *testing.T) {
	data := make([]byte, 4096)
	rand.New(rand.NewSource(3)).Read(data)

	for _, compType := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compType)
		require.NoError(t, err)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)
		if compType == format.CompressionLZ4 && len(compressed) == 0 {
			continue // incompressible
		}

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Equal(t, data, restored, "codec %s", compType)
	}
}

func TestNoOpCompressor_Identity(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte{1, 2, 3}

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, restored)
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xEE), "payload")
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
	require.Contains(t, err.Error(), "payload")
}

func TestGetCodec_Invalid(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xEE))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestDecompress_Corrupted(t *testing.T) {
	for _, compType := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compType)
		require.NoError(t, err)

		_, err = codec.Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF})
		require.Error(t, err, "codec %s", compType)
	}
}

func BenchmarkCompress(b *testing.B) {
	data := testPayload(4096)
	for _, compType := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, _ := GetCodec(compType)
		b.Run(compType.String(), func(b *testing.B) {
			for b.Loop() {
				_, _ = codec.Compress(data)
			}
		})
	}
}
