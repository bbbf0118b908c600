// Package compress provides compression codecs for packed array payloads.
//
// A packed float array param costs roughly 1+mantBits bits per value, which
// for long arrays can still exceed practical URL length budgets. Compression
// is applied to the raw packed bytes before base64 transcoding, and only
// kept when it actually shortens the result (random-looking quantized
// mantissas often do not compress).
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Supported algorithms, selected via format.CompressionType:
//   - None: pass-through (the default for scalar and short array params)
//   - Zstd: best ratio; pure-Go by default, cgo gozstd behind the "gozstd" build tag
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// All codecs are safe for concurrent use.
package compress
