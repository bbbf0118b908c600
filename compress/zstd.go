package compress

// ZstdCompressor provides Zstandard compression for packed array payloads.
//
// Zstd gives the best ratio of the supported codecs and is the recommended
// choice when array params routinely carry hundreds of values. The default
// build uses the pure-Go klauspost implementation; building with the
// "gozstd" tag swaps in the cgo libzstd bindings for faster compression at
// the cost of a cgo dependency.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
