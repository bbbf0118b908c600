package format

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypePacked   EncodingType = 0x1 // TypePacked represents bit-packed base64 encoding with a shared exponent.
	TypeDecimal  EncodingType = 0x2 // TypeDecimal represents fixed-digits decimal string encoding.
	TypeLossless EncodingType = 0x3 // TypeLossless represents the raw 64-bit IEEE-754 pattern, base64-transcoded.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypePacked:
		return "Packed"
	case TypeDecimal:
		return "Decimal"
	case TypeLossless:
		return "Lossless"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
