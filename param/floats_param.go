package param

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/runsascoded/use-params/compress"
	"github.com/runsascoded/use-params/encoding"
	"github.com/runsascoded/use-params/format"
)

// Compressed array payloads are marked with a leading '~' (URL-safe,
// outside the base64 alphabet) followed by one codec tag character.
const compressedMarker = '~'

var compressionTags = map[format.CompressionType]byte{
	format.CompressionZstd: 'z',
	format.CompressionS2:   's',
	format.CompressionLZ4:  'l',
}

// FloatsParam encodes a variable-length float64 array as a single URL
// parameter.
//
// The packed wire format stores no element count; it is recovered from the
// payload length, which is unambiguous because byte padding is under 8 bits
// while each element costs at least 9 bits. All elements share one exponent
// field, so the array's magnitude spread is bounded by the scheme's
// exponent range.
//
// Long arrays can opt into compression (WithCompression): the packed bytes
// are compressed before base64 transcoding and the result is kept only when
// it is actually shorter, marked with a "~<tag>" prefix.
type FloatsParam struct {
	cfg Config
	key string
	def []float64
}

var _ Param[[]float64] = (*FloatsParam)(nil)

// NewFloatsParam creates a float-array param with the given URL key and
// default value.
//
// Parameters:
//   - key: URL parameter key
//   - defaultValue: Array represented by an absent key (may be nil)
//   - opts: Optional configuration (see WithScheme, WithPrecision,
//     WithDecimalDigits, WithLossless, WithCompression)
//
// Returns:
//   - *FloatsParam: The created param.
//   - error: An error if the configuration is invalid.
func NewFloatsParam(key string, defaultValue []float64, opts ...Option) (*FloatsParam, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &FloatsParam{cfg: cfg, key: key, def: slices.Clone(defaultValue)}, nil
}

// Key returns the param's URL key.
func (p *FloatsParam) Key() string {
	return p.key
}

// Default returns a copy of the param's default value.
func (p *FloatsParam) Default() []float64 {
	return slices.Clone(p.def)
}

// Encode converts an array to its URL string form, or ("", false) when it
// equals the default or cannot be represented under the configured scheme.
func (p *FloatsParam) Encode(values []float64) (string, bool) {
	if slices.Equal(values, p.def) {
		return "", false
	}

	switch p.cfg.encoding {
	case format.TypeDecimal:
		parts := make([]string, len(values))
		for i, val := range values {
			if !isFinite(val) {
				return "", false
			}
			parts[i] = strconv.FormatFloat(val, 'f', p.cfg.digits, 64)
		}

		return strings.Join(parts, ","), true

	case format.TypeLossless:
		buf := encoding.NewBitBuffer()
		defer buf.Finish()

		for _, val := range values {
			buf.EncodeBigInt(math.Float64bits(val), 64)
		}

		return buf.ToBase64(), true

	default:
		buf := encoding.NewBitBuffer()
		defer buf.Finish()

		if err := buf.EncodeFixedPoints(values, p.cfg.scheme); err != nil {
			return "", false
		}

		return p.transcode(buf.Bytes()), true
	}
}

// transcode serializes packed bytes, attempting compression when enabled
// and keeping it only if the final string comes out shorter.
func (p *FloatsParam) transcode(payload []byte) string {
	plain := encoding.EncodeBytes(payload)

	tag, tagged := compressionTags[p.cfg.compression]
	if !tagged || len(payload) < compressMinBytes {
		return plain
	}

	compressed, err := p.cfg.codec.Compress(payload)
	if err != nil || len(compressed) == 0 {
		// LZ4 block compression signals incompressible input with an
		// empty output.
		return plain
	}

	marked := string(compressedMarker) + string(tag) + encoding.EncodeBytes(compressed)
	if len(marked) >= len(plain) {
		return plain
	}

	return marked
}

// Decode converts the raw URL string back to an array, falling back to the
// default on missing, empty, or malformed input. It never fails.
func (p *FloatsParam) Decode(raw string, present bool) []float64 {
	if !present || raw == "" {
		return p.Default()
	}

	switch p.cfg.encoding {
	case format.TypeDecimal:
		parts := strings.Split(raw, ",")
		values := make([]float64, len(parts))
		for i, part := range parts {
			val, err := strconv.ParseFloat(part, 64)
			if err != nil || !isFinite(val) {
				return p.Default()
			}
			values[i] = val
		}

		return values

	case format.TypeLossless:
		payload := encoding.DecodeString(raw)
		if len(payload)%8 != 0 {
			return p.Default()
		}

		buf := encoding.FromBytes(payload)
		defer buf.Finish()

		values := make([]float64, len(payload)/8)
		for i := range values {
			values[i] = math.Float64frombits(buf.DecodeBigInt(64))
		}

		return values

	default:
		payload, ok := p.untranscode(raw)
		if !ok {
			return p.Default()
		}

		count := encoding.FixedPointCount(len(payload), p.cfg.scheme)
		if count < 1 {
			return p.Default()
		}

		buf := encoding.FromBytes(payload)
		defer buf.Finish()

		values, err := buf.DecodeFixedPoints(count, p.cfg.scheme)
		if err != nil {
			return p.Default()
		}

		return values
	}
}

// untranscode recovers packed bytes from the raw string, decompressing
// tagged payloads regardless of this param's own compression setting so
// that URLs survive configuration changes.
func (p *FloatsParam) untranscode(raw string) ([]byte, bool) {
	if raw[0] != compressedMarker {
		return encoding.DecodeString(raw), true
	}

	if len(raw) < 3 {
		return nil, false
	}

	var compression format.CompressionType
	found := false
	for ct, tag := range compressionTags {
		if tag == raw[1] {
			compression = ct
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, false
	}

	payload, err := codec.Decompress(encoding.DecodeString(raw[2:]))
	if err != nil {
		return nil, false
	}

	return payload, true
}
