package param

import (
	"math"
	"strconv"

	"github.com/runsascoded/use-params/encoding"
	"github.com/runsascoded/use-params/format"
	"github.com/runsascoded/use-params/internal/pool"
)

// FloatParam encodes a single float64 URL parameter.
//
// In packed mode (the default) a value costs
// ceil((expBits + 1 + mantBits)/8) bytes before base64: 6 characters at
// the default 5+22 precision, 4 at Precision16. Decimal mode trades
// compactness for
// human-readable URLs; lossless mode guarantees bit-exact round trips.
type FloatParam struct {
	cfg Config
	key string
	def float64
}

var _ Param[float64] = (*FloatParam)(nil)

// NewFloatParam creates a float param with the given URL key and default
// value.
//
// Parameters:
//   - key: URL parameter key (used when binding to a location strategy)
//   - defaultValue: Value represented by an absent key
//   - opts: Optional configuration (see WithScheme, WithPrecision,
//     WithDecimalDigits, WithLossless)
//
// Returns:
//   - *FloatParam: The created param.
//   - error: An error if the configuration is invalid.
func NewFloatParam(key string, defaultValue float64, opts ...Option) (*FloatParam, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &FloatParam{cfg: cfg, key: key, def: defaultValue}, nil
}

// Key returns the param's URL key.
func (p *FloatParam) Key() string {
	return p.key
}

// Default returns the param's default value.
func (p *FloatParam) Default() float64 {
	return p.def
}

// Encode converts a value to its URL string form.
//
// Returns ("", false) when the value equals the default (the key is then
// omitted from the URL), and also when the value cannot be represented at
// all under the configured scheme (non-finite values or exponent overflow
// in packed mode): an unencodable value degrades to the default rather
// than corrupting the URL.
func (p *FloatParam) Encode(value float64) (string, bool) {
	if value == p.def {
		return "", false
	}

	switch p.cfg.encoding {
	case format.TypeDecimal:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return "", false
		}

		return strconv.FormatFloat(value, 'f', p.cfg.digits, 64), true

	case format.TypeLossless:
		return encoding.EncodeLossless(value), true

	default:
		buf := encoding.NewBitBuffer()
		defer buf.Finish()

		if err := buf.EncodeFixedPoints([]float64{value}, p.cfg.scheme); err != nil {
			return "", false
		}

		return buf.ToBase64(), true
	}
}

// Decode converts the raw URL string back to a value, falling back to the
// default on missing, empty, or malformed input. It never fails.
func (p *FloatParam) Decode(raw string, present bool) float64 {
	if !present || raw == "" {
		return p.def
	}

	switch p.cfg.encoding {
	case format.TypeDecimal:
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
			return p.def
		}

		return val

	case format.TypeLossless:
		val, err := encoding.DecodeLossless(raw)
		if err != nil {
			return p.def
		}

		return val

	default:
		buf := encoding.FromBase64(raw)
		defer buf.Finish()

		if encoding.FixedPointCount(len(buf.Bytes()), p.cfg.scheme) < 1 {
			return p.def
		}

		vals, cleanup := pool.GetFloat64Slice(1)
		defer cleanup()

		if err := buf.DecodeFixedPointsInto(vals, p.cfg.scheme); err != nil {
			return p.def
		}

		return vals[0]
	}
}
