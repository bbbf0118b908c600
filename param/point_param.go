package param

import (
	"math"
	"strconv"
	"strings"

	"github.com/runsascoded/use-params/encoding"
	"github.com/runsascoded/use-params/format"
	"github.com/runsascoded/use-params/internal/pool"
)

// Point is a 2D coordinate pair, the typical payload of a map-viewport or
// plot-center URL parameter.
type Point struct {
	X float64
	Y float64
}

// PointParam encodes a 2D point as a single URL parameter.
//
// In packed mode both coordinates share one exponent field, so a point
// costs expBits + 2*(1+mantBits) bits: 10 characters at the default 5+22
// precision (7 at Precision16) instead of the 12 that two separate float
// params would need.
// The shared exponent bounds the magnitude spread between X and Y to the
// scheme's exponent range.
type PointParam struct {
	cfg Config
	key string
	def Point
}

var _ Param[Point] = (*PointParam)(nil)

// NewPointParam creates a point param with the given URL key and default.
//
// Parameters:
//   - key: URL parameter key
//   - defaultValue: Point represented by an absent key
//   - opts: Optional configuration (see WithScheme, WithPrecision,
//     WithDecimalDigits, WithLossless)
//
// Returns:
//   - *PointParam: The created param.
//   - error: An error if the configuration is invalid.
func NewPointParam(key string, defaultValue Point, opts ...Option) (*PointParam, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &PointParam{cfg: cfg, key: key, def: defaultValue}, nil
}

// Key returns the param's URL key.
func (p *PointParam) Key() string {
	return p.key
}

// Default returns the param's default value.
func (p *PointParam) Default() Point {
	return p.def
}

// Encode converts a point to its URL string form, or ("", false) when it
// equals the default or cannot be represented under the configured scheme.
func (p *PointParam) Encode(value Point) (string, bool) {
	if value == p.def {
		return "", false
	}

	switch p.cfg.encoding {
	case format.TypeDecimal:
		if !isFinite(value.X) || !isFinite(value.Y) {
			return "", false
		}

		return strconv.FormatFloat(value.X, 'f', p.cfg.digits, 64) + "," +
			strconv.FormatFloat(value.Y, 'f', p.cfg.digits, 64), true

	case format.TypeLossless:
		buf := encoding.NewBitBuffer()
		defer buf.Finish()

		buf.EncodeBigInt(math.Float64bits(value.X), 64)
		buf.EncodeBigInt(math.Float64bits(value.Y), 64)

		return buf.ToBase64(), true

	default:
		buf := encoding.NewBitBuffer()
		defer buf.Finish()

		vals, cleanup := pool.GetFloat64Slice(2)
		defer cleanup()
		vals[0], vals[1] = value.X, value.Y

		if err := buf.EncodeFixedPoints(vals, p.cfg.scheme); err != nil {
			return "", false
		}

		return buf.ToBase64(), true
	}
}

// Decode converts the raw URL string back to a point, falling back to the
// default on missing, empty, or malformed input. It never fails.
func (p *PointParam) Decode(raw string, present bool) Point {
	if !present || raw == "" {
		return p.def
	}

	switch p.cfg.encoding {
	case format.TypeDecimal:
		xStr, yStr, found := strings.Cut(raw, ",")
		if !found {
			return p.def
		}
		x, errX := strconv.ParseFloat(xStr, 64)
		y, errY := strconv.ParseFloat(yStr, 64)
		if errX != nil || errY != nil || !isFinite(x) || !isFinite(y) {
			return p.def
		}

		return Point{X: x, Y: y}

	case format.TypeLossless:
		payload := encoding.DecodeString(raw)
		if len(payload) != 16 {
			return p.def
		}

		buf := encoding.FromBytes(payload)
		defer buf.Finish()

		return Point{
			X: math.Float64frombits(buf.DecodeBigInt(64)),
			Y: math.Float64frombits(buf.DecodeBigInt(64)),
		}

	default:
		buf := encoding.FromBase64(raw)
		defer buf.Finish()

		if encoding.FixedPointCount(len(buf.Bytes()), p.cfg.scheme) < 2 {
			return p.def
		}

		vals, cleanup := pool.GetFloat64Slice(2)
		defer cleanup()

		if err := buf.DecodeFixedPointsInto(vals, p.cfg.scheme); err != nil {
			return p.def
		}

		return Point{X: vals[0], Y: vals[1]}
	}
}

func isFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
