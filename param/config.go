package param

import (
	"fmt"

	"github.com/runsascoded/use-params/compress"
	"github.com/runsascoded/use-params/format"
	"github.com/runsascoded/use-params/internal/options"
)

// defaultDecimalDigits is the digit count used by decimal mode unless
// overridden; 6 digits roughly matches the default packed precision.
const defaultDecimalDigits = 6

// compressMinBytes is the smallest packed payload worth attempting to
// compress. Below this the codec framing alone outweighs any savings.
const compressMinBytes = 32

// Config holds the shared knobs of the float-valued params: precision
// scheme, encoding mode, decimal digit count, and array compression.
//
// This struct follows the composition over inheritance principle: concrete
// params embed a Config and focus on their own encode/decode logic.
type Config struct {
	scheme      format.PrecisionScheme
	encoding    format.EncodingType
	digits      int
	compression format.CompressionType
	codec       compress.Codec
}

// NewConfig creates a Config with default settings (packed encoding,
// format.DefaultPrecision, no compression) and applies the given options.
func NewConfig(opts ...Option) (Config, error) {
	cfg := Config{
		scheme:      format.DefaultPrecision,
		encoding:    format.TypePacked,
		digits:      defaultDecimalDigits,
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
	}

	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Scheme returns the configured precision scheme.
func (c Config) Scheme() format.PrecisionScheme {
	return c.scheme
}

// Encoding returns the configured encoding mode.
func (c Config) Encoding() format.EncodingType {
	return c.encoding
}

// Option represents a functional option for configuring a param.
type Option = options.Option[*Config]

// WithScheme sets the precision scheme used by packed encoding.
func WithScheme(scheme format.PrecisionScheme) Option {
	return options.New(func(c *Config) error {
		if err := scheme.Validate(); err != nil {
			return err
		}
		c.scheme = scheme

		return nil
	})
}

// WithPrecision sets the precision scheme from a compact precision string
// of the form "<expBits>+<mantBits>", e.g. "5+22".
func WithPrecision(str string) Option {
	return options.New(func(c *Config) error {
		scheme, err := format.ParsePrecision(str)
		if err != nil {
			return err
		}
		c.scheme = scheme

		return nil
	})
}

// WithEncoding selects the encoding mode: packed (default), decimal, or
// lossless.
func WithEncoding(enc format.EncodingType) Option {
	return options.New(func(c *Config) error {
		switch enc {
		case format.TypePacked, format.TypeDecimal, format.TypeLossless:
			c.encoding = enc
			return nil
		default:
			return fmt.Errorf("invalid encoding: %v", enc)
		}
	})
}

// WithDecimalDigits selects decimal mode with the given number of digits
// after the decimal point.
func WithDecimalDigits(digits int) Option {
	return options.New(func(c *Config) error {
		if digits < 0 || digits > 17 {
			return fmt.Errorf("invalid decimal digits: %d (want 0-17)", digits)
		}
		c.encoding = format.TypeDecimal
		c.digits = digits

		return nil
	})
}

// WithLossless selects lossless mode: the exact 64-bit IEEE-754 pattern is
// transcoded with no quantization, at a fixed cost of 11 characters per
// value.
func WithLossless() Option {
	return options.NoError(func(c *Config) {
		c.encoding = format.TypeLossless
	})
}

// WithCompression enables compression of packed array payloads. It only
// affects array params, and only payloads long enough for compression to
// pay for its framing; scalar payloads are never compressed.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *Config) error {
		codec, err := compress.CreateCodec(comp, "array payload")
		if err != nil {
			return err
		}
		c.compression = comp
		c.codec = codec

		return nil
	})
}
