// Package useparams provides compact, URL-safe codecs for typed URL
// parameters, built around a lossy configurable-precision binary float
// codec.
//
// Float values are decomposed into IEEE-754 sign/exponent/mantissa,
// re-quantized to a configurable mantissa width, packed into a bitstream
// sharing a single exponent across all values of one parameter, and
// transcoded with a padless URL-safe base64 alphabet. A 2D point costs 10
// characters at the default ~7-digit precision and 7 at Precision16; a
// lossless mode is available when bit-exact round trips matter.
//
// # Core Features
//
//   - Precision presets from ~5 to ~16 decimal digits (5-bit shared
//     exponent, 16-52 bit mantissa), or custom "<expBits>+<mantBits>"
//     precision strings
//   - Shared-exponent packing for points and float arrays
//   - Decimal-string and lossless encodings as alternatives to bit packing
//   - Optional compression (Zstd, S2, LZ4) for long array payloads
//   - Default omission: encoding the default value removes the key from the URL
//   - Fallback decoding: malformed URL text yields the default, never an error
//   - Query-string and hash-fragment location strategies with change-deduplicated bindings
//
// # Basic Usage
//
// Encoding and decoding a single float parameter:
//
//	import useparams "github.com/runsascoded/use-params"
//
//	zoom, _ := useparams.NewFloatParam("z", 1.0)
//
//	s, ok := zoom.Encode(3.14159) // 6-char base64 string (ok=false when value == default)
//	v := zoom.Decode(s, ok)       // 3.14159 to ~7 significant digits
//
// Binding params to a query string:
//
//	qs := useparams.NewQueryStrategy("z=BSZDKA")
//	b := useparams.Bind(qs, "z", zoom, func(v float64) {
//	    rerender(v)
//	})
//	b.Set(2.5)        // updates qs, notifies other subscribers
//	_ = qs.String()   // "z=..."
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the param
// package. For fine-grained control, or to build custom params on the raw
// bit-level codec, use the param and encoding packages directly.
package useparams

import (
	"github.com/runsascoded/use-params/format"
	"github.com/runsascoded/use-params/param"
)

// NewFloatParam creates a float64 URL param with the given key and default
// value.
//
// The default configuration uses packed encoding at format.DefaultPrecision
// (~7 decimal digits). Pass options to change precision or mode:
//
//	p, err := useparams.NewFloatParam("lat", 0,
//	    useparams.WithPrecision("5+34"),
//	)
func NewFloatParam(key string, defaultValue float64, opts ...param.Option) (*param.FloatParam, error) {
	return param.NewFloatParam(key, defaultValue, opts...)
}

// NewLosslessFloatParam creates a float64 param that round-trips values
// bit-for-bit: 8 raw IEEE-754 bytes, 11 characters, no quantization.
func NewLosslessFloatParam(key string, defaultValue float64) (*param.FloatParam, error) {
	return param.NewFloatParam(key, defaultValue, param.WithLossless())
}

// NewPointParam creates a 2D point param. Both coordinates share one
// exponent field, roughly halving the URL cost of two separate float
// params.
func NewPointParam(key string, defaultValue param.Point, opts ...param.Option) (*param.PointParam, error) {
	return param.NewPointParam(key, defaultValue, opts...)
}

// NewFloatsParam creates a float-array param. All elements share one
// exponent field, and long payloads can opt into compression:
//
//	p, err := useparams.NewFloatsParam("samples", nil,
//	    useparams.WithScheme(format.Precision16),
//	    useparams.WithCompression(format.CompressionZstd),
//	)
func NewFloatsParam(key string, defaultValue []float64, opts ...param.Option) (*param.FloatsParam, error) {
	return param.NewFloatsParam(key, defaultValue, opts...)
}

// NewIntParam creates a plain decimal int param.
func NewIntParam(key string, defaultValue int) *param.IntParam {
	return param.NewIntParam(key, defaultValue)
}

// NewStringParam creates a pass-through string param.
func NewStringParam(key string, defaultValue string) *param.StringParam {
	return param.NewStringParam(key, defaultValue)
}

// NewQueryStrategy creates a query-string location strategy seeded from
// rawQuery (without the leading '?').
func NewQueryStrategy(rawQuery string) *param.QueryStrategy {
	return param.NewQueryStrategy(rawQuery)
}

// NewHashStrategy creates a hash-fragment location strategy seeded from
// fragment (without the leading '#').
func NewHashStrategy(fragment string) *param.HashStrategy {
	return param.NewHashStrategy(fragment)
}

// Bind ties a param to one key of a strategy; see param.Bind.
func Bind[T any](strategy param.Strategy, key string, p param.Param[T], onChange func(T)) *param.Binding[T] {
	return param.Bind(strategy, key, p, onChange)
}

// ParsePrecision parses a "<expBits>+<mantBits>" precision string, e.g.
// "5+22".
func ParsePrecision(str string) (format.PrecisionScheme, error) {
	return format.ParsePrecision(str)
}

// Option re-exports for the common configuration knobs.

// WithScheme sets the packed-mode precision scheme.
func WithScheme(scheme format.PrecisionScheme) param.Option {
	return param.WithScheme(scheme)
}

// WithPrecision sets the packed-mode precision from a precision string.
func WithPrecision(str string) param.Option {
	return param.WithPrecision(str)
}

// WithDecimalDigits selects decimal-string mode with the given digits.
func WithDecimalDigits(digits int) param.Option {
	return param.WithDecimalDigits(digits)
}

// WithCompression enables compression for array payloads.
func WithCompression(comp format.CompressionType) param.Option {
	return param.WithCompression(comp)
}
