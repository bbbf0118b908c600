// Package param provides the public URL-parameter codec layer.
//
// A Param[T] maps a typed value to an optional string: encoding the
// configured default yields no string at all (the key is omitted from the
// URL), and decoding a missing, empty, or malformed string yields the
// default. Decode never returns an error to the caller: a mangled URL
// degrades to defaults instead of crashing the consuming application. The
// strict, error-returning layer lives in the encoding package underneath.
//
// Float-valued params support three encodings (format.EncodingType):
//   - Packed: bit-packed shared-exponent quantization, base64-transcoded;
//     precision is configurable via format.PrecisionScheme presets or a
//     "<expBits>+<mantBits>" precision string
//   - Decimal: plain decimal string with a fixed number of digits
//   - Lossless: the full 64-bit IEEE-754 pattern, base64-transcoded
//
// Basic usage:
//
//	p, _ := param.NewFloatParam("zoom", 1.0, param.WithPrecision("5+22"))
//
//	s, ok := p.Encode(3.14159)  // ok=false when value == default
//	v := p.Decode(s, ok)        // v ≈ 3.14159
//
// Params can be bound to a location strategy (query string or hash
// fragment) with Bind, which re-decodes on every location change and
// notifies only when the underlying state actually changed.
package param
