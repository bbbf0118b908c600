// Package encoding implements the codec core of use-params: IEEE-754
// decomposition, shared-exponent fixed-point quantization, a bit-addressed
// read/write buffer, and the URL-safe base64 transcoder.
//
// The pipeline for a packed encode is:
//
//	float64 values
//	  → Decompose            (sign / unbiased exponent / 52-bit mantissa)
//	  → Quantize             (mantissa re-quantized to the scheme's width,
//	                          one reference exponent shared by the batch)
//	  → BitBuffer            (expBits exponent field, then per value
//	                          1 sign bit + mantBits mantissa bits, MSB-first)
//	  → EncodeBytes          (URL-safe base64, no padding)
//
// Decoding reverses the chain exactly. The wire format for an N-value
// payload under scheme (expBits, mantBits) is expBits + N*(1+mantBits)
// bits, trimmed to whole bytes; up to 7 trailing zero bits of byte padding
// decode back to nothing.
//
// # Usage Guidance
//
// This package is the low-level layer. Decode primitives trust their input:
// they assume the payload was produced by a matching encode call and do not
// defensively validate. Robustness against arbitrary strings belongs to the
// param package, which catches every decode failure and falls back to the
// configured default value.
//
// For typical use cases, see: github.com/runsascoded/use-params/param
package encoding
