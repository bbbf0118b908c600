package encoding

import (
	"fmt"
	"math"

	"github.com/runsascoded/use-params/endian"
	"github.com/runsascoded/use-params/errs"
)

// losslessPayloadLen is the byte length of a lossless float payload: the
// full 64-bit IEEE-754 pattern, big-endian, no shared-exponent optimization.
const losslessPayloadLen = 8

// EncodeLossless encodes a float64 exactly: 8 raw big-endian IEEE-754
// bytes, base64-transcoded. Any bit pattern round-trips, NaN included.
func EncodeLossless(val float64) string {
	engine := endian.GetBigEndianEngine()
	payload := engine.AppendUint64(make([]byte, 0, losslessPayloadLen), math.Float64bits(val))

	return EncodeBytes(payload)
}

// DecodeLossless reverses EncodeLossless.
//
// Returns:
//   - float64: The decoded value
//   - error: errs.ErrMalformedInput if the payload is not exactly 8 bytes
func DecodeLossless(str string) (float64, error) {
	payload := DecodeString(str)
	if len(payload) != losslessPayloadLen {
		return 0, fmt.Errorf("%w: lossless payload is %d bytes, want %d", errs.ErrMalformedInput, len(payload), losslessPayloadLen)
	}

	engine := endian.GetBigEndianEngine()

	return math.Float64frombits(engine.Uint64(payload)), nil
}
