package encoding

import (
	"github.com/runsascoded/use-params/internal/pool"
)

// BitBuffer is a growable bit-addressable store used to assemble and take
// apart packed payloads.
//
// Bits are packed most-significant-bit first. Multi-bit fields may straddle
// byte boundaries; new bits are merged into a partially written byte with
// bitwise OR, so a byte is never overwritten once partially filled. The
// buffer keeps a single cursor, repositioned with Seek, and a high-water
// mark recording the furthest bit ever written; Bytes trims trailing
// never-written bytes using that mark.
//
// A BitBuffer is single-use and exclusively owned: create one per encode or
// decode call, call Finish when done to return its storage to the pool, and
// never share an instance across goroutines.
type BitBuffer struct {
	buf       *pool.ByteBuffer
	cursor    int // bit offset of the next read or write
	highWater int // bit offset just past the furthest written bit
}

// NewBitBuffer creates an empty BitBuffer backed by pooled storage.
func NewBitBuffer() *BitBuffer {
	return &BitBuffer{buf: pool.GetParamBuffer()}
}

// FromBytes constructs a BitBuffer holding a copy of data, cursor at bit 0
// and high-water mark at len(data)*8, ready for decode calls.
func FromBytes(data []byte) *BitBuffer {
	b := &BitBuffer{buf: pool.GetParamBuffer(), highWater: len(data) * 8}
	b.buf.MustWrite(data)

	return b
}

// FromBase64 constructs a BitBuffer from a URL-safe base64 string produced
// by ToBase64. Up to 7 trailing padding bits introduced by byte alignment
// read back as zero.
func FromBase64(str string) *BitBuffer {
	return FromBytes(DecodeString(str))
}

// Finish returns the buffer's storage to the pool. The BitBuffer must not
// be used afterwards.
func (b *BitBuffer) Finish() {
	if b.buf == nil {
		return
	}

	pool.PutParamBuffer(b.buf)
	b.buf = nil
}

// Seek repositions the cursor to the given bit offset.
func (b *BitBuffer) Seek(bitPos int) {
	b.cursor = bitPos
}

// BitPosition returns the cursor's current bit offset.
func (b *BitBuffer) BitPosition() int {
	return b.cursor
}

// BitLength returns the high-water mark: the number of bits written so far.
func (b *BitBuffer) BitLength() int {
	return b.highWater
}

// EncodeInt writes numBits from the low-order bits of value, MSB-first,
// advancing the cursor and growing storage as needed. numBits must be at
// most 32; wider fields go through EncodeBigInt.
func (b *BitBuffer) EncodeInt(value uint32, numBits int) {
	b.writeBits(uint64(value), numBits)
}

// DecodeInt reads numBits (at most 32) from the cursor, MSB-first.
//
// Reading past the high-water mark yields zero bits; callers are trusted
// internal code decoding payloads produced by a matching encode call.
func (b *BitBuffer) DecodeInt(numBits int) uint32 {
	return uint32(b.readBits(numBits))
}

// EncodeBigInt writes numBits (up to 64) from the low-order bits of value,
// MSB-first. This covers mantissa fields beyond 32 bits, up to the 52-bit
// maximum a double can supply.
func (b *BitBuffer) EncodeBigInt(value uint64, numBits int) {
	b.writeBits(value, numBits)
}

// DecodeBigInt reads numBits (up to 64) from the cursor, MSB-first.
func (b *BitBuffer) DecodeBigInt(numBits int) uint64 {
	return b.readBits(numBits)
}

// Bytes returns the stored bytes trimmed to ceil(highWater/8): trailing
// bytes never touched by a write are dropped. The returned slice references
// the internal buffer and is valid until Finish.
func (b *BitBuffer) Bytes() []byte {
	return b.buf.Slice(0, (b.highWater+7)/8)
}

// ToBase64 serializes the buffer as a URL-safe base64 string, no padding.
func (b *BitBuffer) ToBase64() string {
	return EncodeBytes(b.Bytes())
}

// writeBits merges numBits of value into storage at the cursor, splitting
// across byte boundaries and growing one byte at a time.
func (b *BitBuffer) writeBits(value uint64, numBits int) {
	if numBits <= 0 {
		return
	}
	if numBits < 64 {
		value &= 1<<uint(numBits) - 1
	}

	for numBits > 0 {
		byteIdx := b.cursor >> 3
		bitOff := b.cursor & 7

		for byteIdx >= b.buf.Len() {
			b.buf.MustWrite([]byte{0})
		}

		take := 8 - bitOff
		if take > numBits {
			take = numBits
		}

		chunk := byte(value >> uint(numBits-take) & (1<<uint(take) - 1))
		b.buf.B[byteIdx] |= chunk << uint(8-bitOff-take)

		b.cursor += take
		numBits -= take
	}

	if b.cursor > b.highWater {
		b.highWater = b.cursor
	}
}

// readBits extracts numBits starting at the cursor, MSB-first. Bits beyond
// the end of storage read as zero.
func (b *BitBuffer) readBits(numBits int) uint64 {
	var result uint64

	for numBits > 0 {
		byteIdx := b.cursor >> 3
		bitOff := b.cursor & 7

		take := 8 - bitOff
		if take > numBits {
			take = numBits
		}

		var cur byte
		if byteIdx < b.buf.Len() {
			cur = b.buf.B[byteIdx]
		}

		chunk := cur >> uint(8-bitOff-take) & (1<<uint(take) - 1)
		result = result<<uint(take) | uint64(chunk)

		b.cursor += take
		numBits -= take
	}

	return result
}
