package pool

import (
	"sync"
)

// ParamBufferDefaultSize is the default capacity of a ByteBuffer obtained
// from the pool. URL parameter payloads are small: a packed batch of N
// floats costs expBits + N*(1+mantBits) bits, so even a 100-point payload
// with a 52-bit mantissa fits well under 1KiB.
const (
	ParamBufferDefaultSize  = 256
	ParamBufferMaxThreshold = 1024 * 16 // 16KiB
)

type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Slice returns a slice of the buffer from start to end.
// Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("Slice: invalid indices")
	}

	return bb.B[start:end]
}

var byteBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(ParamBufferDefaultSize)
	},
}

// GetParamBuffer retrieves a reset ByteBuffer from the pool.
func GetParamBuffer() *ByteBuffer {
	buf, _ := byteBufferPool.Get().(*ByteBuffer)
	buf.Reset()

	return buf
}

// PutParamBuffer returns a ByteBuffer to the pool.
//
// Oversized buffers are dropped instead of pooled so one large encode does
// not pin memory for the lifetime of the pool.
func PutParamBuffer(buf *ByteBuffer) {
	if buf == nil || buf.Cap() > ParamBufferMaxThreshold {
		return
	}

	byteBufferPool.Put(buf)
}
