package comm

// RingBufferSize is the capacity of a RingBuffer.
// One slot is always kept free, so RingBufferSize-1 bytes can be queued.
const RingBufferSize = 64

// RingBuffer is a fixed size byte FIFO which drops new bytes when full.
// The producer is never blocked or told about the loss.
type RingBuffer struct {
	readPos  int
	writePos int
	buffer   [RingBufferSize]byte
}

// Put appends a byte, or silently discards it when the buffer is full.
func (r *RingBuffer) Put(b byte) {
	next := (r.writePos + 1) % RingBufferSize
	if next == r.readPos {
		return
	}
	r.buffer[r.writePos] = b
	r.writePos = next
}

// Get removes and returns the oldest byte.
func (r *RingBuffer) Get() (byte, bool) {
	if r.readPos == r.writePos {
		return 0, false
	}
	b := r.buffer[r.readPos]
	r.readPos = (r.readPos + 1) % RingBufferSize
	return b, true
}

// Empty indicates nothing is queued.
func (r *RingBuffer) Empty() bool {
	return r.readPos == r.writePos
}
