package vec

// rawBuf owns a block of storage for exactly cap elements and nothing else.
// It knows how to grow by doubling and how to hand the block back on
// release; it has no idea which slots hold live values.
//
// Invariant: cap == 0 means no block exists. For a zero-sized element type
// cap is pinned to maxBytes ("unbounded") and block stays nil forever, so
// no allocation is ever performed on behalf of such a type.
type rawBuf[T any] struct {
	block []T // storage for cap elements; nil when cap == 0 or T is zero-sized
	cap   int
	grows int // number of reallocations performed
}

func newRawBuf[T any]() rawBuf[T] {
	if sizeOf[T]() == 0 {
		return rawBuf[T]{cap: maxBytes}
	}
	return rawBuf[T]{}
}

// grow doubles the buffer's capacity (0 becomes 1). Reaching here with a
// zero-sized element type means the unbounded capacity was somehow
// exhausted, which is a contract violation, not a reachable state.
func (b *rawBuf[T]) grow() {
	if sizeOf[T]() == 0 {
		panic("vec: capacity overflow")
	}

	newCap := 1
	if b.cap > 0 {
		newCap = 2 * b.cap
	}

	b.block = resizeBlock(b.block, newCap)
	b.cap = newCap
	b.grows++
}

// release drops the block. No-op when nothing was ever allocated.
func (b *rawBuf[T]) release() {
	b.block = nil
	if sizeOf[T]() != 0 {
		b.cap = 0
	}
	b.grows = 0
}
