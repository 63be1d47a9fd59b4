package vec

import (
	"math"
	"unsafe"
)

// maxBytes is the largest backing block the library will request from the
// heap. Growing past it is a fatal condition, not an error: a container
// that cannot hold its elements has no way to make forward progress.
const maxBytes = math.MaxInt

// sizeOf reports the storage footprint of one element of type T.
// A zero result selects the no-allocation code path throughout the package.
func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// allocBlock requests storage for exactly n elements of type T from the
// host allocator (the Go heap). The block is typed so the collector can see
// any pointers later written into it. Panics with "vec: allocation too
// large" if n elements would exceed the addressable byte range; actual heap
// exhaustion is left to the runtime's own fatal path.
func allocBlock[T any](n int) []T {
	elemSize := sizeOf[T]()
	if elemSize != 0 && uintptr(n) > maxBytes/elemSize {
		panic("vec: allocation too large")
	}
	return make([]T, n)
}

// resizeBlock moves an existing block into storage for n elements. There is
// no realloc primitive on the Go heap, so resize is allocate-and-copy; the
// old block is handed back to the collector. The copied region is never
// re-read through the old block.
func resizeBlock[T any](old []T, n int) []T {
	block := allocBlock[T](n)
	copy(block, old)
	return block
}
