// Package vec implements a growable, contiguous, randomly-indexable
// sequence container with explicit storage management, built from a raw
// doubling buffer plus a logical length.
package vec

// Vec is a growable array of T. The occupied prefix [0, len) holds live
// values; the rest of the buffer is spare capacity. Not goroutine-safe:
// mutation requires exclusive access, exactly as with a plain slice.
type Vec[T any] struct {
	buf      rawBuf[T]
	len      int
	drop     func(T)
	released bool
}

// New creates an empty Vec. Never allocates.
func New[T any]() *Vec[T] {
	return &Vec[T]{buf: newRawBuf[T]()}
}

// NewDrop creates an empty Vec whose elements hold external resources.
// The drop hook runs exactly once per live element when that element is
// discarded by the container: on Release, Truncate, Clear, and on release
// of a partially consumed iterator. Elements handed out by Pop, Remove,
// Next or NextBack are the caller's to finalize.
func NewDrop[T any](drop func(T)) *Vec[T] {
	v := New[T]()
	v.drop = drop
	return v
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.len
}

// Cap returns the element capacity of the backing buffer. For a zero-sized
// element type this is the unbounded sentinel, since no storage is needed.
func (v *Vec[T]) Cap() int {
	return v.buf.cap
}

// Push appends elem, growing the buffer if full. Amortized O(1).
func (v *Vec[T]) Push(elem T) {
	v.panicIfReleased()
	if v.len == v.buf.cap {
		v.buf.grow()
	}
	if v.buf.block != nil {
		v.buf.block[v.len] = elem
	}
	v.len++
}

// Pop removes and returns the last element. The vacated slot is zeroed so
// the value's lifetime ends with the return. Reports false when empty.
func (v *Vec[T]) Pop() (T, bool) {
	v.panicIfReleased()
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	if v.buf.block == nil {
		return zero, true
	}
	elem := v.buf.block[v.len]
	v.buf.block[v.len] = zero
	return elem, true
}

// Insert places elem at index idx, shifting [idx, len) one slot right.
// idx may equal Len (append position). O(Len - idx).
func (v *Vec[T]) Insert(idx int, elem T) {
	v.panicIfReleased()
	if idx < 0 || idx > v.len {
		panic("vec: index out of bounds")
	}
	if v.len == v.buf.cap {
		v.buf.grow()
	}
	if v.buf.block != nil {
		copy(v.buf.block[idx+1:v.len+1], v.buf.block[idx:v.len])
		v.buf.block[idx] = elem
	}
	v.len++
}

// Remove deletes and returns the element at idx, shifting [idx+1, len) one
// slot left. O(Len - idx).
func (v *Vec[T]) Remove(idx int) T {
	v.panicIfReleased()
	if idx < 0 || idx >= v.len {
		panic("vec: index out of bounds")
	}
	var zero T
	v.len--
	if v.buf.block == nil {
		return zero
	}
	elem := v.buf.block[idx]
	copy(v.buf.block[idx:v.len], v.buf.block[idx+1:v.len+1])
	v.buf.block[v.len] = zero
	return elem
}

// Get returns the element at idx.
func (v *Vec[T]) Get(idx int) T {
	v.panicIfReleased()
	if idx < 0 || idx >= v.len {
		panic("vec: index out of bounds")
	}
	var zero T
	if v.buf.block == nil {
		return zero
	}
	return v.buf.block[idx]
}

// Set overwrites the element at idx. The previous value is discarded
// without running the drop hook; use Remove to take it out first.
func (v *Vec[T]) Set(idx int, elem T) {
	v.panicIfReleased()
	if idx < 0 || idx >= v.len {
		panic("vec: index out of bounds")
	}
	if v.buf.block != nil {
		v.buf.block[idx] = elem
	}
}

// Slice returns the occupied prefix [0, Len) as a live read/write view over
// the backing buffer. The view's capacity is clamped to its length so an
// append by the caller cannot scribble on spare capacity. It is invalidated
// by any operation that grows the Vec. For a zero-sized element type the
// view is a fresh zero-value slice (still allocation-free).
func (v *Vec[T]) Slice() []T {
	v.panicIfReleased()
	if v.buf.block == nil {
		return make([]T, v.len)
	}
	return v.buf.block[:v.len:v.len]
}

// Truncate drops the elements [n, Len) in reverse order, running the drop
// hook on each, and sets the length to n.
func (v *Vec[T]) Truncate(n int) {
	v.panicIfReleased()
	if n < 0 || n > v.len {
		panic("vec: index out of bounds")
	}
	var zero T
	for i := v.len - 1; i >= n; i-- {
		if v.drop != nil {
			if v.buf.block != nil {
				v.drop(v.buf.block[i])
			} else {
				v.drop(zero)
			}
		}
		if v.buf.block != nil {
			v.buf.block[i] = zero
		}
	}
	v.len = n
}

// Clear drops every element. Capacity is retained.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Release destroys every live element and hands the buffer back. The Vec is
// unusable afterwards; any further operation panics. Safe to call twice.
func (v *Vec[T]) Release() {
	if v.released {
		return
	}
	v.Truncate(0)
	v.buf.release()
	v.released = true
}

// panicIfReleased panics if the Vec has been released or consumed.
func (v *Vec[T]) panicIfReleased() {
	if v.released {
		panic("vec: use after Release()")
	}
}
