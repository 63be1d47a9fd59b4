package vec

// rawIter is the positional bookkeeping shared by both iterator variants:
// a pair of cursors over the range of slots that has not been yielded yet.
// It is agnostic of who owns the backing block. The range shrinks from
// either end and is empty when the cursors meet.
//
// For a zero-sized element type elems is nil and the cursors are a pure
// count; no slot is ever addressed.
type rawIter[T any] struct {
	elems []T
	head  int
	tail  int
}

func newRawIter[T any](elems []T, n int) rawIter[T] {
	return rawIter[T]{elems: elems, tail: n}
}

// next takes the front element of the remaining range. The vacated slot is
// zeroed: ownership moves to the caller and the block must not keep a
// second reference alive.
func (it *rawIter[T]) next() (T, bool) {
	var zero T
	if it.head == it.tail {
		return zero, false
	}
	if it.elems == nil {
		it.head++
		return zero, true
	}
	elem := it.elems[it.head]
	it.elems[it.head] = zero
	it.head++
	return elem, true
}

// nextBack takes the back element of the remaining range.
func (it *rawIter[T]) nextBack() (T, bool) {
	var zero T
	if it.head == it.tail {
		return zero, false
	}
	it.tail--
	if it.elems == nil {
		return zero, true
	}
	elem := it.elems[it.tail]
	it.elems[it.tail] = zero
	return elem, true
}

// remaining is the exact count of not-yet-yielded elements.
func (it *rawIter[T]) remaining() int {
	return it.tail - it.head
}

// drain consumes the remaining range front to back, running the drop hook
// on each element.
func (it *rawIter[T]) drain(drop func(T)) {
	for {
		elem, ok := it.next()
		if !ok {
			return
		}
		if drop != nil {
			drop(elem)
		}
	}
}

// IntoIter is a consuming traversal: it takes over the source Vec's buffer
// and walks it from both ends. Created by Vec.IntoIter.
type IntoIter[T any] struct {
	buf      rawBuf[T]
	iter     rawIter[T]
	drop     func(T)
	released bool
}

// IntoIter consumes the Vec, transferring its buffer to the returned
// iterator. The Vec is inert afterwards: further operations panic and its
// Release is a no-op, so the transferred elements can never be
// double-destroyed.
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	v.panicIfReleased()
	it := &IntoIter[T]{
		buf:  v.buf,
		iter: newRawIter(v.buf.block, v.len),
		drop: v.drop,
	}
	v.buf = rawBuf[T]{}
	v.len = 0
	v.released = true
	return it
}

// Next removes and returns the front element of the remaining range.
// Reports false when exhausted.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.iter.next()
}

// NextBack removes and returns the back element of the remaining range.
func (it *IntoIter[T]) NextBack() (T, bool) {
	return it.iter.nextBack()
}

// Len returns the exact number of elements not yet yielded.
func (it *IntoIter[T]) Len() int {
	return it.iter.remaining()
}

// Release destroys every element not yet yielded, running the drop hook on
// each, then hands the buffer back. Safe to call twice; releasing an
// exhausted iterator only frees the buffer.
func (it *IntoIter[T]) Release() {
	if it.released {
		return
	}
	it.iter.drain(it.drop)
	it.buf.release()
	it.released = true
}

// Drain is a borrowing traversal: it empties the source Vec up front and
// yields the former contents lazily, from either end. Created by Vec.Drain.
type Drain[T any] struct {
	buf      rawBuf[T]
	iter     rawIter[T]
	drop     func(T)
	released bool
}

// Drain truncates the Vec to length zero and returns an iterator over the
// previously occupied range. Truncation happens here, before any element is
// yielded, so the Vec is immediately usable as an empty array: it accepts
// pushes while the drain is still live. The drained elements are detached
// from the Vec's storage; whatever the iterator has not yielded when it is
// released gets destroyed then, never by the Vec.
func (v *Vec[T]) Drain() *Drain[T] {
	v.panicIfReleased()
	d := &Drain[T]{
		buf:  v.buf,
		iter: newRawIter(v.buf.block, v.len),
		drop: v.drop,
	}
	v.buf = newRawBuf[T]()
	v.len = 0
	return d
}

// Next removes and returns the front element of the remaining range.
func (d *Drain[T]) Next() (T, bool) {
	return d.iter.next()
}

// NextBack removes and returns the back element of the remaining range.
func (d *Drain[T]) NextBack() (T, bool) {
	return d.iter.nextBack()
}

// Len returns the exact number of elements not yet yielded.
func (d *Drain[T]) Len() int {
	return d.iter.remaining()
}

// Release destroys every element not yet yielded and frees the detached
// range. Safe to call twice.
func (d *Drain[T]) Release() {
	if d.released {
		return
	}
	d.iter.drain(d.drop)
	d.buf.release()
	d.released = true
}
