// Package vec implements a growable array (vector) for Go with explicit
// storage management.
//
// # Overview
//
// A Vec is a contiguous, randomly-indexable sequence that grows by
// capacity doubling. Unlike a plain slice, a Vec keeps its buffer lifecycle
// explicit: elements are live exactly in the occupied prefix, vacated slots
// are zeroed the moment a value leaves the container, and an optional drop
// hook runs exactly once per element that the container discards. This is
// particularly useful for:
//
//   - Elements holding external resources (file handles, C memory, pooled
//     objects) that need a finalization call on every exit path
//   - Long-lived buffers where stale references must not pin the collector
//   - Code that wants vector semantics (insert, remove, drain, consuming
//     iteration) rather than append-only slices
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // Clean up when done
//
//	v.Push(1)
//	v.Push(2)
//	v.Insert(0, 0)
//	last, ok := v.Pop()
//
//	// The occupied prefix as a regular slice view
//	for _, x := range v.Slice() {
//		_ = x
//	}
//
// # Iterators
//
// Two traversals are provided, both double-ended with exact remaining
// counts:
//
//	it := v.IntoIter() // consumes v; v is unusable afterwards
//	for e, ok := it.Next(); ok; e, ok = it.Next() {
//		_ = e
//	}
//	it.Release()
//
//	d := v.Drain() // empties v up front; v stays usable
//	front, _ := d.Next()
//	back, _ := d.NextBack()
//	d.Release() // destroys whatever was not yielded
//
// Releasing a partially consumed iterator destroys every element it has not
// yielded, so nothing is leaked and nothing is destroyed twice.
//
// # Thread Safety
//
// A Vec is not synchronized. It may be handed across goroutine boundaries
// and read concurrently whenever its element type permits that; mutation
// requires exclusive access, the same contract as a plain slice.
//
// # Zero-Sized Element Types
//
// For an element type with no storage footprint (struct{} and friends) the
// Vec never allocates: capacity is treated as unbounded and only the length
// is tracked. Pushing k values and iterating yields exactly k values.
//
// # Performance Characteristics
//
//   - Push: O(1) amortized (capacity doubles, total copy work is linear)
//   - Pop: O(1)
//   - Insert/Remove at index i: O(Len - i)
//   - Release: O(Len) with a drop hook, O(1) without live elements
//
// # Failure Model
//
// Out-of-bounds indexes, use after Release, and byte-size overflow are
// programming errors and panic with a "vec: ..." message. Heap exhaustion
// is fatal at the runtime level. Nothing else fails: Pop, Next and NextBack
// on an empty range report false.
//
// # Metrics and Monitoring
//
// The container reports usage statistics:
//
//	m := v.Metrics()
//	fmt.Printf("Live: %d/%d elements\n", m.Len, m.Cap)
//	fmt.Printf("Bytes in use: %d of %d\n", m.SizeInUse, m.CapacityBytes)
//	fmt.Printf("Reallocations: %d\n", m.Grows)
package vec
