package vec

// SizeInUse returns the number of bytes occupied by live elements.
// Zero for a zero-sized element type regardless of length.
func (v *Vec[T]) SizeInUse() int {
	if v.released {
		return 0
	}
	return v.len * int(sizeOf[T]())
}

// CapacityBytes returns the total byte size of the backing buffer.
func (v *Vec[T]) CapacityBytes() int {
	if v.released || v.buf.block == nil {
		return 0
	}
	return v.buf.cap * int(sizeOf[T]())
}

// Utilization returns the ratio of live bytes to buffer bytes (0.0 to 1.0).
// Returns 0.0 while no buffer exists.
func (v *Vec[T]) Utilization() float64 {
	capacity := v.CapacityBytes()
	if capacity == 0 {
		return 0
	}
	return float64(v.SizeInUse()) / float64(capacity)
}

// Grows returns the number of reallocations performed so far. With the
// doubling strategy this is the ceiling of log2 of the peak length.
func (v *Vec[T]) Grows() int {
	return v.buf.grows
}

// Metrics returns a snapshot of container statistics.
func (v *Vec[T]) Metrics() Metrics {
	return Metrics{
		Len:           v.len,
		Cap:           v.buf.cap,
		ElemSize:      int(sizeOf[T]()),
		SizeInUse:     v.SizeInUse(),
		CapacityBytes: v.CapacityBytes(),
		Utilization:   v.Utilization(),
		Grows:         v.Grows(),
	}
}

// Metrics contains statistical information about a Vec.
type Metrics struct {
	Len           int     // Live element count
	Cap           int     // Element capacity (unbounded sentinel for zero-sized types)
	ElemSize      int     // Bytes per element
	SizeInUse     int     // Bytes occupied by live elements
	CapacityBytes int     // Total byte size of the backing buffer
	Utilization   float64 // Ratio of live to total bytes (0.0-1.0)
	Grows         int     // Reallocations performed
}
