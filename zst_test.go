package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Zero-sized element types get the no-allocation path: capacity is treated
// as unbounded and only the length is tracked.

func TestZSTCapacityUnbounded(t *testing.T) {
	v := New[struct{}]()
	defer v.Release()

	require.Equal(t, math.MaxInt, v.Cap())
	require.Nil(t, v.buf.block)

	v.Push(struct{}{})
	require.Nil(t, v.buf.block) // still no allocation
	require.Equal(t, 0, v.Grows())
}

func TestZSTPushNeverAllocates(t *testing.T) {
	v := New[struct{}]()
	defer v.Release()

	allocs := testing.AllocsPerRun(1000, func() {
		v.Push(struct{}{})
	})
	require.Zero(t, allocs)
}

func TestZSTPushThenIterate(t *testing.T) {
	const k = 10

	v := New[struct{}]()
	for i := 0; i < k; i++ {
		v.Push(struct{}{})
	}
	require.Equal(t, k, v.Len())
	require.Len(t, v.Slice(), k)

	it := v.IntoIter()
	defer it.Release()

	count := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	require.Equal(t, k, count)
}

func TestZSTPopRemoveInsert(t *testing.T) {
	v := New[struct{}]()
	defer v.Release()

	v.Push(struct{}{})
	v.Push(struct{}{})
	v.Insert(1, struct{}{})
	require.Equal(t, 3, v.Len())

	v.Remove(0)
	_, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, 1, v.Len())
}

func TestZSTDrain(t *testing.T) {
	v := New[struct{}]()
	defer v.Release()

	for i := 0; i < 4; i++ {
		v.Push(struct{}{})
	}

	d := v.Drain()
	require.Equal(t, 0, v.Len())
	require.Equal(t, 4, d.Len())

	d.Next()
	d.NextBack()
	require.Equal(t, 2, d.Len())
	d.Release()
}

func TestZSTDropHook(t *testing.T) {
	drops := 0
	v := NewDrop[struct{}](func(struct{}) { drops++ })

	for i := 0; i < 7; i++ {
		v.Push(struct{}{})
	}
	v.Release()
	require.Equal(t, 7, drops)
}

func TestZSTGrowIsContractViolation(t *testing.T) {
	b := newRawBuf[struct{}]()
	require.PanicsWithValue(t, "vec: capacity overflow", func() { b.grow() })
}
