package vec

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestMetricsEmpty(t *testing.T) {
	v := New[int64]()
	defer v.Release()

	m := v.Metrics()
	require.Equal(t, 0, m.Len)
	require.Equal(t, 0, m.Cap)
	require.Equal(t, 8, m.ElemSize)
	require.Equal(t, 0, m.SizeInUse)
	require.Equal(t, 0, m.CapacityBytes)
	require.Equal(t, 0.0, m.Utilization)
	require.Equal(t, 0, m.Grows)
}

func TestMetricsAfterPushes(t *testing.T) {
	v := New[int64]()
	defer v.Release()

	for i := 0; i < 5; i++ {
		v.Push(int64(i))
	}

	m := v.Metrics()
	require.Equal(t, 5, m.Len)
	require.Equal(t, 8, m.Cap) // doubled: 1,2,4,8
	require.Equal(t, 40, m.SizeInUse)
	require.Equal(t, 64, m.CapacityBytes)
	require.InDelta(t, 0.625, m.Utilization, 1e-9)
	require.Equal(t, 4, m.Grows)
}

func TestMetricsTrackLength(t *testing.T) {
	v := New[int32]()
	defer v.Release()

	v.Push(1)
	v.Push(2)
	require.Equal(t, 8, v.SizeInUse())

	v.Pop()
	require.Equal(t, 4, v.SizeInUse())
	require.Equal(t, 8, v.CapacityBytes()) // capacity unchanged
}

func TestMetricsZeroSized(t *testing.T) {
	v := New[struct{}]()
	defer v.Release()

	for i := 0; i < 100; i++ {
		v.Push(struct{}{})
	}

	m := v.Metrics()
	require.Equal(t, 100, m.Len)
	require.Equal(t, math.MaxInt, m.Cap)
	require.Equal(t, 0, m.ElemSize)
	require.Equal(t, 0, m.SizeInUse)
	require.Equal(t, 0, m.CapacityBytes)
	require.Equal(t, 0.0, m.Utilization)
}

func TestMetricsAfterRelease(t *testing.T) {
	v := New[int]()
	v.Push(1)
	v.Release()

	require.Equal(t, 0, v.SizeInUse())
	require.Equal(t, 0, v.CapacityBytes())
	require.Equal(t, 0.0, v.Utilization())
}

func TestMetricsElemSizeMatchesCompiler(t *testing.T) {
	type wide struct {
		a [3]int64
		b bool
	}
	v := New[wide]()
	defer v.Release()

	require.Equal(t, int(unsafe.Sizeof(wide{})), v.Metrics().ElemSize)
}
