// Package pool provides bucketed sync.Pool instances for the engine's
// transient rasters, ring buffers, and accumulator rows. Buffers are
// organized by size class, per sample type, to minimize waste in hot paths.
//
// Returned buffers carry stale contents; callers that read before writing
// must clear them first.
package pool

import (
	"sync"

	"github.com/ajroetker/go-highway/hwy"
)

// Element constrains the slice element types the pools serve: the pixel
// sample types plus the accumulator lane types.
type Element interface {
	uint8 | uint16 | int32 | float32 | hwy.Float16
}

// Size classes, in elements.
const (
	size256  = 256
	size1K   = 1024
	size4K   = 4096
	size16K  = 16384
	size64K  = 65536
	size256K = 262144
	size1M   = 1048576
)

var sizes = [7]int{size256, size1K, size4K, size16K, size64K, size256K, size1M}

// bucketIndex returns the pool index for a given element count.
func bucketIndex(n int) int {
	switch {
	case n <= size256:
		return 0
	case n <= size1K:
		return 1
	case n <= size4K:
		return 2
	case n <= size16K:
		return 3
	case n <= size64K:
		return 4
	case n <= size256K:
		return 5
	default:
		return 6
	}
}

// typedPool holds one bucketed pool family for a single element type.
type typedPool[T Element] struct {
	buckets [7]sync.Pool
}

func (p *typedPool[T]) get(n int) []T {
	idx := bucketIndex(n)
	if v := p.buckets[idx].Get(); v != nil {
		b := *v.(*[]T)
		if cap(b) >= n {
			return b[:n]
		}
	}
	alloc := max(n, sizes[idx])
	return make([]T, alloc)[:n]
}

func (p *typedPool[T]) put(b []T) {
	c := cap(b)
	if c < size256 {
		return
	}
	b = b[:c]
	p.buckets[bucketIndex(c)].Put(&b)
}

var (
	u8Pool  typedPool[uint8]
	u16Pool typedPool[uint16]
	i32Pool typedPool[int32]
	f32Pool typedPool[float32]
	f16Pool typedPool[hwy.Float16]
)

// Get returns a slice of exactly n elements from the pool for T. The
// contents are unspecified. The caller should call Put when done.
func Get[T Element](n int) []T {
	var zero []T
	switch any(zero).(type) {
	case []uint8:
		return any(u8Pool.get(n)).([]T)
	case []uint16:
		return any(u16Pool.get(n)).([]T)
	case []int32:
		return any(i32Pool.get(n)).([]T)
	case []float32:
		return any(f32Pool.get(n)).([]T)
	default:
		return any(f16Pool.get(n)).([]T)
	}
}

// Put returns a slice obtained from Get to its pool. Slices smaller than
// the smallest size class are not pooled.
func Put[T Element](b []T) {
	switch s := any(b).(type) {
	case []uint8:
		u8Pool.put(s)
	case []uint16:
		u16Pool.put(s)
	case []int32:
		i32Pool.put(s)
	case []float32:
		f32Pool.put(s)
	case []hwy.Float16:
		f16Pool.put(s)
	}
}
