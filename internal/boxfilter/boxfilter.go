// Package boxfilter implements the sliding-window box blur engine.
//
// The engine keeps one running sum per channel and advances it one sample
// at a time: the sample entering the window is added, the sample leaving it
// is subtracted, so the per-pixel cost is independent of the radius. Edge
// samples are replicated (clamp-to-border) on both axes.
//
// Two execution strategies are provided. The two-pass strategy runs a full
// horizontal pass into a transient raster and then a full vertical pass.
// The ring-buffer strategy fuses both passes through a small cyclic buffer
// of horizontally blurred rows and is preferred for modest vertical radii
// and multi-threaded runs, where the full-raster transient is mostly memory
// traffic.
//
// Kernels assume validated inputs and cannot fail. The scalar kernels take
// their scratch from internal/pool once per call; the lane kernels in
// vector.go also allocate small lane-sized scratch slices on every call,
// including the lane ring row sum, which runs once per output row.
package boxfilter

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// Sample constrains the pixel sample types accepted by Run.
type Sample interface {
	uint8 | uint16 | float32 | hwy.Float16
}

// lane constrains the sample types the generic kernels operate on directly.
// hwy.Float16 carries uint16 storage and is handled by the dedicated f16
// kernels instead.
type lane interface {
	uint8 | uint16 | float32
}

// accum constrains the accumulator types. Integer samples accumulate into
// int32 (a window sum of 8/16-bit samples fits int32 for any window width
// 2r+1 below 2^23 / 2^15), float samples into float32.
type accum interface {
	int32 | float32
}

// ringRadiusThreshold is the smallest vertical radius at which the ring
// buffer stops paying off and the two-pass strategy takes over.
const ringRadiusThreshold = 55

// toStorage rounds v to the nearest representable value of T, saturating
// integer targets. Integer rounding is round-half-to-even so that the
// scalar and lane backends agree bit for bit.
func toStorage[T lane](v float32) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(clampRoundEven(v, 255))
	case uint16:
		return T(clampRoundEven(v, 65535))
	}
	return T(v)
}

func clampRoundEven(v, hi float32) float32 {
	if v <= 0 {
		return 0
	}
	if v >= hi {
		return hi
	}
	return float32(math.RoundToEven(float64(v)))
}

// Run applies a separable box blur with the given radii to an interleaved
// raster of cn channels. Strides are in samples. Inputs must already be
// validated; radii must be at least 1.
func Run[T Sample](src []T, srcStride int, dst []T, dstStride, width, height, cn, xRadius, yRadius, threads int) {
	switch s := any(src).(type) {
	case []uint8:
		run(s, srcStride, any(dst).([]uint8), dstStride, width, height, cn, xRadius, yRadius, threads, kernelsFor[uint8, int32](cn))
	case []uint16:
		run(s, srcStride, any(dst).([]uint16), dstStride, width, height, cn, xRadius, yRadius, threads, kernelsFor[uint16, int32](cn))
	case []float32:
		run(s, srcStride, any(dst).([]float32), dstStride, width, height, cn, xRadius, yRadius, threads, kernelsFor[float32, float32](cn))
	case []hwy.Float16:
		run(s, srcStride, any(dst).([]hwy.Float16), dstStride, width, height, cn, xRadius, yRadius, threads, kernelsF16())
	}
}

// run picks the execution strategy for a resolved kernel set.
func run[T Sample, J accum](src []T, srcStride int, dst []T, dstStride, width, height, cn, xRadius, yRadius, threads int, k kernels[T, J]) {
	if yRadius < ringRadiusThreshold && (threads > 1 || k.ringSingleThread) {
		ringBoxFilter(src, srcStride, dst, dstStride, width, height, cn, xRadius, yRadius, threads, k)
		return
	}
	twoPass(src, srcStride, dst, dstStride, width, height, cn, xRadius, yRadius, threads, k)
}
