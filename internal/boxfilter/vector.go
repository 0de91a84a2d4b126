package boxfilter

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/deepteams/fastblur/internal/pool"
)

// Lane backends built on the portable hwy vector ops. Integer samples are
// widened into int32 lanes (window sums fit within the width bound noted on accum),
// scaled in float32 lanes, and narrowed back through the strip primitives.
// Tails shorter than a vector fall back to the scalar step.

// ringRowSumVec is the lane variant of ringRowSumScalar for integer samples.
func ringRowSumVec[T uint8 | uint16](oldest, newest, dst []T, acc []int32, radius int) {
	weight := 1 / float32(2*radius+1)
	n := hwy.MaxLanes[int32]()
	wv := hwy.Set(weight)
	nextLanes := make([]int32, n)
	prevLanes := make([]int32, n)
	out := make([]float32, n)

	i := 0
	for ; i+n <= len(dst); i += n {
		a := hwy.Load(acc[i : i+n])
		hwy.Mul(hwy.ConvertToFloat32(a), wv).Store(out)
		storeRounded(dst[i:i+n], out)
		widenInt32(nextLanes, newest[i:i+n])
		widenInt32(prevLanes, oldest[i:i+n])
		a = hwy.Sub(hwy.Add(a, hwy.Load(nextLanes)), hwy.Load(prevLanes))
		a.Store(acc[i : i+n])
	}
	for ; i < len(dst); i++ {
		a := acc[i]
		dst[i] = toStorage[T](float32(a) * weight)
		acc[i] = a + int32(newest[i]) - int32(oldest[i])
	}
}

// ringRowSumVecF32 is the lane variant of ringRowSumScalar for float samples.
func ringRowSumVecF32(oldest, newest, dst []float32, acc []float32, radius int) {
	weight := 1 / float32(2*radius+1)
	n := hwy.MaxLanes[float32]()
	wv := hwy.Set(weight)

	i := 0
	for ; i+n <= len(dst); i += n {
		a := hwy.Load(acc[i : i+n])
		hwy.Mul(a, wv).Store(dst[i : i+n])
		a = hwy.Sub(hwy.Add(a, hwy.Load(newest[i:i+n])), hwy.Load(oldest[i:i+n]))
		a.Store(acc[i : i+n])
	}
	for ; i < len(dst); i++ {
		a := acc[i]
		dst[i] = a * weight
		acc[i] = a + newest[i] - oldest[i]
	}
}

// verticalPassVec is the lane variant of verticalPassScalar for integer
// samples. The per-column accumulators are stored across the whole tile so
// lane groups keep their state between y iterations.
func verticalPassVec[T uint8 | uint16](src []T, srcStride int, dst []T, dstStride, height, radius, startX, endX int) {
	edge := int32(radius + 1)
	weight := 1 / float32(2*radius+1)
	tile := endX - startX

	acc := pool.Get[int32](tile)
	defer pool.Put(acc)

	for i, x := 0, startX; x < endX; i, x = i+1, x+1 {
		a := int32(src[x]) * edge
		for y := 1; y <= radius; y++ {
			a += int32(src[min(y, height-1)*srcStride+x])
		}
		acc[i] = a
	}

	n := hwy.MaxLanes[int32]()
	wv := hwy.Set(weight)
	nextLanes := make([]int32, n)
	prevLanes := make([]int32, n)
	out := make([]float32, n)

	for y := 0; y < height; y++ {
		nextRow := min(y+radius+1, height-1) * srcStride
		prevRow := max(y-radius, 0) * srcStride
		dstRow := y * dstStride

		i := 0
		for ; i+n <= tile; i += n {
			x := startX + i
			a := hwy.Load(acc[i : i+n])
			hwy.Mul(hwy.ConvertToFloat32(a), wv).Store(out)
			storeRounded(dst[dstRow+x:dstRow+x+n], out)
			widenInt32(nextLanes, src[nextRow+x:nextRow+x+n])
			widenInt32(prevLanes, src[prevRow+x:prevRow+x+n])
			a = hwy.Sub(hwy.Add(a, hwy.Load(nextLanes)), hwy.Load(prevLanes))
			a.Store(acc[i : i+n])
		}
		for ; i < tile; i++ {
			x := startX + i
			a := acc[i]
			dst[dstRow+x] = toStorage[T](float32(a) * weight)
			acc[i] = a + int32(src[nextRow+x]) - int32(src[prevRow+x])
		}
	}
}

// verticalPassVecF32 is the lane variant of verticalPassScalar for float
// samples.
func verticalPassVecF32(src []float32, srcStride int, dst []float32, dstStride, height, radius, startX, endX int) {
	edge := float32(radius + 1)
	weight := 1 / float32(2*radius+1)
	tile := endX - startX

	acc := pool.Get[float32](tile)
	defer pool.Put(acc)

	for i, x := 0, startX; x < endX; i, x = i+1, x+1 {
		a := src[x] * edge
		for y := 1; y <= radius; y++ {
			a += src[min(y, height-1)*srcStride+x]
		}
		acc[i] = a
	}

	n := hwy.MaxLanes[float32]()
	wv := hwy.Set(weight)

	for y := 0; y < height; y++ {
		nextRow := min(y+radius+1, height-1) * srcStride
		prevRow := max(y-radius, 0) * srcStride
		dstRow := y * dstStride

		i := 0
		for ; i+n <= tile; i += n {
			x := startX + i
			a := hwy.Load(acc[i : i+n])
			hwy.Mul(a, wv).Store(dst[dstRow+x : dstRow+x+n])
			a = hwy.Sub(hwy.Add(a, hwy.Load(src[nextRow+x:nextRow+x+n])), hwy.Load(src[prevRow+x:prevRow+x+n]))
			a.Store(acc[i : i+n])
		}
		for ; i < tile; i++ {
			x := startX + i
			a := acc[i]
			dst[dstRow+x] = a * weight
			acc[i] = a + src[nextRow+x] - src[prevRow+x]
		}
	}
}

// horizontalPassVec4 is the lane variant of horizontalPassScalar for
// 4-channel integer rasters: the four per-channel accumulators map onto a
// single 4-lane int32 group, so one add/sub pair slides all channels.
func horizontalPassVec4[T uint8 | uint16](src []T, srcStride int, dst []T, dstStride, width, radius, cn, startY, endY int) {
	weight := 1 / float32(2*radius+1)
	wv := hwy.Set(weight)
	seed := make([]int32, 4)
	grp := make([]int32, 4)
	out := make([]float32, 4)

	for y := startY; y < endY; y++ {
		srcRow := src[y*srcStride : y*srcStride+width*cn]
		dstRow := dst[y*dstStride : y*dstStride+width*cn]

		widenInt32(seed, srcRow[:4])
		for c := range seed {
			seed[c] *= int32(radius + 1)
		}
		acc := hwy.Load(seed)
		for k := 1; k <= radius; k++ {
			px := min(k, width-1) * cn
			widenInt32(grp, srcRow[px:px+4])
			acc = hwy.Add(acc, hwy.Load(grp))
		}

		step := func(x, next, prev int) {
			px := x * cn
			hwy.Mul(hwy.ConvertToFloat32(acc), wv).Store(out)
			storeRounded(dstRow[px:px+4], out)
			widenInt32(grp, srcRow[next:next+4])
			acc = hwy.Add(acc, hwy.Load(grp))
			widenInt32(grp, srcRow[prev:prev+4])
			acc = hwy.Sub(acc, hwy.Load(grp))
		}

		x := 0
		for ; x < min(radius, width); x++ {
			step(x, min(x+radius+1, width-1)*cn, max(x-radius, 0)*cn)
		}
		if 2*radius+1 < width {
			for ; x <= width-radius-2; x++ {
				step(x, (x+radius+1)*cn, (x-radius)*cn)
			}
		}
		for ; x < width; x++ {
			step(x, min(x+radius+1, width-1)*cn, max(x-radius, 0)*cn)
		}
	}
}

// horizontalPassVec4F32 is the 4-channel lane variant for float samples.
func horizontalPassVec4F32(src []float32, srcStride int, dst []float32, dstStride, width, radius, cn, startY, endY int) {
	weight := 1 / float32(2*radius+1)
	wv := hwy.Set(weight)

	for y := startY; y < endY; y++ {
		srcRow := src[y*srcStride : y*srcStride+width*cn]
		dstRow := dst[y*dstStride : y*dstStride+width*cn]

		acc := hwy.Mul(hwy.Load(srcRow[:4]), hwy.Set(float32(radius+1)))
		for k := 1; k <= radius; k++ {
			px := min(k, width-1) * cn
			acc = hwy.Add(acc, hwy.Load(srcRow[px:px+4]))
		}

		step := func(x, next, prev int) {
			px := x * cn
			hwy.Mul(acc, wv).Store(dstRow[px : px+4])
			acc = hwy.Sub(hwy.Add(acc, hwy.Load(srcRow[next:next+4])), hwy.Load(srcRow[prev:prev+4]))
		}

		x := 0
		for ; x < min(radius, width); x++ {
			step(x, min(x+radius+1, width-1)*cn, max(x-radius, 0)*cn)
		}
		if 2*radius+1 < width {
			for ; x <= width-radius-2; x++ {
				step(x, (x+radius+1)*cn, (x-radius)*cn)
			}
		}
		for ; x < width; x++ {
			step(x, min(x+radius+1, width-1)*cn, max(x-radius, 0)*cn)
		}
	}
}
