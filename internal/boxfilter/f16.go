package boxfilter

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/deepteams/fastblur/internal/pool"
)

// Half-float kernels. hwy.Float16 carries uint16 storage without direct
// arithmetic, so every sample is promoted to float32 on load and demoted on
// store; the accumulators are float32 throughout. There are no lane
// variants, and the type opts into the ring strategy on a single worker.

func kernelsF16() kernels[hwy.Float16, float32] {
	return kernels[hwy.Float16, float32]{
		horizontal:       horizontalPassF16,
		vertical:         verticalPassF16,
		ringSum:          ringRowSumF16,
		primeSum:         primeSumF16,
		ringSingleThread: true,
	}
}

func horizontalPassF16(src []hwy.Float16, srcStride int, dst []hwy.Float16, dstStride, width, radius, cn, startY, endY int) {
	edge := float32(radius + 1)
	weight := 1 / float32(2*radius+1)

	for y := startY; y < endY; y++ {
		srcRow := src[y*srcStride : y*srcStride+width*cn]
		dstRow := dst[y*dstStride : y*dstStride+width*cn]

		var acc0, acc1, acc2, acc3 float32
		acc0 = srcRow[0].Float32() * edge
		if cn > 1 {
			acc1 = srcRow[1].Float32() * edge
		}
		if cn > 2 {
			acc2 = srcRow[2].Float32() * edge
		}
		if cn == 4 {
			acc3 = srcRow[3].Float32() * edge
		}
		for k := 1; k <= radius; k++ {
			px := min(k, width-1) * cn
			acc0 += srcRow[px].Float32()
			if cn > 1 {
				acc1 += srcRow[px+1].Float32()
			}
			if cn > 2 {
				acc2 += srcRow[px+2].Float32()
			}
			if cn == 4 {
				acc3 += srcRow[px+3].Float32()
			}
		}

		step := func(x, next, prev int) {
			px := x * cn
			dstRow[px] = hwy.Float32ToFloat16(acc0 * weight)
			if cn > 1 {
				dstRow[px+1] = hwy.Float32ToFloat16(acc1 * weight)
			}
			if cn > 2 {
				dstRow[px+2] = hwy.Float32ToFloat16(acc2 * weight)
			}
			if cn == 4 {
				dstRow[px+3] = hwy.Float32ToFloat16(acc3 * weight)
			}
			acc0 += srcRow[next].Float32() - srcRow[prev].Float32()
			if cn > 1 {
				acc1 += srcRow[next+1].Float32() - srcRow[prev+1].Float32()
			}
			if cn > 2 {
				acc2 += srcRow[next+2].Float32() - srcRow[prev+2].Float32()
			}
			if cn == 4 {
				acc3 += srcRow[next+3].Float32() - srcRow[prev+3].Float32()
			}
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

func verticalPassF16(src []hwy.Float16, srcStride int, dst []hwy.Float16, dstStride, height, radius, startX, endX int) {
	edge := float32(radius + 1)
	weight := 1 / float32(2*radius+1)
	tile := endX - startX

	acc := pool.Get[float32](tile)
	defer pool.Put(acc)

	for i, x := 0, startX; x < endX; i, x = i+1, x+1 {
		a := src[x].Float32() * edge
		for y := 1; y <= radius; y++ {
			a += src[min(y, height-1)*srcStride+x].Float32()
		}
		acc[i] = a
	}

	for y := 0; y < height; y++ {
		nextRow := min(y+radius+1, height-1) * srcStride
		prevRow := max(y-radius, 0) * srcStride
		dstRow := y * dstStride

		for i, x := 0, startX; x < endX; i, x = i+1, x+1 {
			a := acc[i]
			dst[dstRow+x] = hwy.Float32ToFloat16(a * weight)
			acc[i] = a + src[nextRow+x].Float32() - src[prevRow+x].Float32()
		}
	}
}

func ringRowSumF16(oldest, newest, dst []hwy.Float16, acc []float32, radius int) {
	weight := 1 / float32(2*radius+1)
	for i := range dst {
		a := acc[i]
		dst[i] = hwy.Float32ToFloat16(a * weight)
		acc[i] = a + newest[i].Float32() - oldest[i].Float32()
	}
}

func primeSumF16(row []hwy.Float16, acc []float32) {
	for i := range acc {
		acc[i] += row[i].Float32()
	}
}
