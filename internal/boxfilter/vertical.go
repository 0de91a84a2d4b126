package boxfilter

import "github.com/deepteams/fastblur/internal/pool"

// verticalPassScalar box blurs the sample columns [startX, endX) of src
// into dst, top to bottom. The column window is clamped to [0, height) at
// both ends. Columns are independent of the channel layout, so the range is
// expressed in samples, not pixels.
//
// Per-column running sums live in a pooled scratch row spanning the tile,
// so the working set per output row is tileWidth accumulators.
func verticalPassScalar[T lane, J accum](src []T, srcStride int, dst []T, dstStride, height, radius, startX, endX int) {
	edge := J(radius + 1)
	weight := 1 / float32(2*radius+1)
	tile := endX - startX

	acc := pool.Get[J](tile)
	defer pool.Put(acc)

	// Seed every column: the top sample weighted radius+1, plus the first
	// radius rows (clamped for short images).
	for i, x := 0, startX; x < endX; i, x = i+1, x+1 {
		a := J(src[x]) * edge
		for y := 1; y <= radius; y++ {
			a += J(src[min(y, height-1)*srcStride+x])
		}
		acc[i] = a
	}

	for y := 0; y < height; y++ {
		nextRow := min(y+radius+1, height-1) * srcStride
		prevRow := max(y-radius, 0) * srcStride
		dstRow := y * dstStride

		for i, x := 0, startX; x < endX; i, x = i+1, x+1 {
			a := acc[i]
			dst[dstRow+x] = toStorage[T](float32(a) * weight)
			a += J(src[nextRow+x])
			a -= J(src[prevRow+x])
			acc[i] = a
		}
	}
}
