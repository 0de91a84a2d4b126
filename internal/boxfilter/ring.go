package boxfilter

import (
	"sync"

	"github.com/deepteams/fastblur/internal/pool"
)

// ringRowSumScalar emits one output row from the column accumulators and
// slides the vertical window down by one row: dst receives acc scaled by
// the window weight, then the newest ring row is added to acc and the
// oldest subtracted.
func ringRowSumScalar[T lane, J accum](oldest, newest []T, dst []T, acc []J, radius int) {
	weight := 1 / float32(2*radius+1)
	for i := range dst {
		a := acc[i]
		dst[i] = toStorage[T](float32(a) * weight)
		a += J(newest[i])
		a -= J(oldest[i])
		acc[i] = a
	}
}

// ringBoxFilter fuses the horizontal and vertical passes through a cyclic
// buffer of horizontally blurred rows. Each worker owns a contiguous tile
// of destination rows, a ring of 2*yRadius+2 row slots, and one accumulator
// row; tiles never overlap, so workers share nothing.
func ringBoxFilter[T Sample, J accum](src []T, srcStride int, dst []T, dstStride, width, height, cn, xRadius, yRadius, threads int, k kernels[T, J]) {
	tileRows := height
	if threads > 1 {
		tileRows = max(1, height/threads)
	}

	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += tileRows {
		y1 := min(y0+tileRows, height)
		if threads <= 1 {
			ringTile(src, srcStride, dst, dstStride, width, height, cn, xRadius, yRadius, y0, y1, k)
			continue
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			ringTile(src, srcStride, dst, dstStride, width, height, cn, xRadius, yRadius, y0, y1, k)
		}(y0, y1)
	}
	wg.Wait()
}

// ringTile produces destination rows [y0, y1).
//
// The ring holds ringSize = 2*yRadius+2 slots, one more than the vertical
// window. Before the main loop, slots 0..yRadius-1 are seeded with the
// horizontally blurred rows y0-yRadius .. y0-1 (clamped into the image), so
// the one-time priming sum of the first ringSize-1 slots equals the window
// of output row y0 exactly. The y0 = 0 seed therefore degenerates to
// replicas of row 0, making both warm-up shapes bit-identical.
func ringTile[T Sample, J accum](src []T, srcStride int, dst []T, dstStride, width, height, cn, xRadius, yRadius, y0, y1 int, k kernels[T, J]) {
	ws := width * cn
	ringSize := 2*yRadius + 2

	ring := pool.Get[T](ringSize * ws)
	defer pool.Put(ring)
	acc := pool.Get[J](ws)
	defer pool.Put(acc)
	clear(acc)

	hblurRowInto := func(srcY, slot int) {
		row := src[srcY*srcStride : srcY*srcStride+ws]
		k.horizontal(row, ws, ring[slot*ws:(slot+1)*ws], ws, width, xRadius, cn, 0, 1)
	}

	if y0 == 0 {
		// Top edge: every seed row clamps to row 0, so blur it once and
		// replicate.
		hblurRowInto(0, 0)
		row0 := ring[:ws]
		for slot := 1; slot < yRadius; slot++ {
			copy(ring[slot*ws:(slot+1)*ws], row0)
		}
	} else {
		for i := 0; i < yRadius; i++ {
			hblurRowInto(max(0, min(y0-yRadius+i, height-1)), i)
		}
	}

	slot := yRadius % ringSize
	warmedUp := false
	rows := y1 - y0

	for dy := 0; dy < rows+yRadius+1; dy++ {
		hblurRowInto(min(y0+dy, height-1), slot)

		if dy > yRadius {
			if !warmedUp {
				// One-time priming sum of the first ringSize-1 slots: the
				// warm-up rows plus the rows blurred so far, minus the one
				// just written for the next emission.
				for s := 0; s < ringSize-1; s++ {
					k.primeSum(ring[s*ws:(s+1)*ws], acc)
				}
				warmedUp = true
			}

			newest := ring[slot*ws : (slot+1)*ws]
			oldSlot := (slot + 1) % ringSize
			oldest := ring[oldSlot*ws : (oldSlot+1)*ws]

			oy := y0 + dy - yRadius - 1
			k.ringSum(oldest, newest, dst[oy*dstStride:oy*dstStride+ws], acc, yRadius)
		}

		slot = (slot + 1) % ringSize
	}
}
