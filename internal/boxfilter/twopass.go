package boxfilter

import (
	"sync"

	"github.com/deepteams/fastblur/internal/pool"
)

// runTiled splits [0, count) into at most workers contiguous segments and
// runs fn on each, joining before it returns. The last segment absorbs the
// remainder. Workers own disjoint segments of the destination, so no
// locking is needed.
func runTiled(count, workers int, fn func(start, end int)) {
	if workers <= 1 || count < 2 {
		fn(0, count)
		return
	}
	if workers > count {
		workers = count
	}
	segment := count / workers

	var wg sync.WaitGroup
	for t := 0; t < workers; t++ {
		start := t * segment
		end := start + segment
		if t == workers-1 {
			end = count
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

// twoPass runs the horizontal pass into a pooled transient raster, joins,
// and then runs the vertical pass from the transient into dst. The
// horizontal pass tiles by rows, the vertical pass by sample columns. The
// transient uses its own tight stride regardless of the src/dst strides.
func twoPass[T Sample, J accum](src []T, srcStride int, dst []T, dstStride, width, height, cn, xRadius, yRadius, threads int, k kernels[T, J]) {
	tStride := width * cn
	transient := pool.Get[T](tStride * height)
	defer pool.Put(transient)

	runTiled(height, threads, func(startY, endY int) {
		k.horizontal(src, srcStride, transient, tStride, width, xRadius, cn, startY, endY)
	})

	runTiled(width*cn, threads, func(startX, endX int) {
		k.vertical(transient, tStride, dst, dstStride, height, yRadius, startX, endX)
	})
}
