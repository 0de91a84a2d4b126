package boxfilter

// horizontalPassScalar box blurs rows [startY, endY) of src into the same
// rows of dst. The window is clamped to [0, width) at both ends, replicating
// the edge pixel. Four unrolled accumulators cover the channel groups; the
// interior of the row runs without index clamping.
func horizontalPassScalar[T lane, J accum](src []T, srcStride int, dst []T, dstStride, width, radius, cn, startY, endY int) {
	edge := J(radius + 1)
	weight := 1 / float32(2*radius+1)

	for y := startY; y < endY; y++ {
		srcRow := src[y*srcStride : y*srcStride+width*cn]
		dstRow := dst[y*dstStride : y*dstStride+width*cn]

		// Seed: the centre sample plus radius replicated left-edge samples,
		// then the first radius real samples (clamped for narrow rows).
		var acc0, acc1, acc2, acc3 J
		acc0 = J(srcRow[0]) * edge
		if cn > 1 {
			acc1 = J(srcRow[1]) * edge
		}
		if cn > 2 {
			acc2 = J(srcRow[2]) * edge
		}
		if cn == 4 {
			acc3 = J(srcRow[3]) * edge
		}
		for k := 1; k <= radius; k++ {
			px := min(k, width-1) * cn
			acc0 += J(srcRow[px])
			if cn > 1 {
				acc1 += J(srcRow[px+1])
			}
			if cn > 2 {
				acc2 += J(srcRow[px+2])
			}
			if cn == 4 {
				acc3 += J(srcRow[px+3])
			}
		}

		emit := func(x, next, prev int) {
			px := x * cn
			dstRow[px] = toStorage[T](float32(acc0) * weight)
			if cn > 1 {
				dstRow[px+1] = toStorage[T](float32(acc1) * weight)
			}
			if cn > 2 {
				dstRow[px+2] = toStorage[T](float32(acc2) * weight)
			}
			if cn == 4 {
				dstRow[px+3] = toStorage[T](float32(acc3) * weight)
			}
			// Add the entering sample before subtracting the leaving one,
			// in the same order as the lane backends, so float rounding
			// agrees between them.
			acc0 += J(srcRow[next])
			acc0 -= J(srcRow[prev])
			if cn > 1 {
				acc1 += J(srcRow[next+1])
				acc1 -= J(srcRow[prev+1])
			}
			if cn > 2 {
				acc2 += J(srcRow[next+2])
				acc2 -= J(srcRow[prev+2])
			}
			if cn == 4 {
				acc3 += J(srcRow[next+3])
				acc3 -= J(srcRow[prev+3])
			}
		}

		x := 0
		for ; x < min(radius, width); x++ {
			emit(x, min(x+radius+1, width-1)*cn, max(x-radius, 0)*cn)
		}
		if 2*radius+1 < width {
			// Interior: both window ends are in range.
			for ; x <= width-radius-2; x++ {
				emit(x, (x+radius+1)*cn, (x-radius)*cn)
			}
		}
		for ; x < width; x++ {
			emit(x, min(x+radius+1, width-1)*cn, max(x-radius, 0)*cn)
		}
	}
}
