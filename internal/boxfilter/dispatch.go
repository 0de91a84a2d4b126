package boxfilter

// kernels bundles the pass functions for one pixel type, channel count, and
// backend. The set is resolved once per invocation; the hot loops call
// through plain function values, never through interfaces.
type kernels[T Sample, J accum] struct {
	// horizontal blurs rows [startY, endY); see horizontalPassScalar.
	horizontal func(src []T, srcStride int, dst []T, dstStride, width, radius, cn, startY, endY int)
	// vertical blurs sample columns [startX, endX); see verticalPassScalar.
	vertical func(src []T, srcStride int, dst []T, dstStride, height, radius, startX, endX int)
	// ringSum emits one output row and slides the vertical window.
	ringSum func(oldest, newest, dst []T, acc []J, radius int)
	// primeSum adds one ring row into the column accumulators (warm-up only).
	primeSum func(row []T, acc []J)
	// ringSingleThread opts the type into the ring strategy even on a
	// single worker.
	ringSingleThread bool
}

// assign installs a concrete backend function into a generic kernel slot.
// The dynamic types always match by construction; the indirection exists
// because overrides are selected per pixel type at runtime.
func assign[F any](slot *F, fn any) {
	*slot = fn.(F)
}

// primeSumScalar adds a horizontally blurred row into the accumulators.
func primeSumScalar[T lane, J accum](row []T, acc []J) {
	for i := range acc {
		acc[i] += J(row[i])
	}
}

// kernelsFor resolves the kernel set for a native sample type: scalar
// baseline, then lane overrides when the CPU has usable vector units.
// The 4-channel horizontal override maps the channel group onto one lane
// group; other channel counts keep the scalar row kernel, whose window
// bookkeeping does not vectorise across a 1- or 3-sample group.
func kernelsFor[T lane, J accum](cn int) kernels[T, J] {
	k := kernels[T, J]{
		horizontal: horizontalPassScalar[T, J],
		vertical:   verticalPassScalar[T, J],
		ringSum:    ringRowSumScalar[T, J],
		primeSum:   primeSumScalar[T, J],
	}

	var zero T
	switch any(zero).(type) {
	case uint8:
		k.ringSingleThread = ringSingleThreadU8
		if useLanes {
			assign(&k.vertical, verticalPassVec[uint8])
			if useRDM {
				assign(&k.ringSum, ringRowSumFixedU8)
			} else {
				assign(&k.ringSum, ringRowSumVec[uint8])
			}
			if cn == 4 {
				assign(&k.horizontal, horizontalPassVec4[uint8])
			}
		}
	case uint16:
		k.ringSingleThread = ringSingleThreadU16
		if useLanes {
			assign(&k.vertical, verticalPassVec[uint16])
			assign(&k.ringSum, ringRowSumVec[uint16])
			if cn == 4 {
				assign(&k.horizontal, horizontalPassVec4[uint16])
			}
		}
	case float32:
		k.ringSingleThread = ringSingleThreadF32
		if useLanes {
			assign(&k.vertical, verticalPassVecF32)
			assign(&k.ringSum, ringRowSumVecF32)
			if cn == 4 {
				assign(&k.horizontal, horizontalPassVec4F32)
			}
		}
	}
	return k
}

// BackendName reports the selected lane backend, for diagnostics.
func BackendName() string {
	if !useLanes {
		return "scalar"
	}
	return laneBackend
}
