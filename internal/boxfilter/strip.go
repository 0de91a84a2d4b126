package boxfilter

// Pixel-strip primitives shared by the lane backends: widening loads from
// the storage type into accumulator lanes and saturating rounded stores
// back. Strips are arbitrary runs of consecutive samples; the channel
// grouping is handled by the callers, which size strips as multiples of the
// channel count so a load never crosses a row.

// widenInt32 loads len(dst) consecutive samples into int32 lanes.
func widenInt32[T uint8 | uint16](dst []int32, src []T) {
	for i := range dst {
		dst[i] = int32(src[i])
	}
}

// storeRounded narrows float lanes into len(dst) samples of T with
// round-to-nearest-even and saturation.
func storeRounded[T lane](dst []T, lanes []float32) {
	for i := range dst {
		dst[i] = toStorage[T](lanes[i])
	}
}
