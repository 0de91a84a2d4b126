package boxfilter

// QFormat identifies a fixed-point fraction width used to encode the window
// weight 1/(2r+1) as an integer multiplier.
type QFormat int

const (
	Q0_7  QFormat = 7
	Q0_15 QFormat = 15
	Q0_31 QFormat = 31
)

// one returns the format's exact representation of 1.0.
func (q QFormat) one() int64 {
	return 1 << uint(q)
}

// reciprocalQ encodes 1/kernelSize in q with round-half-up.
func reciprocalQ(kernelSize int, q QFormat) int64 {
	return (q.one() + int64(kernelSize)/2) / int64(kernelSize)
}

// fixedKernel returns a uniform box kernel quantised into q. Naive rounding
// of the per-tap weight biases the coefficient sum away from the format's
// 1.0, which would shift the DC gain of the filter; the centre tap is
// nudged one ULP at a time until the sum is exact.
func fixedKernel(taps int, q QFormat) []int64 {
	w := reciprocalQ(taps, q)
	k := make([]int64, taps)
	for i := range k {
		k[i] = w
	}
	sum := w * int64(taps)
	centre := taps / 2
	for sum > q.one() {
		k[centre]--
		sum--
	}
	for sum < q.one() {
		k[centre]++
		sum++
	}
	return k
}

// ringRowSumFixedU8 is the fixed-point variant of the ring row sum for u8
// samples: the accumulator is scaled by the Q0.31 reciprocal with a
// round-half-up bias instead of a float multiply. The accumulator is never
// negative, so only the upper clamp is needed.
func ringRowSumFixedU8(oldest, newest, dst []uint8, acc []int32, radius int) {
	mul := reciprocalQ(2*radius+1, Q0_31)
	const bias = int64(1) << 30
	for i := range dst {
		a := acc[i]
		v := (int64(a)*mul + bias) >> 31
		if v > 255 {
			v = 255
		}
		dst[i] = uint8(v)
		acc[i] = a + int32(newest[i]) - int32(oldest[i])
	}
}
