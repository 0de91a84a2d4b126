// Package fastblur provides a pure Go separable box blur engine with O(1)
// per-pixel complexity, independent of the blur radius.
//
// The engine maintains a sliding-window running sum per channel: advancing
// one sample adds the sample entering the window and subtracts the sample
// leaving it, so the cost per output pixel never depends on the kernel size.
// Two derived filters are built on top of the box engine by cascading passes
// (central limit theorem): a tent blur (two passes) and a gaussian
// approximation (three passes).
//
// The package supports:
//   - Pixel types uint8, uint16, float32, and IEEE half floats (hwy.Float16)
//   - Planar (1), RGB (3), and RGBA (4) channel layouts with explicit strides
//   - Edge replication (clamp-to-border) on both axes
//   - Single-threaded and adaptive multi-threaded execution
//   - Scalar and SIMD-lane backends selected at runtime
//
// Basic usage:
//
//	src := fastblur.NewImage[uint8](width, height, fastblur.Channels3)
//	dst := fastblur.NewImage[uint8](width, height, fastblur.Channels3)
//	err := fastblur.BoxBlur(src, dst,
//		fastblur.NewBoxBlurParameters(11),
//		fastblur.Adaptive(0))
package fastblur
