package fastblur

import "github.com/deepteams/fastblur/internal/boxfilter"

// BoxBlur applies a separable box blur to src and writes the result to dst.
// Both kernel sizes must be odd; the per-axis radius is max(1, kernel/2).
// Samples outside the image are replaced by the nearest edge sample.
//
// Convergence is very fast, so a strong effect applies with small kernels.
// The cost per pixel is O(1), independent of the kernel sizes.
//
// A kernel of 1 on both axes copies src to dst unchanged.
func BoxBlur[T Sample](src, dst *Image[T], parameters BoxBlurParameters, threading ThreadingPolicy) error {
	if err := validatePair(src, dst); err != nil {
		return err
	}
	if err := parameters.validate(); err != nil {
		return err
	}
	if parameters.XAxisKernel == 1 && parameters.YAxisKernel == 1 {
		src.copyTo(dst)
		return nil
	}
	threads := threading.threadCount(src.Width, src.Height)
	boxfilter.Run(src.Data, src.Stride, dst.Data, dst.Stride,
		src.Width, src.Height, src.Channels.Count(),
		parameters.xRadius(), parameters.yRadius(), threads)
	return nil
}

// Backend reports the kernel backend the engine selected for this CPU,
// for diagnostics ("scalar", "sse4.1", "avx2", "neon").
func Backend() string {
	return boxfilter.BackendName()
}
