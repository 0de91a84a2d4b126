package fastblur

import (
	"math"

	"github.com/deepteams/fastblur/internal/boxfilter"
	"github.com/deepteams/fastblur/internal/pool"
)

// createBoxGauss derives n box radii whose cascade approximates a gaussian
// of the given sigma, using the standard central-limit decomposition: the
// ideal width is split between m kernels of the lower odd width and n-m of
// the upper. Each width is then halved and re-forced odd before use; the
// cascade drivers have always run on these halved radii, and the narrower
// kernels are kept for numerical compatibility.
func createBoxGauss(sigma float32, n int) []int {
	nf := float64(n)
	s := float64(sigma)

	wIdeal := math.Sqrt(12*s*s/nf) + 1
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2

	wlf := float64(wl)
	mIdeal := (12*s*s - nf*wlf*wlf - 4*nf*wlf - 3*nf) / (-4*wlf - 4)
	m := int(math.Round(mIdeal))

	radii := make([]int, n)
	for i := range radii {
		w := wu
		if i < m {
			w = wl
		}
		r := w / 2
		if r%2 == 0 {
			r++
		}
		radii[i] = r
	}
	return radii
}

// TentBlur applies a tent blur: two cascaded box blurs, which together
// approximate a triangular (linear B-spline) kernel by the central limit
// theorem. The box widths are derived from the sigmas via createBoxGauss.
func TentBlur[T Sample](src, dst *Image[T], parameters CLTParameters, threading ThreadingPolicy) error {
	if err := validatePair(src, dst); err != nil {
		return err
	}
	if err := parameters.validate(); err != nil {
		return err
	}
	w, h, cn := src.Width, src.Height, src.Channels.Count()
	threads := threading.threadCount(w, h)

	tStride := w * cn
	transient := pool.Get[T](tStride * h)
	defer pool.Put(transient)

	rx := createBoxGauss(parameters.XSigma, 2)
	ry := createBoxGauss(parameters.YSigma, 2)

	boxfilter.Run(src.Data, src.Stride, transient, tStride, w, h, cn, rx[0], ry[0], threads)
	boxfilter.Run(transient, tStride, dst.Data, dst.Stride, w, h, cn, rx[1], ry[1], threads)
	return nil
}

// GaussianBoxBlur applies a gaussian approximation: three cascaded box
// blurs, which converge on a true gaussian by the central limit theorem.
// The passes bounce dst -> transient -> dst, so only one transient raster
// is needed.
func GaussianBoxBlur[T Sample](src, dst *Image[T], parameters CLTParameters, threading ThreadingPolicy) error {
	if err := validatePair(src, dst); err != nil {
		return err
	}
	if err := parameters.validate(); err != nil {
		return err
	}
	w, h, cn := src.Width, src.Height, src.Channels.Count()
	threads := threading.threadCount(w, h)

	tStride := w * cn
	transient := pool.Get[T](tStride * h)
	defer pool.Put(transient)

	rx := createBoxGauss(parameters.XSigma, 3)
	ry := createBoxGauss(parameters.YSigma, 3)

	boxfilter.Run(src.Data, src.Stride, dst.Data, dst.Stride, w, h, cn, rx[0], ry[0], threads)
	boxfilter.Run(dst.Data, dst.Stride, transient, tStride, w, h, cn, rx[1], ry[1], threads)
	boxfilter.Run(transient, tStride, dst.Data, dst.Stride, w, h, cn, rx[2], ry[2], threads)
	return nil
}
