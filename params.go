package fastblur

// BoxBlurParameters holds the per-axis kernel sizes of a box blur.
// Both kernels must be odd.
type BoxBlurParameters struct {
	// XAxisKernel is the horizontal kernel size.
	XAxisKernel int
	// YAxisKernel is the vertical kernel size.
	YAxisKernel int
}

// NewBoxBlurParameters returns parameters with the same odd kernel on both axes.
func NewBoxBlurParameters(kernel int) BoxBlurParameters {
	return BoxBlurParameters{XAxisKernel: kernel, YAxisKernel: kernel}
}

func (p BoxBlurParameters) xRadius() int {
	return max(1, p.XAxisKernel/2)
}

func (p BoxBlurParameters) yRadius() int {
	return max(1, p.YAxisKernel/2)
}

func (p BoxBlurParameters) validate() error {
	if p.XAxisKernel <= 0 || p.XAxisKernel%2 == 0 {
		return errOddKernel(p.XAxisKernel)
	}
	if p.YAxisKernel <= 0 || p.YAxisKernel%2 == 0 {
		return errOddKernel(p.YAxisKernel)
	}
	return nil
}

// CLTParameters holds the per-axis sigmas of the central-limit-theorem
// based blurs (tent and gaussian approximation).
type CLTParameters struct {
	// XSigma is the horizontal gaussian sigma. Must be positive.
	XSigma float32
	// YSigma is the vertical gaussian sigma. Must be positive.
	YSigma float32
}

// NewCLTParameters returns parameters with the same sigma on both axes.
func NewCLTParameters(sigma float32) CLTParameters {
	return CLTParameters{XSigma: sigma, YSigma: sigma}
}

func (p CLTParameters) validate() error {
	if !(p.XSigma > 0) {
		return errSigma(p.XSigma)
	}
	if !(p.YSigma > 0) {
		return errSigma(p.YSigma)
	}
	return nil
}
