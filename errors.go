package fastblur

import (
	"errors"
	"fmt"
)

// Errors returned by the blur entry points. All parameter and layout
// validation happens before any kernel runs; the kernels themselves cannot
// fail. Wrapped errors carry the offending values and can be matched with
// errors.Is against these sentinels.
var (
	// ErrOddKernel reports an even kernel size. Box kernels must be odd so
	// that the window is centred on the output pixel.
	ErrOddKernel = errors.New("fastblur: kernel size must be odd")

	// ErrNegativeOrZeroSigma reports a sigma that is not strictly positive.
	ErrNegativeOrZeroSigma = errors.New("fastblur: sigma must be positive")

	// ErrImageSizeMismatch reports source/destination images whose
	// dimensions or channel counts differ.
	ErrImageSizeMismatch = errors.New("fastblur: image size mismatch")

	// ErrStrideMismatch reports a row stride too small for the declared
	// width and channel count, or a data slice too short for the layout.
	ErrStrideMismatch = errors.New("fastblur: invalid stride or data length")
)

func errOddKernel(size int) error {
	return fmt.Errorf("fastblur: kernel size %d is even: %w", size, ErrOddKernel)
}

func errSigma(sigma float32) error {
	return fmt.Errorf("fastblur: sigma %g is not positive: %w", sigma, ErrNegativeOrZeroSigma)
}
