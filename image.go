package fastblur

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy"
)

// Sample constrains the pixel sample types the engine operates on. Half
// floats use hwy.Float16 as their storage type.
type Sample interface {
	uint8 | uint16 | float32 | hwy.Float16
}

// Channels describes the per-pixel channel layout of a raster.
type Channels int

const (
	// Plane is a single-channel (grayscale / planar) layout.
	Plane Channels = 1
	// Channels3 is an interleaved 3-channel layout (RGB, BGR, ...).
	Channels3 Channels = 3
	// Channels4 is an interleaved 4-channel layout (RGBA, BGRA, ...).
	Channels4 Channels = 4
)

// Count returns the number of samples per pixel.
func (c Channels) Count() int { return int(c) }

func (c Channels) valid() bool {
	return c == Plane || c == Channels3 || c == Channels4
}

// Image is a rectangular raster of samples. Rows are contiguous runs of
// Width*Channels samples; successive rows start Stride samples apart.
// The same type serves as blur source (read-only) and destination
// (written by the engine); source and destination strides may differ.
type Image[T Sample] struct {
	// Data holds at least Stride*(Height-1) + Width*Channels samples.
	Data []T
	// Stride is the distance between row starts, in samples.
	Stride int
	// Width and Height are the raster dimensions in pixels.
	Width  int
	Height int
	// Channels is the per-pixel channel layout.
	Channels Channels
}

// NewImage allocates an image with a tight stride (Width*Channels).
func NewImage[T Sample](width, height int, channels Channels) *Image[T] {
	stride := width * channels.Count()
	return &Image[T]{
		Data:     make([]T, stride*height),
		Stride:   stride,
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// NewImageWithStride allocates an image with an explicit row stride, which
// must be at least Width*Channels samples.
func NewImageWithStride[T Sample](width, height, stride int, channels Channels) *Image[T] {
	return &Image[T]{
		Data:     make([]T, stride*height),
		Stride:   stride,
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// checkLayout validates the image geometry against its backing slice.
func (img *Image[T]) checkLayout() error {
	if img.Width < 1 || img.Height < 1 {
		return fmt.Errorf("fastblur: image %dx%d has no pixels: %w",
			img.Width, img.Height, ErrImageSizeMismatch)
	}
	if !img.Channels.valid() {
		return fmt.Errorf("fastblur: channel count %d not in {1, 3, 4}: %w",
			int(img.Channels), ErrImageSizeMismatch)
	}
	rowLen := img.Width * img.Channels.Count()
	if img.Stride < rowLen {
		return fmt.Errorf("fastblur: stride %d shorter than row length %d: %w",
			img.Stride, rowLen, ErrStrideMismatch)
	}
	need := img.Stride*(img.Height-1) + rowLen
	if len(img.Data) < need {
		return fmt.Errorf("fastblur: data length %d shorter than layout requires (%d): %w",
			len(img.Data), need, ErrStrideMismatch)
	}
	return nil
}

// sizeMatches validates that dst can receive a blur of src.
func (img *Image[T]) sizeMatches(dst *Image[T]) error {
	if img.Width != dst.Width || img.Height != dst.Height {
		return fmt.Errorf("fastblur: source %dx%d vs destination %dx%d: %w",
			img.Width, img.Height, dst.Width, dst.Height, ErrImageSizeMismatch)
	}
	if img.Channels != dst.Channels {
		return fmt.Errorf("fastblur: source channels %d vs destination channels %d: %w",
			int(img.Channels), int(dst.Channels), ErrImageSizeMismatch)
	}
	return nil
}

// copyTo copies the pixel payload row by row, honouring both strides.
// Used by the kernel-size-1 short-circuit.
func (img *Image[T]) copyTo(dst *Image[T]) {
	rowLen := img.Width * img.Channels.Count()
	for y := 0; y < img.Height; y++ {
		copy(dst.Data[y*dst.Stride:y*dst.Stride+rowLen],
			img.Data[y*img.Stride:y*img.Stride+rowLen])
	}
}

func validatePair[T Sample](src, dst *Image[T]) error {
	if err := src.checkLayout(); err != nil {
		return err
	}
	if err := dst.checkLayout(); err != nil {
		return err
	}
	return src.sizeMatches(dst)
}
