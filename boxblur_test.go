package fastblur

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-highway/hwy"
)

// --- Helpers ---

func constImage[T Sample](w, h int, c Channels, px []T) *Image[T] {
	img := NewImage[T](w, h, c)
	cn := c.Count()
	for i := 0; i < len(img.Data); i += cn {
		copy(img.Data[i:i+cn], px)
	}
	return img
}

func checkConst[T Sample](t *testing.T, img *Image[T], px []T, tol float32, label string) {
	t.Helper()
	cn := img.Channels.Count()
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			for c := 0; c < cn; c++ {
				got := img.Data[y*img.Stride+x*cn+c]
				d := float32(got) - float32(px[c])
				if d < 0 {
					d = -d
				}
				if d > tol {
					t.Fatalf("%s: pixel (%d,%d) channel %d: got %v, want %v +-%v",
						label, x, y, c, got, px[c], tol)
				}
			}
		}
	}
}

func policies() map[string]ThreadingPolicy {
	return map[string]ThreadingPolicy{
		"single":   Single(),
		"adaptive": Adaptive(4),
	}
}

// --- Constant-image scenarios ---

func TestBoxBlurConstantU8(t *testing.T) {
	px := []uint8{126, 66, 77}
	for _, kernel := range []int{11, 141} { // radii 5 and 70
		for name, policy := range policies() {
			src := constImage(148, 148, Channels3, px)
			dst := NewImage[uint8](148, 148, Channels3)
			if err := BoxBlur(src, dst, NewBoxBlurParameters(kernel), policy); err != nil {
				t.Fatalf("kernel %d, %s: %v", kernel, name, err)
			}
			checkConst(t, dst, px, 3, name)
		}
	}
}

func TestBoxBlurConstantU16(t *testing.T) {
	px := []uint16{126, 66, 77}
	for _, kernel := range []int{11, 141} {
		for name, policy := range policies() {
			src := constImage(148, 148, Channels3, px)
			dst := NewImage[uint16](148, 148, Channels3)
			if err := BoxBlur(src, dst, NewBoxBlurParameters(kernel), policy); err != nil {
				t.Fatalf("kernel %d, %s: %v", kernel, name, err)
			}
			checkConst(t, dst, px, 3, name)
		}
	}
}

func TestBoxBlurConstantF32(t *testing.T) {
	px := []float32{0.532, 0.123, 0.654}
	for _, kernel := range []int{11, 141} {
		for name, policy := range policies() {
			src := constImage(148, 148, Channels3, px)
			dst := NewImage[float32](148, 148, Channels3)
			if err := BoxBlur(src, dst, NewBoxBlurParameters(kernel), policy); err != nil {
				t.Fatalf("kernel %d, %s: %v", kernel, name, err)
			}
			checkConst(t, dst, px, 1e-4, name)
		}
	}
}

func TestBoxBlurConstantF16(t *testing.T) {
	px := []hwy.Float16{
		hwy.Float32ToFloat16(0.5),
		hwy.Float32ToFloat16(0.25),
		hwy.Float32ToFloat16(0.75),
	}
	src := constImage(64, 64, Channels3, px)
	dst := NewImage[hwy.Float16](64, 64, Channels3)
	if err := BoxBlur(src, dst, NewBoxBlurParameters(7), Single()); err != nil {
		t.Fatal(err)
	}
	cn := 3
	for i, v := range dst.Data {
		want := px[i%cn].Float32()
		d := v.Float32() - want
		if d < -1e-3 || d > 1e-3 {
			t.Fatalf("sample %d: got %v, want %v", i, v.Float32(), want)
		}
	}
}

// --- Exact small cases ---

func TestBoxBlurSingleRow(t *testing.T) {
	src := &Image[uint8]{Data: []uint8{10, 20, 30, 40}, Stride: 4, Width: 4, Height: 1, Channels: Plane}
	dst := NewImage[uint8](4, 1, Plane)
	if err := BoxBlur(src, dst, NewBoxBlurParameters(3), Single()); err != nil {
		t.Fatal(err)
	}
	want := []uint8{13, 20, 30, 37}
	for i := range want {
		if dst.Data[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d (full: %v)", i, dst.Data[i], want[i], dst.Data)
		}
	}
}

func TestBoxBlurDegenerateAxes(t *testing.T) {
	// Blurring along a one-sample axis is the identity for any kernel, so
	// a 5x1 row and a 1x5 column with the same payload produce the same
	// values, however large the kernel on the degenerate axis.
	samples := []uint8{5, 90, 17, 200, 44}
	want := []uint8{33, 37, 102, 87, 96} // radius-1 means of the payload
	for _, kernel := range []int{3, 9, 101} {
		row := &Image[uint8]{Data: samples, Stride: 5, Width: 5, Height: 1, Channels: Plane}
		dstRow := NewImage[uint8](5, 1, Plane)
		if err := BoxBlur(row, dstRow, BoxBlurParameters{XAxisKernel: 3, YAxisKernel: kernel}, Single()); err != nil {
			t.Fatal(err)
		}
		col := &Image[uint8]{Data: samples, Stride: 1, Width: 1, Height: 5, Channels: Plane}
		dstCol := NewImage[uint8](1, 5, Plane)
		if err := BoxBlur(col, dstCol, BoxBlurParameters{XAxisKernel: kernel, YAxisKernel: 3}, Single()); err != nil {
			t.Fatal(err)
		}
		for i := range want {
			if dstRow.Data[i] != want[i] {
				t.Fatalf("kernel %d: row dst[%d] = %d, want %d", kernel, i, dstRow.Data[i], want[i])
			}
			if dstCol.Data[i] != want[i] {
				t.Fatalf("kernel %d: col dst[%d] = %d, want %d", kernel, i, dstCol.Data[i], want[i])
			}
		}
	}
}

func TestBoxBlurKernelOneCopies(t *testing.T) {
	rng := rand.New(rand.NewSource(50))
	src := NewImageWithStride[uint8](10, 6, 37, Channels3)
	for i := range src.Data {
		src.Data[i] = uint8(rng.Intn(256))
	}
	dst := NewImage[uint8](10, 6, Channels3)
	if err := BoxBlur(src, dst, NewBoxBlurParameters(1), Single()); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 6; y++ {
		for i := 0; i < 30; i++ {
			if dst.Data[y*dst.Stride+i] != src.Data[y*src.Stride+i] {
				t.Fatalf("row %d sample %d not copied", y, i)
			}
		}
	}
}

// --- Strategy equivalence through the public surface ---

func TestBoxBlurPoliciesAgree(t *testing.T) {
	// 600x400 resolves to one worker under Single (two-pass for u8) and
	// to several under Adaptive (ring): the strategies must agree.
	rng := rand.New(rand.NewSource(51))
	src := NewImage[uint8](600, 400, Channels4)
	for i := range src.Data {
		src.Data[i] = uint8(rng.Intn(256))
	}
	one := NewImage[uint8](600, 400, Channels4)
	many := NewImage[uint8](600, 400, Channels4)
	params := NewBoxBlurParameters(17)
	if err := BoxBlur(src, one, params, Single()); err != nil {
		t.Fatal(err)
	}
	if err := BoxBlur(src, many, params, Adaptive(0)); err != nil {
		t.Fatal(err)
	}
	for i := range one.Data {
		d := int(one.Data[i]) - int(many.Data[i])
		if d < -1 || d > 1 {
			t.Fatalf("sample %d: single %d vs adaptive %d", i, one.Data[i], many.Data[i])
		}
	}
}

// --- Boundedness ---

func TestBoxBlurBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(52))
	src := NewImage[uint8](64, 64, Plane)
	lo, hi := uint8(255), uint8(0)
	for i := range src.Data {
		v := uint8(40 + rng.Intn(150))
		src.Data[i] = v
		lo = min(lo, v)
		hi = max(hi, v)
	}
	dst := NewImage[uint8](64, 64, Plane)
	if err := BoxBlur(src, dst, NewBoxBlurParameters(9), Single()); err != nil {
		t.Fatal(err)
	}
	for i, v := range dst.Data {
		if v < lo || v > hi {
			t.Fatalf("sample %d: %d outside input range [%d, %d]", i, v, lo, hi)
		}
	}
}

// --- Validation ---

func TestBoxBlurValidation(t *testing.T) {
	src := NewImage[uint8](8, 8, Channels3)
	dst := NewImage[uint8](8, 8, Channels3)

	if err := BoxBlur(src, dst, NewBoxBlurParameters(4), Single()); !errors.Is(err, ErrOddKernel) {
		t.Fatalf("even kernel: got %v", err)
	}
	if err := BoxBlur(src, dst, BoxBlurParameters{XAxisKernel: 3, YAxisKernel: 0}, Single()); !errors.Is(err, ErrOddKernel) {
		t.Fatalf("zero kernel: got %v", err)
	}

	other := NewImage[uint8](9, 8, Channels3)
	if err := BoxBlur(src, other, NewBoxBlurParameters(3), Single()); !errors.Is(err, ErrImageSizeMismatch) {
		t.Fatalf("size mismatch: got %v", err)
	}
	plane := NewImage[uint8](8, 8, Plane)
	if err := BoxBlur(src, plane, NewBoxBlurParameters(3), Single()); !errors.Is(err, ErrImageSizeMismatch) {
		t.Fatalf("channel mismatch: got %v", err)
	}

	short := &Image[uint8]{Data: make([]uint8, 10), Stride: 24, Width: 8, Height: 8, Channels: Channels3}
	if err := BoxBlur(short, dst, NewBoxBlurParameters(3), Single()); !errors.Is(err, ErrStrideMismatch) {
		t.Fatalf("short data: got %v", err)
	}
	narrow := &Image[uint8]{Data: make([]uint8, 8*8*3), Stride: 20, Width: 8, Height: 8, Channels: Channels3}
	if err := BoxBlur(narrow, dst, NewBoxBlurParameters(3), Single()); !errors.Is(err, ErrStrideMismatch) {
		t.Fatalf("narrow stride: got %v", err)
	}
}

func TestThreadCount(t *testing.T) {
	if n := Single().threadCount(4096, 4096); n != 1 {
		t.Fatalf("single: %d", n)
	}
	if n := Adaptive(8).threadCount(64, 64); n != 1 {
		t.Fatalf("small image: %d", n)
	}
	if n := Adaptive(2).threadCount(4096, 4096); n != 2 {
		t.Fatalf("capped: %d", n)
	}
}
