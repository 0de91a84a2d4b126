package boxfilter

import (
	"math/rand"
	"testing"
)

// The ring and two-pass strategies quantize the horizontally blurred rows
// identically, so with the same kernel set their outputs must match bit for
// bit on integer samples.

func TestRingMatchesTwoPassU8(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	k := scalarKernels[uint8, int32]()
	for _, tc := range []struct {
		width, height, cn, rx, ry, threads int
	}{
		{32, 24, 1, 2, 2, 1},
		{32, 24, 3, 3, 1, 1},
		{48, 48, 4, 4, 7, 3},
		{9, 60, 3, 1, 12, 4},
		{25, 7, 4, 6, 3, 2}, // tile height below the warm-up depth
	} {
		ws := tc.width * tc.cn
		src := randomRaster[uint8](rng, ws*tc.height, 255)

		ringDst := make([]uint8, ws*tc.height)
		ringBoxFilter(src, ws, ringDst, ws, tc.width, tc.height, tc.cn, tc.rx, tc.ry, tc.threads, k)

		twoDst := make([]uint8, ws*tc.height)
		twoPass(src, ws, twoDst, ws, tc.width, tc.height, tc.cn, tc.rx, tc.ry, tc.threads, k)

		sampleEqual(t, ringDst, twoDst, 0, "ring vs two-pass u8")
	}
}

func TestRingMatchesTwoPassU16(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	k := scalarKernels[uint16, int32]()
	const width, height, cn, rx, ry = 31, 29, 3, 4, 5
	ws := width * cn
	src := randomRaster[uint16](rng, ws*height, 65535)

	ringDst := make([]uint16, ws*height)
	ringBoxFilter(src, ws, ringDst, ws, width, height, cn, rx, ry, 2, k)

	twoDst := make([]uint16, ws*height)
	twoPass(src, ws, twoDst, ws, width, height, cn, rx, ry, 2, k)

	sampleEqual(t, ringDst, twoDst, 0, "ring vs two-pass u16")
}

func TestRingMatchesTwoPassF32(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	k := scalarKernels[float32, float32]()
	const width, height, cn, rx, ry = 28, 35, 4, 3, 6
	ws := width * cn
	src := randomRaster[float32](rng, ws*height, 1)

	ringDst := make([]float32, ws*height)
	ringBoxFilter(src, ws, ringDst, ws, width, height, cn, rx, ry, 2, k)

	twoDst := make([]float32, ws*height)
	twoPass(src, ws, twoDst, ws, width, height, cn, rx, ry, 2, k)

	// Float accumulation order differs between the strategies.
	sampleEqual(t, ringDst, twoDst, 1e-5, "ring vs two-pass f32")
}

// TestRingWarmUpBranches cross-checks the two warm-up shapes: a single tile
// starting at row 0 against many tiles whose interior warm-ups seed from
// clamped source rows. Both must produce identical output.
func TestRingWarmUpBranches(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	k := scalarKernels[uint8, int32]()
	for _, tc := range []struct {
		width, height, cn, rx, ry int
	}{
		{16, 40, 1, 1, 1},
		{20, 33, 3, 2, 4},
		{12, 50, 4, 3, 8},
	} {
		ws := tc.width * tc.cn
		src := randomRaster[uint8](rng, ws*tc.height, 255)

		single := make([]uint8, ws*tc.height)
		ringBoxFilter(src, ws, single, ws, tc.width, tc.height, tc.cn, tc.rx, tc.ry, 1, k)

		for _, threads := range []int{2, 3, 7} {
			tiled := make([]uint8, ws*tc.height)
			ringBoxFilter(src, ws, tiled, ws, tc.width, tc.height, tc.cn, tc.rx, tc.ry, threads, k)
			sampleEqual(t, tiled, single, 0, "warm-up branches")
		}
	}
}

func TestRingConstantImage(t *testing.T) {
	k := scalarKernels[uint8, int32]()
	const width, height, cn = 24, 24, 3
	ws := width * cn
	src := make([]uint8, ws*height)
	for i := range src {
		src[i] = 200
	}
	dst := make([]uint8, ws*height)
	ringBoxFilter(src, ws, dst, ws, width, height, cn, 5, 5, 2, k)
	for i, v := range dst {
		if v != 200 {
			t.Fatalf("sample %d: got %d, want 200", i, v)
		}
	}
}
