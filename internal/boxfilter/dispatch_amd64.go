//go:build amd64

package boxfilter

import "golang.org/x/sys/cpu"

// Lane paths need SSE4.1 for the packed widen/narrow round trip to pay off;
// AVX2 only changes the effective lane count, which hwy picks up itself.
var (
	useLanes    = cpu.X86.HasSSE41
	useRDM      = false
	laneBackend = x86BackendName()
)

func x86BackendName() string {
	if cpu.X86.HasAVX2 {
		return "avx2"
	}
	return "sse4.1"
}

// Ring-strategy opt-in on a single worker, per pixel type. The u8 ring path
// loses to two-pass on one thread; u16 and f32 prefer the ring for its
// smaller transient.
const (
	ringSingleThreadU8  = false
	ringSingleThreadU16 = true
	ringSingleThreadF32 = true
)
