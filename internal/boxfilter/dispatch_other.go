//go:build !amd64 && !arm64

package boxfilter

// No vector units assumed on other architectures; everything runs scalar.
var (
	useLanes    = false
	useRDM      = false
	laneBackend = "scalar"
)

const (
	ringSingleThreadU8  = false
	ringSingleThreadU16 = true
	ringSingleThreadF32 = true
)
