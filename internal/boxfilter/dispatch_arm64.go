//go:build arm64

package boxfilter

import "golang.org/x/sys/cpu"

// NEON is baseline on arm64. RDM (rounding doubling multiply) selects the
// fixed-point u8 ring row sum.
var (
	useLanes    = true
	useRDM      = cpu.ARM64.HasASIMDRDM
	laneBackend = "neon"
)

const (
	ringSingleThreadU8  = false
	ringSingleThreadU16 = false
	ringSingleThreadF32 = true
)
