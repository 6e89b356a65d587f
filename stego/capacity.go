package stego

import "github.com/Nerggg/audio-stego-core/models"

// clampCapacity floors negative capacities at zero.
func clampCapacity(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// CapacityBytes returns the maximum payload size, in bytes, that
// algorithm algo can carry in a sample buffer of length n, under the
// given Echo chunk size (ignored for other algorithms). The -4 margin
// reserves headroom beyond the Smart Header layout, per spec.md §4.3.
func CapacityBytes(algo models.Algorithm, n int, echoChunkSize uint16) int {
	switch algo {
	case models.AlgoLSB:
		return clampCapacity(n/8 - 4)
	case models.AlgoEcho:
		chunk := int(echoChunkSize)
		if chunk <= 0 {
			chunk = int(models.DefaultEchoParams().ChunkSize)
		}
		return clampCapacity((n/chunk)/8 - 4)
	case models.AlgoPhase:
		return clampCapacity(n/models.PhaseSegmentSize - 4)
	case models.AlgoDSSS:
		return clampCapacity((n/models.DSSSFrameSize)/8 - 4)
	default:
		return 0
	}
}

// Capacity computes CapacityBytes for all four algorithms against a
// sample buffer of length n, using the default Echo chunk size.
func Capacity(n int) models.CapacityResult {
	echo := models.DefaultEchoParams()
	return models.CapacityResult{
		LSBBytes:   CapacityBytes(models.AlgoLSB, n, 0),
		EchoBytes:  CapacityBytes(models.AlgoEcho, n, echo.ChunkSize),
		PhaseBytes: CapacityBytes(models.AlgoPhase, n, 0),
		DSSSBytes:  CapacityBytes(models.AlgoDSSS, n, 0),
	}
}
