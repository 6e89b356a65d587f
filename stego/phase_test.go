package stego

import (
	"testing"

	"github.com/Nerggg/audio-stego-core/models"
)

func TestPhaseEncodeDecodeRoundTrip(t *testing.T) {
	segs := 4
	samples := synthCover(segs * models.PhaseSegmentSize)
	bits := []byte{1, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1}

	n := phaseEncode(samples, 0, bits)
	if n != len(bits) {
		t.Fatalf("phaseEncode embedded %d bits, want %d", n, len(bits))
	}

	got := phaseDecode(samples, 0, len(bits))
	mismatches := 0
	for i := range bits {
		if got[i] != bits[i] {
			mismatches++
		}
	}
	if mismatches > 0 {
		t.Errorf("phase round trip: %d/%d bits mismatched", mismatches, len(bits))
	}
}

func TestPhaseEncodeSkipsShortFinalSegment(t *testing.T) {
	samples := make([]int16, models.PhaseSegmentSize+10) // one full seg + a short remainder
	bits := make([]byte, models.PhaseBitsPerSeg*3)
	n := phaseEncode(samples, 0, bits)
	if n != models.PhaseBitsPerSeg {
		t.Errorf("phaseEncode embedded %d bits, want %d (one full segment only)", n, models.PhaseBitsPerSeg)
	}
}

func TestRebuildSpectrumConjugateSymmetric(t *testing.T) {
	n := models.PhaseSegmentSize
	mag := make([]float64, phaseOneSidedBins)
	phase := make([]float64, phaseOneSidedBins)
	for i := range mag {
		mag[i] = float64(i + 1)
		phase[i] = 0.3
	}
	full := rebuildSpectrum(mag, phase, n)
	for j := 1; j < n/2; j++ {
		got := full[n-j]
		want := complexConj(full[j])
		if got != want {
			t.Errorf("bin %d not conjugate of bin %d: got %v, want %v", n-j, j, got, want)
		}
	}
}

func complexConj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}
