package stego

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/Nerggg/audio-stego-core/models"
)

const phaseOneSidedBins = models.PhaseSegmentSize/2 + 1 // 129

// phaseEncode partitions samples[startOffset:] into non-overlapping
// segments of models.PhaseSegmentSize, embedding up to
// models.PhaseBitsPerSeg bits per segment as ±π/2 phase on bins
// [start_bin, start_bin+8). A final short segment is skipped. Returns
// how many bits were embedded.
func phaseEncode(samples []int16, startOffset int, bits []byte) int {
	seg := models.PhaseSegmentSize
	embedded := 0
	for base := startOffset; base+seg <= len(samples) && embedded < len(bits); base += seg {
		n := len(bits) - embedded
		if n > models.PhaseBitsPerSeg {
			n = models.PhaseBitsPerSeg
		}
		if models.PhaseStartBin+n > phaseOneSidedBins {
			n = phaseOneSidedBins - models.PhaseStartBin
		}
		if n <= 0 {
			break
		}

		x := make([]float64, seg)
		for i, s := range samples[base : base+seg] {
			x[i] = float64(s)
		}
		spectrum := fft.FFTReal(x)
		mag, phase := oneSidedMagPhase(spectrum)

		for k := 0; k < n; k++ {
			j := models.PhaseStartBin + k
			if mag[j] < models.PhaseMinMagnitude {
				mag[j] = models.PhaseMinMagnitude
			}
			if bits[embedded+k] == 0 {
				phase[j] = -math.Pi / 2
			} else {
				phase[j] = math.Pi / 2
			}
		}

		full := rebuildSpectrum(mag, phase, seg)
		rec := fft.IFFT(full)
		for i := 0; i < seg; i++ {
			samples[base+i] = clipInt16(real(rec[i]))
		}

		embedded += n
	}
	return embedded
}

// phaseDecode reads up to maxBits bits, models.PhaseBitsPerSeg per
// segment, from successive segments of models.PhaseSegmentSize samples
// starting at startOffset.
func phaseDecode(samples []int16, startOffset int, maxBits int) []byte {
	seg := models.PhaseSegmentSize
	var bits []byte
	for base := startOffset; base+seg <= len(samples) && len(bits) < maxBits; base += seg {
		x := make([]float64, seg)
		for i, s := range samples[base : base+seg] {
			x[i] = float64(s)
		}
		spectrum := fft.FFTReal(x)
		_, phase := oneSidedMagPhase(spectrum)

		for k := 0; k < models.PhaseBitsPerSeg && len(bits) < maxBits; k++ {
			j := models.PhaseStartBin + k
			if j >= phaseOneSidedBins {
				break
			}
			if phase[j] > 0 {
				bits = append(bits, 1)
			} else {
				bits = append(bits, 0)
			}
		}
	}
	return bits
}

// oneSidedMagPhase extracts the magnitude and phase of bins [0, N/2] of a
// full-length complex spectrum produced from a real signal of length N.
func oneSidedMagPhase(spectrum []complex128) (mag, phase []float64) {
	mag = make([]float64, phaseOneSidedBins)
	phase = make([]float64, phaseOneSidedBins)
	for j := 0; j < phaseOneSidedBins; j++ {
		mag[j] = cmplx.Abs(spectrum[j])
		phase[j] = cmplx.Phase(spectrum[j])
	}
	return mag, phase
}

// rebuildSpectrum reconstructs a full-length conjugate-symmetric complex
// spectrum of size n from a one-sided magnitude/phase pair.
func rebuildSpectrum(mag, phase []float64, n int) []complex128 {
	full := make([]complex128, n)
	for j := 0; j < phaseOneSidedBins; j++ {
		full[j] = cmplx.Rect(mag[j], phase[j])
		if j != 0 && j != n/2 {
			full[n-j] = cmplx.Conj(full[j])
		}
	}
	return full
}
