package stego

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/Nerggg/audio-stego-core/models"
)

// clipInt16 saturates a float sample to the signed 16-bit range.
func clipInt16(v float64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// echoEncode partitions samples[startOffset:] into chunks of
// params.ChunkSize and, for each bit in bits, adds a single-tap echo at
// params.Delay0 (bit 0) or params.Delay1 (bit 1) scaled by alpha. It
// truncates the number of embedded bits if the span would overrun the
// buffer, returning how many bits were actually embedded.
func echoEncode(samples []int16, bits []byte, startOffset int, params models.EchoParams, alpha float64) int {
	chunk := int(params.ChunkSize)
	nBits := len(bits)
	if maxChunks := (len(samples) - startOffset) / chunk; nBits > maxChunks {
		nBits = maxChunks
	}
	if nBits <= 0 {
		return 0
	}

	for i := 0; i < nBits; i++ {
		base := startOffset + i*chunk
		delay := int(params.Delay0)
		if bits[i] != 0 {
			delay = int(params.Delay1)
		}
		// The echo kernel is a single spike of height alpha at lag
		// `delay`; convolving the chunk with it and keeping the first
		// chunk_size samples is equivalent to the shifted-and-scaled
		// add below, with no feedback and no wraparound.
		for n := chunk - 1; n >= delay; n-- {
			echo := alpha * float64(samples[base+n-delay])
			samples[base+n] = clipInt16(float64(samples[base+n]) + echo)
		}
	}
	return nBits
}

// echoDecode computes, for each successive chunk of params.ChunkSize
// samples starting at startOffset, the real cepstrum comparison between
// lags Delay0 and Delay1, up to maxBits chunks (or until the buffer runs
// out; a short final chunk is skipped).
func echoDecode(samples []int16, startOffset int, params models.EchoParams, maxBits int) []byte {
	chunk := int(params.ChunkSize)
	var bits []byte
	for base := startOffset; base+chunk <= len(samples) && len(bits) < maxBits; base += chunk {
		cep := realCepstrum(samples[base : base+chunk])
		d0, d1 := int(params.Delay0), int(params.Delay1)
		if d0 >= len(cep) || d1 >= len(cep) {
			break
		}
		if cep[d0] >= cep[d1] {
			bits = append(bits, 0)
		} else {
			bits = append(bits, 1)
		}
	}
	return bits
}

// realCepstrum computes c = Re(IFFT(log(|FFT(x)| + eps))) for a chunk of
// real samples, per spec.md §4.5.
func realCepstrum(samples []int16) []float64 {
	x := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = float64(s)
	}

	spectrum := fft.FFTReal(x)
	logmag := make([]complex128, len(spectrum))
	for i, c := range spectrum {
		mag := math.Hypot(real(c), imag(c)) + models.EchoCepstrumEpsilon
		logmag[i] = complex(math.Log(mag), 0)
	}

	inv := fft.IFFT(logmag)
	out := make([]float64, len(inv))
	for i, c := range inv {
		out[i] = real(c)
	}
	return out
}
