// Package metrics reports the quality of an encode (PSNR, fidelity of
// the carrier) and the accuracy of a decode (BER, bit error rate against
// a known-good reference). Neither measurement is part of the codec
// contract in spec.md. PSNR is surfaced to HTTP/CLI callers as an encode
// diagnostic, generalizing the teacher's byte-buffer PSNR helper to int16
// sample slices; BER is a library function that neither the HTTP nor the
// CLI layer calls.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// PSNR computes the peak signal-to-noise ratio, in dB, between an
// original and a modified sample buffer of equal length. Returns
// +Inf for a bit-identical pair, 0 if the lengths differ.
func PSNR(original, modified []int16) float64 {
	if len(original) != len(modified) || len(original) == 0 {
		return 0
	}

	diffs := make([]float64, len(original))
	for i := range original {
		diffs[i] = float64(original[i]) - float64(modified[i])
	}
	mse := stat.Mean(squareInPlace(diffs), nil)
	if mse == 0 {
		return math.Inf(1)
	}
	const maxValue = 32767.0
	return 20 * math.Log10(maxValue/math.Sqrt(mse))
}

func squareInPlace(v []float64) []float64 {
	for i, x := range v {
		v[i] = x * x
	}
	return v
}

// BER computes the bit error rate between two byte buffers of equal
// length: popcount(xor(a, b)) / (8*len(a)). Returns 1.0 (worst case) if
// the lengths differ.
func BER(a, b []byte) float64 {
	if len(a) != len(b) {
		return 1
	}
	if len(a) == 0 {
		return 0
	}

	var mismatches int
	for i := range a {
		mismatches += popcount(a[i] ^ b[i])
	}
	return float64(mismatches) / float64(8*len(a))
}

func popcount(b byte) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}
