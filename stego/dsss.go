package stego

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/Nerggg/audio-stego-core/models"
)

// pnSequence deterministically derives a ±1 sequence of length n from
// models.DSSSSeed using a PCG64 generator seeded with that value, so
// encoder and decoder agree on the exact same bits. math/rand/v2's PCG
// is used directly (rather than a third-party PRNG) because the wire
// contract pins this specific algorithm and seeding procedure; any other
// generator would silently break interop even if individually correct.
func pnSequence(n int) []float64 {
	src := rand.NewPCG(models.DSSSSeed, 0)
	r := rand.New(src)
	pn := make([]float64, n)
	for i := range pn {
		if r.IntN(2) == 0 {
			pn[i] = -1
		} else {
			pn[i] = 1
		}
	}
	return pn
}

// dsssEncode spreads each bit across a models.DSSSFrameSize-sample frame
// starting at startOffset, adding +alpha*PN for a 1 bit and -alpha*PN for
// a 0 bit, clipped to int16. Truncates the bit count if the span would
// overrun the buffer.
func dsssEncode(samples []int16, bits []byte, startOffset int, alpha float64) int {
	frame := models.DSSSFrameSize
	nBits := len(bits)
	if maxFrames := (len(samples) - startOffset) / frame; nBits > maxFrames {
		nBits = maxFrames
	}
	if nBits <= 0 {
		return 0
	}

	pn := pnSequence(frame)
	for i := 0; i < nBits; i++ {
		base := startOffset + i*frame
		sign := -1.0
		if bits[i] != 0 {
			sign = 1.0
		}
		for k := 0; k < frame; k++ {
			v := float64(samples[base+k]) + sign*alpha*pn[k]
			samples[base+k] = clipInt16(v)
		}
	}
	return nBits
}

// dsssDecode correlates each successive frame of models.DSSSFrameSize
// samples against the PN sequence, outputting 1 when the correlation is
// non-negative, up to maxBits frames.
func dsssDecode(samples []int16, startOffset int, maxBits int) []byte {
	frame := models.DSSSFrameSize
	pn := pnSequence(frame)

	var bits []byte
	x := make([]float64, frame)
	for base := startOffset; base+frame <= len(samples) && len(bits) < maxBits; base += frame {
		for k, s := range samples[base : base+frame] {
			x[k] = float64(s)
		}
		corr := floats.Dot(x, pn) / float64(frame)
		if corr >= 0 {
			bits = append(bits, 1)
		} else {
			bits = append(bits, 0)
		}
	}
	return bits
}
