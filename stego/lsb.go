package stego

import "github.com/Nerggg/audio-stego-core/bitio"

// lsbEncode writes bits into the LSB of samples starting at startIndex,
// clipping to however many samples remain. It never writes outside
// samples[startIndex:].
func lsbEncode(samples []int16, bits []byte, startIndex int) {
	end := startIndex + len(bits)
	if end > len(samples) {
		end = len(samples)
	}
	if end <= startIndex {
		return
	}
	bitio.WriteLSB(samples, startIndex, end, bits[:end-startIndex])
}

// lsbDecode reads bit 0 of every sample from startIndex to the end of
// the buffer.
func lsbDecode(samples []int16, startIndex int) []byte {
	if startIndex >= len(samples) {
		return nil
	}
	return bitio.ReadLSB(samples, startIndex, len(samples))
}
