package stego

import "testing"

func TestLSBEncodeDecodeRoundTrip(t *testing.T) {
	samples := make([]int16, 200)
	for i := range samples {
		samples[i] = int16(i * 3)
	}
	bits := []byte{1, 0, 1, 1, 0, 0, 1, 0, 1, 1}

	lsbEncode(samples, bits, 50)
	got := lsbDecode(samples, 50)[:len(bits)]
	for i := range bits {
		if got[i] != bits[i] {
			t.Errorf("bit %d = %d, want %d", i, got[i], bits[i])
		}
	}
}

func TestLSBEncodeTruncatesAtBufferEnd(t *testing.T) {
	samples := make([]int16, 10)
	bits := make([]byte, 20)
	// Must not panic even though bits overruns the buffer past startIndex.
	lsbEncode(samples, bits, 5)
}

func TestLSBEncodeNoOpPastEnd(t *testing.T) {
	samples := make([]int16, 10)
	orig := append([]int16(nil), samples...)
	lsbEncode(samples, []byte{1, 1, 1}, 20)
	for i := range samples {
		if samples[i] != orig[i] {
			t.Errorf("sample %d modified despite startIndex past buffer end", i)
		}
	}
}
