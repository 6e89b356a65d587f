package stego

import (
	"testing"

	"github.com/Nerggg/audio-stego-core/models"
)

func TestDSSSEncodeDecodeRoundTrip(t *testing.T) {
	nBits := 6
	samples := synthCover(nBits * models.DSSSFrameSize)
	bits := []byte{1, 0, 1, 1, 0, 1}

	n := dsssEncode(samples, bits, 0, models.DSSSAlpha)
	if n != nBits {
		t.Fatalf("dsssEncode embedded %d bits, want %d", n, nBits)
	}

	got := dsssDecode(samples, 0, nBits)
	if len(got) != nBits {
		t.Fatalf("dsssDecode returned %d bits, want %d", len(got), nBits)
	}
	for i := range bits {
		if got[i] != bits[i] {
			t.Errorf("bit %d = %d, want %d", i, got[i], bits[i])
		}
	}
}

func TestPNSequenceDeterministic(t *testing.T) {
	a := pnSequence(1000)
	b := pnSequence(1000)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pnSequence not deterministic at index %d: %v vs %v", i, a[i], b[i])
		}
		if a[i] != 1 && a[i] != -1 {
			t.Fatalf("pnSequence[%d] = %v, want +-1", i, a[i])
		}
	}
}

func TestDSSSEncodeTruncatesToCapacity(t *testing.T) {
	samples := make([]int16, models.DSSSFrameSize*2)
	bits := make([]byte, 5)
	n := dsssEncode(samples, bits, 0, models.DSSSAlpha)
	if n != 2 {
		t.Errorf("dsssEncode embedded %d bits, want 2 (buffer-limited)", n)
	}
}
