package stego

import (
	"testing"

	"github.com/Nerggg/audio-stego-core/models"
)

func TestCapacityBytesLSB(t *testing.T) {
	// 8000 samples -> 1000 bytes raw, minus the 4-byte margin.
	got := CapacityBytes(models.AlgoLSB, 8000, 0)
	if want := 996; got != want {
		t.Errorf("CapacityBytes(LSB, 8000) = %d, want %d", got, want)
	}
}

func TestCapacityBytesNeverNegative(t *testing.T) {
	for _, algo := range []models.Algorithm{models.AlgoLSB, models.AlgoEcho, models.AlgoPhase, models.AlgoDSSS} {
		got := CapacityBytes(algo, 0, 0)
		if got < 0 {
			t.Errorf("CapacityBytes(%s, 0) = %d, want >= 0", algo, got)
		}
	}
}

func TestCapacityBytesMonotonic(t *testing.T) {
	for _, algo := range []models.Algorithm{models.AlgoLSB, models.AlgoEcho, models.AlgoPhase, models.AlgoDSSS} {
		small := CapacityBytes(algo, 10000, 0)
		large := CapacityBytes(algo, 1000000, 0)
		if large < small {
			t.Errorf("%s: capacity decreased as buffer grew: %d -> %d", algo, small, large)
		}
	}
}

func TestCapacityAllFour(t *testing.T) {
	res := Capacity(1000000)
	if res.LSBBytes <= 0 || res.EchoBytes <= 0 || res.PhaseBytes <= 0 || res.DSSSBytes <= 0 {
		t.Errorf("expected all positive capacities for a large buffer, got %+v", res)
	}
}
