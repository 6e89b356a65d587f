package stego

import (
	"bytes"
	"testing"

	"github.com/Nerggg/audio-stego-core/models"
)

func encodeDecodeRoundTrip(t *testing.T, algo models.Algorithm, totalSamples int, payload []byte) {
	t.Helper()
	cover := synthCover(totalSamples)
	cfg := models.EncodeConfig{Algorithm: algo}

	stegoSamples, err := Encode(cover, payload, cfg)
	if err != nil {
		t.Fatalf("Encode(%s): %v", algo, err)
	}
	if len(stegoSamples) != len(cover) {
		t.Fatalf("Encode(%s) changed length: %d -> %d", algo, len(cover), len(stegoSamples))
	}

	got, header, err := Decode(stegoSamples)
	if err != nil {
		t.Fatalf("Decode(%s): %v", algo, err)
	}
	if header.AlgoID != algo {
		t.Errorf("decoded AlgoID = %s, want %s", header.AlgoID, algo)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("%s round trip = %v, want %v", algo, got, payload)
	}
}

func TestOrchestratorRoundTripLSB(t *testing.T) {
	encodeDecodeRoundTrip(t, models.AlgoLSB, 5000, []byte("hello, stego"))
}

func TestOrchestratorRoundTripEcho(t *testing.T) {
	encodeDecodeRoundTrip(t, models.AlgoEcho, 1000+16*2048, []byte{0xA5, 0x3C})
}

func TestOrchestratorRoundTripPhase(t *testing.T) {
	encodeDecodeRoundTrip(t, models.AlgoPhase, 1000+4*256, []byte{0xDE, 0xAD})
}

func TestOrchestratorRoundTripDSSS(t *testing.T) {
	encodeDecodeRoundTrip(t, models.AlgoDSSS, 1000+8*8192, []byte{0x7E})
}

func TestEncodeRejectsAudioTooShort(t *testing.T) {
	samples := synthCover(999)
	_, err := Encode(samples, []byte("x"), models.EncodeConfig{Algorithm: models.AlgoLSB})
	assertCodecErr(t, err, models.ErrKindAudioTooShort)
}

func TestEncodeRejectsUnknownAlgorithm(t *testing.T) {
	samples := synthCover(5000)
	_, err := Encode(samples, []byte("x"), models.EncodeConfig{Algorithm: 99})
	assertCodecErr(t, err, models.ErrKindUnknownAlgorithm)
}

func TestEncodeRejectsCapacityExceeded(t *testing.T) {
	samples := synthCover(1010) // 10 body samples -> room for ~1 byte of LSB payload
	payload := make([]byte, 100)
	_, err := Encode(samples, payload, models.EncodeConfig{Algorithm: models.AlgoLSB})
	assertCodecErr(t, err, models.ErrKindCapacityExceeded)
}

func TestDecodeRejectsCorruptHeader(t *testing.T) {
	samples := synthCover(5000)
	stegoSamples, err := Encode(samples, []byte("payload"), models.EncodeConfig{Algorithm: models.AlgoLSB})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	stegoSamples[0] ^= 1 // flip sample 0's LSB: the top bit of the first magic byte

	_, _, err = Decode(stegoSamples)
	assertCodecErr(t, err, models.ErrKindHeaderInvalid)
}

func TestDecodeZeroPadsOnShortBody(t *testing.T) {
	samples := synthCover(5000)
	stegoSamples, err := Encode(samples, []byte("0123456789"), models.EncodeConfig{Algorithm: models.AlgoLSB})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	truncated := stegoSamples[:models.HeaderOffset+40] // only 5 of 10 payload bytes survive
	payload, _, err := Decode(truncated)
	if err != nil {
		t.Fatalf("Decode(truncated): %v", err)
	}
	if len(payload) != 10 {
		t.Fatalf("Decode(truncated) payload len = %d, want 10 (zero-padded)", len(payload))
	}
	if !bytes.Equal(payload[:5], []byte("01234")) {
		t.Errorf("Decode(truncated) head = %v, want %v", payload[:5], []byte("01234"))
	}
}

func TestDecodeRejectsAudioTooShort(t *testing.T) {
	samples := synthCover(999)
	_, _, err := Decode(samples)
	assertCodecErr(t, err, models.ErrKindAudioTooShort)
}

func assertCodecErr(t *testing.T, err error, want models.ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error of kind %s, got nil", want)
	}
	ce, ok := err.(*models.CodecError)
	if !ok {
		t.Fatalf("expected *models.CodecError, got %T: %v", err, err)
	}
	if ce.Kind != want {
		t.Errorf("error kind = %s, want %s", ce.Kind, want)
	}
}
