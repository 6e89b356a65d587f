// Package stego implements the audio steganography codec core: the
// Smart Header wire format, the capacity calculator, the four embedding
// schemes (LSB, Echo Hiding, Phase Coding, DSSS), and the orchestrator
// that dispatches between them. It is a pure function library over
// sample buffers — no file I/O, no network, no global state.
package stego

import (
	"log"

	"github.com/Nerggg/audio-stego-core/bitio"
	"github.com/Nerggg/audio-stego-core/models"
)

// bodySamplesNeeded returns how many samples, past HeaderOffset, the
// given algorithm needs to carry nBits payload bits.
func bodySamplesNeeded(algo models.Algorithm, nBits int, echo models.EchoParams) int {
	switch algo {
	case models.AlgoLSB:
		return nBits
	case models.AlgoEcho:
		return nBits * int(echo.ChunkSize)
	case models.AlgoPhase:
		segs := (nBits + models.PhaseBitsPerSeg - 1) / models.PhaseBitsPerSeg
		return segs * models.PhaseSegmentSize
	case models.AlgoDSSS:
		return nBits * models.DSSSFrameSize
	default:
		return 0
	}
}

// Encode copies samples, writes the Smart Header into the LSB of
// samples[0:120], and embeds payload into the copy starting at
// models.HeaderOffset using the algorithm named by cfg. It never
// modifies samples in place.
func Encode(samples []int16, payload []byte, cfg models.EncodeConfig) ([]int16, error) {
	if !cfg.Algorithm.IsValid() {
		return nil, models.NewUnknownAlgorithm(cfg.Algorithm)
	}
	if len(samples) < models.HeaderOffset {
		return nil, models.NewAudioTooShort(cfg.Algorithm, "buffer shorter than HEADER_OFFSET")
	}

	echo := cfg.ResolvedEcho()
	nBits := len(payload) * 8
	need := bodySamplesNeeded(cfg.Algorithm, nBits, echo)
	if models.HeaderOffset+need > len(samples) {
		return nil, models.NewCapacityExceeded(cfg.Algorithm, "payload exceeds capacity for this buffer length")
	}

	out := make([]int16, len(samples))
	copy(out, samples)

	var p1, p2, p3 uint16
	switch cfg.Algorithm {
	case models.AlgoEcho:
		p1, p2, p3 = echo.ChunkSize, echo.Delay0, echo.Delay1
	case models.AlgoPhase:
		p1, p2, p3 = models.PhaseSegmentSize, models.PhaseStartBin, 0
	case models.AlgoDSSS:
		p1, p2, p3 = models.DSSSFrameSize, 0, 0
	}

	header := buildHeader(models.SmartHeader{
		AlgoID:     cfg.Algorithm,
		P1:         p1,
		P2:         p2,
		P3:         p3,
		PayloadLen: uint32(len(payload)),
	})
	bitio.WriteLSB(out, 0, models.HeaderBits, bitio.UnpackBits(header[:]))

	bits := bitio.UnpackBits(payload)
	var embedded int
	switch cfg.Algorithm {
	case models.AlgoLSB:
		lsbEncode(out, bits, models.HeaderOffset)
		embedded = len(bits)
	case models.AlgoEcho:
		embedded = echoEncode(out, bits, models.HeaderOffset, echo, cfg.ResolvedEchoAlpha())
	case models.AlgoPhase:
		embedded = phaseEncode(out, models.HeaderOffset, bits)
	case models.AlgoDSSS:
		embedded = dsssEncode(out, bits, models.HeaderOffset, models.DSSSAlpha)
	}

	log.Printf("[INFO] stego/orchestrator: Encode algo=%s payload_bytes=%d bits_embedded=%d samples=%d",
		cfg.Algorithm, len(payload), embedded, len(samples))
	return out, nil
}

// Decode reads the Smart Header from the LSB of samples[0:120],
// dispatches to the matching decoder, and returns the recovered payload
// bytes along with the parsed header (useful for callers that want to
// report which algorithm was used).
func Decode(samples []int16) ([]byte, models.SmartHeader, error) {
	if len(samples) < models.HeaderOffset {
		return nil, models.SmartHeader{}, models.NewAudioTooShort(0, "buffer shorter than HEADER_OFFSET")
	}

	headerBits := bitio.ReadLSB(samples, 0, models.HeaderBits)
	header, err := parseHeader(bitio.PackBits(headerBits))
	if err != nil {
		return nil, models.SmartHeader{}, err
	}
	if !header.AlgoID.IsValid() {
		return nil, header, models.NewUnknownAlgorithm(header.AlgoID)
	}

	wantBits := int(header.PayloadLen) * 8
	var bits []byte
	switch header.AlgoID {
	case models.AlgoLSB:
		bits = lsbDecode(samples, models.HeaderOffset)
		if len(bits) > wantBits {
			bits = bits[:wantBits]
		}
	case models.AlgoEcho:
		bits = echoDecode(samples, models.HeaderOffset, header.EchoParams(), wantBits)
	case models.AlgoPhase:
		bits = phaseDecode(samples, models.HeaderOffset, wantBits)
	case models.AlgoDSSS:
		bits = dsssDecode(samples, models.HeaderOffset, wantBits)
	}

	if len(bits) < wantBits {
		log.Printf("[WARN] stego/orchestrator: Decode algo=%s produced %d/%d bits, zero-padding",
			header.AlgoID, len(bits), wantBits)
		padded := make([]byte, wantBits)
		copy(padded, bits)
		bits = padded
	} else if len(bits) > wantBits {
		bits = bits[:wantBits]
	}

	payload := bitio.PackBits(bits)
	log.Printf("[INFO] stego/orchestrator: Decode algo=%s payload_bytes=%d", header.AlgoID, len(payload))
	return payload, header, nil
}
