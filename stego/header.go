package stego

import (
	"encoding/binary"
	"log"

	"github.com/Nerggg/audio-stego-core/models"
)

// buildHeader serializes h into the 15-byte little-endian wire layout:
// magic(2) algo_id(1) p1(2) p2(2) p3(2) payload_len(4) checksum(2).
func buildHeader(h models.SmartHeader) [models.HeaderSize]byte {
	var out [models.HeaderSize]byte
	out[0], out[1] = 's', 't'
	out[2] = byte(h.AlgoID)
	binary.LittleEndian.PutUint16(out[3:5], h.P1)
	binary.LittleEndian.PutUint16(out[5:7], h.P2)
	binary.LittleEndian.PutUint16(out[7:9], h.P3)
	binary.LittleEndian.PutUint32(out[9:13], h.PayloadLen)

	var sum uint16
	for _, b := range out[:13] {
		sum += uint16(b)
	}
	binary.LittleEndian.PutUint16(out[13:15], sum)
	return out
}

// parseHeader parses a 15-byte Smart Header. It never panics on any
// buffer of length >= models.HeaderSize, and rejects magic or checksum
// mismatches with a HeaderInvalid error.
func parseHeader(buf []byte) (models.SmartHeader, error) {
	if len(buf) < models.HeaderSize {
		return models.SmartHeader{}, models.NewHeaderInvalid("length", "buffer shorter than header")
	}
	buf = buf[:models.HeaderSize]

	if buf[0] != 's' || buf[1] != 't' {
		log.Printf("[WARN] stego/header: magic mismatch, got %q", buf[0:2])
		return models.SmartHeader{}, models.NewHeaderInvalid("magic", "expected 'st'")
	}

	var sum uint16
	for _, b := range buf[:13] {
		sum += uint16(b)
	}
	wantSum := binary.LittleEndian.Uint16(buf[13:15])
	if sum != wantSum {
		log.Printf("[WARN] stego/header: checksum mismatch, computed=%d wire=%d", sum, wantSum)
		return models.SmartHeader{}, models.NewHeaderInvalid("checksum", "mismatch")
	}

	return models.SmartHeader{
		AlgoID:     models.Algorithm(buf[2]),
		P1:         binary.LittleEndian.Uint16(buf[3:5]),
		P2:         binary.LittleEndian.Uint16(buf[5:7]),
		P3:         binary.LittleEndian.Uint16(buf[7:9]),
		PayloadLen: binary.LittleEndian.Uint32(buf[9:13]),
	}, nil
}
