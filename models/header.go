package models

// Algorithm identifies which embedding scheme a Smart Header describes.
type Algorithm uint8

const (
	AlgoLSB   Algorithm = 1
	AlgoEcho  Algorithm = 2
	AlgoPhase Algorithm = 3
	AlgoDSSS  Algorithm = 4
)

// String returns the human-readable algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgoLSB:
		return "lsb"
	case AlgoEcho:
		return "echo"
	case AlgoPhase:
		return "phase"
	case AlgoDSSS:
		return "dsss"
	default:
		return "unknown"
	}
}

// IsValid reports whether a is one of the four defined algorithms.
func (a Algorithm) IsValid() bool {
	return a >= AlgoLSB && a <= AlgoDSSS
}

// HeaderSize is the wire size, in bytes, of a Smart Header.
const HeaderSize = 15

// HeaderBits is the number of LSB-carrying samples the header occupies.
const HeaderBits = HeaderSize * 8 // 120

// HeaderOffset is the first sample index the body codecs are allowed to touch.
const HeaderOffset = 1000

var magic = [2]byte{'s', 't'}

// SmartHeader is the 15-byte self-describing record written in the LSB of
// samples [0, 120) ahead of every encoded payload.
type SmartHeader struct {
	AlgoID     Algorithm
	P1, P2, P3 uint16
	PayloadLen uint32
}

// EchoParams maps the generic (P1, P2, P3) header fields onto the Echo
// Hiding scheme's named parameters.
type EchoParams struct {
	ChunkSize uint16
	Delay0    uint16
	Delay1    uint16
}

// DefaultEchoParams returns the spec-mandated Echo Hiding defaults.
func DefaultEchoParams() EchoParams {
	return EchoParams{ChunkSize: 2048, Delay0: 50, Delay1: 200}
}

// EchoParams returns h's (P1, P2, P3) reinterpreted as Echo parameters. Valid
// only when h.AlgoID == AlgoEcho.
func (h SmartHeader) EchoParams() EchoParams {
	return EchoParams{ChunkSize: h.P1, Delay0: h.P2, Delay1: h.P3}
}
