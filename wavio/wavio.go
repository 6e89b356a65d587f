// Package wavio adapts the opaque "16-bit signed PCM mono sample array"
// contract the codec core expects (spec.md §6) to real WAV files on
// disk, via go-audio/wav. WAV file I/O is explicitly out of the codec
// core's scope — this package is the external collaborator spec.md
// describes only at interface, grounded on the same library pairing
// ausocean-av's FLAC-to-WAV bridge and mewkiz-flac use.
package wavio

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavPCMFormat = 1

// ReadMono reads a WAV file from r and returns its samples as mono
// 16-bit signed PCM, downmixing a multi-channel file to its first
// channel, along with the file's sample rate.
func ReadMono(r io.Reader) (samples []int16, sampleRate int, err error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		return nil, 0, fmt.Errorf("wavio: reader must support Seek")
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("wavio: not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: decode PCM buffer: %w", err)
	}
	if buf.SourceBitDepth != 16 {
		return nil, 0, fmt.Errorf("wavio: unsupported bit depth %d, want 16", buf.SourceBitDepth)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}
	n := len(buf.Data) / channels
	samples = make([]int16, n)
	for i := 0; i < n; i++ {
		samples[i] = int16(buf.Data[i*channels])
	}

	return samples, buf.Format.SampleRate, nil
}

// WriteMono writes samples as a mono 16-bit PCM WAV file at sampleRate
// to w.
func WriteMono(w io.WriteSeeker, samples []int16, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, 16, 1, wavPCMFormat)
	defer enc.Close()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode PCM buffer: %w", err)
	}
	return nil
}

// MemWriteSeeker is an in-memory io.WriteSeeker, for producing WAV bytes
// to hand back over HTTP instead of writing to a file on disk.
type MemWriteSeeker struct {
	buf []byte
	pos int
}

// Bytes returns the bytes written so far.
func (m *MemWriteSeeker) Bytes() []byte { return m.buf }

func (m *MemWriteSeeker) Write(p []byte) (int, error) {
	end := m.pos + len(p)
	if end > len(m.buf) {
		grown := make([]byte, end)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[m.pos:end], p)
	m.pos = end
	return len(p), nil
}

func (m *MemWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var newPos int
	switch whence {
	case io.SeekStart:
		newPos = int(offset)
	case io.SeekCurrent:
		newPos = m.pos + int(offset)
	case io.SeekEnd:
		newPos = len(m.buf) + int(offset)
	default:
		return 0, fmt.Errorf("wavio: invalid whence %d", whence)
	}
	if newPos < 0 {
		return 0, fmt.Errorf("wavio: negative seek position")
	}
	m.pos = newPos
	return int64(newPos), nil
}
