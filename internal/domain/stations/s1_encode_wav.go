package stations

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"math"

	"voicebank/internal/ports"
)

// S1EncodeWAV turns a raw sample buffer into the canonical stored form:
// RIFF/WAVE, mono, 16-bit PCM little-endian, the input sample rate preserved.
// The canonical form is what gets fingerprinted, so the encoding itself is
// part of a submission's identity.
type S1EncodeWAV struct {
	maxBytes int
}

func NewS1EncodeWAV(maxBytes int) *S1EncodeWAV {
	return &S1EncodeWAV{maxBytes: maxBytes}
}

const (
	channels       = 1
	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8
	wavHeaderSize  = 44
)

func (s *S1EncodeWAV) Run(samples []float64, sampleRate int) ([]byte, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: empty sample buffer", ports.ErrInvalidAudio)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ports.ErrInvalidAudio, sampleRate)
	}

	// Coarse fast-reject before encoding; the authoritative check is on the
	// encoded payload below.
	if len(samples)*bytesPerSample > s.maxBytes {
		return nil, fmt.Errorf("%w: %d raw samples", ports.ErrAudioTooLarge, len(samples))
	}

	dataSize := len(samples) * bytesPerSample
	byteRate := sampleRate * channels * bytesPerSample
	blockAlign := channels * bytesPerSample

	buf := &bytes.Buffer{}
	buf.Grow(wavHeaderSize + dataSize)

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(dataSize))

	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite sample", ports.ErrInvalidAudio)
		}
		_ = binary.Write(buf, binary.LittleEndian, pcm16(v))
	}

	wav := buf.Bytes()
	if len(wav) > s.maxBytes {
		return nil, fmt.Errorf("%w: encoded %d bytes, cap %d", ports.ErrAudioTooLarge, len(wav), s.maxBytes)
	}

	log.Printf("[S1][OK] samples=%d rate=%d wav_bytes=%d", len(samples), sampleRate, len(wav))
	return wav, nil
}

// pcm16 clips to [-1, 1] and scales to a signed 16-bit sample.
func pcm16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}
