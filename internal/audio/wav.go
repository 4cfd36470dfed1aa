package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Harrison-Blair/tabletop-notetaker/internal/config"
)

// wavHeader is the canonical 44-byte RIFF/PCM header.
type wavHeader struct {
	RiffID        [4]byte // "RIFF"
	RiffSize      uint32  // 36 + data size
	WaveID        [4]byte // "WAVE"
	FmtID         [4]byte // "fmt "
	FmtSize       uint32  // 16 for PCM
	AudioFormat   uint16  // 1 = PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataID        [4]byte // "data"
	DataSize      uint32
}

// writeWAV encodes the captured frames as a 16-bit PCM WAV file,
// creating parent directories as needed.
func writeWAV(path string, cfg config.CaptureConfig, frames [][]byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	dataSize := 0
	for _, f := range frames {
		dataSize += len(f)
	}

	hdr := wavHeader{
		RiffSize:      uint32(36 + dataSize),
		FmtSize:       16,
		AudioFormat:   1,
		NumChannels:   uint16(cfg.Channels),
		SampleRate:    uint32(cfg.SampleRate),
		ByteRate:      uint32(cfg.SampleRate * cfg.Channels * 2),
		BlockAlign:    uint16(cfg.Channels * 2),
		BitsPerSample: 16,
		DataSize:      uint32(dataSize),
	}
	copy(hdr.RiffID[:], "RIFF")
	copy(hdr.WaveID[:], "WAVE")
	copy(hdr.FmtID[:], "fmt ")
	copy(hdr.DataID[:], "data")

	var buf bytes.Buffer
	buf.Grow(44 + dataSize)
	if err := binary.Write(&buf, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("encode WAV header: %w", err)
	}
	for _, f := range frames {
		buf.Write(f)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write WAV file: %w", err)
	}
	return nil
}

// readWAVHeader decodes the header of a WAV file. Used by tests and the
// duration fallback path.
func readWAVHeader(path string) (wavHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return wavHeader{}, err
	}
	defer f.Close()

	var hdr wavHeader
	if err := binary.Read(f, binary.LittleEndian, &hdr); err != nil {
		return wavHeader{}, fmt.Errorf("decode WAV header: %w", err)
	}
	if string(hdr.RiffID[:]) != "RIFF" || string(hdr.WaveID[:]) != "WAVE" {
		return wavHeader{}, fmt.Errorf("not a RIFF/WAVE file: %s", path)
	}
	return hdr, nil
}

// WAVDuration returns the audio length in seconds of a PCM WAV file.
func WAVDuration(path string) (float64, error) {
	hdr, err := readWAVHeader(path)
	if err != nil {
		return 0, err
	}
	if hdr.ByteRate == 0 {
		return 0, fmt.Errorf("invalid WAV byte rate: %s", path)
	}
	return float64(hdr.DataSize) / float64(hdr.ByteRate), nil
}
