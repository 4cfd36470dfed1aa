package audio

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/Harrison-Blair/tabletop-notetaker/internal/config"
	"github.com/Harrison-Blair/tabletop-notetaker/pkg/executor"
)

// Source opens a raw PCM stream for a recording session.
type Source interface {
	Open(ctx context.Context, cfg config.CaptureConfig) (Stream, error)
}

// Stream delivers raw 16-bit little-endian PCM bytes.
type Stream interface {
	io.ReadCloser
}

type deviceSource struct {
	executor executor.Executor
}

// NewDeviceSource creates a Source backed by an external capture command
// (arecord by default) streaming raw S16LE samples on stdout.
func NewDeviceSource(exec executor.Executor) Source {
	return &deviceSource{executor: exec}
}

func (d *deviceSource) Open(ctx context.Context, cfg config.CaptureConfig) (Stream, error) {
	// arecord arguments for raw capture
	// -q: quiet
	// -t raw: no container, samples only
	// -f S16_LE: 16-bit little-endian PCM
	// -r: sample rate
	// -c: channel count
	// -: write to stdout
	args := []string{
		"-q",
		"-t", "raw",
		"-f", "S16_LE",
		"-r", strconv.Itoa(cfg.SampleRate),
		"-c", strconv.Itoa(cfg.Channels),
		"-",
	}

	stream, err := d.executor.Stream(ctx, cfg.Command, args...)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}

	return stream, nil
}
