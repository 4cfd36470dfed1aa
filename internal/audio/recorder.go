package audio

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrAlreadyRecording is returned by Start when a session is active.
	ErrAlreadyRecording = errors.New("already recording")
	// ErrNotRecording is returned by Stop when no session is active.
	ErrNotRecording = errors.New("not recording")
)

// session holds the state of one Start/Stop pair. Sessions are independent;
// nothing is shared between consecutive recordings.
type session struct {
	id         string
	outputPath string
	stream     Stream
	cancel     context.CancelFunc
	done       chan struct{}
	// frames is written exclusively by the capture loop and must only be
	// read after done is closed.
	frames [][]byte
}

func (r *implRecorder) Start(ctx context.Context, outputPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session != nil {
		return ErrAlreadyRecording
	}

	stream, err := r.source.Open(ctx, r.cfg)
	if err != nil {
		return err
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s := &session{
		id:         uuid.NewString(),
		outputPath: outputPath,
		stream:     stream,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	r.session = s
	r.chunks.Store(0)

	go r.captureLoop(loopCtx, s)

	r.logger.Info(ctx, "Recording started (session %s)", s.id)
	return nil
}

// captureLoop is the only writer of the session frame buffer. It checks for
// cancellation once per chunk read and exits on the first device error,
// keeping whatever was captured so far.
func (r *implRecorder) captureLoop(ctx context.Context, s *session) {
	defer close(s.done)

	chunkBytes := r.cfg.ChunkSize * r.cfg.Channels * 2 // 16-bit samples

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		chunk := make([]byte, chunkBytes)
		if _, err := io.ReadFull(s.stream, chunk); err != nil {
			if err != io.EOF && ctx.Err() == nil {
				r.logger.Error(ctx, "Recording error (session %s): %v", s.id, err)
			}
			return
		}
		s.frames = append(s.frames, chunk)
		r.chunks.Add(1)
	}
}

func (r *implRecorder) Stop() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session
	if s == nil {
		return "", ErrNotRecording
	}
	r.session = nil

	s.cancel()

	// Wait for the capture loop to fully exit before reading the frame
	// buffer. A stalled device read can hold the loop past the timeout,
	// so force-close the stream to unblock it and wait again.
	timeout := time.Duration(r.cfg.StopTimeoutSec) * time.Second
	select {
	case <-s.done:
	case <-time.After(timeout):
		r.logger.Warn(context.Background(), "Capture loop slow to stop, closing stream (session %s)", s.id)
	}
	s.stream.Close()
	<-s.done

	if s.outputPath == "" || len(s.frames) == 0 {
		return "", nil
	}

	if err := writeWAV(s.outputPath, r.cfg, s.frames); err != nil {
		return "", err
	}

	r.logger.Info(context.Background(), "Recording saved to: %s", s.outputPath)
	return s.outputPath, nil
}

func (r *implRecorder) Duration() float64 {
	chunks := r.chunks.Load()
	if chunks == 0 {
		return 0
	}
	return float64(chunks*int64(r.cfg.ChunkSize)) / float64(r.cfg.SampleRate)
}

func (r *implRecorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session != nil
}
