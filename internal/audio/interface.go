package audio

import "context"

// Recorder owns the recording lifecycle: it captures fixed-size PCM chunks
// from a source into an ordered frame buffer and can persist them as WAV.
type Recorder interface {
	// Start begins a recording session. outputPath may be empty, in which
	// case Stop will not persist anything. Fails with ErrAlreadyRecording
	// if a session is active.
	Start(ctx context.Context, outputPath string) error
	// Stop ends the session and, if an output path was supplied and at
	// least one chunk was captured, writes the WAV file and returns its
	// path. Returns ErrNotRecording when no session is active.
	Stop() (string, error)
	// Duration returns the captured audio length in seconds.
	Duration() float64
	IsRecording() bool
}
