package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Harrison-Blair/tabletop-notetaker/internal/audio"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/config"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/logger"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/summary"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/transcript"
)

// App composes the recording, transcription and summarization pipeline
// behind the public operations the front ends call.
type App struct {
	cfg      *config.Config
	recorder audio.Recorder
	producer transcript.Producer
	logger   logger.Logger

	mu          sync.Mutex
	currentPath string
	recordings  []string
}

// Status is a snapshot of the recording state.
type Status struct {
	IsRecording bool
	CurrentFile string
	Recordings  []string
}

// New creates the application facade.
func New(cfg *config.Config, recorder audio.Recorder, producer transcript.Producer, log logger.Logger) *App {
	return &App{
		cfg:      cfg,
		recorder: recorder,
		producer: producer,
		logger:   log,
	}
}

// StartRecording begins capturing audio. When outputPath is empty, a
// timestamped file name under the recordings directory is generated.
// Returns the path the recording will be written to.
func (a *App) StartRecording(ctx context.Context, outputPath string) (string, error) {
	if outputPath == "" {
		name := fmt.Sprintf("recording_%s.wav", time.Now().Format("20060102_150405"))
		outputPath = filepath.Join(a.cfg.Paths.Recordings, name)
	}

	if err := a.recorder.Start(ctx, outputPath); err != nil {
		return "", err
	}

	a.mu.Lock()
	a.currentPath = outputPath
	a.mu.Unlock()
	return outputPath, nil
}

// StopRecording ends the session. The returned path is empty when nothing
// was captured; audio.ErrNotRecording and write failures are distinct
// errors so callers can tell "nothing happened" from "failed to persist".
func (a *App) StopRecording() (string, error) {
	path, err := a.recorder.Stop()
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	a.currentPath = ""
	if path != "" {
		a.recordings = append(a.recordings, path)
	}
	a.mu.Unlock()
	return path, nil
}

// TranscribeAudio transcribes an audio file. A missing file is a
// precondition error; collaborator failures are absorbed into the
// returned Transcript.
func (a *App) TranscribeAudio(ctx context.Context, audioPath string) (transcript.Transcript, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return transcript.Transcript{}, fmt.Errorf("audio file not found: %s", audioPath)
	}

	a.logger.Info(ctx, "Starting transcription...")
	return a.producer.Produce(ctx, audioPath), nil
}

// SummarizeTranscript renders a summary of the transcript in the requested
// format (txt, md or json; default txt).
func (a *App) SummarizeTranscript(t transcript.Transcript, format string) string {
	return summary.Summarize(t, format)
}

// SaveTranscript writes the rendered transcript to outputPath, creating
// parent directories as needed.
func (a *App) SaveTranscript(t transcript.Transcript, outputPath, format string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var content string
	switch format {
	case "json":
		rendered, err := transcript.RenderJSON(t)
		if err != nil {
			return err
		}
		content = rendered
	case "md":
		content = transcript.RenderMarkdown(t)
	default:
		content = transcript.RenderText(t)
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}

	a.logger.Info(context.Background(), "Transcript saved to: %s", outputPath)
	return nil
}

// SaveSummary writes the rendered summary to outputPath. On top of the
// text formats it supports docx export.
func (a *App) SaveSummary(t transcript.Transcript, outputPath, format string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if format == "docx" {
		if len(t.Segments) == 0 {
			return fmt.Errorf("no transcript content to summarize")
		}
		return summary.WriteDocx(summary.Extract(t.Segments), t, outputPath)
	}

	content := summary.Summarize(t, format)
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	a.logger.Info(context.Background(), "Summary saved to: %s", outputPath)
	return nil
}

// LoadTranscript reads a previously saved text transcript back into a
// structured form.
func (a *App) LoadTranscript(path string) (transcript.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return transcript.Transcript{}, fmt.Errorf("read transcript: %w", err)
	}
	return transcript.Parse(string(data)), nil
}

// RecordingDuration returns the length in seconds of the current or most
// recent capture.
func (a *App) RecordingDuration() float64 {
	return a.recorder.Duration()
}

// GetStatus returns the current recording status.
func (a *App) GetStatus() Status {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Status{
		IsRecording: a.recorder.IsRecording(),
		CurrentFile: a.currentPath,
		Recordings:  append([]string(nil), a.recordings...),
	}
}
