package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ProcessRecording runs the whole pipeline on one audio file: transcribe,
// save the transcript, then save the summary in the configured format.
// Used as the watch-mode handler.
func (a *App) ProcessRecording(ctx context.Context, audioPath string) error {
	startTime := time.Now()

	a.logger.Info(ctx, "========================================")
	a.logger.Info(ctx, "Processing recording: %s", audioPath)
	a.logger.Info(ctx, "========================================")

	t, err := a.TranscribeAudio(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}
	if t.Failed() {
		return fmt.Errorf("transcription failed: %s", t.Err)
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	transcriptPath := filepath.Join(a.cfg.Paths.Notes, base+"_transcript.txt")
	if err := a.SaveTranscript(t, transcriptPath, "txt"); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}

	format := a.cfg.Output.Format
	summaryPath := filepath.Join(a.cfg.Paths.Notes, base+"_summary."+format)
	if err := a.SaveSummary(t, summaryPath, format); err != nil {
		return fmt.Errorf("save summary: %w", err)
	}

	a.logger.Info(ctx, "Processing completed in %s", time.Since(startTime))
	a.logger.Info(ctx, "Transcript: %s", transcriptPath)
	a.logger.Info(ctx, "Summary: %s", summaryPath)
	return nil
}
