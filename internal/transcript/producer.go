package transcript

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Harrison-Blair/tabletop-notetaker/internal/audio"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/recognizer"
)

const (
	// defaultSpeaker labels the whole recording; single-label
	// pseudo-diarization is part of the behavioral contract.
	defaultSpeaker = "Speaker 1"
	// recognizedConfidence is a fixed estimate, not a true score.
	recognizedConfidence = 0.8
	// fallbackDuration is used when the source length cannot be probed.
	// Callers must treat segment spans built on it as approximate.
	fallbackDuration = 30.0
)

// Produce transcribes the whole audio file in a single recognition call and
// wraps the outcome as a Transcript. Collaborator failures are absorbed into
// synthetic segments; unexpected failures set Err. It never returns an error.
func (p *implProducer) Produce(ctx context.Context, audioPath string) Transcript {
	p.logger.Info(ctx, "Loading audio file: %s", audioPath)

	duration := p.probeDuration(ctx, audioPath)

	t := Transcript{
		FilePath:  audioPath,
		Duration:  duration,
		Timestamp: time.Now(),
	}

	text, err := p.recognizer.Recognize(ctx, audioPath)
	switch {
	case err == nil:
		t.Segments = []Segment{{
			Start:      0,
			End:        duration,
			Speaker:    defaultSpeaker,
			Text:       text,
			Confidence: recognizedConfidence,
		}}

	case errors.Is(err, recognizer.ErrUnintelligible):
		p.logger.Warn(ctx, "Could not understand audio: %s", audioPath)
		t.Segments = []Segment{{
			Start:      0,
			End:        duration,
			Speaker:    "Unknown",
			Text:       "[Inaudible]",
			Confidence: 0,
		}}

	default:
		var svcErr *recognizer.ServiceError
		if errors.As(err, &svcErr) {
			p.logger.Error(ctx, "Recognition service failed: %v", svcErr)
			t.Segments = []Segment{{
				Start:      0,
				End:        duration,
				Speaker:    "Error",
				Text:       fmt.Sprintf("[Transcription service error: %s]", svcErr.Detail),
				Confidence: 0,
			}}
			break
		}
		// Local failure (unreadable file and the like): a structurally
		// valid Transcript is still returned, carrying the error.
		p.logger.Error(ctx, "Transcription error: %v", err)
		t.Err = err.Error()
	}

	return t
}

// probeDuration asks ffprobe for the source length, falling back to the WAV
// header and finally to a fixed constant.
func (p *implProducer) probeDuration(ctx context.Context, audioPath string) float64 {
	out, err := p.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	)
	if err == nil {
		if d, perr := strconv.ParseFloat(strings.TrimSpace(out), 64); perr == nil && d > 0 {
			return d
		}
	}

	if strings.HasSuffix(strings.ToLower(audioPath), ".wav") {
		if d, werr := audio.WAVDuration(audioPath); werr == nil && d > 0 {
			return d
		}
	}

	p.logger.Debug(ctx, "Could not probe duration of %s, assuming %gs", audioPath, fallbackDuration)
	return fallbackDuration
}
