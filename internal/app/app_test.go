package app

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Harrison-Blair/tabletop-notetaker/internal/audio"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/config"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/logger"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/transcript"
)

// fakeRecorder tracks lifecycle calls without touching any device.
type fakeRecorder struct {
	recording bool
	lastPath  string
	stopPath  string
	stopErr   error
}

func (f *fakeRecorder) Start(ctx context.Context, outputPath string) error {
	if f.recording {
		return audio.ErrAlreadyRecording
	}
	f.recording = true
	f.lastPath = outputPath
	f.stopPath = outputPath
	return nil
}

func (f *fakeRecorder) Stop() (string, error) {
	if !f.recording {
		return "", audio.ErrNotRecording
	}
	f.recording = false
	return f.stopPath, f.stopErr
}

func (f *fakeRecorder) Duration() float64 { return 1.5 }
func (f *fakeRecorder) IsRecording() bool { return f.recording }

type fakeProducer struct {
	result transcript.Transcript
}

func (f *fakeProducer) Produce(ctx context.Context, audioPath string) transcript.Transcript {
	t := f.result
	t.FilePath = audioPath
	return t
}

func newTestApp(t *testing.T, rec *fakeRecorder, prod *fakeProducer) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.Recordings = filepath.Join(t.TempDir(), "recordings")
	cfg.Paths.Notes = filepath.Join(t.TempDir(), "notes")
	return New(cfg, rec, prod, logger.NewWithWriter("error", io.Discard))
}

func meetingResult() transcript.Transcript {
	return transcript.Transcript{
		Duration: 30,
		Segments: []transcript.Segment{
			{Speaker: "Alice", Text: "Hello everyone, let's start the meeting.", Confidence: 0.8},
			{Speaker: "Bob", Text: "I think we should discuss the new project timeline.", Confidence: 0.8},
		},
	}
}

func TestStartRecordingAutoName(t *testing.T) {
	rec := &fakeRecorder{}
	a := newTestApp(t, rec, &fakeProducer{})

	path, err := a.StartRecording(context.Background(), "")
	if err != nil {
		t.Fatalf("StartRecording() error = %v", err)
	}

	if filepath.Dir(path) != a.cfg.Paths.Recordings {
		t.Errorf("auto-named recording in %q, want %q", filepath.Dir(path), a.cfg.Paths.Recordings)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "recording_") || !strings.HasSuffix(base, ".wav") {
		t.Errorf("auto name = %q, want recording_<timestamp>.wav", base)
	}
	if rec.lastPath != path {
		t.Errorf("recorder received %q, want %q", rec.lastPath, path)
	}
}

func TestRecordingLifecycle(t *testing.T) {
	rec := &fakeRecorder{}
	a := newTestApp(t, rec, &fakeProducer{})

	path, err := a.StartRecording(context.Background(), "out.wav")
	if err != nil {
		t.Fatalf("StartRecording() error = %v", err)
	}
	if path != "out.wav" {
		t.Errorf("path = %q, want out.wav", path)
	}

	status := a.GetStatus()
	if !status.IsRecording || status.CurrentFile != "out.wav" {
		t.Errorf("status = %+v, want recording out.wav", status)
	}

	if _, err := a.StartRecording(context.Background(), "other.wav"); err != audio.ErrAlreadyRecording {
		t.Errorf("second StartRecording() error = %v, want ErrAlreadyRecording", err)
	}

	got, err := a.StopRecording()
	if err != nil {
		t.Fatalf("StopRecording() error = %v", err)
	}
	if got != "out.wav" {
		t.Errorf("StopRecording() = %q, want out.wav", got)
	}

	status = a.GetStatus()
	if status.IsRecording || len(status.Recordings) != 1 {
		t.Errorf("status after stop = %+v", status)
	}
}

func TestStopRecordingWhenIdle(t *testing.T) {
	a := newTestApp(t, &fakeRecorder{}, &fakeProducer{})

	if _, err := a.StopRecording(); err != audio.ErrNotRecording {
		t.Errorf("StopRecording() error = %v, want ErrNotRecording", err)
	}
}

func TestTranscribeAudioMissingFile(t *testing.T) {
	a := newTestApp(t, &fakeRecorder{}, &fakeProducer{})

	if _, err := a.TranscribeAudio(context.Background(), "does-not-exist.wav"); err == nil {
		t.Error("TranscribeAudio() should fail for a missing file")
	}
}

func TestTranscribeAudio(t *testing.T) {
	a := newTestApp(t, &fakeRecorder{}, &fakeProducer{result: meetingResult()})

	path := filepath.Join(t.TempDir(), "meeting.wav")
	if err := os.WriteFile(path, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	tr, err := a.TranscribeAudio(context.Background(), path)
	if err != nil {
		t.Fatalf("TranscribeAudio() error = %v", err)
	}
	if len(tr.Segments) != 2 {
		t.Errorf("segments = %d, want 2", len(tr.Segments))
	}
	if tr.FilePath != path {
		t.Errorf("FilePath = %q, want %q", tr.FilePath, path)
	}
}

func TestSummarizeTranscriptContainsSpeakers(t *testing.T) {
	a := newTestApp(t, &fakeRecorder{}, &fakeProducer{})

	out := a.SummarizeTranscript(meetingResult(), "txt")
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "Bob") {
		t.Errorf("summary should name both speakers:\n%s", out)
	}
}

func TestSaveTranscriptFormats(t *testing.T) {
	a := newTestApp(t, &fakeRecorder{}, &fakeProducer{})
	tr := meetingResult()

	tests := []struct {
		format string
		check  func(t *testing.T, content string)
	}{
		{
			format: "txt",
			check: func(t *testing.T, content string) {
				if !strings.Contains(content, "[Alice]: Hello everyone") {
					t.Errorf("txt transcript missing segment line:\n%s", content)
				}
			},
		},
		{
			format: "md",
			check: func(t *testing.T, content string) {
				if !strings.Contains(content, "## Alice") {
					t.Errorf("md transcript missing speaker heading:\n%s", content)
				}
			},
		},
		{
			format: "json",
			check: func(t *testing.T, content string) {
				var decoded transcript.Transcript
				if err := json.Unmarshal([]byte(content), &decoded); err != nil {
					t.Fatalf("invalid JSON: %v", err)
				}
				if len(decoded.Segments) != 2 {
					t.Errorf("segments = %d, want 2", len(decoded.Segments))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			// Parent directories are created on demand.
			path := filepath.Join(t.TempDir(), "sub", "dir", "transcript."+tt.format)
			if err := a.SaveTranscript(tr, path, tt.format); err != nil {
				t.Fatalf("SaveTranscript() error = %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read saved transcript: %v", err)
			}
			tt.check(t, string(data))
		})
	}
}

func TestSaveAndLoadTranscriptRoundTrip(t *testing.T) {
	a := newTestApp(t, &fakeRecorder{}, &fakeProducer{})
	tr := meetingResult()

	path := filepath.Join(t.TempDir(), "transcript.txt")
	if err := a.SaveTranscript(tr, path, "txt"); err != nil {
		t.Fatalf("SaveTranscript() error = %v", err)
	}

	loaded, err := a.LoadTranscript(path)
	if err != nil {
		t.Fatalf("LoadTranscript() error = %v", err)
	}
	if len(loaded.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(loaded.Segments))
	}
	for i, seg := range loaded.Segments {
		if seg.Speaker != tr.Segments[i].Speaker || seg.Text != tr.Segments[i].Text {
			t.Errorf("segment %d = (%q, %q), want (%q, %q)",
				i, seg.Speaker, seg.Text, tr.Segments[i].Speaker, tr.Segments[i].Text)
		}
	}
	if loaded.Duration != 20 {
		t.Errorf("estimated duration = %v, want 20", loaded.Duration)
	}
}

func TestSaveSummaryText(t *testing.T) {
	a := newTestApp(t, &fakeRecorder{}, &fakeProducer{})

	path := filepath.Join(t.TempDir(), "notes", "summary.txt")
	if err := a.SaveSummary(meetingResult(), path, "txt"); err != nil {
		t.Fatalf("SaveSummary() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved summary: %v", err)
	}
	if !strings.Contains(string(data), "MEETING SUMMARY") {
		t.Errorf("summary missing header:\n%s", data)
	}
}

func TestSaveSummaryDocxEmptyTranscript(t *testing.T) {
	a := newTestApp(t, &fakeRecorder{}, &fakeProducer{})

	path := filepath.Join(t.TempDir(), "summary.docx")
	if err := a.SaveSummary(transcript.Transcript{}, path, "docx"); err == nil {
		t.Error("SaveSummary() should fail for an empty transcript in docx format")
	}
}

func TestProcessRecordingFailedTranscript(t *testing.T) {
	a := newTestApp(t, &fakeRecorder{}, &fakeProducer{
		result: transcript.Transcript{Err: "boom"},
	})

	path := filepath.Join(t.TempDir(), "meeting.wav")
	if err := os.WriteFile(path, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := a.ProcessRecording(context.Background(), path); err == nil {
		t.Error("ProcessRecording() should surface a failed transcription")
	}
}

func TestProcessRecording(t *testing.T) {
	a := newTestApp(t, &fakeRecorder{}, &fakeProducer{result: meetingResult()})

	path := filepath.Join(t.TempDir(), "standup.wav")
	if err := os.WriteFile(path, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := a.ProcessRecording(context.Background(), path); err != nil {
		t.Fatalf("ProcessRecording() error = %v", err)
	}

	for _, want := range []string{"standup_transcript.txt", "standup_summary.txt"} {
		if _, err := os.Stat(filepath.Join(a.cfg.Paths.Notes, want)); err != nil {
			t.Errorf("expected output %s: %v", want, err)
		}
	}
}
