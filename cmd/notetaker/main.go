package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Harrison-Blair/tabletop-notetaker/internal/app"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/audio"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/config"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/logger"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/recognizer"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/transcript"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/watcher"
	"github.com/Harrison-Blair/tabletop-notetaker/pkg/executor"
)

func main() {
	var (
		configPath string
		watchMode  bool
	)
	flag.StringVar(&configPath, "config", "config.yaml", "Path to YAML config file")
	flag.BoolVar(&watchMode, "watch", false, "Watch the recordings directory and auto-process new files")
	flag.Parse()

	ctx := context.Background()

	// .env is optional; real environments set the variables directly.
	_ = godotenv.Load()

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	exec := executor.New()
	rec := recognizer.New(cfg.Recognizer, apiKeys(), log)
	producer := transcript.NewProducer(rec, exec, log)
	recorder := audio.New(cfg.Capture, audio.NewDeviceSource(exec), log)
	a := app.New(cfg, recorder, producer, log)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	if watchMode {
		runWatch(ctx, cfg, a, log)
		return
	}

	runShell(ctx, a, log)
}

// loadConfig falls back to defaults when the default config file is absent;
// an explicitly named file must exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && path == "config.yaml" {
			return config.Default(), nil
		}
		return nil, err
	}
	return config.Load(path)
}

// apiKeys reads Gemini keys from the environment, comma-separated.
func apiKeys() []string {
	raw := os.Getenv("GEMINI_API_KEYS")
	if raw == "" {
		raw = os.Getenv("GEMINI_API_KEY")
	}

	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Recordings, cfg.Paths.Notes} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

func runWatch(ctx context.Context, cfg *config.Config, a *app.App, log logger.Logger) {
	w, err := watcher.New(cfg.Paths.Recordings, a.ProcessRecording, log, cfg.Watch.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Tabletop Notetaker watch mode")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Recordings)
	log.Info(ctx, "Notes: %s", cfg.Paths.Notes)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Tabletop Notetaker stopped")
}

func runShell(ctx context.Context, a *app.App, log logger.Logger) {
	fmt.Println("=== Tabletop Notetaker ===")
	showHelp()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("notetaker> ")
		if !scanner.Scan() {
			break
		}

		parts := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "quit", "q":
			return
		case "record", "r":
			startRecording(ctx, a, parts[1:])
		case "stop", "s":
			stopRecording(a)
		case "transcribe", "t":
			if len(parts) < 2 {
				fmt.Println("Usage: transcribe <audio_file>")
				continue
			}
			transcribeFile(ctx, a, parts[1])
		case "summarize":
			if len(parts) < 2 {
				fmt.Println("Usage: summarize <transcript_file> [txt|md|json|docx]")
				continue
			}
			format := "txt"
			if len(parts) > 2 {
				format = parts[2]
			}
			summarizeFile(a, parts[1], format)
		case "list", "l":
			listRecordings(a)
		case "help", "h":
			showHelp()
		default:
			fmt.Println("Unknown command. Type 'help' for available commands.")
		}
	}
}

func startRecording(ctx context.Context, a *app.App, args []string) {
	outputPath := ""
	if len(args) > 0 {
		outputPath = args[0]
	}

	path, err := a.StartRecording(ctx, outputPath)
	if err != nil {
		if errors.Is(err, audio.ErrAlreadyRecording) {
			fmt.Println("Already recording! Use 'stop' first.")
			return
		}
		fmt.Printf("Failed to start recording: %v\n", err)
		return
	}
	fmt.Printf("Recording started: %s (use 'stop' to finish)\n", path)
}

func stopRecording(a *app.App) {
	path, err := a.StopRecording()
	if err != nil {
		if errors.Is(err, audio.ErrNotRecording) {
			fmt.Println("No active recording to stop.")
			return
		}
		fmt.Printf("Failed to stop recording: %v\n", err)
		return
	}
	if path == "" {
		fmt.Println("Recording stopped; nothing captured.")
		return
	}
	fmt.Printf("Recording saved to: %s (%.1fs)\n", path, a.RecordingDuration())
}

func transcribeFile(ctx context.Context, a *app.App, audioPath string) {
	fmt.Printf("Transcribing: %s\n", audioPath)

	t, err := a.TranscribeAudio(ctx, audioPath)
	if err != nil {
		fmt.Printf("Transcription failed: %v\n", err)
		return
	}
	if t.Failed() {
		fmt.Printf("Transcription failed: %s\n", t.Err)
		return
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	transcriptPath := base + "_transcript.txt"
	if err := a.SaveTranscript(t, transcriptPath, "txt"); err != nil {
		fmt.Printf("Failed to save transcript: %v\n", err)
		return
	}
	fmt.Printf("Transcript saved to: %s\n", transcriptPath)
}

func summarizeFile(a *app.App, transcriptPath, format string) {
	t, err := a.LoadTranscript(transcriptPath)
	if err != nil {
		fmt.Printf("Failed to read transcript: %v\n", err)
		return
	}

	switch format {
	case "txt", "md", "json", "docx":
	default:
		format = "txt"
	}

	outputPath := "meeting_summary." + format
	if err := a.SaveSummary(t, outputPath, format); err != nil {
		fmt.Printf("Summary generation failed: %v\n", err)
		return
	}
	fmt.Printf("Summary saved to: %s\n", outputPath)
}

func listRecordings(a *app.App) {
	status := a.GetStatus()
	if status.IsRecording {
		fmt.Printf("Currently recording: %s\n", status.CurrentFile)
	}
	if len(status.Recordings) == 0 {
		fmt.Println("No recordings yet.")
		return
	}
	fmt.Println("Recordings this session:")
	for i, rec := range status.Recordings {
		fmt.Printf("  %d. %s\n", i+1, rec)
	}
}

func showHelp() {
	fmt.Println("Commands:")
	fmt.Println("  record [file]        - Start recording (auto-named when omitted)")
	fmt.Println("  stop                 - Stop recording")
	fmt.Println("  transcribe <file>    - Transcribe audio file")
	fmt.Println("  summarize <file> [f] - Summarize transcript file (txt/md/json/docx)")
	fmt.Println("  list                 - List recordings")
	fmt.Println("  help                 - Show this help")
	fmt.Println("  quit                 - Exit")
	fmt.Println()
}
