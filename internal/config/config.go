package config

import "fmt"

type Config struct {
	Capture    CaptureConfig    `yaml:"capture"`
	Recognizer RecognizerConfig `yaml:"recognizer"`
	Paths      PathsConfig      `yaml:"paths"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Watch      WatchConfig      `yaml:"watch"`
}

type CaptureConfig struct {
	SampleRate int `yaml:"sample_rate"`
	Channels   int `yaml:"channels"`
	ChunkSize  int `yaml:"chunk_size"`
	// Command is the external PCM source used for live capture.
	// It must write raw 16-bit little-endian samples to stdout.
	Command string `yaml:"command"`
	// StopTimeoutSec bounds how long Stop waits for the capture loop
	// to drain before force-closing the stream.
	StopTimeoutSec int `yaml:"stop_timeout_sec"`
}

type RecognizerConfig struct {
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
	Prompt   string `yaml:"prompt"`
}

type PathsConfig struct {
	Recordings string `yaml:"recordings"`
	Notes      string `yaml:"notes"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Capture.SampleRate < 0 {
		return fmt.Errorf("capture.sample_rate must not be negative")
	}
	if c.Capture.Channels < 0 {
		return fmt.Errorf("capture.channels must not be negative")
	}
	if c.Capture.ChunkSize < 0 {
		return fmt.Errorf("capture.chunk_size must not be negative")
	}
	switch c.Output.Format {
	case "", "txt", "md", "json", "docx":
	default:
		return fmt.Errorf("output.format must be one of txt, md, json, docx")
	}

	if c.Capture.SampleRate == 0 {
		c.Capture.SampleRate = 44100
	}
	if c.Capture.Channels == 0 {
		c.Capture.Channels = 1
	}
	if c.Capture.ChunkSize == 0 {
		c.Capture.ChunkSize = 1024
	}
	if c.Capture.Command == "" {
		c.Capture.Command = "arecord"
	}
	if c.Capture.StopTimeoutSec == 0 {
		c.Capture.StopTimeoutSec = 2
	}
	if c.Recognizer.Model == "" {
		c.Recognizer.Model = "gemini-2.5-flash"
	}
	if c.Recognizer.Language == "" {
		c.Recognizer.Language = "en-US"
	}
	if c.Paths.Recordings == "" {
		c.Paths.Recordings = "data/recordings"
	}
	if c.Paths.Notes == "" {
		c.Paths.Notes = "data/notes"
	}
	if c.Output.Format == "" {
		c.Output.Format = "txt"
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}

	return nil
}
