package audio

import (
	"sync"
	"sync/atomic"

	"github.com/Harrison-Blair/tabletop-notetaker/internal/config"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/logger"
)

type implRecorder struct {
	cfg    config.CaptureConfig
	source Source
	logger logger.Logger

	mu      sync.Mutex
	session *session
	// chunks counts frames captured in the current or most recent session,
	// so Duration stays safe to call while the capture loop is running.
	chunks atomic.Int64
}

// New creates a Recorder that reads PCM chunks from the given source.
func New(cfg config.CaptureConfig, source Source, log logger.Logger) Recorder {
	return &implRecorder{
		cfg:    cfg,
		source: source,
		logger: log,
	}
}
