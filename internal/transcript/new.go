package transcript

import (
	"github.com/Harrison-Blair/tabletop-notetaker/internal/logger"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/recognizer"
	"github.com/Harrison-Blair/tabletop-notetaker/pkg/executor"
)

type implProducer struct {
	recognizer recognizer.Recognizer
	executor   executor.Executor
	logger     logger.Logger
}

// NewProducer creates a Producer backed by the given recognition engine.
func NewProducer(rec recognizer.Recognizer, exec executor.Executor, log logger.Logger) Producer {
	return &implProducer{
		recognizer: rec,
		executor:   exec,
		logger:     log,
	}
}
