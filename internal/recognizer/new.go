package recognizer

import (
	"github.com/Harrison-Blair/tabletop-notetaker/internal/config"
	"github.com/Harrison-Blair/tabletop-notetaker/internal/logger"
)

type implRecognizer struct {
	apiKeys    []string
	currentKey int
	cfg        config.RecognizerConfig
	logger     logger.Logger
}

// New creates a Recognizer that rotates through the supplied Gemini API keys.
func New(cfg config.RecognizerConfig, apiKeys []string, log logger.Logger) Recognizer {
	return &implRecognizer{
		apiKeys: apiKeys,
		cfg:     cfg,
		logger:  log,
	}
}
