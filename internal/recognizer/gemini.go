package recognizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

const transcribePrompt = `Transcribe the spoken audio verbatim in %s.
Return only the transcript text with no timestamps, labels or commentary.
If no intelligible speech is present, return an empty response.`

// Recognize sends the whole audio file to Gemini and returns the raw
// transcript text. Local read failures come back as plain errors; service
// failures as *ServiceError; silence as ErrUnintelligible.
func (r *implRecognizer) Recognize(ctx context.Context, audioPath string) (string, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	if len(r.apiKeys) == 0 {
		return "", &ServiceError{Detail: "no API keys configured"}
	}

	prompt := r.cfg.Prompt
	if prompt == "" {
		prompt = fmt.Sprintf(transcribePrompt, r.cfg.Language)
	}
	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{Text: prompt},
			{InlineData: &genai.Blob{MIMEType: audioMIMEType(audioPath), Data: data}},
		},
	}}

	attempts := len(r.apiKeys)
	var lastErr error

	for range attempts {
		key := r.apiKeys[r.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = err
			r.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, r.cfg.Model, contents, nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				r.logger.Warn(ctx, "Key %d rate limited, rotating...", r.currentKey+1)
				r.rotateKey()
				lastErr = err
				continue
			}
			return "", &ServiceError{Detail: errMsg}
		}

		text := collectText(result)
		if strings.TrimSpace(text) == "" {
			return "", ErrUnintelligible
		}
		return strings.TrimSpace(text), nil
	}

	return "", &ServiceError{Detail: fmt.Sprintf("all API keys exhausted: %v", lastErr)}
}

func (r *implRecognizer) rotateKey() {
	r.currentKey = (r.currentKey + 1) % len(r.apiKeys)
}

func collectText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}

func audioMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mp3"
	case ".flac":
		return "audio/flac"
	case ".ogg":
		return "audio/ogg"
	case ".m4a":
		return "audio/mp4"
	default:
		return "audio/wav"
	}
}
