package transcript

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// RenderText renders the transcript dump: one "[<speaker>]: <text>" line per
// non-empty segment. The output round-trips through Parse.
func RenderText(t Transcript) string {
	var b strings.Builder
	b.WriteString("Meeting Transcript\n")
	fmt.Fprintf(&b, "Date: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	for _, s := range t.Segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "[%s]: %s\n", s.Speaker, text)
	}
	return b.String()
}

// RenderMarkdown renders the transcript dump grouped by speaker: a heading
// is emitted only when the speaker changes from the previous non-empty
// segment.
func RenderMarkdown(t Transcript) string {
	var b strings.Builder
	b.WriteString("# Meeting Transcript\n\n")
	fmt.Fprintf(&b, "**Date:** %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	currentSpeaker := ""
	for _, s := range t.Segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		if s.Speaker != currentSpeaker {
			fmt.Fprintf(&b, "\n## %s\n\n", s.Speaker)
			currentSpeaker = s.Speaker
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderJSON renders the full transcript object.
func RenderJSON(t Transcript) (string, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode transcript: %w", err)
	}
	return string(data), nil
}
