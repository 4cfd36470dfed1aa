package summary

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Harrison-Blair/tabletop-notetaker/internal/transcript"
)

// emptyMessage is returned for every format when there is nothing to
// summarize.
const emptyMessage = "No transcript content to summarize."

// Summarize extracts summary data from the transcript and renders it in the
// requested format (txt, md or json; anything else falls back to txt).
func Summarize(t transcript.Transcript, format string) string {
	if len(t.Segments) == 0 {
		return emptyMessage
	}

	data := Extract(t.Segments)

	switch format {
	case "md":
		return RenderMarkdown(data, t)
	case "json":
		return RenderJSON(data, t)
	default:
		return RenderText(data, t)
	}
}

// RenderText renders the summary as plain text. Sections with no content
// are omitted entirely.
func RenderText(data Data, t transcript.Transcript) string {
	var lines []string
	lines = append(lines, "MEETING SUMMARY")
	lines = append(lines, strings.Repeat("=", 50))
	lines = append(lines, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02 15:04:05")))
	lines = append(lines, fmt.Sprintf("Duration: %s seconds", formatDuration(t.Duration)))
	lines = append(lines, "")

	lines = append(lines, "PARTICIPANTS:")
	for _, speaker := range data.Speakers {
		lines = append(lines, fmt.Sprintf("  - %s", speaker))
	}
	lines = append(lines, "")

	if data.SummaryText != "" {
		lines = append(lines, "SUMMARY:")
		lines = append(lines, data.SummaryText)
		lines = append(lines, "")
	}

	if len(data.KeyPoints) > 0 {
		lines = append(lines, "KEY POINTS:")
		for i, point := range data.KeyPoints {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, point))
		}
		lines = append(lines, "")
	}

	if len(data.ActionItems) > 0 {
		lines = append(lines, "ACTION ITEMS:")
		for i, item := range data.ActionItems {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, item))
		}
		lines = append(lines, "")
	}

	if len(data.Keywords) > 0 {
		lines = append(lines, "TOPICS/KEYWORDS:")
		lines = append(lines, strings.Join(data.Keywords, ", "))
	}

	return strings.Join(lines, "\n")
}

// RenderMarkdown renders the summary as Markdown with the same section set
// as the text form.
func RenderMarkdown(data Data, t transcript.Transcript) string {
	var lines []string
	lines = append(lines, "# Meeting Summary")
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("**Date:** %s", time.Now().Format("2006-01-02 15:04:05")))
	lines = append(lines, fmt.Sprintf("**Duration:** %s seconds", formatDuration(t.Duration)))
	lines = append(lines, "")

	lines = append(lines, "## Participants")
	for _, speaker := range data.Speakers {
		lines = append(lines, fmt.Sprintf("- %s", speaker))
	}
	lines = append(lines, "")

	if data.SummaryText != "" {
		lines = append(lines, "## Summary")
		lines = append(lines, data.SummaryText)
		lines = append(lines, "")
	}

	if len(data.KeyPoints) > 0 {
		lines = append(lines, "## Key Points")
		for _, point := range data.KeyPoints {
			lines = append(lines, fmt.Sprintf("- %s", point))
		}
		lines = append(lines, "")
	}

	if len(data.ActionItems) > 0 {
		lines = append(lines, "## Action Items")
		for _, item := range data.ActionItems {
			lines = append(lines, fmt.Sprintf("- %s", item))
		}
		lines = append(lines, "")
	}

	if len(data.Keywords) > 0 {
		lines = append(lines, "## Topics/Keywords")
		lines = append(lines, strings.Join(data.Keywords, ", "))
	}

	return strings.Join(lines, "\n")
}

type jsonSummary struct {
	Metadata     jsonMetadata `json:"metadata"`
	Participants []string     `json:"participants"`
	Summary      string       `json:"summary"`
	KeyPoints    []string     `json:"key_points"`
	ActionItems  []string     `json:"action_items"`
	Keywords     []string     `json:"keywords"`
}

type jsonMetadata struct {
	Date     string  `json:"date"`
	Duration float64 `json:"duration"`
	FilePath string  `json:"file_path"`
}

// RenderJSON renders the summary as a single JSON object with fixed field
// names.
func RenderJSON(data Data, t transcript.Transcript) string {
	s := jsonSummary{
		Metadata: jsonMetadata{
			Date:     time.Now().Format(time.RFC3339),
			Duration: t.Duration,
			FilePath: t.FilePath,
		},
		Participants: emptyAsList(data.Speakers),
		Summary:      data.SummaryText,
		KeyPoints:    emptyAsList(data.KeyPoints),
		ActionItems:  emptyAsList(data.ActionItems),
		Keywords:     emptyAsList(data.Keywords),
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		// Marshalling plain strings cannot fail; keep the signature simple.
		return emptyMessage
	}
	return string(out)
}

// emptyAsList keeps empty sections as [] rather than null in JSON output.
func emptyAsList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// formatDuration prints whole seconds without a decimal point and keeps
// full precision otherwise.
func formatDuration(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
