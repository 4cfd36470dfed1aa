package transcript

import "strings"

// estimatedSegmentSeconds is the assumed length of a parsed segment when
// reconstructing a transcript from its text rendering.
const estimatedSegmentSeconds = 10

// Parse reconstructs a Transcript from its text rendering. Each content
// line has the shape "[<speaker>]: <text>"; lines that do not match are
// ignored. Parsed segments carry placeholder timings and the duration is
// an estimate from the segment count.
func Parse(content string) Transcript {
	var segments []Segment

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		open := strings.Index(line, "[")
		if open == -1 {
			continue
		}
		closing := strings.Index(line[open:], "]:")
		if closing == -1 {
			continue
		}
		closing += open

		speaker := strings.TrimSpace(line[open+1 : closing])
		text := strings.TrimSpace(line[closing+2:])

		segments = append(segments, Segment{
			Speaker: speaker,
			Text:    text,
		})
	}

	return Transcript{
		Segments: segments,
		Duration: float64(len(segments) * estimatedSegmentSeconds),
	}
}
