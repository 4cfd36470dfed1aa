package transcript

import "time"

// Segment is one attributed span of speech. Speaker labels come from
// recognition-path heuristics, not voice identity, so the same person may
// carry different labels across segments.
type Segment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`
	Text    string  `json:"text"`
	// Confidence is in [0,1]; 0 marks a synthetic or error segment.
	Confidence float64 `json:"confidence"`
}

// Transcript is the output of one recording. Segments are ordered by
// production, which is not guaranteed to be sorted by start time.
// A failed transcription still yields a valid Transcript with Err set
// and no segments.
type Transcript struct {
	FilePath  string    `json:"file_path"`
	Duration  float64   `json:"duration"`
	Timestamp time.Time `json:"timestamp"`
	Segments  []Segment `json:"segments"`
	Err       string    `json:"error,omitempty"`
}

// Failed reports whether the transcript carries a transcription failure
// rather than content.
func (t Transcript) Failed() bool {
	return t.Err != ""
}
