package transcript

import "context"

// Producer converts an audio file into a Transcript.
type Producer interface {
	Produce(ctx context.Context, audioPath string) Transcript
}
