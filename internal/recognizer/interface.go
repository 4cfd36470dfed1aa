package recognizer

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnintelligible reports that the engine could not make out any speech
// in the audio.
var ErrUnintelligible = errors.New("could not understand audio")

// ServiceError reports a failure of the recognition service itself,
// as opposed to unusable audio.
type ServiceError struct {
	Detail string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("recognition service error: %s", e.Detail)
}

// Recognizer converts a whole audio file into plain text in a single call.
type Recognizer interface {
	Recognize(ctx context.Context, audioPath string) (string, error)
}
