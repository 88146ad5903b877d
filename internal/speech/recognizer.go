package speech

import "context"

// EventKind discriminates recognition stream events.
type EventKind int

const (
	// EventPartial carries an intermediate hypothesis.
	EventPartial EventKind = iota
	// EventFinal carries the final recognized utterance; it is the last
	// event on the stream.
	EventFinal
	// EventError carries a recognizer error code; it terminates the stream
	// without a result.
	EventError
)

// Recognition error codes, mirroring the device recognizer's taxonomy.
const (
	ErrCodeNoMatch       = 1 // nothing intelligible was heard
	ErrCodeAudio         = 2 // audio capture failed
	ErrCodeBusy          = 3 // recognizer already in use
	ErrCodePermission    = 4 // microphone permission denied
	ErrCodeNetworkFailed = 5 // recognition backend unreachable
)

// Event is one element of a recognition stream.
type Event struct {
	Kind EventKind
	Text string // partial or final text
	Code int    // set for EventError
}

// Recognizer captures one utterance at a time in a given language. A started
// session emits zero or more partial events followed by exactly one final or
// error event, then the channel closes. Close releases the microphone; the
// owning screen segment must call it when dismissed.
type Recognizer interface {
	// Start begins a recognition session for the language. Returns an error
	// if a session is already running.
	Start(ctx context.Context, languageTag string) (<-chan Event, error)
	// Stop cancels the running session; no final result is delivered.
	Stop()
	// Close tears the recognizer down and releases the audio resource.
	Close() error
}
