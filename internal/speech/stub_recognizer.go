package speech

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// StubRecognizerConfig configures the stub recognizer behavior.
type StubRecognizerConfig struct {
	// CaptureDelay simulates listening time before the final result.
	CaptureDelay time.Duration
	// Utterances maps a language tag to the scripted utterances returned by
	// successive sessions. Languages with no script fall back to a generic
	// phrase.
	Utterances map[string][]string
	// EmitPartials controls whether word-by-word partial events precede the
	// final result.
	EmitPartials bool
	// ErrorCode, when non-zero, makes every session fail with that code.
	ErrorCode int
}

// DefaultStubRecognizerConfig returns scripted utterances for testing.
func DefaultStubRecognizerConfig() *StubRecognizerConfig {
	return &StubRecognizerConfig{
		EmitPartials: true,
		Utterances: map[string][]string{
			"en": {"Hello", "How are you?", "Where is the station?"},
			"es": {"Hola", "Como estas?"},
			"fr": {"Bonjour", "Merci beaucoup"},
		},
	}
}

// StubRecognizer is a deterministic Recognizer for development and tests.
type StubRecognizer struct {
	config *StubRecognizerConfig

	mu      sync.Mutex
	cancel  context.CancelFunc
	counts  map[string]int
	closed  bool
	running bool
}

// NewStubRecognizer creates a stub recognizer, using defaults when config is nil.
func NewStubRecognizer(config *StubRecognizerConfig) *StubRecognizer {
	if config == nil {
		config = DefaultStubRecognizerConfig()
	}
	return &StubRecognizer{
		config: config,
		counts: make(map[string]int),
	}
}

// Start begins a scripted recognition session.
func (s *StubRecognizer) Start(ctx context.Context, languageTag string) (<-chan Event, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, errors.New("recognizer closed")
	}
	if s.running {
		s.mu.Unlock()
		return nil, errors.New("recognition session already running")
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true
	utterance := s.nextUtterance(languageTag)
	s.mu.Unlock()

	out := make(chan Event)
	go func() {
		defer close(out)
		defer func() {
			s.mu.Lock()
			s.running = false
			s.cancel = nil
			s.mu.Unlock()
		}()

		if s.config.CaptureDelay > 0 {
			select {
			case <-time.After(s.config.CaptureDelay):
			case <-ctx.Done():
				return
			}
		}

		if s.config.ErrorCode != 0 {
			select {
			case out <- Event{Kind: EventError, Code: s.config.ErrorCode}:
			case <-ctx.Done():
			}
			return
		}

		if s.config.EmitPartials {
			words := strings.Fields(utterance)
			for i := range words {
				select {
				case out <- Event{Kind: EventPartial, Text: strings.Join(words[:i+1], " ")}:
				case <-ctx.Done():
					return
				}
			}
		}

		select {
		case out <- Event{Kind: EventFinal, Text: utterance}:
		case <-ctx.Done():
		}
	}()

	return out, nil
}

func (s *StubRecognizer) nextUtterance(languageTag string) string {
	script := s.config.Utterances[languageTag]
	if len(script) == 0 {
		return "Speak now"
	}
	i := s.counts[languageTag] % len(script)
	s.counts[languageTag]++
	return script[i]
}

// Stop cancels the running session, if any.
func (s *StubRecognizer) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
}

// Close stops any session and marks the recognizer unusable.
func (s *StubRecognizer) Close() error {
	s.Stop()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
