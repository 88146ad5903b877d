package speech

import (
	"errors"
	"sync"

	"parley/backend/internal/logger"
)

// StubSynthesizerConfig configures the stub synthesizer behavior.
type StubSynthesizerConfig struct {
	// Voices lists the language tags with an installed voice. Empty means
	// every language is speakable.
	Voices map[string]bool
	// Unavailable simulates an engine that failed to initialize; all speak
	// requests are dropped.
	Unavailable bool
}

// StubSynthesizer is a deterministic Synthesizer for development and tests.
// It records the utterances it "spoke" so tests can assert on them.
type StubSynthesizer struct {
	config StubSynthesizerConfig

	mu       sync.Mutex
	language string
	spoken   []string
	current  string
	shutdown bool
}

// NewStubSynthesizer creates a stub synthesizer.
func NewStubSynthesizer(config StubSynthesizerConfig) *StubSynthesizer {
	return &StubSynthesizer{config: config}
}

// SetLanguage switches the synthesis voice.
func (s *StubSynthesizer) SetLanguage(languageTag string) error {
	if s.config.Voices != nil && !s.config.Voices[languageTag] {
		return errors.New("no voice installed for " + languageTag)
	}
	s.mu.Lock()
	s.language = languageTag
	s.mu.Unlock()
	return nil
}

// Speak records the utterance, flushing the in-progress one. Requests while
// unavailable or after shutdown are dropped.
func (s *StubSynthesizer) Speak(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shutdown || s.config.Unavailable {
		logger.Warn("speak request dropped", "module", "speech", "action", "speak", "resource", "tts", "result", "dropped", "language", s.language)
		return
	}
	s.current = text
	s.spoken = append(s.spoken, text)
}

// Ready reports whether the engine can speak.
func (s *StubSynthesizer) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.shutdown && !s.config.Unavailable
}

// Shutdown releases the engine.
func (s *StubSynthesizer) Shutdown() {
	s.mu.Lock()
	s.shutdown = true
	s.current = ""
	s.mu.Unlock()
}

// Spoken returns the utterances spoken so far.
func (s *StubSynthesizer) Spoken() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.spoken))
	copy(out, s.spoken)
	return out
}

// Language returns the active voice language.
func (s *StubSynthesizer) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}
