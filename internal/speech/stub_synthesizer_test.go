package speech_test

import (
	"testing"

	"parley/backend/internal/speech"

	"github.com/stretchr/testify/require"
)

func TestStubSynthesizer_Speak(t *testing.T) {
	s := speech.NewStubSynthesizer(speech.StubSynthesizerConfig{})

	require.NoError(t, s.SetLanguage("en"))
	require.Equal(t, "en", s.Language())
	require.True(t, s.Ready())

	s.Speak("Hello")
	s.Speak("Goodbye")
	require.Equal(t, []string{"Hello", "Goodbye"}, s.Spoken())
}

func TestStubSynthesizer_MissingVoice(t *testing.T) {
	s := speech.NewStubSynthesizer(speech.StubSynthesizerConfig{
		Voices: map[string]bool{"en": true},
	})

	require.NoError(t, s.SetLanguage("en"))
	require.Error(t, s.SetLanguage("zz"))
	require.Equal(t, "en", s.Language())
}

func TestStubSynthesizer_Unavailable(t *testing.T) {
	s := speech.NewStubSynthesizer(speech.StubSynthesizerConfig{Unavailable: true})

	require.False(t, s.Ready())
	s.Speak("Hello")
	require.Empty(t, s.Spoken())
}

func TestStubSynthesizer_Shutdown(t *testing.T) {
	s := speech.NewStubSynthesizer(speech.StubSynthesizerConfig{})

	s.Speak("Hello")
	s.Shutdown()
	require.False(t, s.Ready())

	// Requests after shutdown are dropped.
	s.Speak("Goodbye")
	require.Equal(t, []string{"Hello"}, s.Spoken())
}
