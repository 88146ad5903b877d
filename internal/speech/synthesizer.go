package speech

// Synthesizer speaks text aloud in a configured language. Speak is
// fire-and-forget: it flushes any currently-speaking utterance and returns
// immediately. Requests made while the engine is unavailable are dropped,
// not queued. Shutdown must be called when the owning screen segment
// unmounts to release the audio resource.
type Synthesizer interface {
	// SetLanguage switches the synthesis voice. Returns an error when the
	// language has no installed voice.
	SetLanguage(languageTag string) error
	// Speak enqueues nothing: it replaces whatever is currently speaking.
	Speak(text string)
	// Ready reports whether the engine initialized and can speak.
	Ready() bool
	// Shutdown releases the engine. Speak calls after Shutdown are dropped.
	Shutdown()
}
