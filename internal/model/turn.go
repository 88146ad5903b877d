package model

// Speaker identifies which of the two conversation participants produced a turn.
type Speaker int

const (
	SpeakerPrimary Speaker = iota
	SpeakerSecondary
)

// Other returns the opposite participant.
func (s Speaker) Other() Speaker {
	if s == SpeakerPrimary {
		return SpeakerSecondary
	}
	return SpeakerPrimary
}

func (s Speaker) String() string {
	if s == SpeakerPrimary {
		return "primary"
	}
	return "secondary"
}

// ParseSpeaker converts a wire value ("primary" or "secondary") to a Speaker.
func ParseSpeaker(raw string) (Speaker, bool) {
	switch raw {
	case "primary":
		return SpeakerPrimary, true
	case "secondary":
		return SpeakerSecondary, true
	}
	return SpeakerPrimary, false
}

// Turn is one utterance-translation pair within a live conversation.
// PrimaryText is the text in the primary participant's language and
// SecondaryText the text in the secondary participant's language,
// regardless of who spoke. Turns are immutable once created.
type Turn struct {
	ID            int64
	PrimaryText   string
	SecondaryText string
	Speaker       Speaker
	CreatedAt     int64 // epoch millis
}
