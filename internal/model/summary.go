package model

// ConversationSummary is one saved record of a past conversation session.
// SourceLang/TargetLang hold short display codes (e.g. "EN"), the *Tag
// fields hold the BCP-47 tags used for speech playback.
type ConversationSummary struct {
	ID            string
	Location      string
	Timestamp     string // human-readable, e.g. "2 hours ago"
	RawTimestamp  int64  // epoch millis
	SourceLang    string
	TargetLang    string
	SourceLangTag string
	TargetLangTag string
	PreviewText   string
	IsStarred     bool
}
