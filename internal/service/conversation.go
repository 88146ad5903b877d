package service

import (
	"context"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"parley/backend/internal/language"
	"parley/backend/internal/logger"
	"parley/backend/internal/model"
	"parley/backend/internal/snowflake"
	"parley/backend/internal/speech"
)

// ProjectedTurn is one element of a participant's oriented conversation view.
type ProjectedTurn struct {
	ID      int64
	Native  string // text in the viewer's language
	Foreign string // text in the other participant's language
	IsOwn   bool   // true when the viewer spoke this turn
	Speaker model.Speaker
}

// ProjectTurns computes a viewer's ordered view of the shared turn log,
// latest first. It never mutates the input; both viewers' projections are
// independent computations over the same turns.
func ProjectTurns(turns []model.Turn, viewerIsPrimary bool) []ProjectedTurn {
	out := make([]ProjectedTurn, len(turns))
	for i, turn := range turns {
		native, foreign := turn.SecondaryText, turn.PrimaryText
		if viewerIsPrimary {
			native, foreign = turn.PrimaryText, turn.SecondaryText
		}
		out[len(turns)-1-i] = ProjectedTurn{
			ID:      turn.ID,
			Native:  native,
			Foreign: foreign,
			IsOwn:   (turn.Speaker == model.SpeakerPrimary) == viewerIsPrimary,
			Speaker: turn.Speaker,
		}
	}
	return out
}

// ConversationView is the rendered state of one participant's half of the
// screen.
type ConversationView struct {
	Viewer            model.Speaker
	Rotated           bool   // layout rotation for face-to-face use
	ListeningLanguage string // tag the mic on this half listens in
	Turns             []ProjectedTurn
}

// SessionInfo is the externally visible state of a live session.
type SessionInfo struct {
	ID                string
	PrimaryLanguage   string
	SecondaryLanguage string
	Swapped           bool
	TurnCount         int
	CreatedAt         time.Time
	LastActive        time.Time
}

// SpeechEngines bundles the audio resources owned by one session. The
// recognizer is shared (one microphone), the synthesizers are per side.
type SpeechEngines struct {
	Recognizer   speech.Recognizer
	PrimaryTTS   speech.Synthesizer
	SecondaryTTS speech.Synthesizer
}

// SpeechFactory creates the speech engines for a new session.
type SpeechFactory func() SpeechEngines

// ConversationService manages live bilingual conversation sessions: the
// append-only turn log, the per-viewer projections, and the session-owned
// speech resources.
type ConversationService interface {
	Create(ctx context.Context, primaryTag, secondaryTag string) (SessionInfo, error)
	Get(id string) (SessionInfo, error)
	SetLanguage(id string, sp model.Speaker, tag string) (SessionInfo, error)
	Swap(id string) (SessionInfo, error)
	// AppendText runs the turn creation protocol for a committed text
	// input: translate into the other participant's language, then append.
	// This and CaptureTurn are the only write paths into the turn log.
	AppendText(ctx context.Context, id string, sp model.Speaker, text string) (model.Turn, error)
	// CaptureTurn listens for one utterance on the given half's microphone
	// and appends the resulting turn. On a swapped layout the half belongs
	// to the opposite participant.
	CaptureTurn(ctx context.Context, id string, half model.Speaker) (model.Turn, error)
	// Speak plays text aloud on the given participant's synthesizer.
	Speak(id string, sp model.Speaker, text string) error
	View(id string, viewer model.Speaker) (ConversationView, error)
	// End closes the session, releases its speech engines, and records a
	// history summary when the session produced any turns. The returned
	// summary is nil for an empty session.
	End(ctx context.Context, id, location string) (*model.ConversationSummary, error)
	// EndIdle ends sessions with no activity for at least ttl, discarding
	// their history. Returns the number of sessions ended.
	EndIdle(ttl time.Duration) int
}

type session struct {
	mu         sync.Mutex
	id         string
	primary    string
	secondary  string
	swapped    bool
	turns      []model.Turn
	engines    SpeechEngines
	createdAt  time.Time
	lastActive time.Time
	ended      bool
}

type conversationService struct {
	registry *language.Registry
	gateway  TranslationGateway
	review   ReviewService
	factory  SpeechFactory

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewConversationService creates the session manager. Ended sessions with
// turns are recorded into the review service.
func NewConversationService(registry *language.Registry, gateway TranslationGateway, review ReviewService, factory SpeechFactory) ConversationService {
	return &conversationService{
		registry: registry,
		gateway:  gateway,
		review:   review,
		factory:  factory,
		sessions: make(map[string]*session),
	}
}

func (s *conversationService) Create(ctx context.Context, primaryTag, secondaryTag string) (SessionInfo, error) {
	if !s.registry.Supported(primaryTag) || !s.registry.Supported(secondaryTag) {
		return SessionInfo{}, ErrInvalid
	}
	now := time.Now()
	sess := &session{
		id:         uuid.NewString(),
		primary:    language.Normalize(primaryTag),
		secondary:  language.Normalize(secondaryTag),
		engines:    s.factory(),
		createdAt:  now,
		lastActive: now,
	}
	if sess.engines.PrimaryTTS != nil {
		if err := sess.engines.PrimaryTTS.SetLanguage(sess.primary); err != nil {
			logger.Warn("primary voice unavailable", "module", "service", "action", "create", "resource", "session", "result", "degraded", "language", sess.primary, "error", err)
		}
	}
	if sess.engines.SecondaryTTS != nil {
		if err := sess.engines.SecondaryTTS.SetLanguage(sess.secondary); err != nil {
			logger.Warn("secondary voice unavailable", "module", "service", "action", "create", "resource", "session", "result", "degraded", "language", sess.secondary, "error", err)
		}
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	logger.Info("conversation session created", "module", "service", "action", "create", "resource", "session", "result", "ok", "session_id", sess.id, "primary", sess.primary, "secondary", sess.secondary)
	return sess.info(), nil
}

func (s *conversationService) lookup(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *conversationService) Get(id string) (SessionInfo, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionInfo{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.infoLocked(), nil
}

func (s *conversationService) SetLanguage(id string, sp model.Speaker, tag string) (SessionInfo, error) {
	if !s.registry.Supported(tag) {
		return SessionInfo{}, ErrInvalid
	}
	sess, err := s.lookup(id)
	if err != nil {
		return SessionInfo{}, err
	}
	norm := language.Normalize(tag)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	var tts speech.Synthesizer
	if sp == model.SpeakerPrimary {
		sess.primary = norm
		tts = sess.engines.PrimaryTTS
	} else {
		sess.secondary = norm
		tts = sess.engines.SecondaryTTS
	}
	if tts != nil {
		if err := tts.SetLanguage(norm); err != nil {
			logger.Warn("voice unavailable", "module", "service", "action", "update", "resource", "session", "result", "degraded", "language", norm, "error", err)
		}
	}
	sess.lastActive = time.Now()
	return sess.infoLocked(), nil
}

func (s *conversationService) Swap(id string) (SessionInfo, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionInfo{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.swapped = !sess.swapped
	sess.lastActive = time.Now()
	return sess.infoLocked(), nil
}

func (s *conversationService) AppendText(ctx context.Context, id string, sp model.Speaker, text string) (model.Turn, error) {
	if text == "" {
		return model.Turn{}, ErrInvalid
	}
	sess, err := s.lookup(id)
	if err != nil {
		return model.Turn{}, err
	}
	// The session mutex is held across the translate call so rapid inputs
	// append in submission order.
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.appendLocked(ctx, sess, sp, text)
}

func (s *conversationService) appendLocked(ctx context.Context, sess *session, sp model.Speaker, text string) (model.Turn, error) {
	sourceTag, targetTag := sess.primary, sess.secondary
	if sp == model.SpeakerSecondary {
		sourceTag, targetTag = sess.secondary, sess.primary
	}
	translated := s.gateway.Translate(ctx, sourceTag, targetTag, text)

	turn := model.Turn{
		ID:        snowflake.NextID(),
		Speaker:   sp,
		CreatedAt: time.Now().UnixMilli(),
	}
	if sp == model.SpeakerPrimary {
		turn.PrimaryText, turn.SecondaryText = text, translated
	} else {
		turn.PrimaryText, turn.SecondaryText = translated, text
	}
	sess.turns = append(sess.turns, turn)
	sess.lastActive = time.Now()

	logger.Debug("turn appended", "module", "service", "action", "append", "resource", "turn", "result", "ok", "session_id", sess.id, "speaker", sp.String(), "turn_id", turn.ID)
	return turn, nil
}

func (s *conversationService) CaptureTurn(ctx context.Context, id string, half model.Speaker) (model.Turn, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return model.Turn{}, err
	}

	sess.mu.Lock()
	speaker := half
	if sess.swapped {
		speaker = half.Other()
	}
	listenTag := sess.primary
	if speaker == model.SpeakerSecondary {
		listenTag = sess.secondary
	}
	recognizer := sess.engines.Recognizer
	sess.mu.Unlock()

	if recognizer == nil {
		return model.Turn{}, ErrRecognition
	}

	events, err := recognizer.Start(ctx, listenTag)
	if err != nil {
		return model.Turn{}, &RecognitionError{Code: speech.ErrCodeBusy}
	}

	var final string
	for ev := range events {
		switch ev.Kind {
		case speech.EventFinal:
			final = ev.Text
		case speech.EventError:
			return model.Turn{}, &RecognitionError{Code: ev.Code}
		}
	}
	if final == "" {
		// Dialog closed or session cancelled: no result, log untouched.
		if err := ctx.Err(); err != nil {
			return model.Turn{}, err
		}
		return model.Turn{}, &RecognitionError{Code: speech.ErrCodeNoMatch}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.appendLocked(ctx, sess, speaker, final)
}

func (s *conversationService) Speak(id string, sp model.Speaker, text string) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	tts := sess.engines.PrimaryTTS
	if sp == model.SpeakerSecondary {
		tts = sess.engines.SecondaryTTS
	}
	sess.mu.Unlock()

	if tts == nil || !tts.Ready() {
		return ErrSynthesisUnavailable
	}
	tts.Speak(text)
	return nil
}

func (s *conversationService) View(id string, viewer model.Speaker) (ConversationView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return ConversationView{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	listenTag := sess.primary
	if (viewer == model.SpeakerSecondary) != sess.swapped {
		listenTag = sess.secondary
	}
	return ConversationView{
		Viewer:            viewer,
		Rotated:           sess.swapped,
		ListeningLanguage: listenTag,
		Turns:             ProjectTurns(sess.turns, viewer == model.SpeakerPrimary),
	}, nil
}

func (s *conversationService) End(ctx context.Context, id, location string) (*model.ConversationSummary, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	summary := s.closeLocked(sess, location)
	if summary != nil && s.review != nil {
		s.review.Add(*summary)
	}
	return summary, nil
}

// closeLocked releases the session's audio resources and builds its history
// summary. Sessions without turns leave no summary.
func (s *conversationService) closeLocked(sess *session, location string) *model.ConversationSummary {
	if sess.ended {
		return nil
	}
	sess.ended = true
	if sess.engines.Recognizer != nil {
		_ = sess.engines.Recognizer.Close()
	}
	if sess.engines.PrimaryTTS != nil {
		sess.engines.PrimaryTTS.Shutdown()
	}
	if sess.engines.SecondaryTTS != nil {
		sess.engines.SecondaryTTS.Shutdown()
	}
	logger.Info("conversation session ended", "module", "service", "action", "delete", "resource", "session", "result", "ok", "session_id", sess.id, "turns", len(sess.turns))

	if len(sess.turns) == 0 {
		return nil
	}
	now := time.Now()
	return &model.ConversationSummary{
		ID:            uuid.NewString(),
		Location:      location,
		Timestamp:     humanize.Time(now),
		RawTimestamp:  now.UnixMilli(),
		SourceLang:    s.registry.DisplayCode(sess.primary),
		TargetLang:    s.registry.DisplayCode(sess.secondary),
		SourceLangTag: sess.primary,
		TargetLangTag: sess.secondary,
		PreviewText:   sess.turns[0].PrimaryText,
	}
}

func (s *conversationService) EndIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	var stale []*session
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastActive.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			stale = append(stale, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		sess.mu.Lock()
		// Abandoned sessions release their engines but record no history.
		sess.turns = nil
		s.closeLocked(sess, "")
		sess.mu.Unlock()
	}
	return len(stale)
}

func (sess *session) info() SessionInfo {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.infoLocked()
}

func (sess *session) infoLocked() SessionInfo {
	return SessionInfo{
		ID:                sess.id,
		PrimaryLanguage:   sess.primary,
		SecondaryLanguage: sess.secondary,
		Swapped:           sess.swapped,
		TurnCount:         len(sess.turns),
		CreatedAt:         sess.createdAt,
		LastActive:        sess.lastActive,
	}
}
