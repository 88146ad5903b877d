package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"parley/backend/internal/logger"
	"parley/backend/internal/model"
)

// Filter returns the summaries passing every active constraint, preserving
// input order and leaving the input untouched. now is epoch millis,
// evaluated against relative date presets.
func Filter(summaries []model.ConversationSummary, state model.FilterState, now int64) []model.ConversationSummary {
	if state.Unconstrained() {
		out := make([]model.ConversationSummary, len(summaries))
		copy(out, summaries)
		return out
	}

	search := strings.ToLower(state.Search)
	out := make([]model.ConversationSummary, 0, len(summaries))
	for _, item := range summaries {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.PreviewText), search) &&
			!strings.Contains(strings.ToLower(item.Location), search) {
			continue
		}
		if !state.Date.Matches(item.RawTimestamp, now) {
			continue
		}
		if len(state.Languages) > 0 &&
			!state.Languages[item.SourceLang] && !state.Languages[item.TargetLang] {
			continue
		}
		if len(state.Locations) > 0 && !state.Locations[item.Location] {
			continue
		}
		out = append(out, item)
	}
	return out
}

// AvailableLanguages returns the sorted distinct union of source and target
// display codes across all summaries. Facets are derived from the unfiltered
// collection so filter options stay stable while filters narrow results.
func AvailableLanguages(summaries []model.ConversationSummary) []string {
	return distinctSorted(summaries, func(s model.ConversationSummary) []string {
		return []string{s.SourceLang, s.TargetLang}
	})
}

// AvailableLocations returns the sorted distinct locations across all
// summaries.
func AvailableLocations(summaries []model.ConversationSummary) []string {
	return distinctSorted(summaries, func(s model.ConversationSummary) []string {
		return []string{s.Location}
	})
}

func distinctSorted(summaries []model.ConversationSummary, pick func(model.ConversationSummary) []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range summaries {
		for _, v := range pick(s) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// ReviewList is the filter engine's answer to a list query. TotalCount and
// FilteredCount let callers distinguish "no history at all" from "nothing
// matches the active filter".
type ReviewList struct {
	Summaries          []model.ConversationSummary
	TotalCount         int
	FilteredCount      int
	AvailableLanguages []string
	AvailableLocations []string
}

// ReviewService owns the conversation history collection, the active
// selection set, and the mutations over both.
type ReviewService interface {
	List(state model.FilterState) ReviewList
	Get(id string) (model.ConversationSummary, error)
	// Add appends a summary to the collection (called at session end).
	Add(summary model.ConversationSummary)
	// ToggleStar sets the starred flag on the matching summary. Absent ids
	// are a no-op; the return value reports whether a summary matched.
	ToggleStar(id string, starred bool) bool
	// Delete removes the matching summary, reporting whether one matched.
	Delete(id string) bool
	// DeleteMany removes all matching summaries; absent ids are ignored.
	// Returns the number removed.
	DeleteMany(ids []string) int
	// DeleteSelected bulk-deletes the current selection and exits
	// selection mode.
	DeleteSelected() int
	// EnterSelection is the long-press transition: selection mode turns on
	// and the pressed summary joins the set.
	EnterSelection(id string)
	Select(id string)
	// Deselect removes an id; draining the set this way exits selection
	// mode.
	Deselect(id string)
	ClearSelection()
	Selection() model.SelectionState
}

type reviewService struct {
	mu        sync.Mutex
	summaries []model.ConversationSummary
	selection map[string]bool
	selecting bool
	now       func() int64
}

// NewReviewService creates a review service over an initial collection.
func NewReviewService(seed []model.ConversationSummary) ReviewService {
	return &reviewService{
		summaries: append([]model.ConversationSummary(nil), seed...),
		selection: make(map[string]bool),
		now:       func() int64 { return time.Now().UnixMilli() },
	}
}

// MockSummaries returns the demo history shipped while session persistence
// is out of scope.
func MockSummaries(now time.Time) []model.ConversationSummary {
	entries := []struct {
		id, location, source, target, sourceTag, targetTag, preview string
		age                                                         time.Duration
		starred                                                     bool
	}{
		{"1", "Paris", "EN", "FR", "en", "fr", "Where is the best croissant?", 2 * time.Hour, true},
		{"2", "Tokyo", "EN", "JA", "en", "ja", "Can you help me find the station?", 24 * time.Hour, false},
		{"3", "Madrid", "EN", "ES", "en", "es", "I would like to order paella.", 7 * 24 * time.Hour, false},
	}
	out := make([]model.ConversationSummary, len(entries))
	for i, e := range entries {
		ts := now.Add(-e.age)
		out[i] = model.ConversationSummary{
			ID:            e.id,
			Location:      e.location,
			Timestamp:     humanize.Time(ts),
			RawTimestamp:  ts.UnixMilli(),
			SourceLang:    e.source,
			TargetLang:    e.target,
			SourceLangTag: e.sourceTag,
			TargetLangTag: e.targetTag,
			PreviewText:   e.preview,
			IsStarred:     e.starred,
		}
	}
	return out
}

func (s *reviewService) List(state model.FilterState) ReviewList {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := Filter(s.summaries, state, s.now())
	return ReviewList{
		Summaries:          filtered,
		TotalCount:         len(s.summaries),
		FilteredCount:      len(filtered),
		AvailableLanguages: AvailableLanguages(s.summaries),
		AvailableLocations: AvailableLocations(s.summaries),
	}
}

func (s *reviewService) Get(id string) (model.ConversationSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.summaries {
		if item.ID == id {
			return item, nil
		}
	}
	return model.ConversationSummary{}, ErrNotFound
}

func (s *reviewService) Add(summary model.ConversationSummary) {
	s.mu.Lock()
	s.summaries = append(s.summaries, summary)
	s.mu.Unlock()
	logger.Info("summary recorded", "module", "service", "action", "save", "resource", "summary", "result", "ok", "summary_id", summary.ID, "location", summary.Location)
}

func (s *reviewService) ToggleStar(id string, starred bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.summaries {
		if s.summaries[i].ID == id {
			s.summaries[i].IsStarred = starred
			return true
		}
	}
	return false
}

func (s *reviewService) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteLocked(map[string]bool{id: true}) == 1
}

func (s *reviewService) DeleteMany(ids []string) int {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteLocked(set)
}

func (s *reviewService) DeleteSelected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.selection
	s.selection = make(map[string]bool)
	s.selecting = false
	return s.deleteLocked(set)
}

func (s *reviewService) deleteLocked(ids map[string]bool) int {
	kept := s.summaries[:0]
	removed := 0
	for _, item := range s.summaries {
		if ids[item.ID] {
			removed++
			delete(s.selection, item.ID)
			continue
		}
		kept = append(kept, item)
	}
	s.summaries = kept
	if s.selecting && len(s.selection) == 0 {
		s.selecting = false
	}
	return removed
}

func (s *reviewService) EnterSelection(id string) {
	s.mu.Lock()
	s.selecting = true
	s.selection[id] = true
	s.mu.Unlock()
}

func (s *reviewService) Select(id string) {
	s.mu.Lock()
	s.selection[id] = true
	s.selecting = true
	s.mu.Unlock()
}

func (s *reviewService) Deselect(id string) {
	s.mu.Lock()
	delete(s.selection, id)
	if len(s.selection) == 0 {
		s.selecting = false
	}
	s.mu.Unlock()
}

func (s *reviewService) ClearSelection() {
	s.mu.Lock()
	s.selection = make(map[string]bool)
	s.selecting = false
	s.mu.Unlock()
}

func (s *reviewService) Selection() model.SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make(map[string]bool, len(s.selection))
	for id := range s.selection {
		ids[id] = true
	}
	return model.SelectionState{Active: s.selecting, IDs: ids}
}
