package service_test

import (
	"testing"
	"time"

	"parley/backend/internal/model"
	"parley/backend/internal/service"

	"github.com/stretchr/testify/require"
)

func demoReview() (service.ReviewService, int64) {
	now := time.Now()
	return service.NewReviewService(service.MockSummaries(now)), now.UnixMilli()
}

func listIDs(list service.ReviewList) []string {
	ids := make([]string, len(list.Summaries))
	for i, s := range list.Summaries {
		ids[i] = s.ID
	}
	return ids
}

func TestFilter_UnconstrainedReturnsEverything(t *testing.T) {
	now := time.Now()
	summaries := service.MockSummaries(now)

	out := service.Filter(summaries, model.FilterState{}, now.UnixMilli())
	require.Equal(t, summaries, out)

	// The result is a copy, not an alias of the collection.
	out[0].Location = "mutated"
	require.Equal(t, "Paris", summaries[0].Location)
}

func TestFilter_Idempotent(t *testing.T) {
	now := time.Now()
	summaries := service.MockSummaries(now)
	state := model.FilterState{Date: model.Today()}

	once := service.Filter(summaries, state, now.UnixMilli())
	twice := service.Filter(once, state, now.UnixMilli())
	require.Equal(t, once, twice)
}

func TestFilter_ByLanguage(t *testing.T) {
	now := time.Now()
	summaries := service.MockSummaries(now)

	// FR matches only the Paris conversation, on its target language.
	out := service.Filter(summaries, model.FilterState{
		Languages: map[string]bool{"FR": true},
	}, now.UnixMilli())
	require.Len(t, out, 1)
	require.Equal(t, "1", out[0].ID)

	// EN is a source language on all three.
	out = service.Filter(summaries, model.FilterState{
		Languages: map[string]bool{"EN": true},
	}, now.UnixMilli())
	require.Len(t, out, 3)

	// Multiple selections union.
	out = service.Filter(summaries, model.FilterState{
		Languages: map[string]bool{"FR": true, "JA": true},
	}, now.UnixMilli())
	require.Len(t, out, 2)
}

func TestFilter_ByDate(t *testing.T) {
	now := time.Now()
	summaries := service.MockSummaries(now)
	nowMillis := now.UnixMilli()

	// Today keeps only the 2h-old Paris conversation: the Tokyo one is
	// exactly 24h old, outside the rolling window.
	out := service.Filter(summaries, model.FilterState{Date: model.Today()}, nowMillis)
	require.Len(t, out, 1)
	require.Equal(t, "1", out[0].ID)

	// A custom range spanning the last two days keeps Paris and Tokyo.
	out = service.Filter(summaries, model.FilterState{
		Date: model.CustomRange(nowMillis-48*3600*1000, nowMillis),
	}, nowMillis)
	require.Len(t, out, 2)
	require.Equal(t, "1", out[0].ID)
	require.Equal(t, "2", out[1].ID)
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	now := time.Now()
	summaries := service.MockSummaries(now)
	nowMillis := now.UnixMilli()

	// Matches preview text.
	out := service.Filter(summaries, model.FilterState{Search: "CROISSANT"}, nowMillis)
	require.Len(t, out, 1)
	require.Equal(t, "1", out[0].ID)

	// Matches location too.
	out = service.Filter(summaries, model.FilterState{Search: "tokyo"}, nowMillis)
	require.Len(t, out, 1)
	require.Equal(t, "2", out[0].ID)

	out = service.Filter(summaries, model.FilterState{Search: "no such thing"}, nowMillis)
	require.Empty(t, out)
}

func TestFilter_ByLocation(t *testing.T) {
	now := time.Now()
	summaries := service.MockSummaries(now)

	out := service.Filter(summaries, model.FilterState{
		Locations: map[string]bool{"Madrid": true},
	}, now.UnixMilli())
	require.Len(t, out, 1)
	require.Equal(t, "3", out[0].ID)
}

func TestFilter_ConstraintsCompose(t *testing.T) {
	now := time.Now()
	summaries := service.MockSummaries(now)

	// EN matches all three, but the location narrows it to Paris.
	out := service.Filter(summaries, model.FilterState{
		Languages: map[string]bool{"EN": true},
		Locations: map[string]bool{"Paris": true},
	}, now.UnixMilli())
	require.Len(t, out, 1)
	require.Equal(t, "1", out[0].ID)

	// Composing with a non-matching constraint empties the result.
	out = service.Filter(summaries, model.FilterState{
		Search:    "croissant",
		Locations: map[string]bool{"Tokyo": true},
	}, now.UnixMilli())
	require.Empty(t, out)
}

func TestReviewService_List_FacetsFromUnfilteredCollection(t *testing.T) {
	svc, _ := demoReview()

	list := svc.List(model.FilterState{Locations: map[string]bool{"Paris": true}})
	require.Equal(t, []string{"1"}, listIDs(list))
	require.Equal(t, 3, list.TotalCount)
	require.Equal(t, 1, list.FilteredCount)

	// Facet options stay stable while a filter narrows the results.
	require.Equal(t, []string{"EN", "ES", "FR", "JA"}, list.AvailableLanguages)
	require.Equal(t, []string{"Madrid", "Paris", "Tokyo"}, list.AvailableLocations)
}

func TestReviewService_Get(t *testing.T) {
	svc, _ := demoReview()

	summary, err := svc.Get("2")
	require.NoError(t, err)
	require.Equal(t, "Tokyo", summary.Location)

	_, err = svc.Get("missing")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestReviewService_ToggleStar(t *testing.T) {
	svc, _ := demoReview()

	require.True(t, svc.ToggleStar("2", true))
	summary, err := svc.Get("2")
	require.NoError(t, err)
	require.True(t, summary.IsStarred)

	require.True(t, svc.ToggleStar("2", false))
	summary, err = svc.Get("2")
	require.NoError(t, err)
	require.False(t, summary.IsStarred)

	// Absent ids are a no-op.
	require.False(t, svc.ToggleStar("missing", true))
	require.Equal(t, 3, svc.List(model.FilterState{}).TotalCount)
}

func TestReviewService_Delete(t *testing.T) {
	svc, _ := demoReview()

	require.True(t, svc.Delete("2"))
	require.Equal(t, 2, svc.List(model.FilterState{}).TotalCount)
	_, err := svc.Get("2")
	require.ErrorIs(t, err, service.ErrNotFound)

	// Deleting again is a no-op.
	require.False(t, svc.Delete("2"))
	require.Equal(t, 2, svc.List(model.FilterState{}).TotalCount)
}

func TestReviewService_DeleteMany_IgnoresAbsentIDs(t *testing.T) {
	svc, _ := demoReview()

	require.Equal(t, 2, svc.DeleteMany([]string{"1", "3", "missing"}))
	list := svc.List(model.FilterState{})
	require.Equal(t, []string{"2"}, listIDs(list))
}

func TestReviewService_Selection_LongPressEnters(t *testing.T) {
	svc, _ := demoReview()

	require.False(t, svc.Selection().Active)

	svc.EnterSelection("1")
	state := svc.Selection()
	require.True(t, state.Active)
	require.True(t, state.Selected("1"))
	require.Equal(t, 1, state.Count())

	svc.Select("2")
	require.Equal(t, 2, svc.Selection().Count())
}

func TestReviewService_Selection_DrainingExitsMode(t *testing.T) {
	svc, _ := demoReview()

	svc.EnterSelection("1")
	svc.Select("2")

	svc.Deselect("1")
	state := svc.Selection()
	require.True(t, state.Active)
	require.False(t, state.Selected("1"))

	// Removing the last id leaves selection mode.
	svc.Deselect("2")
	state = svc.Selection()
	require.False(t, state.Active)
	require.Zero(t, state.Count())
}

func TestReviewService_ClearSelection(t *testing.T) {
	svc, _ := demoReview()

	svc.EnterSelection("1")
	svc.Select("2")
	svc.ClearSelection()

	state := svc.Selection()
	require.False(t, state.Active)
	require.Zero(t, state.Count())
	// The collection itself is untouched.
	require.Equal(t, 3, svc.List(model.FilterState{}).TotalCount)
}

func TestReviewService_DeleteSelected(t *testing.T) {
	svc, _ := demoReview()

	svc.EnterSelection("1")
	svc.Select("2")

	require.Equal(t, 2, svc.DeleteSelected())
	require.Equal(t, []string{"3"}, listIDs(svc.List(model.FilterState{})))

	state := svc.Selection()
	require.False(t, state.Active)
	require.Zero(t, state.Count())
}

func TestReviewService_Delete_RemovesFromSelection(t *testing.T) {
	svc, _ := demoReview()

	svc.EnterSelection("1")
	svc.Select("2")

	// Deleting a selected summary directly drops it from the set too.
	require.True(t, svc.Delete("1"))
	state := svc.Selection()
	require.False(t, state.Selected("1"))
	require.True(t, state.Selected("2"))
}

func TestReviewService_Add(t *testing.T) {
	svc := service.NewReviewService(nil)

	svc.Add(model.ConversationSummary{ID: "a", Location: "Lisbon", SourceLang: "EN", TargetLang: "PT"})
	list := svc.List(model.FilterState{})
	require.Equal(t, 1, list.TotalCount)
	require.Equal(t, []string{"EN", "PT"}, list.AvailableLanguages)
	require.Equal(t, []string{"Lisbon"}, list.AvailableLocations)
}
