package language_test

import (
	"sort"
	"testing"

	"parley/backend/internal/language"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "en", language.Normalize("en"))
	require.Equal(t, "en", language.Normalize("EN"))
	require.Equal(t, "en", language.Normalize(" en-US "))
	require.Equal(t, "zh", language.Normalize("zh-Hant-TW"))
	require.Equal(t, "", language.Normalize(""))
	require.Equal(t, "", language.Normalize("not a tag"))
}

func TestRegistry_Supported(t *testing.T) {
	r := language.NewRegistry()

	require.True(t, r.Supported("en"))
	require.True(t, r.Supported("EN"))
	require.True(t, r.Supported("en-GB"))
	require.True(t, r.Supported("ja"))
	require.False(t, r.Supported("tlh"))
	require.False(t, r.Supported(""))
	require.False(t, r.Supported("???"))
}

func TestRegistry_All_SortedAndComplete(t *testing.T) {
	r := language.NewRegistry()

	all := r.All()
	require.NotEmpty(t, all)
	require.True(t, sort.SliceIsSorted(all, func(i, j int) bool {
		return all[i].Tag < all[j].Tag
	}))
	for _, lang := range all {
		require.True(t, r.Supported(lang.Tag))
		require.NotEmpty(t, lang.Code)
		require.NotEmpty(t, lang.Name)
	}
}

func TestRegistry_DisplayName(t *testing.T) {
	r := language.NewRegistry()

	require.Equal(t, "English", r.DisplayName("en"))
	require.Equal(t, "French", r.DisplayName("fr"))
	require.Equal(t, "Japanese", r.DisplayName("ja"))
	// Malformed input falls back to the raw tag.
	require.Equal(t, "???", r.DisplayName("???"))
}

func TestRegistry_DisplayCode(t *testing.T) {
	r := language.NewRegistry()

	require.Equal(t, "EN", r.DisplayCode("en"))
	require.Equal(t, "EN", r.DisplayCode("en-US"))
	require.Equal(t, "FR", r.DisplayCode("fr"))
}

func TestNewRegistryWithTags_DedupesAndNormalizes(t *testing.T) {
	r := language.NewRegistryWithTags([]string{"en-US", "EN", "fr", "garbage!!", ""})

	all := r.All()
	require.Len(t, all, 2)
	require.Equal(t, "en", all[0].Tag)
	require.Equal(t, "fr", all[1].Tag)
}
