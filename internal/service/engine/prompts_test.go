package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetTranslatePrompt(t *testing.T) {
	prompt := GetTranslatePrompt("en", "fr")

	require.True(t, strings.Contains(prompt, "<source_language>en</source_language>"))
	require.True(t, strings.Contains(prompt, "<target_language>fr</target_language>"))
	require.True(t, strings.Contains(prompt, "ONLY the translated text"))
}

func TestPairKey(t *testing.T) {
	require.Equal(t, "en:es", pairKey("en", "es"))
	require.NotEqual(t, pairKey("en", "es"), pairKey("es", "en"))
}

func TestNew_ProviderSelection(t *testing.T) {
	e, err := New(Config{Provider: ProviderStatic})
	require.NoError(t, err)
	require.Equal(t, ProviderStatic, e.Name())

	_, err = New(Config{Provider: ProviderOpenAI})
	require.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = New(Config{Provider: ProviderAnthropic, APIKey: "key"})
	require.ErrorIs(t, err, ErrMissingModel)

	_, err = New(Config{Provider: "other"})
	require.ErrorIs(t, err, ErrInvalidProvider)

	e, err = New(Config{Provider: ProviderOpenAI, APIKey: "key", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	require.Equal(t, ProviderOpenAI, e.Name())
}
