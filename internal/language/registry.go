package language

import (
	"sort"
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language describes one supported translation language.
type Language struct {
	Tag  string `json:"tag"`  // BCP-47 tag, e.g. "en"
	Code string `json:"code"` // short display code, e.g. "EN"
	Name string `json:"name"` // English display name, e.g. "English"
}

// supportedTags is the fixed set of languages the on-device translation
// models cover. Mirrors the engine's published language list.
var supportedTags = []string{
	"af", "ar", "be", "bg", "bn", "ca", "cs", "cy", "da", "de",
	"el", "en", "eo", "es", "et", "fa", "fi", "fr", "ga", "gl",
	"gu", "he", "hi", "hr", "ht", "hu", "id", "is", "it", "ja",
	"ka", "kn", "ko", "lt", "lv", "mk", "mr", "ms", "mt", "nl",
	"no", "pl", "pt", "ro", "ru", "sk", "sl", "sq", "sv", "sw",
	"ta", "te", "th", "tl", "tr", "uk", "ur", "vi", "zh",
}

// Registry exposes the supported-language set and tag-to-name resolution.
type Registry struct {
	namer display.Namer
	tags  []string
	set   map[string]bool
}

// NewRegistry returns a registry over the default supported set.
func NewRegistry() *Registry {
	return NewRegistryWithTags(supportedTags)
}

// NewRegistryWithTags returns a registry over an explicit tag set.
func NewRegistryWithTags(tags []string) *Registry {
	set := make(map[string]bool, len(tags))
	ordered := make([]string, 0, len(tags))
	for _, tag := range tags {
		norm := Normalize(tag)
		if norm == "" || set[norm] {
			continue
		}
		set[norm] = true
		ordered = append(ordered, norm)
	}
	sort.Strings(ordered)
	return &Registry{
		namer: display.English.Tags(),
		tags:  ordered,
		set:   set,
	}
}

// Normalize canonicalizes a raw language tag. Returns "" for garbage input.
func Normalize(raw string) string {
	tag, err := xlanguage.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

// Supported reports whether the tag is in the supported set.
func (r *Registry) Supported(tag string) bool {
	return r.set[Normalize(tag)]
}

// All returns every supported language, sorted by tag.
func (r *Registry) All() []Language {
	out := make([]Language, len(r.tags))
	for i, tag := range r.tags {
		out[i] = Language{
			Tag:  tag,
			Code: r.DisplayCode(tag),
			Name: r.DisplayName(tag),
		}
	}
	return out
}

// DisplayName resolves a tag to its English display name. Unknown or
// malformed tags fall back to the raw input.
func (r *Registry) DisplayName(tag string) string {
	parsed, err := xlanguage.Parse(strings.TrimSpace(tag))
	if err != nil {
		return tag
	}
	if name := r.namer.Name(parsed); name != "" {
		return name
	}
	return tag
}

// DisplayCode returns the short upper-case code used in summary records,
// e.g. "en" -> "EN".
func (r *Registry) DisplayCode(tag string) string {
	norm := Normalize(tag)
	if norm == "" {
		norm = tag
	}
	return strings.ToUpper(norm)
}
