// Package i18n provides display-string lookup for the UI. Lookups never
// influence control flow or numeric results; a missing key falls back to
// the key itself so English (the key language) needs no catalog entries
// of its own.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"golang.org/x/text/language"
)

//go:embed catalogs/*.json
var catalogFS embed.FS

// Supported languages, in matcher priority order.
var supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// catalogFile maps a supported tag to its embedded catalog.
var catalogFile = map[language.Tag]string{
	language.English:           "catalogs/en.json",
	language.SimplifiedChinese: "catalogs/zh-Hans.json",
	language.Spanish:           "catalogs/es.json",
}

// Localizer resolves translation keys for one language.
type Localizer struct {
	tag     language.Tag
	entries map[string]string
}

// New creates a Localizer for the given BCP 47 tag ("en", "zh-Hans",
// "es", ...), matched against the supported set. Unknown or unsupported
// tags fall back to English.
func New(tag string) (*Localizer, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		parsed = language.English
	}
	matched, _, _ := matcher.Match(parsed)

	// Matcher may return a regional variant; collapse to the supported
	// base catalog.
	matchedBase, _ := matched.Base()
	base := language.English
	for _, s := range supported {
		if sb, _ := s.Base(); sb == matchedBase {
			base = s
			break
		}
	}

	l := &Localizer{tag: base, entries: map[string]string{}}
	if file, ok := catalogFile[base]; ok {
		if err := l.load(file); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Tag returns the resolved language tag.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Text returns the display string for key, or the key itself when no
// translation exists.
func (l *Localizer) Text(key string) string {
	if s, ok := l.entries[key]; ok {
		return s
	}
	return key
}

// Textf formats a translated template with fmt verbs.
func (l *Localizer) Textf(key string, args ...any) string {
	return fmt.Sprintf(l.Text(key), args...)
}

func (l *Localizer) load(file string) error {
	raw, err := fs.ReadFile(catalogFS, file)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", file, err)
	}
	if err := json.Unmarshal(raw, &l.entries); err != nil {
		return fmt.Errorf("parse catalog %s: %w", file, err)
	}
	return nil
}

// Available lists the supported language tags as strings, for the
// language menu.
func Available() []string {
	out := make([]string, len(supported))
	for i, t := range supported {
		out[i] = t.String()
	}
	return out
}
