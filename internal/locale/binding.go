package locale

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Binding formats dates for one locale through a shared cache.
type Binding struct {
	locale    string
	tag       language.Tag
	formatter DateFormatter
	cache     *DateCache
}

// Bind returns a Binding for locale. A nil formatter uses PatternFormatter;
// a nil cache gets a private one. Unknown locales format as en-US.
func Bind(locale string, formatter DateFormatter, cache *DateCache) *Binding {
	if formatter == nil {
		formatter = PatternFormatter{}
	}
	if cache == nil {
		cache = NewDateCache()
	}
	return &Binding{
		locale:    locale,
		tag:       language.Make(locale),
		formatter: formatter,
		cache:     cache,
	}
}

// Locale returns the locale identifier the binding was created with.
func (b *Binding) Locale() string {
	return b.locale
}

// Format returns the display string for t: the locale's short date with
// DefaultOptions and every "/" replaced by "-". Cache hits skip the formatter.
func (b *Binding) Format(t time.Time) string {
	return b.cache.GetOrCompute(CanonicalDate(t), b.tag.String(), func() string {
		return Normalize(b.formatter.FormatDate(t, b.tag, DefaultOptions))
	})
}

// CanonicalDate is the textual identity of t used as a cache key.
func CanonicalDate(t time.Time) string {
	return t.Round(0).Format(time.RFC3339Nano)
}

// Normalize replaces date separators that read poorly in narrow cells.
func Normalize(s string) string {
	return strings.ReplaceAll(s, "/", "-")
}
