// Package locale formats task dates the way a locale writes short dates.
package locale

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Style selects how a date field is written.
type Style int

const (
	Numeric  Style = iota // 5, 2024
	TwoDigit              // 05, 24
)

// Options selects the style of each date field.
type Options struct {
	Year  Style
	Month Style
	Day   Style
}

// DefaultOptions writes a numeric year with 2-digit month and day.
var DefaultOptions = Options{Year: Numeric, Month: TwoDigit, Day: TwoDigit}

// DateFormatter is the locale-aware formatter behind a Binding.
type DateFormatter interface {
	FormatDate(t time.Time, tag language.Tag, opts Options) string
}

type field int

const (
	fieldYear field = iota
	fieldMonth
	fieldDay
)

// pattern is a short-date layout: field order, separator, trailing suffix.
type pattern struct {
	order  [3]field
	sep    string
	suffix string
}

var (
	mdy = [3]field{fieldMonth, fieldDay, fieldYear}
	dmy = [3]field{fieldDay, fieldMonth, fieldYear}
	ymd = [3]field{fieldYear, fieldMonth, fieldDay}
)

// Short-date patterns from CLDR. The first entry is the fallback.
var localePatterns = []struct {
	tag     language.Tag
	pattern pattern
}{
	{language.AmericanEnglish, pattern{order: mdy, sep: "/"}},
	{language.BritishEnglish, pattern{order: dmy, sep: "/"}},
	{language.MustParse("en-CA"), pattern{order: ymd, sep: "-"}},
	{language.MustParse("en-AU"), pattern{order: dmy, sep: "/"}},
	{language.MustParse("en-IN"), pattern{order: dmy, sep: "/"}},
	{language.German, pattern{order: dmy, sep: "."}},
	{language.French, pattern{order: dmy, sep: "/"}},
	{language.Spanish, pattern{order: dmy, sep: "/"}},
	{language.Italian, pattern{order: dmy, sep: "/"}},
	{language.Portuguese, pattern{order: dmy, sep: "/"}},
	{language.Dutch, pattern{order: dmy, sep: "-"}},
	{language.Swedish, pattern{order: ymd, sep: "-"}},
	{language.Danish, pattern{order: dmy, sep: "."}},
	{language.Norwegian, pattern{order: dmy, sep: "."}},
	{language.Finnish, pattern{order: dmy, sep: "."}},
	{language.Polish, pattern{order: dmy, sep: "."}},
	{language.Russian, pattern{order: dmy, sep: "."}},
	{language.Ukrainian, pattern{order: dmy, sep: "."}},
	{language.Turkish, pattern{order: dmy, sep: "."}},
	{language.Czech, pattern{order: dmy, sep: ". "}},
	{language.Japanese, pattern{order: ymd, sep: "/"}},
	{language.Chinese, pattern{order: ymd, sep: "/"}},
	{language.Korean, pattern{order: ymd, sep: ". ", suffix: "."}},
	{language.Hungarian, pattern{order: ymd, sep: ". ", suffix: "."}},
}

// regionalPatterns are regions whose short date differs from the
// language default. They match on exact language and region only, so a
// neighbour such as es-MX never borrows the es-US order.
var regionalPatterns = map[string]pattern{
	"fr-CA": {order: ymd, sep: "-"},
	"fr-CH": {order: dmy, sep: "."},
	"en-ZA": {order: ymd, sep: "/"},
	"nl-BE": {order: dmy, sep: "/"},
	"es-US": {order: mdy, sep: "/"},
	"zh-HK": {order: dmy, sep: "/"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(localePatterns))
	for i, lp := range localePatterns {
		tags[i] = lp.tag
	}
	return language.NewMatcher(tags)
}()

// PatternFormatter formats dates with the CLDR short-date pattern of the
// closest supported locale, falling back to American English.
type PatternFormatter struct{}

// FormatDate implements DateFormatter.
func (PatternFormatter) FormatDate(t time.Time, tag language.Tag, opts Options) string {
	p := lookupPattern(tag)
	parts := make([]string, 0, 3)
	for _, f := range p.order {
		switch f {
		case fieldYear:
			parts = append(parts, formatYear(t.Year(), opts.Year))
		case fieldMonth:
			parts = append(parts, formatField(int(t.Month()), opts.Month))
		case fieldDay:
			parts = append(parts, formatField(t.Day(), opts.Day))
		}
	}
	return strings.Join(parts, p.sep) + p.suffix
}

func lookupPattern(tag language.Tag) pattern {
	base, _ := tag.Base()
	region, _ := tag.Region()
	if p, ok := regionalPatterns[base.String()+"-"+region.String()]; ok {
		return p
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(localePatterns) {
		idx = 0
	}
	return localePatterns[idx].pattern
}

func formatField(v int, style Style) string {
	if style == TwoDigit && v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func formatYear(y int, style Style) string {
	if style == TwoDigit {
		return formatField(y%100, TwoDigit)
	}
	return strconv.Itoa(y)
}
