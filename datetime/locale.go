package datetime

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// numeric date layouts, first entry is the fallback
var localeLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.BrazilianPortuguese, "02/01/2006"},
	{language.EuropeanPortuguese, "02/01/2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "2/1/2006"},
	{language.Italian, "2/1/2006"},
	{language.German, "2.1.2006"},
	{language.Russian, "02.01.2006"},
	{language.Dutch, "2-1-2006"},
	{language.Japanese, "2006/1/2"},
	{language.SimplifiedChinese, "2006/1/2"},
	{language.Korean, "2006. 1. 2."},
	{language.Swedish, "2006-01-02"},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(localeLayouts))
	for i, l := range localeLayouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// FormatLocale renders the date part of t the way the closest supported
// locale writes it numerically. Unknown locales fall back to en-US.
func FormatLocale(t time.Time, locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	_, idx, _ := localeMatcher.Match(tag)
	return t.Format(localeLayouts[idx].layout), nil
}
