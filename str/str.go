// Package str holds string helpers.
package str

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	rootedPath  = regexp.MustCompile(`(?i)^([a-z]+:)?[\\/]`)
	absoluteURL = regexp.MustCompile(`^[a-z][a-z0-9+.-]*:`)

	whitespace = regexp.MustCompile(`\s+`)
	nonWord    = regexp.MustCompile(`[^\w-]+`)

	separators = regexp.MustCompile(`[\\/]+`)
	pathPrefix = regexp.MustCompile(`^([a-zA-Z]+:|\./)`)
)

// regionalIndicatorOffset maps 'a' onto REGIONAL INDICATOR SYMBOL LETTER A.
const regionalIndicatorOffset = 0x1F1E6 - 'a'

// IsRelative reports whether path has neither a drive or scheme prefix nor a leading slash.
func IsRelative(path string) bool {
	return !rootedPath.MatchString(path)
}

// ConsistsRepeatedSubstring reports whether s is some shorter string repeated.
func ConsistsRepeatedSubstring(s string) bool {
	if s == "" {
		return false
	}
	return strings.Index((s + s)[1:], s)+1 != len(s)
}

func IsAbsoluteURL(url string) bool {
	return absoluteURL.MatchString(url)
}

// AreAnagram compares the case-folded characters of a and b, spaces included.
func AreAnagram(a, b string) bool {
	ra, rb := []rune(cases.Fold().String(a)), []rune(cases.Fold().String(b))
	slices.Sort(ra)
	slices.Sort(rb)
	return slices.Equal(ra, rb)
}

func Base64ToUint8(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return b, nil
}

func Uint8ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// LetterToEmoji returns the regional indicator for the first letter of c.
func LetterToEmoji(c string) string {
	r, size := utf8.DecodeRuneInString(c)
	if size == 0 {
		return ""
	}
	return string(unicode.ToLower(r) + regionalIndicatorOffset)
}

// Slugify turns s into a lower-case, dash-joined ASCII slug. Diacritics are
// folded first, so "Café" becomes "cafe".
func Slugify(s string) string {
	s = whitespace.ReplaceAllString(strings.ToLower(removeDiacritics(s)), "-")
	return nonWord.ReplaceAllString(s, "")
}

func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ToUnixPath turns backslashes into slashes and drops a drive or ./ prefix.
func ToUnixPath(path string) string {
	return pathPrefix.ReplaceAllString(separators.ReplaceAllString(path, "/"), "")
}

// CountOccurrences counts the characters of s equal to char.
func CountOccurrences(s, char string) int {
	n := 0
	for _, r := range s {
		if string(r) == char {
			n++
		}
	}
	return n
}

// Format replaces {0}, {1}, ... with vals in order.
func Format(s string, vals []string) string {
	for i, v := range vals {
		s = strings.ReplaceAll(s, "{"+strconv.Itoa(i)+"}", v)
	}
	return s
}

// Hash is the 31-multiplier hash over UTF-16 code units, wrapping at 32 bits.
func Hash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(c)
	}
	return h
}

func Hash64(s string) uint64 {
	return xxhash.Sum64String(s)
}

// BaseURL strips the query string.
func BaseURL(url string) string {
	base, _, _ := strings.Cut(url, "?")
	return base
}

// CharacterCount counts non-overlapping occurrences of sub. An empty sub counts 0.
func CharacterCount(s, sub string) int {
	if sub == "" {
		return 0
	}
	return strings.Count(s, sub)
}

// Mask replaces the first num characters of s with mask, repeated as needed.
// A negative num keeps only the last -num characters.
func Mask(s string, num int, mask string) string {
	rs := []rune(s)
	start := num
	if start < 0 {
		start = max(len(rs)+start, 0)
	}
	start = min(start, len(rs))
	if mask == "" {
		return string(rs[start:])
	}
	pad := []rune(strings.Repeat(mask, start/utf8.RuneCountInString(mask)+1))[:start]
	return string(pad) + string(rs[start:])
}
