package str

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	camelSeparators = regexp.MustCompile(`[-_\s\p{Zs}]+(.)?`)
	pascalWords     = regexp.MustCompile(`[a-zA-Z0-9]+`)
	kebabJoint      = regexp.MustCompile(`-.`)
	camelJoint      = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	snakeJoint      = regexp.MustCompile(`_\w`)
	wordStarts      = regexp.MustCompile(`^(.)|\s+(.)`)
)

// A cases.Caser is stateful, so each call gets its own.
func toUpper(s string) string { return cases.Upper(language.Und).String(s) }

func toLower(s string) string { return cases.Lower(language.Und).String(s) }

// Capitalize upper-cases the first character and leaves the rest alone.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return toUpper(string(r)) + s[size:]
}

// ToCamelCase drops each run of separators (-, _ or space) and upper-cases
// the character after it. A leading run capitalizes the first word.
func ToCamelCase(s string) string {
	return camelSeparators.ReplaceAllStringFunc(strings.TrimSpace(s), func(m string) string {
		sub := camelSeparators.FindStringSubmatch(m)
		if sub[1] == "" {
			return ""
		}
		return toUpper(sub[1])
	})
}

// ToPascalCase keeps the ASCII alphanumeric words of s and capitalizes each.
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range pascalWords.FindAllString(s, -1) {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

func KebabToCamel(s string) string {
	return kebabJoint.ReplaceAllStringFunc(s, func(m string) string {
		return toUpper(m[1:])
	})
}

func CamelToKebab(s string) string {
	return toLower(camelJoint.ReplaceAllString(s, "$1-$2"))
}

func SnakeToCamel(s string) string {
	return snakeJoint.ReplaceAllStringFunc(toLower(s), func(m string) string {
		return toUpper(m[1:])
	})
}

// UppercaseWords upper-cases the first character of every word.
func UppercaseWords(s string) string {
	return wordStarts.ReplaceAllStringFunc(s, toUpper)
}
