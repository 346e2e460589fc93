package casing

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/erraggy/convkit/convkiterrors"
)

// Style names an output case convention.
type Style string

const (
	// StyleCamel produces camelCase.
	StyleCamel Style = "camel"
	// StylePascal produces PascalCase.
	StylePascal Style = "pascal"
	// StyleSnake produces snake_case.
	StyleSnake Style = "snake"
	// StyleKebab produces kebab-case.
	StyleKebab Style = "kebab"
)

// Styles returns every supported style in display order.
func Styles() []Style {
	return []Style{StyleCamel, StylePascal, StyleSnake, StyleKebab}
}

// ParseStyle parses a style name. An empty name selects StyleCamel.
func ParseStyle(name string) (Style, error) {
	if name == "" {
		return StyleCamel, nil
	}
	for _, s := range Styles() {
		if strings.EqualFold(name, string(s)) {
			return s, nil
		}
	}
	return "", &convkiterrors.ConfigError{
		Option:  "style",
		Value:   name,
		Message: fmt.Sprintf("valid styles: %v", Styles()),
	}
}

// Convert applies the given style to s. Unknown styles fall back to camelCase.
func Convert(s string, style Style) string {
	switch style {
	case StylePascal:
		return ToPascalCase(s)
	case StyleSnake:
		return ToSnakeCase(s)
	case StyleKebab:
		return ToKebabCase(s)
	default:
		return ToCamelCase(s)
	}
}

// IsDelimiter reports whether r separates words: underscore, hyphen or any
// Unicode whitespace.
func IsDelimiter(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// ToCamelCase converts delimiter-separated text to camelCase.
// Delimiter runs collapse into one word boundary, leading and trailing
// delimiters are dropped, the first emitted rune is lowercased and the rune
// after each boundary is uppercased. Everything else passes through as is.
// Example: "hello_world" -> "helloWorld"
// Example: "  multiple   spaces  " -> "multipleSpaces"
func ToCamelCase(s string) string {
	return joinWords(s, unicode.ToLower)
}

// ToPascalCase converts delimiter-separated text to PascalCase.
// Like camelCase but with the first rune uppercased.
// Example: "user_profile" -> "UserProfile"
func ToPascalCase(s string) string {
	return joinWords(s, unicode.ToUpper)
}

func joinWords(s string, first func(rune) rune) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))
	emitted := false
	boundary := false

	for _, r := range s {
		if IsDelimiter(r) {
			// Delimiters before the first emitted rune never open a word.
			boundary = emitted
			continue
		}
		switch {
		case !emitted:
			r = first(r)
		case boundary:
			r = unicode.ToUpper(r)
		}
		result.WriteRune(r)
		emitted = true
		boundary = false
	}

	return result.String()
}

// ToSnakeCase converts a string to snake_case.
// Words are split on delimiter runs and on case humps, so both
// "UserProfile" and "user-profile" become "user_profile".
// Acronyms stay together: "APIClient" -> "api_client"
func ToSnakeCase(s string) string {
	return strings.Join(lowerWords(s), "_")
}

// ToKebabCase converts a string to kebab-case.
// Like snake_case but with hyphens instead of underscores.
// Example: "UserProfile" -> "user-profile"
func ToKebabCase(s string) string {
	return strings.Join(lowerWords(s), "-")
}

func lowerWords(s string) []string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

// splitWords breaks s into words at delimiter runs, at lower-to-upper
// transitions and before the last capital of an acronym that is followed by
// a lowercase letter.
func splitWords(s string) []string {
	runes := []rune(s)
	var words []string
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if IsDelimiter(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush(i)
				start = i
			}
		}
	}
	flush(len(runes))

	return words
}
