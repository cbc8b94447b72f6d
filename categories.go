package pubhub

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeCategories canonicalizes a semicolon-delimited category
// string at input-construction time: tokens are trimmed, title-cased
// (first letter upper, rest lower), de-duplicated by normalized form
// preserving first occurrence, and rejoined with semicolons. Category
// names are equality keys for the listing filter, so this is the only
// spelling the rest of the client ever sees.
func NormalizeCategories(categories string) string {
	if categories == "" {
		return ""
	}

	seen := make(map[string]struct{})
	var words []string
	for _, token := range strings.Split(categories, ";") {
		word := capitalizeFirstLetter(strings.TrimSpace(token))
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}

	return strings.Join(words, ";")
}

// ParseCategories splits a semicolon-delimited string into trimmed,
// de-duplicated tokens in first-seen order. Unlike NormalizeCategories
// it does not change casing.
func ParseCategories(input string) []string {
	if strings.TrimSpace(input) == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	var words []string
	for _, token := range strings.Split(input, ";") {
		word := strings.TrimSpace(token)
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}

	return words
}

func capitalizeFirstLetter(word string) string {
	if word == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}
