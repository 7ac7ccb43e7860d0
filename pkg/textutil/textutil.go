// Package textutil provides small text helpers shared across the chatbot.
package textutil

import (
	"strings"
	"unicode"
)

// Sanitize trims the input and collapses internal whitespace runs to single
// spaces. Called once per turn before any extraction happens.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate shortens a message for display, appending an ellipsis when the
// input exceeds max characters.
func Truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	return text[:max] + "..."
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(word string) string {
	if word == "" {
		return ""
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Tokens splits text on whitespace and punctuation, lower-cased.
// Apostrophes are folded into the surrounding word ("isn't" -> "isnt").
func Tokens(text string) []string {
	raw := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || (unicode.IsPunct(r) && r != '\'' && r != '’')
	})
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.Map(func(r rune) rune {
			if r == '\'' || r == '’' {
				return -1
			}
			return r
		}, tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// TokenSet returns the lower-cased token set of text.
func TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokens(text) {
		set[tok] = struct{}{}
	}
	return set
}

// HasToken reports whether word appears in text as a whole token.
func HasToken(text, word string) bool {
	for _, tok := range Tokens(text) {
		if tok == word {
			return true
		}
	}
	return false
}

// HasAnyToken reports whether any of words appears in text as a whole token.
func HasAnyToken(text string, words []string) bool {
	set := TokenSet(text)
	for _, w := range words {
		if _, ok := set[w]; ok {
			return true
		}
	}
	return false
}

// ContainsAny reports whether text contains any of the given substrings.
// Matching is done on the caller's casing; callers pass lower-cased text.
func ContainsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
