// Package signal_extractor derives a structured Signal Bundle from one raw
// user utterance. Extraction is a pure function of the input text: it never
// touches conversation state and never fails, it only leaves signals unset.
package signal_extractor

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mwhitfield/sentiment_chatbot/pkg/textutil"
)

// Bundle is the result of intent/entity detection for one utterance.
// Feeling and Name are mutually exclusive by construction: a detected
// feeling suppresses name extraction entirely.
type Bundle struct {
	Name    string // capitalized extracted name, empty when none
	Feeling string // first matching feeling word, empty when none

	IsQuestion           bool
	IsApology            bool
	IsGreeting           bool
	IsGoodbye            bool
	IsThanks             bool
	IsBirthday           bool
	IsSpecialEvent       bool
	IsReciprocalQuestion bool
	IsComplaint          bool
	IsCriticism          bool
	IsPositiveFeedback   bool
	IsComparison         bool
	IsExperienceFeedback bool
	IsProfanity          bool
	IsOffensive          bool
	NeedsTime            bool
	NeedsDate            bool
	NeedsCalc            bool
}

// Extract scans text and produces the Signal Bundle.
func Extract(text string) Bundle {
	lower := strings.ToLower(text)

	b := Bundle{
		IsQuestion:           strings.HasSuffix(strings.TrimSpace(lower), "?") || textutil.ContainsAny(lower, questionWords),
		IsApology:            textutil.ContainsAny(lower, apologyWords),
		IsGreeting:           textutil.ContainsAny(lower, greetingWords),
		IsGoodbye:            textutil.ContainsAny(lower, goodbyeWords),
		IsThanks:             textutil.ContainsAny(lower, thanksWords),
		IsBirthday:           textutil.ContainsAny(lower, birthdayPhrases),
		IsSpecialEvent:       textutil.ContainsAny(lower, specialEventPhrases),
		IsReciprocalQuestion: textutil.ContainsAny(lower, reciprocalPhrases),
		IsComplaint:          textutil.ContainsAny(lower, complaintWords),
		IsCriticism:          textutil.ContainsAny(lower, criticismPhrases),
		IsPositiveFeedback:   textutil.ContainsAny(lower, positiveFeedbackPhrases),
		IsComparison:         textutil.ContainsAny(lower, comparisonPhrases),
		IsExperienceFeedback: textutil.ContainsAny(lower, experiencePhrases),
		IsProfanity:          matchesAnyPattern(lower, profanityPatterns),
		IsOffensive:          textutil.ContainsAny(lower, offensivePhrases),
		NeedsTime:            textutil.ContainsAny(lower, timeWords),
		NeedsDate:            needsDate(lower),
		NeedsCalc:            digitExprPattern.MatchString(text) || textutil.ContainsAny(lower, calcWords),
	}

	// Feelings are extracted before names so that "I'm fine" reads as a
	// feeling, never as a name.
	b.Feeling = extractFeeling(lower)
	if b.Feeling == "" {
		b.Name = extractName(lower)
	}

	return b
}

func needsDate(lower string) bool {
	if textutil.ContainsAny(lower, datePhrases) {
		return true
	}
	mentionsDate := strings.Contains(lower, "date") || strings.Contains(lower, "day is it")
	return mentionsDate && textutil.ContainsAny(lower, dateQuestionWords)
}

func matchesAnyPattern(lower string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

func extractFeeling(lower string) string {
	for _, word := range feelingWords {
		if strings.Contains(lower, word) {
			return word
		}
	}
	return ""
}

func extractName(lower string) string {
	// High-precision patterns first. A blacklisted candidate from these is
	// rejected outright; no further pattern gets a chance to resurrect it.
	for _, pattern := range strictNamePatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		candidate := strings.ToLower(match[1])
		if _, banned := nameBlacklist[candidate]; !banned && len(candidate) > 1 {
			return textutil.Capitalize(candidate)
		}
		return ""
	}

	// Low-precision fallbacks with stricter acceptance.
	for _, pattern := range looseNamePatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		candidate := strings.ToLower(match[1])
		if _, banned := nameBlacklist[candidate]; banned {
			continue
		}
		if len(candidate) > 2 && !containsDigit(candidate) && startsWithLetter(candidate) {
			return textutil.Capitalize(candidate)
		}
	}
	return ""
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func startsWithLetter(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r)
	}
	return false
}
