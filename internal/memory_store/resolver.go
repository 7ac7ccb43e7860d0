package memory_store

import (
	"strings"
)

// ContextInfo is advisory input to the response engine about how the
// current utterance relates to recent history. It never produces a reply
// on its own.
type ContextInfo struct {
	// MentionedBefore holds recent entries whose user text shares a word
	// (longer than 3 characters) with the current utterance.
	MentionedBefore []Entry
	// RecentTopics is a bag of candidate topic words from prior user
	// messages: stopword-filtered, first 3 content words per qualifying
	// message.
	RecentTopics []string
	// HasHistory reports whether any exchange has happened yet.
	HasHistory bool
}

// resolver stopwords include interrogatives and referents beyond the topic
// list, since prior questions should not read as topic overlap.
var resolverStopwords = map[string]struct{}{
	"i": {}, "am": {}, "is": {}, "the": {}, "a": {}, "an": {}, "and": {},
	"or": {}, "but": {}, "to": {}, "for": {}, "of": {}, "in": {}, "on": {},
	"at": {}, "by": {}, "it": {}, "this": {}, "that": {}, "what": {},
	"how": {}, "why": {}, "when": {}, "where": {}, "who": {},
}

// Resolve inspects up to lookback recent history entries for follow-up
// references and overlapping vocabulary with the current utterance.
func Resolve(text string, history *History, lookback int) ContextInfo {
	info := ContextInfo{HasHistory: history.Len() > 0}
	lower := strings.ToLower(text)

	for _, entry := range history.Last(lookback) {
		prevLower := strings.ToLower(entry.UserText)
		prevWords := strings.Fields(prevLower)

		for _, word := range prevWords {
			if len(word) > 3 && strings.Contains(lower, word) {
				info.MentionedBefore = append(info.MentionedBefore, entry)
				break
			}
		}

		if len(prevWords) > 3 {
			count := 0
			for _, word := range prevWords {
				if _, stop := resolverStopwords[word]; stop {
					continue
				}
				info.RecentTopics = append(info.RecentTopics, word)
				count++
				if count == 3 {
					break
				}
			}
		}
	}

	return info
}
