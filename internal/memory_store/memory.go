// Package memory_store holds per-conversation state: the learned user name,
// free-form facts, discussed topics, the greeting counter and the rolling
// message history. One Memory is owned by exactly one session and lives as
// long as that session; nothing here persists across runs.
package memory_store

import (
	"strings"
)

// Memory is mutable per-conversation state.
type Memory struct {
	name            string
	likes           []string
	characteristics []string
	discussedTopics []string
	greetingCount   int
}

// New returns an empty Memory.
func New() *Memory {
	return &Memory{}
}

// Name returns the learned user name, empty when none was learned.
func (m *Memory) Name() string { return m.name }

// SetName stores the user name, overwriting any previous value.
func (m *Memory) SetName(name string) { m.name = name }

// NamePrefix returns "Name, " when a name has been learned, else "".
func (m *Memory) NamePrefix() string {
	if m.name == "" {
		return ""
	}
	return m.name + ", "
}

// GreetingCount returns how many greetings have been seen this session.
func (m *Memory) GreetingCount() int { return m.greetingCount }

// RecordGreeting increments the greeting counter and returns the new count.
func (m *Memory) RecordGreeting() int {
	m.greetingCount++
	return m.greetingCount
}

// Likes returns the stored likes in insertion order.
func (m *Memory) Likes() []string { return m.likes }

// Characteristics returns the stored characteristics in insertion order.
func (m *Memory) Characteristics() []string { return m.characteristics }

// DiscussedTopics returns the recorded topics in insertion order.
func (m *Memory) DiscussedTopics() []string { return m.discussedTopics }

// characteristicBlacklist rejects filler continuations of "I am ..." that
// describe state, not the user.
var characteristicBlacklist = map[string]struct{}{
	"feeling": {}, "doing": {}, "going": {}, "here": {}, "there": {},
	"sorry": {}, "fine": {}, "good": {}, "bad": {},
}

// topicStopwords are dropped when recording discussed topics.
var topicStopwords = map[string]struct{}{
	"i": {}, "am": {}, "is": {}, "the": {}, "a": {}, "an": {}, "and": {},
	"or": {}, "but": {}, "to": {}, "for": {}, "of": {}, "in": {}, "on": {},
	"at": {}, "by": {},
}

// RecordFacts extracts and stores likes, characteristics and discussed
// topics from one sanitized utterance. It runs as a pre-step on every turn,
// before any response rule is evaluated.
func (m *Memory) RecordFacts(text string) {
	lower := strings.ToLower(text)

	for _, marker := range []string{"i like ", "i love "} {
		if item := clauseAfter(lower, marker); item != "" {
			m.likes = appendUnique(m.likes, item)
		}
	}

	for _, marker := range []string{"i am ", "i'm "} {
		trait := clauseAfter(lower, marker)
		if trait == "" {
			continue
		}
		if _, banned := characteristicBlacklist[trait]; banned {
			continue
		}
		m.characteristics = appendUnique(m.characteristics, trait)
	}

	if topic := leadingTopic(text); topic != "" {
		m.discussedTopics = appendUnique(m.discussedTopics, topic)
	}
}

// clauseAfter returns the clause following marker, stripped at the first
// stop token. Stop tokens: ".", ",", "and", end of string. At least one
// character must precede the stop token.
func clauseAfter(lower, marker string) string {
	idx := strings.Index(lower, marker)
	if idx < 0 {
		return ""
	}
	rest := lower[idx+len(marker):]
	if rest == "" {
		return ""
	}

	cut := len(rest)
	for _, stop := range []string{".", ",", "and"} {
		// A stop token at offset zero would leave an empty clause; the
		// earliest usable stop starts after the first character.
		if pos := strings.Index(rest[1:], stop); pos >= 0 && pos+1 < cut {
			cut = pos + 1
		}
	}
	return strings.TrimSpace(rest[:cut])
}

// leadingTopic returns the first 3 content words of an utterance longer
// than 2 words, joined by spaces.
func leadingTopic(text string) string {
	words := strings.Fields(text)
	if len(words) <= 2 {
		return ""
	}

	content := make([]string, 0, 3)
	for _, word := range words {
		if _, stop := topicStopwords[strings.ToLower(word)]; stop {
			continue
		}
		content = append(content, word)
		if len(content) == 3 {
			break
		}
	}
	if len(content) == 0 {
		return ""
	}
	return strings.Join(content, " ")
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
